// internal/service/customer_service.go
package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/stitchline/tailorshop-backend/internal/model"
	"github.com/stitchline/tailorshop-backend/internal/repository"
)

type CustomerService struct {
	Repo      repository.CustomerRepositoryInterface
	Sequences *SequenceService
}

// parseDate accepts RFC3339 timestamps as well as bare "2006-01-02" dates,
// since clients send either.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

// CreateCustomer validates the payload, allocates the customer id and
// persists the record. Allocation happens strictly before the insert so a
// customer is never written without a valid id; a failed insert after a
// successful allocation only leaves a gap in the sequence.
func (s *CustomerService) CreateCustomer(in *model.CustomerInput) (*model.Customer, error) {
	if err := validateCustomerInput(in); err != nil {
		return nil, err
	}

	dob, err := parseDate(*in.DOB)
	if err != nil {
		return nil, fmt.Errorf("invalid dob: %w", err)
	}

	customerID, err := s.Sequences.NextCustomerID(in.FullName)
	if err != nil {
		return nil, err
	}

	c := &model.Customer{
		CustomerID:  customerID,
		FullName:    strings.TrimSpace(in.FullName),
		Gender:      in.Gender,
		PhoneNumber: in.PhoneNumber,
		Gmail:       in.Gmail,
		DOB:         dob,
		Address:     in.Address,
		Waist:       *in.Waist,
		Chest:       *in.Chest,
		Shoulders:   *in.Shoulders,
		Hips:        *in.Hips,
		Length:      *in.Length,
		Armhole:     *in.Armhole,
	}

	if err := s.Repo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func validateCustomerInput(in *model.CustomerInput) error {
	if strings.TrimSpace(in.FullName) == "" {
		return fmt.Errorf("fullName is required")
	}
	if in.Gender == "" {
		return fmt.Errorf("gender is required")
	}
	if in.PhoneNumber == "" {
		return fmt.Errorf("phoneNumber is required")
	}
	if in.DOB == nil || *in.DOB == "" {
		return fmt.Errorf("dob is required")
	}
	if in.Address == "" {
		return fmt.Errorf("address is required")
	}
	// A submitted 0 is a valid measurement; an absent field is not.
	measurements := map[string]*float64{
		"waist":     in.Waist,
		"chest":     in.Chest,
		"shoulders": in.Shoulders,
		"hips":      in.Hips,
		"length":    in.Length,
		"armhole":   in.Armhole,
	}
	for field, v := range measurements {
		if v == nil {
			return fmt.Errorf("%s measurement is required", field)
		}
	}
	return nil
}

// ListCustomers fetches all customers
func (s *CustomerService) ListCustomers() ([]model.Customer, error) {
	return s.Repo.ListAll()
}

// GetCustomer fetches a customer by storage id
func (s *CustomerService) GetCustomer(id int) (*model.Customer, error) {
	return s.Repo.GetByID(id)
}

// UpdateCustomer applies a partial update; the allocated customerId is
// immutable and not part of the update payload.
func (s *CustomerService) UpdateCustomer(id int, u *model.CustomerUpdate) (*model.Customer, error) {
	if u.DOB != nil {
		if _, err := parseDate(*u.DOB); err != nil {
			return nil, fmt.Errorf("invalid dob: %w", err)
		}
	}
	return s.Repo.Update(id, u)
}

// DeleteCustomer removes a customer
func (s *CustomerService) DeleteCustomer(id int) error {
	return s.Repo.Delete(id)
}
