package service

import (
	"testing"
	"time"

	"github.com/stitchline/tailorshop-backend/internal/model"
)

// mockCustomerRepo records the customer handed to Create.
type mockCustomerRepo struct {
	created *model.Customer
}

func (m *mockCustomerRepo) Create(c *model.Customer) error {
	c.ID = 1
	c.CreatedAt = time.Now()
	m.created = c
	return nil
}
func (m *mockCustomerRepo) ListAll() ([]model.Customer, error)          { return nil, nil }
func (m *mockCustomerRepo) GetByID(id int) (*model.Customer, error)     { return nil, nil }
func (m *mockCustomerRepo) GetByCustomerID(string) (*model.Customer, error) { return nil, nil }
func (m *mockCustomerRepo) Update(int, *model.CustomerUpdate) (*model.Customer, error) {
	return nil, nil
}
func (m *mockCustomerRepo) Delete(int) error { return nil }

func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }

func validCustomerInput() *model.CustomerInput {
	return &model.CustomerInput{
		FullName:    "Aarti Sharma",
		Gender:      "female",
		PhoneNumber: "9876543210",
		Gmail:       "aarti@gmail.com",
		DOB:         strPtr("1992-05-14"),
		Address:     "12 MG Road, Pune",
		Waist:       floatPtr(30),
		Chest:       floatPtr(36),
		Shoulders:   floatPtr(15),
		Hips:        floatPtr(38),
		Length:      floatPtr(42),
		Armhole:     floatPtr(16),
	}
}

func TestCreateCustomerAssignsID(t *testing.T) {
	repo := &mockCustomerRepo{}
	svc := &CustomerService{
		Repo:      repo,
		Sequences: NewSequenceService(&mockCounterRepo{}),
	}

	customer, err := svc.CreateCustomer(validCustomerInput())
	if err != nil {
		t.Fatal(err)
	}
	if customer.CustomerID != "A001" {
		t.Errorf("expected A001, got %s", customer.CustomerID)
	}
	if repo.created == nil {
		t.Fatal("customer was not persisted")
	}
	if repo.created.CustomerID != "A001" {
		t.Errorf("persisted customer carries id %s, want A001", repo.created.CustomerID)
	}
	if repo.created.Waist != 30 || repo.created.Armhole != 16 {
		t.Errorf("measurements not carried over: %+v", repo.created)
	}
}

func TestCreateCustomerValidation(t *testing.T) {
	repo := &mockCustomerRepo{}
	counters := &mockCounterRepo{}
	svc := &CustomerService{Repo: repo, Sequences: NewSequenceService(counters)}

	breakers := map[string]func(*model.CustomerInput){
		"fullName":  func(in *model.CustomerInput) { in.FullName = "  " },
		"gender":    func(in *model.CustomerInput) { in.Gender = "" },
		"phone":     func(in *model.CustomerInput) { in.PhoneNumber = "" },
		"dob":       func(in *model.CustomerInput) { in.DOB = nil },
		"address":   func(in *model.CustomerInput) { in.Address = "" },
		"waist":     func(in *model.CustomerInput) { in.Waist = nil },
		"chest":     func(in *model.CustomerInput) { in.Chest = nil },
		"shoulders": func(in *model.CustomerInput) { in.Shoulders = nil },
		"hips":      func(in *model.CustomerInput) { in.Hips = nil },
		"length":    func(in *model.CustomerInput) { in.Length = nil },
		"armhole":   func(in *model.CustomerInput) { in.Armhole = nil },
	}

	for field, corrupt := range breakers {
		in := validCustomerInput()
		corrupt(in)
		if _, err := svc.CreateCustomer(in); err == nil {
			t.Errorf("expected validation error for missing %s", field)
		}
	}
	if counters.calls != 0 {
		t.Errorf("no id may be allocated for invalid input, got %d counter calls", counters.calls)
	}
	if repo.created != nil {
		t.Error("no customer may be persisted for invalid input")
	}
}

func TestCreateCustomerZeroMeasurementIsValid(t *testing.T) {
	svc := &CustomerService{
		Repo:      &mockCustomerRepo{},
		Sequences: NewSequenceService(&mockCounterRepo{}),
	}

	in := validCustomerInput()
	in.Waist = floatPtr(0) // submitted zero, not absent
	if _, err := svc.CreateCustomer(in); err != nil {
		t.Fatalf("submitted zero measurement must pass validation: %v", err)
	}
}

func TestCreateCustomerAcceptsRFC3339DOB(t *testing.T) {
	repo := &mockCustomerRepo{}
	svc := &CustomerService{Repo: repo, Sequences: NewSequenceService(&mockCounterRepo{})}

	in := validCustomerInput()
	in.DOB = strPtr("1992-05-14T00:00:00Z")
	customer, err := svc.CreateCustomer(in)
	if err != nil {
		t.Fatal(err)
	}
	if customer.DOB.Year() != 1992 || customer.DOB.Month() != time.May {
		t.Errorf("unexpected dob %v", customer.DOB)
	}
}
