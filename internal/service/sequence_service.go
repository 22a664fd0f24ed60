// internal/service/sequence_service.go
package service

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/stitchline/tailorshop-backend/internal/repository"
)

// SequenceService turns atomic counter increments into the shop's
// human-readable ids: "A001" for customers, "1/2024-25" for orders.
type SequenceService struct {
	Counters repository.CounterRepositoryInterface

	// now is swappable in tests
	now func() time.Time
}

func NewSequenceService(counters repository.CounterRepositoryInterface) *SequenceService {
	return &SequenceService{
		Counters: counters,
		now:      time.Now,
	}
}

// NextCustomerID allocates the next id under the name's prefix partition.
// The prefix is the uppercased first rune of the trimmed full name; an
// empty name is rejected before the counter is touched. Padding is to
// width 3 and never truncates: 7 -> "A007", 1000 -> "A1000".
func (s *SequenceService) NextCustomerID(fullName string) (string, error) {
	name := strings.TrimSpace(fullName)
	if name == "" {
		return "", fmt.Errorf("full name is required to generate a customer id")
	}
	prefix := string(unicode.ToUpper([]rune(name)[0]))

	value, err := s.Counters.NextCustomerValue(prefix)
	if err != nil {
		return "", fmt.Errorf("failed to allocate customer id: %w", err)
	}
	return fmt.Sprintf("%s%03d", prefix, value), nil
}

// NextOrderID allocates the next id under the current financial year.
// Each newly encountered year starts its sequence at 1.
func (s *SequenceService) NextOrderID() (string, error) {
	financialYear := FinancialYear(s.now())

	sequence, err := s.Counters.NextOrderSequence(financialYear)
	if err != nil {
		return "", fmt.Errorf("failed to allocate order id: %w", err)
	}
	return fmt.Sprintf("%d/%s", sequence, financialYear), nil
}

// FinancialYear returns the "YYYY-YY" accounting period for t. The fiscal
// year runs April 1 through March 31, so 2025-02-10 still belongs to
// "2024-25".
func FinancialYear(t time.Time) string {
	year := t.Year()
	if t.Month() >= time.April {
		return fmt.Sprintf("%d-%02d", year, (year+1)%100)
	}
	return fmt.Sprintf("%d-%02d", year-1, year%100)
}
