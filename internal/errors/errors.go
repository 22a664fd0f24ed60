// internal/errors/errors.go
package appErrors

import (
	"errors"
	"fmt"
)

// ErrCustomerNotFound is a sentinel error
type ErrCustomerNotFound struct {
	CustomerID int
}

func (e *ErrCustomerNotFound) Error() string {
	return fmt.Sprintf("customer with ID %d not found", e.CustomerID)
}

// ErrOrderNotFound is a sentinel error
type ErrOrderNotFound struct {
	OrderID string
}

func (e *ErrOrderNotFound) Error() string {
	return fmt.Sprintf("order with ID %s not found", e.OrderID)
}

// Helper constructors
func NewCustomerNotFound(id int) error {
	return &ErrCustomerNotFound{CustomerID: id}
}

func NewOrderNotFound(id string) error {
	return &ErrOrderNotFound{OrderID: id}
}

// IsNotFound reports whether err is one of the not-found sentinels.
func IsNotFound(err error) bool {
	var c *ErrCustomerNotFound
	var o *ErrOrderNotFound
	return errors.As(err, &c) || errors.As(err, &o)
}
