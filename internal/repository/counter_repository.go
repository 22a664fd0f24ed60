package repository

import (
	"database/sql"
)

// CounterRepositoryInterface is the storage side of the sequential id
// allocator: one monotonic counter row per partition key.
type CounterRepositoryInterface interface {
	NextCustomerValue(prefix string) (int, error)
	NextOrderSequence(financialYear string) (int, error)
}

type CounterRepository struct {
	DB *sql.DB
}

// NextCustomerValue atomically bumps the counter for a name prefix and
// returns the post-increment value. The upsert-and-increment is a single
// statement; a first use of the prefix yields 1. A separate read followed
// by a write would let two concurrent creations observe the same value,
// which is exactly what this query exists to prevent.
func (r *CounterRepository) NextCustomerValue(prefix string) (int, error) {
	query := `
        INSERT INTO customer_counters (prefix, value)
        VALUES ($1, 1)
        ON CONFLICT (prefix) DO UPDATE SET value = customer_counters.value + 1
        RETURNING value
    `
	var value int
	if err := r.DB.QueryRow(query, prefix).Scan(&value); err != nil {
		return 0, err
	}
	return value, nil
}

// NextOrderSequence does the same for a financial-year partition; a newly
// encountered year starts its sequence at 1.
func (r *CounterRepository) NextOrderSequence(financialYear string) (int, error) {
	query := `
        INSERT INTO order_counters (financial_year, sequence)
        VALUES ($1, 1)
        ON CONFLICT (financial_year) DO UPDATE SET sequence = order_counters.sequence + 1
        RETURNING sequence
    `
	var sequence int
	if err := r.DB.QueryRow(query, financialYear).Scan(&sequence); err != nil {
		return 0, err
	}
	return sequence, nil
}

var _ CounterRepositoryInterface = (*CounterRepository)(nil)
