// internal/model/counter.go
package model

// CustomerCounter holds the last issued sequence value per name prefix
// ("A" -> 7 means "A007" was the last customer id issued under A).
type CustomerCounter struct {
	Prefix string `db:"prefix" json:"prefix"`
	Value  int    `db:"value" json:"value"`
}

// OrderCounter holds the last issued sequence per financial year
// ("2024-25" -> 3 means "3/2024-25" was the last order id issued).
type OrderCounter struct {
	FinancialYear string `db:"financial_year" json:"financialYear"`
	Sequence      int    `db:"sequence" json:"sequence"`
}
