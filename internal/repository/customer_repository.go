package repository

import (
	"database/sql"

	appErrors "github.com/stitchline/tailorshop-backend/internal/errors"
	"github.com/stitchline/tailorshop-backend/internal/model"
)

// CustomerRepositoryInterface defines methods used by services and handlers
type CustomerRepositoryInterface interface {
	Create(c *model.Customer) error
	ListAll() ([]model.Customer, error)
	GetByID(id int) (*model.Customer, error)
	GetByCustomerID(customerID string) (*model.Customer, error)
	Update(id int, u *model.CustomerUpdate) (*model.Customer, error)
	Delete(id int) error
}

// CustomerRepository is the concrete implementation
type CustomerRepository struct {
	DB *sql.DB
}

const customerColumns = `id, customer_id, full_name, gender, phone_number, gmail, dob, address,
       waist, chest, shoulders, hips, length, armhole, created_at, updated_at`

func scanCustomer(row interface{ Scan(...interface{}) error }, c *model.Customer) error {
	return row.Scan(
		&c.ID, &c.CustomerID, &c.FullName, &c.Gender, &c.PhoneNumber, &c.Gmail,
		&c.DOB, &c.Address,
		&c.Waist, &c.Chest, &c.Shoulders, &c.Hips, &c.Length, &c.Armhole,
		&c.CreatedAt, &c.UpdatedAt,
	)
}

// Create inserts the customer; CustomerID must already be allocated.
func (r *CustomerRepository) Create(c *model.Customer) error {
	query := `
        INSERT INTO customers (customer_id, full_name, gender, phone_number, gmail, dob, address,
                               waist, chest, shoulders, hips, length, armhole, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW())
        RETURNING id, created_at
    `
	return r.DB.QueryRow(query,
		c.CustomerID, c.FullName, c.Gender, c.PhoneNumber, c.Gmail, c.DOB, c.Address,
		c.Waist, c.Chest, c.Shoulders, c.Hips, c.Length, c.Armhole,
	).Scan(&c.ID, &c.CreatedAt)
}

// ListAll fetches all customers
func (r *CustomerRepository) ListAll() ([]model.Customer, error) {
	rows, err := r.DB.Query(`SELECT ` + customerColumns + ` FROM customers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := []model.Customer{}
	for rows.Next() {
		var c model.Customer
		if err := scanCustomer(rows, &c); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

// GetByID fetches a customer by storage id
func (r *CustomerRepository) GetByID(id int) (*model.Customer, error) {
	var c model.Customer
	err := scanCustomer(r.DB.QueryRow(`SELECT `+customerColumns+` FROM customers WHERE id = $1`, id), &c)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewCustomerNotFound(id)
		}
		return nil, err
	}
	return &c, nil
}

// GetByCustomerID fetches a customer by its human-readable id ("A001").
func (r *CustomerRepository) GetByCustomerID(customerID string) (*model.Customer, error) {
	var c model.Customer
	err := scanCustomer(r.DB.QueryRow(`SELECT `+customerColumns+` FROM customers WHERE customer_id = $1`, customerID), &c)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // not found, caller decides
		}
		return nil, err
	}
	return &c, nil
}

// Update applies a partial update; nil fields keep the stored value via
// COALESCE. customer_id is never touched.
func (r *CustomerRepository) Update(id int, u *model.CustomerUpdate) (*model.Customer, error) {
	query := `
        UPDATE customers SET
            full_name    = COALESCE($1, full_name),
            gender       = COALESCE($2, gender),
            phone_number = COALESCE($3, phone_number),
            gmail        = COALESCE($4, gmail),
            dob          = COALESCE($5::date, dob),
            address      = COALESCE($6, address),
            waist        = COALESCE($7, waist),
            chest        = COALESCE($8, chest),
            shoulders    = COALESCE($9, shoulders),
            hips         = COALESCE($10, hips),
            length       = COALESCE($11, length),
            armhole      = COALESCE($12, armhole),
            updated_at   = NOW()
        WHERE id = $13
        RETURNING ` + customerColumns + `
    `
	var c model.Customer
	err := scanCustomer(r.DB.QueryRow(query,
		u.FullName, u.Gender, u.PhoneNumber, u.Gmail, u.DOB, u.Address,
		u.Waist, u.Chest, u.Shoulders, u.Hips, u.Length, u.Armhole, id,
	), &c)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewCustomerNotFound(id)
		}
		return nil, err
	}
	return &c, nil
}

// Delete removes the customer row
func (r *CustomerRepository) Delete(id int) error {
	res, err := r.DB.Exec(`DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return appErrors.NewCustomerNotFound(id)
	}
	return nil
}

var _ CustomerRepositoryInterface = (*CustomerRepository)(nil)
