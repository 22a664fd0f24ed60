package repository

import (
	"database/sql"
	"database/sql/driver"
	"time"

	"github.com/lib/pq"

	appErrors "github.com/stitchline/tailorshop-backend/internal/errors"
	"github.com/stitchline/tailorshop-backend/internal/model"
)

// OrderRepositoryInterface defines methods used by services, handlers and
// the notification worker
type OrderRepositoryInterface interface {
	Create(o *model.Order) error
	List(status string) ([]model.Order, error)
	GetByID(id string) (*model.Order, error)
	UpdateStatus(id, status string) (*model.Order, error)
	Delete(id string) error
	SetNotified(id string, at time.Time) error
}

// OrderRepository is the concrete implementation
type OrderRepository struct {
	DB *sql.DB
}

const orderColumns = `id, measurement_length, measurement_bottom, measurement_knee_round,
       measurement_thigh_round, measurement_waist,
       description, total_amount, advance_paid, payment_method,
       is_embroidery, embroidery_description, embroidery_budget, embroidery_images,
       delivery_date, images, status, customer_name, mobile_number, outfit_type,
       customer_id, is_urgent, notified_at, created_at, updated_at`

// textArray wraps a slice for a NOT NULL TEXT[] column; a nil slice (an
// omitted JSON field) stores as the empty array rather than SQL NULL.
func textArray(s []string) interface {
	driver.Valuer
	sql.Scanner
} {
	if s == nil {
		s = []string{}
	}
	return pq.Array(s)
}

func scanOrder(row interface{ Scan(...interface{}) error }, o *model.Order) error {
	return row.Scan(
		&o.ID,
		&o.Measurements.Length, &o.Measurements.Bottom, &o.Measurements.KneeRound,
		&o.Measurements.ThighRound, &o.Measurements.Waist,
		&o.Description, &o.TotalAmount, &o.AdvancePaid, &o.PaymentMethod,
		&o.IsEmbroidery, &o.Embroidery.Description, &o.Embroidery.Budget,
		pq.Array(&o.Embroidery.Images),
		&o.DeliveryDate, pq.Array(&o.Images), &o.Status,
		&o.CustomerName, &o.MobileNumber, &o.OutfitType,
		&o.CustomerID, &o.IsUrgent, &o.NotifiedAt, &o.CreatedAt, &o.UpdatedAt,
	)
}

// Create inserts the order; ID must already be allocated ("1/2024-25").
func (r *OrderRepository) Create(o *model.Order) error {
	if o.Status == "" {
		o.Status = "active"
	}
	query := `
        INSERT INTO orders (id, measurement_length, measurement_bottom, measurement_knee_round,
                            measurement_thigh_round, measurement_waist,
                            description, total_amount, advance_paid, payment_method,
                            is_embroidery, embroidery_description, embroidery_budget, embroidery_images,
                            delivery_date, images, status, customer_name, mobile_number, outfit_type,
                            customer_id, is_urgent, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
                $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, NOW())
        RETURNING created_at
    `
	return r.DB.QueryRow(query,
		o.ID,
		o.Measurements.Length, o.Measurements.Bottom, o.Measurements.KneeRound,
		o.Measurements.ThighRound, o.Measurements.Waist,
		o.Description, o.TotalAmount, o.AdvancePaid, o.PaymentMethod,
		o.IsEmbroidery, o.Embroidery.Description, o.Embroidery.Budget,
		textArray(o.Embroidery.Images),
		o.DeliveryDate, textArray(o.Images), o.Status,
		o.CustomerName, o.MobileNumber, o.OutfitType,
		o.CustomerID, o.IsUrgent,
	).Scan(&o.CreatedAt)
}

// List fetches orders, optionally restricted to an exact status match.
// An empty filter or the sentinel "all" returns everything.
func (r *OrderRepository) List(status string) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders`
	args := []interface{}{}
	if status != "" && status != "all" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []model.Order{}
	for rows.Next() {
		var o model.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// GetByID fetches one order by its composite id
func (r *OrderRepository) GetByID(id string) (*model.Order, error) {
	var o model.Order
	err := scanOrder(r.DB.QueryRow(`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id), &o)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewOrderNotFound(id)
		}
		return nil, err
	}
	return &o, nil
}

// UpdateStatus mutates only the status field and returns the full record.
func (r *OrderRepository) UpdateStatus(id, status string) (*model.Order, error) {
	query := `UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2 RETURNING ` + orderColumns
	var o model.Order
	err := scanOrder(r.DB.QueryRow(query, status, id), &o)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewOrderNotFound(id)
		}
		return nil, err
	}
	return &o, nil
}

// Delete removes the order row
func (r *OrderRepository) Delete(id string) error {
	res, err := r.DB.Exec(`DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return appErrors.NewOrderNotFound(id)
	}
	return nil
}

// SetNotified stamps the order after a delivery notification went out.
func (r *OrderRepository) SetNotified(id string, at time.Time) error {
	_, err := r.DB.Exec(`UPDATE orders SET notified_at = $1 WHERE id = $2`, at, id)
	return err
}

var _ OrderRepositoryInterface = (*OrderRepository)(nil)
