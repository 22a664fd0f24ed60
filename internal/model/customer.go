// internal/model/customer.go
package model

import "time"

// Customer is an identity + measurement record. CustomerID is the
// human-readable id ("A001") assigned at creation and never changed;
// ID is the storage row id used by the lookup routes.
type Customer struct {
	ID          int        `db:"id" json:"id"`
	CustomerID  string     `db:"customer_id" json:"customerId"`
	FullName    string     `db:"full_name" json:"fullName"`
	Gender      string     `db:"gender" json:"gender"`
	PhoneNumber string     `db:"phone_number" json:"phoneNumber"`
	Gmail       string     `db:"gmail" json:"gmail,omitempty"`
	DOB         time.Time  `db:"dob" json:"dob"`
	Address     string     `db:"address" json:"address"`
	Waist       float64    `db:"waist" json:"waist"`
	Chest       float64    `db:"chest" json:"chest"`
	Shoulders   float64    `db:"shoulders" json:"shoulders"`
	Hips        float64    `db:"hips" json:"hips"`
	Length      float64    `db:"length" json:"length"`
	Armhole     float64    `db:"armhole" json:"armhole"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updatedAt,omitempty"`
}

// CustomerInput is the creation payload. Measurements are pointers so an
// absent field is distinguishable from a submitted zero.
type CustomerInput struct {
	FullName    string   `json:"fullName"`
	Gender      string   `json:"gender"`
	PhoneNumber string   `json:"phoneNumber"`
	Gmail       string   `json:"gmail"`
	DOB         *string  `json:"dob"`
	Address     string   `json:"address"`
	Waist       *float64 `json:"waist"`
	Chest       *float64 `json:"chest"`
	Shoulders   *float64 `json:"shoulders"`
	Hips        *float64 `json:"hips"`
	Length      *float64 `json:"length"`
	Armhole     *float64 `json:"armhole"`
}

// CustomerUpdate carries a partial update; nil fields keep the stored value.
type CustomerUpdate struct {
	FullName    *string  `json:"fullName"`
	Gender      *string  `json:"gender"`
	PhoneNumber *string  `json:"phoneNumber"`
	Gmail       *string  `json:"gmail"`
	DOB         *string  `json:"dob"`
	Address     *string  `json:"address"`
	Waist       *float64 `json:"waist"`
	Chest       *float64 `json:"chest"`
	Shoulders   *float64 `json:"shoulders"`
	Hips        *float64 `json:"hips"`
	Length      *float64 `json:"length"`
	Armhole     *float64 `json:"armhole"`
}
