// internal/model/order.go
package model

import "time"

// OrderMeasurements are garment-specific and distinct from the customer's
// base measurements.
type OrderMeasurements struct {
	Length     float64 `db:"measurement_length" json:"length"`
	Bottom     float64 `db:"measurement_bottom" json:"bottom"`
	KneeRound  float64 `db:"measurement_knee_round" json:"kneeRound"`
	ThighRound float64 `db:"measurement_thigh_round" json:"thighRound"`
	Waist      float64 `db:"measurement_waist" json:"waist"`
}

type Embroidery struct {
	Description string   `db:"embroidery_description" json:"description"`
	Budget      float64  `db:"embroidery_budget" json:"budget"`
	Images      []string `db:"embroidery_images" json:"images"`
}

// Order is keyed by its allocated composite id, e.g. "1/2024-25".
type Order struct {
	ID            string            `db:"id" json:"id"`
	Measurements  OrderMeasurements `json:"measurements"`
	Description   string            `db:"description" json:"description"`
	TotalAmount   float64           `db:"total_amount" json:"totalAmount"`
	AdvancePaid   float64           `db:"advance_paid" json:"advancePaid"`
	PaymentMethod string            `db:"payment_method" json:"paymentMethod"`
	IsEmbroidery  bool              `db:"is_embroidery" json:"isEmbroidery"`
	Embroidery    Embroidery        `json:"embroidery"`
	DeliveryDate  time.Time         `db:"delivery_date" json:"deliveryDate"`
	Images        []string          `db:"images" json:"images"`
	Status        string            `db:"status" json:"status"` // active, completed, ...
	CustomerName  string            `db:"customer_name" json:"customerName"`
	MobileNumber  string            `db:"mobile_number" json:"mobileNumber"`
	OutfitType    string            `db:"outfit_type" json:"outfitType"`
	CustomerID    string            `db:"customer_id" json:"customerId"`
	IsUrgent      bool              `db:"is_urgent" json:"isUrgent"`
	NotifiedAt    *time.Time        `db:"notified_at" json:"notifiedAt,omitempty"`
	CreatedAt     time.Time         `db:"created_at" json:"createdAt"`
	UpdatedAt     *time.Time        `db:"updated_at" json:"updatedAt,omitempty"`
}

// OrderInput is the creation payload; the id is allocated server-side.
type OrderInput struct {
	Measurements  OrderMeasurements `json:"measurements"`
	Description   string            `json:"description"`
	TotalAmount   float64           `json:"totalAmount"`
	AdvancePaid   float64           `json:"advancePaid"`
	PaymentMethod string            `json:"paymentMethod"`
	IsEmbroidery  bool              `json:"isEmbroidery"`
	Embroidery    Embroidery        `json:"embroidery"`
	DeliveryDate  *string           `json:"deliveryDate"`
	Images        []string          `json:"images"`
	CustomerName  string            `json:"customerName"`
	MobileNumber  string            `json:"mobileNumber"`
	OutfitType    string            `json:"outfitType"`
	CustomerID    string            `json:"customerId"`
	IsUrgent      bool              `json:"isUrgent"`
}
