package entity

import (
	"time"

	"github.com/google/uuid"
)

// Physician is a treating or referring provider.
type Physician struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Specialty *string   `json:"specialty,omitempty"`
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	NPI       *string   `json:"npi,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Attorney represents outside counsel attached to patients and cases.
type Attorney struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Firm      *string   `json:"firm,omitempty"`
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Payer funding types.
const (
	PayerInsurance = "insurance"
	PayerLien      = "lien"
	PayerSelfPay   = "self_pay"
)

// Payer is a funding source for patient care.
type Payer struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	PayerType string    `json:"payer_type"`
	Phone     *string   `json:"phone,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Facility is a location where appointments and exams take place.
type Facility struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   *string   `json:"address,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Status is a configurable workflow label applied to cases.
type Status struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
