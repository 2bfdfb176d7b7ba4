package dto

// CreatePhysicianRequest adds a treating or referring provider. Email is
// required because scheduling notices are sent to it.
type CreatePhysicianRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=200"`
	Specialty string `json:"specialty,omitempty" validate:"omitempty,max=120"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,max=32"`
	NPI       string `json:"npi,omitempty" validate:"omitempty,len=10,numeric"`
}

// UpdatePhysicianRequest captures partial physician updates.
type UpdatePhysicianRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Specialty *string `json:"specialty,omitempty" validate:"omitempty,max=120"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=32"`
	NPI       *string `json:"npi,omitempty" validate:"omitempty,len=10,numeric"`
}

// CreateAttorneyRequest adds outside counsel.
type CreateAttorneyRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	Firm  string `json:"firm,omitempty" validate:"omitempty,max=200"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
	Phone string `json:"phone,omitempty" validate:"omitempty,max=32"`
}

// UpdateAttorneyRequest captures partial attorney updates.
type UpdateAttorneyRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Firm  *string `json:"firm,omitempty" validate:"omitempty,max=200"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone *string `json:"phone,omitempty" validate:"omitempty,max=32"`
}

// CreatePayerRequest adds a funding source.
type CreatePayerRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=200"`
	PayerType string `json:"payer_type" validate:"required,oneof=insurance lien self_pay"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,max=32"`
	IsActive  *bool  `json:"is_active,omitempty"`
}

// UpdatePayerRequest captures partial payer updates.
type UpdatePayerRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	PayerType *string `json:"payer_type,omitempty" validate:"omitempty,oneof=insurance lien self_pay"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=32"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

// CreateFacilityRequest adds a service location.
type CreateFacilityRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Address string `json:"address,omitempty" validate:"omitempty,max=500"`
	Phone   string `json:"phone,omitempty" validate:"omitempty,max=32"`
}

// UpdateFacilityRequest captures partial facility updates.
type UpdateFacilityRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Address *string `json:"address,omitempty" validate:"omitempty,max=500"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,max=32"`
}

// CreateStatusRequest adds a case workflow label.
type CreateStatusRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=80"`
	Color     string `json:"color" validate:"required,hexcolor"`
	SortOrder int    `json:"sort_order" validate:"min=0"`
}

// UpdateStatusRequest captures partial status updates.
type UpdateStatusRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=1,max=80"`
	Color     *string `json:"color,omitempty" validate:"omitempty,hexcolor"`
	SortOrder *int    `json:"sort_order,omitempty" validate:"omitempty,min=0"`
}
