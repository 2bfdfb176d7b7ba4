package dto

// CreateUserRequest is used by administrators to create accounts.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,min=1,max=120"`
	Role     string `json:"role" validate:"required,oneof=ADMIN STAFF DOCTOR ATTORNEY"`
}

// UpdateUserRequest captures administrator-triggered partial updates.
type UpdateUserRequest struct {
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8"`
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=ADMIN STAFF DOCTOR ATTORNEY"`
}

// UserResponse represents account data returned to clients. The password
// hash is never included.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}
