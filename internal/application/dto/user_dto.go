package dto

import "time"

// UserPayload entrada para crear o actualizar un usuario.
// Password es write-only: obligatoria (≥8) al crear; opcional al actualizar,
// pero si se envía también debe tener ≥8 caracteres. Esta distinción es del
// sistema original y se conserva tal cual.
type UserPayload struct {
	Username  string `json:"username" validate:"required,email"`
	FullName  string `json:"fullName" validate:"required,max=80"`
	Role      string `json:"role" validate:"required,oneof=ADMIN USER"`
	CompanyID string `json:"companyId" validate:"required"`
	Active    bool   `json:"active"`
	Password  string `json:"password,omitempty"`
}

// UserResponse salida de un usuario. Nunca incluye la contraseña ni su hash.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"fullName"`
	Role      string    `json:"role"`
	CompanyID string    `json:"companyId"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
