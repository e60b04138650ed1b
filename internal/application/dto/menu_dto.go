package dto

import "time"

// MenuPayload entrada para crear o actualizar un menú.
type MenuPayload struct {
	Name      string `json:"name" validate:"required,max=100"`
	Active    bool   `json:"active"`
	CompanyID string `json:"companyId" validate:"required"`
}

// MenuResponse salida de un menú.
type MenuResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CompanyID string    `json:"companyId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
