package dto

import "time"

// CategoryPayload entrada para crear o actualizar una categoría.
// Mantiene los nombres en español del contrato original del API.
type CategoryPayload struct {
	Nombre      string  `json:"nombre" validate:"required,max=100"`
	Descripcion *string `json:"descripcion"`
}

// CategoryResponse salida de una categoría. Los timestamps usan snake_case
// porque el API original devolvía las filas de PostgreSQL tal cual.
type CategoryResponse struct {
	ID          int64      `json:"id"`
	Nombre      string     `json:"nombre"`
	Descripcion *string    `json:"descripcion"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}
