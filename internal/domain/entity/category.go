package entity

import "time"

// MaxCategoryNameLength longitud máxima del nombre de una categoría.
const MaxCategoryNameLength = 100

// Category representa una categoría de la carta (entradas, bebidas, postres...).
// Conserva los nombres en español del contrato original (/api/categorias).
type Category struct {
	ID          int64
	Nombre      string
	Descripcion *string // nil cuando no tiene descripción
	CompanyID   string  // vacío en instalaciones mono-empresa
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
