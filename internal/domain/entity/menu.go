package entity

import "time"

// Menu representa una carta de una empresa (desayunos, almuerzos...).
// Un menú inactivo no se muestra en la carta pública pero conserva sus productos.
type Menu struct {
	ID        string
	Name      string
	Active    bool
	CompanyID string
	CreatedAt time.Time
	UpdatedAt time.Time
}
