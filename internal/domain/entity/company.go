package entity

import "time"

// Company representa una empresa/tenant dueña de menús, categorías, productos y usuarios.
type Company struct {
	ID             string
	TaxID          string // RUC / NIT según el país
	BusinessName   string // razón social
	CommercialName string // nombre comercial mostrado en la carta
	Email          string
	Phone          string
	LogoURL        string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
