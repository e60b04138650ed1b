package dto

import "time"

// CompanyPayload entrada para crear o actualizar una empresa.
type CompanyPayload struct {
	TaxID          string `json:"taxId" validate:"required"`
	BusinessName   string `json:"businessName" validate:"required,max=120"`
	CommercialName string `json:"commercialName" validate:"required,max=120"`
	Email          string `json:"email" validate:"omitempty,email"`
	Phone          string `json:"phone"`
	LogoURL        string `json:"logoUrl"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID             string    `json:"id"`
	TaxID          string    `json:"taxId"`
	BusinessName   string    `json:"businessName"`
	CommercialName string    `json:"commercialName"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	LogoURL        string    `json:"logoUrl"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
