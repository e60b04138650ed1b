package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductPayload entrada para crear o actualizar un producto (reemplazo
// completo, no merge parcial).
type ProductPayload struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl"`
	CategoryID  int64           `json:"categoryId" validate:"required"`
	MenuIDs     []string        `json:"menuIds"`
	CompanyID   string          `json:"companyId"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl"`
	CategoryID  int64           `json:"categoryId"`
	MenuIDs     []string        `json:"menuIds"`
	CompanyID   string          `json:"companyId"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
