package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un plato o bebida de la carta.
// Price nunca es negativo; CategoryID referencia una categoría existente y
// cada elemento de MenuIDs un menú existente.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	ImageURL    string
	CategoryID  int64
	MenuIDs     []string
	CompanyID   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
