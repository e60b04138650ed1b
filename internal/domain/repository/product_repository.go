package repository

import "github.com/bm16036/TestQRMenuDigital/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	Update(product *entity.Product) error
	List(companyID string) ([]*entity.Product, error)
	ListByCategory(categoryID int64) ([]*entity.Product, error)
	Delete(id int64) error
}
