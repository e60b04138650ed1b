package repository

import "github.com/bm16036/TestQRMenuDigital/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
// La implementación vive en infrastructure (postgres o memory).
// Update y Delete devuelven domain.ErrNotFound si el ID no existe:
// un segundo delete sobre el mismo ID falla, no es idempotente.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id int64) (*entity.Category, error)
	Update(category *entity.Category) error
	List(companyID string) ([]*entity.Category, error)
	Delete(id int64) error
}
