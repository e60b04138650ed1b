package repository

import "github.com/bm16036/TestQRMenuDigital/internal/domain/entity"

// MenuRepository define el puerto de persistencia para Menu.
type MenuRepository interface {
	Create(menu *entity.Menu) error
	GetByID(id string) (*entity.Menu, error)
	Update(menu *entity.Menu) error
	List(companyID string) ([]*entity.Menu, error)
	Delete(id string) error
}
