package repository

import "github.com/bm16036/TestQRMenuDigital/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsernameAndCompany(username, companyID string) (*entity.User, error)
	Update(user *entity.User) error
	List(companyID string) ([]*entity.User, error)
	Delete(id string) error
}
