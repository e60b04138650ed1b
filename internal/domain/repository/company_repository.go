package repository

import "github.com/bm16036/TestQRMenuDigital/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	GetByTaxID(taxID string) (*entity.Company, error)
	Update(company *entity.Company) error
	List() ([]*entity.Company, error)
	Delete(id string) error
}
