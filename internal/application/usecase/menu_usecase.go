package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/bm16036/TestQRMenuDigital/internal/application/dto"
	"github.com/bm16036/TestQRMenuDigital/internal/domain"
	"github.com/bm16036/TestQRMenuDigital/internal/domain/entity"
	"github.com/bm16036/TestQRMenuDigital/internal/domain/repository"
)

// MenuUseCase casos de uso CRUD para menús (cartas) de una empresa.
type MenuUseCase struct {
	repo        repository.MenuRepository
	companyRepo repository.CompanyRepository
}

// NewMenuUseCase construye el caso de uso.
func NewMenuUseCase(repo repository.MenuRepository, companyRepo repository.CompanyRepository) *MenuUseCase {
	return &MenuUseCase{repo: repo, companyRepo: companyRepo}
}

// Create crea un menú. La empresa referenciada debe existir.
func (uc *MenuUseCase) Create(in dto.MenuPayload) (*dto.MenuResponse, error) {
	company, err := uc.companyRepo.GetByID(in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrValidation
	}
	now := time.Now()
	menu := &entity.Menu{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Active:    in.Active,
		CompanyID: in.CompanyID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(menu); err != nil {
		return nil, err
	}
	return toMenuResponse(menu), nil
}

// Update reemplaza los campos mutables del menú.
func (uc *MenuUseCase) Update(id string, in dto.MenuPayload) (*dto.MenuResponse, error) {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	existing.Name = in.Name
	existing.Active = in.Active
	existing.CompanyID = in.CompanyID
	existing.UpdatedAt = time.Now()
	if err := uc.repo.Update(existing); err != nil {
		return nil, err
	}
	return toMenuResponse(existing), nil
}

// List devuelve los menús; con companyID filtra por empresa.
func (uc *MenuUseCase) List(companyID string) ([]dto.MenuResponse, error) {
	list, err := uc.repo.List(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MenuResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMenuResponse(m))
	}
	return items, nil
}

// Delete elimina el menú. No es idempotente.
func (uc *MenuUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toMenuResponse(m *entity.Menu) *dto.MenuResponse {
	if m == nil {
		return nil
	}
	return &dto.MenuResponse{
		ID:        m.ID,
		Name:      m.Name,
		Active:    m.Active,
		CompanyID: m.CompanyID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
