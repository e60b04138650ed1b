package usecase

import (
	"strings"
	"time"

	"github.com/bm16036/TestQRMenuDigital/internal/application/dto"
	"github.com/bm16036/TestQRMenuDigital/internal/domain"
	"github.com/bm16036/TestQRMenuDigital/internal/domain/entity"
	"github.com/bm16036/TestQRMenuDigital/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías de la carta.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso con el puerto de persistencia.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría. El ID lo asigna la fuente de datos.
func (uc *CategoryUseCase) Create(companyID string, in dto.CategoryPayload) (*dto.CategoryResponse, error) {
	nombre, descripcion, err := normalizeCategoryPayload(in)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	category := &entity.Category{
		Nombre:      nombre,
		Descripcion: descripcion,
		CompanyID:   companyID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Update reemplaza por completo los campos mutables de la categoría (no hace
// merge parcial). Devuelve domain.ErrNotFound si el ID no existe.
func (uc *CategoryUseCase) Update(id int64, in dto.CategoryPayload) (*dto.CategoryResponse, error) {
	nombre, descripcion, err := normalizeCategoryPayload(in)
	if err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	existing.Nombre = nombre
	existing.Descripcion = descripcion
	existing.UpdatedAt = time.Now()
	if err := uc.repo.Update(existing); err != nil {
		return nil, err
	}
	return toCategoryResponse(existing), nil
}

// List devuelve las categorías; con companyID filtra por empresa (el filtro se
// aplica en la fuente de datos, nunca en el cliente).
func (uc *CategoryUseCase) List(companyID string) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}

// Delete elimina la categoría. Un segundo delete del mismo ID devuelve
// domain.ErrNotFound: la operación no es idempotente.
func (uc *CategoryUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func normalizeCategoryPayload(in dto.CategoryPayload) (string, *string, error) {
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" || len(nombre) > entity.MaxCategoryNameLength {
		return "", nil, domain.ErrValidation
	}
	var descripcion *string
	if in.Descripcion != nil {
		if d := strings.TrimSpace(*in.Descripcion); d != "" {
			descripcion = &d
		}
	}
	return nombre, descripcion, nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	created, updated := c.CreatedAt, c.UpdatedAt
	return &dto.CategoryResponse{
		ID:          c.ID,
		Nombre:      c.Nombre,
		Descripcion: c.Descripcion,
		CreatedAt:   &created,
		UpdatedAt:   &updated,
	}
}
