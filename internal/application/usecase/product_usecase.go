package usecase

import (
	"time"

	"github.com/bm16036/TestQRMenuDigital/internal/application/dto"
	"github.com/bm16036/TestQRMenuDigital/internal/domain"
	"github.com/bm16036/TestQRMenuDigital/internal/domain/entity"
	"github.com/bm16036/TestQRMenuDigital/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos de la carta.
// Valida las referencias: la categoría y cada menú deben existir.
type ProductUseCase struct {
	repo     repository.ProductRepository
	catRepo  repository.CategoryRepository
	menuRepo repository.MenuRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, catRepo repository.CategoryRepository, menuRepo repository.MenuRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, catRepo: catRepo, menuRepo: menuRepo}
}

// Create crea un producto. El ID lo asigna la fuente de datos.
func (uc *ProductUseCase) Create(companyID string, in dto.ProductPayload) (*dto.ProductResponse, error) {
	if err := uc.validateReferences(in); err != nil {
		return nil, err
	}
	if in.CompanyID == "" {
		in.CompanyID = companyID
	}
	now := time.Now()
	product := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		CategoryID:  in.CategoryID,
		MenuIDs:     in.MenuIDs,
		CompanyID:   in.CompanyID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update reemplaza por completo los campos mutables del producto.
// Devuelve domain.ErrNotFound si el ID no existe.
func (uc *ProductUseCase) Update(id int64, in dto.ProductPayload) (*dto.ProductResponse, error) {
	if err := uc.validateReferences(in); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	existing.Name = in.Name
	existing.Description = in.Description
	existing.Price = in.Price
	existing.ImageURL = in.ImageURL
	existing.CategoryID = in.CategoryID
	existing.MenuIDs = in.MenuIDs
	if in.CompanyID != "" {
		existing.CompanyID = in.CompanyID
	}
	existing.UpdatedAt = time.Now()
	if err := uc.repo.Update(existing); err != nil {
		return nil, err
	}
	return toProductResponse(existing), nil
}

// List devuelve los productos; con companyID filtra por empresa.
func (uc *ProductUseCase) List(companyID string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Delete elimina el producto. No es idempotente: un ID ausente devuelve
// domain.ErrNotFound.
func (uc *ProductUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func (uc *ProductUseCase) validateReferences(in dto.ProductPayload) error {
	if in.Name == "" || in.Price.IsNegative() {
		return domain.ErrValidation
	}
	category, err := uc.catRepo.GetByID(in.CategoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrValidation
	}
	for _, menuID := range in.MenuIDs {
		menu, err := uc.menuRepo.GetByID(menuID)
		if err != nil {
			return err
		}
		if menu == nil {
			return domain.ErrValidation
		}
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	menuIDs := p.MenuIDs
	if menuIDs == nil {
		menuIDs = []string{}
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		CategoryID:  p.CategoryID,
		MenuIDs:     menuIDs,
		CompanyID:   p.CompanyID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
