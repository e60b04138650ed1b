package usecase

import (
	"github.com/bm16036/TestQRMenuDigital/internal/domain"
	"github.com/bm16036/TestQRMenuDigital/internal/domain/entity"
	"github.com/bm16036/TestQRMenuDigital/internal/domain/repository"
)

// CartaSection una categoría de la carta con sus productos, en orden.
type CartaSection struct {
	Category entity.Category
	Products []entity.Product
}

// CartaPDFGenerator puerto de generación de la carta imprimible.
// La implementación vive en infrastructure/pdf.
type CartaPDFGenerator interface {
	GenerateCartaPDF(company *entity.Company, menuURL string, sections []CartaSection) ([]byte, error)
}

// CartaUseCase arma la carta imprimible de una empresa: sus categorías con
// los productos de cada una, renderizadas a PDF.
type CartaUseCase struct {
	companyRepo   repository.CompanyRepository
	categoryRepo  repository.CategoryRepository
	productRepo   repository.ProductRepository
	pdf           CartaPDFGenerator
	publicMenuURL string
}

// NewCartaUseCase construye el caso de uso.
func NewCartaUseCase(
	companyRepo repository.CompanyRepository,
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	pdf CartaPDFGenerator,
	publicMenuURL string,
) *CartaUseCase {
	return &CartaUseCase{
		companyRepo:   companyRepo,
		categoryRepo:  categoryRepo,
		productRepo:   productRepo,
		pdf:           pdf,
		publicMenuURL: publicMenuURL,
	}
}

// GeneratePDF genera la carta de la empresa en PDF.
// Devuelve domain.ErrNotFound si la empresa no existe.
func (uc *CartaUseCase) GeneratePDF(companyID string) ([]byte, error) {
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	categories, err := uc.categoryRepo.List(companyID)
	if err != nil {
		return nil, err
	}
	sections := make([]CartaSection, 0, len(categories))
	for _, cat := range categories {
		products, err := uc.productRepo.ListByCategory(cat.ID)
		if err != nil {
			return nil, err
		}
		section := CartaSection{Category: *cat}
		for _, p := range products {
			section.Products = append(section.Products, *p)
		}
		sections = append(sections, section)
	}
	menuURL := uc.publicMenuURL + "/" + company.ID
	return uc.pdf.GenerateCartaPDF(company, menuURL, sections)
}
