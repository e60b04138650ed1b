package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/bm16036/TestQRMenuDigital/internal/application/dto"
	"github.com/bm16036/TestQRMenuDigital/internal/domain"
	"github.com/bm16036/TestQRMenuDigital/internal/domain/entity"
	"github.com/bm16036/TestQRMenuDigital/internal/domain/repository"
)

// CompanyUseCase casos de uso CRUD para empresas, más la generación del
// código QR que enlaza a la carta pública de cada una.
type CompanyUseCase struct {
	repo          repository.CompanyRepository
	publicMenuURL string
}

// NewCompanyUseCase construye el caso de uso. publicMenuURL es la base de la
// URL pública de la carta (el QR apunta a publicMenuURL/<companyID>).
func NewCompanyUseCase(repo repository.CompanyRepository, publicMenuURL string) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, publicMenuURL: publicMenuURL}
}

// Create crea una empresa. Devuelve domain.ErrDuplicate si el RUC ya existe.
func (uc *CompanyUseCase) Create(in dto.CompanyPayload) (*dto.CompanyResponse, error) {
	existing, _ := uc.repo.GetByTaxID(in.TaxID)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	company := &entity.Company{
		ID:             uuid.New().String(),
		TaxID:          in.TaxID,
		BusinessName:   in.BusinessName,
		CommercialName: in.CommercialName,
		Email:          in.Email,
		Phone:          in.Phone,
		LogoURL:        in.LogoURL,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetByID obtiene una empresa por ID. Devuelve (nil, nil) si no existe.
func (uc *CompanyUseCase) GetByID(id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// Update reemplaza los campos mutables de la empresa.
func (uc *CompanyUseCase) Update(id string, in dto.CompanyPayload) (*dto.CompanyResponse, error) {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	existing.TaxID = in.TaxID
	existing.BusinessName = in.BusinessName
	existing.CommercialName = in.CommercialName
	existing.Email = in.Email
	existing.Phone = in.Phone
	existing.LogoURL = in.LogoURL
	existing.UpdatedAt = time.Now()
	if err := uc.repo.Update(existing); err != nil {
		return nil, err
	}
	return toCompanyResponse(existing), nil
}

// List devuelve todas las empresas.
func (uc *CompanyUseCase) List() ([]dto.CompanyResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCompanyResponse(c))
	}
	return items, nil
}

// Delete elimina la empresa. No es idempotente.
func (uc *CompanyUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// MenuQR genera el PNG del código QR que enlaza a la carta pública de la
// empresa. Devuelve domain.ErrNotFound si la empresa no existe.
func (uc *CompanyUseCase) MenuQR(id string, size int) ([]byte, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if size <= 0 {
		size = 256
	}
	target := fmt.Sprintf("%s/%s", uc.publicMenuURL, company.ID)
	png, err := qrcode.Encode(target, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("generar QR: %w", err)
	}
	return png, nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:             c.ID,
		TaxID:          c.TaxID,
		BusinessName:   c.BusinessName,
		CommercialName: c.CommercialName,
		Email:          c.Email,
		Phone:          c.Phone,
		LogoURL:        c.LogoURL,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
