package usecase

import (
	"github.com/bm16036/TestQRMenuDigital/internal/application/dto"
	"github.com/bm16036/TestQRMenuDigital/internal/domain/repository"
)

// DashboardUseCase entrega los totales del panel de resumen. Los conteos se
// recalculan en la fuente de datos en cada llamada.
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// Resumen devuelve los totales; con companyID los limita a una empresa.
func (uc *DashboardUseCase) Resumen(companyID string) (*dto.DashboardResponse, error) {
	counts, err := uc.repo.Counts(companyID)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		Empresas:        counts.Companies,
		Menus:           counts.Menus,
		Categorias:      counts.Categories,
		Productos:       counts.Products,
		UsuariosActivos: counts.ActiveUsers,
	}, nil
}
