package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bm16036/TestQRMenuDigital/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo calcula los conteos del panel con agregaciones SQL.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository construye el adaptador.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// Counts devuelve los totales en una sola consulta. Con companyID vacío son
// globales; con companyID cada conteo se limita a esa empresa.
func (r *DashboardRepo) Counts(companyID string) (*repository.DashboardCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM empresas  WHERE $1 = '' OR id = $1),
			(SELECT COUNT(*) FROM menus     WHERE $1 = '' OR company_id = $1),
			(SELECT COUNT(*) FROM categorias WHERE $1 = '' OR company_id = $1),
			(SELECT COUNT(*) FROM productos WHERE $1 = '' OR company_id = $1),
			(SELECT COUNT(*) FROM usuarios  WHERE active AND ($1 = '' OR company_id = $1))`
	var c repository.DashboardCounts
	err := r.pool.QueryRow(context.Background(), query, companyID).Scan(
		&c.Companies, &c.Menus, &c.Categories, &c.Products, &c.ActiveUsers,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard counts: %w", err)
	}
	return &c, nil
}
