package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bm16036/TestQRMenuDigital/internal/domain"
	"github.com/bm16036/TestQRMenuDigital/internal/domain/entity"
	"github.com/bm16036/TestQRMenuDigital/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{pool: pool}
}

// Create persiste una nueva empresa. Devuelve domain.ErrDuplicate si el RUC ya existe.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO empresas (id, tax_id, business_name, commercial_name, email, phone, logo_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		company.ID, company.TaxID, company.BusinessName, company.CommercialName,
		company.Email, company.Phone, company.LogoURL,
		company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert empresa: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID. Devuelve (nil, nil) si no existe.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	query := `
		SELECT id, tax_id, business_name, commercial_name, email, phone, logo_url, created_at, updated_at
		FROM empresas WHERE id = $1`
	return r.queryOne(query, id)
}

// GetByTaxID obtiene una empresa por RUC.
func (r *CompanyRepo) GetByTaxID(taxID string) (*entity.Company, error) {
	query := `
		SELECT id, tax_id, business_name, commercial_name, email, phone, logo_url, created_at, updated_at
		FROM empresas WHERE tax_id = $1`
	return r.queryOne(query, taxID)
}

func (r *CompanyRepo) queryOne(query string, args ...any) (*entity.Company, error) {
	var c entity.Company
	err := r.pool.QueryRow(context.Background(), query, args...).Scan(
		&c.ID, &c.TaxID, &c.BusinessName, &c.CommercialName,
		&c.Email, &c.Phone, &c.LogoURL, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa: %w", err)
	}
	return &c, nil
}

// Update reemplaza los campos mutables. Devuelve domain.ErrNotFound si el ID no existe.
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `
		UPDATE empresas SET tax_id = $2, business_name = $3, commercial_name = $4,
			email = $5, phone = $6, logo_url = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.pool.Exec(context.Background(), query,
		company.ID, company.TaxID, company.BusinessName, company.CommercialName,
		company.Email, company.Phone, company.LogoURL, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update empresa: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve todas las empresas en orden de creación.
func (r *CompanyRepo) List() ([]*entity.Company, error) {
	query := `
		SELECT id, tax_id, business_name, commercial_name, email, phone, logo_url, created_at, updated_at
		FROM empresas ORDER BY created_at ASC`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list empresas: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.TaxID, &c.BusinessName, &c.CommercialName,
			&c.Email, &c.Phone, &c.LogoURL, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan empresa: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina la empresa. Un ID ausente devuelve domain.ErrNotFound.
func (r *CompanyRepo) Delete(id string) error {
	cmd, err := r.pool.Exec(context.Background(), `DELETE FROM empresas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete empresa: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
