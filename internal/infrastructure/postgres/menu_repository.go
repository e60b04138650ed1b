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

var _ repository.MenuRepository = (*MenuRepo)(nil)

// MenuRepo implementación del puerto MenuRepository sobre PostgreSQL.
type MenuRepo struct {
	pool *pgxpool.Pool
}

// NewMenuRepository construye el adaptador de persistencia para menús.
func NewMenuRepository(pool *pgxpool.Pool) *MenuRepo {
	return &MenuRepo{pool: pool}
}

// Create persiste un nuevo menú.
func (r *MenuRepo) Create(menu *entity.Menu) error {
	query := `
		INSERT INTO menus (id, name, active, company_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(context.Background(), query,
		menu.ID, menu.Name, menu.Active, menu.CompanyID, menu.CreatedAt, menu.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert menu: %w", err)
	}
	return nil
}

// GetByID obtiene un menú por ID. Devuelve (nil, nil) si no existe.
func (r *MenuRepo) GetByID(id string) (*entity.Menu, error) {
	query := `
		SELECT id, name, active, company_id, created_at, updated_at
		FROM menus WHERE id = $1`
	var m entity.Menu
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Name, &m.Active, &m.CompanyID, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get menu: %w", err)
	}
	return &m, nil
}

// Update reemplaza los campos mutables. Devuelve domain.ErrNotFound si el ID no existe.
func (r *MenuRepo) Update(menu *entity.Menu) error {
	query := `
		UPDATE menus SET name = $2, active = $3, company_id = $4, updated_at = $5
		WHERE id = $1`
	cmd, err := r.pool.Exec(context.Background(), query,
		menu.ID, menu.Name, menu.Active, menu.CompanyID, menu.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update menu: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve los menús en orden de creación. Con companyID filtra por empresa.
func (r *MenuRepo) List(companyID string) ([]*entity.Menu, error) {
	query := `
		SELECT id, name, active, company_id, created_at, updated_at
		FROM menus
		WHERE $1 = '' OR company_id = $1
		ORDER BY created_at ASC`
	rows, err := r.pool.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list menus: %w", err)
	}
	defer rows.Close()

	var list []*entity.Menu
	for rows.Next() {
		var m entity.Menu
		if err := rows.Scan(&m.ID, &m.Name, &m.Active, &m.CompanyID, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan menu: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Delete elimina el menú. Un ID ausente devuelve domain.ErrNotFound.
func (r *MenuRepo) Delete(id string) error {
	cmd, err := r.pool.Exec(context.Background(), `DELETE FROM menus WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete menu: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
