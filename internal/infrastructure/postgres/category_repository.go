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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
// La tabla categorias conserva las columnas en español del esquema original.
type CategoryRepo struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepo {
	return &CategoryRepo{pool: pool}
}

// Create persiste una nueva categoría. El ID lo asigna la secuencia de la tabla.
func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `
		INSERT INTO categorias (nombre, descripcion, company_id, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5) RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		category.Nombre, category.Descripcion, category.CompanyID,
		category.CreatedAt, category.UpdatedAt,
	).Scan(&category.ID)
	if err != nil {
		return fmt.Errorf("insert categoria: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID. Devuelve (nil, nil) si no existe.
func (r *CategoryRepo) GetByID(id int64) (*entity.Category, error) {
	query := `
		SELECT id, nombre, descripcion, COALESCE(company_id, ''), created_at, updated_at
		FROM categorias WHERE id = $1`
	var c entity.Category
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Nombre, &c.Descripcion, &c.CompanyID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoria: %w", err)
	}
	return &c, nil
}

// Update reemplaza los campos mutables. Devuelve domain.ErrNotFound si el ID no existe.
func (r *CategoryRepo) Update(category *entity.Category) error {
	query := `
		UPDATE categorias SET nombre = $2, descripcion = $3, updated_at = $4
		WHERE id = $1`
	cmd, err := r.pool.Exec(context.Background(), query,
		category.ID, category.Nombre, category.Descripcion, category.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update categoria: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve las categorías en orden de inserción (id ascendente, como el
// API original). Con companyID filtra por empresa.
func (r *CategoryRepo) List(companyID string) ([]*entity.Category, error) {
	query := `
		SELECT id, nombre, descripcion, COALESCE(company_id, ''), created_at, updated_at
		FROM categorias
		WHERE $1 = '' OR company_id = $1
		ORDER BY id ASC`
	rows, err := r.pool.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()

	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Descripcion, &c.CompanyID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina la categoría. Un ID ausente devuelve domain.ErrNotFound:
// un segundo delete sobre el mismo ID falla en lugar de pasar en silencio.
func (r *CategoryRepo) Delete(id int64) error {
	cmd, err := r.pool.Exec(context.Background(), `DELETE FROM categorias WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete categoria: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
