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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
// menu_ids se guarda como TEXT[]; price como NUMERIC (codec shopspring/decimal).
type ProductRepo struct {
	pool *pgxpool.Pool
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

// Create persiste un nuevo producto. El ID lo asigna la secuencia de la tabla.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO productos (name, description, price, image_url, category_id, menu_ids, company_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		product.Name, product.Description, product.Price, product.ImageURL,
		product.CategoryID, product.MenuIDs, product.CompanyID,
		product.CreatedAt, product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `
		SELECT id, name, description, price, image_url, category_id, menu_ids, company_id, created_at, updated_at
		FROM productos WHERE id = $1`
	var p entity.Product
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL,
		&p.CategoryID, &p.MenuIDs, &p.CompanyID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// Update reemplaza los campos mutables. Devuelve domain.ErrNotFound si el ID no existe.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE productos SET name = $2, description = $3, price = $4, image_url = $5,
			category_id = $6, menu_ids = $7, company_id = $8, updated_at = $9
		WHERE id = $1`
	cmd, err := r.pool.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price, product.ImageURL,
		product.CategoryID, product.MenuIDs, product.CompanyID, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve los productos en orden de inserción. Con companyID filtra por empresa.
func (r *ProductRepo) List(companyID string) ([]*entity.Product, error) {
	query := `
		SELECT id, name, description, price, image_url, category_id, menu_ids, company_id, created_at, updated_at
		FROM productos
		WHERE $1 = '' OR company_id = $1
		ORDER BY id ASC`
	rows, err := r.pool.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// ListByCategory devuelve los productos de una categoría.
func (r *ProductRepo) ListByCategory(categoryID int64) ([]*entity.Product, error) {
	query := `
		SELECT id, name, description, price, image_url, category_id, menu_ids, company_id, created_at, updated_at
		FROM productos WHERE category_id = $1 ORDER BY id ASC`
	rows, err := r.pool.Query(context.Background(), query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list productos por categoria: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL,
			&p.CategoryID, &p.MenuIDs, &p.CompanyID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina el producto. Un ID ausente devuelve domain.ErrNotFound.
func (r *ProductRepo) Delete(id int64) error {
	cmd, err := r.pool.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
