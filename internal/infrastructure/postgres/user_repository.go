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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create persiste un nuevo usuario. Devuelve domain.ErrDuplicate si el
// username ya existe en esa empresa.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO usuarios (id, username, full_name, role, company_id, active, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.Username, user.FullName, user.Role, user.CompanyID,
		user.Active, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. Devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `
		SELECT id, username, full_name, role, company_id, active, password_hash, created_at, updated_at
		FROM usuarios WHERE id = $1`
	return r.queryOne(query, id)
}

// GetByUsernameAndCompany obtiene un usuario por username y empresa.
func (r *UserRepo) GetByUsernameAndCompany(username, companyID string) (*entity.User, error) {
	query := `
		SELECT id, username, full_name, role, company_id, active, password_hash, created_at, updated_at
		FROM usuarios WHERE username = $1 AND company_id = $2`
	return r.queryOne(query, username, companyID)
}

func (r *UserRepo) queryOne(query string, args ...any) (*entity.User, error) {
	var u entity.User
	err := r.pool.QueryRow(context.Background(), query, args...).Scan(
		&u.ID, &u.Username, &u.FullName, &u.Role, &u.CompanyID,
		&u.Active, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// Update reemplaza los campos mutables. Devuelve domain.ErrNotFound si el ID no existe.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE usuarios SET username = $2, full_name = $3, role = $4, company_id = $5,
			active = $6, password_hash = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.pool.Exec(context.Background(), query,
		user.ID, user.Username, user.FullName, user.Role, user.CompanyID,
		user.Active, user.PasswordHash, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update usuario: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve los usuarios en orden de creación. Con companyID filtra por empresa.
func (r *UserRepo) List(companyID string) ([]*entity.User, error) {
	query := `
		SELECT id, username, full_name, role, company_id, active, password_hash, created_at, updated_at
		FROM usuarios
		WHERE $1 = '' OR company_id = $1
		ORDER BY created_at ASC`
	rows, err := r.pool.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()

	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Username, &u.FullName, &u.Role, &u.CompanyID,
			&u.Active, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Delete elimina el usuario. Un ID ausente devuelve domain.ErrNotFound.
func (r *UserRepo) Delete(id string) error {
	cmd, err := r.pool.Exec(context.Background(), `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete usuario: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
