package entity

import "time"

// Roles soportados por el panel administrativo.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// User representa un usuario interno con acceso al panel administrativo.
// PasswordHash nunca se serializa hacia el cliente.
type User struct {
	ID           string
	Username     string // email único por empresa
	FullName     string
	Role         string // ver constantes Role*
	CompanyID    string
	Active       bool
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsValidRole informa si el rol es uno de los soportados.
func IsValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}
