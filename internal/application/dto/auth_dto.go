package dto

// LoginRequest credenciales del panel administrativo. La empresa forma parte
// de la identidad: el mismo email puede existir en dos empresas distintas.
type LoginRequest struct {
	Username  string `json:"username" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	CompanyID string `json:"companyId" validate:"required"`
}

// LoginResponse salida del login: token de sesión + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
