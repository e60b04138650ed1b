package adminclient

import (
	"fmt"

	"github.com/bm16036/TestQRMenuDigital/internal/application/dto"
)

// CategoryAPI operaciones del recurso categoría contra /api/categorias.
type CategoryAPI struct {
	client *Client
}

// Categories devuelve el acceso al recurso categoría.
func (c *Client) Categories() *CategoryAPI { return &CategoryAPI{client: c} }

// List lista las categorías; companyID vacío trae todas.
func (a *CategoryAPI) List(companyID string) ([]dto.CategoryResponse, error) {
	path := "/api/categorias"
	if companyID != "" {
		path += "?empresa_id=" + companyID
	}
	var out []dto.CategoryResponse
	if err := a.client.do("GET", path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create crea una categoría y devuelve el registro con su ID asignado.
func (a *CategoryAPI) Create(in dto.CategoryPayload) (*dto.CategoryResponse, error) {
	var out dto.CategoryResponse
	if err := a.client.do("POST", "/api/categorias", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update reemplaza la categoría identificada por id.
func (a *CategoryAPI) Update(id int64, in dto.CategoryPayload) (*dto.CategoryResponse, error) {
	var out dto.CategoryResponse
	if err := a.client.do("PUT", fmt.Sprintf("/api/categorias/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina la categoría. Un ID inexistente produce error 404.
func (a *CategoryAPI) Delete(id int64) error {
	return a.client.do("DELETE", fmt.Sprintf("/api/categorias/%d", id), nil, nil)
}

// ProductAPI operaciones del recurso producto contra /api/productos.
type ProductAPI struct {
	client *Client
}

// Products devuelve el acceso al recurso producto.
func (c *Client) Products() *ProductAPI { return &ProductAPI{client: c} }

// List lista los productos; companyID vacío usa la empresa del token.
func (a *ProductAPI) List(companyID string) ([]dto.ProductResponse, error) {
	path := "/api/productos"
	if companyID != "" {
		path += "?empresa_id=" + companyID
	}
	var out []dto.ProductResponse
	if err := a.client.do("GET", path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create crea un producto.
func (a *ProductAPI) Create(in dto.ProductPayload) (*dto.ProductResponse, error) {
	var out dto.ProductResponse
	if err := a.client.do("POST", "/api/productos", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update reemplaza el producto identificado por id.
func (a *ProductAPI) Update(id int64, in dto.ProductPayload) (*dto.ProductResponse, error) {
	var out dto.ProductResponse
	if err := a.client.do("PUT", fmt.Sprintf("/api/productos/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina el producto.
func (a *ProductAPI) Delete(id int64) error {
	return a.client.do("DELETE", fmt.Sprintf("/api/productos/%d", id), nil, nil)
}

// UserAPI operaciones del recurso usuario contra /api/usuarios (solo ADMIN).
type UserAPI struct {
	client *Client
}

// Users devuelve el acceso al recurso usuario.
func (c *Client) Users() *UserAPI { return &UserAPI{client: c} }

// List lista los usuarios; companyID vacío usa la empresa del token.
func (a *UserAPI) List(companyID string) ([]dto.UserResponse, error) {
	path := "/api/usuarios"
	if companyID != "" {
		path += "?empresa_id=" + companyID
	}
	var out []dto.UserResponse
	if err := a.client.do("GET", path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create crea un usuario; la contraseña viaja solo en esta dirección.
func (a *UserAPI) Create(in dto.UserPayload) (*dto.UserResponse, error) {
	var out dto.UserResponse
	if err := a.client.do("POST", "/api/usuarios", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update reemplaza el usuario identificado por id. Password vacío conserva la actual.
func (a *UserAPI) Update(id string, in dto.UserPayload) (*dto.UserResponse, error) {
	var out dto.UserResponse
	if err := a.client.do("PUT", "/api/usuarios/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina el usuario.
func (a *UserAPI) Delete(id string) error {
	return a.client.do("DELETE", "/api/usuarios/"+id, nil, nil)
}

// CompanyAPI operaciones del recurso empresa contra /api/empresas.
type CompanyAPI struct {
	client *Client
}

// Companies devuelve el acceso al recurso empresa.
func (c *Client) Companies() *CompanyAPI { return &CompanyAPI{client: c} }

// List lista todas las empresas.
func (a *CompanyAPI) List() ([]dto.CompanyResponse, error) {
	var out []dto.CompanyResponse
	if err := a.client.do("GET", "/api/empresas", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create crea una empresa.
func (a *CompanyAPI) Create(in dto.CompanyPayload) (*dto.CompanyResponse, error) {
	var out dto.CompanyResponse
	if err := a.client.do("POST", "/api/empresas", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update reemplaza la empresa identificada por id.
func (a *CompanyAPI) Update(id string, in dto.CompanyPayload) (*dto.CompanyResponse, error) {
	var out dto.CompanyResponse
	if err := a.client.do("PUT", "/api/empresas/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina la empresa.
func (a *CompanyAPI) Delete(id string) error {
	return a.client.do("DELETE", "/api/empresas/"+id, nil, nil)
}

// MenuAPI operaciones del recurso menú contra /api/menus.
type MenuAPI struct {
	client *Client
}

// Menus devuelve el acceso al recurso menú.
func (c *Client) Menus() *MenuAPI { return &MenuAPI{client: c} }

// List lista los menús; companyID vacío usa la empresa del token.
func (a *MenuAPI) List(companyID string) ([]dto.MenuResponse, error) {
	path := "/api/menus"
	if companyID != "" {
		path += "?empresa_id=" + companyID
	}
	var out []dto.MenuResponse
	if err := a.client.do("GET", path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create crea un menú.
func (a *MenuAPI) Create(in dto.MenuPayload) (*dto.MenuResponse, error) {
	var out dto.MenuResponse
	if err := a.client.do("POST", "/api/menus", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update reemplaza el menú identificado por id.
func (a *MenuAPI) Update(id string, in dto.MenuPayload) (*dto.MenuResponse, error) {
	var out dto.MenuResponse
	if err := a.client.do("PUT", "/api/menus/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina el menú.
func (a *MenuAPI) Delete(id string) error {
	return a.client.do("DELETE", "/api/menus/"+id, nil, nil)
}

// Login autentica contra /api/auth/login y deja el token en el cliente.
func (c *Client) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	if err := c.do("POST", "/api/auth/login", in, &out); err != nil {
		return nil, err
	}
	c.SetToken(out.Token)
	return &out, nil
}
