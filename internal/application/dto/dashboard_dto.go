package dto

// DashboardResponse totales del panel de resumen.
type DashboardResponse struct {
	Empresas        int `json:"empresas"`
	Menus           int `json:"menus"`
	Categorias      int `json:"categorias"`
	Productos       int `json:"productos"`
	UsuariosActivos int `json:"usuariosActivos"`
}
