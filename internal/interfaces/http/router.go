package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bm16036/TestQRMenuDigital/internal/application/auth"
	"github.com/bm16036/TestQRMenuDigital/internal/application/usecase"
	"github.com/bm16036/TestQRMenuDigital/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC  *usecase.CategoryUseCase
	ProductUC   *usecase.ProductUseCase
	UserUC      *usecase.UserUseCase
	CompanyUC   *usecase.CompanyUseCase
	MenuUC      *usecase.MenuUseCase
	DashboardUC *usecase.DashboardUseCase
	CartaUC     *usecase.CartaUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Categorías (público: lo consume la carta pública además del panel)
	categorias := api.Group("/categorias")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categorias.Get("/", categoryHandler.List)
	categorias.Post("/", categoryHandler.Create)
	categorias.Put("/:id", categoryHandler.Update)
	categorias.Delete("/:id", categoryHandler.Delete)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Productos (protegido)
	productos := protected.Group("/productos")
	productHandler := NewProductHandler(deps.ProductUC)
	productos.Get("/", productHandler.List)
	productos.Post("/", productHandler.Create)
	productos.Put("/:id", productHandler.Update)
	productos.Delete("/:id", productHandler.Delete)

	// Menús (protegido)
	menus := protected.Group("/menus")
	menuHandler := NewMenuHandler(deps.MenuUC)
	menus.Get("/", menuHandler.List)
	menus.Post("/", menuHandler.Create)
	menus.Put("/:id", menuHandler.Update)
	menus.Delete("/:id", menuHandler.Delete)

	// Empresas (protegido; escritura solo ADMIN)
	empresas := protected.Group("/empresas")
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.CartaUC)
	empresas.Get("/", companyHandler.List)
	empresas.Get("/:id/qr", companyHandler.MenuQR)
	empresas.Get("/:id/carta.pdf", companyHandler.CartaPDF)
	adminOnly := RequireRole(entity.RoleAdmin)
	empresas.Post("/", adminOnly, companyHandler.Create)
	empresas.Put("/:id", adminOnly, companyHandler.Update)
	empresas.Delete("/:id", adminOnly, companyHandler.Delete)

	// Usuarios (protegido, solo ADMIN)
	usuarios := protected.Group("/usuarios", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	usuarios.Get("/", userHandler.List)
	usuarios.Post("/", userHandler.Create)
	usuarios.Put("/:id", userHandler.Update)
	usuarios.Delete("/:id", userHandler.Delete)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/resumen", dashboardHandler.Resumen)
}
