package http

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/bm16036/TestQRMenuDigital/internal/application/dto"
)

// RegisterSPA sirve el build del front (Angular) desde distPath y devuelve
// index.html para cualquier ruta que no sea de la API, de modo que el routing
// del lado del cliente funcione al recargar la página. Debe registrarse
// después de las rutas /api. Si distPath no existe no registra nada: en
// desarrollo el front corre en su propio servidor.
func RegisterSPA(app *fiber.App, distPath string) {
	index := filepath.Join(distPath, "index.html")
	if _, err := os.Stat(index); err != nil {
		return
	}

	app.Static("/", distPath)

	app.Use(func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/api") {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ruta no encontrada"})
		}
		return c.SendFile(index)
	})
}
