package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bm16036/TestQRMenuDigital/internal/application/dto"
	"github.com/bm16036/TestQRMenuDigital/internal/application/usecase"
	"github.com/bm16036/TestQRMenuDigital/pkg/validate"
)

// CompanyHandler maneja las peticiones HTTP para el recurso empresa,
// incluida la generación del QR y la carta imprimible.
type CompanyHandler struct {
	uc    *usecase.CompanyUseCase
	carta *usecase.CartaUseCase
}

// NewCompanyHandler construye el handler inyectando los casos de uso.
func NewCompanyHandler(uc *usecase.CompanyUseCase, carta *usecase.CartaUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc, carta: carta}
}

// List devuelve todas las empresas.
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create crea una empresa. Un RUC repetido responde 409.
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CompanyPayload
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update reemplaza los campos mutables de la empresa.
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.CompanyPayload
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina la empresa. Un ID ya eliminado responde 404.
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "Empresa eliminada correctamente"})
}

// MenuQR devuelve el PNG del código QR que enlaza a la carta pública de la
// empresa. ?size controla el lado en píxeles (por defecto 256).
func (h *CompanyHandler) MenuQR(c *fiber.Ctx) error {
	png, err := h.uc.MenuQR(c.Params("id"), c.QueryInt("size"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

// CartaPDF devuelve la carta de la empresa como PDF descargable.
func (h *CompanyHandler) CartaPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.carta.GeneratePDF(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="carta.pdf"`)
	return c.Send(pdfBytes)
}
