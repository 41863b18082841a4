package http

import (
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"github.com/matex-app/matex-api/internal/application/dto"
	"github.com/matex-app/matex-api/internal/application/sales"
	"github.com/matex-app/matex-api/internal/infrastructure/export"
)

// SaleHandler maneja las peticiones HTTP de ventas.
type SaleHandler struct {
	uc        *sales.UseCase
	exportDir string
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *sales.UseCase, exportDir string) *SaleHandler {
	return &SaleHandler{uc: uc, exportDir: exportDir}
}

// List lista las ventas; ?from=&to= (ambos o ninguno) acota por fechas.
func (h *SaleHandler) List(c *fiber.Ctx) error {
	r, err := optionalRange(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.ListSales(c.Context(), r)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create registra una venta completa.
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateSale(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Lines devuelve el detalle de líneas de una venta.
func (h *SaleHandler) Lines(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	out, err := h.uc.SaleLines(c.Context(), int64(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Cancel anula una venta devolviendo el stock de cada línea.
func (h *SaleHandler) Cancel(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.uc.CancelSale(c.Context(), int64(id)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Export exporta las ventas del rango a Excel o PDF.
func (h *SaleHandler) Export(c *fiber.Ctx) error {
	r, err := optionalRange(c)
	if err != nil {
		return respondError(c, err)
	}
	format := c.Query("format", export.FormatExcel)
	table, err := h.uc.SalesTable(c.Context(), r)
	if err != nil {
		return respondError(c, err)
	}
	path := filepath.Join(h.exportDir, exportFileName("ventas", format))
	if err := export.WriteFile(format, path, []dto.Table{table}); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"path": path})
}
