package http

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/matex-app/matex-api/internal/application/catalog"
	"github.com/matex-app/matex-api/internal/application/dto"
	"github.com/matex-app/matex-api/internal/infrastructure/export"
)

// ProductHandler maneja las peticiones HTTP del catálogo de productos.
type ProductHandler struct {
	uc        *catalog.UseCase
	exportDir string
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *catalog.UseCase, exportDir string) *ProductHandler {
	return &ProductHandler{uc: uc, exportDir: exportDir}
}

// List lista el catálogo; ?filter=low-stock|missing-price acota el resultado.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	filter, err := catalog.ParseFilter(c.Query("filter"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filtro desconocido"})
	}
	out, err := h.uc.List(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create da de alta un producto con su precio inicial.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// Update modifica precio, utilidad y stock de un producto.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Update(c.Context(), int64(id), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete elimina un producto.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.uc.Delete(c.Context(), int64(id)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Export exporta el inventario a Excel o PDF; devuelve la ruta del archivo.
func (h *ProductHandler) Export(c *fiber.Ctx) error {
	filter, err := catalog.ParseFilter(c.Query("filter"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filtro desconocido"})
	}
	format := c.Query("format", export.FormatExcel)
	table, err := h.uc.InventoryTable(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	path := filepath.Join(h.exportDir, exportFileName("inventario", format))
	if err := export.WriteFile(format, path, []dto.Table{table}); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"path": path})
}

func exportFileName(prefix, format string) string {
	ext := "xlsx"
	if format == export.FormatPDF {
		ext = "pdf"
	}
	return fmt.Sprintf("%s_%s.%s", prefix, time.Now().Format("20060102_150405"), ext)
}
