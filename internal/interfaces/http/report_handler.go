package http

import (
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"github.com/matex-app/matex-api/internal/application/reports"
	"github.com/matex-app/matex-api/internal/infrastructure/export"
)

// ReportHandler maneja las peticiones HTTP de reportes.
type ReportHandler struct {
	uc        *reports.UseCase
	exportDir string
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.UseCase, exportDir string) *ReportHandler {
	return &ReportHandler{uc: uc, exportDir: exportDir}
}

// Summary resumen del período: ventas netas, número de ventas y ticket
// promedio. ?start=&end= obligatorios.
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	start, end, err := requiredRange(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Summary(c.Context(), start, end)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// TopQuantity ranking por unidades vendidas; ?limit= opcional.
func (h *ReportHandler) TopQuantity(c *fiber.Ctx) error {
	start, end, err := requiredRange(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.TopByQuantity(c.Context(), start, end, c.QueryInt("limit", reports.DefaultTopLimit))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// TopRevenue ranking por ingresos netos; ?limit= opcional.
func (h *ReportHandler) TopRevenue(c *fiber.Ctx) error {
	start, end, err := requiredRange(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.TopByRevenue(c.Context(), start, end, c.QueryInt("limit", reports.DefaultTopLimit))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// TopProfit ranking completo por utilidad neta.
func (h *ReportHandler) TopProfit(c *fiber.Ctx) error {
	start, end, err := requiredRange(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.TopByProfit(c.Context(), start, end)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Comparison comparativo del período contra el anterior. ?days= fija la
// duración del período anterior (0 u omitido: la del rango actual).
func (h *ReportHandler) Comparison(c *fiber.Ctx) error {
	start, end, err := requiredRange(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Comparison(c.Context(), start, end, c.QueryInt("days", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Export exporta el reporte completo (resumen, rankings y comparativo) a
// Excel o PDF.
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	start, end, err := requiredRange(c)
	if err != nil {
		return respondError(c, err)
	}
	format := c.Query("format", export.FormatExcel)
	tables, err := h.uc.ReportTables(c.Context(), start, end, c.QueryInt("limit", reports.DefaultTopLimit), c.QueryInt("days", 0))
	if err != nil {
		return respondError(c, err)
	}
	path := filepath.Join(h.exportDir, exportFileName("reporte", format))
	if err := export.WriteFile(format, path, tables); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"path": path})
}
