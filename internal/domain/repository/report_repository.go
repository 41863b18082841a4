package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SummaryResult totales crudos del período. Los valores monetarios van en
// decimal sin redondear: el redondeo a entero es responsabilidad de la capa
// de presentación y se aplica una sola vez al armar el DTO.
type SummaryResult struct {
	NetSales      decimal.Decimal
	SaleCount     int64
	AverageTicket decimal.Decimal
}

// ProductQuantityResult producto con su cantidad total vendida en el período.
type ProductQuantityResult struct {
	ProductName   string
	TotalQuantity int64
}

// ProductRevenueResult producto con sus ingresos netos del período
// (cantidad × precio neto vigente).
type ProductRevenueResult struct {
	ProductName  string
	TotalRevenue decimal.Decimal
}

// ProductProfitResult producto con su utilidad neta total del período
// (cantidad × utilidad neta vigente).
type ProductProfitResult struct {
	ProductName string
	TotalProfit decimal.Decimal
}

// ReportRepository consultas de solo lectura para reportes de ventas.
//
// Todas las consultas usan el precio/utilidad vigente del producto, no el
// monto histórico de la línea: un reporte sobre el pasado cambia si los
// precios cambiaron después de la venta. Es una simplificación deliberada
// que debe preservarse.
type ReportRepository interface {
	Summary(ctx context.Context, start, end time.Time) (SummaryResult, error)
	TopByQuantity(ctx context.Context, start, end time.Time, limit int) ([]ProductQuantityResult, error)
	TopByRevenue(ctx context.Context, start, end time.Time, limit int) ([]ProductRevenueResult, error)
	TopByProfit(ctx context.Context, start, end time.Time) ([]ProductProfitResult, error)
}
