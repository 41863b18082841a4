package repository

import (
	"context"
	"time"

	"github.com/matex-app/matex-api/internal/domain/entity"
)

// DateRange rango de fechas inclusivo para consultas de ventas.
type DateRange struct {
	From time.Time
	To   time.Time
}

// SaleLineDetail línea de venta con el nombre del producto resuelto.
type SaleLineDetail struct {
	ProductName string
	Quantity    int
	Amount      int64
}

// LineQuantity par producto/cantidad de una línea, usado para restaurar
// stock antes de borrar las líneas.
type LineQuantity struct {
	ProductID int64
	Quantity  int
}

// SaleRepository puerto de persistencia de ventas. Las operaciones de
// escritura son granulares a propósito: los casos de uso las componen
// dentro de una transacción vía TxRunner.
type SaleRepository interface {
	// InsertHeader inserta la cabecera y devuelve el id generado.
	InsertHeader(ctx context.Context, sale *entity.Sale) (int64, error)
	// InsertLine inserta una línea de detalle.
	InsertLine(ctx context.Context, line *entity.SaleLine) error
	// List devuelve las ventas, opcionalmente acotadas por rango de fechas,
	// ordenadas por fecha descendente.
	List(ctx context.Context, r *DateRange) ([]entity.Sale, error)
	// Lines devuelve el detalle de una venta (nombre, cantidad, monto).
	Lines(ctx context.Context, saleID int64) ([]SaleLineDetail, error)
	// LineQuantities devuelve producto y cantidad de cada línea de la venta.
	LineQuantities(ctx context.Context, saleID int64) ([]LineQuantity, error)
	// DeleteLines elimina las líneas de la venta.
	DeleteLines(ctx context.Context, saleID int64) error
	// DeleteHeader elimina la cabecera; domain.ErrNotFound si no existe.
	DeleteHeader(ctx context.Context, saleID int64) error
}
