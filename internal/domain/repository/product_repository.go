package repository

import (
	"context"

	"github.com/matex-app/matex-api/internal/domain/entity"
)

// ProductFilter filtro del listado de catálogo. Los filtros son selecciones
// mutuamente excluyentes, no combinables en una misma llamada.
type ProductFilter string

const (
	FilterAll          ProductFilter = ""
	FilterLowStock     ProductFilter = "low-stock"     // stock <= LowStockThreshold
	FilterMissingPrice ProductFilter = "missing-price" // sin fila en prices
)

// ProductWithPrice fila del listado de catálogo (precio 0 si no hay fila en
// prices).
type ProductWithPrice struct {
	ID        int64
	Name      string
	NetAmount int64
	Stock     int
}

// ProductRepository puerto de persistencia del catálogo.
type ProductRepository interface {
	// List devuelve id, nombre y stock de todos los productos por id ascendente.
	List(ctx context.Context) ([]entity.Product, error)
	// ListFiltered devuelve el catálogo con precio según el filtro, por id ascendente.
	ListFiltered(ctx context.Context, filter ProductFilter) ([]ProductWithPrice, error)
	// GetPrice devuelve el precio neto vigente (0 si el producto no tiene precio).
	GetPrice(ctx context.Context, productID int64) (int64, error)
	// GetStock devuelve el stock disponible (0 si el producto no existe).
	GetStock(ctx context.Context, productID int64) (int, error)
	// AdjustStock suma delta (puede ser negativo) al stock del producto.
	AdjustStock(ctx context.Context, productID int64, delta int) error
	// DecrementStock resta qty al stock; falla con domain.ErrInsufficientStock
	// si el stock quedaría negativo (la guarda vive en el UPDATE).
	DecrementStock(ctx context.Context, productID int64, qty int) error
	// Create inserta el producto y su precio inicial; devuelve el id generado.
	Create(ctx context.Context, name string, netAmount, netProfit int64, stock int) (int64, error)
	// Update actualiza precio, utilidad y stock de un producto existente.
	Update(ctx context.Context, productID int64, netAmount, netProfit int64, stock int) error
	// Delete elimina el producto (el precio cae en cascada).
	Delete(ctx context.Context, productID int64) error
}
