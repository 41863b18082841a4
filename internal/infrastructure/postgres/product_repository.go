package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/matex-app/matex-api/internal/domain"
	"github.com/matex-app/matex-api/internal/domain/entity"
	"github.com/matex-app/matex-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de catálogo. Pasar pool o tx
// (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// List devuelve id, nombre y stock de todos los productos.
func (r *ProductRepo) List(ctx context.Context) ([]entity.Product, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, name, stock FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Stock); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// ListFiltered devuelve el catálogo con precio según el filtro, por id
// ascendente. Precio 0 si el producto no tiene fila en prices.
func (r *ProductRepo) ListFiltered(ctx context.Context, filter repository.ProductFilter) ([]repository.ProductWithPrice, error) {
	query := `
		SELECT p.id, p.name, COALESCE(pr.net_amount, 0), p.stock
		FROM products p
		LEFT JOIN prices pr ON p.id = pr.product_id`
	switch filter {
	case repository.FilterLowStock:
		query += fmt.Sprintf(" WHERE p.stock <= %d", entity.LowStockThreshold)
	case repository.FilterMissingPrice:
		query += " WHERE pr.net_amount IS NULL"
	case repository.FilterAll:
		// sin cláusula
	default:
		return nil, domain.ErrInvalidInput
	}
	query += " ORDER BY p.id"

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list filtered products: %w", err)
	}
	defer rows.Close()
	var list []repository.ProductWithPrice
	for rows.Next() {
		var p repository.ProductWithPrice
		if err := rows.Scan(&p.ID, &p.Name, &p.NetAmount, &p.Stock); err != nil {
			return nil, fmt.Errorf("scan filtered product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetPrice devuelve el precio neto vigente de un producto (0 si no tiene).
func (r *ProductRepo) GetPrice(ctx context.Context, productID int64) (int64, error) {
	var amount int64
	err := r.q.QueryRow(ctx,
		`SELECT net_amount FROM prices WHERE product_id = $1`, productID).Scan(&amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("get price: %w", err)
	}
	return amount, nil
}

// GetStock devuelve el stock disponible de un producto (0 si no existe).
func (r *ProductRepo) GetStock(ctx context.Context, productID int64) (int, error) {
	var stock int
	err := r.q.QueryRow(ctx,
		`SELECT stock FROM products WHERE id = $1`, productID).Scan(&stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("get stock: %w", err)
	}
	return stock, nil
}

// AdjustStock suma delta (puede ser negativo) al stock del producto.
func (r *ProductRepo) AdjustStock(ctx context.Context, productID int64, delta int) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET stock = stock + $2 WHERE id = $1`, productID, delta)
	if err != nil {
		return fmt.Errorf("adjust stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DecrementStock resta qty con guarda contra stock negativo: si el UPDATE no
// afecta filas y el producto existe, el stock era insuficiente y la venta
// completa debe revertirse. Un producto borrado a mitad de la venta se
// distingue como ErrNotFound.
func (r *ProductRepo) DecrementStock(ctx context.Context, productID int64, qty int) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET stock = stock - $2 WHERE id = $1 AND stock >= $2`,
		productID, qty)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		var exists bool
		if err := r.q.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, productID).Scan(&exists); err != nil {
			return fmt.Errorf("decrement stock: %w", err)
		}
		if !exists {
			return domain.ErrNotFound
		}
		return domain.ErrInsufficientStock
	}
	return nil
}

// Create inserta el producto y su precio inicial; devuelve el id generado.
func (r *ProductRepo) Create(ctx context.Context, name string, netAmount, netProfit int64, stock int) (int64, error) {
	var id int64
	err := r.q.QueryRow(ctx,
		`INSERT INTO products (name, stock) VALUES ($1, $2) RETURNING id`,
		name, stock).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert product: %w", err)
	}
	_, err = r.q.Exec(ctx,
		`INSERT INTO prices (product_id, net_amount, net_profit) VALUES ($1, $2, $3)`,
		id, netAmount, netProfit)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insert price: %w", err)
	}
	return id, nil
}

// Update actualiza precio, utilidad y stock de un producto existente. El
// upsert cubre el estado transitorio "sin precio".
func (r *ProductRepo) Update(ctx context.Context, productID int64, netAmount, netProfit int64, stock int) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET stock = $2 WHERE id = $1`, productID, stock)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	_, err = r.q.Exec(ctx, `
		INSERT INTO prices (product_id, net_amount, net_profit)
		VALUES ($1, $2, $3)
		ON CONFLICT (product_id)
		DO UPDATE SET net_amount = EXCLUDED.net_amount, net_profit = EXCLUDED.net_profit`,
		productID, netAmount, netProfit)
	if err != nil {
		return fmt.Errorf("upsert price: %w", err)
	}
	return nil
}

// Delete elimina un producto por id; el precio cae por ON DELETE CASCADE.
func (r *ProductRepo) Delete(ctx context.Context, productID int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
