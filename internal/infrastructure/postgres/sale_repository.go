package postgres

import (
	"context"
	"fmt"

	"github.com/matex-app/matex-api/internal/domain"
	"github.com/matex-app/matex-api/internal/domain/entity"
	"github.com/matex-app/matex-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con
// pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx
// (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// InsertHeader inserta la cabecera de la venta y devuelve el id generado.
func (r *SaleRepo) InsertHeader(ctx context.Context, sale *entity.Sale) (int64, error) {
	var id int64
	err := r.q.QueryRow(ctx, `
		INSERT INTO sales (date, payment_method, total_amount, total_quantity)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		sale.Date, sale.PaymentMethod, sale.TotalAmount, sale.TotalQuantity,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert sale: %w", err)
	}
	sale.ID = id
	return id, nil
}

// InsertLine inserta una línea de detalle.
func (r *SaleRepo) InsertLine(ctx context.Context, line *entity.SaleLine) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO sale_lines (sale_id, product_id, quantity, amount)
		VALUES ($1, $2, $3, $4)`,
		line.SaleID, line.ProductID, line.Quantity, line.Amount,
	)
	if err != nil {
		return fmt.Errorf("insert sale line: %w", err)
	}
	return nil
}

// List devuelve las ventas, opcionalmente acotadas por rango de fechas
// inclusivo, ordenadas por fecha descendente.
func (r *SaleRepo) List(ctx context.Context, dr *repository.DateRange) ([]entity.Sale, error) {
	query := `
		SELECT id, date, payment_method, total_quantity, total_amount
		FROM sales`
	var args []any
	if dr != nil {
		query += ` WHERE date BETWEEN $1 AND $2`
		args = append(args, dr.From, dr.To)
	}
	query += ` ORDER BY date DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.Date, &s.PaymentMethod, &s.TotalQuantity, &s.TotalAmount); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Lines devuelve el detalle de productos vendidos en una venta.
func (r *SaleRepo) Lines(ctx context.Context, saleID int64) ([]repository.SaleLineDetail, error) {
	rows, err := r.q.Query(ctx, `
		SELECT p.name, sl.quantity, sl.amount
		FROM sale_lines sl
		JOIN products p ON sl.product_id = p.id
		WHERE sl.sale_id = $1`,
		saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale lines: %w", err)
	}
	defer rows.Close()
	var list []repository.SaleLineDetail
	for rows.Next() {
		var d repository.SaleLineDetail
		if err := rows.Scan(&d.ProductName, &d.Quantity, &d.Amount); err != nil {
			return nil, fmt.Errorf("scan sale line: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// LineQuantities devuelve producto y cantidad de cada línea. Se lee antes de
// borrar las líneas para poder restaurar el stock exacto.
func (r *SaleRepo) LineQuantities(ctx context.Context, saleID int64) ([]repository.LineQuantity, error) {
	rows, err := r.q.Query(ctx,
		`SELECT product_id, quantity FROM sale_lines WHERE sale_id = $1`, saleID)
	if err != nil {
		return nil, fmt.Errorf("list line quantities: %w", err)
	}
	defer rows.Close()
	var list []repository.LineQuantity
	for rows.Next() {
		var lq repository.LineQuantity
		if err := rows.Scan(&lq.ProductID, &lq.Quantity); err != nil {
			return nil, fmt.Errorf("scan line quantity: %w", err)
		}
		list = append(list, lq)
	}
	return list, rows.Err()
}

// DeleteLines elimina las líneas de la venta.
func (r *SaleRepo) DeleteLines(ctx context.Context, saleID int64) error {
	if _, err := r.q.Exec(ctx,
		`DELETE FROM sale_lines WHERE sale_id = $1`, saleID); err != nil {
		return fmt.Errorf("delete sale lines: %w", err)
	}
	return nil
}

// DeleteHeader elimina la cabecera de la venta.
func (r *SaleRepo) DeleteHeader(ctx context.Context, saleID int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM sales WHERE id = $1`, saleID)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
