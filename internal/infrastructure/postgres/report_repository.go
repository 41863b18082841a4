package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/matex-app/matex-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para reportes de ventas.
//
// Los reportes usan el precio/utilidad vigente (JOIN contra prices), no el
// monto histórico de la línea; ver el comentario del puerto.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// Summary devuelve ventas netas, cantidad de ventas y ticket promedio del
// rango inclusivo [start, end]. COALESCE devuelve cero en períodos sin
// ventas; el ticket promedio es 0 cuando no hay ventas (política de
// división por cero resuelta en SQL).
func (r *ReportRepo) Summary(ctx context.Context, start, end time.Time) (repository.SummaryResult, error) {
	const query = `
	SELECT
	    COALESCE(SUM(sl.quantity * pr.net_amount), 0)::numeric AS net_sales,
	    (SELECT COUNT(*) FROM sales WHERE date BETWEEN $1 AND $2) AS sale_count,
	    CASE
	        WHEN (SELECT COUNT(*) FROM sales WHERE date BETWEEN $1 AND $2) = 0
	        THEN 0::numeric
	        ELSE COALESCE(SUM(sl.quantity * pr.net_amount), 0)::numeric
	             / (SELECT COUNT(*) FROM sales WHERE date BETWEEN $1 AND $2)
	    END AS average_ticket
	FROM sale_lines sl
	JOIN sales s   ON sl.sale_id    = s.id
	JOIN prices pr ON sl.product_id = pr.product_id
	WHERE s.date BETWEEN $1 AND $2`

	var res repository.SummaryResult
	err := r.pool.QueryRow(ctx, query, start, end).
		Scan(&res.NetSales, &res.SaleCount, &res.AverageTicket)
	if err != nil {
		return repository.SummaryResult{}, fmt.Errorf("reports.Summary: %w", err)
	}
	return res, nil
}

// TopByQuantity devuelve los `limit` productos con mayor cantidad vendida
// en el período. Empates desempatados por id de producto ascendente.
func (r *ReportRepo) TopByQuantity(ctx context.Context, start, end time.Time, limit int) ([]repository.ProductQuantityResult, error) {
	const query = `
	SELECT
	    p.name,
	    SUM(sl.quantity)::BIGINT AS total_quantity
	FROM sale_lines sl
	JOIN sales s    ON sl.sale_id    = s.id
	JOIN products p ON sl.product_id = p.id
	WHERE s.date BETWEEN $1 AND $2
	GROUP BY p.id, p.name
	ORDER BY total_quantity DESC, p.id ASC
	LIMIT $3`

	rows, err := r.pool.Query(ctx, query, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("reports.TopByQuantity: %w", err)
	}
	defer rows.Close()

	var results []repository.ProductQuantityResult
	for rows.Next() {
		var row repository.ProductQuantityResult
		if err := rows.Scan(&row.ProductName, &row.TotalQuantity); err != nil {
			return nil, fmt.Errorf("reports.TopByQuantity scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// TopByRevenue devuelve los `limit` productos que generaron mayores
// ingresos netos (cantidad × precio neto vigente) en el período.
func (r *ReportRepo) TopByRevenue(ctx context.Context, start, end time.Time, limit int) ([]repository.ProductRevenueResult, error) {
	const query = `
	SELECT
	    p.name,
	    COALESCE(SUM(sl.quantity * pr.net_amount), 0)::numeric AS total_revenue
	FROM sale_lines sl
	JOIN sales s    ON sl.sale_id    = s.id
	JOIN prices pr  ON sl.product_id = pr.product_id
	JOIN products p ON sl.product_id = p.id
	WHERE s.date BETWEEN $1 AND $2
	GROUP BY p.id, p.name
	ORDER BY total_revenue DESC, p.id ASC
	LIMIT $3`

	rows, err := r.pool.Query(ctx, query, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("reports.TopByRevenue: %w", err)
	}
	defer rows.Close()

	var results []repository.ProductRevenueResult
	for rows.Next() {
		var row repository.ProductRevenueResult
		if err := rows.Scan(&row.ProductName, &row.TotalRevenue); err != nil {
			return nil, fmt.Errorf("reports.TopByRevenue scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// TopByProfit devuelve todos los productos ordenados por utilidad neta
// total (cantidad × utilidad neta vigente), de mayor a menor. Sin LIMIT: el
// reporte de utilidad cubre el catálogo completo vendido en el período.
func (r *ReportRepo) TopByProfit(ctx context.Context, start, end time.Time) ([]repository.ProductProfitResult, error) {
	const query = `
	SELECT
	    p.name,
	    COALESCE(SUM(sl.quantity * pr.net_profit), 0)::numeric AS total_profit
	FROM sale_lines sl
	JOIN sales s    ON sl.sale_id    = s.id
	JOIN products p ON sl.product_id = p.id
	JOIN prices pr  ON p.id          = pr.product_id
	WHERE s.date BETWEEN $1 AND $2
	GROUP BY p.id, p.name
	ORDER BY total_profit DESC, p.id ASC`

	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("reports.TopByProfit: %w", err)
	}
	defer rows.Close()

	var results []repository.ProductProfitResult
	for rows.Next() {
		var row repository.ProductProfitResult
		if err := rows.Scan(&row.ProductName, &row.TotalProfit); err != nil {
			return nil, fmt.Errorf("reports.TopByProfit scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
