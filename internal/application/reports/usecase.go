// Package reports agrega las ventas del período: resumen, rankings de
// productos y comparativo contra el período anterior.
package reports

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/matex-app/matex-api/internal/application/dto"
	"github.com/matex-app/matex-api/internal/domain"
	"github.com/matex-app/matex-api/internal/domain/repository"
)

// DefaultTopLimit tope por defecto de los rankings por cantidad e ingresos.
const DefaultTopLimit = 5

// UseCase casos de uso de reportes.
type UseCase struct {
	reportRepo repository.ReportRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(reportRepo repository.ReportRepository) *UseCase {
	return &UseCase{reportRepo: reportRepo}
}

func validateRange(start, end time.Time) error {
	if end.Before(start) {
		return fmt.Errorf("%w: rango de fechas invertido", domain.ErrInvalidInput)
	}
	return nil
}

// toSummary redondea los totales crudos a entero (half-up, una sola vez) al
// cruzar la frontera de presentación.
func toSummary(r repository.SummaryResult) dto.ReportSummary {
	return dto.ReportSummary{
		NetSales:      r.NetSales.Round(0).IntPart(),
		SaleCount:     r.SaleCount,
		AverageTicket: r.AverageTicket.Round(0).IntPart(),
	}
}

// Summary devuelve el resumen del período. Un período sin ventas devuelve
// ceros, no error.
func (uc *UseCase) Summary(ctx context.Context, start, end time.Time) (dto.ReportSummary, error) {
	if err := validateRange(start, end); err != nil {
		return dto.ReportSummary{}, err
	}
	raw, err := uc.reportRepo.Summary(ctx, start, end)
	if err != nil {
		return dto.ReportSummary{}, err
	}
	return toSummary(raw), nil
}

// TopByQuantity ranking de productos por unidades vendidas en el período.
func (uc *UseCase) TopByQuantity(ctx context.Context, start, end time.Time, limit int) ([]dto.TopQuantityItem, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	rows, err := uc.reportRepo.TopByQuantity(ctx, start, end, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopQuantityItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TopQuantityItem{ProductName: r.ProductName, TotalQuantity: r.TotalQuantity})
	}
	return out, nil
}

// TopByRevenue ranking de productos por ingresos netos en el período.
func (uc *UseCase) TopByRevenue(ctx context.Context, start, end time.Time, limit int) ([]dto.TopRevenueItem, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	rows, err := uc.reportRepo.TopByRevenue(ctx, start, end, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopRevenueItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TopRevenueItem{
			ProductName:  r.ProductName,
			TotalRevenue: r.TotalRevenue.Round(0).IntPart(),
		})
	}
	return out, nil
}

// TopByProfit ranking completo de productos por utilidad neta en el período.
func (uc *UseCase) TopByProfit(ctx context.Context, start, end time.Time) ([]dto.TopProfitItem, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}
	rows, err := uc.reportRepo.TopByProfit(ctx, start, end)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopProfitItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TopProfitItem{
			ProductName: r.ProductName,
			TotalProfit: r.TotalProfit.Round(0).IntPart(),
		})
	}
	return out, nil
}

// MaxComparisonDays tope de duración del período anterior del comparativo.
const MaxComparisonDays = 365

// PreviousWindow calcula el período anterior: termina el día antes de start
// y abarca `days` días. La duración es independiente del rango actual (se
// puede comparar una semana contra el mes previo); days <= 0 usa la
// duración del rango actual.
func PreviousWindow(start, end time.Time, days int) (time.Time, time.Time) {
	if days <= 0 {
		days = int(end.Sub(start).Hours()/24) + 1
	}
	prevEnd := start.AddDate(0, 0, -1)
	prevStart := prevEnd.AddDate(0, 0, -(days - 1))
	return prevStart, prevEnd
}

// variation variación de una métrica como razón: (actual - anterior) /
// anterior; 1.0 si el anterior es 0 y el actual no; 0.0 si ambos son 0.
func variation(current, previous int64) float64 {
	if previous == 0 {
		if current != 0 {
			return 1.0
		}
		return 0.0
	}
	return float64(current-previous) / float64(previous)
}

// Comparison compara el resumen del período contra el período anterior de
// `days` días (0 = misma duración que el actual). Ambos resúmenes se
// consultan en paralelo.
func (uc *UseCase) Comparison(ctx context.Context, start, end time.Time, days int) (*dto.ComparisonReport, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}
	if days < 0 || days > MaxComparisonDays {
		return nil, fmt.Errorf("%w: días del comparativo fuera de rango", domain.ErrInvalidInput)
	}
	prevStart, prevEnd := PreviousWindow(start, end, days)

	type summaryResult struct {
		summary repository.SummaryResult
		err     error
	}
	curCh := make(chan summaryResult, 1)
	prevCh := make(chan summaryResult, 1)

	go func() {
		s, err := uc.reportRepo.Summary(ctx, start, end)
		curCh <- summaryResult{s, err}
	}()
	go func() {
		s, err := uc.reportRepo.Summary(ctx, prevStart, prevEnd)
		prevCh <- summaryResult{s, err}
	}()

	cur := <-curCh
	prev := <-prevCh
	if cur.err != nil {
		return nil, cur.err
	}
	if prev.err != nil {
		return nil, prev.err
	}

	current := toSummary(cur.summary)
	previous := toSummary(prev.summary)
	return &dto.ComparisonReport{
		Current:  current,
		Previous: previous,
		Variation: map[string]float64{
			dto.MetricNetSales:      variation(current.NetSales, previous.NetSales),
			dto.MetricSaleCount:     variation(current.SaleCount, previous.SaleCount),
			dto.MetricAverageTicket: variation(current.AverageTicket, previous.AverageTicket),
		},
	}, nil
}

// ReportTables arma las secciones tabulares del reporte completo para
// exportar: resumen, los tres rankings y el comparativo.
func (uc *UseCase) ReportTables(ctx context.Context, start, end time.Time, limit, days int) ([]dto.Table, error) {
	summary, err := uc.Summary(ctx, start, end)
	if err != nil {
		return nil, err
	}
	topQty, err := uc.TopByQuantity(ctx, start, end, limit)
	if err != nil {
		return nil, err
	}
	topRev, err := uc.TopByRevenue(ctx, start, end, limit)
	if err != nil {
		return nil, err
	}
	topProfit, err := uc.TopByProfit(ctx, start, end)
	if err != nil {
		return nil, err
	}
	comparison, err := uc.Comparison(ctx, start, end, days)
	if err != nil {
		return nil, err
	}

	summaryTable := dto.Table{
		Title:   "Resumen",
		Columns: []string{"Ventas Netas", "Num Ventas", "Ticket Promedio"},
		Rows: [][]string{{
			strconv.FormatInt(summary.NetSales, 10),
			strconv.FormatInt(summary.SaleCount, 10),
			strconv.FormatInt(summary.AverageTicket, 10),
		}},
	}

	qtyTable := dto.Table{Title: "Top Cantidad", Columns: []string{"Producto", "Cantidad"}}
	for _, it := range topQty {
		qtyTable.Rows = append(qtyTable.Rows, []string{it.ProductName, strconv.FormatInt(it.TotalQuantity, 10)})
	}

	revTable := dto.Table{Title: "Top Ingresos", Columns: []string{"Producto", "Ingresos"}}
	for _, it := range topRev {
		revTable.Rows = append(revTable.Rows, []string{it.ProductName, strconv.FormatInt(it.TotalRevenue, 10)})
	}

	profitTable := dto.Table{Title: "Top Utilidad", Columns: []string{"Producto", "Utilidad"}}
	for _, it := range topProfit {
		profitTable.Rows = append(profitTable.Rows, []string{it.ProductName, strconv.FormatInt(it.TotalProfit, 10)})
	}

	compTable := dto.Table{
		Title:   "Comparativo",
		Columns: []string{"Métrica", "Actual", "Anterior", "Variación (%)"},
		Rows: [][]string{
			{
				"Ventas Netas",
				strconv.FormatInt(comparison.Current.NetSales, 10),
				strconv.FormatInt(comparison.Previous.NetSales, 10),
				formatVariation(comparison.Variation[dto.MetricNetSales]),
			},
			{
				"Num Ventas",
				strconv.FormatInt(comparison.Current.SaleCount, 10),
				strconv.FormatInt(comparison.Previous.SaleCount, 10),
				formatVariation(comparison.Variation[dto.MetricSaleCount]),
			},
			{
				"Ticket Promedio",
				strconv.FormatInt(comparison.Current.AverageTicket, 10),
				strconv.FormatInt(comparison.Previous.AverageTicket, 10),
				formatVariation(comparison.Variation[dto.MetricAverageTicket]),
			},
		},
	}

	return []dto.Table{summaryTable, qtyTable, revTable, profitTable, compTable}, nil
}

func formatVariation(v float64) string {
	return fmt.Sprintf("%.2f%%", v*100)
}
