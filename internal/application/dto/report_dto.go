package dto

// Claves de métrica del resumen, compartidas por el mapa de variación del
// comparativo y por las tablas de exportación.
const (
	MetricNetSales      = "net_sales"
	MetricSaleCount     = "sale_count"
	MetricAverageTicket = "average_ticket"
)

// ReportSummary resumen del período con valores ya redondeados a entero
// (frontera de presentación: el repositorio entrega decimales crudos).
type ReportSummary struct {
	NetSales      int64 `json:"net_sales"`
	SaleCount     int64 `json:"sale_count"`
	AverageTicket int64 `json:"average_ticket"`
}

// TopQuantityItem producto del top por cantidad vendida.
type TopQuantityItem struct {
	ProductName   string `json:"product_name"`
	TotalQuantity int64  `json:"total_quantity"`
}

// TopRevenueItem producto del top por ingresos netos.
type TopRevenueItem struct {
	ProductName  string `json:"product_name"`
	TotalRevenue int64  `json:"total_revenue"`
}

// TopProfitItem producto del ranking por utilidad neta.
type TopProfitItem struct {
	ProductName string `json:"product_name"`
	TotalProfit int64  `json:"total_profit"`
}

// ComparisonReport comparativo período actual vs. anterior. Variation es la
// variación por métrica como razón: (actual - anterior) / anterior; 1.0 si
// el anterior es 0 y el actual no; 0.0 si ambos son 0.
type ComparisonReport struct {
	Current   ReportSummary      `json:"current"`
	Previous  ReportSummary      `json:"previous"`
	Variation map[string]float64 `json:"variation"`
}
