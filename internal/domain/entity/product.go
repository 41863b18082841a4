package entity

// LowStockThreshold unidades a partir de las cuales un producto se considera
// con stock bajo (filtro de catálogo).
const LowStockThreshold = 30

// Product producto del catálogo. El stock nunca es negativo.
type Product struct {
	ID    int64
	Name  string
	Stock int
}

// Price precio vigente de un producto (relación 1 a 1 con Product).
// Un producto sin fila en prices es un estado transitorio válido ("sin
// precio"): para reportes y ventas su precio neto se toma como 0.
type Price struct {
	ProductID int64
	NetAmount int64 // precio neto por unidad, sin recargo
	NetProfit int64 // utilidad neta por unidad
}
