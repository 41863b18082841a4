package entity

import "time"

// Sale cabecera de una venta. Invariante: TotalAmount y TotalQuantity son
// las sumas de Amount y Quantity de sus líneas.
type Sale struct {
	ID            int64
	Date          time.Time
	PaymentMethod string // texto libre: "efectivo", "tarjeta", etc.
	TotalAmount   int64
	TotalQuantity int
}

// SaleLine línea de detalle de una venta. Amount es el monto bruto de la
// línea (recargo incluido), redondeado half-up una sola vez al calcularse;
// nunca se vuelve a redondear aguas abajo.
type SaleLine struct {
	SaleID    int64
	ProductID int64
	Quantity  int
	Amount    int64
}
