package dto

// SaleItemRequest cantidad solicitada de un producto, tal como la tipeó el
// usuario (texto libre: lo no numérico o <= 0 significa "no comprado").
type SaleItemRequest struct {
	ProductID int64  `json:"product_id"`
	Quantity  string `json:"quantity"`
}

// CreateSaleRequest alta de venta. Date en formato YYYY-MM-DD.
type CreateSaleRequest struct {
	Date          string            `json:"date"`
	PaymentMethod string            `json:"payment_method"`
	Items         []SaleItemRequest `json:"items"`
}

// SaleLineItem línea validada y valorizada, lista para persistir. Amount es
// el monto bruto (recargo incluido) redondeado half-up.
type SaleLineItem struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Amount      int64  `json:"amount"`
}

// SaleResponse cabecera de venta para listados.
type SaleResponse struct {
	ID            int64  `json:"id"`
	Date          string `json:"date"`
	PaymentMethod string `json:"payment_method"`
	TotalQuantity int    `json:"total_quantity"`
	TotalAmount   int64  `json:"total_amount"`
}

// SaleCreatedResponse resultado del alta de una venta.
type SaleCreatedResponse struct {
	ID    int64          `json:"id"`
	Lines []SaleLineItem `json:"lines"`
}

// SaleLineResponse línea del detalle de una venta.
type SaleLineResponse struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Amount      int64  `json:"amount"`
}
