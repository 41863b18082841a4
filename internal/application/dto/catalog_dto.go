package dto

// CreateProductRequest alta de producto con su precio inicial.
type CreateProductRequest struct {
	Name      string `json:"name"`
	NetPrice  int64  `json:"net_price"`
	NetProfit int64  `json:"net_profit"`
	Stock     int    `json:"stock"`
}

// UpdateProductRequest modificación de precio, utilidad y stock.
type UpdateProductRequest struct {
	NetPrice  int64 `json:"net_price"`
	NetProfit int64 `json:"net_profit"`
	Stock     int   `json:"stock"`
}

// ProductResponse fila del catálogo (precio 0 = "sin precio").
type ProductResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	NetPrice int64  `json:"net_price"`
	Stock    int    `json:"stock"`
}

// ProductListResponse listado de catálogo.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
