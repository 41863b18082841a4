package sales

import (
	"context"

	"github.com/matex-app/matex-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción única: los repositorios que
// recibe fn quedan ligados a esa transacción, y cualquier error de fn
// revierte todo (cabecera, líneas y descuentos de stock juntos).
type TxRunner interface {
	Run(ctx context.Context, fn func(productRepo repository.ProductRepository, saleRepo repository.SaleRepository) error) error
}
