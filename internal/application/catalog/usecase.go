// Package catalog contiene las reglas de negocio de productos y precios.
package catalog

import (
	"context"
	"strconv"

	"github.com/matex-app/matex-api/internal/application/dto"
	"github.com/matex-app/matex-api/internal/domain"
	"github.com/matex-app/matex-api/internal/domain/repository"
)

// UseCase fachada sobre el repositorio de productos.
type UseCase struct {
	productRepo repository.ProductRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(productRepo repository.ProductRepository) *UseCase {
	return &UseCase{productRepo: productRepo}
}

// ParseFilter traduce el parámetro de query al filtro del repositorio. Los
// filtros son mutuamente excluyentes: un único valor por llamada.
func ParseFilter(s string) (repository.ProductFilter, error) {
	switch repository.ProductFilter(s) {
	case repository.FilterAll, repository.FilterLowStock, repository.FilterMissingPrice:
		return repository.ProductFilter(s), nil
	default:
		return repository.FilterAll, domain.ErrInvalidInput
	}
}

// List devuelve el catálogo según el filtro, por id ascendente.
func (uc *UseCase) List(ctx context.Context, filter repository.ProductFilter) (*dto.ProductListResponse, error) {
	rows, err := uc.productRepo.ListFiltered(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := &dto.ProductListResponse{Items: make([]dto.ProductResponse, 0, len(rows))}
	for _, r := range rows {
		out.Items = append(out.Items, dto.ProductResponse{
			ID:       r.ID,
			Name:     r.Name,
			NetPrice: r.NetAmount,
			Stock:    r.Stock,
		})
	}
	out.Total = len(out.Items)
	return out, nil
}

// Create da de alta un producto con su precio inicial.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateProductRequest) (int64, error) {
	if in.Name == "" || in.NetPrice < 0 || in.NetProfit < 0 || in.Stock < 0 {
		return 0, domain.ErrInvalidInput
	}
	return uc.productRepo.Create(ctx, in.Name, in.NetPrice, in.NetProfit, in.Stock)
}

// Update modifica precio, utilidad y stock de un producto existente.
func (uc *UseCase) Update(ctx context.Context, productID int64, in dto.UpdateProductRequest) error {
	if in.NetPrice < 0 || in.NetProfit < 0 || in.Stock < 0 {
		return domain.ErrInvalidInput
	}
	return uc.productRepo.Update(ctx, productID, in.NetPrice, in.NetProfit, in.Stock)
}

// Delete elimina un producto (el precio cae en cascada).
func (uc *UseCase) Delete(ctx context.Context, productID int64) error {
	return uc.productRepo.Delete(ctx, productID)
}

// InventoryTable arma la tabla plana del inventario para exportar.
func (uc *UseCase) InventoryTable(ctx context.Context, filter repository.ProductFilter) (dto.Table, error) {
	rows, err := uc.productRepo.ListFiltered(ctx, filter)
	if err != nil {
		return dto.Table{}, err
	}
	t := dto.Table{
		Title:   "Inventario",
		Columns: []string{"Id", "Nombre", "Precio", "Stock"},
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			strconv.FormatInt(r.ID, 10),
			r.Name,
			strconv.FormatInt(r.NetAmount, 10),
			strconv.Itoa(r.Stock),
		})
	}
	return t, nil
}
