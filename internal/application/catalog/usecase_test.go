package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matex-app/matex-api/internal/application/catalog"
	"github.com/matex-app/matex-api/internal/application/dto"
	"github.com/matex-app/matex-api/internal/domain"
	"github.com/matex-app/matex-api/internal/domain/entity"
	"github.com/matex-app/matex-api/internal/domain/repository"
)

// fakeProductRepo implementa el filtrado en memoria con la misma semántica
// que la consulta real: umbral de stock bajo inclusivo y precio 0 como "sin
// precio".
type fakeProductRepo struct {
	rows    []repository.ProductWithPrice
	noPrice map[int64]bool
}

func (f *fakeProductRepo) List(_ context.Context) ([]entity.Product, error) {
	out := make([]entity.Product, 0, len(f.rows))
	for _, r := range f.rows {
		out = append(out, entity.Product{ID: r.ID, Name: r.Name, Stock: r.Stock})
	}
	return out, nil
}

func (f *fakeProductRepo) ListFiltered(_ context.Context, filter repository.ProductFilter) ([]repository.ProductWithPrice, error) {
	switch filter {
	case repository.FilterAll:
		return f.rows, nil
	case repository.FilterLowStock:
		var out []repository.ProductWithPrice
		for _, r := range f.rows {
			if r.Stock <= entity.LowStockThreshold {
				out = append(out, r)
			}
		}
		return out, nil
	case repository.FilterMissingPrice:
		var out []repository.ProductWithPrice
		for _, r := range f.rows {
			if f.noPrice[r.ID] {
				out = append(out, r)
			}
		}
		return out, nil
	default:
		return nil, domain.ErrInvalidInput
	}
}

func (f *fakeProductRepo) GetPrice(_ context.Context, _ int64) (int64, error) { return 0, nil }
func (f *fakeProductRepo) GetStock(_ context.Context, _ int64) (int, error)   { return 0, nil }
func (f *fakeProductRepo) AdjustStock(_ context.Context, _ int64, _ int) error {
	return nil
}
func (f *fakeProductRepo) DecrementStock(_ context.Context, _ int64, _ int) error {
	return nil
}

func (f *fakeProductRepo) Create(_ context.Context, name string, netAmount, _ int64, stock int) (int64, error) {
	id := int64(len(f.rows) + 1)
	f.rows = append(f.rows, repository.ProductWithPrice{ID: id, Name: name, NetAmount: netAmount, Stock: stock})
	return id, nil
}

func (f *fakeProductRepo) Update(_ context.Context, productID int64, netAmount, _ int64, stock int) error {
	for i := range f.rows {
		if f.rows[i].ID == productID {
			f.rows[i].NetAmount = netAmount
			f.rows[i].Stock = stock
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeProductRepo) Delete(_ context.Context, productID int64) error {
	for i := range f.rows {
		if f.rows[i].ID == productID {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// ──────────────────────────────────────────────────────────────────────────────
// ParseFilter
// ──────────────────────────────────────────────────────────────────────────────

func TestParseFilter(t *testing.T) {
	f, err := catalog.ParseFilter("")
	require.NoError(t, err)
	assert.Equal(t, repository.FilterAll, f)

	f, err = catalog.ParseFilter("low-stock")
	require.NoError(t, err)
	assert.Equal(t, repository.FilterLowStock, f)

	f, err = catalog.ParseFilter("missing-price")
	require.NoError(t, err)
	assert.Equal(t, repository.FilterMissingPrice, f)

	_, err = catalog.ParseFilter("todo")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// List
// ──────────────────────────────────────────────────────────────────────────────

// El umbral de stock bajo es inclusivo: 30 califica, 31 no.
func TestList_FiltroStockBajo(t *testing.T) {
	repo := &fakeProductRepo{rows: []repository.ProductWithPrice{
		{ID: 1, Name: "Tornillo", NetAmount: 100, Stock: 10},
		{ID: 2, Name: "Tuerca", NetAmount: 50, Stock: 40},
		{ID: 3, Name: "Clavo", NetAmount: 20, Stock: 30},
	}}
	uc := catalog.NewUseCase(repo)

	out, err := uc.List(context.Background(), repository.FilterLowStock)
	require.NoError(t, err)
	require.Equal(t, 2, out.Total)
	assert.Equal(t, int64(1), out.Items[0].ID)
	assert.Equal(t, int64(3), out.Items[1].ID)
}

func TestList_SinFiltro(t *testing.T) {
	repo := &fakeProductRepo{rows: []repository.ProductWithPrice{
		{ID: 1, Name: "Tornillo", NetAmount: 100, Stock: 10},
		{ID: 2, Name: "Tuerca", Stock: 40},
	}}
	uc := catalog.NewUseCase(repo)

	out, err := uc.List(context.Background(), repository.FilterAll)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Total)
	assert.Equal(t, int64(0), out.Items[1].NetPrice, "sin precio se refleja como 0")
}

// ──────────────────────────────────────────────────────────────────────────────
// Create / Update
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_Validaciones(t *testing.T) {
	uc := catalog.NewUseCase(&fakeProductRepo{})

	cases := []struct {
		name string
		in   dto.CreateProductRequest
	}{
		{"nombre vacío", dto.CreateProductRequest{Name: "", NetPrice: 100, Stock: 1}},
		{"precio negativo", dto.CreateProductRequest{Name: "X", NetPrice: -1, Stock: 1}},
		{"utilidad negativa", dto.CreateProductRequest{Name: "X", NetPrice: 100, NetProfit: -1, Stock: 1}},
		{"stock negativo", dto.CreateProductRequest{Name: "X", NetPrice: 100, Stock: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(context.Background(), tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestCreate_Valido(t *testing.T) {
	uc := catalog.NewUseCase(&fakeProductRepo{})
	id, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Widget", NetPrice: 200, NetProfit: 50, Stock: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestUpdate_ProductoInexistente(t *testing.T) {
	uc := catalog.NewUseCase(&fakeProductRepo{})
	err := uc.Update(context.Background(), 99, dto.UpdateProductRequest{NetPrice: 100, Stock: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// InventoryTable
// ──────────────────────────────────────────────────────────────────────────────

func TestInventoryTable(t *testing.T) {
	repo := &fakeProductRepo{rows: []repository.ProductWithPrice{
		{ID: 1, Name: "Widget", NetAmount: 200, Stock: 10},
	}}
	uc := catalog.NewUseCase(repo)

	table, err := uc.InventoryTable(context.Background(), repository.FilterAll)
	require.NoError(t, err)
	assert.Equal(t, "Inventario", table.Title)
	assert.Equal(t, []string{"Id", "Nombre", "Precio", "Stock"}, table.Columns)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"1", "Widget", "200", "10"}, table.Rows[0])
}
