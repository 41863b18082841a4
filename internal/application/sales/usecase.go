// Package sales contiene las reglas de negocio de las ventas: validación de
// cantidades, valorización con recargo y registro transaccional.
package sales

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/matex-app/matex-api/internal/application/dto"
	"github.com/matex-app/matex-api/internal/domain"
	"github.com/matex-app/matex-api/internal/domain/entity"
	"github.com/matex-app/matex-api/internal/domain/repository"
)

// DateLayout formato de fecha de las ventas (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// surchargeFactor recargo fijo aplicado sobre el precio neto.
var surchargeFactor = decimal.NewFromFloat(1.19)

// ItemRequest cantidad pedida de un producto junto con el contexto necesario
// para validarla (nombre para los mensajes, stock disponible para el tope).
type ItemRequest struct {
	QuantityInput  string
	ProductName    string
	AvailableStock int
}

// UseCase casos de uso de ventas.
type UseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, productRepo repository.ProductRepository, saleRepo repository.SaleRepository) *UseCase {
	return &UseCase{txRunner: txRunner, productRepo: productRepo, saleRepo: saleRepo}
}

// grossAmount monto bruto de una línea: precio neto × recargo × cantidad,
// redondeado half-up una única vez sobre el total de la línea.
func grossAmount(netPrice int64, qty int) int64 {
	return decimal.NewFromInt(netPrice).
		Mul(surchargeFactor).
		Mul(decimal.NewFromInt(int64(qty))).
		Round(0).
		IntPart()
}

// PrepareLineItems valida y valoriza las cantidades pedidas. Las entradas no
// numéricas o <= 0 se descartan en silencio (significan "no comprado"); una
// cantidad mayor al stock disponible aborta el lote completo. Las líneas
// salen en orden determinista por id de producto.
func (uc *UseCase) PrepareLineItems(ctx context.Context, requested map[int64]ItemRequest) ([]dto.SaleLineItem, error) {
	ids := make([]int64, 0, len(requested))
	for id := range requested {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	items := make([]dto.SaleLineItem, 0, len(ids))
	for _, id := range ids {
		req := requested[id]
		qty, err := strconv.Atoi(strings.TrimSpace(req.QuantityInput))
		if err != nil || qty <= 0 {
			continue
		}
		if qty > req.AvailableStock {
			return nil, fmt.Errorf("%w: %s", domain.ErrInsufficientStock, req.ProductName)
		}
		price, err := uc.productRepo.GetPrice(ctx, id)
		if err != nil {
			return nil, err
		}
		items = append(items, dto.SaleLineItem{
			ProductID:   id,
			ProductName: req.ProductName,
			Quantity:    qty,
			Amount:      grossAmount(price, qty),
		})
	}
	return items, nil
}

// CommitSale persiste la venta completa en una sola transacción: cabecera,
// líneas y descuento de stock. Si algún producto queda sin stock suficiente
// al momento de descontar, nada se persiste.
func (uc *UseCase) CommitSale(ctx context.Context, date time.Time, paymentMethod string, items []dto.SaleLineItem) (int64, error) {
	if len(items) == 0 {
		return 0, fmt.Errorf("%w: venta sin líneas", domain.ErrInvalidInput)
	}
	var totalAmount int64
	var totalQuantity int
	for _, it := range items {
		totalAmount += it.Amount
		totalQuantity += it.Quantity
	}

	var saleID int64
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, saleRepo repository.SaleRepository) error {
		sale := &entity.Sale{
			Date:          date,
			PaymentMethod: paymentMethod,
			TotalAmount:   totalAmount,
			TotalQuantity: totalQuantity,
		}
		id, err := saleRepo.InsertHeader(ctx, sale)
		if err != nil {
			return err
		}
		for _, it := range items {
			line := &entity.SaleLine{
				SaleID:    id,
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				Amount:    it.Amount,
			}
			if err := saleRepo.InsertLine(ctx, line); err != nil {
				return err
			}
			if err := productRepo.DecrementStock(ctx, it.ProductID, it.Quantity); err != nil {
				if errors.Is(err, domain.ErrInsufficientStock) {
					return fmt.Errorf("%w: %s", domain.ErrInsufficientStock, it.ProductName)
				}
				return err
			}
		}
		saleID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return saleID, nil
}

// CreateSale orquesta el alta completa: parseo de fecha, resolución de
// productos, validación de cantidades y registro transaccional.
func (uc *UseCase) CreateSale(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleCreatedResponse, error) {
	date, err := time.Parse(DateLayout, in.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha %q", domain.ErrInvalidInput, in.Date)
	}
	if in.PaymentMethod == "" {
		return nil, fmt.Errorf("%w: forma de pago vacía", domain.ErrInvalidInput)
	}

	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	requested := make(map[int64]ItemRequest, len(in.Items))
	for _, it := range in.Items {
		p, ok := byID[it.ProductID]
		if !ok {
			return nil, fmt.Errorf("%w: producto %d", domain.ErrNotFound, it.ProductID)
		}
		requested[it.ProductID] = ItemRequest{
			QuantityInput:  it.Quantity,
			ProductName:    p.Name,
			AvailableStock: p.Stock,
		}
	}

	items, err := uc.PrepareLineItems(ctx, requested)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: ninguna cantidad válida", domain.ErrInvalidInput)
	}

	id, err := uc.CommitSale(ctx, date, in.PaymentMethod, items)
	if err != nil {
		return nil, err
	}
	return &dto.SaleCreatedResponse{ID: id, Lines: items}, nil
}

// CancelSale anula una venta devolviendo el stock de cada línea y borrando
// líneas y cabecera, todo en una transacción.
func (uc *UseCase) CancelSale(ctx context.Context, saleID int64) error {
	return uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, saleRepo repository.SaleRepository) error {
		// Las cantidades se leen antes de borrar las líneas.
		quantities, err := saleRepo.LineQuantities(ctx, saleID)
		if err != nil {
			return err
		}
		for _, lq := range quantities {
			if err := productRepo.AdjustStock(ctx, lq.ProductID, lq.Quantity); err != nil {
				return err
			}
		}
		if err := saleRepo.DeleteLines(ctx, saleID); err != nil {
			return err
		}
		return saleRepo.DeleteHeader(ctx, saleID)
	})
}

// ListSales devuelve las ventas del rango (o todas si r es nil), de la más
// reciente a la más antigua.
func (uc *UseCase) ListSales(ctx context.Context, r *repository.DateRange) ([]dto.SaleResponse, error) {
	rows, err := uc.saleRepo.List(ctx, r)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(rows))
	for _, s := range rows {
		out = append(out, dto.SaleResponse{
			ID:            s.ID,
			Date:          s.Date.Format(DateLayout),
			PaymentMethod: s.PaymentMethod,
			TotalQuantity: s.TotalQuantity,
			TotalAmount:   s.TotalAmount,
		})
	}
	return out, nil
}

// SaleLines devuelve el detalle de líneas de una venta.
func (uc *UseCase) SaleLines(ctx context.Context, saleID int64) ([]dto.SaleLineResponse, error) {
	rows, err := uc.saleRepo.Lines(ctx, saleID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleLineResponse, 0, len(rows))
	for _, l := range rows {
		out = append(out, dto.SaleLineResponse{
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			Amount:      l.Amount,
		})
	}
	return out, nil
}

// SalesTable arma la tabla plana de ventas del rango para exportar.
func (uc *UseCase) SalesTable(ctx context.Context, r *repository.DateRange) (dto.Table, error) {
	rows, err := uc.saleRepo.List(ctx, r)
	if err != nil {
		return dto.Table{}, err
	}
	t := dto.Table{
		Title:   "Ventas",
		Columns: []string{"Id", "Fecha", "Forma De Pago", "Total Productos", "Monto Total"},
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, s := range rows {
		t.Rows = append(t.Rows, []string{
			strconv.FormatInt(s.ID, 10),
			s.Date.Format(DateLayout),
			s.PaymentMethod,
			strconv.Itoa(s.TotalQuantity),
			strconv.FormatInt(s.TotalAmount, 10),
		})
	}
	return t, nil
}
