// Package sales implementa la operación más delicada del backend simulado:
// crear una venta validando existencia y stock de cada línea, congelando los
// precios unitarios y descontando inventario, todo o nada.
package sales

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/jhoicas/panaderia-demo/internal/application/dto"
	"github.com/jhoicas/panaderia-demo/internal/domain"
	"github.com/jhoicas/panaderia-demo/internal/domain/entity"
	"github.com/jhoicas/panaderia-demo/internal/domain/repository"
)

// Prefijo del código de recibo compartible.
const receiptPrefix = "PAN-"

const receiptTokenLen = 6

// CashierResolver resuelve el usuario autenticado al momento de vender
// (lo implementa auth.UseCase).
type CashierResolver interface {
	CurrentCashierID() int64
}

// Listener recibe la venta recién confirmada. Se invoca después del commit,
// nunca dentro de la transacción.
type Listener func(sale entity.Sale)

// UseCase creación y consulta de ventas.
type UseCase struct {
	tx       repository.TxRunner
	products repository.ProductRepository
	sales    repository.SaleRepository
	cashier  CashierResolver

	mu        sync.Mutex
	listeners []Listener
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	tx repository.TxRunner,
	products repository.ProductRepository,
	sales repository.SaleRepository,
	cashier CashierResolver,
) *UseCase {
	return &UseCase{tx: tx, products: products, sales: sales, cashier: cashier}
}

// Subscribe registra un observador notificado tras cada venta confirmada
// (por ejemplo, la vista de órdenes que se refresca sin polling).
func (uc *UseCase) Subscribe(fn Listener) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.listeners = append(uc.listeners, fn)
}

// Create registra una venta de forma atómica:
//
//  1. Carga los snapshots completos de productos y ventas bajo el candado de
//     transacción.
//  2. Valida cada línea (existencia, luego stock suficiente) y congela el
//     precio unitario vigente; ids de ítem secuenciales base 1 en orden de
//     entrada.
//  3. total = max(0, Σ subtotales − descuento); paid = total.
//  4. Id de venta = max existente + 1; código de recibo PAN-<token base 36>
//     único frente al historial.
//  5. Escribe juntas la colección de ventas (con la nueva al final) y la de
//     productos (cantidades descontadas, updated_at refrescado).
//
// Si alguna validación falla no se escribe nada: ni venta parcial ni stock
// tocado.
func (uc *UseCase) Create(in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.DiscountCents < 0 {
		return nil, domain.ErrInvalidInput
	}
	if !validPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}
	for _, line := range in.Items {
		if line.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	var created entity.Sale
	err := uc.tx.Run(func() error {
		products := uc.products.List()
		sales := uc.sales.List()
		now := time.Now()

		byID := make(map[int64]int, len(products))
		for i := range products {
			byID[products[i].ID] = i
		}

		// Validar todas las líneas antes de mutar nada
		items := make([]entity.SaleItem, 0, len(in.Items))
		consumed := make(map[int64]int64)
		var sum int64
		for n, line := range in.Items {
			idx, ok := byID[line.ProductID]
			if !ok {
				return fmt.Errorf("%w: id %d", domain.ErrProductNotFound, line.ProductID)
			}
			p := &products[idx]
			if p.Quantity-consumed[p.ID] < line.Quantity {
				return fmt.Errorf("%w: %s (id %d)", domain.ErrInsufficientStock, p.Name, p.ID)
			}
			consumed[p.ID] += line.Quantity
			subtotal := p.PriceCents * line.Quantity
			sum += subtotal
			items = append(items, entity.SaleItem{
				ID:             int64(n + 1),
				ProductID:      p.ID,
				Quantity:       line.Quantity,
				UnitPriceCents: p.PriceCents, // foto del precio vigente
				SubtotalCents:  subtotal,
			})
		}

		total := sum - in.DiscountCents
		if total < 0 {
			total = 0
		}

		created = entity.Sale{
			ID:            nextSaleID(sales),
			CashierID:     uc.cashier.CurrentCashierID(),
			Items:         items,
			TotalCents:    total,
			DiscountCents: in.DiscountCents,
			PaidCents:     total,
			PaymentMethod: in.PaymentMethod,
			IssuedAt:      now,
			ReceiptCode:   newReceiptCode(sales),
		}

		// Descontar stock de los productos referenciados; el resto pasa igual
		for id, qty := range consumed {
			p := &products[byID[id]]
			p.Quantity -= qty
			p.UpdatedAt = now
		}

		if err := uc.sales.Replace(append(sales, created)); err != nil {
			return err
		}
		return uc.products.Replace(products)
	})
	if err != nil {
		return nil, err
	}

	uc.notify(created)
	return toSaleResponse(&created), nil
}

// List devuelve todas las ventas registradas.
func (uc *UseCase) List() []dto.SaleResponse {
	sales := uc.sales.List()
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, *toSaleResponse(&s))
	}
	return out
}

// GetByID obtiene una venta por id; nil si no existe.
func (uc *UseCase) GetByID(id int64) *dto.SaleResponse {
	return toSaleResponse(uc.sales.GetByID(id))
}

func (uc *UseCase) notify(sale entity.Sale) {
	uc.mu.Lock()
	listeners := make([]Listener, len(uc.listeners))
	copy(listeners, uc.listeners)
	uc.mu.Unlock()

	for _, fn := range listeners {
		fn(sale)
	}
}

func nextSaleID(sales []entity.Sale) int64 {
	var max int64
	for _, s := range sales {
		if s.ID > max {
			max = s.ID
		}
	}
	return max + 1
}

// newReceiptCode genera PAN-<token base 36 en mayúsculas> y regenera ante
// colisión con cualquier código previo.
func newReceiptCode(sales []entity.Sale) string {
	taken := make(map[string]bool, len(sales))
	for _, s := range sales {
		taken[s.ReceiptCode] = true
	}
	for {
		code := receiptPrefix + randomBase36(receiptTokenLen)
		if !taken[code] {
			return code
		}
	}
}

const base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func randomBase36(n int) string {
	b := make([]byte, n)
	max := big.NewInt(int64(len(base36Alphabet)))
	for i := range b {
		r, err := rand.Int(rand.Reader, max)
		if err != nil {
			// rand.Reader no falla en la práctica; degradar a '0' mantiene
			// el formato del código
			b[i] = base36Alphabet[0]
			continue
		}
		b[i] = base36Alphabet[r.Int64()]
	}
	return string(b)
}

func validPaymentMethod(m string) bool {
	switch m {
	case entity.PaymentCash, entity.PaymentCard, entity.PaymentTransfer:
		return true
	}
	return false
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemResponse{
			ID:             it.ID,
			ProductID:      it.ProductID,
			Quantity:       it.Quantity,
			UnitPriceCents: it.UnitPriceCents,
			SubtotalCents:  it.SubtotalCents,
		})
	}
	return &dto.SaleResponse{
		ID:            s.ID,
		CashierID:     s.CashierID,
		Items:         items,
		TotalCents:    s.TotalCents,
		DiscountCents: s.DiscountCents,
		PaidCents:     s.PaidCents,
		PaymentMethod: s.PaymentMethod,
		IssuedAt:      s.IssuedAt,
		ReceiptCode:   s.ReceiptCode,
	}
}
