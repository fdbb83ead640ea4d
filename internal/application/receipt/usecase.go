package receipt

import (
	"fmt"

	"github.com/jhoicas/panaderia-demo/internal/domain"
	"github.com/jhoicas/panaderia-demo/internal/domain/entity"
	"github.com/jhoicas/panaderia-demo/internal/domain/repository"
)

// Line línea de recibo con el nombre del producto resuelto al momento de
// renderizar (la venta solo guarda el id).
type Line struct {
	ProductName string
	Item        entity.SaleItem
}

// ShopInfo datos del local impresos en el encabezado.
type ShopInfo struct {
	Name    string
	Address string
	Phone   string
}

// PDFGenerator renderiza el recibo; lo implementa infrastructure/pdf.
type PDFGenerator interface {
	GenerateReceiptPDF(sale *entity.Sale, cashierName string, lines []Line, shop ShopInfo) ([]byte, error)
}

// UseCase genera la representación PDF compartible de una venta.
type UseCase struct {
	sales    repository.SaleRepository
	products repository.ProductRepository
	users    repository.UserRepository
	gen      PDFGenerator
	shop     ShopInfo
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	sales repository.SaleRepository,
	products repository.ProductRepository,
	users repository.UserRepository,
	gen PDFGenerator,
	shop ShopInfo,
) *UseCase {
	return &UseCase{sales: sales, products: products, users: users, gen: gen, shop: shop}
}

// ReceiptPDF genera el PDF del recibo de la venta indicada. Los nombres de
// producto se resuelven contra el snapshot actual; si un producto fue
// borrado después de la venta se usa un nombre genérico (el precio impreso
// sigue siendo la foto tomada al vender).
func (uc *UseCase) ReceiptPDF(saleID int64) ([]byte, error) {
	sale := uc.sales.GetByID(saleID)
	if sale == nil {
		return nil, domain.ErrNotFound
	}

	lines := make([]Line, 0, len(sale.Items))
	for _, it := range sale.Items {
		name := fmt.Sprintf("Producto %d", it.ProductID)
		if p := uc.products.GetByID(it.ProductID); p != nil {
			name = p.Name
		}
		lines = append(lines, Line{ProductName: name, Item: it})
	}

	cashierName := ""
	if sale.CashierID != entity.CashierNone {
		if u := uc.users.GetByID(sale.CashierID); u != nil {
			cashierName = u.Name
		}
	}

	return uc.gen.GenerateReceiptPDF(sale, cashierName, lines, uc.shop)
}
