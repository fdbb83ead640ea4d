package entity

import "time"

// Métodos de pago válidos para Sale. El pago se registra, no se liquida.
const (
	PaymentCash     = "cash"
	PaymentCard     = "card"
	PaymentTransfer = "transfer" // transferencia instantánea
)

// CashierNone id centinela cuando no hay usuario autenticado al vender.
const CashierNone int64 = 0

// Sale es una venta registrada. Se crea atómicamente como unidad y es
// inmutable después: los ítems nunca se editan ni eliminan por separado.
// Invariantes: TotalCents = max(0, Σ item.SubtotalCents − DiscountCents);
// PaidCents = TotalCents (sin pagos parciales).
type Sale struct {
	ID            int64      `json:"id"`
	CashierID     int64      `json:"cashier_id"`
	Items         []SaleItem `json:"items"`
	TotalCents    int64      `json:"total_cents"`
	DiscountCents int64      `json:"discount_cents"`
	PaidCents     int64      `json:"paid_cents"`
	PaymentMethod string     `json:"payment_method"` // cash, card, transfer
	IssuedAt      time.Time  `json:"issued_at"`
	ReceiptCode   string     `json:"receipt_code"`
}

// SaleItem es una línea de venta. UnitPriceCents es una foto del precio del
// producto al momento de la venta (no se recalcula después).
type SaleItem struct {
	ID             int64 `json:"id"` // secuencial dentro de la venta, base 1
	ProductID      int64 `json:"product_id"`
	Quantity       int64 `json:"qty"`
	UnitPriceCents int64 `json:"unit_price_cents"`
	SubtotalCents  int64 `json:"subtotal_cents"`
}
