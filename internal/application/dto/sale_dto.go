package dto

import "time"

// SaleLineRequest línea solicitada de una venta.
type SaleLineRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"qty"`
}

// CreateSaleRequest entrada para crear una venta.
type CreateSaleRequest struct {
	Items         []SaleLineRequest `json:"items"`
	DiscountCents int64             `json:"discount_cents"`
	PaymentMethod string            `json:"payment_method"` // cash, card, transfer
}

// SaleItemResponse línea de venta resuelta.
type SaleItemResponse struct {
	ID             int64 `json:"id"`
	ProductID      int64 `json:"product_id"`
	Quantity       int64 `json:"qty"`
	UnitPriceCents int64 `json:"unit_price_cents"`
	SubtotalCents  int64 `json:"subtotal_cents"`
}

// SaleResponse venta registrada con sus ítems resueltos.
type SaleResponse struct {
	ID            int64              `json:"id"`
	CashierID     int64              `json:"cashier_id"`
	Items         []SaleItemResponse `json:"items"`
	TotalCents    int64              `json:"total_cents"`
	DiscountCents int64              `json:"discount_cents"`
	PaidCents     int64              `json:"paid_cents"`
	PaymentMethod string             `json:"payment_method"`
	IssuedAt      time.Time          `json:"issued_at"`
	ReceiptCode   string             `json:"receipt_code"`
}
