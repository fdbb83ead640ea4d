package dto

import "time"

// ProductExpiryDTO clasificación de vencimiento de un producto.
type ProductExpiryDTO struct {
	ProductID int64      `json:"product_id"`
	Name      string     `json:"name"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Status    string     `json:"status"` // expired, expiring_soon, ok
}

// ClosingSummaryDTO cierre de caja de un día calendario: ventas del día
// desglosadas por método de pago. Derivación pura, nunca se persiste.
type ClosingSummaryDTO struct {
	Date               string           `json:"date"` // YYYY-MM-DD
	SalesCount         int              `json:"sales_count"`
	TotalCents         int64            `json:"total_cents"`
	DiscountCents      int64            `json:"discount_cents"`
	ByMethodCents      map[string]int64 `json:"by_method_cents"`
	AverageTicketCents int64            `json:"average_ticket_cents"`
}
