package entity

import "time"

// Categorías válidas para Product.
const (
	CategoryBread  = "bread"
	CategoryCakes  = "cakes"
	CategorySweets = "sweets"
	CategoryOther  = "other"
)

// Product representa un producto de la vitrina. Los precios se manejan en
// centavos enteros; Quantity solo la valida la creación de ventas (no se
// recorta en otros flujos). Invariante: UpdatedAt ≥ CreatedAt, refrescado en
// cada mutación.
type Product struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	PriceCents  int64      `json:"price_cents"`
	CostCents   *int64     `json:"cost_cents,omitempty"`
	Quantity    int64      `json:"quantity"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	Category    string     `json:"category"` // bread, cakes, sweets, other
	Active      bool       `json:"is_active"`
	ImageURL    string     `json:"image_url,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
