package dto

import "time"

// UpsertProductRequest es el "parche" tipado del upsert: todos los campos
// son opcionales y se funden campo a campo contra el registro existente
// (nunca un merge estructural sin tipos). Price y Cost llegan como el texto
// localizado del editor ("3,50", "1.234,56") y se convierten a centavos.
type UpsertProductRequest struct {
	ID          *int64     `json:"id,omitempty"`
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	Price       *string    `json:"price,omitempty"`
	Cost        *string    `json:"cost,omitempty"`
	Quantity    *int64     `json:"quantity,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Active      *bool      `json:"is_active,omitempty"`
	ImageURL    *string    `json:"image_url,omitempty"`
}

// ProductResponse producto para la capa de presentación. Price es el texto
// localizado listo para el editor (round-trip con el parser de montos).
type ProductResponse struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	PriceCents  int64      `json:"price_cents"`
	Price       string     `json:"price"`
	CostCents   *int64     `json:"cost_cents,omitempty"`
	Quantity    int64      `json:"quantity"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	Category    string     `json:"category"`
	Active      bool       `json:"is_active"`
	ImageURL    string     `json:"image_url,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
