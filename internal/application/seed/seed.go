// Package seed puebla el almacén con el dataset inicial de la demo
// exactamente una vez, detrás de una marca persistida.
package seed

import (
	"time"

	"github.com/jhoicas/panaderia-demo/internal/domain/entity"
	"github.com/jhoicas/panaderia-demo/internal/domain/repository"
	"github.com/jhoicas/panaderia-demo/pkg/money"
)

// Marker marca persistida de sembrado (la implementa el almacén local).
type Marker interface {
	Seeded() bool
	MarkSeeded() error
}

// Initializer siembra usuarios, productos y colecciones vacías de ventas y
// mensajes. Seguro de llamar en cada arranque del proceso.
type Initializer struct {
	marker   Marker
	users    repository.UserRepository
	products repository.ProductRepository
	sales    repository.SaleRepository
	contacts repository.ContactRepository
}

// NewInitializer construye el inicializador.
func NewInitializer(
	marker Marker,
	users repository.UserRepository,
	products repository.ProductRepository,
	sales repository.SaleRepository,
	contacts repository.ContactRepository,
) *Initializer {
	return &Initializer{
		marker:   marker,
		users:    users,
		products: products,
		sales:    sales,
		contacts: contacts,
	}
}

// SeedOnce escribe el dataset inicial si aún no fue sembrado. Idempotente:
// con la marca puesta no toca ninguna colección.
func (i *Initializer) SeedOnce() error {
	if i.marker.Seeded() {
		return nil
	}

	now := time.Now()
	if err := i.users.Replace(starterUsers()); err != nil {
		return err
	}
	if err := i.products.Replace(starterProducts(now)); err != nil {
		return err
	}
	if err := i.sales.Replace([]entity.Sale{}); err != nil {
		return err
	}
	if err := i.contacts.Replace([]entity.ContactMessage{}); err != nil {
		return err
	}
	return i.marker.MarkSeeded()
}

func starterUsers() []entity.User {
	return []entity.User{
		{
			ID:       1,
			Name:     "Marta Quintero",
			Email:    "marta@panaderia.local",
			Roles:    []string{entity.RoleManager, entity.RoleCashier},
			Password: "admin123",
			Active:   true,
		},
		{
			ID:       2,
			Name:     "Julián Pardo",
			Email:    "julian@panaderia.local",
			Roles:    []string{entity.RoleStockist},
			Password: "bodega123",
			Active:   true,
		},
		{
			ID:       3,
			Name:     "Sofía Reyes",
			Email:    "sofia@panaderia.local",
			Roles:    []string{entity.RoleCashier},
			Password: "caja123",
			Active:   true,
		},
	}
}

func starterProducts(now time.Time) []entity.Product {
	inDays := func(d int) *time.Time {
		t := now.AddDate(0, 0, d)
		return &t
	}
	cost := func(localized string) *int64 {
		c := money.ParseToCents(localized)
		return &c
	}
	return []entity.Product{
		{
			ID: 1, Name: "Pan campesino", Description: "Hogaza de masa madre",
			PriceCents: money.ParseToCents("3,50"), CostCents: cost("1,20"),
			Quantity: 24, ExpiresAt: inDays(2), Category: entity.CategoryBread,
			Active: true, CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: 2, Name: "Croissant de mantequilla",
			PriceCents: money.ParseToCents("2,80"), CostCents: cost("0,90"),
			Quantity: 30, ExpiresAt: inDays(1), Category: entity.CategoryBread,
			Active: true, CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: 3, Name: "Torta de chocolate", Description: "Porción individual",
			PriceCents: money.ParseToCents("6,00"), CostCents: cost("2,40"),
			Quantity: 12, ExpiresAt: inDays(3), Category: entity.CategoryCakes,
			Active: true, CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: 4, Name: "Alfajor de maicena",
			PriceCents: money.ParseToCents("1,75"), CostCents: cost("0,60"),
			Quantity: 40, ExpiresAt: inDays(7), Category: entity.CategorySweets,
			Active: true, CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: 5, Name: "Café de la casa 250g", Description: "Grano molido",
			PriceCents: money.ParseToCents("9,90"),
			Quantity: 15, Category: entity.CategoryOther,
			Active: true, CreatedAt: now, UpdatedAt: now,
		},
	}
}
