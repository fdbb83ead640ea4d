package localstore

import (
	"github.com/jhoicas/panaderia-demo/internal/domain/entity"
)

// SaleRepository implementación sobre el almacén local.
type SaleRepository struct {
	store *Store
}

// NewSaleRepository construye el repositorio.
func NewSaleRepository(store *Store) *SaleRepository {
	return &SaleRepository{store: store}
}

// List devuelve el snapshot completo de ventas (vacío si no hay datos).
func (r *SaleRepository) List() []entity.Sale {
	return Get(r.store, KeySales, []entity.Sale{})
}

// GetByID busca una venta por id; nil si no existe.
func (r *SaleRepository) GetByID(id int64) *entity.Sale {
	for _, s := range r.List() {
		if s.ID == id {
			return &s
		}
	}
	return nil
}

// Replace escribe el snapshot completo de ventas.
func (r *SaleRepository) Replace(sales []entity.Sale) error {
	return Set(r.store, KeySales, sales)
}
