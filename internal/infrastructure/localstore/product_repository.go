package localstore

import (
	"github.com/jhoicas/panaderia-demo/internal/domain/entity"
)

// ProductRepository implementación sobre el almacén local.
type ProductRepository struct {
	store *Store
}

// NewProductRepository construye el repositorio.
func NewProductRepository(store *Store) *ProductRepository {
	return &ProductRepository{store: store}
}

// List devuelve el snapshot completo de productos (vacío si no hay datos).
func (r *ProductRepository) List() []entity.Product {
	return Get(r.store, KeyProducts, []entity.Product{})
}

// GetByID busca un producto por id; nil si no existe.
func (r *ProductRepository) GetByID(id int64) *entity.Product {
	for _, p := range r.List() {
		if p.ID == id {
			return &p
		}
	}
	return nil
}

// Replace escribe el snapshot completo de productos.
func (r *ProductRepository) Replace(products []entity.Product) error {
	return Set(r.store, KeyProducts, products)
}
