package repository

import "github.com/jhoicas/panaderia-demo/internal/domain/entity"

// SaleRepository acceso a la colección de ventas (snapshot completo).
type SaleRepository interface {
	List() []entity.Sale
	GetByID(id int64) *entity.Sale
	Replace(sales []entity.Sale) error
}
