package repository

import "github.com/jhoicas/panaderia-demo/internal/domain/entity"

// ProductRepository acceso a la colección de productos. Toda mutación es
// snapshot completo: leer la colección, calcular la sucesora y escribirla
// entera de vuelta (base del argumento de atomicidad).
type ProductRepository interface {
	List() []entity.Product
	GetByID(id int64) *entity.Product
	Replace(products []entity.Product) error
}
