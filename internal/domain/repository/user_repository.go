package repository

import "github.com/jhoicas/panaderia-demo/internal/domain/entity"

// UserRepository acceso a la colección de usuarios. Las lecturas nunca
// fallan: datos ausentes o corruptos se sustituyen por la colección vacía.
type UserRepository interface {
	List() []entity.User
	GetByID(id int64) *entity.User
	Replace(users []entity.User) error
}
