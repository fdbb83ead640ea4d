package localstore

import (
	"github.com/jhoicas/panaderia-demo/internal/domain/entity"
)

// UserRepository implementación sobre el almacén local.
type UserRepository struct {
	store *Store
}

// NewUserRepository construye el repositorio.
func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

// List devuelve el snapshot completo de usuarios (vacío si no hay datos).
func (r *UserRepository) List() []entity.User {
	return Get(r.store, KeyUsers, []entity.User{})
}

// GetByID busca un usuario por id; nil si no existe.
func (r *UserRepository) GetByID(id int64) *entity.User {
	for _, u := range r.List() {
		if u.ID == id {
			return &u
		}
	}
	return nil
}

// Replace escribe el snapshot completo de usuarios.
func (r *UserRepository) Replace(users []entity.User) error {
	return Set(r.store, KeyUsers, users)
}
