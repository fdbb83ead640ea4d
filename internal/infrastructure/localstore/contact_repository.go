package localstore

import (
	"github.com/jhoicas/panaderia-demo/internal/domain/entity"
)

// ContactRepository implementación sobre el almacén local.
type ContactRepository struct {
	store *Store
}

// NewContactRepository construye el repositorio.
func NewContactRepository(store *Store) *ContactRepository {
	return &ContactRepository{store: store}
}

// List devuelve el snapshot completo de mensajes (vacío si no hay datos).
func (r *ContactRepository) List() []entity.ContactMessage {
	return Get(r.store, KeyContacts, []entity.ContactMessage{})
}

// Replace escribe el snapshot completo de mensajes.
func (r *ContactRepository) Replace(messages []entity.ContactMessage) error {
	return Set(r.store, KeyContacts, messages)
}
