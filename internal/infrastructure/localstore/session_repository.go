package localstore

import (
	"github.com/jhoicas/panaderia-demo/internal/domain/entity"
)

// SessionRepository implementación sobre el almacén local. La sesión es una
// tabla lógica de una fila: Put sobreescribe, Clear la elimina.
type SessionRepository struct {
	store *Store
}

// NewSessionRepository construye el repositorio.
func NewSessionRepository(store *Store) *SessionRepository {
	return &SessionRepository{store: store}
}

// Get devuelve la sesión vigente o nil si no hay (o el payload es ilegible).
func (r *SessionRepository) Get() *entity.Session {
	s := Get(r.store, KeySession, entity.Session{})
	if s.Token == "" {
		return nil
	}
	return &s
}

// Put sobreescribe la sesión (el último login gana).
func (r *SessionRepository) Put(s entity.Session) error {
	return Set(r.store, KeySession, s)
}

// Clear elimina la sesión. Idempotente.
func (r *SessionRepository) Clear() error {
	return r.store.Remove(KeySession)
}
