package repository

import "github.com/jhoicas/panaderia-demo/internal/domain/entity"

// SessionRepository acceso al registro único de sesión. Get retorna nil si
// no hay sesión vigente; Clear es idempotente.
type SessionRepository interface {
	Get() *entity.Session
	Put(s entity.Session) error
	Clear() error
}
