package repository

import "github.com/jhoicas/panaderia-demo/internal/domain/entity"

// ContactRepository acceso a los mensajes de contacto (append-only).
type ContactRepository interface {
	List() []entity.ContactMessage
	Replace(messages []entity.ContactMessage) error
}
