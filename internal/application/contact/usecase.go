package contact

import (
	"time"

	"github.com/jhoicas/panaderia-demo/internal/application/dto"
	"github.com/jhoicas/panaderia-demo/internal/domain/entity"
	"github.com/jhoicas/panaderia-demo/internal/domain/repository"
)

// UseCase mensajes del formulario de contacto. Append-only: enviar siempre
// tiene éxito y nada se edita ni borra.
type UseCase struct {
	repo repository.ContactRepository
	tx   repository.TxRunner
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.ContactRepository, tx repository.TxRunner) *UseCase {
	return &UseCase{repo: repo, tx: tx}
}

// Send registra el mensaje con id monotónico y timestamp actual.
func (uc *UseCase) Send(in dto.ContactRequest) (*dto.ContactResponse, error) {
	var created entity.ContactMessage
	err := uc.tx.Run(func() error {
		messages := uc.repo.List()
		var max int64
		for _, m := range messages {
			if m.ID > max {
				max = m.ID
			}
		}
		created = entity.ContactMessage{
			ID:        max + 1,
			Name:      in.Name,
			Email:     in.Email,
			Message:   in.Message,
			CreatedAt: time.Now(),
		}
		return uc.repo.Replace(append(messages, created))
	})
	if err != nil {
		return nil, err
	}
	return toResponse(&created), nil
}

// List devuelve todos los mensajes (bandeja del panel de administración).
func (uc *UseCase) List() []dto.ContactResponse {
	messages := uc.repo.List()
	out := make([]dto.ContactResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, *toResponse(&m))
	}
	return out
}

func toResponse(m *entity.ContactMessage) *dto.ContactResponse {
	return &dto.ContactResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}
