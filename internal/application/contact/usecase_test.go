package contact_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/panaderia-demo/internal/application/contact"
	"github.com/jhoicas/panaderia-demo/internal/application/dto"
	"github.com/jhoicas/panaderia-demo/internal/infrastructure/localstore"
)

func newContactUC(t *testing.T) *contact.UseCase {
	t.Helper()
	store, err := localstore.Open(t.TempDir())
	require.NoError(t, err)
	return contact.NewUseCase(localstore.NewContactRepository(store), store)
}

// Enviar siempre acepta y asigna ids monotónicos; la bandeja conserva el
// orden de llegada.
func TestSend_IdsMonotonicosYOrden(t *testing.T) {
	uc := newContactUC(t)

	first, err := uc.Send(dto.ContactRequest{Name: "Ana", Email: "ana@mail.com", Message: "¿Hacen tortas por encargo?"})
	require.NoError(t, err)
	second, err := uc.Send(dto.ContactRequest{Name: "Luis", Message: "Sin email también vale"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.False(t, first.CreatedAt.IsZero())

	inbox := uc.List()
	require.Len(t, inbox, 2)
	assert.Equal(t, "Ana", inbox[0].Name)
	assert.Equal(t, "Luis", inbox[1].Name)
}

func TestList_BandejaVacia(t *testing.T) {
	uc := newContactUC(t)
	assert.Empty(t, uc.List())
}
