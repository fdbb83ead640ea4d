package localstore_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/panaderia-demo/internal/domain/entity"
	"github.com/jhoicas/panaderia-demo/internal/infrastructure/localstore"
)

func newStore(t *testing.T) *localstore.Store {
	t.Helper()
	s, err := localstore.Open(t.TempDir())
	require.NoError(t, err)
	return s
}

// ──────────────────────────────────────────────────────────────────────────────
// Get/Set/Remove — contrato del accesor
// ──────────────────────────────────────────────────────────────────────────────

func TestGet_ClaveAusenteDevuelveFallback(t *testing.T) {
	s := newStore(t)
	got := localstore.Get(s, localstore.KeyProducts, []entity.Product{})
	assert.Empty(t, got, "clave ausente debe devolver el fallback, no fallar")
}

func TestGet_PayloadCorruptoDevuelveFallback(t *testing.T) {
	dir := t.TempDir()
	s, err := localstore.Open(dir)
	require.NoError(t, err)

	// Payload malformado escrito por fuera del accesor
	require.NoError(t, os.WriteFile(filepath.Join(dir, "products.json"), []byte("{not json"), 0o644))

	got := localstore.Get(s, localstore.KeyProducts, []entity.Product{})
	assert.Empty(t, got, "payload corrupto debe sustituirse por el fallback en silencio")
}

func TestSetGet_RoundTripDeSnapshot(t *testing.T) {
	s := newStore(t)
	in := []entity.Product{
		{ID: 1, Name: "Pan campesino", PriceCents: 350, Quantity: 10, Category: entity.CategoryBread, Active: true},
	}
	require.NoError(t, localstore.Set(s, localstore.KeyProducts, in))

	got := localstore.Get(s, localstore.KeyProducts, []entity.Product{})
	require.Len(t, got, 1)
	assert.Equal(t, in[0].Name, got[0].Name)
	assert.Equal(t, in[0].PriceCents, got[0].PriceCents)
}

func TestRemove_ClaveAusenteNoEsError(t *testing.T) {
	s := newStore(t)
	assert.NoError(t, s.Remove(localstore.KeySession))
	assert.NoError(t, s.Remove(localstore.KeySession), "remove doble debe ser idempotente")
}

func TestReset_BorraTodasLasClaves(t *testing.T) {
	s := newStore(t)
	require.NoError(t, localstore.Set(s, localstore.KeyUsers, []entity.User{{ID: 1, Name: "Ana"}}))
	require.NoError(t, s.MarkSeeded())

	require.NoError(t, s.Reset())

	assert.Empty(t, localstore.Get(s, localstore.KeyUsers, []entity.User{}))
	assert.False(t, s.Seeded())
}

// ──────────────────────────────────────────────────────────────────────────────
// Repositorio de sesión — tabla lógica de una fila
// ──────────────────────────────────────────────────────────────────────────────

func TestSessionRepository_UltimoLoginGana(t *testing.T) {
	s := newStore(t)
	repo := localstore.NewSessionRepository(s)

	require.Nil(t, repo.Get(), "sin sesión debe devolver nil")

	require.NoError(t, repo.Put(entity.Session{Token: "t1", UserID: 1, At: time.Now()}))
	require.NoError(t, repo.Put(entity.Session{Token: "t2", UserID: 2, At: time.Now()}))

	got := repo.Get()
	require.NotNil(t, got)
	assert.Equal(t, "t2", got.Token)
	assert.Equal(t, int64(2), got.UserID)

	require.NoError(t, repo.Clear())
	require.NoError(t, repo.Clear(), "logout doble no es error")
	assert.Nil(t, repo.Get())
}
