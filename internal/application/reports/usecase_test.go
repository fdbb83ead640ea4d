package reports_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/panaderia-demo/internal/application/reports"
	"github.com/jhoicas/panaderia-demo/internal/domain/entity"
	"github.com/jhoicas/panaderia-demo/internal/infrastructure/localstore"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func newReportEnv(t *testing.T, products []entity.Product, salesData []entity.Sale) *reports.UseCase {
	t.Helper()
	store, err := localstore.Open(t.TempDir())
	require.NoError(t, err)

	productRepo := localstore.NewProductRepository(store)
	saleRepo := localstore.NewSaleRepository(store)
	require.NoError(t, productRepo.Replace(products))
	require.NoError(t, saleRepo.Replace(salesData))
	return reports.NewUseCase(productRepo, saleRepo)
}

func timePtr(t time.Time) *time.Time { return &t }

// ──────────────────────────────────────────────────────────────────────────────
// Tests de vencimientos
// ──────────────────────────────────────────────────────────────────────────────

// La clasificación compara contra el inicio del día de referencia: ayer es
// expired, dentro de la ventana de 3 días es expiring_soon, más allá es ok
// y sin fecha siempre es ok.
func TestExpiryStatus_Clasificacion(t *testing.T) {
	now := time.Date(2026, 8, 23, 15, 30, 0, 0, time.Local)

	cases := []struct {
		name      string
		expiresAt *time.Time
		want      string
	}{
		{"sin fecha", nil, reports.StatusOK},
		{"venció ayer", timePtr(now.AddDate(0, 0, -1)), reports.StatusExpired},
		{"vence hoy", timePtr(now), reports.StatusExpiringSoon},
		{"vence en 2 días", timePtr(now.AddDate(0, 0, 2)), reports.StatusExpiringSoon},
		{"vence en 5 días", timePtr(now.AddDate(0, 0, 5)), reports.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, reports.ExpiryStatus(tc.expiresAt, now))
		})
	}
}

func TestExpirationOverview_CubreTodoElCatalogo(t *testing.T) {
	now := time.Now()
	uc := newReportEnv(t, []entity.Product{
		{ID: 1, Name: "Pan", ExpiresAt: timePtr(now.AddDate(0, 0, -2)), Active: true},
		{ID: 2, Name: "Café", Active: true}, // sin vencimiento
	}, nil)

	overview := uc.ExpirationOverview(now)
	require.Len(t, overview, 2)
	assert.Equal(t, reports.StatusExpired, overview[0].Status)
	assert.Equal(t, reports.StatusOK, overview[1].Status)
	assert.Nil(t, overview[1].ExpiresAt)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de cierre de caja
// ──────────────────────────────────────────────────────────────────────────────

func TestClosingSummary_AgregaSoloElDia(t *testing.T) {
	day := time.Date(2026, 8, 22, 0, 0, 0, 0, time.Local)
	uc := newReportEnv(t, nil, []entity.Sale{
		{ID: 1, TotalCents: 600, DiscountCents: 100, PaymentMethod: entity.PaymentCash, IssuedAt: day.Add(9 * time.Hour)},
		{ID: 2, TotalCents: 400, PaymentMethod: entity.PaymentCard, IssuedAt: day.Add(17 * time.Hour)},
		{ID: 3, TotalCents: 9_999, PaymentMethod: entity.PaymentCash, IssuedAt: day.AddDate(0, 0, -1)}, // día anterior
		{ID: 4, TotalCents: 5_000, PaymentMethod: entity.PaymentCash, IssuedAt: day.AddDate(0, 0, 1)},  // día siguiente
	})

	summary := uc.ClosingSummary(day.Add(12 * time.Hour))

	assert.Equal(t, "2026-08-22", summary.Date)
	assert.Equal(t, 2, summary.SalesCount)
	assert.Equal(t, int64(1_000), summary.TotalCents)
	assert.Equal(t, int64(100), summary.DiscountCents)
	assert.Equal(t, int64(500), summary.AverageTicketCents)
	assert.Equal(t, int64(600), summary.ByMethodCents[entity.PaymentCash])
	assert.Equal(t, int64(400), summary.ByMethodCents[entity.PaymentCard])
	assert.Equal(t, int64(0), summary.ByMethodCents[entity.PaymentTransfer], "todos los métodos presentes aunque estén en cero")
}

func TestClosingSummary_DiaSinVentas(t *testing.T) {
	uc := newReportEnv(t, nil, nil)

	summary := uc.ClosingSummary(time.Now())
	assert.Equal(t, 0, summary.SalesCount)
	assert.Equal(t, int64(0), summary.TotalCents)
	assert.Equal(t, int64(0), summary.AverageTicketCents, "sin ventas no hay división por cero")
	assert.Len(t, summary.ByMethodCents, 3)
}
