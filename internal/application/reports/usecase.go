// Package reports contiene las vistas derivadas de lectura: clasificación
// de vencimientos y agregados de ventas. Son derivaciones puras sobre los
// snapshots persistidos, recalculadas bajo demanda y nunca guardadas.
package reports

import (
	"time"

	"github.com/jhoicas/panaderia-demo/internal/application/dto"
	"github.com/jhoicas/panaderia-demo/internal/domain/entity"
	"github.com/jhoicas/panaderia-demo/internal/domain/repository"
)

// Estados de vencimiento.
const (
	StatusExpired      = "expired"
	StatusExpiringSoon = "expiring_soon"
	StatusOK           = "ok"
)

// Ventana de "vence pronto": dentro de los próximos 3 días.
const expiringSoonDays = 3

// UseCase vistas derivadas de reportes.
type UseCase struct {
	products repository.ProductRepository
	sales    repository.SaleRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(products repository.ProductRepository, sales repository.SaleRepository) *UseCase {
	return &UseCase{products: products, sales: sales}
}

// ExpirationOverview clasifica cada producto contra el inicio del día
// actual: expired si la fecha ya pasó, expiring_soon si cae dentro de los
// próximos 3 días, ok en el resto (incluye productos sin vencimiento).
func (uc *UseCase) ExpirationOverview(now time.Time) []dto.ProductExpiryDTO {
	out := make([]dto.ProductExpiryDTO, 0)
	for _, p := range uc.products.List() {
		out = append(out, dto.ProductExpiryDTO{
			ProductID: p.ID,
			Name:      p.Name,
			ExpiresAt: p.ExpiresAt,
			Status:    ExpiryStatus(p.ExpiresAt, now),
		})
	}
	return out
}

// ExpiryStatus clasifica una fecha de vencimiento contra el inicio del día
// de referencia.
func ExpiryStatus(expiresAt *time.Time, now time.Time) string {
	if expiresAt == nil {
		return StatusOK
	}
	dayStart := startOfDay(now)
	switch {
	case expiresAt.Before(dayStart):
		return StatusExpired
	case expiresAt.Before(dayStart.AddDate(0, 0, expiringSoonDays)):
		return StatusExpiringSoon
	default:
		return StatusOK
	}
}

// ClosingSummary cierra caja para un día calendario: suma de las ventas
// emitidas ese día desglosada por método de pago, más el ticket promedio.
func (uc *UseCase) ClosingSummary(day time.Time) dto.ClosingSummaryDTO {
	dayStart := startOfDay(day)
	dayEnd := dayStart.AddDate(0, 0, 1)

	summary := dto.ClosingSummaryDTO{
		Date: dayStart.Format("2006-01-02"),
		ByMethodCents: map[string]int64{
			entity.PaymentCash:     0,
			entity.PaymentCard:     0,
			entity.PaymentTransfer: 0,
		},
	}
	for _, s := range uc.sales.List() {
		if s.IssuedAt.Before(dayStart) || !s.IssuedAt.Before(dayEnd) {
			continue
		}
		summary.SalesCount++
		summary.TotalCents += s.TotalCents
		summary.DiscountCents += s.DiscountCents
		summary.ByMethodCents[s.PaymentMethod] += s.TotalCents
	}
	if summary.SalesCount > 0 {
		summary.AverageTicketCents = summary.TotalCents / int64(summary.SalesCount)
	}
	return summary
}

// TodaySummary agrega las ventas del día en curso.
func (uc *UseCase) TodaySummary() dto.ClosingSummaryDTO {
	return uc.ClosingSummary(time.Now())
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
