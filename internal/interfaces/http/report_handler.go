package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panaderia-demo/internal/application/dto"
	"github.com/jhoicas/panaderia-demo/internal/application/reports"
)

// ReportHandler vistas derivadas de lectura (cierres y vencimientos).
type ReportHandler struct {
	uc *reports.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Today godoc
// @Summary      Ventas del día en curso
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ClosingSummaryDTO
// @Router       /api/reports/today [get]
func (h *ReportHandler) Today(c *fiber.Ctx) error {
	return c.JSON(h.uc.TodaySummary())
}

// Closing godoc
// @Summary      Cierre de caja de un día calendario
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  false  "Día YYYY-MM-DD (hoy si se omite)"
// @Success      200   {object}  dto.ClosingSummaryDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/closing [get]
func (h *ReportHandler) Closing(c *fiber.Ctx) error {
	day := time.Now()
	if q := c.Query("date"); q != "" {
		parsed, err := time.ParseInLocation("2006-01-02", q, time.Local)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "formato esperado: YYYY-MM-DD"})
		}
		day = parsed
	}
	return c.JSON(h.uc.ClosingSummary(day))
}

// Expiry godoc
// @Summary      Clasificación de vencimientos de productos
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductExpiryDTO
// @Router       /api/reports/expiry [get]
func (h *ReportHandler) Expiry(c *fiber.Ctx) error {
	return c.JSON(h.uc.ExpirationOverview(time.Now()))
}
