package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panaderia-demo/internal/application/contact"
	"github.com/jhoicas/panaderia-demo/internal/application/dto"
)

// ContactHandler maneja el formulario de contacto y su bandeja.
type ContactHandler struct {
	uc *contact.UseCase
}

// NewContactHandler construye el handler.
func NewContactHandler(uc *contact.UseCase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

// Send godoc
// @Summary      Enviar mensaje de contacto (siempre acepta)
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ContactRequest  true  "Mensaje"
// @Success      201   {object}  dto.ContactResponse
// @Router       /api/contact [post]
func (h *ContactHandler) Send(c *fiber.Ctx) error {
	var in dto.ContactRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Send(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Bandeja de mensajes de contacto
// @Tags         contact
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ContactResponse
// @Router       /api/contact [get]
func (h *ContactHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}
