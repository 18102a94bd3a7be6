package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/premiarte/premiarte-api/internal/application/dto"
	"github.com/premiarte/premiarte-api/internal/application/usecase"
)

// unsubscribeRequest body para la baja pública del newsletter.
type unsubscribeRequest struct {
	Email string `json:"email"`
}

// NewsletterHandler maneja las suscripciones al newsletter. Alta y baja son
// públicas; la administración requiere sesión.
type NewsletterHandler struct {
	uc *usecase.NewsletterUseCase
}

// NewNewsletterHandler construye el handler.
func NewNewsletterHandler(uc *usecase.NewsletterUseCase) *NewsletterHandler {
	return &NewsletterHandler{uc: uc}
}

// Subscribe godoc
// @Summary      Suscribirse al newsletter (público)
// @Tags         newsletter
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateNewsletterRequest  true  "Email del suscriptor"
// @Success      201   {object}  dto.NewsletterResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/newsletter/subscribe [post]
func (h *NewsletterHandler) Subscribe(c *fiber.Ctx) error {
	var in dto.CreateNewsletterRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Email == "" {
		return badRequest(c, "VALIDATION", "email es requerido")
	}
	out, err := h.uc.Subscribe(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Unsubscribe godoc
// @Summary      Darse de baja del newsletter (público)
// @Tags         newsletter
// @Accept       json
// @Produce      json
// @Param        body  body  unsubscribeRequest  true  "Email a dar de baja"
// @Success      200   {object}  dto.NewsletterResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/newsletter/unsubscribe [post]
func (h *NewsletterHandler) Unsubscribe(c *fiber.Ctx) error {
	var in unsubscribeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Email == "" {
		return badRequest(c, "VALIDATION", "email es requerido")
	}
	out, err := h.uc.Unsubscribe(c.UserContext(), in.Email)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar suscriptores
// @Tags         newsletter
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.NewsletterResponse
// @Router       /api/newsletter [get]
func (h *NewsletterHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar suscriptor
// @Tags         newsletter
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del suscriptor"
// @Param        body  body  dto.UpdateNewsletterRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.NewsletterResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/newsletter/{id} [put]
func (h *NewsletterHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "MISSING_ID", "id inválido")
	}
	var in dto.UpdateNewsletterRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar suscriptor
// @Tags         newsletter
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del suscriptor"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/newsletter/{id} [delete]
func (h *NewsletterHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "MISSING_ID", "id inválido")
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "suscriptor eliminado"})
}
