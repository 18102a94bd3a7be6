package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/premiarte/premiarte-api/internal/application/dto"
	"github.com/premiarte/premiarte-api/internal/application/usecase"
)

// ResponsibleHandler maneja las peticiones de responsables (protegido).
type ResponsibleHandler struct {
	uc *usecase.ResponsibleUseCase
}

// NewResponsibleHandler construye el handler.
func NewResponsibleHandler(uc *usecase.ResponsibleUseCase) *ResponsibleHandler {
	return &ResponsibleHandler{uc: uc}
}

// Create godoc
// @Summary      Crear responsable
// @Tags         responsibles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateResponsibleRequest  true  "Datos del responsable"
// @Success      201   {object}  dto.ResponsibleResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/responsibles [post]
func (h *ResponsibleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateResponsibleRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Name == "" || in.CUIT == "" {
		return badRequest(c, "VALIDATION", "name y cuit son requeridos")
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar responsables
// @Tags         responsibles
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ResponsibleResponse
// @Router       /api/responsibles [get]
func (h *ResponsibleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener responsable por ID
// @Tags         responsibles
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del responsable"
// @Success      200  {object}  dto.ResponsibleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/responsibles/{id} [get]
func (h *ResponsibleHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "MISSING_ID", "id inválido")
	}
	out, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar responsable
// @Tags         responsibles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del responsable"
// @Param        body  body  dto.UpdateResponsibleRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ResponsibleResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/responsibles/{id} [put]
func (h *ResponsibleHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "MISSING_ID", "id inválido")
	}
	var in dto.UpdateResponsibleRequest
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
// @Summary      Eliminar responsable
// @Tags         responsibles
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del responsable"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/responsibles/{id} [delete]
func (h *ResponsibleHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "MISSING_ID", "id inválido")
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "responsable eliminado"})
}
