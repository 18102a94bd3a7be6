package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/premiarte/premiarte-api/internal/application/dto"
	"github.com/premiarte/premiarte-api/internal/application/usecase"
)

// ImageHandler maneja el registro de imágenes ya subidas (protegido).
type ImageHandler struct {
	uc *usecase.ImageUseCase
}

// NewImageHandler construye el handler.
func NewImageHandler(uc *usecase.ImageUseCase) *ImageHandler {
	return &ImageHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar imagen
// @Tags         images
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateImageRequest  true  "Datos de la imagen"
// @Success      201   {object}  dto.ImageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/images [post]
func (h *ImageHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateImageRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.URL == "" {
		return badRequest(c, "VALIDATION", "url es requerida")
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar imágenes
// @Tags         images
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ImageResponse
// @Router       /api/images [get]
func (h *ImageHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener imagen por ID
// @Tags         images
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la imagen"
// @Success      200  {object}  dto.ImageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/images/{id} [get]
func (h *ImageHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Actualizar metadatos de imagen
// @Tags         images
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la imagen"
// @Param        body  body  dto.UpdateImageRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ImageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/images/{id} [put]
func (h *ImageHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "MISSING_ID", "id inválido")
	}
	var in dto.UpdateImageRequest
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
// @Summary      Eliminar imagen
// @Tags         images
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la imagen"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/images/{id} [delete]
func (h *ImageHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "MISSING_ID", "id inválido")
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "imagen eliminada"})
}
