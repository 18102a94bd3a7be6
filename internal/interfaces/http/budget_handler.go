package http

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/premiarte/premiarte-api/internal/application/budgets"
	"github.com/premiarte/premiarte-api/internal/application/dto"
	"github.com/premiarte/premiarte-api/internal/domain/entity"
)

// BudgetPDFGenerator produce la versión imprimible de un presupuesto.
type BudgetPDFGenerator interface {
	GenerateBudgetPDF(ctx context.Context, budget *entity.Budget, responsible *entity.Responsible) ([]byte, error)
}

// BudgetHandler maneja las peticiones de presupuestos. La creación es
// pública (storefront); el resto requiere sesión.
type BudgetHandler struct {
	createUC *budgets.CreateBudgetUseCase
	uc       *budgets.BudgetUseCase
	pdfGen   BudgetPDFGenerator
}

// NewBudgetHandler construye el handler.
func NewBudgetHandler(createUC *budgets.CreateBudgetUseCase, uc *budgets.BudgetUseCase, pdfGen BudgetPDFGenerator) *BudgetHandler {
	return &BudgetHandler{createUC: createUC, uc: uc, pdfGen: pdfGen}
}

// Create godoc
// @Summary      Crear presupuesto (público o dashboard)
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBudgetRequest  true  "Datos del presupuesto"
// @Success      201   {object}  dto.BudgetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/budgets [post]
func (h *BudgetHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBudgetRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if len(in.Products) == 0 {
		return badRequest(c, "VALIDATION", "products es requerido")
	}
	// userID queda vacío en el flujo público (sin sesión).
	out, err := h.createUC.CreateBudget(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar presupuestos
// @Tags         budgets
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.BudgetResponse
// @Router       /api/budgets [get]
func (h *BudgetHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener presupuesto por ID
// @Tags         budgets
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del presupuesto"
// @Success      200  {object}  dto.BudgetResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/budgets/{id} [get]
func (h *BudgetHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetPDF godoc
// @Summary      Descargar presupuesto en PDF
// @Tags         budgets
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del presupuesto"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/budgets/{id}/pdf [get]
func (h *BudgetHandler) GetPDF(c *fiber.Ctx) error {
	budget, responsible, err := h.uc.GetForDocument(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	doc, err := h.pdfGen.GenerateBudgetPDF(c.UserContext(), budget, responsible)
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="presupuesto-%d.pdf"`, budget.Number))
	return c.Send(doc)
}

// Update godoc
// @Summary      Actualizar presupuesto
// @Tags         budgets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del presupuesto"
// @Param        body  body  dto.UpdateBudgetRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.BudgetResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/budgets/{id} [put]
func (h *BudgetHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBudgetRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado del presupuesto
// @Tags         budgets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del presupuesto"
// @Param        body  body  dto.UpdateBudgetStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.BudgetResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/budgets/{id}/status [put]
func (h *BudgetHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateBudgetStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Status == "" {
		return badRequest(c, "VALIDATION", "status es requerido")
	}
	out, err := h.uc.UpdateStatus(c.UserContext(), c.Params("id"), in.Status)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar presupuesto
// @Tags         budgets
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del presupuesto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/budgets/{id} [delete]
func (h *BudgetHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "presupuesto eliminado"})
}
