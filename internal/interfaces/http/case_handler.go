package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/spynet/spynet-api/internal/application/dto"
	"github.com/spynet/spynet-api/internal/application/usecase"
	"github.com/spynet/spynet-api/internal/domain"
	"github.com/spynet/spynet-api/internal/domain/entity"
)

// CaseHandler maneja las peticiones HTTP para Case (protegido).
type CaseHandler struct {
	uc *usecase.CaseUseCase
}

// NewCaseHandler construye el handler.
func NewCaseHandler(uc *usecase.CaseUseCase) *CaseHandler {
	return &CaseHandler{uc: uc}
}

// List godoc
// @Summary      Listar casos visibles para el caller
// @Tags         cases
// @Security     Bearer
// @Produce      json
// @Param        status        query  string  false  "Filtro por estado (open|in_progress|closed)"
// @Param        detective_id  query  string  false  "Filtro por detective (solo managers)"
// @Success      200  {array}   dto.CaseResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /cases [get]
func (h *CaseHandler) List(c *fiber.Ctx) error {
	f := dto.CaseListFilter{
		Status:      c.Query("status"),
		DetectiveID: c.Query("detective_id"),
	}
	if f.Status != "" && !entity.ValidStatus(f.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status debe ser open, in_progress o closed"})
	}
	out, err := h.uc.List(GetUserID(c), GetRole(c), f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener caso por ID
// @Tags         cases
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del caso"
// @Success      200  {object}  dto.CaseResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /cases/{id} [get]
func (h *CaseHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(GetUserID(c), GetRole(c), id)
	if err != nil {
		if errors.Is(err, domain.ErrCaseNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "caso no encontrado"})
		}
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo puedes ver tus propios casos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear caso (solo manager)
// @Tags         cases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCaseRequest  true  "Datos del caso"
// @Success      201   {object}  dto.CaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /cases [post]
func (h *CaseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Title == "" || in.Details == "" || in.Location == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title, details y location son requeridos"})
	}
	if in.Status != "" && !entity.ValidStatus(in.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status debe ser open, in_progress o closed"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar caso
// @Tags         cases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del caso"
// @Param        body  body  dto.UpdateCaseRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.CaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /cases/{id} [put]
func (h *CaseHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateCaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Status != nil && !entity.ValidStatus(*in.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status debe ser open, in_progress o closed"})
	}
	out, err := h.uc.Update(GetUserID(c), GetRole(c), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrCaseNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "caso no encontrado"})
		}
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo puedes actualizar tus propios casos"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_VALID_FIELDS", Message: "no hay campos válidos para actualizar"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar caso (solo manager)
// @Tags         cases
// @Security     Bearer
// @Param        id   path  string  true  "ID del caso"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /cases/{id} [delete]
func (h *CaseHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(id); err != nil {
		if errors.Is(err, domain.ErrCaseNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "caso no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
