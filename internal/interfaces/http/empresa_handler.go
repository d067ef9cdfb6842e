package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/empresas-admin/internal/application/dto"
	"github.com/jhoicas/empresas-admin/internal/application/usecase"
)

// EmpresaHandler maneja las peticiones HTTP para el recurso Empresa.
type EmpresaHandler struct {
	uc *usecase.EmpresaUseCase
}

// NewEmpresaHandler construye el handler inyectando el caso de uso.
func NewEmpresaHandler(uc *usecase.EmpresaUseCase) *EmpresaHandler {
	return &EmpresaHandler{uc: uc}
}

// List godoc
// @Summary      Listar empresas
// @Tags         empresas
// @Produce      json
// @Success      200  {array}  dto.EmpresaDTO
// @Router       /empresas [get]
func (h *EmpresaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener empresa por ID
// @Tags         empresas
// @Produce      json
// @Param        id   path  int  true  "ID de la empresa"
// @Success      200  {object}  dto.EmpresaDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /empresas/{id} [get]
func (h *EmpresaHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear empresa
// @Tags         empresas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EmpresaDTO  true  "Datos de la empresa"
// @Success      201   {object}  dto.EmpresaDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /empresas [post]
func (h *EmpresaHandler) Create(c *fiber.Ctx) error {
	var in dto.EmpresaDTO
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar empresa (el cuil no se modifica)
// @Tags         empresas
// @Accept       json
// @Produce      json
// @Param        id    path  int             true  "ID de la empresa"
// @Param        body  body  dto.EmpresaDTO  true  "Datos de la empresa"
// @Success      200   {object}  dto.EmpresaDTO
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /empresas/{id} [put]
func (h *EmpresaHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.EmpresaDTO
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Baja lógica de empresa
// @Tags         empresas
// @Param        id   path  int  true  "ID de la empresa"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /empresas/{id} [delete]
func (h *EmpresaHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
