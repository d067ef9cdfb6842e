package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/empresas-admin/internal/application/usecase"
)

// SucursalHandler sucursales de una empresa.
type SucursalHandler struct {
	uc *usecase.SucursalUseCase
}

func NewSucursalHandler(uc *usecase.SucursalUseCase) *SucursalHandler {
	return &SucursalHandler{uc: uc}
}

// ListByEmpresa godoc
// @Summary      Listar sucursales de una empresa
// @Tags         sucursales
// @Produce      json
// @Param        id   path  int  true  "ID de la empresa"
// @Success      200  {array}   dto.SucursalDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /empresas/{id}/sucursales [get]
func (h *SucursalHandler) ListByEmpresa(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.ListByEmpresa(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
