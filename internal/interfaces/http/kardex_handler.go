package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/kardex"
)

// KardexHandler expone el kardex de una asignación en JSON y PDF.
type KardexHandler struct {
	uc *inventory.KardexUseCase
}

// NewKardexHandler construye el handler.
func NewKardexHandler(uc *inventory.KardexUseCase) *KardexHandler {
	return &KardexHandler{uc: uc}
}

// GetAssignment godoc
// @Summary      Detalle de asignación con kardex
// @Tags         kardex
// @Security     Bearer
// @Produce      json
// @Param        id            path   int     true   "ID de asignación"
// @Param        fecha_inicio  query  string  false  "d/m/Y o Y-m-d"
// @Param        fecha_fin     query  string  false  "d/m/Y o Y-m-d"
// @Success      200  {object}  dto.AssignmentKardexResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/asignacion-producto/{id} [get]
func (h *KardexHandler) GetAssignment(c *fiber.Ctx) error {
	id, rng, err := assignmentParams(c)
	if err != nil {
		return writeError(c, err)
	}
	res, err := h.uc.GetAssignmentKardex(c.Context(), id, rng)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

// DownloadPDF godoc
// @Summary      Kardex en PDF
// @Tags         kardex
// @Security     Bearer
// @Produce      application/pdf
// @Param        id            path   int     true   "ID de asignación"
// @Param        fecha_inicio  query  string  false  "d/m/Y o Y-m-d"
// @Param        fecha_fin     query  string  false  "d/m/Y o Y-m-d"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/asignacion-producto/{id}/kardex-pdf [get]
func (h *KardexHandler) DownloadPDF(c *fiber.Ctx) error {
	id, rng, err := assignmentParams(c)
	if err != nil {
		return writeError(c, err)
	}
	content, filename, err := h.uc.DownloadKardexPDF(c.Context(), id, rng)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(content)
}

func assignmentParams(c *fiber.Ctx) (int64, kardex.DateRange, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, kardex.DateRange{}, fmt.Errorf("%w: id de asignación", domain.ErrInvalidInput)
	}
	from, err := kardex.ParseDate(c.Query("fecha_inicio"))
	if err != nil {
		return 0, kardex.DateRange{}, err
	}
	to, err := kardex.ParseDate(c.Query("fecha_fin"))
	if err != nil {
		return 0, kardex.DateRange{}, err
	}
	return int64(id), kardex.DateRange{From: from, To: to}, nil
}
