package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// InventoryHandler maneja ingresos, salidas, anulaciones y bajas (protegido).
type InventoryHandler struct {
	receipts  *inventory.ReceiptUseCase
	movements *inventory.RegisterMovementUseCase
	writeOffs *inventory.WriteOffUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	receipts *inventory.ReceiptUseCase,
	movements *inventory.RegisterMovementUseCase,
	writeOffs *inventory.WriteOffUseCase,
) *InventoryHandler {
	return &InventoryHandler{receipts: receipts, movements: movements, writeOffs: writeOffs}
}

// PostReceipt godoc
// @Summary      Registrar nota de ingreso
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PostReceiptRequest  true  "cabecera e items"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventario/ingresos [post]
func (h *InventoryHandler) PostReceipt(c *fiber.Ctx) error {
	var in dto.PostReceiptRequest
	if err := decodeBody(c, &in); err != nil {
		return writeError(c, err)
	}
	res, err := h.receipts.PostReceipt(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Ingreso registrado correctamente", Data: res})
}

// VoidReceipt godoc
// @Summary      Anular nota de ingreso
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VoidReceiptRequest  true  "ingreso_id y motivo"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventario/anularIngreso [post]
func (h *InventoryHandler) VoidReceipt(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	var in dto.VoidReceiptRequest
	if err := decodeBody(c, &in); err != nil {
		return writeError(c, err)
	}
	if err := h.receipts.VoidReceipt(c.Context(), userID, in); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Ingreso anulado correctamente"})
}

// PostIssue godoc
// @Summary      Registrar salida de almacén
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PostIssueRequest  true  "cabecera e items"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventario/movimientos/salida [post]
func (h *InventoryHandler) PostIssue(c *fiber.Ctx) error {
	var in dto.PostIssueRequest
	if err := decodeBody(c, &in); err != nil {
		return writeError(c, err)
	}
	res, err := h.movements.PostIssue(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Salida registrada correctamente", Data: res})
}

// PostWarehouseReceipt godoc
// @Summary      Registrar ingreso al almacén
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PostWarehouseReceiptRequest  true  "cabecera e items"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventario/movimientos/ingreso-almacen [post]
func (h *InventoryHandler) PostWarehouseReceipt(c *fiber.Ctx) error {
	var in dto.PostWarehouseReceiptRequest
	if err := decodeBody(c, &in); err != nil {
		return writeError(c, err)
	}
	res, err := h.movements.PostWarehouseReceipt(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Ingreso al almacén registrado correctamente", Data: res})
}

// WriteOff godoc
// @Summary      Dar de baja un activo fijo
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WriteOffRequest  true  "asignacion_id y motivo"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/inventario/productos/baja [post]
func (h *InventoryHandler) WriteOff(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	var in dto.WriteOffRequest
	if err := decodeBody(c, &in); err != nil {
		return writeError(c, err)
	}
	if err := h.writeOffs.WriteOff(c.Context(), userID, in); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Producto dado de baja correctamente"})
}

// NextReceiptNumber godoc
// @Summary      Próximo número de ingreso
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.NextNumberResponse
// @Router       /api/inventario/ingresos/next-numero [get]
func (h *InventoryHandler) NextReceiptNumber(c *fiber.Ctx) error {
	res, err := h.receipts.NextNumber(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

// NextIssueCode godoc
// @Summary      Próximo código de salida
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.NextNumberResponse
// @Router       /api/inventario/movimientos/salida/next-numero [get]
func (h *InventoryHandler) NextIssueCode(c *fiber.Ctx) error {
	return h.nextCode(c, entity.MovementTypeIssue)
}

// NextWarehouseReceiptCode godoc
// @Summary      Próximo código de ingreso al almacén
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.NextNumberResponse
// @Router       /api/inventario/movimientos/ingreso/next-numero [get]
func (h *InventoryHandler) NextWarehouseReceiptCode(c *fiber.Ctx) error {
	return h.nextCode(c, entity.MovementTypeWarehouseReceipt)
}

func (h *InventoryHandler) nextCode(c *fiber.Ctx, movementType int) error {
	res, err := h.movements.NextCode(c.Context(), movementType)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}
