package dto

import "github.com/shopspring/decimal"

// ReceiptItemRequest línea de una nota de ingreso. Costo es el costo total de la línea.
type ReceiptItemRequest struct {
	AssignmentID int64            `json:"asignacion_id"`
	Quantity     decimal.Decimal  `json:"cantidad"`
	Price        decimal.Decimal  `json:"precio"`
	Cost         decimal.Decimal  `json:"costo"`
	Amount       *decimal.Decimal `json:"importe,omitempty"` // por defecto cantidad * precio
}

// PostReceiptRequest body para POST /api/inventario/ingresos.
type PostReceiptRequest struct {
	Number        int64                `json:"numero" validate:"gt=0"`
	SupplierID    int64                `json:"proveedor_id" validate:"gt=0"`
	InvoiceNumber string               `json:"factura_numero"`
	InvoiceDate   string               `json:"fecha_factura"`
	ReceivedAt    string               `json:"fecha_ingreso"`
	ReceivedBy    string               `json:"recibido_por"`
	DeliveredBy   string               `json:"entregado_por"`
	Notes         string               `json:"descripcion"`
	TotalAmount   decimal.Decimal      `json:"total_importe"`
	Items         []ReceiptItemRequest `json:"items" validate:"required,min=1"`
}

// MovementItemRequest línea de una salida o de un ingreso al almacén.
type MovementItemRequest struct {
	AssignmentID int64           `json:"asignacion_id"`
	Quantity     decimal.Decimal `json:"cantidad"`
	UnitPrice    decimal.Decimal `json:"precio_unitario"`
	Amount       decimal.Decimal `json:"importe"`
}

// MovementRequest campos comunes de salidas e ingresos al almacén.
type MovementRequest struct {
	Number      int64                 `json:"numero" validate:"gt=0"`
	AreaID      int64                 `json:"area_id" validate:"gt=0"`
	DeliveredBy string                `json:"persona_entrega"`
	ReceivedBy  string                `json:"persona_recibe"`
	Notes       string                `json:"observaciones"`
	TotalAmount decimal.Decimal       `json:"total_importe"`
	Items       []MovementItemRequest `json:"items" validate:"required,min=1"`
}

// PostIssueRequest body para POST /api/inventario/movimientos/salida.
type PostIssueRequest struct {
	MovementRequest
	Date string `json:"fecha_salida"`
}

// PostWarehouseReceiptRequest body para POST /api/inventario/movimientos/ingreso-almacen.
type PostWarehouseReceiptRequest struct {
	MovementRequest
	Date string `json:"fecha_ingreso"`
}

// VoidReceiptRequest body para POST /api/inventario/anularIngreso.
type VoidReceiptRequest struct {
	ReceiptID int64  `json:"ingreso_id" validate:"gt=0"`
	Reason    string `json:"motivo" validate:"required"`
}

// WriteOffRequest body para POST /api/inventario/productos/baja.
type WriteOffRequest struct {
	AssignmentID int64  `json:"asignacion_id" validate:"gt=0"`
	Reason       string `json:"motivo" validate:"required"`
}

// PostedDocumentResponse identificadores del documento registrado.
type PostedDocumentResponse struct {
	ID     int64 `json:"id"`
	Number int64 `json:"numero"`
}

// NextNumberResponse número sugerido para el próximo documento (max + 1).
type NextNumberResponse struct {
	Number int64  `json:"numero"`
	Max    *int64 `json:"max"`
}
