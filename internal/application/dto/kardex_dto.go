package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/kardex"
)

// Cantidades e importes viajan como números JSON (no como cadenas), igual que
// los consumían los clientes del reporte.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// KardexProductDTO datos del producto en la cabecera del kardex.
type KardexProductDTO struct {
	Code        string `json:"codigo"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
	Type        string `json:"tipo"`
	UnitMeasure string `json:"unidad_medida"`
}

// KardexAssignmentDTO datos de la asignación producto-área.
type KardexAssignmentDTO struct {
	Code       string          `json:"codigo_asignacion"`
	AreaName   string          `json:"nombre_area"`
	Stock      decimal.Decimal `json:"stock"`
	TotalCost  decimal.Decimal `json:"costo_total"`
	WrittenOff int             `json:"estado_dado_baja"`
}

// WriteOffDTO última baja registrada para la asignación.
type WriteOffDTO struct {
	Date   time.Time `json:"fecha_baja"`
	Reason string    `json:"motivo"`
	UserID string    `json:"usuario_id"`
}

// AssignmentKardexResponse respuesta de GET /api/asignacion-producto/:id.
type AssignmentKardexResponse struct {
	Product    KardexProductDTO    `json:"producto"`
	Assignment KardexAssignmentDTO `json:"asignacion"`
	WriteOff   *WriteOffDTO        `json:"baja"`
	Kardex     []kardex.Row        `json:"kardex"`
}
