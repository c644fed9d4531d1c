package entity

import (
	"strings"

	"golang.org/x/text/cases"
)

// Tipos de producto relevantes para el flujo de almacén.
const (
	ProductTypeFixedAsset = "Activo Fijo"
	ProductTypeConsumable = "Consumible"
)

// Product representa un producto del catálogo (i_producto).
// El stock no vive aquí: se lleva por asignación producto-área (Assignment).
type Product struct {
	ID          int64
	AreaID      int64
	Barcode     string
	Name        string
	Description string
	Type        string // "Activo Fijo" | "Consumible"
	UnitMeasure string
}

// IsFixedAsset indica si el producto es un activo fijo (sujeto a baja y a estado de movimiento).
func (p Product) IsFixedAsset() bool { return IsFixedAsset(p.Type) }

// IsFixedAsset compara el tipo sin distinguir mayúsculas ni espacios extremos.
func IsFixedAsset(productType string) bool {
	fold := cases.Fold()
	return fold.String(strings.TrimSpace(productType)) == fold.String(ProductTypeFixedAsset)
}
