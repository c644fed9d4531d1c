package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/inventory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Kardex    *inventory.KardexUseCase
	Receipts  *inventory.ReceiptUseCase
	Movements *inventory.RegisterMovementUseCase
	WriteOffs *inventory.WriteOffUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	canRead := RequireRole(RoleAdmin, RoleWarehouse, RoleViewer)
	canPost := RequireRole(RoleAdmin, RoleWarehouse)

	// Kardex (lectura: cualquier rol reconocido)
	kardexHandler := NewKardexHandler(deps.Kardex)
	assignments := protected.Group("/asignacion-producto", canRead)
	assignments.Get("/:id", kardexHandler.GetAssignment)
	assignments.Get("/:id/kardex-pdf", kardexHandler.DownloadPDF)

	// Inventario: registro de documentos
	inventoryHandler := NewInventoryHandler(deps.Receipts, deps.Movements, deps.WriteOffs)
	inv := protected.Group("/inventario")
	inv.Get("/ingresos/next-numero", canRead, inventoryHandler.NextReceiptNumber)
	inv.Get("/movimientos/salida/next-numero", canRead, inventoryHandler.NextIssueCode)
	inv.Get("/movimientos/ingreso/next-numero", canRead, inventoryHandler.NextWarehouseReceiptCode)
	inv.Post("/ingresos", canPost, inventoryHandler.PostReceipt)
	inv.Post("/anularIngreso", canPost, inventoryHandler.VoidReceipt)
	inv.Post("/movimientos/salida", canPost, inventoryHandler.PostIssue)
	inv.Post("/movimientos/ingreso-almacen", canPost, inventoryHandler.PostWarehouseReceipt)
	inv.Post("/productos/baja", RequireRole(RoleAdmin), inventoryHandler.WriteOff)
}
