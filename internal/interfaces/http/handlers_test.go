package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/kardex"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	apphttp "github.com/jhoicas/almacen-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs: embeben la interfaz y solo implementan lo que el test ejercita.
// ──────────────────────────────────────────────────────────────────────────────

type stubSource struct{}

func (stubSource) ReceiptLines(ctx context.Context, id int64) ([]kardex.ReceiptLineRecord, error) {
	return []kardex.ReceiptLineRecord{{
		Date:          time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		ReceiptNumber: 4,
		Quantity:      decimal.NewFromInt(10),
		LineCost:      decimal.NewFromInt(100),
	}}, nil
}

func (stubSource) MovementLines(ctx context.Context, id int64) ([]kardex.MovementLineRecord, error) {
	return []kardex.MovementLineRecord{{
		Date:     time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC),
		Code:     9,
		Type:     entity.MovementTypeIssue,
		Quantity: decimal.NewFromInt(3),
	}}, nil
}

func (stubSource) ReversalLines(ctx context.Context, id int64) ([]kardex.ReversalLineRecord, error) {
	return nil, nil
}

type stubAssignments struct {
	repository.AssignmentRepository
}

func (stubAssignments) GetDetail(ctx context.Context, id int64) (*entity.AssignmentDetail, error) {
	if id != 1 {
		return nil, nil
	}
	return &entity.AssignmentDetail{
		Assignment: entity.Assignment{ID: 1, Code: "AS-1", Stock: decimal.NewFromInt(7), TotalCost: decimal.NewFromInt(70)},
		Product:    entity.Product{Name: "Toner", Type: entity.ProductTypeConsumable},
		Area:       entity.Area{Name: "Sistemas"},
	}, nil
}

type stubReceipts struct {
	repository.ReceiptRepository
	last *int64
}

func (s stubReceipts) MaxNumber(ctx context.Context) (*int64, error) { return s.last, nil }

type stubPDF struct{}

func (stubPDF) GenerateKardexPDF(ctx context.Context, r inventory.KardexReport) ([]byte, error) {
	return []byte("%PDF-1.3 stub"), nil
}

func buildAPI(t *testing.T) *fiber.App {
	t.Helper()
	last := int64(41)
	kardexUC := inventory.NewKardexUseCase(stubSource{}, stubAssignments{}, nil, stubPDF{}, "Almacén")
	receiptUC := inventory.NewReceiptUseCase(nil, stubReceipts{last: &last}, zerolog.Nop())
	movementUC := inventory.NewRegisterMovementUseCase(nil, nil, zerolog.Nop())
	writeOffUC := inventory.NewWriteOffUseCase(nil, zerolog.Nop())

	app := fiber.New()
	app.Use(apphttp.RequestLogger(zerolog.Nop()))
	apphttp.Router(app, apphttp.RouterDeps{
		Kardex:    kardexUC,
		Receipts:  receiptUC,
		Movements: movementUC,
		WriteOffs: writeOffUC,
		JWTSecret: testJWTSecret,
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, path, role, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if role != "" {
		req.Header.Set("Authorization", tokenForRole(t, role))
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Kardex
// ──────────────────────────────────────────────────────────────────────────────

func TestKardexHandler_GetAssignment(t *testing.T) {
	app := buildAPI(t)
	resp := call(t, app, http.MethodGet, "/api/asignacion-producto/1", apphttp.RoleViewer, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))

	var body struct {
		Producto struct {
			Nombre string `json:"nombre"`
		} `json:"producto"`
		Asignacion struct {
			NombreArea string `json:"nombre_area"`
		} `json:"asignacion"`
		Baja   any `json:"baja"`
		Kardex []struct {
			Documento string `json:"documento"`
			Saldo     json.Number `json:"saldo"`
		} `json:"kardex"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Toner", body.Producto.Nombre)
	assert.Equal(t, "Sistemas", body.Asignacion.NombreArea)
	assert.Nil(t, body.Baja)
	require.Len(t, body.Kardex, 2)
	assert.Equal(t, "NI-000004", body.Kardex[0].Documento)
	assert.Equal(t, "SA-000009", body.Kardex[1].Documento)
	assert.Equal(t, json.Number("7"), body.Kardex[1].Saldo)
}

func TestKardexHandler_FiltraPorFechas(t *testing.T) {
	app := buildAPI(t)
	resp := call(t, app, http.MethodGet, "/api/asignacion-producto/1?fecha_inicio=10/03/2025&fecha_fin=2025-03-31", apphttp.RoleViewer, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Kardex []map[string]any `json:"kardex"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Kardex, 1)
	assert.Equal(t, "SA-000009", body.Kardex[0]["documento"])
	assert.IsType(t, float64(0), body.Kardex[0]["saldo"], "los importes se serializan como números")
	assert.IsType(t, float64(0), body.Kardex[0]["saldo_val"])
}

func TestKardexHandler_Errores(t *testing.T) {
	app := buildAPI(t)

	resp := call(t, app, http.MethodGet, "/api/asignacion-producto/99", apphttp.RoleViewer, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = call(t, app, http.MethodGet, "/api/asignacion-producto/abc", apphttp.RoleViewer, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = call(t, app, http.MethodGet, "/api/asignacion-producto/1?fecha_inicio=2025-13-40", apphttp.RoleViewer, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = call(t, app, http.MethodGet, "/api/asignacion-producto/1", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestKardexHandler_DownloadPDF(t *testing.T) {
	app := buildAPI(t)
	resp := call(t, app, http.MethodGet, "/api/asignacion-producto/1/kardex-pdf", apphttp.RoleViewer, "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), `filename="Kardex_000001.pdf"`)
	content, _ := io.ReadAll(resp.Body)
	assert.True(t, strings.HasPrefix(string(content), "%PDF"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Inventario
// ──────────────────────────────────────────────────────────────────────────────

func TestInventoryHandler_NextReceiptNumber(t *testing.T) {
	app := buildAPI(t)
	resp := call(t, app, http.MethodGet, "/api/inventario/ingresos/next-numero", apphttp.RoleViewer, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]int64
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(42), body["numero"])
	assert.Equal(t, int64(41), body["max"])
}

func TestInventoryHandler_ValidaCuerpo(t *testing.T) {
	app := buildAPI(t)
	cases := []struct {
		path string
		body string
	}{
		{"/api/inventario/ingresos", `{"numero":0,"proveedor_id":1,"items":[{"asignacion_id":1,"cantidad":1}]}`},
		{"/api/inventario/ingresos", `{"numero":1,"proveedor_id":1,"items":[]}`},
		{"/api/inventario/movimientos/salida", `{"numero":1,"area_id":0,"items":[{"asignacion_id":1,"cantidad":1}]}`},
		{"/api/inventario/movimientos/ingreso-almacen", `{"numero":1,"area_id":2}`},
		{"/api/inventario/anularIngreso", `{"ingreso_id":5,"motivo":""}`},
		{"/api/inventario/ingresos", `no es json`},
	}
	for _, tc := range cases {
		resp := call(t, app, http.MethodPost, tc.path, apphttp.RoleWarehouse, tc.body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "%s %s", tc.path, tc.body)
		resp.Body.Close()
	}
}

func TestInventoryHandler_RolConsultaNoRegistra(t *testing.T) {
	app := buildAPI(t)
	resp := call(t, app, http.MethodPost, "/api/inventario/ingresos", apphttp.RoleViewer, `{"numero":1}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp2 := call(t, app, http.MethodPost, "/api/inventario/productos/baja", apphttp.RoleWarehouse, `{"asignacion_id":1,"motivo":"x"}`)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp2.StatusCode)
}

func TestKardexHandler_RolDesconocidoNoLee(t *testing.T) {
	app := buildAPI(t)
	resp := call(t, app, http.MethodGet, "/api/asignacion-producto/1", "invitado", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp2 := call(t, app, http.MethodGet, "/api/inventario/movimientos/salida/next-numero", "invitado", "")
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp2.StatusCode)
}
