package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/toolbox-api/internal/application/dto"
	"github.com/jhoicas/toolbox-api/internal/application/report"
	"github.com/jhoicas/toolbox-api/internal/application/usecase"
	"github.com/jhoicas/toolbox-api/internal/domain/entity"
	apphttp "github.com/jhoicas/toolbox-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test: app Fiber completa con repositorios falsos inyectados a
// través de las interfaces de dominio.
// ──────────────────────────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	header       *entity.OrderHeader
	lines        []entity.OrderLine
	quotes       []entity.OrderHeader
	linesByIndex map[int64][]entity.OrderLine
	err          error
	calls        int
}

func (f *fakeOrderRepo) GetHeader(_ context.Context, orderNo int64) (*entity.OrderHeader, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if f.header == nil || f.header.OrderNo != orderNo {
		return nil, nil
	}
	return f.header, nil
}

func (f *fakeOrderRepo) ListLines(_ context.Context, _ int64) ([]entity.OrderLine, error) {
	f.calls++
	return f.lines, f.err
}

func (f *fakeOrderRepo) ListLinesByOrderIndexes(_ context.Context, _ []int64) (map[int64][]entity.OrderLine, error) {
	f.calls++
	return f.linesByIndex, f.err
}

func (f *fakeOrderRepo) ListActiveQuotes(_ context.Context, _ string, _ time.Time) ([]entity.OrderHeader, error) {
	f.calls++
	return f.quotes, f.err
}

func buildTestApp(repo *fakeOrderRepo) *fiber.App {
	app := fiber.New()
	orderUC := usecase.NewOrderUseCase(repo)
	quoteUC := usecase.NewQuoteUseCase(repo, usecase.QuoteConfig{})
	apphttp.Router(app, apphttp.RouterDeps{
		OrderUC: orderUC,
		QuoteUC: quoteUC,
		PDFUC:   report.NewPDFUseCase(orderUC, stubPDFGenerator{}),
	})
	return app
}

// stubPDFGenerator evita renderizar un PDF real en los tests de handler.
type stubPDFGenerator struct{}

func (stubPDFGenerator) GenerateMarginPDF(_ context.Context, _ *dto.OrderMarginDTO) ([]byte, error) {
	return []byte("%PDF-stub"), nil
}

func doGet(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func mkLine(idx int64, no int, sell, cost float64, qty int64) entity.OrderLine {
	return entity.OrderLine{
		OrderIndex: idx,
		LineNo:     no,
		UnitSell:   decimal.NewFromFloat(sell),
		UnitCost:   decimal.NewFromFloat(cost),
		QtyOrdered: decimal.NewFromInt(qty),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/orders/:orderNo/margin
// ──────────────────────────────────────────────────────────────────────────────

func orderRepoWithScenario() *fakeOrderRepo {
	return &fakeOrderRepo{
		header: &entity.OrderHeader{
			OrderNo:      484685,
			OrderIndex:   91001,
			OrderType:    "O",
			OrderStatus:  "OPEN",
			Title:        "Mobiliario oficinas piso 3",
			CustomerNo:   1200,
			CustomerName: "Acme Interiores SA",
		},
		lines: []entity.OrderLine{
			mkLine(91001, 1, 100, 60, 2),
			mkLine(91001, 2, 50, 50, 1),
		},
	}
}

func TestGetMargin_RespuestaCompleta(t *testing.T) {
	app := buildTestApp(orderRepoWithScenario())

	resp := doGet(t, app, "/api/orders/484685/margin")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)

	// bigint → string para no perder precisión en el cliente JS
	assert.Equal(t, "484685", body["order_no"])
	assert.Equal(t, "1200", body["customer_no"])

	// Totales con las claves camelCase históricas del Toolbox
	assert.Equal(t, "250", body["totalSell"])
	assert.Equal(t, "170", body["totalCost"])
	assert.Equal(t, "80", body["orderMargin"])
	assert.Equal(t, "32", body["orderMarginPct"])

	lines, ok := body["lines"].([]any)
	require.True(t, ok, "lines debe ser un arreglo")
	require.Len(t, lines, 2)
	first := lines[0].(map[string]any)
	assert.Equal(t, "40", first["margin_pct"])
}

func TestGetMargin_OrdenInexistenteEs404(t *testing.T) {
	app := buildTestApp(&fakeOrderRepo{})

	resp := doGet(t, app, "/api/orders/999999/margin")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Contains(t, body["error"], "no encontrada")
	assert.NotContains(t, body, "details")
}

func TestGetMargin_OrderNoInvalidoEs400(t *testing.T) {
	repo := &fakeOrderRepo{}
	app := buildTestApp(repo)

	resp := doGet(t, app, "/api/orders/abc/margin")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, repo.calls, "no debe tocar el repositorio con un orderNo inválido")
}

func TestGetMargin_FallaDeRepositorioEs500ConDetalle(t *testing.T) {
	app := buildTestApp(&fakeOrderRepo{err: errors.New("conexión rechazada")})

	resp := doGet(t, app, "/api/orders/484685/margin")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "error interno", body["error"])
	assert.Contains(t, body["details"], "conexión rechazada")
}

func TestGetMarginPDF_DescargaConContentType(t *testing.T) {
	app := buildTestApp(orderRepoWithScenario())

	resp := doGet(t, app, "/api/orders/484685/margin/pdf")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "margen-orden-484685.pdf")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-stub", string(raw))
}

func TestGetMarginPDF_OrdenInexistenteEs404(t *testing.T) {
	app := buildTestApp(&fakeOrderRepo{})

	resp := doGet(t, app, "/api/orders/1/margin/pdf")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
