package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/toolbox-api/internal/application/dto"
	"github.com/jhoicas/toolbox-api/internal/domain"
	"github.com/jhoicas/toolbox-api/internal/domain/margin"
	"github.com/jhoicas/toolbox-api/internal/domain/repository"
)

// QuoteConfig parámetros de negocio del listado de cotizaciones activas.
type QuoteConfig struct {
	// WindowMonths ventana hacia atrás desde hoy para considerar una
	// cotización como activa (default 6).
	WindowMonths int
	// LowMarginPct umbral de alerta: una línea con margen % estrictamente
	// menor cuenta en low_margin_line_count (default 20).
	LowMarginPct decimal.Decimal
}

func (c *QuoteConfig) defaults() {
	if c.WindowMonths <= 0 {
		c.WindowMonths = 6
	}
	if c.LowMarginPct.IsZero() {
		c.LowMarginPct = decimal.NewFromInt(20)
	}
}

// QuoteUseCase lista las cotizaciones activas de un vendedor con sus totales
// de venta/costo y margen global.
//
// Las líneas de TODAS las cotizaciones del resultado se traen en una sola
// consulta por lote (keyed por order_index) y se agrupan en memoria; los
// agregados son idénticos a calcularlos cotización por cotización.
type QuoteUseCase struct {
	orders repository.OrderRepository
	cfg    QuoteConfig
	now    func() time.Time // inyectable en tests
}

// NewQuoteUseCase construye el caso de uso.
func NewQuoteUseCase(orders repository.OrderRepository, cfg QuoteConfig) *QuoteUseCase {
	cfg.defaults()
	return &QuoteUseCase{orders: orders, cfg: cfg, now: time.Now}
}

// ListActive retorna las cotizaciones (order_type = 'Q') del vendedor dentro
// de la ventana configurada, ordenadas por fecha de entrada descendente.
//
// Un salesperson_id vacío es error del cliente (domain.ErrMissingParam) y se
// rechaza antes de tocar la base de datos.
func (uc *QuoteUseCase) ListActive(ctx context.Context, salespersonID string) ([]dto.ActiveQuoteDTO, error) {
	salespersonID = strings.TrimSpace(salespersonID)
	if salespersonID == "" {
		return nil, fmt.Errorf("%w: salesperson_id", domain.ErrMissingParam)
	}

	since := uc.now().AddDate(0, -uc.cfg.WindowMonths, 0)
	headers, err := uc.orders.ListActiveQuotes(ctx, salespersonID, since)
	if err != nil {
		return nil, fmt.Errorf("quotes: cabeceras de %s: %w", salespersonID, err)
	}
	if len(headers) == 0 {
		return []dto.ActiveQuoteDTO{}, nil
	}

	indexes := make([]int64, 0, len(headers))
	for _, h := range headers {
		indexes = append(indexes, h.OrderIndex)
	}
	linesByIndex, err := uc.orders.ListLinesByOrderIndexes(ctx, indexes)
	if err != nil {
		return nil, fmt.Errorf("quotes: líneas por lote: %w", err)
	}

	quotes := make([]dto.ActiveQuoteDTO, 0, len(headers))
	for _, h := range headers {
		lines := linesByIndex[h.OrderIndex] // nil para cotizaciones sin líneas: totales en cero
		totals := margin.Aggregate(lines)
		quotes = append(quotes, dto.ActiveQuoteDTO{
			QuoteNo:            dto.BigInt(h.OrderNo),
			OrderTitle:         h.Title,
			CustomerName:       h.CustomerName,
			SalespersonName:    h.SalespersonName,
			DateCreated:        h.DateEntered,
			Status:             h.OrderStatus,
			TotalSell:          totals.TotalSell.Round(2),
			TotalCost:          totals.TotalCost.Round(2),
			OverallMarginPct:   totals.MarginPct,
			LowMarginLineCount: margin.CountLowMargin(lines, uc.cfg.LowMarginPct),
		})
	}
	return quotes, nil
}
