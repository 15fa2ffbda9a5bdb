package margin_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/toolbox-api/internal/domain/entity"
	"github.com/jhoicas/toolbox-api/internal/domain/margin"
)

func line(sell, cost float64, qty int64) entity.OrderLine {
	return entity.OrderLine{
		UnitSell:   decimal.NewFromFloat(sell),
		UnitCost:   decimal.NewFromFloat(cost),
		QtyOrdered: decimal.NewFromInt(qty),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario de referencia: orden con dos líneas
//   (sell=100, cost=60, qty=2) + (sell=50, cost=50, qty=1)
//   → totalSell=250, totalCost=170, margen=80, margen%=32.0
// ──────────────────────────────────────────────────────────────────────────────

func TestAggregate_OrdenDeDosLineas(t *testing.T) {
	lines := []entity.OrderLine{
		line(100, 60, 2),
		line(50, 50, 1),
	}

	got := margin.Aggregate(lines)

	assert.True(t, got.TotalSell.Equal(decimal.NewFromInt(250)), "totalSell=%s", got.TotalSell)
	assert.True(t, got.TotalCost.Equal(decimal.NewFromInt(170)), "totalCost=%s", got.TotalCost)
	assert.True(t, got.Margin.Equal(decimal.NewFromInt(80)), "margin=%s", got.Margin)
	assert.True(t, got.MarginPct.Equal(decimal.NewFromInt(32)), "marginPct=%s", got.MarginPct)
}

// Venta total cero → margen% exactamente cero, nunca NaN/Inf ni pánico.
func TestAggregate_VentaCeroProtegida(t *testing.T) {
	cases := [][]entity.OrderLine{
		nil,
		{},
		{line(0, 10, 3)},   // costo sin venta
		{line(100, 60, 0)}, // qty cero anula los montos extendidos
		{line(0, 0, 5), line(0, 7, 2)},
	}
	for _, lines := range cases {
		got := margin.Aggregate(lines)
		assert.True(t, got.MarginPct.IsZero(), "lines=%v marginPct=%s", lines, got.MarginPct)
		assert.True(t, got.TotalSell.IsZero())
	}
}

// Permutar las líneas no cambia ningún agregado (suma conmutativa).
func TestAggregate_IndependienteDelOrden(t *testing.T) {
	a := []entity.OrderLine{line(100, 60, 2), line(50, 50, 1), line(19.99, 7.35, 4)}
	b := []entity.OrderLine{a[2], a[0], a[1]}
	c := []entity.OrderLine{a[1], a[2], a[0]}

	ta, tb, tc := margin.Aggregate(a), margin.Aggregate(b), margin.Aggregate(c)

	for _, other := range []margin.Totals{tb, tc} {
		assert.True(t, ta.TotalSell.Equal(other.TotalSell))
		assert.True(t, ta.TotalCost.Equal(other.TotalCost))
		assert.True(t, ta.Margin.Equal(other.Margin))
		assert.True(t, ta.MarginPct.Equal(other.MarginPct))
	}
}

func TestPct_RedondeoADosDecimales(t *testing.T) {
	// (150 - 100) / 150 * 100 = 33.333... → 33.33
	got := margin.Pct(decimal.NewFromInt(150), decimal.NewFromInt(100))
	assert.True(t, got.Equal(decimal.RequireFromString("33.33")), "got=%s", got)
}

func TestPct_VentaCeroEsCeroExacto(t *testing.T) {
	got := margin.Pct(decimal.Zero, decimal.NewFromInt(999))
	assert.True(t, got.Equal(decimal.Zero))
}

func TestLinePct_MargenNegativo(t *testing.T) {
	// Vender por debajo del costo produce porcentaje negativo, no cero.
	got := margin.LinePct(line(50, 75, 1))
	assert.True(t, got.Equal(decimal.NewFromInt(-50)), "got=%s", got)
}

func TestCountLowMargin(t *testing.T) {
	threshold := decimal.NewFromInt(20)
	lines := []entity.OrderLine{
		line(100, 95, 1), // 5%  → baja
		line(100, 60, 1), // 40% → ok
		line(100, 81, 1), // 19% → baja
		line(100, 80, 1), // 20% → ok (el umbral no cuenta)
		line(0, 10, 1),   // venta cero → 0% → baja
	}
	assert.Equal(t, 3, margin.CountLowMargin(lines, threshold))
}
