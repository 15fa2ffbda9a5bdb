// Package margin implementa el cálculo de márgenes sobre líneas de orden
// (servicio de dominio, puro y sin estado).
//
// Definiciones:
//
//	margen     = venta - costo
//	margen %   = margen / venta * 100   (0 cuando venta == 0)
//
// La división está siempre protegida: con venta cero el porcentaje es
// exactamente cero, nunca un error ni un valor no finito.
package margin

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/toolbox-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Totals agregados de una orden completa.
type Totals struct {
	TotalSell decimal.Decimal
	TotalCost decimal.Decimal
	Margin    decimal.Decimal // TotalSell - TotalCost
	MarginPct decimal.Decimal // protegido contra venta cero, redondeado a 2
}

// Pct retorna (venta - costo) / venta * 100 redondeado a 2 decimales,
// o cero exacto cuando la venta es cero.
func Pct(sell, cost decimal.Decimal) decimal.Decimal {
	if sell.IsZero() {
		return decimal.Zero
	}
	return sell.Sub(cost).Div(sell).Mul(hundred).Round(2)
}

// LineSell retorna el monto de venta extendido de la línea (unit_sell × qty).
func LineSell(l entity.OrderLine) decimal.Decimal {
	return l.UnitSell.Mul(l.QtyOrdered)
}

// LineCost retorna el costo extendido de la línea (unit_cost × qty).
func LineCost(l entity.OrderLine) decimal.Decimal {
	return l.UnitCost.Mul(l.QtyOrdered)
}

// LinePct margen porcentual de una línea sobre sus montos extendidos.
func LinePct(l entity.OrderLine) decimal.Decimal {
	return Pct(LineSell(l), LineCost(l))
}

// Aggregate reduce las líneas a totales de cabecera. La suma es conmutativa
// y asociativa: el orden de las líneas no afecta el resultado.
func Aggregate(lines []entity.OrderLine) Totals {
	var totalSell, totalCost decimal.Decimal
	for _, l := range lines {
		totalSell = totalSell.Add(LineSell(l))
		totalCost = totalCost.Add(LineCost(l))
	}
	return Totals{
		TotalSell: totalSell,
		TotalCost: totalCost,
		Margin:    totalSell.Sub(totalCost),
		MarginPct: Pct(totalSell, totalCost),
	}
}

// CountLowMargin cuenta las líneas cuyo margen porcentual queda por debajo
// del umbral (alerta de línea poco rentable en cotizaciones).
func CountLowMargin(lines []entity.OrderLine, thresholdPct decimal.Decimal) int {
	n := 0
	for _, l := range lines {
		if LinePct(l).LessThan(thresholdPct) {
			n++
		}
	}
	return n
}
