package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ActiveQuoteDTO cotización activa de un vendedor con totales agregados.
// Elemento de la respuesta de GET /api/quotes/active.
type ActiveQuoteDTO struct {
	QuoteNo            BigInt          `json:"quote_no"`
	OrderTitle         string          `json:"order_title"`
	CustomerName       string          `json:"customer_name"`
	SalespersonName    string          `json:"salesperson_name"`
	DateCreated        time.Time       `json:"date_created"`
	Status             string          `json:"status"`
	TotalSell          decimal.Decimal `json:"total_sell"`
	TotalCost          decimal.Decimal `json:"total_cost"`
	OverallMarginPct   decimal.Decimal `json:"overall_margin_pct"`    // redondeado a 2 decimales
	LowMarginLineCount int             `json:"low_margin_line_count"` // líneas bajo el umbral configurado
}
