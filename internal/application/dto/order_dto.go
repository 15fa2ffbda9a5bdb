package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLineMarginDTO línea de orden con su margen porcentual calculado.
type OrderLineMarginDTO struct {
	LineNo     int             `json:"line_no"`
	VndNo      BigInt          `json:"vnd_no"`
	VendorName string          `json:"vendor_name"`
	UnitSell   decimal.Decimal `json:"unit_sell"`
	UnitCost   decimal.Decimal `json:"unit_cost"`
	QtyOrdered decimal.Decimal `json:"qty_ordered"`
	LineSell   decimal.Decimal `json:"line_sell"` // unit_sell × qty
	LineCost   decimal.Decimal `json:"line_cost"` // unit_cost × qty
	MarginPct  decimal.Decimal `json:"margin_pct"`
}

// OrderMarginDTO respuesta de GET /api/orders/:orderNo/margin.
//
// Contrato de salida explícito: campos de cabecera aplanados + totales
// calculados + líneas con margen. Los totales conservan las claves camelCase
// históricas del Toolbox (totalCost/totalSell/orderMargin/orderMarginPct);
// el resto del API usa snake_case.
type OrderMarginDTO struct {
	OrderNo         BigInt    `json:"order_no"`
	OrderType       string    `json:"order_type"`
	OrderStatus     string    `json:"order_status"`
	Title           string    `json:"title"`
	CompanyCode     string    `json:"company_code"`
	OrganizationID  string    `json:"organization_id"`
	CustomerNo      BigInt    `json:"customer_no"`
	CustomerName    string    `json:"customer_name"`
	SalespersonID   string    `json:"salesperson_id"`
	SalespersonName string    `json:"salesperson_name"`
	DateEntered     time.Time `json:"date_entered"`

	TotalCost      decimal.Decimal `json:"totalCost"`
	TotalSell      decimal.Decimal `json:"totalSell"`
	OrderMargin    decimal.Decimal `json:"orderMargin"`
	OrderMarginPct decimal.Decimal `json:"orderMarginPct"`

	Lines []OrderLineMarginDTO `json:"lines"`
}
