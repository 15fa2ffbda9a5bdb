package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderTypeQuote marca una cabecera como cotización (venta no comprometida).
// Cualquier otro valor de order_type es una orden en firme.
const OrderTypeQuote = "Q"

// OrderHeader cabecera de orden/cotización del ODS (ods_hds_orderheader).
// Solo lectura: el ciclo de vida lo gobierna el ERP upstream. Incluye los
// nombres de cliente y vendedor resueltos por JOIN para presentación.
type OrderHeader struct {
	OrderNo         int64
	OrderIndex      int64
	OrderType       string
	OrderStatus     string
	Title           string
	CompanyCode     string
	OrganizationID  string
	CustomerNo      int64
	CustomerName    string
	SalespersonID   string
	SalespersonName string
	DateEntered     time.Time
}

// IsQuote indica si la cabecera es una cotización.
func (h OrderHeader) IsQuote() bool { return h.OrderType == OrderTypeQuote }

// OrderLine línea de orden (ods_hds_orderline). Pertenece a exactamente una
// cabecera vía OrderIndex. Los montos ya vienen normalizados por pkg/money
// en la capa de persistencia.
type OrderLine struct {
	OrderIndex int64
	LineNo     int
	VndNo      int64
	VendorName string
	UnitSell   decimal.Decimal
	UnitCost   decimal.Decimal
	QtyOrdered decimal.Decimal
}
