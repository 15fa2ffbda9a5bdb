package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/toolbox-api/internal/domain/entity"
	"github.com/jhoicas/toolbox-api/internal/domain/repository"
	"github.com/jhoicas/toolbox-api/pkg/money"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo consultas de solo lectura sobre las tablas de órdenes del ODS
// (ods_hds_orderheader / ods_hds_orderline).
//
// Los montos (unit_sell, unit_cost, qty_ordered) se escanean sin tipo y se
// normalizan con pkg/money: el ODS replica columnas que según el origen
// llegan como NUMERIC, texto con formato de moneda o NULL.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const headerSelect = `
	SELECT
	    h.order_no,
	    h.order_index,
	    COALESCE(h.order_type, '')        AS order_type,
	    COALESCE(h.order_status, '')      AS order_status,
	    COALESCE(h.title, '')             AS title,
	    COALESCE(h.company_code, '')      AS company_code,
	    COALESCE(h.organization_id, '')   AS organization_id,
	    COALESCE(h.customer_no, 0)        AS customer_no,
	    COALESCE(c.customer_name, '')     AS customer_name,
	    COALESCE(h.salesperson_id_1, '')  AS salesperson_id,
	    COALESCE(s.salesperson_name, '')  AS salesperson_name,
	    h.date_entered
	FROM ods_hds_orderheader h
	LEFT JOIN ods_hds_customer c
	       ON c.customer_no = h.customer_no
	      AND c.organization_id = h.company_code
	LEFT JOIN ods_hds_salesperson s
	       ON s.salesperson_id = h.salesperson_id_1`

// GetHeader busca la cabecera por order_no con cliente y vendedor resueltos.
// Retorna (nil, nil) si la orden no existe.
func (r *OrderRepo) GetHeader(ctx context.Context, orderNo int64) (*entity.OrderHeader, error) {
	query := headerSelect + `
	WHERE h.order_no = $1
	LIMIT 1`

	var h entity.OrderHeader
	err := r.q.QueryRow(ctx, query, orderNo).Scan(
		&h.OrderNo, &h.OrderIndex, &h.OrderType, &h.OrderStatus, &h.Title,
		&h.CompanyCode, &h.OrganizationID, &h.CustomerNo, &h.CustomerName,
		&h.SalespersonID, &h.SalespersonName, &h.DateEntered,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("orders.GetHeader %d: %w", orderNo, err)
	}
	return &h, nil
}

const lineSelect = `
	SELECT
	    l.order_index,
	    COALESCE(l.line_no, 0)        AS line_no,
	    COALESCE(l.vnd_no, 0)         AS vnd_no,
	    COALESCE(v.vendor_name, '')   AS vendor_name,
	    l.unit_sell,
	    l.unit_cost,
	    l.qty_ordered
	FROM ods_hds_orderline l
	LEFT JOIN ods_hds_vendor v
	       ON v.vnd_no = l.vnd_no
	      AND v.organization_id = l.organization_id`

// ListLines retorna las líneas de un order_index ordenadas por line_no.
func (r *OrderRepo) ListLines(ctx context.Context, orderIndex int64) ([]entity.OrderLine, error) {
	query := lineSelect + `
	WHERE l.order_index = $1
	ORDER BY l.line_no`

	rows, err := r.q.Query(ctx, query, orderIndex)
	if err != nil {
		return nil, fmt.Errorf("orders.ListLines %d: %w", orderIndex, err)
	}
	defer rows.Close()

	var lines []entity.OrderLine
	for rows.Next() {
		line, err := scanLine(rows)
		if err != nil {
			return nil, fmt.Errorf("orders.ListLines scan: %w", err)
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

// ListLinesByOrderIndexes trae las líneas de varios order_index en una sola
// consulta (= ANY) y las agrupa en memoria. Sustituye al patrón N+1 del
// listado de cotizaciones sin cambiar los agregados resultantes.
func (r *OrderRepo) ListLinesByOrderIndexes(ctx context.Context, orderIndexes []int64) (map[int64][]entity.OrderLine, error) {
	grouped := make(map[int64][]entity.OrderLine, len(orderIndexes))
	if len(orderIndexes) == 0 {
		return grouped, nil
	}

	query := lineSelect + `
	WHERE l.order_index = ANY($1)
	ORDER BY l.order_index, l.line_no`

	rows, err := r.q.Query(ctx, query, orderIndexes)
	if err != nil {
		return nil, fmt.Errorf("orders.ListLinesByOrderIndexes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		line, err := scanLine(rows)
		if err != nil {
			return nil, fmt.Errorf("orders.ListLinesByOrderIndexes scan: %w", err)
		}
		grouped[line.OrderIndex] = append(grouped[line.OrderIndex], line)
	}
	return grouped, rows.Err()
}

// ListActiveQuotes retorna las cabeceras tipo 'Q' del vendedor desde la fecha
// indicada, más reciente primero.
func (r *OrderRepo) ListActiveQuotes(ctx context.Context, salespersonID string, since time.Time) ([]entity.OrderHeader, error) {
	query := headerSelect + `
	WHERE h.order_type = 'Q'
	  AND h.salesperson_id_1 = $1
	  AND h.date_entered >= $2
	ORDER BY h.date_entered DESC`

	rows, err := r.q.Query(ctx, query, salespersonID, since)
	if err != nil {
		return nil, fmt.Errorf("orders.ListActiveQuotes %s: %w", salespersonID, err)
	}
	defer rows.Close()

	var headers []entity.OrderHeader
	for rows.Next() {
		var h entity.OrderHeader
		if err := rows.Scan(
			&h.OrderNo, &h.OrderIndex, &h.OrderType, &h.OrderStatus, &h.Title,
			&h.CompanyCode, &h.OrganizationID, &h.CustomerNo, &h.CustomerName,
			&h.SalespersonID, &h.SalespersonName, &h.DateEntered,
		); err != nil {
			return nil, fmt.Errorf("orders.ListActiveQuotes scan: %w", err)
		}
		headers = append(headers, h)
	}
	return headers, rows.Err()
}

// scanLine escanea una fila del lineSelect. Los tres montos se leen como
// valores sin tipo y pasan por money.Parse (única regla de coerción:
// NULL/basura degradan a cero, nunca a error).
func scanLine(rows pgx.Rows) (entity.OrderLine, error) {
	var l entity.OrderLine
	var unitSell, unitCost, qty any
	if err := rows.Scan(
		&l.OrderIndex, &l.LineNo, &l.VndNo, &l.VendorName,
		&unitSell, &unitCost, &qty,
	); err != nil {
		return entity.OrderLine{}, err
	}
	l.UnitSell = money.Parse(unitSell)
	l.UnitCost = money.Parse(unitCost)
	l.QtyOrdered = money.Parse(qty)
	return l, nil
}
