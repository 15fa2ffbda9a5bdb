package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/toolbox-api/internal/domain/entity"
	"github.com/jhoicas/toolbox-api/internal/domain/repository"
)

var (
	_ repository.SalespersonRepository = (*SalespersonRepo)(nil)
	_ repository.CustomerRepository    = (*CustomerRepo)(nil)
	_ repository.VendorRepository      = (*VendorRepo)(nil)
)

// SalespersonRepo catálogo de vendedores (ods_hds_salesperson).
type SalespersonRepo struct {
	q Querier
}

// NewSalespersonRepository construye el adaptador.
func NewSalespersonRepository(q Querier) *SalespersonRepo {
	return &SalespersonRepo{q: q}
}

// List retorna todos los vendedores, alfabético por nombre.
func (r *SalespersonRepo) List(ctx context.Context) ([]entity.Salesperson, error) {
	const query = `
	SELECT salesperson_id, COALESCE(salesperson_name, '') AS salesperson_name
	FROM ods_hds_salesperson
	ORDER BY salesperson_name`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("salespeople.List: %w", err)
	}
	defer rows.Close()

	var list []entity.Salesperson
	for rows.Next() {
		var s entity.Salesperson
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("salespeople.List scan: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// CustomerRepo catálogo de clientes (ods_hds_customer).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador.
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// List retorna clientes por nombre; search filtra por subcadena (ILIKE).
func (r *CustomerRepo) List(ctx context.Context, search string, limit int) ([]entity.Customer, error) {
	const query = `
	SELECT customer_no, COALESCE(customer_name, '') AS customer_name
	FROM ods_hds_customer
	WHERE ($1 = '' OR customer_name ILIKE '%' || $1 || '%')
	ORDER BY customer_name
	LIMIT $2`

	rows, err := r.q.Query(ctx, query, search, limit)
	if err != nil {
		return nil, fmt.Errorf("customers.List: %w", err)
	}
	defer rows.Close()

	var list []entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.CustomerNo, &c.Name); err != nil {
			return nil, fmt.Errorf("customers.List scan: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// VendorRepo catálogo de proveedores (ods_hds_vendor).
type VendorRepo struct {
	q Querier
}

// NewVendorRepository construye el adaptador.
func NewVendorRepository(q Querier) *VendorRepo {
	return &VendorRepo{q: q}
}

// List retorna proveedores por nombre; search filtra por subcadena (ILIKE).
func (r *VendorRepo) List(ctx context.Context, search string, limit int) ([]entity.Vendor, error) {
	const query = `
	SELECT vnd_no, COALESCE(vendor_name, '') AS vendor_name
	FROM ods_hds_vendor
	WHERE ($1 = '' OR vendor_name ILIKE '%' || $1 || '%')
	ORDER BY vendor_name
	LIMIT $2`

	rows, err := r.q.Query(ctx, query, search, limit)
	if err != nil {
		return nil, fmt.Errorf("vendors.List: %w", err)
	}
	defer rows.Close()

	var list []entity.Vendor
	for rows.Next() {
		var v entity.Vendor
		if err := rows.Scan(&v.VndNo, &v.Name); err != nil {
			return nil, fmt.Errorf("vendors.List scan: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}
