package repository

import (
	"context"

	"github.com/jhoicas/toolbox-api/internal/domain/entity"
)

// SalespersonRepository catálogo de vendedores.
type SalespersonRepository interface {
	// List retorna todos los vendedores ordenados alfabéticamente por nombre.
	List(ctx context.Context) ([]entity.Salesperson, error)
}

// CustomerRepository catálogo de clientes.
type CustomerRepository interface {
	// List retorna clientes ordenados por nombre; search filtra por nombre
	// (subcadena, sin distinción de mayúsculas) cuando no está vacío.
	List(ctx context.Context, search string, limit int) ([]entity.Customer, error)
}

// VendorRepository catálogo de proveedores.
type VendorRepository interface {
	List(ctx context.Context, search string, limit int) ([]entity.Vendor, error)
}
