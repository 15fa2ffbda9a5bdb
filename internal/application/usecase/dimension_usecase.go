package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/toolbox-api/internal/application/dto"
	"github.com/jhoicas/toolbox-api/internal/domain/repository"
)

const (
	defaultDimensionLimit = 50
	maxDimensionLimit     = 200
)

// DimensionUseCase catálogos de dimensión (vendedores, clientes, proveedores).
// Solo proyección id + nombre para los selectores del Toolbox.
type DimensionUseCase struct {
	salespeople repository.SalespersonRepository
	customers   repository.CustomerRepository
	vendors     repository.VendorRepository
}

// NewDimensionUseCase construye el caso de uso.
func NewDimensionUseCase(
	salespeople repository.SalespersonRepository,
	customers repository.CustomerRepository,
	vendors repository.VendorRepository,
) *DimensionUseCase {
	return &DimensionUseCase{salespeople: salespeople, customers: customers, vendors: vendors}
}

// ListSalespeople retorna todos los vendedores ordenados por nombre.
// Sin paginación ni filtro: el catálogo completo alimenta un selector.
func (uc *DimensionUseCase) ListSalespeople(ctx context.Context) ([]dto.SalespersonDTO, error) {
	list, err := uc.salespeople.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("dimensiones: vendedores: %w", err)
	}
	out := make([]dto.SalespersonDTO, 0, len(list))
	for _, s := range list {
		out = append(out, dto.SalespersonDTO{ID: s.ID, Name: s.Name})
	}
	return out, nil
}

// SearchCustomers retorna clientes por nombre, opcionalmente filtrados.
func (uc *DimensionUseCase) SearchCustomers(ctx context.Context, search string, limit int) ([]dto.CustomerDTO, error) {
	list, err := uc.customers.List(ctx, search, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("dimensiones: clientes: %w", err)
	}
	out := make([]dto.CustomerDTO, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CustomerDTO{CustomerNo: dto.BigInt(c.CustomerNo), Name: c.Name})
	}
	return out, nil
}

// SearchVendors retorna proveedores por nombre, opcionalmente filtrados.
func (uc *DimensionUseCase) SearchVendors(ctx context.Context, search string, limit int) ([]dto.VendorDTO, error) {
	list, err := uc.vendors.List(ctx, search, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("dimensiones: proveedores: %w", err)
	}
	out := make([]dto.VendorDTO, 0, len(list))
	for _, v := range list {
		out = append(out, dto.VendorDTO{VndNo: dto.BigInt(v.VndNo), Name: v.Name})
	}
	return out, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultDimensionLimit
	}
	if limit > maxDimensionLimit {
		return maxDimensionLimit
	}
	return limit
}
