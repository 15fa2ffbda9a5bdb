package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/toolbox-api/internal/application/dto"
	"github.com/jhoicas/toolbox-api/internal/domain"
	"github.com/jhoicas/toolbox-api/internal/domain/entity"
	"github.com/jhoicas/toolbox-api/internal/domain/margin"
	"github.com/jhoicas/toolbox-api/internal/domain/repository"
)

// OrderUseCase arma el reporte de margen de una orden: cabecera + líneas +
// agregados calculados. Operación de lectura pura e idempotente; el estado
// vive en el ODS del ERP y aquí nunca se muta nada.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// GetMargin retorna el análisis de margen de la orden indicada.
// Retorna domain.ErrNotFound si no existe una cabecera con ese order_no.
func (uc *OrderUseCase) GetMargin(ctx context.Context, orderNo int64) (*dto.OrderMarginDTO, error) {
	header, err := uc.orders.GetHeader(ctx, orderNo)
	if err != nil {
		return nil, fmt.Errorf("orders: cabecera %d: %w", orderNo, err)
	}
	if header == nil {
		return nil, domain.ErrNotFound
	}

	lines, err := uc.orders.ListLines(ctx, header.OrderIndex)
	if err != nil {
		return nil, fmt.Errorf("orders: líneas de %d: %w", orderNo, err)
	}

	return buildOrderMargin(header, lines), nil
}

// buildOrderMargin reduce las líneas a totales de cabecera y adjunta el
// margen porcentual por línea. La reducción es independiente del orden de
// las líneas; el orden del arreglo se conserva solo para presentación.
func buildOrderMargin(header *entity.OrderHeader, lines []entity.OrderLine) *dto.OrderMarginDTO {
	totals := margin.Aggregate(lines)

	lineDTOs := make([]dto.OrderLineMarginDTO, 0, len(lines))
	for _, l := range lines {
		lineDTOs = append(lineDTOs, dto.OrderLineMarginDTO{
			LineNo:     l.LineNo,
			VndNo:      dto.BigInt(l.VndNo),
			VendorName: l.VendorName,
			UnitSell:   l.UnitSell,
			UnitCost:   l.UnitCost,
			QtyOrdered: l.QtyOrdered,
			LineSell:   margin.LineSell(l).Round(2),
			LineCost:   margin.LineCost(l).Round(2),
			MarginPct:  margin.LinePct(l),
		})
	}

	return &dto.OrderMarginDTO{
		OrderNo:         dto.BigInt(header.OrderNo),
		OrderType:       header.OrderType,
		OrderStatus:     header.OrderStatus,
		Title:           header.Title,
		CompanyCode:     header.CompanyCode,
		OrganizationID:  header.OrganizationID,
		CustomerNo:      dto.BigInt(header.CustomerNo),
		CustomerName:    header.CustomerName,
		SalespersonID:   header.SalespersonID,
		SalespersonName: header.SalespersonName,
		DateEntered:     header.DateEntered,
		TotalCost:       totals.TotalCost.Round(2),
		TotalSell:       totals.TotalSell.Round(2),
		OrderMargin:     totals.Margin.Round(2),
		OrderMarginPct:  totals.MarginPct,
		Lines:           lineDTOs,
	}
}
