// Package report genera los exportes descargables del Toolbox (hoy: reporte
// de margen de orden en PDF).
package report

import (
	"context"
	"fmt"

	"github.com/jhoicas/toolbox-api/internal/application/usecase"
)

// PDFUseCase orquesta el exporte PDF: reutiliza el cálculo de margen del
// caso de uso de órdenes y delega el render en el generador.
type PDFUseCase struct {
	orders    *usecase.OrderUseCase
	generator MarginPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(orders *usecase.OrderUseCase, generator MarginPDFGenerator) *PDFUseCase {
	return &PDFUseCase{orders: orders, generator: generator}
}

// OrderMarginPDF retorna los bytes del PDF del reporte de margen.
// Propaga domain.ErrNotFound si la orden no existe.
func (uc *PDFUseCase) OrderMarginPDF(ctx context.Context, orderNo int64) ([]byte, error) {
	order, err := uc.orders.GetMargin(ctx, orderNo)
	if err != nil {
		return nil, err
	}
	pdf, err := uc.generator.GenerateMarginPDF(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("report: render PDF de %d: %w", orderNo, err)
	}
	return pdf, nil
}
