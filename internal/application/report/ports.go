package report

import (
	"context"

	"github.com/jhoicas/toolbox-api/internal/application/dto"
)

// MarginPDFGenerator puerto de salida: renderiza el reporte de margen de una
// orden como documento PDF. Implementado en infrastructure/pdf con Maroto.
type MarginPDFGenerator interface {
	GenerateMarginPDF(ctx context.Context, order *dto.OrderMarginDTO) ([]byte, error)
}
