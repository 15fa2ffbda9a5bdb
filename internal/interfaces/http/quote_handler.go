package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/toolbox-api/internal/application/dto"
	"github.com/jhoicas/toolbox-api/internal/application/usecase"
	"github.com/jhoicas/toolbox-api/internal/domain"
)

// QuoteHandler maneja el listado de cotizaciones activas.
type QuoteHandler struct {
	uc *usecase.QuoteUseCase
}

// NewQuoteHandler construye el handler.
func NewQuoteHandler(uc *usecase.QuoteUseCase) *QuoteHandler {
	return &QuoteHandler{uc: uc}
}

// ListActive godoc
// @Summary      Cotizaciones activas de un vendedor
// @Description  Cotizaciones (order_type='Q') de los últimos meses con totales de venta/costo, margen global y conteo de líneas de bajo margen.
// @Tags         quotes
// @Produce      json
// @Param        salesperson_id  query  string  true  "Identificador del vendedor"
// @Success      200  {array}   dto.ActiveQuoteDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/quotes/active [get]
func (h *QuoteHandler) ListActive(c *fiber.Ctx) error {
	quotes, err := h.uc.ListActive(c.Context(), c.Query("salesperson_id"))
	if err != nil {
		if errors.Is(err, domain.ErrMissingParam) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: "salesperson_id es requerido",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error:   "error interno",
			Details: err.Error(),
		})
	}
	return c.JSON(quotes)
}
