package http

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/toolbox-api/internal/application/dto"
	"github.com/jhoicas/toolbox-api/internal/application/report"
	"github.com/jhoicas/toolbox-api/internal/application/usecase"
	"github.com/jhoicas/toolbox-api/internal/domain"
)

// OrderHandler maneja los endpoints de análisis de margen por orden.
type OrderHandler struct {
	uc  *usecase.OrderUseCase
	pdf *report.PDFUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase, pdf *report.PDFUseCase) *OrderHandler {
	return &OrderHandler{uc: uc, pdf: pdf}
}

// GetMargin godoc
// @Summary      Análisis de margen de una orden
// @Description  Cabecera + líneas con costo/venta/margen agregados. Los bigint del ODS viajan como string.
// @Tags         orders
// @Produce      json
// @Param        orderNo  path  int  true  "Número de orden"
// @Success      200  {object}  dto.OrderMarginDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/orders/{orderNo}/margin [get]
func (h *OrderHandler) GetMargin(c *fiber.Ctx) error {
	orderNo, err := parseOrderNo(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "orderNo debe ser un entero",
		})
	}

	order, err := h.uc.GetMargin(c.Context(), orderNo)
	if err != nil {
		return orderError(c, orderNo, err)
	}
	return c.JSON(order)
}

// GetMarginPDF godoc
// @Summary      Reporte de margen de una orden en PDF
// @Tags         orders
// @Produce      application/pdf
// @Param        orderNo  path  int  true  "Número de orden"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/orders/{orderNo}/margin/pdf [get]
func (h *OrderHandler) GetMarginPDF(c *fiber.Ctx) error {
	orderNo, err := parseOrderNo(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "orderNo debe ser un entero",
		})
	}

	pdfBytes, err := h.pdf.OrderMarginPDF(c.Context(), orderNo)
	if err != nil {
		return orderError(c, orderNo, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="margen-orden-%d.pdf"`, orderNo))
	return c.Send(pdfBytes)
}

func parseOrderNo(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("orderNo"), 10, 64)
}

// orderError traduce errores del caso de uso a la respuesta HTTP:
// not-found es un resultado distinguido (404); cualquier otra falla sube como
// 500 con el mensaje crudo en details (herramienta interna, sin redacción).
func orderError(c *fiber.Ctx, orderNo int64, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: fmt.Sprintf("orden %d no encontrada", orderNo),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error:   "error interno",
		Details: err.Error(),
	})
}
