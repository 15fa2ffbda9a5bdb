package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/toolbox-api/internal/application/dto"
	"github.com/jhoicas/toolbox-api/internal/application/usecase"
)

// DimensionHandler maneja los catálogos de dimensión para los selectores del
// Toolbox (vendedores, clientes, proveedores).
type DimensionHandler struct {
	uc *usecase.DimensionUseCase
}

// NewDimensionHandler construye el handler.
func NewDimensionHandler(uc *usecase.DimensionUseCase) *DimensionHandler {
	return &DimensionHandler{uc: uc}
}

// ListSalespeople godoc
// @Summary      Catálogo de vendedores
// @Tags         dimensions
// @Produce      json
// @Success      200  {array}   dto.SalespersonDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/salespeople [get]
func (h *DimensionHandler) ListSalespeople(c *fiber.Ctx) error {
	list, err := h.uc.ListSalespeople(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(list)
}

// ListCustomers GET /api/customers?search=&limit=
func (h *DimensionHandler) ListCustomers(c *fiber.Ctx) error {
	list, err := h.uc.SearchCustomers(c.Context(), c.Query("search"), queryLimit(c))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(list)
}

// ListVendors GET /api/vendors?search=&limit=
func (h *DimensionHandler) ListVendors(c *fiber.Ctx) error {
	list, err := h.uc.SearchVendors(c.Context(), c.Query("search"), queryLimit(c))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(list)
}

func queryLimit(c *fiber.Ctx) int {
	n, _ := strconv.Atoi(c.Query("limit", "0"))
	return n
}

func internalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error:   "error interno",
		Details: err.Error(),
	})
}
