package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/orders-pro/internal/application/dto"
	"github.com/tu-usuario/orders-pro/internal/application/orders"
	"github.com/tu-usuario/orders-pro/internal/domain"
)

// OrderHandler maneja el ciclo de vida de órdenes por HTTP.
type OrderHandler struct {
	uc *orders.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *orders.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create godoc
// @Summary      Colocar una orden (solo customer)
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "product_id, quantity"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Required fields are missing"})
	}
	if _, err := h.uc.Place(c.Context(), GetUserID(c), in); err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingFields):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Required fields are missing"})
		case errors.Is(err, domain.ErrInvalidQuantity):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Quantity must be greater than 0"})
		case errors.Is(err, domain.ErrProductNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Product not found"})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Insufficient quantity"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Order placed successfully"})
}

// List godoc
// @Summary      Listar órdenes (admin y sales_rep ven todas; customer las propias)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.OrderResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetUserID(c), GetRole(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Cancelar una orden pendiente (solo customer)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        order_no  path  string  true  "Referencia externa de la orden"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/cancel/{order_no} [put]
func (h *OrderHandler) Cancel(c *fiber.Ctx) error {
	if err := h.uc.Cancel(c.Context(), c.Params("order_no")); err != nil {
		return orderTransitionError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Order cancelled successfully"})
}

// Complete godoc
// @Summary      Completar una orden pendiente (solo sales_rep)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        order_no  path  string  true  "Referencia externa de la orden"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/complete/{order_no} [put]
func (h *OrderHandler) Complete(c *fiber.Ctx) error {
	if err := h.uc.Complete(c.Context(), c.Params("order_no")); err != nil {
		return orderTransitionError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Order completed successfully"})
}

// orderTransitionError mapea los errores de cancel/complete. Los estados
// terminales reportan mensajes distintos, no un genérico.
func orderTransitionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrOrderNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Order not found"})
	case errors.Is(err, domain.ErrOrderCompleted):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Order already completed"})
	case errors.Is(err, domain.ErrOrderCancelled):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Order already cancelled"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
}
