package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gymclub/booking-system/internal/core/domain"
	"github.com/gymclub/booking-system/internal/core/ports"
)

// OrderHandler handles checkout and order administration.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

type submitOrderRequest struct {
	PaymentID string   `json:"paymentId" validate:"required"`
	Items     []string `json:"items"`
	Total     float64  `json:"total" validate:"gte=0"`
}

type submitOrderResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	PaymentID string `json:"paymentId"`
	Status    string `json:"status"`
}

type updateOrderStatusRequest struct {
	PaymentID string `json:"paymentId" validate:"required"`
	Status    string `json:"status" validate:"required,oneof=pending approved rejected cancelled"`
}

// Submit creates an order from the caller's checkout. Identity, status, and
// timestamp are stamped server-side; client-supplied values for them are
// ignored.
//
// @Summary      Submit an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitOrderRequest  true  "Checkout details"
// @Success      200   {object}  submitOrderResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /submit-order [post]
func (h *OrderHandler) Submit(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req submitOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Submit(c.Request().Context(), identity, ports.SubmitOrderInput{
		PaymentID: req.PaymentID,
		Items:     req.Items,
		Total:     req.Total,
	})
	if err != nil {
		return err
	}

	msg := "Order Submitted Successfully"
	if result.AlreadyExisted {
		msg = "Order Already Submitted"
	}
	return c.JSON(http.StatusOK, submitOrderResponse{
		Success:   true,
		Message:   msg,
		PaymentID: result.PaymentID,
		Status:    result.Status,
	})
}

// List returns all orders for admins and the caller's own orders otherwise.
//
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Order
// @Failure      403  {object}  map[string]string
// @Router       /getOrders [get]
func (h *OrderHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	orders, err := h.service.List(c.Request().Context(), identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// UpdateStatus moves an order to a new status by payment reference. Admin only.
//
// @Summary      Update an order's status
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateOrderStatusRequest  true  "Payment reference and new status"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /update-order-status [patch]
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.UpdateStatus(c.Request().Context(), identity, req.PaymentID, domain.OrderStatus(req.Status)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okMessage(req.Status+" Successfully"))
}
