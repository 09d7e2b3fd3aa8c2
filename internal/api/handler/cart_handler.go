package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gymclub/booking-system/internal/core/ports"
)

// CartHandler handles the caller's cart routes. Ownership comes from the
// token identity; any email field in the request body is ignored.
type CartHandler struct {
	service ports.CartService
}

func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{service: service}
}

type addToCartRequest struct {
	ServiceID string `json:"serviceId" validate:"required"`
}

type clearCartResponse struct {
	Success bool  `json:"success"`
	Deleted int64 `json:"deleted"`
}

// Add puts a catalog service into the caller's cart.
//
// @Summary      Add a service to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addToCartRequest  true  "Service reference"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /add-to-cart [post]
func (h *CartHandler) Add(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.Add(c.Request().Context(), identity, req.ServiceID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okMessage("Services Added To Cart Successfully"))
}

// List returns the caller's cart joined against the catalog. Strictly
// owner-scoped; there is no admin cross-user view on this route.
//
// @Summary      Get the caller's cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Service
// @Failure      403  {object}  map[string]string
// @Router       /get-cart [get]
func (h *CartHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	services, err := h.service.List(c.Request().Context(), identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, services)
}

// Clear removes every item in the caller's cart and reports the count.
//
// @Summary      Clear the caller's cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  clearCartResponse
// @Failure      403  {object}  map[string]string
// @Router       /clear-cart [delete]
func (h *CartHandler) Clear(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	deleted, err := h.service.Clear(c.Request().Context(), identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clearCartResponse{Success: true, Deleted: deleted})
}
