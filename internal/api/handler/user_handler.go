package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gymclub/booking-system/internal/core/ports"
)

// UserHandler handles admin account operations.
type UserHandler struct {
	authService ports.AuthService
}

func NewUserHandler(authService ports.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// List returns all registered users. Admin only.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      403  {object}  map[string]string
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.authService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// MakeAdmin promotes the user with the given email. Admin only.
//
// @Summary      Promote a user to admin
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Email of the user to promote"
// @Success      200    {object}  successResponse
// @Failure      403    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /makeAdmin/{email} [get]
func (h *UserHandler) MakeAdmin(c echo.Context) error {
	email := c.Param("email")

	if err := h.authService.MakeAdmin(c.Request().Context(), email); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okMessage("promotion successful"))
}
