package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gymclub/booking-system/internal/core/ports"
)

// MessageHandler handles the contact form.
type MessageHandler struct {
	service ports.MessageService
}

func NewMessageHandler(service ports.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

type sendMessageRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject"`
	Body    string `json:"message" validate:"required"`
}

// Send stores a contact message. Public.
//
// @Summary      Send a contact message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        body  body      sendMessageRequest  true  "Contact message"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  map[string]string
// @Router       /send-message [post]
func (h *MessageHandler) Send(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.Send(c.Request().Context(), ports.SendMessageInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Body,
	}); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okMessage("Submitted Successfully"))
}

// ListAll returns every contact message. Admin only.
//
// @Summary      List contact messages
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Message
// @Failure      403  {object}  map[string]string
// @Router       /get-messages [get]
func (h *MessageHandler) ListAll(c echo.Context) error {
	messages, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messages)
}
