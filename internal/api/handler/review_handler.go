package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gymclub/booking-system/internal/core/domain"
	"github.com/gymclub/booking-system/internal/core/ports"
)

// ReviewHandler handles review submission and moderation.
type ReviewHandler struct {
	service ports.ReviewService
}

func NewReviewHandler(service ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

type submitReviewRequest struct {
	Rating int    `json:"rating" validate:"required,gte=1,lte=5"`
	Text   string `json:"text" validate:"required"`
}

type updateReviewStatusRequest struct {
	ID     string `json:"_id" validate:"required"`
	Status string `json:"selectedStatus" validate:"required,oneof=pending approved rejected"`
}

// Submit stores a review authored by the caller. It starts pending and is
// invisible to the public until an admin approves it.
//
// @Summary      Submit a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitReviewRequest  true  "Review"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /submit-review [post]
func (h *ReviewHandler) Submit(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req submitReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.Submit(c.Request().Context(), identity, ports.SubmitReviewInput{
		Rating: req.Rating,
		Text:   req.Text,
	}); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okMessage("Review Submitted Successfully. Need Admin Approval To Show your review"))
}

// ListApproved returns approved reviews. Public.
//
// @Summary      List approved reviews
// @Tags         reviews
// @Produce      json
// @Success      200  {array}  domain.Review
// @Router       /get-approved-review [get]
func (h *ReviewHandler) ListApproved(c echo.Context) error {
	reviews, err := h.service.ListApproved(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}

// ListAll returns every review regardless of status. Admin only.
//
// @Summary      List all reviews
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Review
// @Failure      403  {object}  map[string]string
// @Router       /get-all-review [get]
func (h *ReviewHandler) ListAll(c echo.Context) error {
	reviews, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}

// UpdateStatus overwrites a review's moderation status. Admin only.
//
// @Summary      Update a review's status
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateReviewStatusRequest  true  "Review id and new status"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /review-status-updater [post]
func (h *ReviewHandler) UpdateStatus(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateReviewStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.UpdateStatus(c.Request().Context(), identity, req.ID, domain.ReviewStatus(req.Status)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okMessage(req.Status+" Successfully"))
}
