package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gymclub/booking-system/internal/core/ports"
)

// maxImageBytes caps catalog image uploads at 5 MiB.
const maxImageBytes = 5 << 20

// CatalogHandler handles the service catalog routes.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// Add creates a catalog service from a multipart form with an image file.
// Admin only.
//
// @Summary      Add a catalog service
// @Tags         catalog
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title        formData  string  true   "Service title"
// @Param        description  formData  string  false  "Service description"
// @Param        price        formData  string  true   "Service price"
// @Param        image        formData  file    true   "Service image"
// @Success      200          {object}  successResponse
// @Failure      400          {object}  map[string]string
// @Failure      403          {object}  map[string]string
// @Router       /addService [post]
func (h *CatalogHandler) Add(c echo.Context) error {
	title := c.FormValue("title")
	price := c.FormValue("price")
	if title == "" || price == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title and price are required")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "No files were uploaded.")
	}
	if fileHeader.Size > maxImageBytes {
		return echo.NewHTTPError(http.StatusBadRequest, "image too large")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable image upload")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable image upload")
	}

	_, err = h.service.Add(c.Request().Context(), ports.AddServiceInput{
		Title:       title,
		Description: c.FormValue("description"),
		Price:       price,
		Image: ports.ImageInput{
			Name:        fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Size:        int64(len(data)),
			Data:        data,
		},
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, okMessage("Services Added Successfully"))
}

// List returns the full catalog. Public.
//
// @Summary      List catalog services
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  domain.Service
// @Router       /get-services [get]
func (h *CatalogHandler) List(c echo.Context) error {
	services, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, services)
}

// Delete removes a catalog service by id. Admin only.
//
// @Summary      Delete a catalog service
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Service id"
// @Success      200  {object}  successResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /deleteService/{id} [delete]
func (h *CatalogHandler) Delete(c echo.Context) error {
	if err := h.service.Remove(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okMessage("Services Removed Successfully"))
}
