package handlers

import (
	"bytes"
	"context"
	"io"
	"time"

	"seo-forecast-api/internal/chart"
	"seo-forecast-api/internal/models"
	"seo-forecast-api/internal/series"
	"seo-forecast-api/internal/services"

	"github.com/gofiber/fiber/v2"
)

type ForecastHandler struct {
	service *services.ForecastService
}

func NewForecastHandler(service *services.ForecastService) *ForecastHandler {
	return &ForecastHandler{
		service: service,
	}
}

// GetForecast handles POST /v1/forecast
func (h *ForecastHandler) GetForecast(c *fiber.Ctx) error {
	forecast, status, errResp := h.forecast(c)
	if errResp != nil {
		return c.Status(status).JSON(errResp)
	}
	return c.JSON(forecast)
}

// GetForecastReport handles POST /v1/forecast/report, returning the
// rendered HTML chart and table instead of JSON
func (h *ForecastHandler) GetForecastReport(c *fiber.Ctx) error {
	forecast, status, errResp := h.forecast(c)
	if errResp != nil {
		return c.Status(status).JSON(errResp)
	}

	var buf bytes.Buffer
	if err := chart.WriteReport(&buf, forecast); err != nil {
		return c.Status(500).JSON(models.ErrorResponse{
			Error:   "Failed to render forecast report",
			Message: err.Error(),
			Code:    500,
		})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}

// forecast runs upload extraction, validation, and forecasting shared by
// both endpoints
func (h *ForecastHandler) forecast(c *fiber.Ctx) (*models.ForecastResponse, int, *models.ErrorResponse) {
	ctx, cancel := context.WithTimeout(c.Context(), 30*time.Second)
	defer cancel()

	upload, errResp := readUpload(c)
	if errResp != nil {
		return nil, 400, errResp
	}

	points, err := series.Parse(bytes.NewReader(upload))
	if err != nil {
		return nil, 400, &models.ErrorResponse{
			Error:   "Invalid traffic data",
			Message: err.Error(),
			Code:    400,
		}
	}

	forecast, err := h.service.GenerateForecast(ctx, upload, points)
	if err != nil {
		return nil, 422, &models.ErrorResponse{
			Error:   "Failed to generate forecast",
			Message: err.Error(),
			Code:    422,
		}
	}

	return forecast, 200, nil
}

func readUpload(c *fiber.Ctx) ([]byte, *models.ErrorResponse) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, &models.ErrorResponse{
			Error:   "CSV file is required",
			Message: "Upload a CSV file with monthly traffic data in the \"file\" field",
			Code:    400,
		}
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, &models.ErrorResponse{
			Error:   "Unable to read uploaded file",
			Message: err.Error(),
			Code:    400,
		}
	}
	defer file.Close()

	upload, err := io.ReadAll(file)
	if err != nil {
		return nil, &models.ErrorResponse{
			Error:   "Unable to read uploaded file",
			Message: err.Error(),
			Code:    400,
		}
	}
	if len(upload) == 0 {
		return nil, &models.ErrorResponse{
			Error:   "Uploaded file is empty",
			Message: "The CSV file must contain at least two monthly rows",
			Code:    400,
		}
	}

	return upload, nil
}

// CustomErrorHandler handles Fiber errors
func CustomErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(models.ErrorResponse{
		Error:   "Request failed",
		Message: err.Error(),
		Code:    code,
	})
}
