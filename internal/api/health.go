package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness without touching storage
// @Summary Checks the health of the API
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "OK", Message: "API is running"})
}
