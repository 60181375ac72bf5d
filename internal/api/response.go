package api

import (
	"github.com/labstack/echo/v4"
	"github.com/talkincode/productcatalog/internal/catalog"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error" example:"Missing required fields: name, category, stock, price"`
}

// ProductListResponse is the body of GET /products
type ProductListResponse struct {
	Products []catalog.ProductView `json:"products"`
}

// CreateProductResponse is the body of a successful POST /products
type CreateProductResponse struct {
	Message string               `json:"message" example:"Producto creado exitosamente"`
	Product *catalog.ProductView `json:"product"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status  string `json:"status" example:"OK"`
	Message string `json:"message" example:"API is running"`
}

func fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, ErrorResponse{Error: msg})
}
