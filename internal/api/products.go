package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/talkincode/productcatalog/internal/catalog"
	"github.com/talkincode/productcatalog/internal/webserver"
)

// ProductCreatedMessage is returned with every created product
const ProductCreatedMessage = "Producto creado exitosamente"

func registerProductRoutes(s *webserver.WebServer) {
	s.GET("/products", ListProducts)
	s.POST("/products", CreateProduct)
}

// ListProducts returns every product ordered by id
// @Summary Returns a list of products
// @Tags Products
// @Produce json
// @Success 200 {object} ProductListResponse
// @Failure 500 {object} ErrorResponse
// @Router /products [get]
func ListProducts(c echo.Context) error {
	products, err := GetProductService(c).List(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, errors.Cause(err).Error())
	}
	return c.JSON(http.StatusOK, ProductListResponse{Products: products})
}

// CreateProduct stores a new product
// @Summary Creates a new product
// @Tags Products
// @Accept json
// @Produce json
// @Param product body catalog.CreateProductRequest true "Product to create"
// @Success 201 {object} CreateProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /products [post]
func CreateProduct(c echo.Context) error {
	var payload catalog.CreateProductRequest
	if err := c.Bind(&payload); err != nil {
		return err
	}

	product, err := GetProductService(c).Create(c.Request().Context(), payload)
	switch {
	case err == nil:
		return c.JSON(http.StatusCreated, CreateProductResponse{
			Message: ProductCreatedMessage,
			Product: product,
		})
	case catalog.IsValidation(err):
		return fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, catalog.ErrProductExists):
		return fail(c, http.StatusConflict, err.Error())
	default:
		return fail(c, http.StatusInternalServerError, errors.Cause(err).Error())
	}
}
