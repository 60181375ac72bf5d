package catalog

import (
	"context"
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
	"github.com/talkincode/productcatalog/internal/domain"
	"go.uber.org/zap"
)

// maxPrice is the first value that no longer fits numeric(10,2)
var maxPrice = decimal.New(1, 8)

// CreateProductRequest is the body of POST /products.
// Stock and Price accept JSON numbers or numeric strings.
type CreateProductRequest struct {
	Name     string      `json:"name" example:"Pen"`
	Category string      `json:"category" example:"Office"`
	Stock    interface{} `json:"stock" swaggertype:"integer" example:"10"`
	Price    interface{} `json:"price" swaggertype:"number" example:"1.50"`
}

// ProductView is the wire representation of a product
type ProductView struct {
	ID        int64       `json:"id" example:"1"`
	Name      string      `json:"name" example:"Laptop Dell XPS 13"`
	Category  string      `json:"category" example:"Electrónicos"`
	Stock     int         `json:"stock" example:"5"`
	Price     json.Number `json:"price" swaggertype:"number" example:"1299.99"`
	CreatedAt *time.Time  `json:"created_at,omitempty"`
}

// productInput is a create request after type coercion
type productInput struct {
	Name     string          `validate:"required,max=255"`
	Category string          `validate:"required,max=100"`
	Stock    int             `validate:"min=0,max=2147483647"`
	Price    decimal.Decimal `validate:"-"`
}

// Service implements the list/create contract of the catalog. It keeps no
// state between calls besides its collaborators.
type Service struct {
	repo     ProductRepository
	validate *validator.Validate
}

func NewService(repo ProductRepository) *Service {
	return &Service{repo: repo, validate: validator.New()}
}

// List returns all products ordered by ascending id.
func (s *Service) List(ctx context.Context) ([]ProductView, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		zap.L().Error("failed to fetch products", zap.String("namespace", "catalog"), zap.Error(err))
		return nil, err
	}
	views := make([]ProductView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toView(row))
	}
	return views, nil
}

// Create validates req and stores it as a new row. The returned view carries
// the id and created_at assigned by the store.
func (s *Service) Create(ctx context.Context, req CreateProductRequest) (*ProductView, error) {
	input, err := s.parse(req)
	if err != nil {
		return nil, err
	}

	product := &domain.Product{
		Name:     input.Name,
		Category: input.Category,
		Stock:    input.Stock,
		Price:    input.Price,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrProductExists
		}
		zap.L().Error("failed to create product", zap.String("namespace", "catalog"), zap.Error(err))
		return nil, err
	}

	zap.L().Info("product created",
		zap.String("namespace", "catalog"),
		zap.Int64("id", product.ID),
		zap.String("name", product.Name))

	view := toView(*product)
	createdAt := product.CreatedAt
	view.CreatedAt = &createdAt
	return &view, nil
}

func (s *Service) parse(req CreateProductRequest) (*productInput, error) {
	if isBlank(req.Name) || isBlank(req.Category) || req.Stock == nil || req.Price == nil {
		return nil, &ValidationError{Message: MissingFieldsMessage}
	}
	if p, ok := req.Price.(string); ok && isBlank(p) {
		return nil, &ValidationError{Message: MissingFieldsMessage}
	}

	stock, err := parseStock(req.Stock)
	if err != nil {
		return nil, err
	}
	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, err
	}

	input := &productInput{
		Name:     req.Name,
		Category: req.Category,
		Stock:    stock,
		Price:    price,
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, validationMessage(err)
	}
	return input, nil
}

func parseStock(v interface{}) (int, error) {
	switch t := v.(type) {
	case bool:
		return 0, invalid("stock must be a non-negative integer")
	case float64:
		if t != math.Trunc(t) || t < 0 || t > math.MaxInt32 {
			return 0, invalid("stock must be a non-negative integer")
		}
		return int(t), nil
	case string:
		// base 10 only: a leading 0, 0x or 0b is not a radix prefix here
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 32)
		if err != nil || n < 0 {
			return 0, invalid("stock must be a non-negative integer")
		}
		return int(n), nil
	}
	stock, err := cast.ToIntE(v)
	if err != nil || stock < 0 {
		return 0, invalid("stock must be a non-negative integer")
	}
	return stock, nil
}

func parsePrice(v interface{}) (decimal.Decimal, error) {
	var price decimal.Decimal
	switch t := v.(type) {
	case bool:
		return price, invalid("price must be a non-negative number")
	case float64:
		price = decimal.NewFromFloat(t)
	default:
		s, err := cast.ToStringE(v)
		if err != nil {
			return price, invalid("price must be a non-negative number")
		}
		if price, err = decimal.NewFromString(strings.TrimSpace(s)); err != nil {
			return price, invalid("price must be a non-negative number")
		}
	}

	price = price.Round(2)
	if price.IsNegative() {
		return price, invalid("price must be a non-negative number")
	}
	if price.GreaterThanOrEqual(maxPrice) {
		return price, invalid("price must be lower than %s", maxPrice.String())
	}
	return price, nil
}

func validationMessage(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return invalid("%s", err.Error())
	}
	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return &ValidationError{Message: MissingFieldsMessage}
	case "max":
		if fe.Kind() == reflect.String {
			return invalid("%s must be at most %s characters", field, fe.Param())
		}
		return invalid("%s must be at most %s", field, fe.Param())
	case "min":
		return invalid("%s must be a non-negative integer", field)
	}
	return invalid("%s is invalid", field)
}

func toView(p domain.Product) ProductView {
	return ProductView{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Stock:    p.Stock,
		Price:    json.Number(p.Price.StringFixed(2)),
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
