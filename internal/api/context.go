package api

import (
	"github.com/labstack/echo/v4"
	"github.com/talkincode/productcatalog/internal/app"
	"github.com/talkincode/productcatalog/internal/catalog"
	"github.com/talkincode/productcatalog/internal/webserver"
)

// GetAppContext returns the application context injected by the web server
func GetAppContext(c echo.Context) app.AppContext {
	return c.Get(webserver.AppContextKey).(app.AppContext)
}

// GetProductService returns the catalog service of the current request
func GetProductService(c echo.Context) *catalog.Service {
	return GetAppContext(c).ProductService()
}
