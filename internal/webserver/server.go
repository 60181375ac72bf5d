package webserver

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	_ "github.com/talkincode/productcatalog/docs"
	"github.com/talkincode/productcatalog/internal/app"
	"github.com/talkincode/productcatalog/web"
	"go.uber.org/zap"
)

// AppContextKey is the echo context key holding the app.AppContext
const AppContextKey = "appctx"

// DocsPath is where the interactive API description is served
const DocsPath = "/api-docs"

type WebServer struct {
	root   *echo.Echo
	appCtx app.AppContext
}

// NewWebServer builds the echo instance with the catalog middleware chain,
// the API docs and the embedded frontend. Routes are added with GET/POST.
func NewWebServer(appCtx app.AppContext) *WebServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.ERROR)
	e.JSONSerializer = &jsoniterSerializer{}
	e.HTTPErrorHandler = httpErrorHandler

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: corsAllowMethods,
		AllowHeaders: corsAllowHeaders,
	}))
	e.Use(corsHeaders)
	e.Use(appContextMiddleware(appCtx))

	cfg := appCtx.Config()
	if cfg != nil && cfg.Web.Metrics {
		e.Use(echoprometheus.NewMiddleware("catalog"))
		e.GET("/metrics", echoprometheus.NewHandler())
	}

	e.GET(DocsPath, func(c echo.Context) error {
		return c.Redirect(http.StatusMovedPermanently, DocsPath+"/index.html")
	})
	e.GET(DocsPath+"/*", echoSwagger.WrapHandler)
	e.StaticFS("/", web.Assets())

	return &WebServer{root: e, appCtx: appCtx}
}

// Echo returns the underlying echo instance
func (s *WebServer) Echo() *echo.Echo {
	return s.root
}

func (s *WebServer) GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	s.root.GET(path, h, m...)
}

func (s *WebServer) POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	s.root.POST(path, h, m...)
}

// Start listens on the configured address and blocks until the server stops.
func (s *WebServer) Start() error {
	addr := s.appCtx.Config().Addr()
	zap.S().Infof("API running on http://%s", addr)
	zap.S().Infof("Swagger docs: http://%s%s", addr, DocsPath)
	if err := s.root.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "web server")
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *WebServer) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.root.Shutdown(ctx)
}
