package webserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talkincode/productcatalog/config"
	"github.com/talkincode/productcatalog/internal/app"
)

func newTestServer() *WebServer {
	s := NewWebServer(app.NewApplication(config.DefaultAppConfig))
	s.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "pong"})
	})
	s.POST("/echo", func(c echo.Context) error {
		var body map[string]interface{}
		if err := c.Bind(&body); err != nil {
			return err
		}
		return c.JSON(http.StatusOK, body)
	})
	s.GET("/panic", func(c echo.Context) error {
		panic("boom")
	})
	return s
}

func serve(s *WebServer, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, req)
	return rec
}

func TestCORSHeadersOnEveryResponse(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(echo.HeaderOrigin, "http://example.com")
	rec := serve(s, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", rec.Header().Get(echo.HeaderAccessControlAllowMethods))
	assert.Equal(t, "Origin, X-Requested-With, Content-Type, Accept", rec.Header().Get(echo.HeaderAccessControlAllowHeaders))

	// without an Origin header the grant is still present
	rec = serve(s, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodOptions, "/echo", nil)
	req.Header.Set(echo.HeaderOrigin, "http://example.com")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec := serve(s, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowMethods), http.MethodPost)
}

func TestErrorsRenderedAsJSON(t *testing.T) {
	s := newTestServer()

	rec := serve(s, httptest.NewRequest(http.MethodGet, "/missing.json", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String())

	rec = serve(s, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestJSONSerializer(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"price":1.50,"name":"Pen"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := serve(s, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"price":1.5,"name":"Pen"}`, rec.Body.String())

	req = httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"price":`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = serve(s, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON body")
}

func TestRequestIDAssigned(t *testing.T) {
	s := newTestServer()

	rec := serve(s, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Len(t, rec.Header().Get(echo.HeaderXRequestID), 36)
}

func TestFrontendServed(t *testing.T) {
	s := newTestServer()

	rec := serve(s, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "products-tbody")

	rec = serve(s, httptest.NewRequest(http.MethodGet, "/agregar-productos/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "add-product-form")

	rec = serve(s, httptest.NewRequest(http.MethodGet, "/app.js", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "fetchProducts")
}

func TestAPIDocsServed(t *testing.T) {
	s := newTestServer()

	rec := serve(s, httptest.NewRequest(http.MethodGet, DocsPath, nil))
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)

	rec = serve(s, httptest.NewRequest(http.MethodGet, DocsPath+"/doc.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Products API")
	assert.Contains(t, rec.Body.String(), "/products")
}
