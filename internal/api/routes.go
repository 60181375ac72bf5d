package api

import "github.com/talkincode/productcatalog/internal/webserver"

// Register mounts the catalog endpoints on the web server
func Register(s *webserver.WebServer) {
	s.GET("/health", HealthCheck)
	registerProductRoutes(s)
}
