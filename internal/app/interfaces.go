package app

import (
	"github.com/talkincode/productcatalog/config"
	"github.com/talkincode/productcatalog/internal/catalog"
	"gorm.io/gorm"
)

// DBProvider provides database access
type DBProvider interface {
	DB() *gorm.DB
}

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// CatalogProvider provides the product service used by the HTTP handlers
type CatalogProvider interface {
	ProductService() *catalog.Service
}

// AppContext combines all provider interfaces for full application context
// Handlers should depend on specific providers or this combined interface
type AppContext interface {
	DBProvider
	ConfigProvider
	CatalogProvider

	// Schema lifecycle
	MigrateDB(track bool) error
	SeedProducts() error
	InitSchema() error
	InitDb() error
	DropAll() error
}
