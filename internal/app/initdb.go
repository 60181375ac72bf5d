package app

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/talkincode/productcatalog/internal/catalog"
	"github.com/talkincode/productcatalog/internal/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultProducts is the catalog inserted on first boot, in insertion order.
func DefaultProducts() []domain.Product {
	return []domain.Product{
		{Name: "Laptop Dell XPS 13", Category: "Electrónicos", Stock: 5, Price: decimal.RequireFromString("1299.99")},
		{Name: "Mouse Logitech MX Master", Category: "Accesorios", Stock: 15, Price: decimal.RequireFromString("99.99")},
		{Name: "Teclado Mecánico Corsair", Category: "Accesorios", Stock: 25, Price: decimal.RequireFromString("149.99")},
		{Name: `Monitor Samsung 27"`, Category: "Electrónicos", Stock: 12, Price: decimal.RequireFromString("329.99")},
		{Name: "Auriculares Sony WH-1000XM4", Category: "Audio", Stock: 3, Price: decimal.RequireFromString("349.99")},
		{Name: "Webcam Logitech C920", Category: "Accesorios", Stock: 18, Price: decimal.RequireFromString("79.99")},
		{Name: "SSD Samsung 1TB", Category: "Almacenamiento", Stock: 20, Price: decimal.RequireFromString("119.99")},
		{Name: "Router TP-Link AC1750", Category: "Redes", Stock: 7, Price: decimal.RequireFromString("89.99")},
	}
}

// SeedProducts inserts DefaultProducts when the productos table is empty.
// All rows are written in one transaction so a failed seed leaves the table
// empty and is retried on the next boot.
func (a *Application) SeedProducts() error {
	ctx := context.Background()

	count, err := catalog.NewGormProductRepository(a.gormDB).Count(ctx)
	if err != nil {
		return errors.Wrap(err, "count products")
	}
	if count > 0 {
		zap.L().Info("product catalog already populated",
			zap.String("namespace", "schema"),
			zap.Int64("count", count))
		return nil
	}

	zap.L().Info("seeding database with initial products", zap.String("namespace", "schema"))
	defaults := DefaultProducts()
	err = a.gormDB.Transaction(func(tx *gorm.DB) error {
		repo := catalog.NewGormProductRepository(tx)
		for i := range defaults {
			if err := repo.Create(ctx, &defaults[i]); err != nil {
				zap.L().Error("failed to create default product",
					zap.String("namespace", "schema"),
					zap.String("name", defaults[i].Name),
					zap.Error(err))
				return err
			}
		}
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "seed products")
	}

	zap.L().Info("database seeded with initial products",
		zap.String("namespace", "schema"),
		zap.Int("count", len(defaults)))
	return nil
}

// InitSchema runs the schema initializer: create-if-absent, then seed-if-empty.
func (a *Application) InitSchema() error {
	if err := a.MigrateDB(a.appConfig != nil && a.appConfig.Database.Debug); err != nil {
		return err
	}
	return a.SeedProducts()
}
