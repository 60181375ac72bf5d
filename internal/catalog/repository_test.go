package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talkincode/productcatalog/internal/domain"
)

func TestGormProductRepository_CreateUsesStoreTimestamp(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	product := &domain.Product{Name: "Pen", Category: "Office", Stock: 3, Price: decimal.RequireFromString("1.50")}
	require.NoError(t, repo.Create(ctx, product))

	assert.Positive(t, product.ID)
	require.False(t, product.CreatedAt.IsZero(), "created_at read back from the column default")
	assert.WithinDuration(t, time.Now(), product.CreatedAt, 2*time.Minute)

	var stored domain.Product
	require.NoError(t, db.First(&stored, product.ID).Error)
	assert.True(t, stored.CreatedAt.Equal(product.CreatedAt))
}

func TestGormProductRepository_CreateZeroStockUsesDefault(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)

	product := &domain.Product{Name: "Cable", Category: "Accesorios", Price: decimal.Zero}
	require.NoError(t, repo.Create(context.Background(), product))

	products, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 0, products[0].Stock)
	assert.Equal(t, "Cable", products[0].Name)
}

func TestGormProductRepository_Count(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	for _, name := range []string{"A", "B"} {
		require.NoError(t, repo.Create(ctx, &domain.Product{Name: name, Category: "Test", Stock: 1, Price: decimal.NewFromInt(1)}))
	}
	n, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}
