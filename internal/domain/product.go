package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog row of the productos table. Rows are immutable once stored.
type Product struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string          `gorm:"size:255;not null" json:"name"`
	Category  string          `gorm:"size:100;not null" json:"category"`
	Stock     int             `gorm:"not null;default:0" json:"stock"`
	Price     decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	CreatedAt time.Time       `gorm:"not null;autoCreateTime:false;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName Specify table name
func (Product) TableName() string {
	return "productos"
}
