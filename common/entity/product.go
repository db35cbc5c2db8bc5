package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product 商品表（只包含计价相关字段）
type Product struct {
	ID        int64           `gorm:"column:id;primaryKey;autoIncrement:false"`
	SKU       string          `gorm:"column:sku;type:varchar(64);not null;uniqueIndex:uk_sku"`
	Name      string          `gorm:"column:name;type:varchar(255);not null"`
	Price     decimal.Decimal `gorm:"column:price;type:decimal(12,2);not null"`
	Weight    decimal.Decimal `gorm:"column:weight;type:decimal(12,3);not null;default:0"`
	Length    decimal.Decimal `gorm:"column:length;type:decimal(10,2);not null;default:0"`
	Width     decimal.Decimal `gorm:"column:width;type:decimal(10,2);not null;default:0"`
	Height    decimal.Decimal `gorm:"column:height;type:decimal(10,2);not null;default:0"`
	Active    bool            `gorm:"column:active;not null;default:true"`
	CreatedAt time.Time       `gorm:"column:created_at;not null"`
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
