package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Carrier 承运商表
type Carrier struct {
	ID              int64               `gorm:"column:id;primaryKey;autoIncrement:false"`
	Name            string              `gorm:"column:name;type:varchar(128);not null;uniqueIndex:uk_name"`
	BasePrice       decimal.Decimal     `gorm:"column:base_price;type:decimal(12,2);not null;default:0"`
	FreeShippingMin decimal.NullDecimal `gorm:"column:free_shipping_min;type:decimal(12,2)"`
	PricingType     string              `gorm:"column:pricing_type;type:varchar(16);not null"`
	Active          bool                `gorm:"column:active;not null;default:true;index:idx_active"`
	CreatedAt       time.Time           `gorm:"column:created_at;not null"`
	UpdatedAt       time.Time           `gorm:"column:updated_at;not null"`
}

// TableName 指定表名
func (Carrier) TableName() string {
	return "carriers"
}

// CarrierRate 费率档位表
// position 保存管理员录入顺序，读取时按 position 升序
type CarrierRate struct {
	ID           int64               `gorm:"column:id;primaryKey;autoIncrement:false"`
	CarrierID    int64               `gorm:"column:carrier_id;not null;index:idx_carrier_zone"`
	ZoneID       *int64              `gorm:"column:zone_id;index:idx_carrier_zone"`
	Position     int                 `gorm:"column:position;not null"`
	MinWeight    decimal.NullDecimal `gorm:"column:min_weight;type:decimal(12,3)"`
	MaxWeight    decimal.NullDecimal `gorm:"column:max_weight;type:decimal(12,3)"`
	MinPrice     decimal.NullDecimal `gorm:"column:min_price;type:decimal(12,2)"`
	MaxPrice     decimal.NullDecimal `gorm:"column:max_price;type:decimal(12,2)"`
	MinVolume    decimal.NullDecimal `gorm:"column:min_volume;type:decimal(14,3)"`
	MaxVolume    decimal.NullDecimal `gorm:"column:max_volume;type:decimal(14,3)"`
	RatePrice    decimal.Decimal     `gorm:"column:rate_price;type:decimal(12,2);not null;default:0"`
	DeliveryTime string              `gorm:"column:delivery_time;type:varchar(64)"`
	CreatedAt    time.Time           `gorm:"column:created_at;not null"`
}

// TableName 指定表名
func (CarrierRate) TableName() string {
	return "carrier_rates"
}
