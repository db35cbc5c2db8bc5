package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Order 订单表
// shipping_cost / total 只在创建时写入
type Order struct {
	// 基础字段
	ID              string `gorm:"column:id;primaryKey;type:varchar(64)"`
	AccountID       int64  `gorm:"column:account_id;not null;index:idx_account_status;uniqueIndex:uk_account_merchant"`
	MerchantOrderNo string `gorm:"column:merchant_order_no;type:varchar(128);not null;uniqueIndex:uk_account_merchant"`

	// 配送
	CarrierID int64          `gorm:"column:carrier_id;not null"`
	ZoneID    int64          `gorm:"column:zone_id;not null"`
	ShipTo    datatypes.JSON `gorm:"column:ship_to;type:json;not null"`
	Items     datatypes.JSON `gorm:"column:items;type:json;not null"`

	// 金额
	Subtotal     decimal.Decimal `gorm:"column:subtotal;type:decimal(12,2);not null"`
	ShippingCost decimal.Decimal `gorm:"column:shipping_cost;type:decimal(12,2);not null"`
	Total        decimal.Decimal `gorm:"column:total;type:decimal(12,2);not null"`
	Currency     string          `gorm:"column:currency;type:varchar(3);not null"`

	// 支付状态
	Status           string `gorm:"column:status;type:varchar(16);not null;default:'PENDING_PAYMENT';index:idx_account_status"`
	PaymentProvider  string `gorm:"column:payment_provider;type:varchar(32)"`
	PaymentReference string `gorm:"column:payment_reference;type:varchar(255)"`

	// 时间戳
	CreatedAt time.Time `gorm:"column:created_at;not null;index:idx_created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}

// 订单状态常量
const (
	OrderStatusPendingPayment = "PENDING_PAYMENT"
	OrderStatusPaid           = "PAID"
	OrderStatusPaymentFailed  = "PAYMENT_FAILED"
)
