package response

import (
	"time"

	"github.com/shopspring/decimal"
)

// CarrierResponse 承运商
type CarrierResponse struct {
	ID              int64            `json:"id"`
	Name            string           `json:"name"`
	BasePrice       decimal.Decimal  `json:"base_price"`
	FreeShippingMin *decimal.Decimal `json:"free_shipping_min"`
	PricingType     string           `json:"pricing_type"`
	Active          bool             `json:"active"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// CarrierDetailResponse 承运商及费率
type CarrierDetailResponse struct {
	*CarrierResponse
	Rates []*RateResponse `json:"rates"`
}

// RateResponse 费率档位
type RateResponse struct {
	ID           int64            `json:"id"`
	ZoneID       *int64           `json:"zone_id"`
	MinWeight    *decimal.Decimal `json:"min_weight"`
	MaxWeight    *decimal.Decimal `json:"max_weight"`
	MinPrice     *decimal.Decimal `json:"min_price"`
	MaxPrice     *decimal.Decimal `json:"max_price"`
	MinVolume    *decimal.Decimal `json:"min_volume"`
	MaxVolume    *decimal.Decimal `json:"max_volume"`
	RatePrice    decimal.Decimal  `json:"rate_price"`
	DeliveryTime string           `json:"delivery_time,omitempty"`
}

// ZoneResponse 配送区域
type ZoneResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Countries []string  `json:"countries"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductResponse 商品
type ProductResponse struct {
	ID     int64           `json:"id"`
	SKU    string          `json:"sku"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
	Weight decimal.Decimal `json:"weight"`
	Length decimal.Decimal `json:"length"`
	Width  decimal.Decimal `json:"width"`
	Height decimal.Decimal `json:"height"`
	Active bool            `json:"active"`
}
