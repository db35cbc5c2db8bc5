package request

import "github.com/shopspring/decimal"

// CarrierRequest 创建/更新承运商
type CarrierRequest struct {
	Name            string           `json:"name" binding:"required" example:"Express Douala"`
	BasePrice       decimal.Decimal  `json:"base_price" example:"1000"`
	FreeShippingMin *decimal.Decimal `json:"free_shipping_min" example:"50000"`
	PricingType     string           `json:"pricing_type" binding:"required,oneof=fixed weight price volume" example:"weight"`
	Active          *bool            `json:"active"`
}

// ReplaceRatesRequest 替换费率档位，数组顺序即匹配顺序
// zone_id 缺省时替换适用于所有区域的档位
type ReplaceRatesRequest struct {
	ZoneID *int64         `json:"zone_id" example:"2"`
	Rates  []*RateRequest `json:"rates" binding:"dive,required"`
}

// RateRequest 费率档位，区间两端均可缺省
type RateRequest struct {
	MinWeight    *decimal.Decimal `json:"min_weight"`
	MaxWeight    *decimal.Decimal `json:"max_weight"`
	MinPrice     *decimal.Decimal `json:"min_price"`
	MaxPrice     *decimal.Decimal `json:"max_price"`
	MinVolume    *decimal.Decimal `json:"min_volume"`
	MaxVolume    *decimal.Decimal `json:"max_volume"`
	RatePrice    decimal.Decimal  `json:"rate_price" example:"1500"`
	DeliveryTime string           `json:"delivery_time" example:"3-5 days"`
}

// ZoneRequest 创建配送区域
type ZoneRequest struct {
	Name      string   `json:"name" binding:"required" example:"CEMAC"`
	Countries []string `json:"countries" binding:"required,min=1,dive,len=2" example:"CM,GA"`
	Active    *bool    `json:"active"`
}
