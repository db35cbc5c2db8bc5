package response

import "github.com/shopspring/decimal"

// QuoteResponse 单个承运商报价
type QuoteResponse struct {
	CarrierID    int64           `json:"carrier_id"`
	CarrierName  string          `json:"carrier_name,omitempty"`
	ZoneID       int64           `json:"zone_id"`
	Cost         decimal.Decimal `json:"cost"`
	Currency     string          `json:"currency"`
	Outcome      string          `json:"outcome"`
	Free         bool            `json:"free"`
	DeliveryTime string          `json:"delivery_time,omitempty"`
	Tags         []string        `json:"tags,omitempty"`
}

// CartMetrics 购物车计价指标
type CartMetrics struct {
	Weight decimal.Decimal `json:"weight"`
	Price  decimal.Decimal `json:"price"`
	Volume decimal.Decimal `json:"volume"`
}

// OptionsResponse 承运商选择
type OptionsResponse struct {
	ZoneID             int64            `json:"zone_id"`
	Metrics            CartMetrics      `json:"metrics"`
	Options            []*QuoteResponse `json:"options"`
	RecommendedCarrier int64            `json:"recommended_carrier_id"`
}
