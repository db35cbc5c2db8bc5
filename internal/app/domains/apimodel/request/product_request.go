package request

import "github.com/shopspring/decimal"

// CreateProductRequest 创建商品
type CreateProductRequest struct {
	SKU    string          `json:"sku" binding:"required" example:"CAC-3"`
	Name   string          `json:"name" binding:"required" example:"Cacao 3kg"`
	Price  decimal.Decimal `json:"price" example:"2500"`
	Weight decimal.Decimal `json:"weight" example:"3"`
	Length decimal.Decimal `json:"length" example:"20"`
	Width  decimal.Decimal `json:"width" example:"10"`
	Height decimal.Decimal `json:"height" example:"10"`
	Active *bool           `json:"active"`
}
