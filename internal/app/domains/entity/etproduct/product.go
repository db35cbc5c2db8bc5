package etproduct

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etshipping"
)

// 错误定义
var (
	ErrInvalidSKU        = errors.New("product sku cannot be empty")
	ErrInvalidName       = errors.New("product name cannot be empty")
	ErrNegativeAttribute = errors.New("product price and dimensions cannot be negative")
	ErrProductNotFound   = errors.New("product not found")
	ErrProductInactive   = errors.New("product is not available")
	ErrEmptyCart         = errors.New("cart must contain at least one item")
	ErrInvalidQuantity   = errors.New("item quantity must be positive")
)

// Product 商品（只保留计价相关属性）
type Product struct {
	ID        int64
	SKU       string
	Name      string
	Price     decimal.Decimal // 单价
	Weight    decimal.Decimal // kg
	Length    decimal.Decimal // cm
	Width     decimal.Decimal // cm
	Height    decimal.Decimal // cm
	Active    bool
	CreatedAt time.Time
}

// NewProduct 创建商品（工厂方法）
func NewProduct(id int64, sku, name string, price, weight, length, width, height decimal.Decimal, active bool) (*Product, error) {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return nil, ErrInvalidSKU
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	for _, v := range []decimal.Decimal{price, weight, length, width, height} {
		if v.IsNegative() {
			return nil, ErrNegativeAttribute
		}
	}

	return &Product{
		ID:        id,
		SKU:       sku,
		Name:      name,
		Price:     price,
		Weight:    weight,
		Length:    length,
		Width:     width,
		Height:    height,
		Active:    active,
		CreatedAt: time.Now(),
	}, nil
}

// Line 生成购物车行
func (p *Product) Line(quantity int64) etshipping.CartLine {
	return etshipping.CartLine{
		Quantity:  quantity,
		UnitPrice: p.Price,
		Weight:    p.Weight,
		Length:    p.Length,
		Width:     p.Width,
		Height:    p.Height,
	}
}
