package etshipping

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// 错误定义
var (
	ErrInvalidCarrierID     = errors.New("invalid carrier ID")
	ErrInvalidCarrierName   = errors.New("carrier name cannot be empty")
	ErrNegativeBasePrice    = errors.New("base price cannot be negative")
	ErrNegativeFreeShipping = errors.New("free shipping threshold cannot be negative")
	ErrCarrierUnavailable   = errors.New("shipping pricing unavailable: carrier not found")
	ErrRatesOnFixedCarrier  = errors.New("fixed carrier cannot have rate tiers")
	ErrRateCarrierMismatch  = errors.New("rate does not belong to carrier")
	ErrPricingTypeInUse     = errors.New("pricing type cannot change while rate tiers exist")
)

// Carrier 承运商（聚合根）
type Carrier struct {
	ID              int64            // 承运商ID
	Name            string           // 展示名称
	BasePrice       decimal.Decimal  // 基础运费
	FreeShippingMin *decimal.Decimal // 包邮门槛（nil 表示不包邮）
	Strategy        Strategy         // 计价策略
	Active          bool             // 是否启用
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewCarrier 创建承运商（工厂方法）
// id: 0 表示新建
func NewCarrier(id int64, name string, basePrice decimal.Decimal, freeShippingMin *decimal.Decimal, pricingType string, active bool) (*Carrier, error) {
	if id < 0 {
		return nil, ErrInvalidCarrierID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidCarrierName
	}
	if basePrice.IsNegative() {
		return nil, ErrNegativeBasePrice
	}
	if freeShippingMin != nil && freeShippingMin.IsNegative() {
		return nil, ErrNegativeFreeShipping
	}

	t, err := ParsePricingType(pricingType)
	if err != nil {
		return nil, err
	}
	strategy, err := StrategyFor(t)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &Carrier{
		ID:              id,
		Name:            name,
		BasePrice:       basePrice,
		FreeShippingMin: freeShippingMin,
		Strategy:        strategy,
		Active:          active,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// PricingType 返回持久化用的计价方式
func (c *Carrier) PricingType() PricingType {
	if c.Strategy == nil {
		return ""
	}
	return c.Strategy.PricingType()
}

// IsTiered 是否为阶梯计价
func (c *Carrier) IsTiered() bool {
	_, ok := c.Strategy.(TieredStrategy)
	return ok
}

// QualifiesForFreeShipping 订单金额是否达到包邮门槛
func (c *Carrier) QualifiesForFreeShipping(price decimal.Decimal) bool {
	return c.FreeShippingMin != nil && price.GreaterThanOrEqual(*c.FreeShippingMin)
}

// CheckRates 校验一组费率能否挂到该承运商下
// 固定价格承运商不允许配置档位
func (c *Carrier) CheckRates(rates []Rate) error {
	if len(rates) == 0 {
		return nil
	}
	if !c.IsTiered() {
		return ErrRatesOnFixedCarrier
	}
	for i := range rates {
		if c.ID != 0 && rates[i].CarrierID != 0 && rates[i].CarrierID != c.ID {
			return ErrRateCarrierMismatch
		}
		if err := rates[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Update 修改承运商属性（领域行为）
func (c *Carrier) Update(name string, basePrice decimal.Decimal, freeShippingMin *decimal.Decimal, pricingType string, active bool) error {
	updated, err := NewCarrier(c.ID, name, basePrice, freeShippingMin, pricingType, active)
	if err != nil {
		return err
	}
	updated.CreatedAt = c.CreatedAt
	*c = *updated
	return nil
}
