package etshipping

import (
	"errors"
	"strings"
)

// 错误定义
var (
	ErrInvalidPricingType = errors.New("invalid pricing type")
	ErrInvalidMetric      = errors.New("invalid tier metric")
)

// PricingType 承运商计价方式（持久化字段）
type PricingType string

const (
	PricingTypeFixed  PricingType = "fixed"
	PricingTypeWeight PricingType = "weight"
	PricingTypePrice  PricingType = "price"
	PricingTypeVolume PricingType = "volume"
)

// ParsePricingType 解析计价方式，未知值直接拒绝
func ParsePricingType(s string) (PricingType, error) {
	switch t := PricingType(strings.ToLower(strings.TrimSpace(s))); t {
	case PricingTypeFixed, PricingTypeWeight, PricingTypePrice, PricingTypeVolume:
		return t, nil
	default:
		return "", ErrInvalidPricingType
	}
}

// Metric 阶梯计价所依据的购物车指标
type Metric string

const (
	MetricWeight Metric = "weight"
	MetricPrice  Metric = "price"
	MetricVolume Metric = "volume"
)

// Strategy 计价策略（封闭的和类型）
// 只有 FixedStrategy 与 TieredStrategy 两种实现，包外无法扩展
type Strategy interface {
	PricingType() PricingType
	isStrategy()
}

// FixedStrategy 固定价格：只收 base_price，不读取任何费率档位
type FixedStrategy struct{}

func (FixedStrategy) PricingType() PricingType { return PricingTypeFixed }
func (FixedStrategy) isStrategy()              {}

// TieredStrategy 阶梯价格：按 Metric 匹配第一个命中的档位
type TieredStrategy struct {
	Metric Metric
}

func (s TieredStrategy) PricingType() PricingType {
	return PricingType(s.Metric)
}

func (TieredStrategy) isStrategy() {}

// NewTieredStrategy 创建阶梯策略
func NewTieredStrategy(metric Metric) (TieredStrategy, error) {
	switch metric {
	case MetricWeight, MetricPrice, MetricVolume:
		return TieredStrategy{Metric: metric}, nil
	default:
		return TieredStrategy{}, ErrInvalidMetric
	}
}

// StrategyFor 将持久化的计价方式映射为策略
func StrategyFor(t PricingType) (Strategy, error) {
	switch t {
	case PricingTypeFixed:
		return FixedStrategy{}, nil
	case PricingTypeWeight:
		return TieredStrategy{Metric: MetricWeight}, nil
	case PricingTypePrice:
		return TieredStrategy{Metric: MetricPrice}, nil
	case PricingTypeVolume:
		return TieredStrategy{Metric: MetricVolume}, nil
	default:
		return nil, ErrInvalidPricingType
	}
}
