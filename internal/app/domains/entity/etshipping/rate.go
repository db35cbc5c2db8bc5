package etshipping

import (
	"errors"

	"github.com/shopspring/decimal"
)

// 错误定义
var (
	ErrInvalidBound      = errors.New("rate bound min cannot exceed max")
	ErrNegativeBound     = errors.New("rate bound cannot be negative")
	ErrNegativeRatePrice = errors.New("rate price cannot be negative")
)

// Bound 档位区间（闭区间）
// Min 为 nil 视为 0，Max 为 nil 视为 +∞
type Bound struct {
	Min *decimal.Decimal
	Max *decimal.Decimal
}

// Contains 判断 v 是否落在 [Min, Max] 内
func (b Bound) Contains(v decimal.Decimal) bool {
	lower := decimal.Zero
	if b.Min != nil {
		lower = *b.Min
	}
	if v.LessThan(lower) {
		return false
	}
	return b.Max == nil || v.LessThanOrEqual(*b.Max)
}

// Validate 校验区间：两端均存在时要求 min <= max
func (b Bound) Validate() error {
	if (b.Min != nil && b.Min.IsNegative()) || (b.Max != nil && b.Max.IsNegative()) {
		return ErrNegativeBound
	}
	if b.Min != nil && b.Max != nil && b.Min.GreaterThan(*b.Max) {
		return ErrInvalidBound
	}
	return nil
}

// Rate 费率档位
type Rate struct {
	ID           int64
	CarrierID    int64
	ZoneID       *int64 // nil 表示适用于所有区域
	Weight       Bound
	Price        Bound
	Volume       Bound
	RatePrice    decimal.Decimal // 命中后叠加在 base_price 上的金额
	DeliveryTime string          // 展示用，不参与计算
}

// NewRate 创建费率档位（工厂方法）
func NewRate(id, carrierID int64, zoneID *int64, weight, price, volume Bound, ratePrice decimal.Decimal, deliveryTime string) (*Rate, error) {
	r := &Rate{
		ID:           id,
		CarrierID:    carrierID,
		ZoneID:       zoneID,
		Weight:       weight,
		Price:        price,
		Volume:       volume,
		RatePrice:    ratePrice,
		DeliveryTime: deliveryTime,
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate 校验档位
func (r *Rate) Validate() error {
	for _, b := range []Bound{r.Weight, r.Price, r.Volume} {
		if err := b.Validate(); err != nil {
			return err
		}
	}
	if r.RatePrice.IsNegative() {
		return ErrNegativeRatePrice
	}
	return nil
}

// BoundFor 取出与指标对应的区间
func (r *Rate) BoundFor(m Metric) Bound {
	switch m {
	case MetricWeight:
		return r.Weight
	case MetricPrice:
		return r.Price
	case MetricVolume:
		return r.Volume
	default:
		// 不会命中任何值
		neg := decimal.NewFromInt(-1)
		return Bound{Min: &neg, Max: &neg}
	}
}

// AppliesToZone 档位是否适用于指定区域
func (r *Rate) AppliesToZone(zoneID int64) bool {
	return r.ZoneID == nil || *r.ZoneID == zoneID
}

// ScopeToZone 取出适用于某区域的档位：先区域专属档位，后通用档位，各自保持原顺序
func ScopeToZone(rates []Rate, zoneID int64) []Rate {
	scoped := make([]Rate, 0, len(rates))
	for _, r := range rates {
		if r.ZoneID != nil && *r.ZoneID == zoneID {
			scoped = append(scoped, r)
		}
	}
	for _, r := range rates {
		if r.ZoneID == nil {
			scoped = append(scoped, r)
		}
	}
	return scoped
}
