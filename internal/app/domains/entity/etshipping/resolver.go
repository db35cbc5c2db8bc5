package etshipping

import "github.com/shopspring/decimal"

// Outcome 运费计算路径
type Outcome string

const (
	OutcomeFreeShipping Outcome = "FREE_SHIPPING"
	OutcomeFixed        Outcome = "FIXED"
	OutcomeTierMatched  Outcome = "TIER_MATCHED"
	OutcomeNoTierMatch  Outcome = "NO_TIER_MATCH"
	OutcomeUnavailable  Outcome = "UNAVAILABLE"
)

// Resolution 运费计算结果
type Resolution struct {
	Cost    decimal.Decimal
	Outcome Outcome
	Matched *Rate // 仅 OutcomeTierMatched 时非空
}

// Resolve 计算运费并返回命中路径
// 纯函数：无状态、无 I/O，可并发调用
//  1. 包邮门槛优先于一切规则
//  2. 固定价格只收 base_price
//  3. 阶梯价格取第一个命中的档位（保持入参顺序），未命中则只收 base_price
func Resolve(carrier *Carrier, rates []Rate, metrics CartMetrics) Resolution {
	if carrier == nil {
		return Resolution{Cost: decimal.Zero, Outcome: OutcomeUnavailable}
	}

	if carrier.QualifiesForFreeShipping(metrics.Price) {
		return Resolution{Cost: decimal.Zero, Outcome: OutcomeFreeShipping}
	}

	var tiered TieredStrategy
	switch st := carrier.Strategy.(type) {
	case FixedStrategy:
		return Resolution{Cost: carrier.BasePrice, Outcome: OutcomeFixed}
	case TieredStrategy:
		tiered = st
	default:
		// 未经工厂方法构造的承运商，按未命中处理，不中断结算
		return Resolution{Cost: carrier.BasePrice, Outcome: OutcomeNoTierMatch}
	}

	value := metrics.Value(tiered.Metric)
	for i := range rates {
		if rates[i].BoundFor(tiered.Metric).Contains(value) {
			matched := rates[i]
			return Resolution{
				Cost:    carrier.BasePrice.Add(matched.RatePrice),
				Outcome: OutcomeTierMatched,
				Matched: &matched,
			}
		}
	}

	return Resolution{Cost: carrier.BasePrice, Outcome: OutcomeNoTierMatch}
}

// ResolveShippingCost 计算运费
// carrier 为 nil 时返回 0 与 ErrCarrierUnavailable，由调用方决定是否放行
func ResolveShippingCost(carrier *Carrier, rates []Rate, metrics CartMetrics) (decimal.Decimal, error) {
	res := Resolve(carrier, rates, metrics)
	if res.Outcome == OutcomeUnavailable {
		return res.Cost, ErrCarrierUnavailable
	}
	return res.Cost, nil
}
