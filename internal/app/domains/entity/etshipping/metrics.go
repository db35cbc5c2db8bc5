package etshipping

import "github.com/shopspring/decimal"

// CartLine 购物车行（计算指标所需的最小信息）
type CartLine struct {
	Quantity  int64
	UnitPrice decimal.Decimal
	Weight    decimal.Decimal
	Length    decimal.Decimal
	Width     decimal.Decimal
	Height    decimal.Decimal
}

// CartMetrics 购物车聚合指标，每次计价时重新计算，不落库
type CartMetrics struct {
	Weight decimal.Decimal
	Price  decimal.Decimal
	Volume decimal.Decimal
}

// MetricsFromLines 汇总购物车行
// weight = Σ weight×qty, price = Σ unit_price×qty, volume = Σ l×w×h×qty
func MetricsFromLines(lines []CartLine) CartMetrics {
	m := CartMetrics{Weight: decimal.Zero, Price: decimal.Zero, Volume: decimal.Zero}
	for _, l := range lines {
		if l.Quantity <= 0 {
			continue
		}
		qty := decimal.NewFromInt(l.Quantity)
		m.Weight = m.Weight.Add(l.Weight.Mul(qty))
		m.Price = m.Price.Add(l.UnitPrice.Mul(qty))
		m.Volume = m.Volume.Add(l.Length.Mul(l.Width).Mul(l.Height).Mul(qty))
	}
	return m
}

// Value 取出对应指标的值
func (m CartMetrics) Value(metric Metric) decimal.Decimal {
	switch metric {
	case MetricWeight:
		return m.Weight
	case MetricPrice:
		return m.Price
	case MetricVolume:
		return m.Volume
	default:
		return decimal.Zero
	}
}
