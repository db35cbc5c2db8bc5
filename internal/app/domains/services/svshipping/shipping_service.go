package svshipping

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etshipping"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etzone"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/modules/mdproduct"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/modules/mdshipping"
	"github.com/marxiobadel/farmer-sub002/internal/app/pkg/errorx"
	"github.com/marxiobadel/farmer-sub002/internal/app/pkg/logger"
	"github.com/marxiobadel/farmer-sub002/internal/app/pkg/metrics"
)

// 报价标签
const (
	TagCheapest = "CHEAPEST"
	TagFastest  = "FASTEST"
)

// ShippingQuote 单个承运商的运费报价
type ShippingQuote struct {
	CarrierID    int64
	CarrierName  string
	ZoneID       int64
	Cost         decimal.Decimal
	Outcome      etshipping.Outcome
	Free         bool
	DeliveryTime string // 命中档位的时效描述，没有命中时为空
	Tags         []string
}

// ShippingOptions 结账页承运商选择
type ShippingOptions struct {
	ZoneID             int64
	Metrics            etshipping.CartMetrics
	Quotes             []*ShippingQuote
	RecommendedCarrier int64
}

// ShippingService 运费服务：结账预览、承运商选择、下单定价共用同一个计价器
type ShippingService struct {
	shippingModule  *mdshipping.ShippingModule
	productModule   *mdproduct.ProductModule
	freeWhenMissing bool
	logger          logger.Logger
}

// NewShippingService 创建运费服务
// freeWhenMissing 对应配置 shipping.missing_carrier_policy=free
func NewShippingService(
	shippingModule *mdshipping.ShippingModule,
	productModule *mdproduct.ProductModule,
	freeWhenMissing bool,
	logger logger.Logger,
) *ShippingService {
	return &ShippingService{
		shippingModule:  shippingModule,
		productModule:   productModule,
		freeWhenMissing: freeWhenMissing,
		logger:          logger,
	}
}

// Quote 结账预览：指定承运商的运费
func (s *ShippingService) Quote(ctx context.Context, carrierID int64, country string, lines []mdproduct.LineRequest) (*ShippingQuote, error) {
	zone, err := s.shippingModule.ResolveZone(ctx, country)
	if err != nil {
		return nil, err
	}

	cart, err := s.productModule.LoadCart(ctx, lines)
	if err != nil {
		return nil, err
	}

	return s.QuoteForCart(ctx, carrierID, zone, cart.Metrics)
}

// QuoteForCart 对已计算好的购物车指标报价（下单时调用）
func (s *ShippingService) QuoteForCart(ctx context.Context, carrierID int64, zone *etzone.Zone, cartMetrics etshipping.CartMetrics) (*ShippingQuote, error) {
	carrier, rates, err := s.shippingModule.LoadCarrier(ctx, carrierID)
	if err != nil {
		return nil, err
	}
	if carrier != nil && !carrier.Active {
		return nil, fmt.Errorf("%w: carrier_id=%d", errorx.ErrCarrierInactive, carrierID)
	}

	quote, err := s.resolve(ctx, carrier, rates, zone, cartMetrics)
	if err != nil {
		return nil, err
	}
	quote.CarrierID = carrierID
	return quote, nil
}

// QuoteOptions 承运商选择：对每个启用的承运商报价，并标记最便宜与最快的
func (s *ShippingService) QuoteOptions(ctx context.Context, country string, lines []mdproduct.LineRequest) (*ShippingOptions, error) {
	zone, err := s.shippingModule.ResolveZone(ctx, country)
	if err != nil {
		return nil, err
	}

	cart, err := s.productModule.LoadCart(ctx, lines)
	if err != nil {
		return nil, err
	}

	carriers, err := s.shippingModule.ListCarriers(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("list carriers failed: %w", err)
	}

	quotes := make([]*ShippingQuote, 0, len(carriers))
	for _, c := range carriers {
		_, rates, err := s.shippingModule.LoadCarrier(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		// 列表读取后承运商仍用列表中的版本，费率来自缓存
		quote, err := s.resolve(ctx, c, rates, zone, cart.Metrics)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, quote)
	}

	if len(quotes) == 0 {
		return nil, fmt.Errorf("%w: zone=%s", errorx.ErrNoCarrierOptions, zone.Name)
	}

	cheapest := findCheapest(quotes)
	quotes[cheapest].Tags = append(quotes[cheapest].Tags, TagCheapest)
	if fastest := findFastest(quotes); fastest >= 0 {
		quotes[fastest].Tags = append(quotes[fastest].Tags, TagFastest)
	}

	return &ShippingOptions{
		ZoneID:             zone.ID,
		Metrics:            cart.Metrics,
		Quotes:             quotes,
		RecommendedCarrier: quotes[cheapest].CarrierID,
	}, nil
}

// resolve 调用计价器并处理“承运商不存在”的策略
func (s *ShippingService) resolve(ctx context.Context, carrier *etshipping.Carrier, rates []etshipping.Rate, zone *etzone.Zone, cartMetrics etshipping.CartMetrics) (*ShippingQuote, error) {
	scoped := etshipping.ScopeToZone(rates, zone.ID)
	res := etshipping.Resolve(carrier, scoped, cartMetrics)
	metrics.QuotesTotal.WithLabelValues(string(res.Outcome)).Inc()

	quote := &ShippingQuote{
		ZoneID:  zone.ID,
		Cost:    res.Cost,
		Outcome: res.Outcome,
		Free:    res.Outcome == etshipping.OutcomeFreeShipping,
		Tags:    []string{},
	}
	if carrier != nil {
		quote.CarrierID = carrier.ID
		quote.CarrierName = carrier.Name
	}
	if res.Matched != nil {
		quote.DeliveryTime = res.Matched.DeliveryTime
	}

	if res.Outcome == etshipping.OutcomeUnavailable {
		if !s.freeWhenMissing {
			return nil, etshipping.ErrCarrierUnavailable
		}
		s.logger.Warnf(ctx, "carrier missing, pricing shipping as free by policy: zone_id=%d", zone.ID)
	}

	s.logger.Debugf(ctx, "shipping resolved: carrier=%s, zone_id=%d, outcome=%s, cost=%s",
		quote.CarrierName, zone.ID, res.Outcome, res.Cost.String())
	return quote, nil
}

// findCheapest 最便宜的报价索引，金额相同时取靠前的
func findCheapest(quotes []*ShippingQuote) int {
	minIdx := 0
	for i, q := range quotes {
		if q.Cost.LessThan(quotes[minIdx].Cost) {
			minIdx = i
		}
	}
	return minIdx
}

// findFastest 时效最短的报价索引，没有可解析时效时返回 -1
func findFastest(quotes []*ShippingQuote) int {
	minIdx, minDays := -1, 0
	for i, q := range quotes {
		days, ok := LeadingDays(q.DeliveryTime)
		if !ok {
			continue
		}
		if minIdx < 0 || days < minDays {
			minIdx, minDays = i, days
		}
	}
	return minIdx
}

// LeadingDays 解析时效描述开头的天数，如 "2-3 days" -> 2，"24h" 视为 1 天
func LeadingDays(deliveryTime string) (int, bool) {
	s := strings.TrimSpace(deliveryTime)
	end := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) })
	if end == 0 {
		return 0, false
	}
	if end < 0 {
		end = len(s)
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}

	unit := strings.ToLower(strings.TrimSpace(s[end:]))
	if strings.HasPrefix(unit, "h") {
		return (n + 23) / 24, true
	}
	return n, true
}
