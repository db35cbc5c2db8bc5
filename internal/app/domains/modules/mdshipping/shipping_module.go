package mdshipping

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etshipping"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etzone"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/repo/rpcarrier"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/repo/rpzone"
	"github.com/marxiobadel/farmer-sub002/internal/app/pkg/logger"
	"github.com/marxiobadel/farmer-sub002/internal/app/pkg/metrics"
)

// RateCache 费率快照缓存（Redis 实现）
type RateCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	Incr(ctx context.Context, key string) (int64, error)
}

// ShippingModule 承运商、费率与区域的数据访问，费率读取走缓存
type ShippingModule struct {
	carrierRepo rpcarrier.CarrierRepository
	zoneRepo    rpzone.ZoneRepository
	cache       RateCache
	cacheTTL    time.Duration
	logger      logger.Logger
}

// NewShippingModule 创建运费模块，cache 为 nil 时直接读库
func NewShippingModule(
	carrierRepo rpcarrier.CarrierRepository,
	zoneRepo rpzone.ZoneRepository,
	cache RateCache,
	cacheTTL time.Duration,
	logger logger.Logger,
) *ShippingModule {
	return &ShippingModule{
		carrierRepo: carrierRepo,
		zoneRepo:    zoneRepo,
		cache:       cache,
		cacheTTL:    cacheTTL,
		logger:      logger,
	}
}

// carrierSnapshot 缓存中的承运商及其全部费率
type carrierSnapshot struct {
	ID              int64             `json:"id"`
	Name            string            `json:"name"`
	BasePrice       decimal.Decimal   `json:"base_price"`
	FreeShippingMin *decimal.Decimal  `json:"free_shipping_min"`
	PricingType     string            `json:"pricing_type"`
	Active          bool              `json:"active"`
	Rates           []etshipping.Rate `json:"rates"`
	Generation      int64             `json:"generation"`
}

// CacheKey 承运商费率缓存 key
func CacheKey(carrierID int64) string {
	return fmt.Sprintf("shipping:carrier:%d", carrierID)
}

// GenerationKey 承运商缓存代数，每次写入后自增
func GenerationKey(carrierID int64) string {
	return CacheKey(carrierID) + ":gen"
}

// LoadCarrier 读取承运商及其费率（录入顺序）
// 承运商不存在时返回 nil, nil, nil，由调用方交给计价器处理
// 快照只在其代数等于当前代数时有效：读库期间发生的写入会让回填的快照作废
func (m *ShippingModule) LoadCarrier(ctx context.Context, carrierID int64) (*etshipping.Carrier, []etshipping.Rate, error) {
	gen, cacheable := m.generation(ctx, carrierID)
	if cacheable {
		if snap, ok := m.readCache(ctx, carrierID, gen); ok {
			carrier, err := etshipping.NewCarrier(snap.ID, snap.Name, snap.BasePrice, snap.FreeShippingMin, snap.PricingType, snap.Active)
			if err == nil {
				return carrier, snap.Rates, nil
			}
			m.logger.Warnf(ctx, "discard corrupted carrier snapshot: carrier_id=%d, error=%v", carrierID, err)
		}
	}

	carrier, err := m.carrierRepo.GetByID(ctx, carrierID)
	if err != nil {
		return nil, nil, fmt.Errorf("load carrier failed: %w", err)
	}
	if carrier == nil {
		return nil, nil, nil
	}

	rates, err := m.carrierRepo.ListRates(ctx, carrierID)
	if err != nil {
		return nil, nil, fmt.Errorf("load rates failed: %w", err)
	}

	if cacheable {
		m.writeCache(ctx, carrier, rates, gen)
	}
	return carrier, rates, nil
}

// CreateCarrier 创建承运商
func (m *ShippingModule) CreateCarrier(ctx context.Context, carrier *etshipping.Carrier) error {
	return m.carrierRepo.Create(ctx, carrier)
}

// UpdateCarrier 更新承运商并清除缓存
func (m *ShippingModule) UpdateCarrier(ctx context.Context, carrier *etshipping.Carrier) error {
	if err := m.carrierRepo.Update(ctx, carrier); err != nil {
		return err
	}
	m.Invalidate(ctx, carrier.ID)
	return nil
}

// GetCarrier 直接读库（管理端使用）
func (m *ShippingModule) GetCarrier(ctx context.Context, carrierID int64) (*etshipping.Carrier, error) {
	return m.carrierRepo.GetByID(ctx, carrierID)
}

// ListRates 直接读库（管理端使用）
func (m *ShippingModule) ListRates(ctx context.Context, carrierID int64) ([]etshipping.Rate, error) {
	return m.carrierRepo.ListRates(ctx, carrierID)
}

// ListCarriers 查询承运商列表
func (m *ShippingModule) ListCarriers(ctx context.Context, activeOnly bool) ([]*etshipping.Carrier, error) {
	return m.carrierRepo.List(ctx, activeOnly)
}

// ReplaceRates 替换费率并清除缓存
func (m *ShippingModule) ReplaceRates(ctx context.Context, carrierID int64, zoneID *int64, rates []etshipping.Rate) error {
	if err := m.carrierRepo.ReplaceRates(ctx, carrierID, zoneID, rates); err != nil {
		return err
	}
	m.Invalidate(ctx, carrierID)
	return nil
}

// CreateZone 创建区域
func (m *ShippingModule) CreateZone(ctx context.Context, zone *etzone.Zone) error {
	return m.zoneRepo.Create(ctx, zone)
}

// GetZone 查询区域，不存在返回 nil, nil
func (m *ShippingModule) GetZone(ctx context.Context, zoneID int64) (*etzone.Zone, error) {
	return m.zoneRepo.GetByID(ctx, zoneID)
}

// ListZones 查询区域列表
func (m *ShippingModule) ListZones(ctx context.Context, activeOnly bool) ([]*etzone.Zone, error) {
	return m.zoneRepo.List(ctx, activeOnly)
}

// ResolveZone 根据收货国家确定配送区域
func (m *ShippingModule) ResolveZone(ctx context.Context, country string) (*etzone.Zone, error) {
	return m.zoneRepo.FindByCountry(ctx, country)
}

// Invalidate 推进代数并删除快照，失败只记录日志（TTL 兜底）
func (m *ShippingModule) Invalidate(ctx context.Context, carrierID int64) {
	if m.cache == nil {
		return
	}
	if _, err := m.cache.Incr(ctx, GenerationKey(carrierID)); err != nil {
		m.logger.Warnf(ctx, "bump rate cache generation failed: carrier_id=%d, error=%v", carrierID, err)
	}
	if err := m.cache.Del(ctx, CacheKey(carrierID)); err != nil {
		m.logger.Warnf(ctx, "invalidate rate cache failed: carrier_id=%d, error=%v", carrierID, err)
	}
}

// generation 读取当前代数，读取失败时本次不使用缓存
func (m *ShippingModule) generation(ctx context.Context, carrierID int64) (int64, bool) {
	if m.cache == nil {
		return 0, false
	}

	data, found, err := m.cache.Get(ctx, GenerationKey(carrierID))
	if err != nil {
		metrics.RateCacheTotal.WithLabelValues("error").Inc()
		m.logger.Warnf(ctx, "read rate cache generation failed: carrier_id=%d, error=%v", carrierID, err)
		return 0, false
	}
	if !found {
		return 0, true
	}
	gen, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		m.logger.Warnf(ctx, "invalid rate cache generation: carrier_id=%d, value=%q", carrierID, data)
		return 0, false
	}
	return gen, true
}

func (m *ShippingModule) readCache(ctx context.Context, carrierID, gen int64) (*carrierSnapshot, bool) {
	data, found, err := m.cache.Get(ctx, CacheKey(carrierID))
	if err != nil {
		metrics.RateCacheTotal.WithLabelValues("error").Inc()
		m.logger.Warnf(ctx, "read rate cache failed: carrier_id=%d, error=%v", carrierID, err)
		return nil, false
	}
	if !found {
		metrics.RateCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	var snap carrierSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		metrics.RateCacheTotal.WithLabelValues("error").Inc()
		m.logger.Warnf(ctx, "decode rate cache failed: carrier_id=%d, error=%v", carrierID, err)
		return nil, false
	}

	if snap.Generation != gen {
		metrics.RateCacheTotal.WithLabelValues("stale").Inc()
		return nil, false
	}

	metrics.RateCacheTotal.WithLabelValues("hit").Inc()
	return &snap, true
}

func (m *ShippingModule) writeCache(ctx context.Context, carrier *etshipping.Carrier, rates []etshipping.Rate, gen int64) {
	snap := carrierSnapshot{
		ID:              carrier.ID,
		Name:            carrier.Name,
		BasePrice:       carrier.BasePrice,
		FreeShippingMin: carrier.FreeShippingMin,
		PricingType:     string(carrier.PricingType()),
		Active:          carrier.Active,
		Rates:           rates,
		Generation:      gen,
	}
	data, err := json.Marshal(snap)
	if err != nil {
		m.logger.Warnf(ctx, "encode rate cache failed: carrier_id=%d, error=%v", carrier.ID, err)
		return
	}
	if err := m.cache.Set(ctx, CacheKey(carrier.ID), data, m.cacheTTL); err != nil {
		m.logger.Warnf(ctx, "write rate cache failed: carrier_id=%d, error=%v", carrier.ID, err)
	}
}
