package svcarrier

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etshipping"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etzone"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/modules/mdshipping"
	"github.com/marxiobadel/farmer-sub002/internal/app/pkg/errorx"
	"github.com/marxiobadel/farmer-sub002/internal/app/pkg/idgen"
	"github.com/marxiobadel/farmer-sub002/internal/app/pkg/logger"
)

// CarrierInput 承运商录入参数
type CarrierInput struct {
	Name            string
	BasePrice       decimal.Decimal
	FreeShippingMin *decimal.Decimal
	PricingType     string
	Active          bool
}

// RateInput 费率档位录入参数
type RateInput struct {
	Weight       etshipping.Bound
	Price        etshipping.Bound
	Volume       etshipping.Bound
	RatePrice    decimal.Decimal
	DeliveryTime string
}

// CarrierDetail 承运商及其全部费率
type CarrierDetail struct {
	Carrier *etshipping.Carrier
	Rates   []etshipping.Rate
}

// CarrierService 承运商管理服务（写入路径校验）
type CarrierService struct {
	shippingModule *mdshipping.ShippingModule
	ids            idgen.Generator
	logger         logger.Logger
}

// NewCarrierService 创建承运商管理服务
func NewCarrierService(shippingModule *mdshipping.ShippingModule, ids idgen.Generator, logger logger.Logger) *CarrierService {
	return &CarrierService{
		shippingModule: shippingModule,
		ids:            ids,
		logger:         logger,
	}
}

// CreateCarrier 创建承运商
func (s *CarrierService) CreateCarrier(ctx context.Context, in CarrierInput) (*etshipping.Carrier, error) {
	carrier, err := etshipping.NewCarrier(s.ids.NextID(), in.Name, in.BasePrice, in.FreeShippingMin, in.PricingType, in.Active)
	if err != nil {
		return nil, err
	}

	if err := s.shippingModule.CreateCarrier(ctx, carrier); err != nil {
		return nil, fmt.Errorf("save carrier failed: %w", err)
	}

	s.logger.Infof(ctx, "carrier created: id=%d, name=%s, pricing=%s", carrier.ID, carrier.Name, carrier.PricingType())
	return carrier, nil
}

// UpdateCarrier 更新承运商
// 已有档位按原计价维度录入，切换计价类型前必须先清空
func (s *CarrierService) UpdateCarrier(ctx context.Context, carrierID int64, in CarrierInput) (*etshipping.Carrier, error) {
	carrier, err := s.mustGetCarrier(ctx, carrierID)
	if err != nil {
		return nil, err
	}

	previous := carrier.PricingType()
	if err := carrier.Update(in.Name, in.BasePrice, in.FreeShippingMin, in.PricingType, in.Active); err != nil {
		return nil, err
	}

	if carrier.PricingType() != previous {
		rates, err := s.shippingModule.ListRates(ctx, carrierID)
		if err != nil {
			return nil, fmt.Errorf("load rates failed: %w", err)
		}
		if len(rates) > 0 {
			sentinel := etshipping.ErrPricingTypeInUse
			if !carrier.IsTiered() {
				sentinel = etshipping.ErrRatesOnFixedCarrier
			}
			return nil, fmt.Errorf("%w: %s -> %s, remove %d existing rates first",
				sentinel, previous, carrier.PricingType(), len(rates))
		}
	}

	if err := s.shippingModule.UpdateCarrier(ctx, carrier); err != nil {
		return nil, fmt.Errorf("update carrier failed: %w", err)
	}
	return carrier, nil
}

// GetCarrier 查询承运商及费率
func (s *CarrierService) GetCarrier(ctx context.Context, carrierID int64) (*CarrierDetail, error) {
	carrier, err := s.mustGetCarrier(ctx, carrierID)
	if err != nil {
		return nil, err
	}

	rates, err := s.shippingModule.ListRates(ctx, carrierID)
	if err != nil {
		return nil, fmt.Errorf("load rates failed: %w", err)
	}
	return &CarrierDetail{Carrier: carrier, Rates: rates}, nil
}

// ListCarriers 查询承运商列表
func (s *CarrierService) ListCarriers(ctx context.Context, activeOnly bool) ([]*etshipping.Carrier, error) {
	return s.shippingModule.ListCarriers(ctx, activeOnly)
}

// ReplaceRates 替换某区域的费率档位，提交顺序即匹配顺序
// zoneID 为 nil 时替换通用档位
func (s *CarrierService) ReplaceRates(ctx context.Context, carrierID int64, zoneID *int64, inputs []RateInput) ([]etshipping.Rate, error) {
	carrier, err := s.mustGetCarrier(ctx, carrierID)
	if err != nil {
		return nil, err
	}

	if !carrier.IsTiered() && len(inputs) > 0 {
		return nil, fmt.Errorf("%w: carrier_id=%d", etshipping.ErrRatesOnFixedCarrier, carrierID)
	}

	if zoneID != nil {
		zone, err := s.shippingModule.GetZone(ctx, *zoneID)
		if err != nil {
			return nil, fmt.Errorf("load zone failed: %w", err)
		}
		if zone == nil {
			return nil, fmt.Errorf("%w: zone_id=%d", etzone.ErrZoneNotFound, *zoneID)
		}
	}

	rates := make([]etshipping.Rate, 0, len(inputs))
	for i, in := range inputs {
		rate, err := etshipping.NewRate(s.ids.NextID(), carrierID, zoneID, in.Weight, in.Price, in.Volume, in.RatePrice, in.DeliveryTime)
		if err != nil {
			return nil, fmt.Errorf("rates[%d]: %w", i, err)
		}
		rates = append(rates, *rate)
	}

	if err := carrier.CheckRates(rates); err != nil {
		return nil, err
	}

	if err := s.shippingModule.ReplaceRates(ctx, carrierID, zoneID, rates); err != nil {
		return nil, fmt.Errorf("replace rates failed: %w", err)
	}

	s.logger.Infof(ctx, "rates replaced: carrier_id=%d, zone_id=%v, count=%d", carrierID, zoneLabel(zoneID), len(rates))
	return rates, nil
}

// CreateZone 创建配送区域
func (s *CarrierService) CreateZone(ctx context.Context, name string, countries []string, active bool) (*etzone.Zone, error) {
	zone, err := etzone.NewZone(s.ids.NextID(), name, countries, active)
	if err != nil {
		return nil, err
	}
	if err := s.shippingModule.CreateZone(ctx, zone); err != nil {
		return nil, fmt.Errorf("save zone failed: %w", err)
	}
	return zone, nil
}

// ListZones 查询区域列表
func (s *CarrierService) ListZones(ctx context.Context, activeOnly bool) ([]*etzone.Zone, error) {
	return s.shippingModule.ListZones(ctx, activeOnly)
}

func (s *CarrierService) mustGetCarrier(ctx context.Context, carrierID int64) (*etshipping.Carrier, error) {
	carrier, err := s.shippingModule.GetCarrier(ctx, carrierID)
	if err != nil {
		return nil, fmt.Errorf("load carrier failed: %w", err)
	}
	if carrier == nil {
		return nil, fmt.Errorf("%w: id=%d", errorx.ErrCarrierNotFound, carrierID)
	}
	return carrier, nil
}

func zoneLabel(zoneID *int64) string {
	if zoneID == nil {
		return "all"
	}
	return fmt.Sprintf("%d", *zoneID)
}
