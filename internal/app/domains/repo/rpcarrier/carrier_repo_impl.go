package rpcarrier

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/marxiobadel/farmer-sub002/common/entity"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etshipping"
)

// CarrierRepositoryImpl 承运商仓储实现（MySQL）
type CarrierRepositoryImpl struct {
	db *gorm.DB
}

// NewCarrierRepository 创建承运商仓储实例
func NewCarrierRepository(db *gorm.DB) CarrierRepository {
	return &CarrierRepositoryImpl{db: db}
}

// Create 创建承运商
func (r *CarrierRepositoryImpl) Create(ctx context.Context, carrier *etshipping.Carrier) error {
	return r.db.WithContext(ctx).Create(toGormModel(carrier)).Error
}

// Update 更新承运商，created_at 不变
func (r *CarrierRepositoryImpl) Update(ctx context.Context, carrier *etshipping.Carrier) error {
	po := toGormModel(carrier)
	return r.db.WithContext(ctx).
		Model(&entity.Carrier{}).
		Where("id = ?", carrier.ID).
		Updates(map[string]interface{}{
			"name":              po.Name,
			"base_price":        po.BasePrice,
			"free_shipping_min": po.FreeShippingMin,
			"pricing_type":      po.PricingType,
			"active":            po.Active,
			"updated_at":        time.Now(),
		}).Error
}

// GetByID 查询承运商
func (r *CarrierRepositoryImpl) GetByID(ctx context.Context, carrierID int64) (*etshipping.Carrier, error) {
	var po entity.Carrier
	err := r.db.WithContext(ctx).Where("id = ?", carrierID).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toDomainModel(&po)
}

// List 查询承运商列表
func (r *CarrierRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]*etshipping.Carrier, error) {
	var pos []entity.Carrier
	query := r.db.WithContext(ctx).Model(&entity.Carrier{})
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	if err := query.Order("id ASC").Find(&pos).Error; err != nil {
		return nil, err
	}

	carriers := make([]*etshipping.Carrier, 0, len(pos))
	for i := range pos {
		c, err := toDomainModel(&pos[i])
		if err != nil {
			return nil, err
		}
		carriers = append(carriers, c)
	}
	return carriers, nil
}

// ListRates 按 position 读取，保持管理员录入顺序
func (r *CarrierRepositoryImpl) ListRates(ctx context.Context, carrierID int64) ([]etshipping.Rate, error) {
	var pos []entity.CarrierRate
	err := r.db.WithContext(ctx).
		Where("carrier_id = ?", carrierID).
		Order("position ASC").
		Order("id ASC").
		Find(&pos).Error
	if err != nil {
		return nil, err
	}

	rates := make([]etshipping.Rate, 0, len(pos))
	for i := range pos {
		rates = append(rates, toDomainRate(&pos[i]))
	}
	return rates, nil
}

// ReplaceRates 在同一事务中删除旧费率并按提交顺序写入新费率
func (r *CarrierRepositoryImpl) ReplaceRates(ctx context.Context, carrierID int64, zoneID *int64, rates []etshipping.Rate) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		del := tx.Where("carrier_id = ?", carrierID)
		if zoneID == nil {
			del = del.Where("zone_id IS NULL")
		} else {
			del = del.Where("zone_id = ?", *zoneID)
		}
		if err := del.Delete(&entity.CarrierRate{}).Error; err != nil {
			return fmt.Errorf("delete rates failed: %w", err)
		}

		if len(rates) == 0 {
			return nil
		}

		now := time.Now()
		pos := make([]*entity.CarrierRate, 0, len(rates))
		for i := range rates {
			po := toGormRate(&rates[i], i)
			po.CarrierID = carrierID
			po.ZoneID = zoneID
			po.CreatedAt = now
			pos = append(pos, po)
		}
		if err := tx.Create(&pos).Error; err != nil {
			return fmt.Errorf("insert rates failed: %w", err)
		}
		return nil
	})
}

func toGormModel(c *etshipping.Carrier) *entity.Carrier {
	return &entity.Carrier{
		ID:              c.ID,
		Name:            c.Name,
		BasePrice:       c.BasePrice,
		FreeShippingMin: toNullDecimal(c.FreeShippingMin),
		PricingType:     string(c.PricingType()),
		Active:          c.Active,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

// toDomainModel 通过构造函数还原，历史脏数据（未知计价类型等）在这里暴露
func toDomainModel(po *entity.Carrier) (*etshipping.Carrier, error) {
	c, err := etshipping.NewCarrier(po.ID, po.Name, po.BasePrice, fromNullDecimal(po.FreeShippingMin), po.PricingType, po.Active)
	if err != nil {
		return nil, fmt.Errorf("carrier %d: %w", po.ID, err)
	}
	c.CreatedAt = po.CreatedAt
	c.UpdatedAt = po.UpdatedAt
	return c, nil
}

func toGormRate(rate *etshipping.Rate, position int) *entity.CarrierRate {
	return &entity.CarrierRate{
		ID:           rate.ID,
		CarrierID:    rate.CarrierID,
		ZoneID:       rate.ZoneID,
		Position:     position,
		MinWeight:    toNullDecimal(rate.Weight.Min),
		MaxWeight:    toNullDecimal(rate.Weight.Max),
		MinPrice:     toNullDecimal(rate.Price.Min),
		MaxPrice:     toNullDecimal(rate.Price.Max),
		MinVolume:    toNullDecimal(rate.Volume.Min),
		MaxVolume:    toNullDecimal(rate.Volume.Max),
		RatePrice:    rate.RatePrice,
		DeliveryTime: rate.DeliveryTime,
	}
}

func toDomainRate(po *entity.CarrierRate) etshipping.Rate {
	return etshipping.Rate{
		ID:           po.ID,
		CarrierID:    po.CarrierID,
		ZoneID:       po.ZoneID,
		Weight:       etshipping.Bound{Min: fromNullDecimal(po.MinWeight), Max: fromNullDecimal(po.MaxWeight)},
		Price:        etshipping.Bound{Min: fromNullDecimal(po.MinPrice), Max: fromNullDecimal(po.MaxPrice)},
		Volume:       etshipping.Bound{Min: fromNullDecimal(po.MinVolume), Max: fromNullDecimal(po.MaxVolume)},
		RatePrice:    po.RatePrice,
		DeliveryTime: po.DeliveryTime,
	}
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func fromNullDecimal(n decimal.NullDecimal) *decimal.Decimal {
	if !n.Valid {
		return nil
	}
	d := n.Decimal
	return &d
}
