package rpzone

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/marxiobadel/farmer-sub002/common/entity"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etzone"
)

// ZoneRepositoryImpl 配送区域仓储实现（MySQL）
type ZoneRepositoryImpl struct {
	db *gorm.DB
}

// NewZoneRepository 创建区域仓储实例
func NewZoneRepository(db *gorm.DB) ZoneRepository {
	return &ZoneRepositoryImpl{db: db}
}

// Create 创建区域
func (r *ZoneRepositoryImpl) Create(ctx context.Context, zone *etzone.Zone) error {
	po, err := toGormModel(zone)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(po).Error
}

// List 查询区域列表
func (r *ZoneRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]*etzone.Zone, error) {
	var pos []entity.Zone
	query := r.db.WithContext(ctx).Model(&entity.Zone{})
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	if err := query.Order("id ASC").Find(&pos).Error; err != nil {
		return nil, err
	}

	zones := make([]*etzone.Zone, 0, len(pos))
	for i := range pos {
		z, err := toDomainModel(&pos[i])
		if err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}
	return zones, nil
}

// GetByID 查询区域
func (r *ZoneRepositoryImpl) GetByID(ctx context.Context, zoneID int64) (*etzone.Zone, error) {
	var po entity.Zone
	err := r.db.WithContext(ctx).Where("id = ?", zoneID).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toDomainModel(&po)
}

// FindByCountry 区域数量很少，全部读出后在内存中匹配
func (r *ZoneRepositoryImpl) FindByCountry(ctx context.Context, country string) (*etzone.Zone, error) {
	zones, err := r.List(ctx, true)
	if err != nil {
		return nil, err
	}
	return MatchCountry(zones, country)
}

// MatchCountry 按顺序返回第一个覆盖该国家的区域
func MatchCountry(zones []*etzone.Zone, country string) (*etzone.Zone, error) {
	if _, err := etzone.NormalizeCountry(country); err != nil {
		return nil, err
	}
	for _, z := range zones {
		if z.Active && z.Covers(country) {
			return z, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", etzone.ErrZoneNotFound, country)
}

func toGormModel(z *etzone.Zone) (*entity.Zone, error) {
	countries, err := json.Marshal(z.Countries)
	if err != nil {
		return nil, err
	}
	return &entity.Zone{
		ID:        z.ID,
		Name:      z.Name,
		Countries: countries,
		Active:    z.Active,
		CreatedAt: z.CreatedAt,
	}, nil
}

func toDomainModel(po *entity.Zone) (*etzone.Zone, error) {
	var countries []string
	if err := json.Unmarshal(po.Countries, &countries); err != nil {
		return nil, fmt.Errorf("zone %d countries: %w", po.ID, err)
	}
	z, err := etzone.NewZone(po.ID, po.Name, countries, po.Active)
	if err != nil {
		return nil, fmt.Errorf("zone %d: %w", po.ID, err)
	}
	z.CreatedAt = po.CreatedAt
	return z, nil
}
