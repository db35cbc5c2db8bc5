package rpzone

import (
	"context"

	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etzone"
)

// ZoneRepository 配送区域仓储接口
type ZoneRepository interface {
	Create(ctx context.Context, zone *etzone.Zone) error
	List(ctx context.Context, activeOnly bool) ([]*etzone.Zone, error)

	// GetByID 不存在返回 nil, nil
	GetByID(ctx context.Context, zoneID int64) (*etzone.Zone, error)

	// FindByCountry 返回第一个覆盖该国家的启用区域（按 ID 升序），没有则返回 etzone.ErrZoneNotFound
	FindByCountry(ctx context.Context, country string) (*etzone.Zone, error)
}
