package rpcarrier

import (
	"context"

	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etshipping"
)

// CarrierRepository 承运商及费率仓储接口
type CarrierRepository interface {
	// Create 创建承运商
	Create(ctx context.Context, carrier *etshipping.Carrier) error

	// Update 更新承运商基础信息
	Update(ctx context.Context, carrier *etshipping.Carrier) error

	// GetByID 查询承运商，不存在返回 nil, nil
	GetByID(ctx context.Context, carrierID int64) (*etshipping.Carrier, error)

	// List 查询承运商列表
	List(ctx context.Context, activeOnly bool) ([]*etshipping.Carrier, error)

	// ListRates 查询承运商全部费率，按录入顺序返回
	ListRates(ctx context.Context, carrierID int64) ([]etshipping.Rate, error)

	// ReplaceRates 整体替换某个区域（zoneID 为 nil 表示通用）的费率
	ReplaceRates(ctx context.Context, carrierID int64, zoneID *int64, rates []etshipping.Rate) error
}
