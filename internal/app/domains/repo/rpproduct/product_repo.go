package rpproduct

import (
	"context"

	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etproduct"
)

// ProductRepository 商品仓储接口
type ProductRepository interface {
	Create(ctx context.Context, product *etproduct.Product) error

	// GetByID 不存在返回 etproduct.ErrProductNotFound
	GetByID(ctx context.Context, productID int64) (*etproduct.Product, error)

	// GetByIDs 批量查询，结果以 ID 为键；缺失的 ID 不出现在结果中
	GetByIDs(ctx context.Context, productIDs []int64) (map[int64]*etproduct.Product, error)
}
