package rporder

import (
	"context"

	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etorder"
)

// OrderRepository 订单仓储接口
// 金额字段只在 Create 时写入，没有任何更新运费或总额的方法
type OrderRepository interface {
	// Create 创建订单
	Create(ctx context.Context, order *etorder.Order) error

	// GetByID 根据ID查询订单，不存在返回 errorx.ErrOrderNotFound
	GetByID(ctx context.Context, orderID string) (*etorder.Order, error)

	// GetByAccountAndMerchantNo 根据账号ID和商家订单号查询，不存在返回 nil, nil
	GetByAccountAndMerchantNo(ctx context.Context, accountID int64, merchantOrderNo string) (*etorder.Order, error)

	// ApplyPayment 仅当订单仍为 PENDING_PAYMENT 时写入支付结果
	// applied=false 表示订单已被其他回调处理过
	ApplyPayment(ctx context.Context, order *etorder.Order) (applied bool, err error)

	// List 查询订单列表
	List(ctx context.Context, accountID int64, page, limit int) ([]*etorder.Order, int64, error)
}
