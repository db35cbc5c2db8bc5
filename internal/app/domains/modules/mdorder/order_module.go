package mdorder

import (
	"context"
	"fmt"

	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etaccount"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etorder"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/repo/rpaccount"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/repo/rporder"
	"github.com/marxiobadel/farmer-sub002/internal/app/pkg/errorx"
)

// OrderModule 订单数据操作：落库、查询、支付结果写入
type OrderModule struct {
	orderRepo   rporder.OrderRepository
	accountRepo rpaccount.AccountRepository
}

func NewOrderModule(
	orderRepo rporder.OrderRepository,
	accountRepo rpaccount.AccountRepository,
) *OrderModule {
	return &OrderModule{
		orderRepo:   orderRepo,
		accountRepo: accountRepo,
	}
}

// CheckPlaceable 下单前置检查：账号存在，且 (account_id, merchant_order_no) 未被使用
func (m *OrderModule) CheckPlaceable(ctx context.Context, accountID int64, merchantOrderNo string) error {
	exists, err := m.accountRepo.Exists(ctx, accountID)
	if err != nil {
		return fmt.Errorf("check account exists failed: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: id=%d", etaccount.ErrAccountNotFound, accountID)
	}

	existing, err := m.orderRepo.GetByAccountAndMerchantNo(ctx, accountID, merchantOrderNo)
	if err != nil {
		return fmt.Errorf("check order duplicate failed: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("%w: merchant_order_no=%s, order_id=%s", errorx.ErrDuplicateOrder, merchantOrderNo, existing.ID)
	}
	return nil
}

// CreateOrder 订单与明细在同一事务中写入
func (m *OrderModule) CreateOrder(ctx context.Context, order *etorder.Order) error {
	return m.orderRepo.Create(ctx, order)
}

func (m *OrderModule) GetOrder(ctx context.Context, orderID string) (*etorder.Order, error) {
	return m.orderRepo.GetByID(ctx, orderID)
}

// ApplyPayment 条件更新，仅 PENDING_PAYMENT 订单生效；返回 false 表示重复回调
func (m *OrderModule) ApplyPayment(ctx context.Context, order *etorder.Order) (bool, error) {
	return m.orderRepo.ApplyPayment(ctx, order)
}

// ListOrders accountID 为 0 时不过滤账号
func (m *OrderModule) ListOrders(ctx context.Context, accountID int64, page, limit int) ([]*etorder.Order, int64, error) {
	return m.orderRepo.List(ctx, accountID, page, limit)
}
