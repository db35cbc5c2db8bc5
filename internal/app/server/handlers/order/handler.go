package order

import (
	"context"
	"time"

	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etorder"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/services/svorder"
)

// maxWait Smart Wait 最长等待时间
const maxWait = 30 * time.Second

// OrderService 订单服务（svorder.OrderService 实现）
type OrderService interface {
	CreateOrder(ctx context.Context, req svorder.CreateOrderRequest) (*etorder.Order, error)
	GetOrder(ctx context.Context, orderID string) (*etorder.Order, error)
	ListOrders(ctx context.Context, accountID int64, page, limit int) ([]*etorder.Order, int64, error)
	WaitForPayment(ctx context.Context, orderID string, timeout time.Duration) (*etorder.Order, error)
}

// OrderHandler 订单 HTTP 处理器
type OrderHandler struct {
	orderService OrderService
}

// NewOrderHandler 创建订单处理器实例
func NewOrderHandler(orderService OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}
