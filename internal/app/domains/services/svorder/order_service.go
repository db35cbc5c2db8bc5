package svorder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etorder"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/modules/mdorder"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/modules/mdpayment"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/modules/mdproduct"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/modules/mdshipping"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/services/svshipping"
	"github.com/marxiobadel/farmer-sub002/internal/app/pkg/logger"
	"github.com/marxiobadel/farmer-sub002/internal/app/pkg/metrics"
)

// CreateOrderRequest 下单参数，金额一律由服务端重新计算
type CreateOrderRequest struct {
	AccountID       int64
	MerchantOrderNo string
	CarrierID       int64
	ShipTo          *etorder.Address
	Lines           []mdproduct.LineRequest
}

// OrderService 订单服务，负责订单业务编排
type OrderService struct {
	orderModule     *mdorder.OrderModule
	productModule   *mdproduct.ProductModule
	shippingModule  *mdshipping.ShippingModule
	paymentModule   *mdpayment.PaymentModule
	shippingService *svshipping.ShippingService
	currency        string
	logger          logger.Logger
}

// NewOrderService 创建订单服务实例
func NewOrderService(
	orderModule *mdorder.OrderModule,
	productModule *mdproduct.ProductModule,
	shippingModule *mdshipping.ShippingModule,
	paymentModule *mdpayment.PaymentModule,
	shippingService *svshipping.ShippingService,
	currency string,
	logger logger.Logger,
) *OrderService {
	return &OrderService{
		orderModule:     orderModule,
		productModule:   productModule,
		shippingModule:  shippingModule,
		paymentModule:   paymentModule,
		shippingService: shippingService,
		currency:        currency,
		logger:          logger,
	}
}

// CreateOrder 创建订单（完整业务流程）
// 1. 验证 account 存在
// 2. 检查订单重复
// 3. 按商品库还原购物车
// 4. 确定配送区域并计算一次运费
// 5. 创建订单并落库
// 6. 投递 order_placed 任务
func (s *OrderService) CreateOrder(ctx context.Context, req CreateOrderRequest) (*etorder.Order, error) {
	if err := s.orderModule.CheckPlaceable(ctx, req.AccountID, req.MerchantOrderNo); err != nil {
		return nil, err
	}

	if req.ShipTo == nil {
		return nil, etorder.ErrInvalidShipTo
	}

	cart, err := s.productModule.LoadCart(ctx, req.Lines)
	if err != nil {
		return nil, err
	}

	zone, err := s.shippingModule.ResolveZone(ctx, req.ShipTo.Country)
	if err != nil {
		return nil, err
	}

	quote, err := s.shippingService.QuoteForCart(ctx, req.CarrierID, zone, cart.Metrics)
	if err != nil {
		return nil, err
	}

	items := make([]*etorder.Item, 0, len(cart.Entries))
	for _, e := range cart.Entries {
		items = append(items, &etorder.Item{
			ProductID: e.Product.ID,
			SKU:       e.Product.SKU,
			Name:      e.Product.Name,
			Quantity:  e.Quantity,
			UnitPrice: e.Product.Price,
		})
	}

	order, err := etorder.NewOrder(uuid.New().String(), req.AccountID, req.MerchantOrderNo,
		req.CarrierID, zone.ID, req.ShipTo, items, quote.Cost, s.currency)
	if err != nil {
		return nil, err
	}

	if err := s.orderModule.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("save order failed: %w", err)
	}
	metrics.OrdersCreatedTotal.WithLabelValues(string(order.Status)).Inc()

	ctx = logger.WithOrderID(ctx, order.ID)
	if jobID, err := s.paymentModule.PublishOrderPlaced(ctx, order); err != nil {
		// 发布失败只记录日志，不影响订单创建成功
		s.logger.Warnf(ctx, "publish order_placed failed: error=%v", err)
	} else {
		s.logger.Infof(ctx, "order placed: job_id=%s, shipping=%s, total=%s", jobID, order.ShippingCost, order.Total)
	}

	return order, nil
}

// GetOrder 查询订单
func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*etorder.Order, error) {
	return s.orderModule.GetOrder(ctx, orderID)
}

// ListOrders 查询订单列表
func (s *OrderService) ListOrders(ctx context.Context, accountID int64, page, limit int) ([]*etorder.Order, int64, error) {
	return s.orderModule.ListOrders(ctx, accountID, page, limit)
}

// WaitForPayment Smart Wait：订单仍待支付时订阅支付通知
// 无论收到通知、超时还是订阅失败，最终都以库中最新状态返回
func (s *OrderService) WaitForPayment(ctx context.Context, orderID string, timeout time.Duration) (*etorder.Order, error) {
	order, err := s.orderModule.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status.IsTerminal() || timeout <= 0 {
		return order, nil
	}

	ctx = logger.WithOrderID(ctx, orderID)
	n, err := s.paymentModule.WaitForPayment(ctx, orderID, timeout)
	if err != nil {
		if !errors.Is(err, context.DeadlineExceeded) {
			s.logger.Warnf(ctx, "wait for payment failed: error=%v", err)
		}
	} else {
		s.logger.Debugf(ctx, "payment notification received: status=%s", n.Status)
	}

	latest, err := s.orderModule.GetOrder(ctx, orderID)
	if err != nil {
		s.logger.Warnf(ctx, "reload order failed: error=%v", err)
		return order, nil
	}
	return latest, nil
}
