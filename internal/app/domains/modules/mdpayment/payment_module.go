package mdpayment

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/marxiobadel/farmer-sub002/common/model"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etorder"
	"github.com/marxiobadel/farmer-sub002/internal/app/pkg/logger"
)

// Publisher 队列发布（lmstfy 实现）
type Publisher interface {
	PublishJSON(queue string, v interface{}) (string, error)
}

// PubSub 通知频道（Redis 实现）
type PubSub interface {
	Subscribe(ctx context.Context, channel string, timeout time.Duration) (string, error)
	Publish(ctx context.Context, channel string, message string) error
}

// PaymentModule 支付模块
// 职责：
// 1. 下单后投递 order_placed 任务
// 2. 支付结果的 Redis 通知与等待（Smart Wait）
type PaymentModule struct {
	publisher  Publisher
	pubsub     PubSub
	orderQueue string
}

// NewPaymentModule 创建支付模块实例
func NewPaymentModule(publisher Publisher, pubsub PubSub, orderQueue string) *PaymentModule {
	return &PaymentModule{
		publisher:  publisher,
		pubsub:     pubsub,
		orderQueue: orderQueue,
	}
}

// PublishOrderPlaced 投递下单任务，金额以十进制字符串传递
func (m *PaymentModule) PublishOrderPlaced(ctx context.Context, order *etorder.Order) (string, error) {
	requestID := logger.RequestID(ctx)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	job := model.OrderPlacedJob{
		Payload: model.OrderPlacedPayload{
			Data: model.OrderPlacedData{
				RequestID:  requestID,
				ActionType: model.ActionTypeOrderPlaced,
				ID:         order.ID,
				Data: model.OrderPlacedBusinessData{
					OrderID:         order.ID,
					AccountID:       order.AccountID,
					MerchantOrderNo: order.MerchantOrderNo,
					CarrierID:       order.CarrierID,
					ZoneID:          order.ZoneID,
					Subtotal:        order.Subtotal.String(),
					ShippingCost:    order.ShippingCost.String(),
					Total:           order.Total.String(),
					Currency:        order.Currency,
				},
			},
		},
	}

	return m.publisher.PublishJSON(m.orderQueue, job)
}

// WaitForPayment 订阅 order:payment:{orderID}，超时返回 context.DeadlineExceeded
func (m *PaymentModule) WaitForPayment(ctx context.Context, orderID string, timeout time.Duration) (*model.PaymentNotification, error) {
	payload, err := m.pubsub.Subscribe(ctx, model.PaymentChannel(orderID), timeout)
	if err != nil {
		return nil, err
	}

	var n model.PaymentNotification
	if err := json.Unmarshal([]byte(payload), &n); err != nil {
		return nil, fmt.Errorf("decode payment notification failed: %w", err)
	}
	return &n, nil
}

// NotifyPayment 订单终态确定后广播给正在等待的请求
func (m *PaymentModule) NotifyPayment(ctx context.Context, order *etorder.Order) error {
	payload, err := json.Marshal(model.PaymentNotification{
		OrderID:   order.ID,
		Status:    string(order.Status),
		Reference: order.PaymentReference,
	})
	if err != nil {
		return fmt.Errorf("marshal notification failed: %w", err)
	}

	if err := m.pubsub.Publish(ctx, model.PaymentChannel(order.ID), string(payload)); err != nil {
		return fmt.Errorf("publish to redis failed: %w", err)
	}
	return nil
}
