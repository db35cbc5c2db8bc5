package svcallback

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/marxiobadel/farmer-sub002/common/model"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etorder"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/modules/mdorder"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/modules/mdpayment"
	"github.com/marxiobadel/farmer-sub002/internal/app/pkg/errorutil"
	"github.com/marxiobadel/farmer-sub002/internal/app/pkg/errorx"
	"github.com/marxiobadel/farmer-sub002/internal/app/pkg/logger"
	"github.com/marxiobadel/farmer-sub002/internal/app/pkg/metrics"
)

// 回调处理结果（指标标签）
const (
	resultApplied  = "applied"
	resultReplay   = "replay"
	resultRejected = "rejected"
	resultError    = "error"
)

// CallbackService 支付回调处理服务
// 职责：
// 1. 校验 Orange Money / MTN MoMo 回调并核对金额
// 2. 条件更新订单状态（只从 PENDING_PAYMENT 迁移一次）
// 3. 发送 Redis PubSub 通知（Smart Wait）
type CallbackService struct {
	orderModule   *mdorder.OrderModule
	paymentModule *mdpayment.PaymentModule
	logger        logger.Logger
}

// NewCallbackService 创建回调服务实例
func NewCallbackService(
	orderModule *mdorder.OrderModule,
	paymentModule *mdpayment.PaymentModule,
	logger logger.Logger,
) *CallbackService {
	return &CallbackService{
		orderModule:   orderModule,
		paymentModule: paymentModule,
		logger:        logger,
	}
}

// HandleCallback 处理支付回调
// 返回 errorutil.Error：Retryable=true 时消息不 ack，等待 lmstfy 重新投递
func (s *CallbackService) HandleCallback(ctx context.Context, cb *model.PaymentCallback) error {
	ctx = logger.WithOrderID(ctx, cb.OrderID)
	if cb.RequestID != "" {
		ctx = logger.WithRequestID(ctx, cb.RequestID)
	}

	result, err := s.handle(ctx, cb)
	metrics.CallbacksTotal.WithLabelValues(providerLabel(cb.Provider), result).Inc()
	if err != nil {
		s.logger.Errorf(ctx, "callback failed: provider=%s, status=%s, retryable=%v, error=%v",
			cb.Provider, cb.Status, errorutil.IsRetryable(err), err)
		return err
	}

	s.logger.Infof(ctx, "callback processed: provider=%s, status=%s, result=%s", cb.Provider, cb.Status, result)
	return nil
}

func (s *CallbackService) handle(ctx context.Context, cb *model.PaymentCallback) (string, error) {
	if err := validate(cb); err != nil {
		return resultRejected, err
	}

	order, err := s.orderModule.GetOrder(ctx, cb.OrderID)
	if err != nil {
		if errors.Is(err, errorx.ErrOrderNotFound) {
			return resultRejected, errorutil.NonRetriable("order not found", err)
		}
		return resultError, errorutil.Retriable("load order failed", err)
	}

	if order.Status.IsTerminal() {
		s.logger.Infof(ctx, "order already %s, callback ignored", order.Status)
		return resultReplay, nil
	}

	var rejectErr error
	switch cb.Status {
	case model.CallbackStatusSuccess:
		amount, err := decimal.NewFromString(cb.Amount)
		if err != nil {
			return resultRejected, errorutil.NonRetriable("invalid amount", err)
		}
		if err := order.MarkPaid(cb.Provider, cb.Reference, amount); err != nil {
			if !errors.Is(err, etorder.ErrAmountMismatch) {
				return resultRejected, errorutil.NonRetriable("mark paid failed", err)
			}
			// 金额不符：订单置为失败，消息不再重试
			rejectErr = errorutil.NonRetriable(
				fmt.Sprintf("amount mismatch: paid=%s, total=%s", amount, order.Total), err)
			if err := order.MarkPaymentFailed(cb.Provider, "amount mismatch"); err != nil {
				return resultRejected, errorutil.NonRetriable("mark payment failed", err)
			}
		}
	case model.CallbackStatusFailed:
		if err := order.MarkPaymentFailed(cb.Provider, cb.Error); err != nil {
			return resultRejected, errorutil.NonRetriable("mark payment failed", err)
		}
	}

	applied, err := s.orderModule.ApplyPayment(ctx, order)
	if err != nil {
		return resultError, errorutil.Retriable("apply payment failed", err)
	}
	if !applied {
		// 并发回调已先一步落库
		return resultReplay, nil
	}

	if err := s.paymentModule.NotifyPayment(ctx, order); err != nil {
		// 通知失败不影响整体流程（DB 已更新成功）
		s.logger.Warnf(ctx, "notify payment failed: error=%v", err)
	}

	if rejectErr != nil {
		return resultRejected, rejectErr
	}
	return resultApplied, nil
}

func validate(cb *model.PaymentCallback) error {
	if cb.OrderID == "" {
		return errorutil.NonRetriable("order_id is required", nil)
	}
	switch cb.Provider {
	case model.ProviderOrangeMoney, model.ProviderMTNMoMo:
	default:
		return errorutil.NonRetriable(fmt.Sprintf("unknown provider: %q", cb.Provider), nil)
	}
	switch cb.Status {
	case model.CallbackStatusSuccess, model.CallbackStatusFailed:
	default:
		return errorutil.NonRetriable(fmt.Sprintf("unknown status: %q", cb.Status), nil)
	}
	return nil
}

func providerLabel(provider string) string {
	if provider == model.ProviderOrangeMoney || provider == model.ProviderMTNMoMo {
		return provider
	}
	return "unknown"
}
