package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/atomic"

	"github.com/marxiobadel/farmer-sub002/common/model"
	"github.com/marxiobadel/farmer-sub002/internal/app/infra/mq/lmstfy"
	"github.com/marxiobadel/farmer-sub002/internal/app/pkg/errorutil"
	"github.com/marxiobadel/farmer-sub002/internal/app/pkg/logger"
)

const defaultProcessTimeout = 30 * time.Second

// CallbackConsumer 支付回调消费者
// 职责：
// 1. N 个拉取协程从 lmstfy 消费回调消息
// 2. M 个处理协程解析消息并调用 CallbackHandler
// 3. 成功或不可重试错误时 ACK，可重试错误不 ACK（TTR 到期重投）
type CallbackConsumer struct {
	cfg     *Config
	source  MessageSource
	handler CallbackHandler
	logger  logger.Logger
	stats   Stats
	running atomic.Bool
}

// NewCallbackConsumer 创建回调消费者实例
func NewCallbackConsumer(source MessageSource, handler CallbackHandler, cfg *Config, logger logger.Logger) *CallbackConsumer {
	c := *cfg
	if c.Pullers <= 0 {
		c.Pullers = 1
	}
	if c.Processors <= 0 {
		c.Processors = 1
	}
	if c.BufferSize < 0 {
		c.BufferSize = 0
	}
	if c.ProcessTimeout <= 0 {
		c.ProcessTimeout = defaultProcessTimeout
	}
	return &CallbackConsumer{
		cfg:     &c,
		source:  source,
		handler: handler,
		logger:  logger,
	}
}

// Start 启动消费，阻塞到 ctx 取消且已取出的消息处理完毕
func (c *CallbackConsumer) Start(ctx context.Context) error {
	if !c.running.CAS(false, true) {
		return errors.New("callback consumer already running")
	}
	defer c.running.Store(false)

	ch := make(chan *lmstfy.Message, c.cfg.BufferSize)
	sub := newSubscriber(c.cfg, c.source, &c.stats, c.logger)
	proc := newProcessor(c.cfg, c.process, c.logger)

	proc.start(ctx, ch)
	sub.start(ctx, ch)
	c.logger.Infof(ctx, "callback consumer started: queue=%s, pullers=%d, processors=%d",
		c.cfg.QueueName, c.cfg.Pullers, c.cfg.Processors)

	<-ctx.Done()

	// 先停拉取，再排空处理
	sub.stop()
	sub.wait()
	proc.signalShutdown()
	proc.wait()

	c.logger.Infof(context.Background(), "callback consumer stopped: pulled=%d, acked=%d, retried=%d, rejected=%d",
		c.stats.Pulled.Load(), c.stats.Acked.Load(), c.stats.Retried.Load(), c.stats.Rejected.Load())
	return nil
}

// Running 是否正在消费
func (c *CallbackConsumer) Running() bool {
	return c.running.Load()
}

// Stats 消费计数
func (c *CallbackConsumer) Stats() *Stats {
	return &c.stats
}

func (c *CallbackConsumer) process(ctx context.Context, msg *lmstfy.Message) action {
	cb, err := parseMessage(msg.Data)
	if err != nil {
		// 解析失败直接 ACK，避免毒消息反复投递
		c.logger.Errorf(ctx, "parse callback failed: job_id=%s, error=%v", msg.ID, err)
		c.stats.Rejected.Inc()
		c.ack(ctx, msg)
		return actionAck
	}

	if err := c.handler.HandleCallback(ctx, cb); err != nil {
		if errorutil.IsRetryable(err) {
			c.stats.Retried.Inc()
			return actionRetry
		}
		c.stats.Rejected.Inc()
		c.ack(ctx, msg)
		return actionAck
	}

	c.stats.Acked.Inc()
	c.ack(ctx, msg)
	return actionAck
}

func (c *CallbackConsumer) ack(ctx context.Context, msg *lmstfy.Message) {
	if err := c.source.Ack(c.cfg.QueueName, msg.ID); err != nil {
		c.logger.Errorf(ctx, "ack failed: job_id=%s, error=%v", msg.ID, err)
	}
}

// parseMessage 解析回调消息
func parseMessage(data []byte) (*model.PaymentCallback, error) {
	var cb model.PaymentCallback
	if err := json.Unmarshal(data, &cb); err != nil {
		return nil, fmt.Errorf("unmarshal callback failed: %w", err)
	}
	if cb.OrderID == "" {
		return nil, errors.New("order_id is required")
	}
	if cb.Status == "" {
		return nil, errors.New("status is required")
	}
	return &cb, nil
}
