package consumer

import (
	"context"
	"time"

	"go.uber.org/atomic"

	"github.com/marxiobadel/farmer-sub002/common/model"
	"github.com/marxiobadel/farmer-sub002/internal/app/infra/mq/lmstfy"
)

// MessageSource 消息源接口（lmstfy 客户端实现）
type MessageSource interface {
	// Consume 阻塞直到拉取到消息或超时，超时返回 nil, nil
	Consume(queue string, timeout time.Duration, ttr time.Duration) (*lmstfy.Message, error)

	// Ack 确认消息（删除消息）
	Ack(queue string, jobID string) error
}

// CallbackHandler 回调业务处理
type CallbackHandler interface {
	HandleCallback(ctx context.Context, cb *model.PaymentCallback) error
}

// Config 消费者配置
type Config struct {
	QueueName      string
	Pullers        int           // 并发拉取协程数
	Processors     int           // 并发处理协程数
	BufferSize     int           // 拉取与处理之间的缓冲
	Timeout        time.Duration // 长轮询超时
	TTR            time.Duration // 未 ack 的消息在 TTR 后重新投递
	ErrorBackoff   time.Duration // 拉取失败后的退避
	ProcessTimeout time.Duration // 单条消息处理超时
}

// Stats 消费计数
type Stats struct {
	Pulled   atomic.Int64
	Acked    atomic.Int64
	Retried  atomic.Int64 // 可重试错误，未 ack
	Rejected atomic.Int64 // 不可重试错误或消息格式错误，已 ack
}

// action 单条消息处理后的动作
type action int

const (
	actionAck action = iota
	actionRetry
)
