package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client Redis 客户端封装：Pub/Sub（Smart Wait）与费率缓存共用一个连接池
type Client struct {
	rdb *redis.Client
}

// NewClient 创建 Redis 客户端，支持密码认证
func NewClient(addr, password string, db int) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &Client{rdb: rdb}, nil
}

// Subscribe 订阅指定 channel 并等待一条消息，支持超时控制
// 用于 Smart Wait：订阅支付结果频道，等待回调消费者推送结果
func (c *Client) Subscribe(ctx context.Context, channel string, timeout time.Duration) (string, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	sub := c.rdb.Subscribe(timeoutCtx, channel)
	defer sub.Close()

	// 确认订阅已建立
	if _, err := sub.Receive(timeoutCtx); err != nil {
		return "", err
	}

	select {
	case msg, ok := <-sub.Channel():
		if !ok {
			return "", errors.New("subscription closed")
		}
		return msg.Payload, nil
	case <-timeoutCtx.Done():
		return "", timeoutCtx.Err()
	}
}

// Publish 向指定 channel 发布消息
func (c *Client) Publish(ctx context.Context, channel string, message string) error {
	return c.rdb.Publish(ctx, channel, message).Err()
}

// Close 关闭连接
func (c *Client) Close() error {
	return c.rdb.Close()
}
