package lmstfy

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/bitleak/lmstfy/client"
)

// 默认投递参数
const (
	DefaultTTL   uint32 = 3600 // 消息存活时间（秒）
	DefaultTries uint16 = 3    // 最大投递次数
)

// Message 队列消息
type Message struct {
	ID    string // Job ID
	Queue string // 队列名称
	Data  []byte // 原始 Job 数据
}

// Client Lmstfy 客户端封装
type Client struct {
	cli       *client.LmstfyClient
	namespace string
}

// NewClient 创建 Lmstfy 客户端
func NewClient(host string, port int, namespace string, token string) *Client {
	return &Client{
		cli:       client.NewLmstfyClient(host, port, namespace, token),
		namespace: namespace,
	}
}

// Publish 发布原始消息，返回 Job ID
func (c *Client) Publish(queue string, data []byte, ttl, delay uint32) (string, error) {
	jobID, err := c.cli.Publish(queue, data, ttl, DefaultTries, delay)
	if err != nil {
		return "", fmt.Errorf("lmstfy publish failed: %w", err)
	}
	return jobID, nil
}

// PublishJSON 序列化后发布
func (c *Client) PublishJSON(queue string, v interface{}) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal job failed: %w", err)
	}
	return c.Publish(queue, data, DefaultTTL, 0)
}

// Consume 长轮询拉取一条消息，超时未拉到返回 nil, nil
func (c *Client) Consume(queue string, timeout time.Duration, ttr time.Duration) (*Message, error) {
	job, err := c.cli.Consume(queue, uint32(ttr.Seconds()), uint32(timeout.Seconds()))
	if err != nil {
		return nil, fmt.Errorf("lmstfy consume failed: %w", err)
	}
	if job == nil {
		return nil, nil
	}

	return &Message{
		ID:    job.ID,
		Queue: job.Queue,
		Data:  job.Data,
	}, nil
}

// Ack 确认消息（删除 Job）
func (c *Client) Ack(queue string, jobID string) error {
	if err := c.cli.Ack(queue, jobID); err != nil {
		return fmt.Errorf("lmstfy ack failed: %w", err)
	}
	return nil
}
