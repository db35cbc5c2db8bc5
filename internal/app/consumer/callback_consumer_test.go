package consumer

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marxiobadel/farmer-sub002/common/model"
	"github.com/marxiobadel/farmer-sub002/internal/app/infra/mq/lmstfy"
	"github.com/marxiobadel/farmer-sub002/internal/app/pkg/errorutil"
	"github.com/marxiobadel/farmer-sub002/internal/app/pkg/logger"
)

// fakeSource 按顺序吐出预置消息，取完后模拟长轮询超时
type fakeSource struct {
	mu       sync.Mutex
	messages []*lmstfy.Message
	failures int
	acked    []string
}

func (f *fakeSource) Consume(queue string, timeout, ttr time.Duration) (*lmstfy.Message, error) {
	f.mu.Lock()
	if f.failures > 0 {
		f.failures--
		f.mu.Unlock()
		return nil, errors.New("connection reset")
	}
	if len(f.messages) == 0 {
		f.mu.Unlock()
		time.Sleep(5 * time.Millisecond)
		return nil, nil
	}
	m := f.messages[0]
	f.messages = f.messages[1:]
	f.mu.Unlock()
	return m, nil
}

func (f *fakeSource) Ack(queue, jobID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.acked = append(f.acked, jobID)
	return nil
}

func (f *fakeSource) ackedIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.acked...)
}

// fakeHandler 按订单号返回预置错误
type fakeHandler struct {
	errs map[string]error
}

func (h *fakeHandler) HandleCallback(ctx context.Context, cb *model.PaymentCallback) error {
	return h.errs[cb.OrderID]
}

func msg(id, body string) *lmstfy.Message {
	return &lmstfy.Message{ID: id, Queue: "payment_callback", Data: []byte(body)}
}

func testConfig() *Config {
	return &Config{
		QueueName:      "payment_callback",
		Pullers:        2,
		Processors:     3,
		BufferSize:     4,
		Timeout:        time.Second,
		TTR:            30 * time.Second,
		ErrorBackoff:   time.Millisecond,
		ProcessTimeout: time.Second,
	}
}

func TestCallbackConsumer_AckPolicy(t *testing.T) {
	source := &fakeSource{
		failures: 2,
		messages: []*lmstfy.Message{
			msg("job-ok", `{"order_id":"o-1","provider":"orange_money","status":"SUCCESS","amount":"7500"}`),
			msg("job-retry", `{"order_id":"o-2","provider":"mtn_momo","status":"SUCCESS","amount":"7500"}`),
			msg("job-reject", `{"order_id":"o-3","provider":"mtn_momo","status":"FAILED"}`),
			msg("job-garbage", `not json`),
		},
	}
	handler := &fakeHandler{errs: map[string]error{
		"o-2": errorutil.Retriable("db down", errors.New("connection refused")),
		"o-3": errorutil.NonRetriable("order not found", nil),
	}}

	c := NewCallbackConsumer(source, handler, testConfig(), logger.NewNopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Start(ctx) }()

	stats := c.Stats()
	assert.Eventually(t, func() bool {
		return stats.Acked.Load()+stats.Retried.Load()+stats.Rejected.Load() == 4
	}, 2*time.Second, 5*time.Millisecond)
	assert.True(t, c.Running())

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not stop")
	}

	assert.False(t, c.Running())
	assert.Equal(t, int64(4), stats.Pulled.Load())
	assert.Equal(t, int64(1), stats.Acked.Load())
	assert.Equal(t, int64(1), stats.Retried.Load())
	assert.Equal(t, int64(2), stats.Rejected.Load())
	assert.ElementsMatch(t, []string{"job-ok", "job-reject", "job-garbage"}, source.ackedIDs())
}

func TestCallbackConsumer_StartTwice(t *testing.T) {
	c := NewCallbackConsumer(&fakeSource{}, &fakeHandler{}, testConfig(), logger.NewNopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Start(ctx) }()

	require.Eventually(t, c.Running, time.Second, time.Millisecond)
	assert.Error(t, c.Start(ctx))

	cancel()
	require.NoError(t, <-done)
}

func TestParseMessage(t *testing.T) {
	cb, err := parseMessage([]byte(`{"order_id":"o-1","provider":"orange_money","status":"FAILED","error":"timeout"}`))
	require.NoError(t, err)
	assert.Equal(t, "timeout", cb.Error)

	_, err = parseMessage([]byte(`{"provider":"orange_money","status":"FAILED"}`))
	assert.EqualError(t, err, "order_id is required")

	_, err = parseMessage([]byte(`{"order_id":"o-1"}`))
	assert.EqualError(t, err, "status is required")
}
