package mdpayment

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/marxiobadel/farmer-sub002/common/model"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etorder"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/modules/mocks"
	"github.com/marxiobadel/farmer-sub002/internal/app/pkg/logger"
)

func newOrder(t *testing.T) *etorder.Order {
	t.Helper()
	o, err := etorder.NewOrder("ord-1", 42, "M-1", 7, 2,
		&etorder.Address{Street1: "Rue 1", City: "Yaoundé", Country: "CM"},
		[]*etorder.Item{{ProductID: 1, SKU: "CAC-1", Quantity: 3, UnitPrice: decimal.RequireFromString("1250.50")}},
		decimal.NewFromInt(1500), "XAF")
	require.NoError(t, err)
	return o
}

func TestPublishOrderPlaced(t *testing.T) {
	pub := mocks.NewPublisher(t)
	m := NewPaymentModule(pub, mocks.NewPubSub(t), "order_placed")

	var job model.OrderPlacedJob
	pub.On("PublishJSON", "order_placed", mock.AnythingOfType("model.OrderPlacedJob")).
		Run(func(args mock.Arguments) { job = args.Get(1).(model.OrderPlacedJob) }).
		Return("job-1", nil)

	ctx := logger.WithRequestID(context.Background(), "req-9")
	jobID, err := m.PublishOrderPlaced(ctx, newOrder(t))
	require.NoError(t, err)
	assert.Equal(t, "job-1", jobID)

	data := job.Payload.Data
	assert.Equal(t, "req-9", data.RequestID)
	assert.Equal(t, model.ActionTypeOrderPlaced, data.ActionType)
	assert.Equal(t, "3751.5", data.Data.Subtotal)
	assert.Equal(t, "1500", data.Data.ShippingCost)
	assert.Equal(t, "5251.5", data.Data.Total)
}

func TestNotifyAndWait(t *testing.T) {
	ps := mocks.NewPubSub(t)
	m := NewPaymentModule(mocks.NewPublisher(t), ps, "order_placed")

	order := newOrder(t)
	require.NoError(t, order.MarkPaid(model.ProviderMTNMoMo, "MOMO-123", order.Total))

	var published string
	ps.On("Publish", mock.Anything, "order:payment:ord-1", mock.Anything).
		Run(func(args mock.Arguments) { published = args.String(2) }).
		Return(nil)
	require.NoError(t, m.NotifyPayment(context.Background(), order))

	var n model.PaymentNotification
	require.NoError(t, json.Unmarshal([]byte(published), &n))
	assert.Equal(t, "PAID", n.Status)
	assert.Equal(t, "MOMO-123", n.Reference)

	ps.On("Subscribe", mock.Anything, "order:payment:ord-1", 2*time.Second).Return(published, nil)
	got, err := m.WaitForPayment(context.Background(), "ord-1", 2*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "PAID", got.Status)
}

func TestWaitForPayment_Timeout(t *testing.T) {
	ps := mocks.NewPubSub(t)
	m := NewPaymentModule(mocks.NewPublisher(t), ps, "order_placed")

	ps.On("Subscribe", mock.Anything, "order:payment:ord-2", time.Second).Return("", context.DeadlineExceeded)

	_, err := m.WaitForPayment(context.Background(), "ord-2", time.Second)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
