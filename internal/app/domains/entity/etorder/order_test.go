package etorder

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *Order {
	t.Helper()
	items := []*Item{
		{ProductID: 1, SKU: "MAIS-25", Name: "Maïs 25kg", Quantity: 2, UnitPrice: decimal.NewFromInt(12500)},
		{ProductID: 2, SKU: "MIEL-1L", Name: "Miel 1L", Quantity: 1, UnitPrice: decimal.NewFromInt(4000)},
	}
	shipTo := &Address{ContactName: "Awa", Street1: "Rue 1.234", City: "Douala", Country: "CM", Phone: "+237690000000"}
	o, err := NewOrder("6c1f5d3c-1111-4a0a-9e1a-000000000001", 7, "CMD-001", 3, 4, shipTo, items, decimal.NewFromInt(1500), "XAF")
	require.NoError(t, err)
	return o
}

func TestNewOrder_Totals(t *testing.T) {
	o := newTestOrder(t)

	assert.True(t, decimal.NewFromInt(29000).Equal(o.Subtotal))
	assert.True(t, decimal.NewFromInt(30500).Equal(o.Total))
	assert.Equal(t, OrderStatusPendingPayment, o.Status)
}

func TestNewOrder_Validation(t *testing.T) {
	shipTo := &Address{Street1: "x", City: "y", Country: "CM"}
	item := []*Item{{ProductID: 1, Quantity: 1, UnitPrice: decimal.NewFromInt(1)}}

	_, err := NewOrder("", 1, "A", 1, 1, shipTo, item, decimal.Zero, "XAF")
	assert.ErrorIs(t, err, ErrInvalidOrderID)

	_, err = NewOrder("id", 0, "A", 1, 1, shipTo, item, decimal.Zero, "XAF")
	assert.ErrorIs(t, err, ErrInvalidAccountID)

	_, err = NewOrder("id", 1, "", 1, 1, shipTo, item, decimal.Zero, "XAF")
	assert.ErrorIs(t, err, ErrInvalidMerchantOrderNo)

	_, err = NewOrder("id", 1, "A", 1, 1, &Address{}, item, decimal.Zero, "XAF")
	assert.ErrorIs(t, err, ErrInvalidShipTo)

	_, err = NewOrder("id", 1, "A", 1, 1, shipTo, nil, decimal.Zero, "XAF")
	assert.ErrorIs(t, err, ErrEmptyItems)

	_, err = NewOrder("id", 1, "A", 1, 1, shipTo, []*Item{{Quantity: 0}}, decimal.Zero, "XAF")
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = NewOrder("id", 1, "A", 1, 1, shipTo, item, decimal.NewFromInt(-1), "XAF")
	assert.ErrorIs(t, err, ErrNegativeShippingCost)
}

func TestOrder_MarkPaid(t *testing.T) {
	o := newTestOrder(t)

	assert.ErrorIs(t, o.MarkPaid("mtn_momo", "TX1", decimal.NewFromInt(30000)), ErrAmountMismatch)
	assert.Equal(t, OrderStatusPendingPayment, o.Status)

	require.NoError(t, o.MarkPaid("mtn_momo", "TX1", decimal.NewFromInt(30500)))
	assert.Equal(t, OrderStatusPaid, o.Status)
	assert.True(t, o.Status.IsTerminal())

	assert.ErrorIs(t, o.MarkPaid("mtn_momo", "TX1", decimal.NewFromInt(30500)), ErrInvalidTransition)
	assert.ErrorIs(t, o.MarkPaymentFailed("mtn_momo", "late"), ErrInvalidTransition)
}

func TestOrder_MarkPaymentFailed(t *testing.T) {
	o := newTestOrder(t)

	require.NoError(t, o.MarkPaymentFailed("orange_money", "insufficient balance"))
	assert.Equal(t, OrderStatusPaymentFailed, o.Status)
	assert.Equal(t, "insufficient balance", o.PaymentReference)
	assert.ErrorIs(t, o.MarkPaid("orange_money", "TX", o.Total), ErrInvalidTransition)
}
