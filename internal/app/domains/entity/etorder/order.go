package etorder

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// 错误定义
var (
	ErrInvalidOrderID         = errors.New("order ID cannot be empty")
	ErrInvalidAccountID       = errors.New("invalid account ID")
	ErrInvalidMerchantOrderNo = errors.New("merchant order number cannot be empty")
	ErrInvalidShipTo          = errors.New("invalid ship-to address")
	ErrEmptyItems             = errors.New("order must contain at least one item")
	ErrInvalidQuantity        = errors.New("item quantity must be positive")
	ErrNegativeShippingCost   = errors.New("shipping cost cannot be negative")
	ErrInvalidTransition      = errors.New("invalid order status transition")
	ErrAmountMismatch         = errors.New("paid amount does not match order total")
)

// Order 订单聚合根（领域对象）
type Order struct {
	ID               string          // 订单ID (UUID)
	AccountID        int64           // 账户ID
	MerchantOrderNo  string          // 商户订单号（同一账户内幂等键）
	CarrierID        int64           // 承运商
	ZoneID           int64           // 配送区域
	ShipTo           *Address        // 收货地址
	Items            []*Item         // 商品行
	Subtotal         decimal.Decimal // 商品小计
	ShippingCost     decimal.Decimal // 运费（下单时确定，之后不再变化）
	Total            decimal.Decimal // 应付总额
	Currency         string          // 币种
	Status           OrderStatus     // 订单状态
	PaymentProvider  string          // 支付渠道
	PaymentReference string          // 渠道流水号或失败原因
	CreatedAt        time.Time       // 创建时间
	UpdatedAt        time.Time       // 更新时间
}

// OrderStatus 订单状态
type OrderStatus string

const (
	OrderStatusPendingPayment OrderStatus = "PENDING_PAYMENT"
	OrderStatusPaid           OrderStatus = "PAID"
	OrderStatusPaymentFailed  OrderStatus = "PAYMENT_FAILED"
)

// IsTerminal 是否为终态
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusPaid || s == OrderStatusPaymentFailed
}

// Address 地址（值对象）
type Address struct {
	ContactName string `json:"contact_name"`
	Street1     string `json:"street1"`
	Street2     string `json:"street2,omitempty"`
	City        string `json:"city"`
	State       string `json:"state,omitempty"`
	PostalCode  string `json:"postal_code,omitempty"`
	Country     string `json:"country"`
	Phone       string `json:"phone"`
	Email       string `json:"email,omitempty"`
}

// Item 商品行（值对象，价格取下单时快照）
type Item struct {
	ProductID int64           `json:"product_id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// LineTotal 行小计
func (i *Item) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(i.Quantity))
}

// NewOrder 创建订单（工厂方法）
// shippingCost 由运费引擎计算后传入，订单生命周期内不可变
func NewOrder(id string, accountID int64, merchantOrderNo string, carrierID, zoneID int64, shipTo *Address, items []*Item, shippingCost decimal.Decimal, currency string) (*Order, error) {
	// 业务规则校验
	if id == "" {
		return nil, ErrInvalidOrderID
	}
	if accountID <= 0 {
		return nil, ErrInvalidAccountID
	}
	if merchantOrderNo == "" {
		return nil, ErrInvalidMerchantOrderNo
	}
	if shipTo == nil || shipTo.Country == "" || shipTo.Street1 == "" || shipTo.City == "" {
		return nil, ErrInvalidShipTo
	}
	if len(items) == 0 {
		return nil, ErrEmptyItems
	}
	if shippingCost.IsNegative() {
		return nil, ErrNegativeShippingCost
	}

	subtotal := decimal.Zero
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		subtotal = subtotal.Add(item.LineTotal())
	}

	now := time.Now()
	return &Order{
		ID:              id,
		AccountID:       accountID,
		MerchantOrderNo: merchantOrderNo,
		CarrierID:       carrierID,
		ZoneID:          zoneID,
		ShipTo:          shipTo,
		Items:           items,
		Subtotal:        subtotal,
		ShippingCost:    shippingCost,
		Total:           subtotal.Add(shippingCost),
		Currency:        currency,
		Status:          OrderStatusPendingPayment,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// MarkPaid 标记为已支付（领域行为）
func (o *Order) MarkPaid(provider, reference string, amount decimal.Decimal) error {
	if o.Status != OrderStatusPendingPayment {
		return ErrInvalidTransition
	}
	if !amount.Equal(o.Total) {
		return ErrAmountMismatch
	}
	o.Status = OrderStatusPaid
	o.PaymentProvider = provider
	o.PaymentReference = reference
	o.UpdatedAt = time.Now()
	return nil
}

// MarkPaymentFailed 标记为支付失败（领域行为）
func (o *Order) MarkPaymentFailed(provider, reason string) error {
	if o.Status != OrderStatusPendingPayment {
		return ErrInvalidTransition
	}
	o.Status = OrderStatusPaymentFailed
	o.PaymentProvider = provider
	o.PaymentReference = reason
	o.UpdatedAt = time.Now()
	return nil
}
