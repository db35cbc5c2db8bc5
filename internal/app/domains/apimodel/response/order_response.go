package response

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderResponse 订单响应（DTO）
type OrderResponse struct {
	ID               string          `json:"id"`
	AccountID        int64           `json:"account_id"`
	MerchantOrderNo  string          `json:"merchant_order_no"`
	CarrierID        int64           `json:"carrier_id"`
	ZoneID           int64           `json:"zone_id"`
	ShipTo           *Address        `json:"ship_to"`
	Items            []*OrderItem    `json:"items"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	ShippingCost     decimal.Decimal `json:"shipping_cost"`
	Total            decimal.Decimal `json:"total"`
	Currency         string          `json:"currency"`
	Status           string          `json:"status"`
	PaymentProvider  string          `json:"payment_provider,omitempty"`
	PaymentReference string          `json:"payment_reference,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// Address 收货地址（DTO）
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

// OrderItem 订单商品行（DTO）
type OrderItem struct {
	ProductID int64           `json:"product_id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// OrderListResponse 订单列表
type OrderListResponse struct {
	Orders []*OrderResponse `json:"orders"`
	Total  int64            `json:"total"`
	Page   int              `json:"page"`
	Limit  int              `json:"limit"`
}
