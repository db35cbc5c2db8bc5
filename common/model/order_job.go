package model

// OrderPlacedJob 下单成功后投递的任务消息（标准化）
// 用于 apiserver → 下游（发票、通知等）的消息传递
type OrderPlacedJob struct {
	Payload OrderPlacedPayload `json:"payload"`
}

// OrderPlacedPayload Job 负载
type OrderPlacedPayload struct {
	Data OrderPlacedData `json:"data"`
}

// OrderPlacedData Job 数据层
type OrderPlacedData struct {
	// 元信息
	RequestID  string `json:"request_id"`  // 请求 ID（全链路追踪）
	ActionType string `json:"action_type"` // 动作类型，固定值 "order_placed"
	ID         string `json:"id"`          // 订单 ID

	// 业务数据
	Data OrderPlacedBusinessData `json:"data"`
}

// OrderPlacedBusinessData 订单业务数据，金额均为字符串形式的十进制数
type OrderPlacedBusinessData struct {
	OrderID         string `json:"order_id"`
	AccountID       int64  `json:"account_id"`
	MerchantOrderNo string `json:"merchant_order_no"`
	CarrierID       int64  `json:"carrier_id"`
	ZoneID          int64  `json:"zone_id"`
	Subtotal        string `json:"subtotal"`
	ShippingCost    string `json:"shipping_cost"`
	Total           string `json:"total"`
	Currency        string `json:"currency"`
}

// ActionTypeOrderPlaced 下单动作类型
const ActionTypeOrderPlaced = "order_placed"
