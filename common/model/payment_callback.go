package model

// PaymentCallback 支付结果回调消息（标准化）
// 由支付网关 webhook 归一化后写入回调队列，callback consumer 消费
type PaymentCallback struct {
	RequestID   string `json:"request_id"`          // 链路追踪 ID
	OrderID     string `json:"order_id"`            // 订单 ID
	Provider    string `json:"provider"`            // orange_money / mtn_momo
	Status      string `json:"status"`              // SUCCESS / FAILED
	Reference   string `json:"reference,omitempty"` // 渠道交易流水号
	Amount      string `json:"amount,omitempty"`    // 实付金额（十进制字符串）
	Error       string `json:"error,omitempty"`     // 失败原因
	ProcessedAt int64  `json:"processed_at"`        // 网关处理时间（Unix timestamp）
}

// 回调状态常量
const (
	CallbackStatusSuccess = "SUCCESS"
	CallbackStatusFailed  = "FAILED"
)

// 支付渠道常量
const (
	ProviderOrangeMoney = "orange_money"
	ProviderMTNMoMo     = "mtn_momo"
)

// PaymentNotification 支付结果通知（Redis Pub/Sub，用于 Smart Wait）
type PaymentNotification struct {
	OrderID   string `json:"order_id"`
	Status    string `json:"status"` // PAID / PAYMENT_FAILED
	Reference string `json:"reference,omitempty"`
}

// PaymentChannel 支付通知频道命名规则
func PaymentChannel(orderID string) string {
	return "order:payment:" + orderID
}
