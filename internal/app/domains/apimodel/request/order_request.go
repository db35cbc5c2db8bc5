package request

// CreateOrderRequest 创建订单请求
// 只接收商品ID与数量，金额与运费全部由服务端计算
type CreateOrderRequest struct {
	AccountID       int64       `json:"account_id" binding:"required,gt=0" example:"25610"`
	MerchantOrderNo string      `json:"merchant_order_no" binding:"required" example:"ORD-20240101-001"`
	CarrierID       int64       `json:"carrier_id" binding:"required,gt=0" example:"7"`
	ShipTo          *Address    `json:"ship_to" binding:"required"`
	Items           []*LineItem `json:"items" binding:"required,min=1,dive,required"`
}

// Address 收货地址
type Address struct {
	ContactName string `json:"contact_name" binding:"required" example:"Ana Mbarga"`
	Street1     string `json:"street1" binding:"required" example:"Rue Joss"`
	Street2     string `json:"street2" example:"Immeuble 3"`
	City        string `json:"city" binding:"required" example:"Douala"`
	State       string `json:"state" example:"Littoral"`
	PostalCode  string `json:"postal_code" example:"00237"`
	Country     string `json:"country" binding:"required,len=2" example:"CM"`
	Phone       string `json:"phone" binding:"required" example:"+237690000000"`
	Email       string `json:"email" binding:"omitempty,email" example:"ana@shop.cm"`
}

// LineItem 购物车行
type LineItem struct {
	ProductID int64 `json:"product_id" binding:"required,gt=0" example:"1"`
	Quantity  int64 `json:"quantity" binding:"required,gt=0" example:"2"`
}
