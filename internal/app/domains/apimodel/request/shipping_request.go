package request

// QuoteRequest 结账预览运费
type QuoteRequest struct {
	CarrierID int64       `json:"carrier_id" binding:"required,gt=0" example:"7"`
	Country   string      `json:"country" binding:"required,len=2" example:"CM"`
	Items     []*LineItem `json:"items" binding:"required,min=1,dive,required"`
}

// OptionsRequest 承运商选择
type OptionsRequest struct {
	Country string      `json:"country" binding:"required,len=2" example:"CM"`
	Items   []*LineItem `json:"items" binding:"required,min=1,dive,required"`
}
