package request

// CreateAccountRequest 创建账号请求（DTO）
type CreateAccountRequest struct {
	Name  string `json:"name" binding:"required" example:"Ana Mbarga"`
	Email string `json:"email" binding:"required,email" example:"ana@shop.cm"`
	Phone string `json:"phone" example:"+237690000000"`
}
