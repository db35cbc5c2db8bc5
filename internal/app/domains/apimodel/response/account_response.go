package response

import "time"

// AccountResponse 账号响应
type AccountResponse struct {
	ID        int64     `json:"id" example:"25610"`
	Name      string    `json:"name" example:"Ana Mbarga"`
	Email     string    `json:"email" example:"ana@shop.cm"`
	Phone     string    `json:"phone,omitempty" example:"+237690000000"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-01T00:00:00Z"`
}
