package ginx

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/marxiobadel/farmer-sub002/internal/app/pkg/errorx"
)

// CodePending Smart Wait 超时，支付结果仍未到达
const CodePending = 3001

// Response 统一响应结构
type Response struct {
	Meta Meta        `json:"meta"`
	Data interface{} `json:"data,omitempty"`
}

// Meta 元数据
type Meta struct {
	Code    int           `json:"code" example:"200"`
	Message string        `json:"message" example:"OK"`
	Details []ErrorDetail `json:"details,omitempty"`
}

// ErrorDetail 错误详情
type ErrorDetail struct {
	Path string `json:"path" example:"country"`
	Info string `json:"info" example:"country is required"`
}

// PendingData Smart Wait 超时返回的数据
type PendingData struct {
	OrderID string      `json:"order_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	PollURL string      `json:"poll_url" example:"/api/v1/orders/550e8400-e29b-41d4-a716-446655440000/payment"`
	Order   interface{} `json:"order,omitempty"`
}

// Success 成功响应（200）
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Meta: Meta{
			Code:    200,
			Message: "OK",
		},
		Data: data,
	})
}

// Created 创建成功响应（201）
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Meta: Meta{
			Code:    201,
			Message: "Created",
		},
		Data: data,
	})
}

// Error 错误响应
func Error(c *gin.Context, httpCode int, message string) {
	c.JSON(httpCode, Response{
		Meta: Meta{
			Code:    httpCode,
			Message: message,
		},
	})
}

// ErrorWithDetails 带详情的错误响应
func ErrorWithDetails(c *gin.Context, httpCode int, message string, details []ErrorDetail) {
	c.JSON(httpCode, Response{
		Meta: Meta{
			Code:    httpCode,
			Message: message,
			Details: details,
		},
	})
}

// Pending 支付处理中响应（3001），用于 Smart Wait 超时场景
func Pending(c *gin.Context, orderID string, pollURL string, order interface{}) {
	c.JSON(http.StatusOK, Response{
		Meta: Meta{
			Code:    CodePending,
			Message: "Payment is still pending, please poll for the result",
		},
		Data: PendingData{
			OrderID: orderID,
			PollURL: pollURL,
			Order:   order,
		},
	})
}

// Fail 根据错误类型输出对应状态码，并记录到 gin.Context 供中间件使用
func Fail(c *gin.Context, err error) {
	_ = c.Error(err)

	be := errorx.FromError(err)
	if len(be.Details) == 0 {
		Error(c, be.Code, be.Message)
		return
	}

	details := make([]ErrorDetail, 0, len(be.Details))
	for _, d := range be.Details {
		details = append(details, ErrorDetail{Path: d.Path, Info: d.Info})
	}
	ErrorWithDetails(c, be.Code, be.Message, details)
}

// BadRequest 400 错误
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// BadRequestWithValidation 400 错误（带验证详情）
func BadRequestWithValidation(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make([]ErrorDetail, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			details = append(details, ErrorDetail{
				Path: fieldErr.Field(),
				Info: getValidationErrorMessage(fieldErr),
			})
		}
		ErrorWithDetails(c, http.StatusBadRequest, "Validation failed", details)
		return
	}

	BadRequest(c, err.Error())
}

// NotFound 404 错误
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError 500 错误
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// getValidationErrorMessage 根据验证错误类型返回友好的错误消息
func getValidationErrorMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fieldErr.Field() + " is required"
	case "email":
		return fieldErr.Field() + " must be a valid email address"
	case "min":
		return fieldErr.Field() + " must be at least " + fieldErr.Param()
	case "max":
		return fieldErr.Field() + " must be at most " + fieldErr.Param()
	case "gt":
		return fieldErr.Field() + " must be greater than " + fieldErr.Param()
	case "gte":
		return fieldErr.Field() + " must be greater than or equal to " + fieldErr.Param()
	case "len":
		return fieldErr.Field() + " must have length " + fieldErr.Param()
	case "oneof":
		return fieldErr.Field() + " must be one of [" + fieldErr.Param() + "]"
	case "dive":
		return fieldErr.Field() + " contains an invalid element"
	default:
		return fieldErr.Field() + " is invalid"
	}
}
