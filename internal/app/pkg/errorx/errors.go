package errorx

import (
	"errors"
	"net/http"

	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etaccount"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etorder"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etproduct"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etshipping"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etzone"
)

// 定义业务错误
var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrDuplicateOrder   = errors.New("duplicate order")
	ErrCarrierNotFound  = errors.New("carrier not found")
	ErrCarrierInactive  = errors.New("carrier is not active")
	ErrNoCarrierOptions = errors.New("no carrier can ship to destination")
)

// BusinessError 业务错误结构
type BusinessError struct {
	Code    int
	Message string
	Details []ErrorDetail
}

// ErrorDetail 错误详情
type ErrorDetail struct {
	Path string
	Info string
}

// Error 实现 error 接口
func (e *BusinessError) Error() string {
	return e.Message
}

// NewBusinessError 创建业务错误
func NewBusinessError(code int, message string) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
	}
}

var notFound = []error{
	ErrOrderNotFound,
	ErrCarrierNotFound,
	etaccount.ErrAccountNotFound,
	etproduct.ErrProductNotFound,
	etzone.ErrZoneNotFound,
}

var conflict = []error{
	ErrDuplicateOrder,
	etaccount.ErrDuplicateEmail,
	etorder.ErrInvalidTransition,
}

var unprocessable = []error{
	ErrCarrierInactive,
	ErrNoCarrierOptions,
	etshipping.ErrCarrierUnavailable,
	etshipping.ErrRatesOnFixedCarrier,
	etshipping.ErrPricingTypeInUse,
	etproduct.ErrProductInactive,
	etorder.ErrAmountMismatch,
}

var badRequest = []error{
	etshipping.ErrInvalidPricingType,
	etshipping.ErrInvalidMetric,
	etshipping.ErrInvalidCarrierID,
	etshipping.ErrInvalidCarrierName,
	etshipping.ErrNegativeBasePrice,
	etshipping.ErrNegativeFreeShipping,
	etshipping.ErrRateCarrierMismatch,
	etshipping.ErrInvalidBound,
	etshipping.ErrNegativeBound,
	etshipping.ErrNegativeRatePrice,
	etzone.ErrInvalidZoneName,
	etzone.ErrEmptyCountries,
	etzone.ErrInvalidCountryCode,
	etproduct.ErrInvalidSKU,
	etproduct.ErrInvalidName,
	etproduct.ErrNegativeAttribute,
	etproduct.ErrEmptyCart,
	etproduct.ErrInvalidQuantity,
	etorder.ErrInvalidOrderID,
	etorder.ErrInvalidAccountID,
	etorder.ErrInvalidMerchantOrderNo,
	etorder.ErrInvalidShipTo,
	etorder.ErrEmptyItems,
	etorder.ErrInvalidQuantity,
	etorder.ErrNegativeShippingCost,
	etaccount.ErrInvalidAccountID,
	etaccount.ErrInvalidName,
	etaccount.ErrInvalidEmail,
}

// FromError 将领域错误映射为带 HTTP 状态码的业务错误
// 无法识别的错误返回 500，消息不外泄
func FromError(err error) *BusinessError {
	if err == nil {
		return nil
	}

	var be *BusinessError
	if errors.As(err, &be) {
		return be
	}

	switch {
	case matchAny(err, notFound):
		return NewBusinessError(http.StatusNotFound, err.Error())
	case matchAny(err, conflict):
		return NewBusinessError(http.StatusConflict, err.Error())
	case matchAny(err, unprocessable):
		return NewBusinessError(http.StatusUnprocessableEntity, err.Error())
	case matchAny(err, badRequest):
		return NewBusinessError(http.StatusBadRequest, err.Error())
	default:
		return NewBusinessError(http.StatusInternalServerError, "internal server error")
	}
}

func matchAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
