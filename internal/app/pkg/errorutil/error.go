package errorutil

import (
	"errors"
	"fmt"
)

// Error 错误结构（包含可重试标记）
type Error struct {
	Code       int    `json:"code"`
	Message    string `json:"message"`
	Retryable  bool   `json:"retryable"`
	DevDetails string `json:"dev_details,omitempty"`
	cause      error
}

// Error 实现 error 接口
func (e *Error) Error() string {
	return e.Message
}

// Unwrap 返回原始错误
func (e *Error) Unwrap() error {
	return e.cause
}

// Retriable 创建可重试错误（网络错误、数据库暂时不可用等）
func Retriable(message string, cause error) *Error {
	e := &Error{
		Code:      500,
		Message:   message,
		Retryable: true,
		cause:     cause,
	}
	if cause != nil {
		e.DevDetails = cause.Error()
	}
	return e
}

// NonRetriable 创建不可重试错误（消息格式错误、业务规则错误等）
func NonRetriable(message string, cause error) *Error {
	e := &Error{
		Code:      400,
		Message:   message,
		Retryable: false,
		cause:     cause,
	}
	if cause != nil {
		e.DevDetails = cause.Error()
	}
	return e
}

// Wrap 包装错误，未标记的错误视为可重试
func Wrap(err error) *Error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) {
		return e
	}

	return &Error{
		Code:       500,
		Message:    err.Error(),
		Retryable:  true,
		DevDetails: fmt.Sprintf("%+v", err),
		cause:      err,
	}
}

// IsRetryable 判断错误是否需要重新投递
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	return Wrap(err).Retryable
}
