package etaccount

import (
	"errors"
	"strings"
	"time"
)

// 错误定义
var (
	ErrInvalidAccountID = errors.New("invalid account ID")
	ErrInvalidName      = errors.New("account name cannot be empty")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrAccountNotFound  = errors.New("account not found")
	ErrDuplicateEmail   = errors.New("email already exists")
)

// Account 顾客账号
type Account struct {
	ID        int64     // 账号ID
	Name      string    // 姓名
	Email     string    // 邮箱
	Phone     string    // 移动支付手机号
	CreatedAt time.Time // 创建时间
}

// NewAccount 创建账号（工厂方法）
func NewAccount(id int64, name, email, phone string) (*Account, error) {
	if id < 0 {
		return nil, ErrInvalidAccountID
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidName
	}
	if !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}

	return &Account{
		ID:        id,
		Name:      strings.TrimSpace(name),
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Phone:     strings.TrimSpace(phone),
		CreatedAt: time.Now(),
	}, nil
}
