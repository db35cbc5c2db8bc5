package mdaccount

import (
	"context"
	"fmt"

	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etaccount"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/repo/rpaccount"
)

// AccountModule 账号模块
type AccountModule struct {
	accountRepo rpaccount.AccountRepository
}

// NewAccountModule 创建账号模块
func NewAccountModule(accountRepo rpaccount.AccountRepository) *AccountModule {
	return &AccountModule{
		accountRepo: accountRepo,
	}
}

// RegisterAccount 邮箱唯一，重复时返回 etaccount.ErrDuplicateEmail
func (m *AccountModule) RegisterAccount(ctx context.Context, account *etaccount.Account) error {
	existing, err := m.accountRepo.GetByEmail(ctx, account.Email)
	if err != nil {
		return fmt.Errorf("check email duplicate failed: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("%w: %s", etaccount.ErrDuplicateEmail, account.Email)
	}
	return m.accountRepo.Create(ctx, account)
}

// GetAccount 查询账号
func (m *AccountModule) GetAccount(ctx context.Context, accountID int64) (*etaccount.Account, error) {
	return m.accountRepo.GetByID(ctx, accountID)
}
