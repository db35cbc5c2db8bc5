package svaccount

import (
	"context"

	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etaccount"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/modules/mdaccount"
	"github.com/marxiobadel/farmer-sub002/internal/app/pkg/idgen"
)

// AccountService 账号服务，负责账号业务编排
type AccountService struct {
	accountModule *mdaccount.AccountModule
	ids           idgen.Generator
}

// NewAccountService 创建账号服务实例
func NewAccountService(accountModule *mdaccount.AccountModule, ids idgen.Generator) *AccountService {
	return &AccountService{
		accountModule: accountModule,
		ids:           ids,
	}
}

// CreateAccount 创建账号
// 先构造实体完成字段校验，再交给模块做邮箱查重与落库
func (s *AccountService) CreateAccount(ctx context.Context, name, email, phone string) (*etaccount.Account, error) {
	account, err := etaccount.NewAccount(s.ids.NextID(), name, email, phone)
	if err != nil {
		return nil, err
	}

	if err := s.accountModule.RegisterAccount(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// GetAccount 查询账号
func (s *AccountService) GetAccount(ctx context.Context, accountID int64) (*etaccount.Account, error) {
	return s.accountModule.GetAccount(ctx, accountID)
}
