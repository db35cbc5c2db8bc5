package rpaccount

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/marxiobadel/farmer-sub002/common/entity"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etaccount"
)

// AccountRepositoryImpl 账号仓储实现（MySQL）
type AccountRepositoryImpl struct {
	db *gorm.DB
}

// NewAccountRepository 创建账号仓储实例
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &AccountRepositoryImpl{db: db}
}

// Create 创建账号
func (r *AccountRepositoryImpl) Create(ctx context.Context, account *etaccount.Account) error {
	return r.db.WithContext(ctx).Create(toGormModel(account)).Error
}

// GetByID 根据ID查询账号
func (r *AccountRepositoryImpl) GetByID(ctx context.Context, accountID int64) (*etaccount.Account, error) {
	var po entity.Account
	err := r.db.WithContext(ctx).Where("id = ?", accountID).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, etaccount.ErrAccountNotFound
		}
		return nil, err
	}
	return toDomainModel(&po), nil
}

// GetByEmail 根据邮箱查询账号（用于检查重复）
func (r *AccountRepositoryImpl) GetByEmail(ctx context.Context, email string) (*etaccount.Account, error) {
	var po entity.Account
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toDomainModel(&po), nil
}

// Exists 检查账号是否存在
func (r *AccountRepositoryImpl) Exists(ctx context.Context, accountID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Account{}).Where("id = ?", accountID).Count(&count).Error
	return count > 0, err
}

func toGormModel(a *etaccount.Account) *entity.Account {
	return &entity.Account{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Phone:     a.Phone,
		CreatedAt: a.CreatedAt,
	}
}

// toDomainModel 数据库记录已校验过，直接组装
func toDomainModel(po *entity.Account) *etaccount.Account {
	return &etaccount.Account{
		ID:        po.ID,
		Name:      po.Name,
		Email:     po.Email,
		Phone:     po.Phone,
		CreatedAt: po.CreatedAt,
	}
}
