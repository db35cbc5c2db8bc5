package rpproduct

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/marxiobadel/farmer-sub002/common/entity"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etproduct"
)

// ProductRepositoryImpl 商品仓储实现（MySQL）
type ProductRepositoryImpl struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓储实例
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

// Create 创建商品
func (r *ProductRepositoryImpl) Create(ctx context.Context, product *etproduct.Product) error {
	return r.db.WithContext(ctx).Create(toGormModel(product)).Error
}

// GetByID 查询商品
func (r *ProductRepositoryImpl) GetByID(ctx context.Context, productID int64) (*etproduct.Product, error) {
	var po entity.Product
	err := r.db.WithContext(ctx).Where("id = ?", productID).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id=%d", etproduct.ErrProductNotFound, productID)
		}
		return nil, err
	}
	return toDomainModel(&po), nil
}

// GetByIDs 批量查询商品
func (r *ProductRepositoryImpl) GetByIDs(ctx context.Context, productIDs []int64) (map[int64]*etproduct.Product, error) {
	result := make(map[int64]*etproduct.Product, len(productIDs))
	if len(productIDs) == 0 {
		return result, nil
	}

	var pos []entity.Product
	if err := r.db.WithContext(ctx).Where("id IN ?", productIDs).Find(&pos).Error; err != nil {
		return nil, err
	}
	for i := range pos {
		result[pos[i].ID] = toDomainModel(&pos[i])
	}
	return result, nil
}

func toGormModel(p *etproduct.Product) *entity.Product {
	return &entity.Product{
		ID:        p.ID,
		SKU:       p.SKU,
		Name:      p.Name,
		Price:     p.Price,
		Weight:    p.Weight,
		Length:    p.Length,
		Width:     p.Width,
		Height:    p.Height,
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
	}
}

func toDomainModel(po *entity.Product) *etproduct.Product {
	return &etproduct.Product{
		ID:        po.ID,
		SKU:       po.SKU,
		Name:      po.Name,
		Price:     po.Price,
		Weight:    po.Weight,
		Length:    po.Length,
		Width:     po.Width,
		Height:    po.Height,
		Active:    po.Active,
		CreatedAt: po.CreatedAt,
	}
}
