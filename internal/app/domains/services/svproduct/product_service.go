package svproduct

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etproduct"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/modules/mdproduct"
	"github.com/marxiobadel/farmer-sub002/internal/app/pkg/idgen"
)

// ProductInput 商品录入参数
type ProductInput struct {
	SKU    string
	Name   string
	Price  decimal.Decimal
	Weight decimal.Decimal
	Length decimal.Decimal
	Width  decimal.Decimal
	Height decimal.Decimal
	Active bool
}

// ProductService 商品服务
type ProductService struct {
	productModule *mdproduct.ProductModule
	ids           idgen.Generator
}

// NewProductService 创建商品服务
func NewProductService(productModule *mdproduct.ProductModule, ids idgen.Generator) *ProductService {
	return &ProductService{productModule: productModule, ids: ids}
}

// CreateProduct 创建商品
func (s *ProductService) CreateProduct(ctx context.Context, in ProductInput) (*etproduct.Product, error) {
	product, err := etproduct.NewProduct(s.ids.NextID(), in.SKU, in.Name, in.Price, in.Weight, in.Length, in.Width, in.Height, in.Active)
	if err != nil {
		return nil, err
	}
	if err := s.productModule.CreateProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("save product failed: %w", err)
	}
	return product, nil
}

// GetProduct 查询商品
func (s *ProductService) GetProduct(ctx context.Context, productID int64) (*etproduct.Product, error) {
	return s.productModule.GetProduct(ctx, productID)
}
