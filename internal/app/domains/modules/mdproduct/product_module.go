package mdproduct

import (
	"context"
	"fmt"

	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etproduct"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etshipping"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/repo/rpproduct"
)

// LineRequest 客户端提交的购物车行（只信任商品ID与数量）
type LineRequest struct {
	ProductID int64
	Quantity  int64
}

// CartEntry 已从商品库还原的购物车行
type CartEntry struct {
	Product  *etproduct.Product
	Quantity int64
}

// Cart 购物车及其计价指标
type Cart struct {
	Entries []CartEntry
	Metrics etshipping.CartMetrics
}

// ProductModule 商品模块
type ProductModule struct {
	productRepo rpproduct.ProductRepository
}

// NewProductModule 创建商品模块
func NewProductModule(productRepo rpproduct.ProductRepository) *ProductModule {
	return &ProductModule{productRepo: productRepo}
}

// CreateProduct 创建商品
func (m *ProductModule) CreateProduct(ctx context.Context, product *etproduct.Product) error {
	return m.productRepo.Create(ctx, product)
}

// GetProduct 查询商品
func (m *ProductModule) GetProduct(ctx context.Context, productID int64) (*etproduct.Product, error) {
	return m.productRepo.GetByID(ctx, productID)
}

// LoadCart 按商品库中的价格、重量、尺寸重新计算购物车指标
func (m *ProductModule) LoadCart(ctx context.Context, lines []LineRequest) (*Cart, error) {
	if len(lines) == 0 {
		return nil, etproduct.ErrEmptyCart
	}

	ids := make([]int64, 0, len(lines))
	for i, l := range lines {
		if l.Quantity <= 0 {
			return nil, fmt.Errorf("items[%d]: %w", i, etproduct.ErrInvalidQuantity)
		}
		ids = append(ids, l.ProductID)
	}

	products, err := m.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load products failed: %w", err)
	}

	cart := &Cart{Entries: make([]CartEntry, 0, len(lines))}
	cartLines := make([]etshipping.CartLine, 0, len(lines))
	for _, l := range lines {
		p, ok := products[l.ProductID]
		if !ok {
			return nil, fmt.Errorf("%w: id=%d", etproduct.ErrProductNotFound, l.ProductID)
		}
		if !p.Active {
			return nil, fmt.Errorf("%w: sku=%s", etproduct.ErrProductInactive, p.SKU)
		}
		cart.Entries = append(cart.Entries, CartEntry{Product: p, Quantity: l.Quantity})
		cartLines = append(cartLines, p.Line(l.Quantity))
	}

	cart.Metrics = etshipping.MetricsFromLines(cartLines)
	return cart, nil
}
