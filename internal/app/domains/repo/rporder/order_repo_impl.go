package rporder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/marxiobadel/farmer-sub002/common/entity"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etorder"
	"github.com/marxiobadel/farmer-sub002/internal/app/pkg/errorx"
)

// OrderRepositoryImpl 订单仓储实现（MySQL）
type OrderRepositoryImpl struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储实例
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &OrderRepositoryImpl{db: db}
}

// Create 创建订单，将领域对象转换为 GORM 模型后在事务中写入
func (r *OrderRepositoryImpl) Create(ctx context.Context, order *etorder.Order) error {
	po, err := toGormModel(order)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(po).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: merchant_order_no=%s", errorx.ErrDuplicateOrder, order.MerchantOrderNo)
			}
			return err
		}
		return nil
	})
}

// GetByID 根据ID查询订单，将 GORM 模型转换为领域对象
func (r *OrderRepositoryImpl) GetByID(ctx context.Context, orderID string) (*etorder.Order, error) {
	var po entity.Order
	err := r.db.WithContext(ctx).Where("id = ?", orderID).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id=%s", errorx.ErrOrderNotFound, orderID)
		}
		return nil, err
	}
	return toDomainModel(&po)
}

// GetByAccountAndMerchantNo 根据账号ID和商户订单号查询（用于检查重复）
func (r *OrderRepositoryImpl) GetByAccountAndMerchantNo(ctx context.Context, accountID int64, merchantOrderNo string) (*etorder.Order, error) {
	var po entity.Order
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND merchant_order_no = ?", accountID, merchantOrderNo).
		First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toDomainModel(&po)
}

// ApplyPayment 条件更新，保证同一订单只被终结一次
func (r *OrderRepositoryImpl) ApplyPayment(ctx context.Context, order *etorder.Order) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&entity.Order{}).
		Where("id = ? AND status = ?", order.ID, entity.OrderStatusPendingPayment).
		Updates(map[string]interface{}{
			"status":            string(order.Status),
			"payment_provider":  order.PaymentProvider,
			"payment_reference": order.PaymentReference,
			"updated_at":        order.UpdatedAt,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// List 分页查询订单列表
func (r *OrderRepositoryImpl) List(ctx context.Context, accountID int64, page, limit int) ([]*etorder.Order, int64, error) {
	var total int64
	var pos []entity.Order

	query := r.db.WithContext(ctx).Model(&entity.Order{})
	if accountID > 0 {
		query = query.Where("account_id = ?", accountID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("created_at DESC").Find(&pos).Error; err != nil {
		return nil, 0, err
	}

	orders := make([]*etorder.Order, 0, len(pos))
	for i := range pos {
		order, err := toDomainModel(&pos[i])
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, order)
	}

	return orders, total, nil
}

// toGormModel 领域对象转换为 GORM 模型
func toGormModel(order *etorder.Order) (*entity.Order, error) {
	shipToJSON, err := json.Marshal(order.ShipTo)
	if err != nil {
		return nil, err
	}
	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return nil, err
	}

	return &entity.Order{
		ID:               order.ID,
		AccountID:        order.AccountID,
		MerchantOrderNo:  order.MerchantOrderNo,
		CarrierID:        order.CarrierID,
		ZoneID:           order.ZoneID,
		ShipTo:           shipToJSON,
		Items:            itemsJSON,
		Subtotal:         order.Subtotal,
		ShippingCost:     order.ShippingCost,
		Total:            order.Total,
		Currency:         order.Currency,
		Status:           string(order.Status),
		PaymentProvider:  order.PaymentProvider,
		PaymentReference: order.PaymentReference,
		CreatedAt:        order.CreatedAt,
		UpdatedAt:        order.UpdatedAt,
	}, nil
}

// toDomainModel GORM 模型转换为领域对象，金额按落库值还原，不重新计算
func toDomainModel(po *entity.Order) (*etorder.Order, error) {
	var shipTo etorder.Address
	if err := json.Unmarshal(po.ShipTo, &shipTo); err != nil {
		return nil, err
	}
	var items []*etorder.Item
	if err := json.Unmarshal(po.Items, &items); err != nil {
		return nil, err
	}

	return &etorder.Order{
		ID:               po.ID,
		AccountID:        po.AccountID,
		MerchantOrderNo:  po.MerchantOrderNo,
		CarrierID:        po.CarrierID,
		ZoneID:           po.ZoneID,
		ShipTo:           &shipTo,
		Items:            items,
		Subtotal:         po.Subtotal,
		ShippingCost:     po.ShippingCost,
		Total:            po.Total,
		Currency:         po.Currency,
		Status:           etorder.OrderStatus(po.Status),
		PaymentProvider:  po.PaymentProvider,
		PaymentReference: po.PaymentReference,
		CreatedAt:        po.CreatedAt,
		UpdatedAt:        po.UpdatedAt,
	}, nil
}
