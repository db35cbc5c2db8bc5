package request

import (
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etorder"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etshipping"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/modules/mdproduct"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/services/svcarrier"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/services/svorder"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/services/svproduct"
)

// ToLines 转换购物车行
func ToLines(items []*LineItem) []mdproduct.LineRequest {
	lines := make([]mdproduct.LineRequest, 0, len(items))
	for _, it := range items {
		lines = append(lines, mdproduct.LineRequest{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return lines
}

// ToCreateOrder 将 Request DTO 转换为服务层参数
func (r *CreateOrderRequest) ToCreateOrder() svorder.CreateOrderRequest {
	return svorder.CreateOrderRequest{
		AccountID:       r.AccountID,
		MerchantOrderNo: r.MerchantOrderNo,
		CarrierID:       r.CarrierID,
		ShipTo:          toAddressEntity(r.ShipTo),
		Lines:           ToLines(r.Items),
	}
}

func toAddressEntity(dto *Address) *etorder.Address {
	if dto == nil {
		return nil
	}
	return &etorder.Address{
		ContactName: dto.ContactName,
		Street1:     dto.Street1,
		Street2:     dto.Street2,
		City:        dto.City,
		State:       dto.State,
		PostalCode:  dto.PostalCode,
		Country:     dto.Country,
		Phone:       dto.Phone,
		Email:       dto.Email,
	}
}

// ToInput 未传 active 时默认启用
func (r *CarrierRequest) ToInput() svcarrier.CarrierInput {
	return svcarrier.CarrierInput{
		Name:            r.Name,
		BasePrice:       r.BasePrice,
		FreeShippingMin: r.FreeShippingMin,
		PricingType:     r.PricingType,
		Active:          boolOr(r.Active, true),
	}
}

// ToInputs 转换费率档位，保持提交顺序
func (r *ReplaceRatesRequest) ToInputs() []svcarrier.RateInput {
	inputs := make([]svcarrier.RateInput, 0, len(r.Rates))
	for _, rr := range r.Rates {
		inputs = append(inputs, svcarrier.RateInput{
			Weight:       etshipping.Bound{Min: rr.MinWeight, Max: rr.MaxWeight},
			Price:        etshipping.Bound{Min: rr.MinPrice, Max: rr.MaxPrice},
			Volume:       etshipping.Bound{Min: rr.MinVolume, Max: rr.MaxVolume},
			RatePrice:    rr.RatePrice,
			DeliveryTime: rr.DeliveryTime,
		})
	}
	return inputs
}

// ToInput 转换商品录入参数
func (r *CreateProductRequest) ToInput() svproduct.ProductInput {
	return svproduct.ProductInput{
		SKU:    r.SKU,
		Name:   r.Name,
		Price:  r.Price,
		Weight: r.Weight,
		Length: r.Length,
		Width:  r.Width,
		Height: r.Height,
		Active: boolOr(r.Active, true),
	}
}

// IsActive 区域默认启用
func (r *ZoneRequest) IsActive() bool {
	return boolOr(r.Active, true)
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
