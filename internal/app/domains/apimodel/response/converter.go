package response

import (
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etaccount"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etorder"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etproduct"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etshipping"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etzone"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/services/svcarrier"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/services/svshipping"
)

// FromOrderEntity 从领域对象转换为响应 DTO
func FromOrderEntity(order *etorder.Order) *OrderResponse {
	resp := &OrderResponse{
		ID:               order.ID,
		AccountID:        order.AccountID,
		MerchantOrderNo:  order.MerchantOrderNo,
		CarrierID:        order.CarrierID,
		ZoneID:           order.ZoneID,
		Items:            make([]*OrderItem, 0, len(order.Items)),
		Subtotal:         order.Subtotal,
		ShippingCost:     order.ShippingCost,
		Total:            order.Total,
		Currency:         order.Currency,
		Status:           string(order.Status),
		PaymentProvider:  order.PaymentProvider,
		PaymentReference: order.PaymentReference,
		CreatedAt:        order.CreatedAt,
		UpdatedAt:        order.UpdatedAt,
	}

	if a := order.ShipTo; a != nil {
		resp.ShipTo = &Address{
			ContactName: a.ContactName,
			Street1:     a.Street1,
			Street2:     a.Street2,
			City:        a.City,
			State:       a.State,
			PostalCode:  a.PostalCode,
			Country:     a.Country,
			Phone:       a.Phone,
			Email:       a.Email,
		}
	}

	for _, item := range order.Items {
		resp.Items = append(resp.Items, &OrderItem{
			ProductID: item.ProductID,
			SKU:       item.SKU,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal(),
		})
	}

	return resp
}

// FromOrderList 订单列表
func FromOrderList(orders []*etorder.Order, total int64, page, limit int) *OrderListResponse {
	resp := &OrderListResponse{
		Orders: make([]*OrderResponse, 0, len(orders)),
		Total:  total,
		Page:   page,
		Limit:  limit,
	}
	for _, o := range orders {
		resp.Orders = append(resp.Orders, FromOrderEntity(o))
	}
	return resp
}

// FromAccountEntity 从领域对象转换为响应 DTO
func FromAccountEntity(account *etaccount.Account) *AccountResponse {
	return &AccountResponse{
		ID:        account.ID,
		Name:      account.Name,
		Email:     account.Email,
		Phone:     account.Phone,
		CreatedAt: account.CreatedAt,
	}
}

// FromQuote 报价
func FromQuote(q *svshipping.ShippingQuote, currency string) *QuoteResponse {
	return &QuoteResponse{
		CarrierID:    q.CarrierID,
		CarrierName:  q.CarrierName,
		ZoneID:       q.ZoneID,
		Cost:         q.Cost,
		Currency:     currency,
		Outcome:      string(q.Outcome),
		Free:         q.Free,
		DeliveryTime: q.DeliveryTime,
		Tags:         q.Tags,
	}
}

// FromOptions 承运商选择
func FromOptions(o *svshipping.ShippingOptions, currency string) *OptionsResponse {
	resp := &OptionsResponse{
		ZoneID: o.ZoneID,
		Metrics: CartMetrics{
			Weight: o.Metrics.Weight,
			Price:  o.Metrics.Price,
			Volume: o.Metrics.Volume,
		},
		Options:            make([]*QuoteResponse, 0, len(o.Quotes)),
		RecommendedCarrier: o.RecommendedCarrier,
	}
	for _, q := range o.Quotes {
		resp.Options = append(resp.Options, FromQuote(q, currency))
	}
	return resp
}

// FromCarrierEntity 承运商
func FromCarrierEntity(c *etshipping.Carrier) *CarrierResponse {
	return &CarrierResponse{
		ID:              c.ID,
		Name:            c.Name,
		BasePrice:       c.BasePrice,
		FreeShippingMin: c.FreeShippingMin,
		PricingType:     string(c.PricingType()),
		Active:          c.Active,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

// FromCarriers 承运商列表
func FromCarriers(carriers []*etshipping.Carrier) []*CarrierResponse {
	out := make([]*CarrierResponse, 0, len(carriers))
	for _, c := range carriers {
		out = append(out, FromCarrierEntity(c))
	}
	return out
}

// FromCarrierDetail 承运商及费率
func FromCarrierDetail(d *svcarrier.CarrierDetail) *CarrierDetailResponse {
	return &CarrierDetailResponse{
		CarrierResponse: FromCarrierEntity(d.Carrier),
		Rates:           FromRates(d.Rates),
	}
}

// FromRates 费率档位
func FromRates(rates []etshipping.Rate) []*RateResponse {
	out := make([]*RateResponse, 0, len(rates))
	for _, r := range rates {
		out = append(out, &RateResponse{
			ID:           r.ID,
			ZoneID:       r.ZoneID,
			MinWeight:    r.Weight.Min,
			MaxWeight:    r.Weight.Max,
			MinPrice:     r.Price.Min,
			MaxPrice:     r.Price.Max,
			MinVolume:    r.Volume.Min,
			MaxVolume:    r.Volume.Max,
			RatePrice:    r.RatePrice,
			DeliveryTime: r.DeliveryTime,
		})
	}
	return out
}

// FromZoneEntity 配送区域
func FromZoneEntity(z *etzone.Zone) *ZoneResponse {
	return &ZoneResponse{
		ID:        z.ID,
		Name:      z.Name,
		Countries: z.Countries,
		Active:    z.Active,
		CreatedAt: z.CreatedAt,
	}
}

// FromZones 区域列表
func FromZones(zones []*etzone.Zone) []*ZoneResponse {
	out := make([]*ZoneResponse, 0, len(zones))
	for _, z := range zones {
		out = append(out, FromZoneEntity(z))
	}
	return out
}

// FromProductEntity 商品
func FromProductEntity(p *etproduct.Product) *ProductResponse {
	return &ProductResponse{
		ID:     p.ID,
		SKU:    p.SKU,
		Name:   p.Name,
		Price:  p.Price,
		Weight: p.Weight,
		Length: p.Length,
		Width:  p.Width,
		Height: p.Height,
		Active: p.Active,
	}
}
