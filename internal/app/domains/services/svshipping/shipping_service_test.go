package svshipping

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etproduct"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etshipping"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etzone"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/modules/mdproduct"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/modules/mdshipping"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/repo/mocks"
	"github.com/marxiobadel/farmer-sub002/internal/app/pkg/errorx"
	"github.com/marxiobadel/farmer-sub002/internal/app/pkg/logger"
)

type fixture struct {
	carriers *mocks.CarrierRepository
	zones    *mocks.ZoneRepository
	products *mocks.ProductRepository
	zone     *etzone.Zone
}

func setup(t *testing.T, freeWhenMissing bool) (*fixture, *ShippingService) {
	t.Helper()
	f := &fixture{
		carriers: mocks.NewCarrierRepository(t),
		zones:    mocks.NewZoneRepository(t),
		products: mocks.NewProductRepository(t),
	}
	zone, err := etzone.NewZone(2, "Cameroun", []string{"CM"}, true)
	require.NoError(t, err)
	f.zone = zone

	log := logger.NewNopLogger()
	svc := NewShippingService(
		mdshipping.NewShippingModule(f.carriers, f.zones, nil, 0, log),
		mdproduct.NewProductModule(f.products),
		freeWhenMissing,
		log,
	)
	return f, svc
}

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func carrier(t *testing.T, id int64, name string, base int64, freeMin *decimal.Decimal, pricing string, active bool) *etshipping.Carrier {
	t.Helper()
	c, err := etshipping.NewCarrier(id, name, decimal.NewFromInt(base), freeMin, pricing, active)
	require.NoError(t, err)
	return c
}

// 购物车：2 x 3kg，单价 2500 => weight 6, price 5000
func (f *fixture) expectCart(t *testing.T) []mdproduct.LineRequest {
	t.Helper()
	p, err := etproduct.NewProduct(1, "CAC-3", "Cacao 3kg", decimal.NewFromInt(2500), decimal.NewFromInt(3),
		decimal.NewFromInt(20), decimal.NewFromInt(10), decimal.NewFromInt(10), true)
	require.NoError(t, err)

	f.zones.On("FindByCountry", mock.Anything, "CM").Return(f.zone, nil)
	f.products.On("GetByIDs", mock.Anything, []int64{1}).Return(map[int64]*etproduct.Product{1: p}, nil)
	return []mdproduct.LineRequest{{ProductID: 1, Quantity: 2}}
}

func weightRates() []etshipping.Rate {
	zone2, zone9 := int64(2), int64(9)
	return []etshipping.Rate{
		{ID: 1, CarrierID: 7, ZoneID: &zone9, RatePrice: decimal.NewFromInt(99), DeliveryTime: "1 day"},
		{ID: 2, CarrierID: 7, ZoneID: &zone2, Weight: etshipping.Bound{Max: dec(5)}, RatePrice: decimal.NewFromInt(500), DeliveryTime: "1-2 days"},
		{ID: 3, CarrierID: 7, Weight: etshipping.Bound{Min: dec(5)}, RatePrice: decimal.NewFromInt(1500), DeliveryTime: "3-5 days"},
	}
}

func TestQuote_ZoneScopedTierMatch(t *testing.T) {
	f, svc := setup(t, false)
	lines := f.expectCart(t)

	f.carriers.On("GetByID", mock.Anything, int64(7)).Return(carrier(t, 7, "Express", 1000, nil, "weight", true), nil)
	f.carriers.On("ListRates", mock.Anything, int64(7)).Return(weightRates(), nil)

	quote, err := svc.Quote(context.Background(), 7, "CM", lines)
	require.NoError(t, err)

	assert.True(t, quote.Cost.Equal(decimal.NewFromInt(2500)), "got %s", quote.Cost)
	assert.Equal(t, etshipping.OutcomeTierMatched, quote.Outcome)
	assert.Equal(t, "3-5 days", quote.DeliveryTime)
	assert.Equal(t, int64(2), quote.ZoneID)
	assert.False(t, quote.Free)
}

func TestQuote_MissingCarrier(t *testing.T) {
	t.Run("reject policy", func(t *testing.T) {
		f, svc := setup(t, false)
		lines := f.expectCart(t)
		f.carriers.On("GetByID", mock.Anything, int64(99)).Return(nil, nil)

		_, err := svc.Quote(context.Background(), 99, "CM", lines)
		assert.ErrorIs(t, err, etshipping.ErrCarrierUnavailable)
	})

	t.Run("free policy", func(t *testing.T) {
		f, svc := setup(t, true)
		lines := f.expectCart(t)
		f.carriers.On("GetByID", mock.Anything, int64(99)).Return(nil, nil)

		quote, err := svc.Quote(context.Background(), 99, "CM", lines)
		require.NoError(t, err)
		assert.True(t, quote.Cost.IsZero())
		assert.Equal(t, etshipping.OutcomeUnavailable, quote.Outcome)
		assert.Equal(t, int64(99), quote.CarrierID)
	})
}

func TestQuote_InactiveCarrier(t *testing.T) {
	f, svc := setup(t, false)
	lines := f.expectCart(t)
	f.carriers.On("GetByID", mock.Anything, int64(7)).Return(carrier(t, 7, "Express", 1000, nil, "fixed", false), nil)
	f.carriers.On("ListRates", mock.Anything, int64(7)).Return([]etshipping.Rate{}, nil)

	_, err := svc.Quote(context.Background(), 7, "CM", lines)
	assert.ErrorIs(t, err, errorx.ErrCarrierInactive)
}

func TestQuote_UnknownDestination(t *testing.T) {
	f, svc := setup(t, false)
	f.zones.On("FindByCountry", mock.Anything, "FR").Return(nil, etzone.ErrZoneNotFound)

	_, err := svc.Quote(context.Background(), 7, "FR", []mdproduct.LineRequest{{ProductID: 1, Quantity: 1}})
	assert.ErrorIs(t, err, etzone.ErrZoneNotFound)
}

func TestQuoteOptions_TagsAndRecommendation(t *testing.T) {
	f, svc := setup(t, false)
	lines := f.expectCart(t)

	express := carrier(t, 7, "Express", 1000, nil, "weight", true)
	flat := carrier(t, 8, "Flat", 2500, nil, "fixed", true)
	promo := carrier(t, 9, "Promo", 800, dec(4000), "price", true)

	f.carriers.On("List", mock.Anything, true).Return([]*etshipping.Carrier{express, flat, promo}, nil)
	f.carriers.On("GetByID", mock.Anything, int64(7)).Return(express, nil)
	f.carriers.On("GetByID", mock.Anything, int64(8)).Return(flat, nil)
	f.carriers.On("GetByID", mock.Anything, int64(9)).Return(promo, nil)
	f.carriers.On("ListRates", mock.Anything, int64(7)).Return(weightRates(), nil)
	f.carriers.On("ListRates", mock.Anything, int64(8)).Return([]etshipping.Rate{}, nil)
	f.carriers.On("ListRates", mock.Anything, int64(9)).Return([]etshipping.Rate{
		{ID: 20, CarrierID: 9, RatePrice: decimal.NewFromInt(300), DeliveryTime: "24h"},
	}, nil)

	opts, err := svc.QuoteOptions(context.Background(), "CM", lines)
	require.NoError(t, err)
	require.Len(t, opts.Quotes, 3)

	// price 5000 >= 4000：Promo 包邮，免运费优先于档位
	assert.True(t, opts.Quotes[2].Free)
	assert.True(t, opts.Quotes[2].Cost.IsZero())
	assert.Empty(t, opts.Quotes[2].DeliveryTime)
	assert.Equal(t, []string{TagCheapest}, opts.Quotes[2].Tags)

	assert.Equal(t, []string{TagFastest}, opts.Quotes[0].Tags)
	assert.Empty(t, opts.Quotes[1].Tags)
	assert.True(t, opts.Quotes[1].Cost.Equal(decimal.NewFromInt(2500)))
	assert.Equal(t, etshipping.OutcomeFixed, opts.Quotes[1].Outcome)

	assert.Equal(t, int64(9), opts.RecommendedCarrier)
	assert.True(t, opts.Metrics.Weight.Equal(decimal.NewFromInt(6)))
}

func TestQuoteOptions_NoCarriers(t *testing.T) {
	f, svc := setup(t, false)
	lines := f.expectCart(t)
	f.carriers.On("List", mock.Anything, true).Return([]*etshipping.Carrier{}, nil)

	_, err := svc.QuoteOptions(context.Background(), "CM", lines)
	assert.ErrorIs(t, err, errorx.ErrNoCarrierOptions)
}

func TestLeadingDays(t *testing.T) {
	tests := []struct {
		in   string
		days int
		ok   bool
	}{
		{"2-3 days", 2, true},
		{"5 jours", 5, true},
		{"24h", 1, true},
		{"48 hours", 2, true},
		{"7", 7, true},
		{"", 0, false},
		{"next week", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			days, ok := LeadingDays(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.days, days)
		})
	}
}
