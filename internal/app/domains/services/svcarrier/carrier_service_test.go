package svcarrier

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etshipping"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etzone"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/modules/mdshipping"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/modules/mocks"
	repomocks "github.com/marxiobadel/farmer-sub002/internal/app/domains/repo/mocks"
	"github.com/marxiobadel/farmer-sub002/internal/app/pkg/errorx"
	"github.com/marxiobadel/farmer-sub002/internal/app/pkg/logger"
)

type seqIDs struct{ next int64 }

func (s *seqIDs) NextID() int64 {
	s.next++
	return s.next
}

type fixture struct {
	carriers *repomocks.CarrierRepository
	zones    *repomocks.ZoneRepository
	cache    *mocks.RateCache
}

func setup(t *testing.T) (*fixture, *CarrierService) {
	t.Helper()
	f := &fixture{
		carriers: repomocks.NewCarrierRepository(t),
		zones:    repomocks.NewZoneRepository(t),
		cache:    mocks.NewRateCache(t),
	}
	log := logger.NewNopLogger()
	module := mdshipping.NewShippingModule(f.carriers, f.zones, f.cache, 0, log)
	return f, NewCarrierService(module, &seqIDs{next: 100}, log)
}

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func existing(t *testing.T, pricing string) *etshipping.Carrier {
	t.Helper()
	c, err := etshipping.NewCarrier(7, "Express", decimal.NewFromInt(1000), nil, pricing, true)
	require.NoError(t, err)
	return c
}

func TestCreateCarrier(t *testing.T) {
	f, svc := setup(t)
	f.carriers.On("Create", mock.Anything, mock.AnythingOfType("*etshipping.Carrier")).Return(nil)

	c, err := svc.CreateCarrier(context.Background(), CarrierInput{
		Name:        "  Express ",
		BasePrice:   decimal.NewFromInt(1000),
		PricingType: "weight",
		Active:      true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(101), c.ID)
	assert.Equal(t, "Express", c.Name)
	assert.True(t, c.IsTiered())
}

func TestCreateCarrier_Invalid(t *testing.T) {
	_, svc := setup(t)

	_, err := svc.CreateCarrier(context.Background(), CarrierInput{Name: "X", BasePrice: decimal.NewFromInt(-1), PricingType: "fixed"})
	assert.ErrorIs(t, err, etshipping.ErrNegativeBasePrice)
}

func TestUpdateCarrier_InvalidatesCache(t *testing.T) {
	f, svc := setup(t)
	f.carriers.On("GetByID", mock.Anything, int64(7)).Return(existing(t, "weight"), nil)
	f.carriers.On("ListRates", mock.Anything, int64(7)).Return([]etshipping.Rate{}, nil)
	f.carriers.On("Update", mock.Anything, mock.AnythingOfType("*etshipping.Carrier")).Return(nil)
	f.cache.On("Incr", mock.Anything, "shipping:carrier:7:gen").Return(int64(1), nil)
	f.cache.On("Del", mock.Anything, []string{"shipping:carrier:7"}).Return(nil)

	c, err := svc.UpdateCarrier(context.Background(), 7, CarrierInput{
		Name:            "Express+",
		BasePrice:       decimal.NewFromInt(1200),
		FreeShippingMin: dec(50000),
		PricingType:     "price",
		Active:          true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Express+", c.Name)
	assert.Equal(t, etshipping.PricingType("price"), c.PricingType())
}

func TestUpdateCarrier_ToFixedWithRates(t *testing.T) {
	f, svc := setup(t)
	f.carriers.On("GetByID", mock.Anything, int64(7)).Return(existing(t, "weight"), nil)
	f.carriers.On("ListRates", mock.Anything, int64(7)).Return([]etshipping.Rate{{ID: 1, CarrierID: 7}}, nil)

	_, err := svc.UpdateCarrier(context.Background(), 7, CarrierInput{
		Name:        "Express",
		BasePrice:   decimal.NewFromInt(1000),
		PricingType: "fixed",
		Active:      true,
	})
	assert.ErrorIs(t, err, etshipping.ErrRatesOnFixedCarrier)
	f.carriers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateCarrier_MetricChangeWithRates(t *testing.T) {
	f, svc := setup(t)
	f.carriers.On("GetByID", mock.Anything, int64(7)).Return(existing(t, "weight"), nil)
	f.carriers.On("ListRates", mock.Anything, int64(7)).Return([]etshipping.Rate{{ID: 1, CarrierID: 7}}, nil)

	_, err := svc.UpdateCarrier(context.Background(), 7, CarrierInput{
		Name:        "Express",
		BasePrice:   decimal.NewFromInt(1000),
		PricingType: "price",
		Active:      true,
	})
	assert.ErrorIs(t, err, etshipping.ErrPricingTypeInUse)
	f.carriers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateCarrier_SamePricingTypeKeepsRates(t *testing.T) {
	f, svc := setup(t)
	f.carriers.On("GetByID", mock.Anything, int64(7)).Return(existing(t, "weight"), nil)
	f.carriers.On("Update", mock.Anything, mock.AnythingOfType("*etshipping.Carrier")).Return(nil)
	f.cache.On("Incr", mock.Anything, "shipping:carrier:7:gen").Return(int64(1), nil)
	f.cache.On("Del", mock.Anything, []string{"shipping:carrier:7"}).Return(nil)

	c, err := svc.UpdateCarrier(context.Background(), 7, CarrierInput{
		Name:        "Express",
		BasePrice:   decimal.NewFromInt(1500),
		PricingType: "weight",
		Active:      true,
	})
	require.NoError(t, err)
	assert.True(t, c.BasePrice.Equal(decimal.NewFromInt(1500)))
	f.carriers.AssertNotCalled(t, "ListRates", mock.Anything, mock.Anything)
}

func TestGetCarrier_NotFound(t *testing.T) {
	f, svc := setup(t)
	f.carriers.On("GetByID", mock.Anything, int64(404)).Return(nil, nil)

	_, err := svc.GetCarrier(context.Background(), 404)
	assert.ErrorIs(t, err, errorx.ErrCarrierNotFound)
}

func TestGetCarrier_WithRates(t *testing.T) {
	f, svc := setup(t)
	f.carriers.On("GetByID", mock.Anything, int64(7)).Return(existing(t, "weight"), nil)
	f.carriers.On("ListRates", mock.Anything, int64(7)).Return([]etshipping.Rate{{ID: 1, CarrierID: 7}, {ID: 2, CarrierID: 7}}, nil)

	detail, err := svc.GetCarrier(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), detail.Carrier.ID)
	assert.Len(t, detail.Rates, 2)
}

func TestReplaceRates(t *testing.T) {
	f, svc := setup(t)
	zoneID := int64(2)
	zone, err := etzone.NewZone(zoneID, "CEMAC", []string{"CM", "GA"}, true)
	require.NoError(t, err)

	f.carriers.On("GetByID", mock.Anything, int64(7)).Return(existing(t, "weight"), nil)
	f.zones.On("GetByID", mock.Anything, zoneID).Return(zone, nil)
	f.carriers.On("ReplaceRates", mock.Anything, int64(7), &zoneID, mock.MatchedBy(func(rates []etshipping.Rate) bool {
		return len(rates) == 2 && rates[0].ID == 101 && rates[1].ID == 102 && rates[1].CarrierID == 7
	})).Return(nil)
	f.cache.On("Incr", mock.Anything, "shipping:carrier:7:gen").Return(int64(1), nil)
	f.cache.On("Del", mock.Anything, []string{"shipping:carrier:7"}).Return(nil)

	rates, err := svc.ReplaceRates(context.Background(), 7, &zoneID, []RateInput{
		{Weight: etshipping.Bound{Max: dec(5)}, RatePrice: decimal.NewFromInt(500), DeliveryTime: "1-2 days"},
		{Weight: etshipping.Bound{Min: dec(5)}, RatePrice: decimal.NewFromInt(1500), DeliveryTime: "3-5 days"},
	})
	require.NoError(t, err)
	require.Len(t, rates, 2)
	assert.Equal(t, "3-5 days", rates[1].DeliveryTime)
}

func TestReplaceRates_Rejected(t *testing.T) {
	zoneID := int64(9)

	tests := []struct {
		name    string
		pricing string
		zone    bool
		inputs  []RateInput
		wantErr error
	}{
		{
			name:    "fixed carrier",
			pricing: "fixed",
			inputs:  []RateInput{{RatePrice: decimal.NewFromInt(1)}},
			wantErr: etshipping.ErrRatesOnFixedCarrier,
		},
		{
			name:    "unknown zone",
			pricing: "weight",
			zone:    true,
			inputs:  []RateInput{{RatePrice: decimal.NewFromInt(1)}},
			wantErr: etzone.ErrZoneNotFound,
		},
		{
			name:    "inverted bound",
			pricing: "weight",
			inputs:  []RateInput{{Weight: etshipping.Bound{Min: dec(10), Max: dec(5)}, RatePrice: decimal.NewFromInt(1)}},
			wantErr: etshipping.ErrInvalidBound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, svc := setup(t)
			f.carriers.On("GetByID", mock.Anything, int64(7)).Return(existing(t, tt.pricing), nil)

			var zid *int64
			if tt.zone {
				zid = &zoneID
				f.zones.On("GetByID", mock.Anything, zoneID).Return(nil, nil)
			}

			_, err := svc.ReplaceRates(context.Background(), 7, zid, tt.inputs)
			assert.ErrorIs(t, err, tt.wantErr)
			f.carriers.AssertNotCalled(t, "ReplaceRates", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestReplaceRates_EmptyClearsFixedCarrier(t *testing.T) {
	f, svc := setup(t)
	f.carriers.On("GetByID", mock.Anything, int64(7)).Return(existing(t, "fixed"), nil)
	f.carriers.On("ReplaceRates", mock.Anything, int64(7), (*int64)(nil), []etshipping.Rate{}).Return(nil)
	f.cache.On("Incr", mock.Anything, "shipping:carrier:7:gen").Return(int64(1), nil)
	f.cache.On("Del", mock.Anything, []string{"shipping:carrier:7"}).Return(nil)

	rates, err := svc.ReplaceRates(context.Background(), 7, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, rates)
}

func TestCreateZone(t *testing.T) {
	f, svc := setup(t)
	f.zones.On("Create", mock.Anything, mock.AnythingOfType("*etzone.Zone")).Return(errors.New("db down"))

	_, err := svc.CreateZone(context.Background(), "Europe", []string{"fr", "de"}, true)
	assert.EqualError(t, err, "save zone failed: db down")

	_, err = svc.CreateZone(context.Background(), "Bad", []string{"FRA"}, true)
	assert.ErrorIs(t, err, etzone.ErrInvalidCountryCode)
}
