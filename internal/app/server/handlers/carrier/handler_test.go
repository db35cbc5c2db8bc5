package carrier

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etshipping"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etzone"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/services/svcarrier"
	"github.com/marxiobadel/farmer-sub002/internal/app/pkg/errorx"
)

type mockCarrierService struct {
	mock.Mock
}

func (m *mockCarrierService) CreateCarrier(ctx context.Context, in svcarrier.CarrierInput) (*etshipping.Carrier, error) {
	args := m.Called(ctx, in)
	c, _ := args.Get(0).(*etshipping.Carrier)
	return c, args.Error(1)
}

func (m *mockCarrierService) UpdateCarrier(ctx context.Context, carrierID int64, in svcarrier.CarrierInput) (*etshipping.Carrier, error) {
	args := m.Called(ctx, carrierID, in)
	c, _ := args.Get(0).(*etshipping.Carrier)
	return c, args.Error(1)
}

func (m *mockCarrierService) GetCarrier(ctx context.Context, carrierID int64) (*svcarrier.CarrierDetail, error) {
	args := m.Called(ctx, carrierID)
	d, _ := args.Get(0).(*svcarrier.CarrierDetail)
	return d, args.Error(1)
}

func (m *mockCarrierService) ListCarriers(ctx context.Context, activeOnly bool) ([]*etshipping.Carrier, error) {
	args := m.Called(ctx, activeOnly)
	cs, _ := args.Get(0).([]*etshipping.Carrier)
	return cs, args.Error(1)
}

func (m *mockCarrierService) ReplaceRates(ctx context.Context, carrierID int64, zoneID *int64, inputs []svcarrier.RateInput) ([]etshipping.Rate, error) {
	args := m.Called(ctx, carrierID, zoneID, inputs)
	rs, _ := args.Get(0).([]etshipping.Rate)
	return rs, args.Error(1)
}

func (m *mockCarrierService) CreateZone(ctx context.Context, name string, countries []string, active bool) (*etzone.Zone, error) {
	args := m.Called(ctx, name, countries, active)
	z, _ := args.Get(0).(*etzone.Zone)
	return z, args.Error(1)
}

func (m *mockCarrierService) ListZones(ctx context.Context, activeOnly bool) ([]*etzone.Zone, error) {
	args := m.Called(ctx, activeOnly)
	zs, _ := args.Get(0).([]*etzone.Zone)
	return zs, args.Error(1)
}

func init() {
	gin.SetMode(gin.TestMode)
}

func call(handler gin.HandlerFunc, method, id, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	if id != "" {
		c.Params = gin.Params{{Key: "id", Value: id}}
	}
	c.Request = httptest.NewRequest(method, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	handler(c)
	return w
}

func TestCreate(t *testing.T) {
	svc := new(mockCarrierService)
	carrier, err := etshipping.NewCarrier(101, "Express", decimal.NewFromInt(1000), nil, "weight", true)
	require.NoError(t, err)
	svc.On("CreateCarrier", mock.Anything, mock.MatchedBy(func(in svcarrier.CarrierInput) bool {
		return in.Name == "Express" && in.PricingType == "weight" && in.Active && in.BasePrice.Equal(decimal.NewFromInt(1000))
	})).Return(carrier, nil)

	w := call(NewCarrierHandler(svc).Create, http.MethodPost, "", `{"name":"Express","base_price":"1000","pricing_type":"weight"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp struct {
		Data struct {
			ID          int64  `json:"id"`
			PricingType string `json:"pricing_type"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(101), resp.Data.ID)
	assert.Equal(t, "weight", resp.Data.PricingType)
}

func TestCreate_InvalidPricingType(t *testing.T) {
	w := call(NewCarrierHandler(new(mockCarrierService)).Create, http.MethodPost, "", `{"name":"Express","base_price":1000,"pricing_type":"distance"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReplaceRates(t *testing.T) {
	svc := new(mockCarrierService)
	svc.On("ReplaceRates", mock.Anything, int64(7), mock.MatchedBy(func(z *int64) bool { return z != nil && *z == 2 }),
		mock.MatchedBy(func(in []svcarrier.RateInput) bool {
			return len(in) == 2 && in[0].Weight.Max.Equal(decimal.NewFromInt(5)) && in[1].Weight.Min.Equal(decimal.NewFromInt(5))
		})).Return([]etshipping.Rate{{ID: 1}, {ID: 2}}, nil)

	body := `{"zone_id":2,"rates":[
		{"max_weight":"5","rate_price":"500","delivery_time":"1-2 days"},
		{"min_weight":"5","rate_price":"1500","delivery_time":"3-5 days"}]}`
	w := call(NewCarrierHandler(svc).ReplaceRates, http.MethodPut, "7", body)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestReplaceRates_FixedCarrier(t *testing.T) {
	svc := new(mockCarrierService)
	svc.On("ReplaceRates", mock.Anything, int64(7), (*int64)(nil), mock.Anything).
		Return(nil, fmt.Errorf("%w: carrier_id=7", etshipping.ErrRatesOnFixedCarrier))

	w := call(NewCarrierHandler(svc).ReplaceRates, http.MethodPut, "7", `{"rates":[{"rate_price":"1"}]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestReplaceRates_NullRate(t *testing.T) {
	var w *httptest.ResponseRecorder
	require.NotPanics(t, func() {
		w = call(NewCarrierHandler(new(mockCarrierService)).ReplaceRates, http.MethodPut, "7", `{"rates":[null]}`)
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGet_NotFound(t *testing.T) {
	svc := new(mockCarrierService)
	svc.On("GetCarrier", mock.Anything, int64(404)).Return(nil, fmt.Errorf("%w: id=404", errorx.ErrCarrierNotFound))

	w := call(NewCarrierHandler(svc).Get, http.MethodGet, "404", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdate_InvalidID(t *testing.T) {
	w := call(NewCarrierHandler(new(mockCarrierService)).Update, http.MethodPut, "x", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateZone(t *testing.T) {
	svc := new(mockCarrierService)
	zone, err := etzone.NewZone(3, "CEMAC", []string{"CM", "GA"}, true)
	require.NoError(t, err)
	svc.On("CreateZone", mock.Anything, "CEMAC", []string{"cm", "GA"}, true).Return(zone, nil)

	w := call(NewCarrierHandler(svc).CreateZone, http.MethodPost, "", `{"name":"CEMAC","countries":["cm","GA"]}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestListZones(t *testing.T) {
	svc := new(mockCarrierService)
	svc.On("ListZones", mock.Anything, false).Return([]*etzone.Zone{}, nil)

	w := call(NewCarrierHandler(svc).ListZones, http.MethodGet, "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
