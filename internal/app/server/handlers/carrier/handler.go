package carrier

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/marxiobadel/farmer-sub002/internal/app/domains/apimodel/request"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/apimodel/response"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etshipping"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etzone"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/services/svcarrier"
	"github.com/marxiobadel/farmer-sub002/internal/app/pkg/ginx"
)

// CarrierService 承运商管理（svcarrier.CarrierService 实现）
type CarrierService interface {
	CreateCarrier(ctx context.Context, in svcarrier.CarrierInput) (*etshipping.Carrier, error)
	UpdateCarrier(ctx context.Context, carrierID int64, in svcarrier.CarrierInput) (*etshipping.Carrier, error)
	GetCarrier(ctx context.Context, carrierID int64) (*svcarrier.CarrierDetail, error)
	ListCarriers(ctx context.Context, activeOnly bool) ([]*etshipping.Carrier, error)
	ReplaceRates(ctx context.Context, carrierID int64, zoneID *int64, inputs []svcarrier.RateInput) ([]etshipping.Rate, error)
	CreateZone(ctx context.Context, name string, countries []string, active bool) (*etzone.Zone, error)
	ListZones(ctx context.Context, activeOnly bool) ([]*etzone.Zone, error)
}

// CarrierHandler 管理端：承运商、费率、配送区域
type CarrierHandler struct {
	carrierService CarrierService
}

// NewCarrierHandler 创建承运商处理器
func NewCarrierHandler(carrierService CarrierService) *CarrierHandler {
	return &CarrierHandler{carrierService: carrierService}
}

// Create POST /api/v1/admin/carriers
func (h *CarrierHandler) Create(c *gin.Context) {
	var req request.CarrierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	carrier, err := h.carrierService.CreateCarrier(c.Request.Context(), req.ToInput())
	if err != nil {
		ginx.Fail(c, err)
		return
	}
	ginx.Created(c, response.FromCarrierEntity(carrier))
}

// Update PUT /api/v1/admin/carriers/:id
func (h *CarrierHandler) Update(c *gin.Context) {
	id, ok := carrierID(c)
	if !ok {
		return
	}

	var req request.CarrierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	carrier, err := h.carrierService.UpdateCarrier(c.Request.Context(), id, req.ToInput())
	if err != nil {
		ginx.Fail(c, err)
		return
	}
	ginx.Success(c, response.FromCarrierEntity(carrier))
}

// Get GET /api/v1/admin/carriers/:id，包含全部费率
func (h *CarrierHandler) Get(c *gin.Context) {
	id, ok := carrierID(c)
	if !ok {
		return
	}

	detail, err := h.carrierService.GetCarrier(c.Request.Context(), id)
	if err != nil {
		ginx.Fail(c, err)
		return
	}
	ginx.Success(c, response.FromCarrierDetail(detail))
}

// List GET /api/v1/admin/carriers?active=true
func (h *CarrierHandler) List(c *gin.Context) {
	carriers, err := h.carrierService.ListCarriers(c.Request.Context(), c.Query("active") == "true")
	if err != nil {
		ginx.Fail(c, err)
		return
	}
	ginx.Success(c, response.FromCarriers(carriers))
}

// ReplaceRates PUT /api/v1/admin/carriers/:id/rates
func (h *CarrierHandler) ReplaceRates(c *gin.Context) {
	id, ok := carrierID(c)
	if !ok {
		return
	}

	var req request.ReplaceRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	rates, err := h.carrierService.ReplaceRates(c.Request.Context(), id, req.ZoneID, req.ToInputs())
	if err != nil {
		ginx.Fail(c, err)
		return
	}
	ginx.Success(c, response.FromRates(rates))
}

// CreateZone POST /api/v1/admin/zones
func (h *CarrierHandler) CreateZone(c *gin.Context) {
	var req request.ZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	zone, err := h.carrierService.CreateZone(c.Request.Context(), req.Name, req.Countries, req.IsActive())
	if err != nil {
		ginx.Fail(c, err)
		return
	}
	ginx.Created(c, response.FromZoneEntity(zone))
}

// ListZones GET /api/v1/admin/zones?active=true
func (h *CarrierHandler) ListZones(c *gin.Context) {
	zones, err := h.carrierService.ListZones(c.Request.Context(), c.Query("active") == "true")
	if err != nil {
		ginx.Fail(c, err)
		return
	}
	ginx.Success(c, response.FromZones(zones))
}

func carrierID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		ginx.BadRequest(c, "invalid carrier_id")
		return 0, false
	}
	return id, true
}
