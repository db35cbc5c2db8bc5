package shipping

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/marxiobadel/farmer-sub002/internal/app/domains/apimodel/request"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/apimodel/response"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/modules/mdproduct"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/services/svshipping"
	"github.com/marxiobadel/farmer-sub002/internal/app/pkg/ginx"
)

// ShippingService 运费报价（svshipping.ShippingService 实现）
type ShippingService interface {
	Quote(ctx context.Context, carrierID int64, country string, lines []mdproduct.LineRequest) (*svshipping.ShippingQuote, error)
	QuoteOptions(ctx context.Context, country string, lines []mdproduct.LineRequest) (*svshipping.ShippingOptions, error)
}

// ShippingHandler 结账页运费接口
type ShippingHandler struct {
	shippingService ShippingService
	currency        string
}

// NewShippingHandler 创建运费处理器
func NewShippingHandler(shippingService ShippingService, currency string) *ShippingHandler {
	return &ShippingHandler{shippingService: shippingService, currency: currency}
}

// Quote godoc
// @Summary      结账预览运费
// @Description  按商品库中的重量、价格、尺寸计算指定承运商的运费
// @Tags         shipping
// @Accept       json
// @Produce      json
// @Param        request body request.QuoteRequest true "报价请求"
// @Success      200 {object} ginx.Response{data=response.QuoteResponse}
// @Failure      404 {object} ginx.Response "商品或配送区域不存在"
// @Failure      422 {object} ginx.Response "承运商不可用"
// @Router       /shipping/quote [post]
func (h *ShippingHandler) Quote(c *gin.Context) {
	var req request.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	quote, err := h.shippingService.Quote(c.Request.Context(), req.CarrierID, req.Country, request.ToLines(req.Items))
	if err != nil {
		ginx.Fail(c, err)
		return
	}

	ginx.Success(c, response.FromQuote(quote, h.currency))
}

// Options 承运商选择：所有启用承运商的报价，标记最便宜与最快
func (h *ShippingHandler) Options(c *gin.Context) {
	var req request.OptionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	options, err := h.shippingService.QuoteOptions(c.Request.Context(), req.Country, request.ToLines(req.Items))
	if err != nil {
		ginx.Fail(c, err)
		return
	}

	ginx.Success(c, response.FromOptions(options, h.currency))
}
