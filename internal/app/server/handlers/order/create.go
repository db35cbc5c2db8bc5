package order

import (
	"github.com/gin-gonic/gin"

	"github.com/marxiobadel/farmer-sub002/internal/app/domains/apimodel/request"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/apimodel/response"
	"github.com/marxiobadel/farmer-sub002/internal/app/pkg/ginx"
)

// Create godoc
// @Summary      创建订单
// @Description  运费由服务端按商品库数据重新计算，客户端提交的金额不被采信
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request body request.CreateOrderRequest true "创建订单请求"
// @Success      201 {object} ginx.Response{data=response.OrderResponse} "创建成功"
// @Failure      400 {object} ginx.Response "参数错误"
// @Failure      404 {object} ginx.Response "账号、商品或配送区域不存在"
// @Failure      409 {object} ginx.Response "商户订单号重复"
// @Failure      422 {object} ginx.Response "承运商不可用"
// @Router       /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), req.ToCreateOrder())
	if err != nil {
		ginx.Fail(c, err)
		return
	}

	ginx.Created(c, response.FromOrderEntity(order))
}
