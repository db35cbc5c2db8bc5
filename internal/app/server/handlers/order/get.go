package order

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/marxiobadel/farmer-sub002/internal/app/domains/apimodel/response"
	"github.com/marxiobadel/farmer-sub002/internal/app/pkg/ginx"
)

// Get godoc
// @Summary      获取订单详情
// @Tags         orders
// @Produce      json
// @Param        id path string true "订单ID（UUID）"
// @Success      200 {object} ginx.Response{data=response.OrderResponse} "查询成功"
// @Failure      404 {object} ginx.Response "订单不存在"
// @Router       /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.orderService.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		ginx.Fail(c, err)
		return
	}

	ginx.Success(c, response.FromOrderEntity(order))
}

// List 账号下的订单列表
// GET /api/v1/orders?account_id=1&page=1&limit=20
func (h *OrderHandler) List(c *gin.Context) {
	accountID, err := strconv.ParseInt(c.Query("account_id"), 10, 64)
	if err != nil || accountID <= 0 {
		ginx.BadRequest(c, "invalid account_id")
		return
	}
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 20)
	if limit > 100 {
		limit = 100
	}

	orders, total, err := h.orderService.ListOrders(c.Request.Context(), accountID, page, limit)
	if err != nil {
		ginx.Fail(c, err)
		return
	}

	ginx.Success(c, response.FromOrderList(orders, total, page, limit))
}

func queryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}
