package order

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/marxiobadel/farmer-sub002/internal/app/domains/apimodel/response"
	"github.com/marxiobadel/farmer-sub002/internal/app/pkg/ginx"
)

// Payment godoc
// @Summary      查询支付结果
// @Description  wait>0 时进行 Smart Wait：订单仍待支付则最多等待 wait 秒（上限 30 秒）
// @Description  超时仍未支付时返回 code=3001 与轮询地址
// @Tags         orders
// @Produce      json
// @Param        id   path  string true  "订单ID（UUID）"
// @Param        wait query int    false "等待秒数"
// @Success      200 {object} ginx.Response{data=response.OrderResponse} "支付已有结果"
// @Failure      404 {object} ginx.Response "订单不存在"
// @Router       /orders/{id}/payment [get]
func (h *OrderHandler) Payment(c *gin.Context) {
	orderID := c.Param("id")

	wait := time.Duration(queryInt(c, "wait", 0)) * time.Second
	if wait > maxWait {
		wait = maxWait
	}

	order, err := h.orderService.WaitForPayment(c.Request.Context(), orderID, wait)
	if err != nil {
		ginx.Fail(c, err)
		return
	}

	if !order.Status.IsTerminal() {
		pollURL := fmt.Sprintf("/api/v1/orders/%s/payment", order.ID)
		ginx.Pending(c, order.ID, pollURL, response.FromOrderEntity(order))
		return
	}

	ginx.Success(c, response.FromOrderEntity(order))
}
