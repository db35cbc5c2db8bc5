package routers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/marxiobadel/farmer-sub002/internal/app/pkg/logger"
	"github.com/marxiobadel/farmer-sub002/internal/app/server/handlers/account"
	"github.com/marxiobadel/farmer-sub002/internal/app/server/handlers/carrier"
	"github.com/marxiobadel/farmer-sub002/internal/app/server/handlers/order"
	"github.com/marxiobadel/farmer-sub002/internal/app/server/handlers/product"
	"github.com/marxiobadel/farmer-sub002/internal/app/server/handlers/shipping"
	"github.com/marxiobadel/farmer-sub002/internal/app/server/middlewares"
)

// Handlers 路由依赖的全部处理器
type Handlers struct {
	Account  *account.AccountHandler
	Carrier  *carrier.CarrierHandler
	Order    *order.OrderHandler
	Product  *product.ProductHandler
	Shipping *shipping.ShippingHandler
}

// Options 路由选项
type Options struct {
	ServiceName    string
	TracingEnabled bool
}

// SetupRoutes 配置所有路由，使用 Route Group 分类
func SetupRoutes(h *Handlers, log logger.Logger, opts Options) *gin.Engine {
	r := gin.New()

	if opts.TracingEnabled {
		r.Use(otelgin.Middleware(opts.ServiceName))
	}
	r.Use(middlewares.CORS())
	r.Use(middlewares.Logger(log))
	r.Use(middlewares.ErrorHandler(log))
	r.Use(middlewares.Metrics())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": opts.ServiceName,
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	{
		ship := v1.Group("/shipping")
		{
			ship.POST("/quote", h.Shipping.Quote)
			ship.POST("/options", h.Shipping.Options)
		}

		accounts := v1.Group("/accounts")
		{
			accounts.POST("", h.Account.Create)
			accounts.GET("/:id", h.Account.Get)
		}

		v1.GET("/products/:id", h.Product.Get)

		orders := v1.Group("/orders")
		{
			orders.POST("", h.Order.Create)
			orders.GET("", h.Order.List)
			orders.GET("/:id", h.Order.Get)
			orders.GET("/:id/payment", h.Order.Payment)
		}

		admin := v1.Group("/admin")
		{
			admin.POST("/carriers", h.Carrier.Create)
			admin.GET("/carriers", h.Carrier.List)
			admin.GET("/carriers/:id", h.Carrier.Get)
			admin.PUT("/carriers/:id", h.Carrier.Update)
			admin.PUT("/carriers/:id/rates", h.Carrier.ReplaceRates)

			admin.POST("/zones", h.Carrier.CreateZone)
			admin.GET("/zones", h.Carrier.ListZones)

			admin.POST("/products", h.Product.Create)
		}
	}

	return r
}
