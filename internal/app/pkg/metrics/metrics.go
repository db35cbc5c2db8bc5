package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// QuotesTotal 运费计算次数，按结果分类
	QuotesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "shipping",
		Name:      "quotes_total",
		Help:      "Shipping quotes computed, by resolution outcome",
	}, []string{"outcome"}) // FREE_SHIPPING / FIXED / TIER_MATCHED / NO_TIER_MATCH / UNAVAILABLE

	// RateCacheTotal 费率缓存命中情况
	RateCacheTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "shipping",
		Name:      "rate_cache_total",
		Help:      "Rate cache lookups",
	}, []string{"result"}) // hit / miss / stale / error

	// OrdersCreatedTotal 下单结果
	OrdersCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "order",
		Name:      "created_total",
		Help:      "Order creation attempts",
	}, []string{"status"}) // success / error

	// CallbacksTotal 支付回调处理结果
	CallbacksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "payment",
		Name:      "callbacks_total",
		Help:      "Payment callbacks consumed",
	}, []string{"provider", "result"}) // applied / replay / rejected / error

	// RequestDuration HTTP 请求耗时
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "storefront",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

// ObserveRequest 记录一次 HTTP 请求
func ObserveRequest(method, route string, status int, d time.Duration) {
	RequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}
