// Package metrics 提供 Prometheus helper，包含常用 counter/histogram 模板
package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics 指标集合
type Metrics struct {
	// HTTP 请求计数
	HTTPRequestsTotal *prometheus.CounterVec
	// HTTP 请求耗时
	HTTPRequestDuration *prometheus.HistogramVec

	// 存储写入失败计数
	StorageWriteFailures prometheus.Counter

	// 业务指标
	CartItemsAddedTotal prometheus.Counter
	OrdersCreatedTotal  prometheus.Counter

	registry *prometheus.Registry
}

// New 创建指标实例
func New(serviceName string) *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: serviceName,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		StorageWriteFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "storage_write_failures_total",
			Help:      "Snapshot writes dropped by the fail-soft storage adapter.",
		}),
		CartItemsAddedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "cart_items_added_total",
			Help:      "Total number of cart add-item operations.",
		}),
		OrdersCreatedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "orders_created_total",
			Help:      "Total number of orders created.",
		}),
		registry: registry,
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.StorageWriteFailures,
		m.CartItemsAddedTotal,
		m.OrdersCreatedTotal,
	)

	return m
}

// Handler 返回 Prometheus 指标的 HTTP handler
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve 在独立端口启动指标服务
func (m *Metrics) Serve(port int, path string) error {
	mux := http.NewServeMux()
	mux.Handle(path, m.Handler())
	return http.ListenAndServe(fmt.Sprintf(":%d", port), mux)
}
