// Package metrics 提供基于Prometheus的指标收集
//
// # 指标分两组
//
// **1. HTTP指标**：由middleware.Metrics()在每个请求结束时记录
//   - http_requests_total{method,path,status}
//   - http_request_duration_seconds{method,path}
//   - http_requests_in_progress
//
// **2. 图书操作指标**：由application层用例记录
//   - book_operations_total{operation,result}
//   - book_operation_duration_seconds{operation}
//
// # 使用方式
//
//	metrics.InitMetrics()
//	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
//
//	start := time.Now()
//	book, err := svc.GetByID(ctx, id)
//	metrics.ObserveBookOperation(metrics.OpGet, err, start)
//
// # 注意
//
//   - path标签使用gin的路由模板(/api/books/details/:id),不能用原始URL,
//     否则每个图书ID都会生成一条新的时间序列
//   - result标签只有固定几个取值,由错误码推导
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// 图书操作名(operation标签)
const (
	OpList    = "list"
	OpListAll = "list_all"
	OpGet     = "get"
	OpCreate  = "create"
	OpUpdate  = "update"
	OpDelete  = "delete"
)

// 操作结果(result标签)
const (
	ResultSuccess  = "success"
	ResultNotFound = "not_found"
	ResultInvalid  = "invalid"
	ResultError    = "error"
)

var (
	// once 防止重复注册(promauto重复注册会panic)
	once sync.Once

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method、path（路由模板）、status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// BookOperationsTotal 图书操作总数（Counter）
	// 标签：operation、result
	BookOperationsTotal *prometheus.CounterVec

	// BookOperationDuration 图书操作耗时（Histogram）
	BookOperationDuration *prometheus.HistogramVec
)

// InitMetrics 初始化所有Prometheus指标
// 可重复调用,只有第一次生效
func InitMetrics() {
	once.Do(func() {
		HTTPRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "HTTP请求总数",
			},
			[]string{"method", "path", "status"},
		)

		HTTPRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "http_request_duration_seconds",
				Help: "HTTP请求耗时（秒）",
				// 1ms、10ms、100ms、500ms、1s、5s、10s
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
			},
			[]string{"method", "path"},
		)

		HTTPRequestsInProgress = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_progress",
				Help: "正在处理的HTTP请求数",
			},
		)

		BookOperationsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "book_operations_total",
				Help: "图书操作总数",
			},
			[]string{"operation", "result"},
		)

		// 单次数据库往返,桶比HTTP更细
		BookOperationDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "book_operation_duration_seconds",
				Help:    "图书操作耗时（秒）",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"operation"},
		)
	})
}

// ResultOf 错误 → result标签
func ResultOf(err error) string {
	if err == nil {
		return ResultSuccess
	}
	switch apperrors.HTTPStatus(apperrors.GetAppError(err).Code) {
	case 404:
		return ResultNotFound
	case 400:
		return ResultInvalid
	default:
		return ResultError
	}
}

// ObserveBookOperation 记录一次图书操作的结果与耗时
func ObserveBookOperation(operation string, err error, start time.Time) {
	InitMetrics()
	IncCounterVec(BookOperationsTotal, map[string]string{
		"operation": operation,
		"result":    ResultOf(err),
	})
	ObserveHistogramVec(BookOperationDuration, map[string]string{
		"operation": operation,
	}, time.Since(start).Seconds())
}

// IncCounterVec 递增CounterVec（带标签）
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	counter.With(labels).Inc()
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	gauge.Inc()
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	gauge.Dec()
}

// ObserveHistogramVec 记录HistogramVec观测值（带标签）
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	histogram.With(labels).Observe(value)
}
