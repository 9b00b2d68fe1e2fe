package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// TestInitMetrics 测试指标初始化
func TestInitMetrics(t *testing.T) {
	InitMetrics()
	InitMetrics() // 重复调用不能panic

	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsInProgress)
	assert.NotNil(t, BookOperationsTotal)
	assert.NotNil(t, BookOperationDuration)
}

func TestResultOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"成功", nil, ResultSuccess},
		{"不存在", apperrors.ErrBookNotFound, ResultNotFound},
		{"参数错误", apperrors.ErrInvalidParams, ResultInvalid},
		{"数据库错误", apperrors.Wrap(errors.New("conn refused"), "x"), ResultError},
		{"未知错误", errors.New("boom"), ResultError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResultOf(tt.err))
		})
	}
}

// TestObserveBookOperation 计数与耗时按operation/result分别累计
func TestObserveBookOperation(t *testing.T) {
	InitMetrics()

	okBefore := getCounterVecValue(t, BookOperationsTotal, map[string]string{"operation": OpDelete, "result": ResultSuccess})
	nfBefore := getCounterVecValue(t, BookOperationsTotal, map[string]string{"operation": OpDelete, "result": ResultNotFound})
	countBefore := getHistogramVecCount(t, BookOperationDuration, map[string]string{"operation": OpDelete})

	start := time.Now()
	ObserveBookOperation(OpDelete, nil, start)
	ObserveBookOperation(OpDelete, nil, start)
	ObserveBookOperation(OpDelete, apperrors.ErrBookNotFound, start)

	assert.Equal(t, okBefore+2, getCounterVecValue(t, BookOperationsTotal, map[string]string{"operation": OpDelete, "result": ResultSuccess}))
	assert.Equal(t, nfBefore+1, getCounterVecValue(t, BookOperationsTotal, map[string]string{"operation": OpDelete, "result": ResultNotFound}))
	assert.Equal(t, countBefore+3, getHistogramVecCount(t, BookOperationDuration, map[string]string{"operation": OpDelete}))
}

// TestHTTPMetrics 模拟中间件的调用方式
func TestHTTPMetrics(t *testing.T) {
	InitMetrics()

	labels := map[string]string{"method": "GET", "path": "/api/books/details/:id", "status": "404"}
	before := getCounterVecValue(t, HTTPRequestsTotal, labels)

	IncGauge(HTTPRequestsInProgress)
	IncCounterVec(HTTPRequestsTotal, labels)
	ObserveHistogramVec(HTTPRequestDuration, map[string]string{"method": "GET", "path": "/api/books/details/:id"}, 0.01)
	DecGauge(HTTPRequestsInProgress)

	assert.Equal(t, before+1, getCounterVecValue(t, HTTPRequestsTotal, labels))
	assert.Equal(t, float64(0), getGaugeValue(t, HTTPRequestsInProgress))
}

// 辅助函数：获取HistogramVec观测次数
func getHistogramVecCount(t *testing.T, histogramVec *prometheus.HistogramVec, labels map[string]string) uint64 {
	t.Helper()
	var metric dto.Metric
	histogram := histogramVec.With(labels)
	require.NoError(t, histogram.(prometheus.Histogram).Write(&metric), "读取HistogramVec值失败")
	return metric.Histogram.GetSampleCount()
}

// 辅助函数：获取CounterVec值
func getCounterVecValue(t *testing.T, counterVec *prometheus.CounterVec, labels map[string]string) float64 {
	t.Helper()
	var metric dto.Metric
	require.NoError(t, counterVec.With(labels).Write(&metric), "读取CounterVec值失败")
	return metric.Counter.GetValue()
}

// 辅助函数：获取Gauge值
func getGaugeValue(t *testing.T, gauge prometheus.Gauge) float64 {
	t.Helper()
	var metric dto.Metric
	require.NoError(t, gauge.Write(&metric), "读取Gauge值失败")
	return metric.Gauge.GetValue()
}
