package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookshelf/pkg/metrics"
)

// unmatchedRoute 未命中任何路由时的path标签
const unmatchedRoute = "unmatched"

// Metrics 记录HTTP请求数、耗时与并发数
// path标签使用路由模板(c.FullPath()),避免图书ID造成标签爆炸
func Metrics() gin.HandlerFunc {
	metrics.InitMetrics()

	return func(c *gin.Context) {
		metrics.IncGauge(metrics.HTTPRequestsInProgress)
		start := time.Now()

		// panic向外传播时也要归还并发数
		defer func() {
			metrics.DecGauge(metrics.HTTPRequestsInProgress)

			path := c.FullPath()
			if path == "" {
				path = unmatchedRoute
			}
			metrics.IncCounterVec(metrics.HTTPRequestsTotal, map[string]string{
				"method": c.Request.Method,
				"path":   path,
				"status": strconv.Itoa(c.Writer.Status()),
			})
			metrics.ObserveHistogramVec(metrics.HTTPRequestDuration, map[string]string{
				"method": c.Request.Method,
				"path":   path,
			}, time.Since(start).Seconds())
		}()

		c.Next()
	}
}
