package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/xiebiao/bookshelf/pkg/logger"
	"github.com/xiebiao/bookshelf/pkg/tracing"
)

// RequestIDHeader 请求ID头
const RequestIDHeader = "X-Request-ID"

// requestIDKey gin.Context中请求ID的key
const requestIDKey = "request_id"

// slowRequest 超过该耗时记为慢请求
const slowRequest = 3 * time.Second

// Logger 请求日志中间件
//
// 要点：
// 1. 为每个请求分配请求ID(优先沿用上游传入的X-Request-ID)
// 2. 把带request_id的子logger放进请求Context,后续logger.FromContext都能取到
// 3. 请求结束后输出一条结构化访问日志,4xx记Warn,5xx记Error
//
// 不记录请求体,避免日志过大
func Logger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 步骤1: 请求ID
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(requestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		// 步骤2: 子logger注入Context
		reqLog := log.With(zap.String("request_id", requestID))
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), reqLog))

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		// 步骤3: 访问日志
		status := c.Writer.Status()
		fields := []zap.Field{
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("route", c.FullPath()),
			zap.String("query", c.Request.URL.RawQuery),
			zap.String("client_ip", c.ClientIP()),
			zap.Duration("latency", latency),
			zap.Int("size", c.Writer.Size()),
		}
		if traceID := tracing.ExtractTraceID(c.Request.Context()); traceID != "" {
			fields = append(fields, zap.String("trace_id", traceID))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		level := zapcore.InfoLevel
		switch {
		case status >= 500:
			level = zapcore.ErrorLevel
		case status >= 400 || latency > slowRequest:
			level = zapcore.WarnLevel
		}
		if ce := reqLog.Check(level, "http request"); ce != nil {
			ce.Write(fields...)
		}
	}
}

// GetRequestID 获取当前请求ID
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
