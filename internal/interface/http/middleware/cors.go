package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
)

// CORS 跨域资源共享中间件
//
// 要点：
// 1. 允许的域名、方法、头部来自cors配置
// 2. 预检请求(OPTIONS)直接返回204
// 3. allow_credentials=true时不能回写"*",改为回写请求的Origin
func CORS(cfg config.CORSConfig) gin.HandlerFunc {
	methods := strings.Join(cfg.AllowMethods, ", ")
	headers := strings.Join(cfg.AllowHeaders, ", ")
	expose := strings.Join(cfg.ExposeHeaders, ", ")

	return func(c *gin.Context) {
		// 未启用或不是跨域请求,直接跳过
		origin := c.GetHeader("Origin")
		if !cfg.Enabled || origin == "" {
			c.Next()
			return
		}

		allowOrigin, ok := matchOrigin(cfg, origin)
		if !ok {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		c.Header("Access-Control-Allow-Origin", allowOrigin)
		if allowOrigin != "*" {
			c.Header("Vary", "Origin")
		}
		c.Header("Access-Control-Allow-Methods", methods)
		c.Header("Access-Control-Allow-Headers", headers)
		if expose != "" {
			c.Header("Access-Control-Expose-Headers", expose)
		}
		if cfg.AllowCredentials {
			c.Header("Access-Control-Allow-Credentials", "true")
		}
		if cfg.MaxAge > 0 {
			c.Header("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// matchOrigin 返回应回写的Access-Control-Allow-Origin
func matchOrigin(cfg config.CORSConfig, origin string) (string, bool) {
	for _, allow := range cfg.AllowOrigins {
		switch {
		case allow == "*" && cfg.AllowCredentials:
			return origin, true
		case allow == "*":
			return "*", true
		case strings.EqualFold(allow, origin):
			return origin, true
		}
	}
	return "", false
}
