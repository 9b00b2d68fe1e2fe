package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/xiebiao/bookshelf/pkg/logger"
	"github.com/xiebiao/bookshelf/pkg/response"
)

// Pinger 数据库连通性检查(*sql.DB实现了该接口)
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler 存活/就绪检查
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler 创建健康检查处理器
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Root 根路径
func (h *HealthHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, "Hello, World!")
}

// Ping 存活检查,不访问数据库
// @Summary      存活检查
// @Tags         系统
// @Produce      json
// @Success      200 {object} response.Response
// @Router       /ping [get]
func (h *HealthHandler) Ping(c *gin.Context) {
	response.Success(c, gin.H{"status": "healthy"})
}

// Ready 就绪检查,数据库不可达时返回503
// @Summary      就绪检查
// @Tags         系统
// @Produce      json
// @Success      200 {object} response.Response
// @Failure      503 {object} response.Response
// @Router       /readyz [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		logger.FromContext(c.Request.Context()).Warn("readiness check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, response.Response{
			Success: false,
			Data:    nil,
			Msg:     "database unavailable",
		})
		return
	}
	response.Success(c, gin.H{"status": "ready"})
}
