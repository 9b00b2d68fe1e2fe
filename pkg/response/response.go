package response

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
	"github.com/xiebiao/bookshelf/pkg/logger"
)

// Response 统一响应结构
// 设计说明：
// 1. Success标识请求是否成功
// 2. Data是业务数据，失败或资源为空时为null（不省略字段）
// 3. Msg是提示信息，成功时为空串，失败时为用户友好的错误描述
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Msg     string      `json:"msg"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{
		Success: true,
		Data:    data,
		Msg:     "",
	})
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	book, err := uc.Execute(ctx, id)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
//
// 5xx错误只返回固定文案，真实错误写入日志
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	status := apperrors.HTTPStatus(appErr.Code)

	msg := appErr.Message
	if status >= 500 {
		logger.FromContext(c.Request.Context()).Error("request failed",
			zap.Int("code", appErr.Code),
			zap.String("detail", appErr.Message),
			zap.Error(appErr.Err),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
		)
		msg = apperrors.InternalMessage
	}

	c.JSON(status, Response{
		Success: false,
		Data:    nil,
		Msg:     msg,
	})
}

// ErrorWithCode 自定义错误码和消息
func ErrorWithCode(c *gin.Context, code int, message string) {
	c.JSON(apperrors.HTTPStatus(code), Response{
		Success: false,
		Data:    nil,
		Msg:     message,
	})
}

// ValidationError 参数校验失败（400）
func ValidationError(c *gin.Context, message string) {
	ErrorWithCode(c, apperrors.ErrCodeInvalidParams, message)
}

// =========================================
// 分页响应结构
// =========================================

// Pagination 分页信息
type Pagination struct {
	TotalPages  int   `json:"totalPages"`  // 总页数
	CurrentPage int   `json:"currentPage"` // 当前页码
	PageSize    int   `json:"pageSize"`    // 每页大小
	Total       int64 `json:"total"`       // 总记录数
}

// NewPagination 创建分页信息
// 总页数必须使用实际查询时的pageSize计算
func NewPagination(total int64, page, pageSize int) Pagination {
	return Pagination{
		TotalPages:  TotalPages(total, pageSize),
		CurrentPage: page,
		PageSize:    pageSize,
		Total:       total,
	}
}

// TotalPages 向上取整计算总页数
func TotalPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	pages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		pages++
	}
	return pages
}
