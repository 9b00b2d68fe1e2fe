package book

import (
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	// 查询、更新、删除统一返回此哨兵错误
	ErrBookNotFound = apperrors.ErrBookNotFound

	// ErrUnknownField 不支持的过滤/更新字段
	ErrUnknownField = apperrors.New(apperrors.ErrCodeInvalidParams, "unknown field, expected one of title, author, isbn")

	// ErrInvalidPagination offset/limit非法
	ErrInvalidPagination = apperrors.New(apperrors.ErrCodeInvalidParams, "offset must be >= 0 and limit must be > 0")

	// ErrInvalidID 图书ID为空
	ErrInvalidID = apperrors.New(apperrors.ErrCodeInvalidParams, "id is required")
)
