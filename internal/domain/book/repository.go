package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 便于Mock测试,不依赖具体数据库实现
// 3. 存储故障统一返回apperrors.Wrap包装后的错误(错误码50001)
type Repository interface {
	// ListAll 查询全部图书,按创建时间降序
	ListAll(ctx context.Context) ([]*Book, error)

	// Filter 前缀过滤+分页,返回当前页数据与匹配总数(忽略分页)
	Filter(ctx context.Context, q FilterQuery) ([]*Book, int64, error)

	// FindByID 根据ID查找图书,不存在返回ErrBookNotFound
	FindByID(ctx context.Context, id string) (*Book, error)

	// Create 创建图书,回填ID与CreatedAt
	Create(ctx context.Context, book *Book) error

	// Update 保存图书的可变字段(title/author/isbn)
	Update(ctx context.Context, book *Book) error

	// Delete 物理删除,不存在返回ErrBookNotFound
	Delete(ctx context.Context, id string) error
}

// FilterQuery 过滤查询参数
type FilterQuery struct {
	Filter Filter
	Offset int // 跳过的记录数(>=0)
	Limit  int // 每页数量(>0)
}
