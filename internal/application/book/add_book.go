package book

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/pkg/metrics"
)

// AddBookUseCase 新增图书用例
// 设计说明:
// 1. 应用层负责用例编排,协调领域服务完成业务流程
// 2. 必填校验在HTTP层完成(binding:"required"),这里只做流程编排
// 3. ID与created_at由存储层分配
type AddBookUseCase struct {
	bookService book.Service
}

// NewAddBookUseCase 创建新增用例
func NewAddBookUseCase(bookService book.Service) *AddBookUseCase {
	return &AddBookUseCase{
		bookService: bookService,
	}
}

// AddBookRequest 新增请求DTO
type AddBookRequest struct {
	Title  string
	Author string
	ISBN   string
}

// Execute 执行新增用例
func (uc *AddBookUseCase) Execute(ctx context.Context, req AddBookRequest) (dto *BookDTO, err error) {
	ctx, done := observe(ctx, metrics.OpCreate)
	defer func() { done(err) }()

	b, err := uc.bookService.Create(ctx, req.Title, req.Author, req.ISBN)
	if err != nil {
		return nil, err
	}
	return toBookDTO(b), nil
}
