package book

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/pkg/metrics"
)

// DeleteBookUseCase 删除图书用例(物理删除)
type DeleteBookUseCase struct {
	bookService book.Service
}

// NewDeleteBookUseCase 创建删除用例
func NewDeleteBookUseCase(bookService book.Service) *DeleteBookUseCase {
	return &DeleteBookUseCase{
		bookService: bookService,
	}
}

// Execute 执行删除,不存在返回book.ErrBookNotFound
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id string) (err error) {
	ctx, done := observe(ctx, metrics.OpDelete)
	defer func() { done(err) }()

	return uc.bookService.Delete(ctx, id)
}
