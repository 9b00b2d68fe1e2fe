package book

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/pkg/metrics"
)

// GetBookUseCase 图书详情用例
type GetBookUseCase struct {
	bookService book.Service
}

// NewGetBookUseCase 创建详情用例
func NewGetBookUseCase(bookService book.Service) *GetBookUseCase {
	return &GetBookUseCase{
		bookService: bookService,
	}
}

// Execute 根据ID查询图书,不存在返回book.ErrBookNotFound
func (uc *GetBookUseCase) Execute(ctx context.Context, id string) (dto *BookDTO, err error) {
	ctx, done := observe(ctx, metrics.OpGet)
	defer func() { done(err) }()

	b, err := uc.bookService.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toBookDTO(b), nil
}
