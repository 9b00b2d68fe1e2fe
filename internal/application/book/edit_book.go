package book

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/pkg/metrics"
)

// Transactor 事务执行器
// 由infrastructure层的TxManager实现,fn内的仓储调用共享同一个事务
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// EditBookUseCase 编辑图书用例
// 设计说明:
// 1. 查询、合并、保存三步放在同一个事务中
// 2. 只修改请求中给出的字段(Patch),ID与created_at不变
type EditBookUseCase struct {
	bookService book.Service
	tx          Transactor
}

// NewEditBookUseCase 创建编辑用例
func NewEditBookUseCase(bookService book.Service, tx Transactor) *EditBookUseCase {
	return &EditBookUseCase{
		bookService: bookService,
		tx:          tx,
	}
}

// EditBookRequest 编辑请求DTO
type EditBookRequest struct {
	ID    string
	Patch book.Patch
}

// Execute 执行编辑,不存在返回book.ErrBookNotFound
func (uc *EditBookUseCase) Execute(ctx context.Context, req EditBookRequest) (dto *BookDTO, err error) {
	ctx, done := observe(ctx, metrics.OpUpdate)
	defer func() { done(err) }()

	var updated *book.Book
	err = uc.tx.Transaction(ctx, func(ctx context.Context) error {
		b, err := uc.bookService.Update(ctx, req.ID, req.Patch)
		if err != nil {
			return err
		}
		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toBookDTO(updated), nil
}
