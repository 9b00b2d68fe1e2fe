package book

import (
	"context"
	"time"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/pkg/metrics"
	"github.com/xiebiao/bookshelf/pkg/response"
)

// ListBooksUseCase 图书列表查询用例
// 设计说明:
// 1. 负责分页参数的默认值与上限(来自pagination配置)
// 2. page/pageSize → offset/limit 的换算在这里完成,领域层只认offset/limit
// 3. totalPages使用实际生效的pageSize计算
type ListBooksUseCase struct {
	bookService book.Service
	pagination  config.PaginationConfig
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(bookService book.Service, cfg *config.Config) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookService: bookService,
		pagination:  cfg.Pagination,
	}
}

// ListBooksRequest 列表查询请求DTO
type ListBooksRequest struct {
	Filter   book.Filter // 前缀过滤条件(AND)
	Page     int         // 页码(从1开始)
	PageSize int         // 每页数量
}

// BookDTO 图书DTO
type BookDTO struct {
	ID        string
	Title     *string
	Author    *string
	ISBN      *string
	CreatedAt time.Time
}

// ListBooksResponse 列表查询响应DTO
type ListBooksResponse struct {
	Books      []BookDTO
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

// Execute 执行列表查询用例
// 学习要点:
// 1. 参数默认值处理(page默认1, pageSize默认取配置)
// 2. 参数范围限制(pageSize不超过max_page_size)
func (uc *ListBooksUseCase) Execute(ctx context.Context, req ListBooksRequest) (resp *ListBooksResponse, err error) {
	ctx, done := observe(ctx, metrics.OpList)
	defer func() { done(err) }()

	// 1. 参数默认值与范围限制
	page, pageSize := uc.normalize(req.Page, req.PageSize)

	// 2. 调用领域服务
	result, err := uc.bookService.Filter(ctx, req.Filter, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}

	// 3. 组装响应
	return &ListBooksResponse{
		Books:      toBookDTOs(result.Books),
		Total:      result.Total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: response.TotalPages(result.Total, pageSize),
	}, nil
}

// All 查询全部图书(不分页)
func (uc *ListBooksUseCase) All(ctx context.Context) (books []BookDTO, err error) {
	ctx, done := observe(ctx, metrics.OpListAll)
	defer func() { done(err) }()

	all, err := uc.bookService.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toBookDTOs(all), nil
}

func (uc *ListBooksUseCase) normalize(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = uc.pagination.DefaultPageSize
	}
	if pageSize > uc.pagination.MaxPageSize {
		pageSize = uc.pagination.MaxPageSize
	}
	return page, pageSize
}

func toBookDTO(b *book.Book) *BookDTO {
	return &BookDTO{
		ID:        b.ID,
		Title:     b.Title,
		Author:    b.Author,
		ISBN:      b.ISBN,
		CreatedAt: b.CreatedAt,
	}
}

func toBookDTOs(books []*book.Book) []BookDTO {
	out := make([]BookDTO, len(books))
	for i, b := range books {
		out[i] = *toBookDTO(b)
	}
	return out
}
