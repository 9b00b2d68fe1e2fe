package dto

import (
	"time"

	appbook "github.com/xiebiao/bookshelf/internal/application/book"
	"github.com/xiebiao/bookshelf/pkg/response"
)

// AddBookRequest HTTP新增请求
// validator tag说明:
// - required: 必填且不能为空串,缺失时返回"<字段> is required"
// - notblank: 只含空白字符同样视为未填写
type AddBookRequest struct {
	Title  string `json:"title" binding:"required,notblank" example:"Dune"`
	Author string `json:"author" binding:"required,notblank" example:"Frank Herbert"`
	ISBN   string `json:"isbn" binding:"required,notblank" example:"9780441172719"`
}

// EditBookRequest HTTP编辑请求
// title/author必填;isbn可选,不传则保持原值
type EditBookRequest struct {
	Title  string  `json:"title" binding:"required,notblank" example:"Dune Messiah"`
	Author string  `json:"author" binding:"required,notblank" example:"Frank Herbert"`
	ISBN   *string `json:"isbn" example:"9780593098233"`
}

// ListBooksQuery HTTP列表查询参数
// page/pageSize不是合法整数时按默认值处理,所以这里用字符串接收
type ListBooksQuery struct {
	Title      string `form:"title" example:"Du"`
	Author     string `form:"author"`
	ISBN       string `form:"isbn"`
	SearchItem string `form:"search_item" example:"title"` // title | author | isbn
	SearchQ    string `form:"search_q" example:"Du"`
	Page       string `form:"page" example:"1"`
	PageSize   string `form:"pageSize" example:"2"`
}

// BookResponse HTTP图书响应
// 可空字段输出为null
type BookResponse struct {
	ID        string    `json:"id" example:"0b0c6a0e-8f4f-4e57-9d7e-3c1f3f0b6f0e"`
	Title     *string   `json:"title" example:"Dune"`
	Author    *string   `json:"author" example:"Frank Herbert"`
	ISBN      *string   `json:"isbn" example:"9780441172719"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-15T10:30:00Z"`
}

// ListBooksResponse HTTP图书列表响应
type ListBooksResponse struct {
	Books      []BookResponse      `json:"books"`
	Pagination response.Pagination `json:"pagination"`
}

// NewBookResponse 应用层DTO → HTTP响应
func NewBookResponse(b *appbook.BookDTO) *BookResponse {
	return &BookResponse{
		ID:        b.ID,
		Title:     b.Title,
		Author:    b.Author,
		ISBN:      b.ISBN,
		CreatedAt: b.CreatedAt.UTC(),
	}
}

// NewBookResponses 批量转换,空列表输出[]而不是null
func NewBookResponses(books []appbook.BookDTO) []BookResponse {
	out := make([]BookResponse, len(books))
	for i := range books {
		out[i] = *NewBookResponse(&books[i])
	}
	return out
}
