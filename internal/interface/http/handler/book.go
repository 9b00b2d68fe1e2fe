package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookshelf/internal/application/book"
	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/interface/http/dto"
	"github.com/xiebiao/bookshelf/pkg/response"
)

// BookHandler 图书HTTP处理器
// 设计说明：
// 1. Handler只负责HTTP相关的事情：提取参数、校验必填、调用应用层、返回响应
// 2. 所有错误都在这里收口，统一走response.Error
type BookHandler struct {
	listBooksUseCase  *appbook.ListBooksUseCase
	getBookUseCase    *appbook.GetBookUseCase
	addBookUseCase    *appbook.AddBookUseCase
	editBookUseCase   *appbook.EditBookUseCase
	deleteBookUseCase *appbook.DeleteBookUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	listBooksUseCase *appbook.ListBooksUseCase,
	getBookUseCase *appbook.GetBookUseCase,
	addBookUseCase *appbook.AddBookUseCase,
	editBookUseCase *appbook.EditBookUseCase,
	deleteBookUseCase *appbook.DeleteBookUseCase,
) *BookHandler {
	return &BookHandler{
		listBooksUseCase:  listBooksUseCase,
		getBookUseCase:    getBookUseCase,
		addBookUseCase:    addBookUseCase,
		editBookUseCase:   editBookUseCase,
		deleteBookUseCase: deleteBookUseCase,
	}
}

// ListBooks 分页查询图书
// @Summary      图书列表
// @Description  按title/author/isbn做大小写不敏感的前缀匹配(多个条件为AND)，按创建时间倒序分页
// @Tags         图书
// @Produce      json
// @Param        title        query string false "书名前缀"
// @Param        author       query string false "作者前缀"
// @Param        isbn         query string false "ISBN前缀"
// @Param        search_item  query string false "检索字段" Enums(title, author, isbn)
// @Param        search_q     query string false "检索字段的前缀"
// @Param        page         query int    false "页码(从1开始)" default(1)
// @Param        pageSize     query int    false "每页数量" default(2)
// @Success      200 {object} response.Response{data=dto.ListBooksResponse}
// @Failure      400 {object} response.Response "search_item不合法"
// @Failure      500 {object} response.Response "服务器内部错误"
// @Router       /api/books/list [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	// 1. 绑定查询参数
	var q dto.ListBooksQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ValidationError(c, bindMessage(err))
		return
	}

	// 2. 组装过滤条件
	filter := book.Filter{Title: q.Title, Author: q.Author, ISBN: q.ISBN}
	if q.SearchItem != "" {
		field, err := book.ParseField(q.SearchItem)
		if err != nil {
			response.Error(c, err)
			return
		}
		// search_item/search_q优先于同名的直接参数;search_q为空时不覆盖
		if q.SearchQ != "" {
			filter.Set(field, q.SearchQ)
		}
	}

	// 3. 调用应用层用例
	result, err := h.listBooksUseCase.Execute(c.Request.Context(), appbook.ListBooksRequest{
		Filter:   filter,
		Page:     atoiOrZero(q.Page),
		PageSize: atoiOrZero(q.PageSize),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	// 4. 返回响应
	response.Success(c, &dto.ListBooksResponse{
		Books:      dto.NewBookResponses(result.Books),
		Pagination: response.NewPagination(result.Total, result.Page, result.PageSize),
	})
}

// ListAll 查询全部图书
// @Summary      全部图书
// @Description  不分页，按创建时间倒序
// @Tags         图书
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.BookResponse}
// @Failure      500 {object} response.Response "服务器内部错误"
// @Router       /api/books [get]
func (h *BookHandler) ListAll(c *gin.Context) {
	books, err := h.listBooksUseCase.All(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewBookResponses(books))
}

// GetBook 图书详情
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Param        id path string true "图书ID"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      404 {object} response.Response "图书不存在"
// @Failure      500 {object} response.Response "服务器内部错误"
// @Router       /api/books/details/{id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	result, err := h.getBookUseCase.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewBookResponse(result))
}

// AddBook 新增图书
// @Summary      新增图书
// @Description  title、author、isbn均为必填
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        request body dto.AddBookRequest true "图书信息"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      500 {object} response.Response "服务器内部错误"
// @Router       /api/books/add [post]
func (h *BookHandler) AddBook(c *gin.Context) {
	// 1. 参数绑定与验证
	var req dto.AddBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, bindMessage(err))
		return
	}

	// 2. 调用应用层用例
	result, err := h.addBookUseCase.Execute(c.Request.Context(), appbook.AddBookRequest{
		Title:  req.Title,
		Author: req.Author,
		ISBN:   req.ISBN,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewBookResponse(result))
}

// EditBook 编辑图书
// @Summary      编辑图书
// @Description  title、author必填；isbn可选，不传则保持原值
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        id      path string              true "图书ID"
// @Param        request body dto.EditBookRequest true "修改内容"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      404 {object} response.Response "图书不存在"
// @Failure      500 {object} response.Response "服务器内部错误"
// @Router       /api/books/item/{id}/edit [post]
func (h *BookHandler) EditBook(c *gin.Context) {
	var req dto.EditBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, bindMessage(err))
		return
	}

	result, err := h.editBookUseCase.Execute(c.Request.Context(), appbook.EditBookRequest{
		ID: c.Param("id"),
		Patch: book.Patch{
			Title:  &req.Title,
			Author: &req.Author,
			ISBN:   req.ISBN,
		},
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewBookResponse(result))
}

// DeleteBook 删除图书
// @Summary      删除图书
// @Tags         图书
// @Produce      json
// @Param        id path string true "图书ID"
// @Success      200 {object} response.Response "data为null"
// @Failure      400 {object} response.Response "id为空"
// @Failure      404 {object} response.Response "图书不存在"
// @Failure      500 {object} response.Response "服务器内部错误"
// @Router       /api/books/item/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	if err := h.deleteBookUseCase.Execute(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// atoiOrZero 非法整数按0处理,由用例替换为默认值
func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
