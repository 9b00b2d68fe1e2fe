package book

import (
	"context"
	"strings"
)

// Service 图书领域服务接口
// 设计说明:
// 1. 图书存储访问的唯一入口,上层不直接操作Repository
// 2. 不依赖具体的Repository实现(依赖倒置)
// 3. 不存在统一返回ErrBookNotFound,存储故障原样向上传递
type Service interface {
	// ListAll 查询全部图书(按创建时间降序)
	ListAll(ctx context.Context) ([]*Book, error)

	// Filter 前缀过滤+分页
	// 业务规则:offset>=0,limit>0
	Filter(ctx context.Context, filter Filter, offset, limit int) (*Page, error)

	// GetByID 根据ID获取图书详情
	GetByID(ctx context.Context, id string) (*Book, error)

	// Create 新增图书
	Create(ctx context.Context, title, author, isbn string) (*Book, error)

	// Update 部分更新图书,只修改patch中给出的字段
	Update(ctx context.Context, id string, patch Patch) (*Book, error)

	// Delete 删除图书(物理删除)
	Delete(ctx context.Context, id string) error
}

// Page 分页查询结果
type Page struct {
	Books []*Book
	Total int64 // 匹配总数(忽略offset/limit)
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// ListAll 查询全部图书
func (s *service) ListAll(ctx context.Context) ([]*Book, error) {
	return s.repo.ListAll(ctx)
}

// Filter 前缀过滤+分页
func (s *service) Filter(ctx context.Context, filter Filter, offset, limit int) (*Page, error) {
	if offset < 0 || limit <= 0 {
		return nil, ErrInvalidPagination
	}

	books, total, err := s.repo.Filter(ctx, FilterQuery{
		Filter: filter,
		Offset: offset,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	return &Page{Books: books, Total: total}, nil
}

// GetByID 根据ID获取图书
func (s *service) GetByID(ctx context.Context, id string) (*Book, error) {
	id, err := normalizeID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// Create 新增图书
func (s *service) Create(ctx context.Context, title, author, isbn string) (*Book, error) {
	// 1. 创建图书实体
	book := NewBook(title, author, isbn)

	// 2. 持久化(回填ID与CreatedAt)
	if err := s.repo.Create(ctx, book); err != nil {
		return nil, err
	}

	return book, nil
}

// Update 部分更新图书
func (s *service) Update(ctx context.Context, id string, patch Patch) (*Book, error) {
	id, err := normalizeID(id)
	if err != nil {
		return nil, err
	}

	// 1. 查询图书
	book, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 2. 合并字段
	patch.ApplyTo(book)

	// 3. 持久化
	if err := s.repo.Update(ctx, book); err != nil {
		return nil, err
	}

	return book, nil
}

// Delete 删除图书
func (s *service) Delete(ctx context.Context, id string) error {
	id, err := normalizeID(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func normalizeID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrInvalidID
	}
	return id, nil
}
