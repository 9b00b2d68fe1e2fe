package gormstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// bookRepository 图书仓储实现(GORM)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 记录不存在转换为book.ErrBookNotFound,其余数据库错误统一Wrap
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// ListAll 查询全部图书
func (r *bookRepository) ListAll(ctx context.Context) ([]*book.Book, error) {
	var models []BookModel
	if err := r.getDB(ctx).Scopes(newestFirst).Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "list books failed")
	}
	return toBookEntities(models), nil
}

// Filter 前缀过滤+分页
// 多个条件之间为AND;匹配总数与分页查询使用同一组WHERE条件
func (r *bookRepository) Filter(ctx context.Context, q book.FilterQuery) ([]*book.Book, int64, error) {
	where, err := filterScope(q.Filter)
	if err != nil {
		return nil, 0, err
	}

	db := r.getDB(ctx)

	// 1. 查询总数
	var total int64
	if err := db.Model(&BookModel{}).Scopes(where).Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "count books failed")
	}

	// 2. 查询当前页(按创建时间降序)
	var models []BookModel
	err = db.Model(&BookModel{}).
		Scopes(where, newestFirst).
		Offset(q.Offset).
		Limit(q.Limit).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "filter books failed")
	}

	return toBookEntities(models), total, nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id string) (*book.Book, error) {
	var model BookModel
	err := r.getDB(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "find book failed")
	}
	return toBookEntity(&model), nil
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	// 1. 领域实体 → GORM模型(ID由BeforeCreate生成)
	model := &BookModel{
		Title:  b.Title,
		Author: b.Author,
		ISBN:   b.ISBN,
	}

	// 2. 插入数据库
	if err := r.getDB(ctx).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "create book failed")
	}

	// 3. 回填ID与创建时间
	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	return nil
}

// Update 更新图书可变字段
// 只写title/author/isbn,created_at不参与更新;nil写为NULL
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	err := r.getDB(ctx).
		Model(&BookModel{}).
		Where("id = ?", b.ID).
		Updates(map[string]interface{}{
			"title":  b.Title,
			"author": b.Author,
			"isbn":   b.ISBN,
		}).Error
	if err != nil {
		return apperrors.Wrap(err, "update book failed")
	}
	return nil
}

// Delete 删除图书(物理删除)
func (r *bookRepository) Delete(ctx context.Context, id string) error {
	result := r.getDB(ctx).Where("id = ?", id).Delete(&BookModel{})
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "delete book failed")
	}
	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

// =========================================
// 辅助函数
// =========================================

// newestFirst 创建时间降序,id作为第二排序键
// created_at精度有限(MySQL datetime(3)为毫秒),同一时刻插入的行需要稳定顺序,否则分页会重复或漏行
func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC").Order("id DESC")
}

// filterScope 把Filter转换为GORM Scope
func filterScope(f book.Filter) (func(*gorm.DB) *gorm.DB, error) {
	type cond struct {
		sql     string
		pattern string
	}
	var conds []cond
	for _, c := range f.Criteria() {
		col, ok := columnFor(c.Field)
		if !ok {
			return nil, book.ErrUnknownField
		}
		conds = append(conds, cond{
			sql:     fmt.Sprintf("LOWER(%s) LIKE LOWER(?) ESCAPE '%s'", col, likeEscape),
			pattern: prefixPattern(c.Prefix),
		})
	}

	return func(db *gorm.DB) *gorm.DB {
		for _, c := range conds {
			db = db.Where(c.sql, c.pattern)
		}
		return db
	}, nil
}

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *book.Book {
	return &book.Book{
		ID:        model.ID,
		Title:     model.Title,
		Author:    model.Author,
		ISBN:      model.ISBN,
		CreatedAt: model.CreatedAt,
	}
}

func toBookEntities(models []BookModel) []*book.Book {
	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books
}

// getDB 从context获取事务DB,如果没有则使用默认DB
func (r *bookRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFrom(ctx, r.db).WithContext(ctx)
}
