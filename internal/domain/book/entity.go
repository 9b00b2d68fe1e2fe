package book

import (
	"strings"
	"time"
)

// Book 图书实体
// 设计说明:
// 1. ID由存储层在插入时生成(UUID),之后不可变
// 2. Title/Author/ISBN均可为空(nil表示数据库中的NULL)
// 3. CreatedAt由存储层在插入时写入,之后不可变
type Book struct {
	ID        string
	Title     *string
	Author    *string
	ISBN      *string
	CreatedAt time.Time
}

// NewBook 创建新图书(工厂方法)
// 空字符串按NULL处理;ID与CreatedAt留给存储层分配
func NewBook(title, author, isbn string) *Book {
	return &Book{
		Title:  nullable(title),
		Author: nullable(author),
		ISBN:   nullable(isbn),
	}
}

// Value 读取可空字段,NULL返回空串
func Value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// nullable 空白字符串 → nil
func nullable(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
