package gormstore

import (
	"strings"

	"github.com/google/uuid"

	"github.com/xiebiao/bookshelf/internal/domain/book"
)

// likeEscape LIKE转义字符
// 不用反斜杠:MySQL字符串字面量里的'\'本身需要转义,'!'在三种数据库中写法一致
const likeEscape = "!"

var likeReplacer = strings.NewReplacer(
	likeEscape, likeEscape+likeEscape,
	"%", likeEscape+"%",
	"_", likeEscape+"_",
)

// prefixPattern 生成前缀匹配模式,只做转义
// 大小写折叠交给SQL的LOWER(),列与模式两侧必须用同一个函数
// (SQLite的LOWER只处理ASCII,Go侧先转小写会导致非ASCII前缀永远匹配不上)
// 例如:"50%_Off" → "50!%!_Off%"
func prefixPattern(prefix string) string {
	return likeReplacer.Replace(prefix) + "%"
}

// columnFor Field → 列名(白名单,避免把外部输入拼进SQL)
func columnFor(f book.Field) (string, bool) {
	switch f {
	case book.FieldTitle:
		return "title", true
	case book.FieldAuthor:
		return "author", true
	case book.FieldISBN:
		return "isbn", true
	default:
		return "", false
	}
}

func newID() string {
	return uuid.NewString()
}
