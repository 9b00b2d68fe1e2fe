package book

// Field 可过滤/可更新的图书字段
type Field string

const (
	FieldTitle  Field = "title"
	FieldAuthor Field = "author"
	FieldISBN   Field = "isbn"
)

// ParseField 字符串 → Field,不认识的字段返回ErrUnknownField
func ParseField(s string) (Field, error) {
	switch Field(s) {
	case FieldTitle, FieldAuthor, FieldISBN:
		return Field(s), nil
	default:
		return "", ErrUnknownField
	}
}

// Filter 列表过滤条件
// 设计说明:
// 1. 每个字段做大小写不敏感的前缀匹配(值以给定字符串开头)
// 2. 空串表示该字段不参与过滤
// 3. 多个字段同时给出时按AND组合
type Filter struct {
	Title  string
	Author string
	ISBN   string
}

// Criterion 单个前缀条件
type Criterion struct {
	Field  Field
	Prefix string
}

// Set 设置某个字段的前缀
func (f *Filter) Set(field Field, prefix string) {
	switch field {
	case FieldTitle:
		f.Title = prefix
	case FieldAuthor:
		f.Author = prefix
	case FieldISBN:
		f.ISBN = prefix
	}
}

// Criteria 返回非空条件,顺序固定为title、author、isbn
func (f Filter) Criteria() []Criterion {
	var out []Criterion
	for _, c := range []Criterion{
		{Field: FieldTitle, Prefix: f.Title},
		{Field: FieldAuthor, Prefix: f.Author},
		{Field: FieldISBN, Prefix: f.ISBN},
	} {
		if c.Prefix != "" {
			out = append(out, c)
		}
	}
	return out
}

// IsEmpty 是否没有任何过滤条件
func (f Filter) IsEmpty() bool {
	return len(f.Criteria()) == 0
}

// Patch 部分更新
// nil表示不修改该字段;非nil则覆盖(空串写为NULL)
type Patch struct {
	Title  *string
	Author *string
	ISBN   *string
}

// ApplyTo 将Patch合并到实体,ID与CreatedAt不受影响
func (p Patch) ApplyTo(b *Book) {
	if p.Title != nil {
		b.Title = nullable(*p.Title)
	}
	if p.Author != nil {
		b.Author = nullable(*p.Author)
	}
	if p.ISBN != nil {
		b.ISBN = nullable(*p.ISBN)
	}
}

// IsEmpty 是否没有任何字段需要修改
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Author == nil && p.ISBN == nil
}
