package book

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// mockRepository 基于testify/mock的仓储替身
type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) ListAll(ctx context.Context) ([]*Book, error) {
	args := m.Called(ctx)
	books, _ := args.Get(0).([]*Book)
	return books, args.Error(1)
}

func (m *mockRepository) Filter(ctx context.Context, q FilterQuery) ([]*Book, int64, error) {
	args := m.Called(ctx, q)
	books, _ := args.Get(0).([]*Book)
	return books, args.Get(1).(int64), args.Error(2)
}

func (m *mockRepository) FindByID(ctx context.Context, id string) (*Book, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*Book)
	return b, args.Error(1)
}

func (m *mockRepository) Create(ctx context.Context, b *Book) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockRepository) Update(ctx context.Context, b *Book) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var errStore = apperrors.Wrap(errors.New("connection reset by peer"), "store failure")

func TestServiceListAll(t *testing.T) {
	ctx := context.Background()

	t.Run("返回仓储结果", func(t *testing.T) {
		repo := new(mockRepository)
		want := []*Book{{ID: "2"}, {ID: "1"}}
		repo.On("ListAll", ctx).Return(want, nil).Once()

		got, err := NewService(repo).ListAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		repo.AssertExpectations(t)
	})

	t.Run("存储故障向上传递", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("ListAll", ctx).Return(nil, errStore).Once()

		_, err := NewService(repo).ListAll(ctx)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeDatabaseError))
	})
}

func TestServiceFilter(t *testing.T) {
	ctx := context.Background()

	t.Run("透传过滤条件与分页", func(t *testing.T) {
		repo := new(mockRepository)
		filter := Filter{Title: "Harry"}
		repo.On("Filter", ctx, FilterQuery{Filter: filter, Offset: 4, Limit: 2}).
			Return([]*Book{{ID: "a"}}, int64(5), nil).Once()

		page, err := NewService(repo).Filter(ctx, filter, 4, 2)
		require.NoError(t, err)
		assert.Len(t, page.Books, 1)
		assert.Equal(t, int64(5), page.Total)
		repo.AssertExpectations(t)
	})

	t.Run("非法分页参数", func(t *testing.T) {
		repo := new(mockRepository)
		svc := NewService(repo)

		_, err := svc.Filter(ctx, Filter{}, -1, 10)
		assert.ErrorIs(t, err, ErrInvalidPagination)
		_, err = svc.Filter(ctx, Filter{}, 0, 0)
		assert.ErrorIs(t, err, ErrInvalidPagination)
		repo.AssertNotCalled(t, "Filter", mock.Anything, mock.Anything)
	})

	t.Run("存储故障", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("Filter", ctx, mock.Anything).Return(nil, int64(0), errStore).Once()

		_, err := NewService(repo).Filter(ctx, Filter{}, 0, 10)
		assert.ErrorIs(t, err, errStore)
	})
}

func TestServiceGetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("不存在返回ErrBookNotFound", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("FindByID", ctx, "missing").Return(nil, ErrBookNotFound).Once()

		_, err := NewService(repo).GetByID(ctx, "missing")
		assert.ErrorIs(t, err, ErrBookNotFound)
	})

	t.Run("空ID", func(t *testing.T) {
		_, err := NewService(new(mockRepository)).GetByID(ctx, "  ")
		assert.ErrorIs(t, err, ErrInvalidID)
	})
}

func TestServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("存储层回填ID与创建时间", func(t *testing.T) {
		repo := new(mockRepository)
		now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
		repo.On("Create", ctx, mock.AnythingOfType("*book.Book")).
			Run(func(args mock.Arguments) {
				b := args.Get(1).(*Book)
				b.ID = "generated"
				b.CreatedAt = now
			}).Return(nil).Once()

		b, err := NewService(repo).Create(ctx, "Dune", "Herbert", "111")
		require.NoError(t, err)
		assert.Equal(t, "generated", b.ID)
		assert.Equal(t, now, b.CreatedAt)
		assert.Equal(t, "Dune", Value(b.Title))
		assert.Equal(t, "Herbert", Value(b.Author))
		assert.Equal(t, "111", Value(b.ISBN))
	})

	t.Run("存储故障", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("Create", ctx, mock.Anything).Return(errStore).Once()

		b, err := NewService(repo).Create(ctx, "Dune", "Herbert", "111")
		assert.Nil(t, b)
		assert.ErrorIs(t, err, errStore)
	})
}

func TestServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("合并后保存", func(t *testing.T) {
		repo := new(mockRepository)
		existing := &Book{ID: "1", Title: strPtr("Book 1"), Author: strPtr("Author 1"), ISBN: strPtr("1234567890")}
		repo.On("FindByID", ctx, "1").Return(existing, nil).Once()
		repo.On("Update", ctx, mock.MatchedBy(func(b *Book) bool {
			return Value(b.Title) == "Updated Book 1" && Value(b.Author) == "Author 1" && Value(b.ISBN) == "1234567890"
		})).Return(nil).Once()

		b, err := NewService(repo).Update(ctx, "1", Patch{Title: strPtr("Updated Book 1")})
		require.NoError(t, err)
		assert.Equal(t, "Updated Book 1", Value(b.Title))
		repo.AssertExpectations(t)
	})

	t.Run("不存在时不保存", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("FindByID", ctx, "1").Return(nil, ErrBookNotFound).Once()

		b, err := NewService(repo).Update(ctx, "1", Patch{Title: strPtr("x")})
		assert.Nil(t, b)
		assert.ErrorIs(t, err, ErrBookNotFound)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("保存失败", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("FindByID", ctx, "1").Return(&Book{ID: "1"}, nil).Once()
		repo.On("Update", ctx, mock.Anything).Return(errStore).Once()

		_, err := NewService(repo).Update(ctx, "1", Patch{Title: strPtr("x")})
		assert.ErrorIs(t, err, errStore)
	})
}

func TestServiceDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("删除成功", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("Delete", ctx, "1").Return(nil).Once()
		assert.NoError(t, NewService(repo).Delete(ctx, "1"))
	})

	t.Run("不存在返回ErrBookNotFound", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("Delete", ctx, "nope").Return(ErrBookNotFound).Once()
		assert.ErrorIs(t, NewService(repo).Delete(ctx, "nope"), ErrBookNotFound)
	})

	t.Run("删除失败", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("Delete", ctx, "1").Return(errStore).Once()
		assert.ErrorIs(t, NewService(repo).Delete(ctx, "1"), errStore)
	})
}
