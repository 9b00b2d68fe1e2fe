package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/books/list", nil)
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSuccess(t *testing.T) {
	c, w := newContext()
	Success(c, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Contains(t, body, "data")
	assert.Nil(t, body["data"])
	assert.Equal(t, "", body["msg"])
}

func TestError(t *testing.T) {
	t.Run("存储错误不泄露细节", func(t *testing.T) {
		c, w := newContext()
		Error(c, apperrors.Wrap(errors.New("pq: password authentication failed"), "query books failed"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "pq:")
		assert.NotContains(t, w.Body.String(), "query books failed")
		body := decode(t, w)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Internal server error", body["msg"])
	})

	t.Run("未知错误按500处理", func(t *testing.T) {
		c, w := newContext()
		Error(c, errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal server error", decode(t, w)["msg"])
	})

	t.Run("资源不存在返回404", func(t *testing.T) {
		c, w := newContext()
		Error(c, apperrors.ErrBookNotFound)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Book not found", decode(t, w)["msg"])
	})
}

func TestValidationError(t *testing.T) {
	c, w := newContext()
	ValidationError(c, "isbn is required")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	assert.Nil(t, body["data"])
	assert.Equal(t, "isbn is required", body["msg"])
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 2))
	assert.Equal(t, 1, TotalPages(2, 2))
	assert.Equal(t, 2, TotalPages(3, 2))
	assert.Equal(t, 1, TotalPages(3, 10))
	assert.Equal(t, 0, TotalPages(3, 0))

	p := NewPagination(5, 2, 2)
	assert.Equal(t, Pagination{TotalPages: 3, CurrentPage: 2, PageSize: 2, Total: 5}, p)
}
