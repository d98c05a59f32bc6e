package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{23, 10, 3},
		{100, 100, 1},
		{5, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.total, tt.limit), "total=%d limit=%d", tt.total, tt.limit)
	}
}

func TestParams_Normalize(t *testing.T) {
	p := Params{}.Normalize()
	assert.Equal(t, DefaultPage, p.Page)
	assert.Equal(t, DefaultLimit, p.Limit)

	p = Params{Page: 3, Limit: 500}.Normalize()
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, MaxLimit, p.Limit)
}

func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, Params{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 20, Params{Page: 3, Limit: 10}.Offset())
}

func TestNewPage(t *testing.T) {
	page := NewPage[string](nil, 0, Params{Page: 1, Limit: 10})
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.TotalPages)

	page = NewPage([]string{"a", "b"}, 12, Params{Page: 2, Limit: 5})
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, int64(12), page.Total)
	assert.Equal(t, 3, page.TotalPages)
}
