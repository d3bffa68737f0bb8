package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_Defaults(t *testing.T) {
	o := Normalize("", "", "", "")

	assert.Equal(t, 1, o.Page)
	assert.Equal(t, DefaultLimit, o.Limit)
	assert.Equal(t, DefaultSortBy, o.SortBy)
	assert.Equal(t, "desc", o.OrderBy)
}

func TestNormalize_Garbage(t *testing.T) {
	o := Normalize("abc", "-5", "price", "sideways")

	assert.Equal(t, 1, o.Page)
	assert.Equal(t, DefaultLimit, o.Limit)
	assert.Equal(t, "price", o.SortBy)
	assert.Equal(t, "desc", o.OrderBy)
}

func TestNormalize_Explicit(t *testing.T) {
	o := Normalize("3", "25", "date", "asc")

	assert.Equal(t, 3, o.Page)
	assert.Equal(t, 25, o.Limit)
	assert.Equal(t, "date", o.SortBy)
	assert.Equal(t, "asc", o.OrderBy)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Options{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 20, Options{Page: 3, Limit: 10}.Offset())
}

func TestNewMeta_RoundsUpPages(t *testing.T) {
	o := Options{Page: 2, Limit: 10}

	m := NewMeta(o, 31)
	assert.Equal(t, int64(31), m.TotalRecords)
	assert.Equal(t, int64(4), m.TotalPages)

	m = NewMeta(o, 30)
	assert.Equal(t, int64(3), m.TotalPages)

	m = NewMeta(o, 0)
	assert.Equal(t, int64(0), m.TotalPages)
}
