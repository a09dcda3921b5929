package queryparams

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListParams_Validate(t *testing.T) {
	p := ListParams{Page: -1, PerPage: 500, OrderBy: "random"}
	p.Validate()
	assert.Equal(t, DefaultPage, p.Page)
	assert.Equal(t, MaxPerPage, p.PerPage)
	assert.Equal(t, DefaultOrderBy, p.OrderBy)
	assert.Zero(t, p.CalculateOffset())

	p = ListParams{Page: 3, PerPage: 10, OrderBy: "asc"}
	p.Validate()
	assert.Equal(t, 20, p.CalculateOffset())
}

func TestNewPaginatedResult(t *testing.T) {
	result := NewPaginatedResult([]int{1, 2}, 21, ListParams{Page: 2, PerPage: 10})
	assert.Equal(t, 3, result.Meta.TotalPages)
	assert.Equal(t, 2, result.Meta.CurrentPage)
	assert.Zero(t, CalculateTotalPages(0, 10))
}
