package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanWindowDefaultsYLimites(t *testing.T) {
	w := PlanWindow(0, 0, MaxLimitArticulos, false)
	assert.Equal(t, 1, w.Page)
	assert.Equal(t, DefaultLimit, w.Limit)
	assert.Equal(t, 0, w.Offset)

	w = PlanWindow(3, 50, MaxLimitArticulos, false)
	assert.Equal(t, 100, w.Offset)

	// Capability cap
	w = PlanWindow(1, 500, MaxLimitArticulos, false)
	assert.Equal(t, MaxLimitArticulos, w.Limit)
	w = PlanWindow(1, 50, MaxLimitAplicaciones, false)
	assert.Equal(t, MaxLimitAplicaciones, w.Limit)
}

func TestPlanWindowOffset(t *testing.T) {
	for _, tc := range []struct {
		page, limit, offset int
	}{
		{1, 1, 0},
		{1, 20, 0},
		{2, 20, 20},
		{7, 13, 78},
	} {
		w := PlanWindow(tc.page, tc.limit, MaxLimitArticulos, false)
		assert.Equal(t, tc.offset, w.Offset, "page=%d limit=%d", tc.page, tc.limit)
	}
}

func TestPlanWindowBot(t *testing.T) {
	w := PlanWindow(5, 10, MaxLimitArticulos, true)
	assert.True(t, w.Bot)
	assert.Zero(t, w.Limit)
}

func TestPaginate(t *testing.T) {
	w := PlanWindow(2, 20, MaxLimitArticulos, false)
	pi := Paginate(w, 45)
	assert.Equal(t, int64(45), pi.Total)
	assert.Equal(t, 3, pi.TotalPages)
	assert.True(t, pi.HasNext)
	assert.True(t, pi.HasPrev)

	pi = Paginate(PlanWindow(3, 20, MaxLimitArticulos, false), 45)
	assert.False(t, pi.HasNext)
}

func TestPaginateCapDePaginas(t *testing.T) {
	// 1M rows at 20 per page would be 50k pages; the cap clamps to 100
	pi := Paginate(PlanWindow(1, 20, MaxLimitArticulos, false), 1_000_000)
	assert.Equal(t, MaxTotalPages, pi.TotalPages)

	// hasNext is evaluated after the cap: page 100 is the last reachable one
	pi = Paginate(PlanWindow(100, 20, MaxLimitArticulos, false), 1_000_000)
	assert.False(t, pi.HasNext)
	assert.True(t, pi.HasPrev)
}

func TestPaginateVacio(t *testing.T) {
	pi := Paginate(PlanWindow(1, 20, MaxLimitArticulos, false), 0)
	assert.Zero(t, pi.TotalPages)
	assert.Zero(t, pi.Total)
	assert.False(t, pi.HasNext)
	assert.False(t, pi.HasPrev)
}
