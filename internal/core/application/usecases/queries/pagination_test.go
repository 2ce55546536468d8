package queries_test

import (
	"math"
	"testing"

	"ostrack/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate(t *testing.T) {
	items := make([]int, 0, 25)
	for i := 1; i <= 25; i++ {
		items = append(items, i)
	}

	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
		wantData  []int
	}{
		{"first page", 1, 10, 1, 10, items[0:10]},
		{"middle page", 2, 10, 2, 10, items[10:20]},
		{"last partial page", 3, 10, 3, 10, items[20:25]},
		{"past the end", 5, 10, 5, 10, []int{}},
		{"page below one snaps to first", 0, 10, 1, 10, items[0:10]},
		{"negative page snaps to first", -3, 10, 1, 10, items[0:10]},
		{"limit below one snaps to default", 1, 0, 1, 10, items[0:10]},
		{"limit larger than set", 1, 100, 1, 100, items},
		{"page number near max int", math.MaxInt / 10, 10, math.MaxInt / 10, 10, []int{}},
		{"page and limit both near max int", math.MaxInt, math.MaxInt, math.MaxInt, math.MaxInt, []int{}},
		{"huge limit on a later page", 2, math.MaxInt, 2, math.MaxInt, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := queries.Paginate(items, tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantLimit, got.Limit)
			assert.Equal(t, 25, got.Total)
			assert.Equal(t, tt.wantData, got.Data)
		})
	}
}

func TestPaginate_TotalPages(t *testing.T) {
	items := make([]string, 21)

	got := queries.Paginate(items, 1, 10)
	require.Equal(t, 3, got.TotalPages)

	got = queries.Paginate(items[:20], 1, 10)
	require.Equal(t, 2, got.TotalPages)

	got = queries.Paginate([]string{}, 1, 10)
	require.Zero(t, got.TotalPages)
	require.Empty(t, got.Data)
}
