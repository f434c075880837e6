package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attidev/storefront/internal/catalog"
)

func ids(products []catalog.Product) []int {
	out := make([]int, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func Test_Compose_Ordering(t *testing.T) {
	remote := []catalog.Product{
		{ID: 1, Title: "Mascara"},
		{ID: 2, Title: "Eyeshadow"},
	}
	local := []catalog.Product{
		{ID: 101, Title: "Lipstick"},
		{ID: 100, Title: "Powder"},
	}

	testCases := []struct {
		name     string
		excluded map[int]struct{}
		query    string
		sort     Sort
		want     []int
	}{
		{
			name: "local products come first, both groups keep their order",
			want: []int{101, 100, 1, 2},
		},
		{
			name:     "excluded remote products are dropped",
			excluded: map[int]struct{}{1: {}},
			want:     []int{101, 100, 2},
		},
		{
			name:  "search matches the title case-insensitively",
			query: "MASC",
			want:  []int{1},
		},
		{
			name:  "search applies to local products too",
			query: "lip",
			want:  []int{101},
		},
		{
			name: "an active sort reorders across both groups",
			sort: Sort{Field: FieldName},
			want: []int{2, 101, 1, 100},
		},
		{
			name: "descending article sort",
			sort: Sort{Field: FieldArticle, Direction: Descending},
			want: []int{101, 100, 2, 1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			got := Compose(remote, local, tc.excluded, tc.query, tc.sort)
			// then
			assert.Equal(t, tc.want, ids(got))
		})
	}
}

func Test_Compose_LocalProductsIgnoreExclusions(t *testing.T) {
	// given: the same id hidden remotely and present locally
	remote := []catalog.Product{{ID: 5, Title: "Remote"}}
	local := []catalog.Product{{ID: 5, Title: "Local"}}
	excluded := map[int]struct{}{5: {}}
	// when
	got := Compose(remote, local, excluded, "", Sort{})
	// then: only the local copy survives
	require.Len(t, got, 1)
	assert.Equal(t, "Local", got[0].Title)
}

func Test_Compose_StableSort(t *testing.T) {
	// given: equal prices, distinct insertion order
	remote := []catalog.Product{
		{ID: 1, Title: "a", Price: 10},
		{ID: 2, Title: "b", Price: 10},
		{ID: 3, Title: "c", Price: 5},
	}
	// when
	got := Compose(remote, nil, nil, "", Sort{Field: FieldPrice})
	// then: ties keep their relative order
	assert.Equal(t, []int{3, 1, 2}, ids(got))
}

func Test_Compose_DoesNotMutateInputs(t *testing.T) {
	// given
	remote := []catalog.Product{
		{ID: 2, Title: "b"},
		{ID: 1, Title: "a"},
	}
	// when
	_ = Compose(remote, nil, nil, "", Sort{Field: FieldName})
	// then
	assert.Equal(t, []int{2, 1}, ids(remote))
}

func Test_Paginate(t *testing.T) {
	testCases := []struct {
		name     string
		total    int
		pageSize int
		page     int
		want     Pagination
	}{
		{
			name:  "full middle page",
			total: 57, pageSize: 20, page: 2,
			want: Pagination{Page: 2, PageSize: 20, Total: 57, TotalPages: 3, From: 21, To: 40},
		},
		{
			name:  "short last page",
			total: 57, pageSize: 20, page: 3,
			want: Pagination{Page: 3, PageSize: 20, Total: 57, TotalPages: 3, From: 41, To: 57},
		},
		{
			name:  "empty result still has one page",
			total: 0, pageSize: 20, page: 1,
			want: Pagination{Page: 1, PageSize: 20, Total: 0, TotalPages: 1, From: 0, To: 0},
		},
		{
			name:  "exact multiple",
			total: 40, pageSize: 20, page: 2,
			want: Pagination{Page: 2, PageSize: 20, Total: 40, TotalPages: 2, From: 21, To: 40},
		},
		{
			name:  "page below one is clamped",
			total: 10, pageSize: 20, page: 0,
			want: Pagination{Page: 1, PageSize: 20, Total: 10, TotalPages: 1, From: 1, To: 10},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Paginate(tc.total, tc.pageSize, tc.page)
			assert.Equal(t, tc.want, got)
		})
	}
}

func Test_Pagination_HasPrevNext(t *testing.T) {
	first := Paginate(57, 20, 1)
	assert.False(t, first.HasPrev())
	assert.True(t, first.HasNext())

	last := Paginate(57, 20, 3)
	assert.True(t, last.HasPrev())
	assert.False(t, last.HasNext())
}

// Locally created products are rendered ahead of the page but are not part
// of the remote total, so the counters describe the server's count only.
func Test_Paginate_CountsRemoteTotalOnly(t *testing.T) {
	remote := []catalog.Product{{ID: 1, Title: "a"}}
	local := []catalog.Product{{ID: 101, Title: "mine"}}

	visible := Compose(remote, local, nil, "", Sort{})
	pg := Paginate(1, 20, 1)

	assert.Len(t, visible, 2)
	assert.Equal(t, 1, pg.Total)
}
