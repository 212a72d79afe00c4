package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant_dashboard/internal/models"
)

func restaurants(n int) []models.Restaurant {
	out := make([]models.Restaurant, n)
	for i := range out {
		out[i] = models.Restaurant{Name: fmt.Sprintf("Restaurant %d", i+1)}
	}
	return out
}

func TestFilterRestaurants(t *testing.T) {
	rs := []models.Restaurant{
		{Name: "Cafe X", DescAr: "قهوة"},
		{Name: "Burger Hub", DescAr: "برجر لذيذ"},
		{Name: "Pizza", DescAr: "مطعم CAFE إيطالي"},
	}

	assert.Len(t, FilterRestaurants(rs, ""), 3)
	assert.Len(t, FilterRestaurants(rs, "   "), 3)

	got := FilterRestaurants(rs, "cafe")
	require.Len(t, got, 2)
	assert.Equal(t, "Cafe X", got[0].Name)
	assert.Equal(t, "Pizza", got[1].Name)

	got = FilterRestaurants(rs, "برجر")
	require.Len(t, got, 1)
	assert.Equal(t, "Burger Hub", got[0].Name)

	assert.Empty(t, FilterRestaurants(rs, "sushi"))
}

func TestPaginate(t *testing.T) {
	rs := restaurants(23)

	p := Paginate(rs, 1, PageSize)
	assert.Len(t, p.Items, 10)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 1, p.From)
	assert.Equal(t, 10, p.To)

	p = Paginate(rs, 3, PageSize)
	assert.Len(t, p.Items, 3)
	assert.Equal(t, 21, p.From)
	assert.Equal(t, 23, p.To)
	assert.Equal(t, "Restaurant 21", p.Items[0].Name)

	p = Paginate(rs, 9, PageSize)
	assert.Equal(t, 3, p.Page, "page is clamped to the last page")
	assert.NotEmpty(t, p.Items)

	p = Paginate(rs, 0, PageSize)
	assert.Equal(t, 1, p.Page)
}

func TestPaginateNeverEmptyInBounds(t *testing.T) {
	for n := 1; n <= 35; n++ {
		rs := restaurants(n)
		pages := TotalPages(n, PageSize)
		for page := 1; page <= pages; page++ {
			p := Paginate(rs, page, PageSize)
			assert.NotEmpty(t, p.Items, "n=%d page=%d", n, page)
		}
	}
}

func TestPaginateEmpty(t *testing.T) {
	p := Paginate(nil, 1, PageSize)
	assert.Empty(t, p.Items)
	assert.Zero(t, p.TotalPages)
	assert.Zero(t, p.From)
	assert.Zero(t, p.To)
	assert.Empty(t, p.Buttons.Pages)
}

func TestPageWindow(t *testing.T) {
	tests := []struct {
		current, total int
		pages          []int
		ellipsis       bool
	}{
		{1, 1, []int{1}, false},
		{2, 4, []int{1, 2, 3, 4}, false},
		{1, 5, []int{1, 2, 3, 4, 5}, false},
		{3, 9, []int{1, 2, 3, 4, 5}, true},
		{5, 9, []int{3, 4, 5, 6, 7}, true},
		{7, 9, []int{5, 6, 7, 8, 9}, false},
		{9, 9, []int{5, 6, 7, 8, 9}, false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d of %d", tt.current, tt.total), func(t *testing.T) {
			b := PageWindow(tt.current, tt.total)
			assert.Equal(t, tt.pages, b.Pages)
			assert.Equal(t, tt.ellipsis, b.Ellipsis)
		})
	}
}
