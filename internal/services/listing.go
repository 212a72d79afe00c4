package services

import (
	"strings"

	"restaurant_dashboard/internal/models"
)

const (
	PageSize       = 10
	maxPageButtons = 5
)

// FilterRestaurants keeps the restaurants whose name or Arabic description
// contains term, ignoring case. An empty term keeps everything.
func FilterRestaurants(rs []models.Restaurant, term string) []models.Restaurant {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return rs
	}

	filtered := make([]models.Restaurant, 0, len(rs))
	for _, r := range rs {
		if strings.Contains(strings.ToLower(r.Name), term) || strings.Contains(strings.ToLower(r.DescAr), term) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// PageButtons is the set of page numbers offered for navigation.
type PageButtons struct {
	Pages    []int `json:"pages"`
	Ellipsis bool  `json:"ellipsis"`
}

// Page is one window of a result set. From and To are 1-based and
// inclusive; both are zero for an empty set.
type Page struct {
	Items      []models.Restaurant `json:"items"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
	TotalPages int                 `json:"total_pages"`
	Total      int                 `json:"total"`
	From       int                 `json:"from"`
	To         int                 `json:"to"`
	Buttons    PageButtons         `json:"buttons"`
}

func TotalPages(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// Paginate slices rs into the requested page, clamping page to the valid
// range so an in-range request never yields an empty page.
func Paginate(rs []models.Restaurant, page, size int) Page {
	if size <= 0 {
		size = PageSize
	}
	total := len(rs)
	pages := TotalPages(total, size)

	if page < 1 {
		page = 1
	}
	if pages > 0 && page > pages {
		page = pages
	}

	p := Page{
		Items:      []models.Restaurant{},
		Page:       page,
		PageSize:   size,
		TotalPages: pages,
		Total:      total,
		Buttons:    PageWindow(page, pages),
	}
	if total == 0 {
		return p
	}

	start := (page - 1) * size
	end := min(start+size, total)
	p.Items = rs[start:end]
	p.From = start + 1
	p.To = end
	return p
}

// PageWindow picks up to five page numbers around current: the first five
// near the start, the last five near the end, otherwise current±2.
func PageWindow(current, total int) PageButtons {
	if total <= 0 {
		return PageButtons{Pages: []int{}}
	}

	count := min(total, maxPageButtons)
	var first int
	switch {
	case total <= maxPageButtons:
		first = 1
	case current <= 3:
		first = 1
	case current >= total-2:
		first = total - 4
	default:
		first = current - 2
	}

	pages := make([]int, count)
	for i := range pages {
		pages[i] = first + i
	}
	return PageButtons{
		Pages:    pages,
		Ellipsis: total > maxPageButtons && pages[count-1] < total,
	}
}
