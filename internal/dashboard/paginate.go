package dashboard

// DefaultPageSize is the number of rows per page on both list views.
const DefaultPageSize = 10

// Page is one slice of a list plus the navigation state around it.
type Page[T any] struct {
	Items     []T  `json:"items"`
	Page      int  `json:"page"`
	PageSize  int  `json:"page_size"`
	PageCount int  `json:"page_count"`
	Total     int  `json:"total"`
	HasNext   bool `json:"has_next"`
	HasPrev   bool `json:"has_prev"`
}

// Paginate returns page number page (1-indexed) of items. Out-of-range page
// numbers are clamped, so a non-empty list never yields an empty page.
// An empty list is a single empty page.
func Paginate[T any](items []T, pageSize, page int) Page[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	pageCount := (len(items) + pageSize - 1) / pageSize
	if pageCount < 1 {
		pageCount = 1
	}
	page = clamp(page, 1, pageCount)

	start := (page - 1) * pageSize
	end := min(start+pageSize, len(items))

	pageItems := make([]T, 0, end-start)
	pageItems = append(pageItems, items[start:end]...)

	return Page[T]{
		Items:     pageItems,
		Page:      page,
		PageSize:  pageSize,
		PageCount: pageCount,
		Total:     len(items),
		HasNext:   page < pageCount,
		HasPrev:   page > 1,
	}
}

// Next is the following page number, or the current one on the last page.
func (p Page[T]) Next() int {
	if p.HasNext {
		return p.Page + 1
	}
	return p.Page
}

// Prev is the preceding page number, or the current one on the first page.
func (p Page[T]) Prev() int {
	if p.HasPrev {
		return p.Page - 1
	}
	return p.Page
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
