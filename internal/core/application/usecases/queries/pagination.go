package queries

// defaultPageLimit applies when the caller does not send a usable limit.
const defaultPageLimit = 10

// Page is a one-indexed window over a filtered result set.
type Page[T any] struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
	Data       []T `json:"data"`
}

// Paginate slices items into the requested window. Page numbers below one
// snap to the first page; limits below one snap to the default. A window past
// the end yields empty data with the counters intact.
func Paginate[T any](items []T, page, limit int) Page[T] {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}

	total := len(items)
	totalPages := 0
	if total > 0 {
		totalPages = (total-1)/limit + 1
	}

	// The start index is only computed for pages inside the set, which keeps
	// the multiplication bounded by the slice length. Arbitrary page and
	// limit values arrive here straight from query parameters.
	start := total
	if page <= totalPages {
		start = (page - 1) * limit
	}
	end := total
	if total-start > limit {
		end = start + limit
	}

	return Page[T]{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		Data:       items[start:end],
	}
}
