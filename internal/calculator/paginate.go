package calculator

// Page is one page of a longer list.
type Page[T any] struct {
	Items      []T
	Page       int // 1-based
	TotalPages int
	TotalItems int
}

// Paginate slices items into fixed-size pages and returns the requested one.
// Page numbers are 1-based and clamped to [1, TotalPages]. An empty list has
// one empty page.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size <= 0 {
		size = len(items)
		if size == 0 {
			size = 1
		}
	}

	totalPages := (len(items) + size - 1) / size
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	end := start + size
	if end > len(items) {
		end = len(items)
	}

	return Page[T]{
		Items:      items[start:end],
		Page:       page,
		TotalPages: totalPages,
		TotalItems: len(items),
	}
}
