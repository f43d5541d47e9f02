package domain

// Page is one page of a newest-first listing together with the total count.
type Page[T any] struct {
	Items   []T
	Total   int
	Page    int
	PerPage int
}

// Offset returns the row offset for a 1-based page number.
func Offset(page, perPage int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * perPage
}
