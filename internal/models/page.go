package models

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// NormalizePage: page < 1 -> 1, размер вне [1, MaxPageSize] -> DefaultPageSize
func NormalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize
	}
	return page, pageSize
}
