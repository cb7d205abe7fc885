package model

// Page mirrors the paginated envelope every listing backend returns.
// A new page always replaces local state, it is never appended.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}
