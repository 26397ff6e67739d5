// Package paginate splits ordered record sets into fixed-size pages for template rendering.
package paginate

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when the requested page size is not a positive integer.
var ErrInvalidArgument = errors.New("invalid argument")

// Paginate splits items into consecutive pages of pageSize elements.
// Every page is full except possibly the last one. An empty input yields exactly one empty page,
// so templates always have at least one page to iterate over.
// Pages share the backing array of items but have their capacity capped, so appending to a page
// never overwrites the next one.
func Paginate[T any](items []T, pageSize int) ([][]T, error) {
	if pageSize <= 0 {
		return nil, fmt.Errorf("%w: page size must be > 0, got %d", ErrInvalidArgument, pageSize)
	}
	if len(items) == 0 {
		return [][]T{{}}, nil
	}

	count := (len(items) + pageSize - 1) / pageSize
	pages := make([][]T, 0, count)
	for start := 0; start < len(items); start += pageSize {
		end := min(start+pageSize, len(items))
		pages = append(pages, items[start:end:end])
	}
	return pages, nil
}

// PageCount returns how many pages Paginate produces for n items.
func PageCount(n, pageSize int) (int, error) {
	if pageSize <= 0 {
		return 0, fmt.Errorf("%w: page size must be > 0, got %d", ErrInvalidArgument, pageSize)
	}
	if n <= 0 {
		return 1, nil
	}
	return (n + pageSize - 1) / pageSize, nil
}
