package repository

const (
	DefaultPageLimit = 50
	MaxPageLimit     = 500
)

// Page is a limit/offset window for listing operations.
type Page struct {
	Limit  int
	Offset int
}

// Normalize clamps the window: a non-positive limit becomes DefaultPageLimit,
// limits above MaxPageLimit are capped and negative offsets start at zero.
func (p Page) Normalize() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// PageResult carries one window of items and the total matching the query,
// which stays accurate when the window lies past the end.
type PageResult[T any] struct {
	Items []T
	Total int
}
