package models

// ListKind names one of the two per-user id sets.
type ListKind string

const (
	// Favourites holds the ids a user marked as favourite.
	Favourites ListKind = "favourites"

	// History holds the ids a user has viewed.
	History ListKind = "history"
)

// Valid reports whether k is a known list kind.
func (k ListKind) Valid() bool {
	return k == Favourites || k == History
}

func (k ListKind) String() string {
	return string(k)
}
