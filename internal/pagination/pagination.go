// Package pagination normalizes the (skip, count) listing window shared by
// every admin listing endpoint.
package pagination

// DefaultCount values per resource family.
const (
	DefaultUserCount = 100
	DefaultTeamCount = 100
	DefaultLogCount  = 50
	DefaultFileCount = 50
)

// Page is a normalized listing window. Skip is never negative and Count is
// always positive.
type Page struct {
	Skip  int
	Count int
}

// Normalize clamps raw query values into a usable window. A non-positive
// count falls back to the resource default; a negative skip becomes zero.
// An out-of-range skip is legal and simply yields an empty listing.
func Normalize(skip, count, fallback int) Page {
	if skip < 0 {
		skip = 0
	}
	if count <= 0 {
		count = fallback
	}
	return Page{Skip: skip, Count: count}
}
