package client

import (
	"sort"

	"github.com/spec-kit/admin-panel/internal/domain"
)

// SortNotices returns a new slice in display order: pinned notices first,
// then newest first. Entries that compare equal keep their input order. The
// input slice is never modified; ordering is recomputed per render and never
// persisted.
func SortNotices(notices []domain.Notice) []domain.Notice {
	sorted := make([]domain.Notice, len(notices))
	copy(sorted, notices)
	sort.SliceStable(sorted, func(i, j int) bool {
		x, y := sorted[i], sorted[j]
		if x.IsPinned != y.IsPinned {
			return x.IsPinned
		}
		return x.Time.After(y.Time)
	})
	return sorted
}
