package client

import (
	"testing"
	"time"

	"github.com/spec-kit/admin-panel/internal/domain"
)

func notice(id int64, pinned bool, t time.Time) domain.Notice {
	return domain.Notice{ID: id, Title: "n", IsPinned: pinned, Time: t}
}

func TestSortNoticesPinnedFirstThenNewest(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	input := []domain.Notice{
		notice(1, false, base.Add(3*time.Hour)),
		notice(2, true, base),
		notice(3, false, base.Add(1*time.Hour)),
		notice(4, true, base.Add(2*time.Hour)),
	}

	sorted := SortNotices(input)

	wantOrder := []int64{4, 2, 1, 3}
	for i, want := range wantOrder {
		if sorted[i].ID != want {
			t.Fatalf("Expected order %v, got %v at index %d", wantOrder, sorted[i].ID, i)
		}
	}
}

func TestSortNoticesInvariant(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	input := []domain.Notice{
		notice(1, false, base.Add(5*time.Minute)),
		notice(2, true, base.Add(1*time.Minute)),
		notice(3, false, base.Add(9*time.Minute)),
		notice(4, false, base.Add(9*time.Minute)),
		notice(5, true, base.Add(7*time.Minute)),
		notice(6, false, base),
	}

	sorted := SortNotices(input)

	for i := 0; i < len(sorted)-1; i++ {
		x, y := sorted[i], sorted[i+1]
		if !x.IsPinned && y.IsPinned {
			t.Errorf("Unpinned %d before pinned %d", x.ID, y.ID)
		}
		if x.IsPinned == y.IsPinned && x.Time.Before(y.Time) {
			t.Errorf("Older %d before newer %d within same pin group", x.ID, y.ID)
		}
	}
}

func TestSortNoticesStableTies(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	input := []domain.Notice{
		notice(1, false, base),
		notice(2, false, base),
		notice(3, false, base),
	}

	sorted := SortNotices(input)

	for i, want := range []int64{1, 2, 3} {
		if sorted[i].ID != want {
			t.Fatalf("Expected stable tie order [1 2 3], got %v at index %d", sorted[i].ID, i)
		}
	}
}

func TestSortNoticesLeavesInputUntouched(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	input := []domain.Notice{
		notice(1, false, base),
		notice(2, true, base),
	}

	_ = SortNotices(input)

	if input[0].ID != 1 || input[1].ID != 2 {
		t.Errorf("SortNotices mutated its input: %v", input)
	}
}
