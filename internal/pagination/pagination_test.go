package pagination

import "testing"

func TestNormalizeDefaults(t *testing.T) {
	page := Normalize(0, 0, DefaultUserCount)
	if page.Skip != 0 || page.Count != 100 {
		t.Errorf("Expected {0 100}, got %+v", page)
	}
}

func TestNormalizeClampsNegativeSkip(t *testing.T) {
	page := Normalize(-5, 10, DefaultLogCount)
	if page.Skip != 0 {
		t.Errorf("Expected skip 0, got %d", page.Skip)
	}
	if page.Count != 10 {
		t.Errorf("Expected count 10, got %d", page.Count)
	}
}

func TestNormalizeKeepsLargeSkip(t *testing.T) {
	page := Normalize(1000, 10, DefaultUserCount)
	if page.Skip != 1000 {
		t.Errorf("Expected out-of-range skip preserved, got %d", page.Skip)
	}
}

func TestNormalizeNegativeCountFallsBack(t *testing.T) {
	page := Normalize(0, -1, DefaultFileCount)
	if page.Count != DefaultFileCount {
		t.Errorf("Expected count %d, got %d", DefaultFileCount, page.Count)
	}
}
