package domain

import "time"

// FileRecord is metadata for an uploaded file. Byte storage lives elsewhere;
// the admin panel only lists records by their storage key.
type FileRecord struct {
	ID         string
	Name       string
	SizeBytes  int64
	StorageKey string
	UploadedAt time.Time
}
