package domain

import "time"

// Notice is a platform-wide announcement. A zero ID means the notice has not
// been persisted yet (draft state in an edit form).
type Notice struct {
	ID       int64     `json:"id"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	IsPinned bool      `json:"isPinned"`
	Time     time.Time `json:"time"`
}
