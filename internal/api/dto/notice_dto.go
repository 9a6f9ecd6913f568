package dto

// CreateNoticeRequest is the payload for a new notice.
type CreateNoticeRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	IsPinned bool   `json:"isPinned"`
}

// UpdateNoticeRequest is the partial-field patch body used for both edits and
// pin toggles. Absent fields leave stored values unchanged.
type UpdateNoticeRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	IsPinned *bool   `json:"isPinned"`
}
