package events

import (
	"time"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserUpdated   EventType = "user_updated"
	EventUserDeleted   EventType = "user_deleted"
	EventNoticeCreated EventType = "notice_created"
	EventNoticeUpdated EventType = "notice_updated"
	EventNoticeDeleted EventType = "notice_deleted"
)

// Event represents an administrative action emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ActorID   string      `json:"actor_id"`
	RemoteIP  string      `json:"remote_ip,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserUpdatedPayload payload.
type UserUpdatedPayload struct {
	UserID   string   `json:"user_id"`
	UserName string   `json:"user_name"`
	Fields   []string `json:"fields"`
}

// UserDeletedPayload payload.
type UserDeletedPayload struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
}

// NoticePayload payload shared by notice events.
type NoticePayload struct {
	NoticeID int64  `json:"notice_id"`
	Title    string `json:"title"`
}
