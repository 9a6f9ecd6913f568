package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/admin-panel/internal/domain"
	"github.com/spec-kit/admin-panel/internal/events"
	"github.com/spec-kit/admin-panel/internal/repository"
)

// AuditService persists administrative actions as audit log entries, which
// the Logs listing then serves back to administrators.
type AuditService struct {
	dispatcher events.Dispatcher
	logs       repository.LogRepository
	logger     *zap.Logger
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logs repository.LogRepository, logger *zap.Logger) *AuditService {
	return &AuditService{
		dispatcher: dispatcher,
		logs:       logs,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to admin events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventUserUpdated, a.handleEvent)
	a.dispatcher.Subscribe(events.EventUserDeleted, a.handleEvent)
	a.dispatcher.Subscribe(events.EventNoticeCreated, a.handleEvent)
	a.dispatcher.Subscribe(events.EventNoticeUpdated, a.handleEvent)
	a.dispatcher.Subscribe(events.EventNoticeDeleted, a.handleEvent)
}

func (a *AuditService) handleEvent(ctx context.Context, event events.Event) error {
	entry := &domain.LogEntry{
		Time:     event.Timestamp,
		Level:    levelFor(event.Type),
		Actor:    event.ActorID,
		RemoteIP: event.RemoteIP,
		Message:  messageFor(event),
	}
	if err := a.logs.Insert(ctx, entry); err != nil {
		a.logger.Warn("audit entry not persisted", zap.String("event", string(event.Type)), zap.Error(err))
		return err
	}
	return nil
}

func levelFor(eventType events.EventType) domain.LogLevel {
	switch eventType {
	case events.EventUserDeleted, events.EventNoticeDeleted:
		return domain.LogLevelWarn
	default:
		return domain.LogLevelInfo
	}
}

func messageFor(event events.Event) string {
	switch payload := event.Payload.(type) {
	case events.UserUpdatedPayload:
		return fmt.Sprintf("user %q updated (fields: %v)", payload.UserName, payload.Fields)
	case events.UserDeletedPayload:
		return fmt.Sprintf("user %q deleted", payload.UserName)
	case events.NoticePayload:
		return fmt.Sprintf("notice %q (%d): %s", payload.Title, payload.NoticeID, event.Type)
	default:
		return string(event.Type)
	}
}
