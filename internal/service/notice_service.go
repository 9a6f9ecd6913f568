package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/admin-panel/internal/domain"
	"github.com/spec-kit/admin-panel/internal/events"
	"github.com/spec-kit/admin-panel/internal/repository"
	apperrors "github.com/spec-kit/admin-panel/pkg/util/errorutil"
)

const noticeListCacheKey = "notices:list"

// NoticeService manages platform notices. Listings are served from a
// best-effort redis cache that every mutation invalidates; a cache failure
// degrades to the database, never to an error.
type NoticeService struct {
	notices    repository.NoticeRepository
	cache      *redis.Client
	cacheTTL   time.Duration
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NoticeDependencies bundles collaborators for the notice service.
type NoticeDependencies struct {
	NoticeRepo repository.NoticeRepository
	Cache      *redis.Client
	CacheTTL   time.Duration
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NoticePatch describes a partial notice update. A nil field leaves the
// stored value unchanged. The stored timestamp is bumped only when title or
// content change; a pin-only patch preserves it.
type NoticePatch struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	IsPinned *bool   `json:"isPinned"`
}

// NewNoticeService constructs the service.
func NewNoticeService(deps NoticeDependencies) *NoticeService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NoticeService{
		notices:    deps.NoticeRepo,
		cache:      deps.Cache,
		cacheTTL:   deps.CacheTTL,
		dispatcher: deps.Dispatcher,
		logger:     logger,
	}
}

// ListNotices returns all notices pinned first, newest first.
func (s *NoticeService) ListNotices(ctx context.Context) ([]domain.Notice, error) {
	if cached, ok := s.cachedList(ctx); ok {
		return cached, nil
	}

	notices, err := s.notices.List(ctx)
	if err != nil {
		return nil, err
	}
	s.storeList(ctx, notices)
	return notices, nil
}

// CreateNotice persists a new notice and returns it with its assigned id.
func (s *NoticeService) CreateNotice(ctx context.Context, actorID, title, content string, isPinned bool) (*domain.Notice, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperrors.NewValidationError("title required", nil)
	}

	notice := &domain.Notice{
		Title:    title,
		Content:  content,
		IsPinned: isPinned,
		Time:     time.Now().UTC(),
	}
	if err := s.notices.Create(ctx, notice); err != nil {
		return nil, err
	}

	s.invalidateList(ctx)
	s.publish(ctx, actorID, events.EventNoticeCreated, notice)
	return notice, nil
}

// UpdateNotice applies a partial patch. Used both for edits and for pin
// toggles; the caller decides which fields to set.
func (s *NoticeService) UpdateNotice(ctx context.Context, actorID string, id int64, patch NoticePatch) (*domain.Notice, error) {
	notice, err := s.notices.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("notice")
		}
		return nil, err
	}

	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return nil, apperrors.NewValidationError("title required", nil)
		}
		notice.Title = *patch.Title
	}
	if patch.Content != nil {
		notice.Content = *patch.Content
	}
	if patch.IsPinned != nil {
		notice.IsPinned = *patch.IsPinned
	}
	if patch.Title != nil || patch.Content != nil {
		notice.Time = time.Now().UTC()
	}

	if err := s.notices.Update(ctx, notice); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("notice")
		}
		return nil, err
	}

	s.invalidateList(ctx)
	s.publish(ctx, actorID, events.EventNoticeUpdated, notice)
	return notice, nil
}

// DeleteNotice removes a notice.
func (s *NoticeService) DeleteNotice(ctx context.Context, actorID string, id int64) error {
	notice, err := s.notices.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("notice")
		}
		return err
	}

	if err := s.notices.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("notice")
		}
		return err
	}

	s.invalidateList(ctx)
	s.publish(ctx, actorID, events.EventNoticeDeleted, notice)
	return nil
}

func (s *NoticeService) cachedList(ctx context.Context) ([]domain.Notice, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, noticeListCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("notice cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var notices []domain.Notice
	if err := json.Unmarshal(raw, &notices); err != nil {
		s.logger.Warn("notice cache corrupt; dropping", zap.Error(err))
		s.invalidateList(ctx)
		return nil, false
	}
	return notices, true
}

func (s *NoticeService) storeList(ctx context.Context, notices []domain.Notice) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(notices)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, noticeListCacheKey, raw, s.cacheTTL).Err(); err != nil {
		s.logger.Warn("notice cache write failed", zap.Error(err))
	}
}

func (s *NoticeService) invalidateList(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, noticeListCacheKey).Err(); err != nil {
		s.logger.Warn("notice cache invalidation failed", zap.Error(err))
	}
}

func (s *NoticeService) publish(ctx context.Context, actorID string, eventType events.EventType, notice *domain.Notice) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		ActorID:   actorID,
		Timestamp: time.Now().UTC(),
		Payload: events.NoticePayload{
			NoticeID: notice.ID,
			Title:    notice.Title,
		},
	})
}
