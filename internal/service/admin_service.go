package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/admin-panel/internal/domain"
	"github.com/spec-kit/admin-panel/internal/events"
	"github.com/spec-kit/admin-panel/internal/pagination"
	"github.com/spec-kit/admin-panel/internal/repository"
	apperrors "github.com/spec-kit/admin-panel/pkg/util/errorutil"
)

// AdminService coordinates privileged listing and mutation of platform
// resources. Mutations are committed before returning and published to the
// dispatcher for auditing.
type AdminService struct {
	users      repository.UserRepository
	teams      repository.TeamRepository
	logs       repository.LogRepository
	files      repository.FileRepository
	dispatcher events.Dispatcher
}

// AdminDependencies bundles repositories for the admin service.
type AdminDependencies struct {
	UserRepo   repository.UserRepository
	TeamRepo   repository.TeamRepository
	LogRepo    repository.LogRepository
	FileRepo   repository.FileRepository
	Dispatcher events.Dispatcher
}

// UserPatch describes a partial user update. A nil field leaves the stored
// value unchanged; there is no way to clear a field through a patch.
type UserPatch struct {
	UserName *string
	Email    *string
	Bio      *string
	Role     *domain.Role
	RealName *string
	Phone    *string
}

func (p UserPatch) fields() []string {
	var names []string
	if p.UserName != nil {
		names = append(names, "userName")
	}
	if p.Email != nil {
		names = append(names, "email")
	}
	if p.Bio != nil {
		names = append(names, "bio")
	}
	if p.Role != nil {
		names = append(names, "role")
	}
	if p.RealName != nil {
		names = append(names, "realName")
	}
	if p.Phone != nil {
		names = append(names, "phone")
	}
	return names
}

// NewAdminService constructs the service.
func NewAdminService(deps AdminDependencies) *AdminService {
	return &AdminService{
		users:      deps.UserRepo,
		teams:      deps.TeamRepo,
		logs:       deps.LogRepo,
		files:      deps.FileRepo,
		dispatcher: deps.Dispatcher,
	}
}

// ListUsers returns at most page.Count users ordered by id, skipping
// page.Skip. An out-of-range skip yields an empty listing, never an error.
func (s *AdminService) ListUsers(ctx context.Context, page pagination.Page) ([]domain.User, error) {
	return s.users.List(ctx, page.Skip, page.Count)
}

// GetUser resolves a single user by id.
func (s *AdminService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user")
		}
		return nil, err
	}
	return user, nil
}

// UpdateUser applies a partial patch to the stored user. Each set field
// overwrites the stored one; unset fields are left untouched. The update is
// persisted before returning.
func (s *AdminService) UpdateUser(ctx context.Context, actorID, id string, patch UserPatch) (*domain.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Role != nil && !patch.Role.IsValid() {
		return nil, apperrors.NewValidationError("unknown role", map[string]any{"role": *patch.Role})
	}

	if patch.UserName != nil {
		user.UserName = *patch.UserName
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Bio != nil {
		user.Bio = *patch.Bio
	}
	if patch.Role != nil {
		user.Role = *patch.Role
	}
	if patch.RealName != nil {
		user.RealName = *patch.RealName
	}
	if patch.Phone != nil {
		user.Phone = *patch.Phone
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user")
		}
		return nil, err
	}

	s.publish(ctx, actorID, events.EventUserUpdated, events.UserUpdatedPayload{
		UserID:   user.ID,
		UserName: user.UserName,
		Fields:   patch.fields(),
	})
	return user, nil
}

// DeleteUser removes a user. An administrator can never delete the account
// matching their own identity, regardless of role.
func (s *AdminService) DeleteUser(ctx context.Context, actorID, id string) error {
	if id == actorID {
		return apperrors.NewSelfDelete()
	}

	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}

	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("user")
		}
		return err
	}

	s.publish(ctx, actorID, events.EventUserDeleted, events.UserDeletedPayload{
		UserID:   user.ID,
		UserName: user.UserName,
	})
	return nil
}

// ListTeams returns a window of teams.
func (s *AdminService) ListTeams(ctx context.Context, page pagination.Page) ([]domain.Team, error) {
	return s.teams.List(ctx, page.Skip, page.Count)
}

// ListLogs returns a window of audit log entries, newest first. The All
// sentinel disables level filtering; any other unknown level is a validation
// failure.
func (s *AdminService) ListLogs(ctx context.Context, page pagination.Page, level domain.LogLevel) ([]domain.LogEntry, error) {
	if level != domain.LogLevelAll && !level.IsValid() {
		return nil, apperrors.NewValidationError("unknown log level", map[string]any{"level": level})
	}
	return s.logs.List(ctx, page.Skip, page.Count, level)
}

// ListFiles returns a window of file metadata records.
func (s *AdminService) ListFiles(ctx context.Context, page pagination.Page) ([]domain.FileRecord, error) {
	return s.files.List(ctx, page.Skip, page.Count)
}

func (s *AdminService) publish(ctx context.Context, actorID string, eventType events.EventType, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		ActorID:   actorID,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	})
}
