// Package client holds the admin UI's notice state: a cached copy of the
// server's notice collection kept consistent through single-item merges, so
// a mutation never forces a full refetch.
package client

import (
	"context"
	"errors"

	"github.com/spec-kit/admin-panel/internal/domain"
)

// Notifier surfaces transient user-visible notifications.
type Notifier interface {
	Success(message string)
	Error(title string)
}

// Confirmer gates destructive actions behind explicit consent. The prompt
// names the notice title.
type Confirmer interface {
	ConfirmDelete(title string) bool
}

// Controller owns the client's last-known notice collection for one UI
// session. It is single-goroutine by design, mirroring a cooperative UI task
// model: the disabled flag serializes user re-invocation, not goroutines.
// No other component may mutate the collection.
type Controller struct {
	api      NoticeAPI
	notifier Notifier
	confirm  Confirmer

	notices  []domain.Notice
	disabled bool
}

// NewController constructs a controller with an empty collection.
func NewController(api NoticeAPI, notifier Notifier, confirm Confirmer) *Controller {
	return &Controller{api: api, notifier: notifier, confirm: confirm}
}

// Refresh replaces the collection with the server's current listing. Used on
// initial load only; every later mutation merges locally.
func (c *Controller) Refresh(ctx context.Context) error {
	notices, err := c.api.List(ctx)
	if err != nil {
		return err
	}
	c.notices = notices
	return nil
}

// Notices returns a copy of the raw collection, unordered.
func (c *Controller) Notices() []domain.Notice {
	out := make([]domain.Notice, len(c.notices))
	copy(out, c.notices)
	return out
}

// Ordered returns the collection in display order: pinned first, then newest
// first.
func (c *Controller) Ordered() []domain.Notice {
	return SortNotices(c.notices)
}

// Pin toggles the pinned flag of a notice. A second invocation while one is
// outstanding is a no-op: no request is issued and the collection is
// unchanged. On success the toggled copy replaces the cached entry in place;
// the guard is released on every exit path.
func (c *Controller) Pin(ctx context.Context, notice domain.Notice) error {
	if c.disabled {
		return nil
	}
	c.disabled = true
	defer func() { c.disabled = false }()

	toggled := !notice.IsPinned
	if _, err := c.api.Update(ctx, notice.ID, NoticePatch{IsPinned: &toggled}); err != nil {
		return err
	}

	for i := range c.notices {
		if c.notices[i].ID == notice.ID {
			updated := notice
			updated.IsPinned = toggled
			c.notices[i] = updated
			break
		}
	}
	return nil
}

// RequestDelete opens the confirmation gate for a deletion. Nothing happens
// without explicit consent, and nothing happens while a guarded action is
// outstanding.
func (c *Controller) RequestDelete(ctx context.Context, notice domain.Notice) error {
	if c.disabled {
		return nil
	}
	if !c.confirm.ConfirmDelete(notice.Title) {
		return nil
	}
	return c.ConfirmDelete(ctx, notice)
}

// ConfirmDelete issues the delete request. Success removes exactly the
// matching entry and notifies positively; failure notifies with the server's
// error title and leaves the collection untouched. The confirmation dialog
// itself serializes the user here, so the guard is not taken.
func (c *Controller) ConfirmDelete(ctx context.Context, notice domain.Notice) error {
	if err := c.api.Delete(ctx, notice.ID); err != nil {
		c.notifier.Error(errorTitle(err))
		return err
	}

	filtered := make([]domain.Notice, 0, len(c.notices))
	for _, n := range c.notices {
		if n.ID != notice.ID {
			filtered = append(filtered, n)
		}
	}
	c.notices = filtered
	c.notifier.Success("notice deleted")
	return nil
}

// Save persists a draft (zero ID) through create, or an existing notice
// through a full-field patch, then merges the server's copy into the
// collection. Runs independently of the pin/delete guard.
func (c *Controller) Save(ctx context.Context, notice domain.Notice) (domain.Notice, error) {
	var (
		saved domain.Notice
		err   error
	)
	if notice.ID == 0 {
		saved, err = c.api.Create(ctx, notice)
	} else {
		saved, err = c.api.Update(ctx, notice.ID, NoticePatch{
			Title:    &notice.Title,
			Content:  &notice.Content,
			IsPinned: &notice.IsPinned,
		})
	}
	if err != nil {
		return domain.Notice{}, err
	}
	c.UpsertLocal(saved)
	return saved, nil
}

// UpsertLocal replaces the entry with a matching id, or prepends when absent
// so a new notice surfaces before the next re-sort.
func (c *Controller) UpsertLocal(notice domain.Notice) {
	for i := range c.notices {
		if c.notices[i].ID == notice.ID {
			c.notices[i] = notice
			return
		}
	}
	c.notices = append([]domain.Notice{notice}, c.notices...)
}

// Reset clears the collection and the guard. Called on controller teardown.
func (c *Controller) Reset() {
	c.notices = nil
	c.disabled = false
}

func errorTitle(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
