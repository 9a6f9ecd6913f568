package client

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/spec-kit/admin-panel/internal/domain"
)

type fakeAPI struct {
	updateFn    func(ctx context.Context, id int64, patch NoticePatch) (domain.Notice, error)
	deleteFn    func(ctx context.Context, id int64) error
	createFn    func(ctx context.Context, draft domain.Notice) (domain.Notice, error)
	listFn      func(ctx context.Context) ([]domain.Notice, error)
	updateCalls int
	deleteCalls int
}

func (f *fakeAPI) List(ctx context.Context) ([]domain.Notice, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return nil, nil
}

func (f *fakeAPI) Create(ctx context.Context, draft domain.Notice) (domain.Notice, error) {
	if f.createFn != nil {
		return f.createFn(ctx, draft)
	}
	draft.ID = 99
	return draft, nil
}

func (f *fakeAPI) Update(ctx context.Context, id int64, patch NoticePatch) (domain.Notice, error) {
	f.updateCalls++
	if f.updateFn != nil {
		return f.updateFn(ctx, id, patch)
	}
	return domain.Notice{ID: id}, nil
}

func (f *fakeAPI) Delete(ctx context.Context, id int64) error {
	f.deleteCalls++
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type fakeNotifier struct {
	successes []string
	errors    []string
}

func (f *fakeNotifier) Success(message string) { f.successes = append(f.successes, message) }
func (f *fakeNotifier) Error(title string)     { f.errors = append(f.errors, title) }

type fakeConfirmer struct {
	answer bool
	titles []string
}

func (f *fakeConfirmer) ConfirmDelete(title string) bool {
	f.titles = append(f.titles, title)
	return f.answer
}

func newTestController(api *fakeAPI, notices ...domain.Notice) (*Controller, *fakeNotifier, *fakeConfirmer) {
	notifier := &fakeNotifier{}
	confirmer := &fakeConfirmer{answer: true}
	ctrl := NewController(api, notifier, confirmer)
	for i := len(notices) - 1; i >= 0; i-- {
		ctrl.UpsertLocal(notices[i])
	}
	return ctrl, notifier, confirmer
}

func TestPinTogglesOnlyPinFlag(t *testing.T) {
	t1 := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	original := domain.Notice{ID: 1, Title: "maintenance", Content: "window", IsPinned: false, Time: t1}
	api := &fakeAPI{}
	ctrl, _, _ := newTestController(api, original)

	if err := ctrl.Pin(context.Background(), original); err != nil {
		t.Fatalf("Pin returned error: %v", err)
	}

	want := original
	want.IsPinned = true
	got := ctrl.Notices()
	if len(got) != 1 || !reflect.DeepEqual(got[0], want) {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
	if api.updateCalls != 1 {
		t.Errorf("Expected one update call, got %d", api.updateCalls)
	}
}

func TestPinSendsPinOnlyPatch(t *testing.T) {
	original := domain.Notice{ID: 1, Title: "t", IsPinned: true, Time: time.Now()}
	api := &fakeAPI{
		updateFn: func(_ context.Context, id int64, patch NoticePatch) (domain.Notice, error) {
			if patch.Title != nil || patch.Content != nil {
				t.Errorf("Pin patch must not carry title/content: %+v", patch)
			}
			if patch.IsPinned == nil || *patch.IsPinned != false {
				t.Errorf("Expected isPinned=false patch, got %+v", patch.IsPinned)
			}
			return domain.Notice{ID: id}, nil
		},
	}
	ctrl, _, _ := newTestController(api, original)

	if err := ctrl.Pin(context.Background(), original); err != nil {
		t.Fatalf("Pin returned error: %v", err)
	}
}

func TestPinReentrantInvocationIsNoOp(t *testing.T) {
	original := domain.Notice{ID: 1, Title: "t", Time: time.Now()}
	var ctrl *Controller
	api := &fakeAPI{}
	api.updateFn = func(_ context.Context, id int64, _ NoticePatch) (domain.Notice, error) {
		// second click arrives while the first request is outstanding
		if err := ctrl.Pin(context.Background(), original); err != nil {
			t.Fatalf("re-entrant Pin errored: %v", err)
		}
		return domain.Notice{ID: id}, nil
	}
	ctrl, _, _ = newTestController(api, original)

	if err := ctrl.Pin(context.Background(), original); err != nil {
		t.Fatalf("Pin returned error: %v", err)
	}
	if api.updateCalls != 1 {
		t.Errorf("Expected exactly one network call, got %d", api.updateCalls)
	}
}

func TestPinReleasesGuardOnFailure(t *testing.T) {
	original := domain.Notice{ID: 1, Title: "t", Time: time.Now()}
	api := &fakeAPI{
		updateFn: func(_ context.Context, _ int64, _ NoticePatch) (domain.Notice, error) {
			return domain.Notice{}, &APIError{Status: 500, Message: "boom"}
		},
	}
	ctrl, _, _ := newTestController(api, original)

	if err := ctrl.Pin(context.Background(), original); err == nil {
		t.Fatal("Expected error from failing pin")
	}
	if got := ctrl.Notices(); got[0].IsPinned {
		t.Error("Failed pin must not mutate the collection")
	}

	// guard must be released, a later pin goes through
	api.updateFn = nil
	if err := ctrl.Pin(context.Background(), original); err != nil {
		t.Fatalf("Pin after failure returned error: %v", err)
	}
	if api.updateCalls != 2 {
		t.Errorf("Expected second pin to issue a call, got %d total", api.updateCalls)
	}
}

func TestConfirmDeleteRemovesExactlyMatchingEntry(t *testing.T) {
	t1 := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	keep := domain.Notice{ID: 2, Title: "keep", Content: "intact", Time: t1}
	doomed := domain.Notice{ID: 1, Title: "doomed", Time: t1}
	api := &fakeAPI{}
	ctrl, notifier, _ := newTestController(api, doomed, keep)

	if err := ctrl.ConfirmDelete(context.Background(), doomed); err != nil {
		t.Fatalf("ConfirmDelete returned error: %v", err)
	}

	got := ctrl.Notices()
	if len(got) != 1 || !reflect.DeepEqual(got[0], keep) {
		t.Errorf("Expected surviving entry %+v, got %+v", keep, got)
	}
	if len(notifier.successes) != 1 {
		t.Errorf("Expected one success notification, got %v", notifier.successes)
	}
}

func TestConfirmDeleteFailureLeavesCollectionUntouched(t *testing.T) {
	n1 := domain.Notice{ID: 1, Title: "a", Time: time.Now()}
	n2 := domain.Notice{ID: 2, Title: "b", Time: time.Now()}
	api := &fakeAPI{
		deleteFn: func(_ context.Context, _ int64) error {
			return &APIError{Status: 500, Message: "storage offline"}
		},
	}
	ctrl, notifier, _ := newTestController(api, n1, n2)
	before := ctrl.Notices()

	if err := ctrl.ConfirmDelete(context.Background(), n1); err == nil {
		t.Fatal("Expected error from failing delete")
	}

	if !reflect.DeepEqual(ctrl.Notices(), before) {
		t.Error("Failed delete must leave the collection byte-identical")
	}
	if len(notifier.errors) != 1 || notifier.errors[0] != "storage offline" {
		t.Errorf("Expected error notification with server title, got %v", notifier.errors)
	}
}

func TestRequestDeleteDeclinedIssuesNoCall(t *testing.T) {
	n := domain.Notice{ID: 1, Title: "really important", Time: time.Now()}
	api := &fakeAPI{}
	ctrl, _, confirmer := newTestController(api, n)
	confirmer.answer = false

	if err := ctrl.RequestDelete(context.Background(), n); err != nil {
		t.Fatalf("RequestDelete returned error: %v", err)
	}

	if api.deleteCalls != 0 {
		t.Errorf("Declined confirmation must not issue a request, got %d calls", api.deleteCalls)
	}
	if len(confirmer.titles) != 1 || confirmer.titles[0] != "really important" {
		t.Errorf("Prompt must name the notice title, got %v", confirmer.titles)
	}
	if len(ctrl.Notices()) != 1 {
		t.Error("Declined delete must leave the collection unchanged")
	}
}

func TestRequestDeleteBlockedWhilePinOutstanding(t *testing.T) {
	n := domain.Notice{ID: 1, Title: "t", Time: time.Now()}
	var ctrl *Controller
	api := &fakeAPI{}
	api.updateFn = func(_ context.Context, id int64, _ NoticePatch) (domain.Notice, error) {
		if err := ctrl.RequestDelete(context.Background(), n); err != nil {
			t.Fatalf("RequestDelete errored: %v", err)
		}
		return domain.Notice{ID: id}, nil
	}
	ctrl, _, _ = newTestController(api, n)

	if err := ctrl.Pin(context.Background(), n); err != nil {
		t.Fatalf("Pin returned error: %v", err)
	}
	if api.deleteCalls != 0 {
		t.Errorf("Delete entry while pin outstanding must be a no-op, got %d calls", api.deleteCalls)
	}
}

func TestSaveDraftPrependsPersistedCopy(t *testing.T) {
	existing := domain.Notice{ID: 5, Title: "old", Time: time.Now()}
	api := &fakeAPI{
		createFn: func(_ context.Context, draft domain.Notice) (domain.Notice, error) {
			draft.ID = 7
			return draft, nil
		},
	}
	ctrl, _, _ := newTestController(api, existing)

	saved, err := ctrl.Save(context.Background(), domain.Notice{Title: "fresh"})
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if saved.ID != 7 {
		t.Errorf("Expected server-assigned id 7, got %d", saved.ID)
	}

	got := ctrl.Notices()
	if len(got) != 2 || got[0].ID != 7 || got[1].ID != 5 {
		t.Errorf("Expected new notice prepended, got %v", got)
	}
}

func TestSaveExistingReplacesInPlace(t *testing.T) {
	a := domain.Notice{ID: 1, Title: "a", Time: time.Now()}
	b := domain.Notice{ID: 2, Title: "b", Time: time.Now()}
	api := &fakeAPI{
		updateFn: func(_ context.Context, id int64, patch NoticePatch) (domain.Notice, error) {
			return domain.Notice{ID: id, Title: *patch.Title, Content: *patch.Content, IsPinned: *patch.IsPinned}, nil
		},
	}
	ctrl, _, _ := newTestController(api, a, b)

	edited := b
	edited.Title = "b2"
	if _, err := ctrl.Save(context.Background(), edited); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got := ctrl.Notices()
	if len(got) != 2 || got[1].ID != 2 || got[1].Title != "b2" {
		t.Errorf("Expected in-place replacement, got %v", got)
	}
	if got[0].ID != 1 || got[0].Title != "a" {
		t.Errorf("Other entries must stay untouched, got %v", got[0])
	}
}

func TestResetClearsStateAndGuard(t *testing.T) {
	n := domain.Notice{ID: 1, Title: "t", Time: time.Now()}
	api := &fakeAPI{}
	ctrl, _, _ := newTestController(api, n)
	ctrl.disabled = true

	ctrl.Reset()

	if len(ctrl.Notices()) != 0 {
		t.Error("Reset must clear the collection")
	}
	if err := ctrl.Pin(context.Background(), n); err != nil {
		t.Fatalf("Pin after reset returned error: %v", err)
	}
	if api.updateCalls != 1 {
		t.Error("Reset must release the guard")
	}
}
