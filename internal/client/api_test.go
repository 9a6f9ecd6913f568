package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/spec-kit/admin-panel/internal/domain"
)

func TestHTTPNoticeAPIUpdateSendsBearerAndPatch(t *testing.T) {
	var gotAuth string
	var gotPatch NoticePatch

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/edit/notices/7" {
			t.Errorf("Unexpected request %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotPatch); err != nil {
			t.Fatalf("decode patch: %v", err)
		}
		_ = json.NewEncoder(w).Encode(domain.Notice{ID: 7, IsPinned: true, Time: time.Now()})
	}))
	defer server.Close()

	api := NewHTTPNoticeAPI(server.URL, "tok123", server.Client())
	pinned := true
	updated, err := api.Update(context.Background(), 7, NoticePatch{IsPinned: &pinned})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if updated.ID != 7 || !updated.IsPinned {
		t.Errorf("Unexpected response notice: %+v", updated)
	}
	if gotAuth != "Bearer tok123" {
		t.Errorf("Expected bearer header, got %q", gotAuth)
	}
	if gotPatch.Title != nil || gotPatch.Content != nil {
		t.Errorf("Pin patch must omit unset fields, got %+v", gotPatch)
	}
}

func TestHTTPNoticeAPIDecodesErrorShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{"message": "notice not found", "status": 404})
	}))
	defer server.Close()

	api := NewHTTPNoticeAPI(server.URL, "", server.Client())
	err := api.Delete(context.Background(), 99)
	if err == nil {
		t.Fatal("Expected error for 404 response")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected APIError, got %T", err)
	}
	if apiErr.Status != 404 || apiErr.Message != "notice not found" {
		t.Errorf("Unexpected APIError: %+v", apiErr)
	}
}

func TestHTTPNoticeAPIErrorFallbackMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	api := NewHTTPNoticeAPI(server.URL, "", server.Client())
	err := api.Delete(context.Background(), 1)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected APIError, got %T", err)
	}
	if apiErr.Message == "" {
		t.Error("Expected fallback message for empty error body")
	}
}
