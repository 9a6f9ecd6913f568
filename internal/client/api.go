package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/spec-kit/admin-panel/internal/domain"
)

// NoticePatch is a partial notice update. A nil field is omitted from the
// request body and leaves the stored value unchanged.
type NoticePatch struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	IsPinned *bool   `json:"isPinned,omitempty"`
}

// NoticeAPI is the server seam used by the cache controller. Tests substitute
// a fake; production code uses HTTPNoticeAPI.
type NoticeAPI interface {
	List(ctx context.Context) ([]domain.Notice, error)
	Create(ctx context.Context, draft domain.Notice) (domain.Notice, error)
	Update(ctx context.Context, id int64, patch NoticePatch) (domain.Notice, error)
	Delete(ctx context.Context, id int64) error
}

// APIError is a non-2xx response decoded from the server's error shape.
type APIError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server error %d: %s", e.Status, e.Message)
}

// HTTPNoticeAPI talks to the notice edit endpoints over HTTP.
type HTTPNoticeAPI struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewHTTPNoticeAPI builds a client for the given base URL (scheme://host)
// authenticating with the given bearer token.
func NewHTTPNoticeAPI(baseURL, token string, httpClient *http.Client) *HTTPNoticeAPI {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPNoticeAPI{baseURL: baseURL, token: token, client: httpClient}
}

func (a *HTTPNoticeAPI) List(ctx context.Context) ([]domain.Notice, error) {
	var notices []domain.Notice
	if err := a.do(ctx, http.MethodGet, "/api/edit/notices", nil, &notices); err != nil {
		return nil, err
	}
	return notices, nil
}

func (a *HTTPNoticeAPI) Create(ctx context.Context, draft domain.Notice) (domain.Notice, error) {
	var created domain.Notice
	payload := map[string]any{
		"title":    draft.Title,
		"content":  draft.Content,
		"isPinned": draft.IsPinned,
	}
	if err := a.do(ctx, http.MethodPost, "/api/edit/notices", payload, &created); err != nil {
		return domain.Notice{}, err
	}
	return created, nil
}

func (a *HTTPNoticeAPI) Update(ctx context.Context, id int64, patch NoticePatch) (domain.Notice, error) {
	var updated domain.Notice
	path := "/api/edit/notices/" + strconv.FormatInt(id, 10)
	if err := a.do(ctx, http.MethodPut, path, patch, &updated); err != nil {
		return domain.Notice{}, err
	}
	return updated, nil
}

func (a *HTTPNoticeAPI) Delete(ctx context.Context, id int64) error {
	path := "/api/edit/notices/" + strconv.FormatInt(id, 10)
	return a.do(ctx, http.MethodDelete, path, nil, nil)
}

func (a *HTTPNoticeAPI) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		// best effort; the default message stands when the body is not the
		// expected error shape
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		return apiErr
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
