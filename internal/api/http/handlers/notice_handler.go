package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/admin-panel/internal/api/dto"
	"github.com/spec-kit/admin-panel/internal/domain"
	"github.com/spec-kit/admin-panel/internal/service"
)

// NoticeHandler exposes the notice edit endpoints consumed by the client
// cache controller.
type NoticeHandler struct {
	notices *service.NoticeService
}

// NewNoticeHandler constructs handler.
func NewNoticeHandler(noticeService *service.NoticeService) *NoticeHandler {
	return &NoticeHandler{notices: noticeService}
}

// ListNotices GET /api/edit/notices.
func (h *NoticeHandler) ListNotices(c *fiber.Ctx) error {
	notices, err := h.notices.ListNotices(c.Context())
	if err != nil {
		return err
	}
	if notices == nil {
		notices = []domain.Notice{}
	}
	return c.JSON(notices)
}

// CreateNotice POST /api/edit/notices.
func (h *NoticeHandler) CreateNotice(c *fiber.Ctx) error {
	var req dto.CreateNoticeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	caller, err := adminPrincipal(c)
	if err != nil {
		return err
	}

	notice, err := h.notices.CreateNotice(c.Context(), caller.ID, req.Title, req.Content, req.IsPinned)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(notice)
}

// UpdateNotice PUT /api/edit/notices/:id. Serves both edits and pin toggles.
func (h *NoticeHandler) UpdateNotice(c *fiber.Ctx) error {
	id, err := noticeID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateNoticeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	caller, err := adminPrincipal(c)
	if err != nil {
		return err
	}

	notice, err := h.notices.UpdateNotice(c.Context(), caller.ID, id, service.NoticePatch{
		Title:    req.Title,
		Content:  req.Content,
		IsPinned: req.IsPinned,
	})
	if err != nil {
		return err
	}
	return c.JSON(notice)
}

// DeleteNotice DELETE /api/edit/notices/:id.
func (h *NoticeHandler) DeleteNotice(c *fiber.Ctx) error {
	id, err := noticeID(c)
	if err != nil {
		return err
	}

	caller, err := adminPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.notices.DeleteNotice(c.Context(), caller.ID, id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusOK)
}

func noticeID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, fiber.NewError(http.StatusBadRequest, "invalid notice id")
	}
	return id, nil
}
