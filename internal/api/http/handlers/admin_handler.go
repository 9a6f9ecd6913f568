package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/admin-panel/internal/api/dto"
	"github.com/spec-kit/admin-panel/internal/auth"
	"github.com/spec-kit/admin-panel/internal/domain"
	"github.com/spec-kit/admin-panel/internal/pagination"
	"github.com/spec-kit/admin-panel/internal/service"
	apperrors "github.com/spec-kit/admin-panel/pkg/util/errorutil"
)

// AdminHandler exposes the privileged resource endpoints. Authentication and
// the admin role check happen in middleware; handlers only see verified
// administrators.
type AdminHandler struct {
	admin *service.AdminService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{admin: adminService}
}

// ListUsers GET /api/admin/users.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	page := pageFromQuery(c, pagination.DefaultUserCount)
	users, err := h.admin.ListUsers(c.Context(), page)
	if err != nil {
		return err
	}
	items := make([]dto.BasicUserInfo, 0, len(users))
	for i := range users {
		items = append(items, dto.FromUser(&users[i]))
	}
	return c.JSON(items)
}

// GetUser GET /api/admin/users/:id.
func (h *AdminHandler) GetUser(c *fiber.Ctx) error {
	user, err := h.admin.GetUser(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.FromUserFull(user))
}

// UpdateUser PUT /api/admin/users/:id. Responds 200 with no body.
func (h *AdminHandler) UpdateUser(c *fiber.Ctx) error {
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	caller, err := adminPrincipal(c)
	if err != nil {
		return err
	}

	patch := service.UserPatch{
		UserName: req.UserName,
		Email:    req.Email,
		Bio:      req.Bio,
		Role:     req.Role,
		RealName: req.RealName,
		Phone:    req.Phone,
	}
	if _, err := h.admin.UpdateUser(c.Context(), caller.ID, c.Params("id"), patch); err != nil {
		return err
	}
	return c.SendStatus(http.StatusOK)
}

// DeleteUser DELETE /api/admin/users/:id.
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	caller, err := adminPrincipal(c)
	if err != nil {
		return err
	}
	if err := h.admin.DeleteUser(c.Context(), caller.ID, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusOK)
}

// ListTeams GET /api/admin/teams.
func (h *AdminHandler) ListTeams(c *fiber.Ctx) error {
	page := pageFromQuery(c, pagination.DefaultTeamCount)
	teams, err := h.admin.ListTeams(c.Context(), page)
	if err != nil {
		return err
	}
	items := make([]dto.TeamInfo, 0, len(teams))
	for i := range teams {
		items = append(items, dto.FromTeam(&teams[i]))
	}
	return c.JSON(items)
}

// ListLogs GET /api/admin/logs/:level?.
func (h *AdminHandler) ListLogs(c *fiber.Ctx) error {
	level := domain.LogLevel(c.Params("level", string(domain.LogLevelAll)))
	page := pageFromQuery(c, pagination.DefaultLogCount)
	entries, err := h.admin.ListLogs(c.Context(), page, level)
	if err != nil {
		return err
	}
	items := make([]dto.LogEntryInfo, 0, len(entries))
	for i := range entries {
		items = append(items, dto.FromLogEntry(&entries[i]))
	}
	return c.JSON(items)
}

// ListFiles GET /api/admin/files.
func (h *AdminHandler) ListFiles(c *fiber.Ctx) error {
	page := pageFromQuery(c, pagination.DefaultFileCount)
	records, err := h.admin.ListFiles(c.Context(), page)
	if err != nil {
		return err
	}
	items := make([]dto.FileRecordInfo, 0, len(records))
	for i := range records {
		items = append(items, dto.FromFileRecord(&records[i]))
	}
	return c.JSON(items)
}

func adminPrincipal(c *fiber.Ctx) (*domain.User, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return nil, apperrors.NewUnauthorized("not authenticated")
	}
	return principal.User, nil
}

func pageFromQuery(c *fiber.Ctx, fallback int) pagination.Page {
	skip := queryInt(c, "skip", 0)
	count := queryInt(c, "count", 0)
	return pagination.Normalize(skip, count, fallback)
}

func queryInt(c *fiber.Ctx, key string, fallback int) int {
	if val := c.Query(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}
