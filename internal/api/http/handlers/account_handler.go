package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/admin-panel/internal/api/dto"
	"github.com/spec-kit/admin-panel/internal/auth"
	"github.com/spec-kit/admin-panel/internal/repository"
)

// AccountHandler exposes the minimal login endpoint that produces the admin
// bearer token. Registration and password recovery live elsewhere.
type AccountHandler struct {
	users  repository.UserRepository
	tokens *auth.TokenManager
}

// NewAccountHandler constructs handler.
func NewAccountHandler(users repository.UserRepository, tokens *auth.TokenManager) *AccountHandler {
	return &AccountHandler{users: users, tokens: tokens}
}

// Login handles POST /api/account/login.
func (h *AccountHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.UserName == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "userName and password required")
	}

	user, err := h.users.GetByUserName(c.Context(), req.UserName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fiber.NewError(http.StatusUnauthorized, "invalid credentials")
		}
		return err
	}
	if err := auth.ComparePassword(user.PasswordHash, req.Password); err != nil {
		return fiber.NewError(http.StatusUnauthorized, "invalid credentials")
	}

	token, exp, err := h.tokens.GenerateToken(user.ID, user.Role)
	if err != nil {
		return err
	}
	return c.JSON(dto.AuthResponse{Token: token, ExpiresAt: exp})
}
