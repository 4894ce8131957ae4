package auth

import (
	"strings"

	"secura-backend/internal/config"
	"secura-backend/internal/models"
	"secura-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func LoginHandler(cfg *config.Config, repo *repository.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))
		if body.Email == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Email and password are required")
		}

		user, ok := repo.UserByEmail(body.Email)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
		}

		token, err := GenerateToken(cfg.JWTSecret, &user)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Token could not be created")
		}

		// Persist the session blob so the logged-in user survives a
		// process restart, matching the original single-tenant behavior.
		if err := repo.SetCurrentUser(user); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Session could not be saved")
		}

		return c.JSON(fiber.Map{
			"token": token,
			"user": fiber.Map{
				"id":    user.ID,
				"name":  user.Name,
				"email": user.Email,
				"role":  user.Role,
				"store": user.Store,
			},
		})
	}
}

func LogoutHandler(repo *repository.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := repo.ClearCurrentUser(); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Session could not be cleared")
		}
		return c.JSON(fiber.Map{"message": "logged out"})
	}
}

func MeHandler(repo *repository.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userIDVal := c.Locals(CtxUserIDKey)

		if userID, ok := userIDVal.(string); ok {
			if user, found := repo.UserByID(userID); found {
				return c.JSON(fiber.Map{
					"id":    user.ID,
					"name":  user.Name,
					"email": user.Email,
					"role":  user.Role,
					"store": user.Store,
				})
			}
		}

		// Fallback: token was valid but the record is gone, answer from
		// the claims.
		return c.JSON(fiber.Map{
			"id":    userIDVal,
			"role":  c.Locals(CtxUserRoleKey),
			"store": c.Locals(CtxStoreKey),
		})
	}
}

// RoleFromCtx reads the authenticated role set by JWTMiddleware.
func RoleFromCtx(c *fiber.Ctx) (models.UserRole, bool) {
	role, ok := c.Locals(CtxUserRoleKey).(models.UserRole)
	return role, ok
}

// UserIDFromCtx reads the authenticated user id set by JWTMiddleware.
func UserIDFromCtx(c *fiber.Ctx) (string, bool) {
	id, ok := c.Locals(CtxUserIDKey).(string)
	return id, ok && id != ""
}

// StoreFromCtx reads the authenticated user's bound store; empty for
// admins.
func StoreFromCtx(c *fiber.Ctx) string {
	store, _ := c.Locals(CtxStoreKey).(string)
	return store
}
