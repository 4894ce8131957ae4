package admin

import (
	"strings"

	"secura-backend/internal/models"
	"secura-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type UserResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      models.UserRole `json:"role"`
	Store     string          `json:"store,omitempty"`
	CreatedAt string          `json:"createdAt"`
}

type CreateUserRequest struct {
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Role     models.UserRole `json:"role"`
	Store    string          `json:"store"`
}

func toUserResponse(u models.User) UserResponse {
	// Password (hash) never leaves the API.
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Store:     u.Store,
		CreatedAt: u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// GET /api/users — admin only.
func ListUsersHandler(repo *repository.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users := repo.Users()
		out := make([]UserResponse, 0, len(users))
		for _, u := range users {
			out = append(out, toUserResponse(u))
		}
		return c.JSON(out)
	}
}

// POST /api/users — admin only.
func CreateUserHandler(repo *repository.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateUserRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		body.Email = strings.TrimSpace(strings.ToLower(body.Email))
		if body.Name == "" || body.Email == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name, email and password are required")
		}

		switch body.Role {
		case models.RoleAdmin, models.RoleStoreManager, models.RoleStaff:
		default:
			return fiber.NewError(fiber.StatusBadRequest, "Role must be admin, store_manager or staff")
		}

		if body.Role == models.RoleAdmin && body.Store != "" {
			return fiber.NewError(fiber.StatusBadRequest, "Admins are not bound to a store")
		}

		if _, exists := repo.UserByEmail(body.Email); exists {
			return fiber.NewError(fiber.StatusConflict, "Email is already registered")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Password could not be hashed")
		}

		user, err := repo.AppendUser(models.User{
			Name:     body.Name,
			Email:    body.Email,
			Password: string(hash),
			Role:     body.Role,
			Store:    strings.TrimSpace(body.Store),
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "User could not be created")
		}

		return c.Status(fiber.StatusCreated).JSON(toUserResponse(user))
	}
}
