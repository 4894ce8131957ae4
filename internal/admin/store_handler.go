package admin

import (
	"strings"

	"secura-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type StoreResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Location  string `json:"location"`
	CreatedAt string `json:"createdAt"`
}

type CreateStoreRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// GET /api/stores
func ListStoresHandler(repo *repository.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stores := repo.Stores()
		out := make([]StoreResponse, 0, len(stores))
		for _, s := range stores {
			out = append(out, StoreResponse{
				ID:        s.ID,
				Name:      s.Name,
				Location:  s.Location,
				CreatedAt: s.CreatedAt.Format("2006-01-02 15:04:05"),
			})
		}
		return c.JSON(out)
	}
}

// POST /api/stores — admin only. There is no update or delete: stores,
// like every other entity here, are append-only.
func CreateStoreHandler(repo *repository.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateStoreRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		body.Location = strings.TrimSpace(body.Location)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Store name is required")
		}

		store, err := repo.AppendStore(body.Name, body.Location)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Store could not be created")
		}

		return c.Status(fiber.StatusCreated).JSON(StoreResponse{
			ID:        store.ID,
			Name:      store.Name,
			Location:  store.Location,
			CreatedAt: store.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
}
