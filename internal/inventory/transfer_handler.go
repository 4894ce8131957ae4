package inventory

import (
	"secura-backend/internal/models"
	"secura-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type CreateTransferRequest struct {
	FromStoreID string              `json:"fromStoreId"`
	ToStoreID   string              `json:"toStoreId"`
	Items       []TransferItemInput `json:"items"`
}

type TransferResponse struct {
	ID          string                `json:"id"`
	FromStoreID string                `json:"fromStoreId"`
	ToStoreID   string                `json:"toStoreId"`
	Items       []models.TransferItem `json:"items"`
	CreatedBy   string                `json:"createdBy"`
	CreatedAt   string                `json:"createdAt"`
}

// GET /api/transfers
func ListTransfersHandler(repo *repository.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		transfers := repo.Transfers()
		out := make([]TransferResponse, 0, len(transfers))
		for _, tr := range transfers {
			out = append(out, TransferResponse{
				ID:          tr.ID,
				FromStoreID: tr.FromStoreID,
				ToStoreID:   tr.ToStoreID,
				Items:       tr.Items,
				CreatedBy:   tr.CreatedBy,
				CreatedAt:   tr.CreatedAt.Format("2006-01-02 15:04:05"),
			})
		}
		return c.JSON(out)
	}
}

// POST /api/transfers — admin only, enforced by the route table.
func CreateTransferHandler(ctl *Controller) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateTransferRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		userID, err := actorID(c)
		if err != nil {
			return err
		}

		transfer, err := ctl.CompleteTransfer(body.FromStoreID, body.ToStoreID, userID, body.Items)
		if err != nil {
			if IsValidation(err) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Transfer could not be completed")
		}

		return c.Status(fiber.StatusCreated).JSON(transfer)
	}
}
