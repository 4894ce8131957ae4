package inventory

import (
	"secura-backend/internal/models"
	"secura-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type CreateSaleRequest struct {
	CustomerName   string          `json:"customerName"`
	CustomerNumber string          `json:"customerNumber"`
	StoreID        string          `json:"storeId"`
	Items          []SaleItemInput `json:"items"`
}

type SaleResponse struct {
	ID             string            `json:"id"`
	CustomerName   string            `json:"customerName"`
	CustomerNumber string            `json:"customerNumber"`
	StoreID        string            `json:"storeId"`
	Items          []models.SaleItem `json:"items"`
	TotalAmount    float64           `json:"totalAmount"`
	CreatedBy      string            `json:"createdBy"`
	CreatedAt      string            `json:"createdAt"`
}

// GET /api/sales
func ListSalesHandler(repo *repository.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sales := repo.Sales()
		out := make([]SaleResponse, 0, len(sales))
		for _, s := range sales {
			out = append(out, SaleResponse{
				ID:             s.ID,
				CustomerName:   s.CustomerName,
				CustomerNumber: s.CustomerNumber,
				StoreID:        s.StoreID,
				Items:          s.Items,
				TotalAmount:    s.TotalAmount,
				CreatedBy:      s.CreatedBy,
				CreatedAt:      s.CreatedAt.Format("2006-01-02 15:04:05"),
			})
		}
		return c.JSON(out)
	}
}

// POST /api/sales
func CreateSaleHandler(ctl *Controller) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateSaleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		userID, err := actorID(c)
		if err != nil {
			return err
		}
		storeID, err := resolveStoreID(c, body.StoreID)
		if err != nil {
			return err
		}

		sale, err := ctl.CompleteSale(body.CustomerName, body.CustomerNumber, storeID, userID, body.Items)
		if err != nil {
			if IsValidation(err) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Sale could not be completed")
		}

		return c.Status(fiber.StatusCreated).JSON(sale)
	}
}
