package inventory

import (
	"io"
	"strings"

	"secura-backend/internal/auth"
	"secura-backend/internal/models"
	"secura-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type ProductResponse struct {
	ID    string `json:"id"`
	Brand string `json:"brand"`
	Model string `json:"model"`
}

type StockResponse struct {
	ID             string             `json:"id"`
	ProductID      string             `json:"productId"`
	Brand          string             `json:"brand"`
	Model          string             `json:"model"`
	SerialNumber   string             `json:"serialNumber"`
	StoreID        string             `json:"storeId"`
	Status         models.StockStatus `json:"status"`
	PurchaseBillNo string             `json:"purchaseBillNo,omitempty"`
	CreatedAt      string             `json:"createdAt"`
}

type CreateStockRequest struct {
	Brand          string `json:"brand"`
	Model          string `json:"model"`
	SerialNumber   string `json:"serialNumber"`
	StoreID        string `json:"storeId"`
	PurchaseBillNo string `json:"purchaseBillNo"`
}

type BulkStockRequest struct {
	Data    string `json:"data"`
	StoreID string `json:"storeId"`
}

// actorID reads the authenticated user, required by every write handler.
func actorID(c *fiber.Ctx) (string, error) {
	id, ok := auth.UserIDFromCtx(c)
	if !ok {
		return "", fiber.NewError(fiber.StatusForbidden, "User information missing from request")
	}
	return id, nil
}

// resolveStoreID falls back to the authenticated user's bound store when
// the body omits one; staff users are bound, admins must pick.
func resolveStoreID(c *fiber.Ctx, bodyStoreID string) (string, error) {
	storeID := strings.TrimSpace(bodyStoreID)
	if storeID == "" {
		storeID = auth.StoreFromCtx(c)
	}
	if storeID == "" {
		return "", fiber.NewError(fiber.StatusBadRequest, "storeId is required")
	}
	return storeID, nil
}

// GET /api/products
func ListProductsHandler(repo *repository.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		products := repo.Products()
		out := make([]ProductResponse, 0, len(products))
		for _, p := range products {
			out = append(out, ProductResponse{ID: p.ID, Brand: p.Brand, Model: p.Model})
		}
		return c.JSON(out)
	}
}

// GET /api/stock?store=store1&status=available
func ListStockHandler(repo *repository.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		storeFilter := c.Query("store")
		statusFilter := c.Query("status")

		// Product detail is denormalized into the stock rows for the list
		// views.
		products := make(map[string]models.Product)
		for _, p := range repo.Products() {
			products[p.ID] = p
		}

		stock := repo.Stock()
		out := make([]StockResponse, 0, len(stock))
		for _, s := range stock {
			if storeFilter != "" && s.StoreID != storeFilter {
				continue
			}
			if statusFilter != "" && string(s.Status) != statusFilter {
				continue
			}
			p := products[s.ProductID]
			out = append(out, StockResponse{
				ID:             s.ID,
				ProductID:      s.ProductID,
				Brand:          p.Brand,
				Model:          p.Model,
				SerialNumber:   s.SerialNumber,
				StoreID:        s.StoreID,
				Status:         s.Status,
				PurchaseBillNo: s.PurchaseBillNo,
				CreatedAt:      s.CreatedAt.Format("2006-01-02 15:04:05"),
			})
		}
		return c.JSON(out)
	}
}

// POST /api/stock
func CreateStockHandler(ctl *Controller) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateStockRequest
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

		unit, err := ctl.AddStock(body.Brand, body.Model, body.SerialNumber, storeID, body.PurchaseBillNo, userID)
		if err != nil {
			if IsValidation(err) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Stock could not be added")
		}

		return c.Status(fiber.StatusCreated).JSON(unit)
	}
}

// POST /api/stock/bulk — textarea entry, one brand,model,serial per line.
func BulkStockHandler(ctl *Controller) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body BulkStockRequest
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

		res, err := ctl.ImportText(body.Data, storeID, userID, false)
		if err != nil {
			if IsValidation(err) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Bulk entry failed")
		}

		return c.JSON(res)
	}
}

// POST /api/stock/import — multipart upload. An .xlsx file goes through
// the workbook reader, anything else is treated as CSV text with a header
// line.
func ImportStockHandler(ctl *Controller) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "file is required")
		}

		userID, err := actorID(c)
		if err != nil {
			return err
		}
		storeID, err := resolveStoreID(c, c.FormValue("storeId"))
		if err != nil {
			return err
		}

		f, err := fileHeader.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "file could not be read")
		}
		defer func() { _ = f.Close() }()

		var res ImportResult
		if strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".xlsx") {
			res, err = ctl.ImportWorkbook(f, storeID, userID)
		} else {
			data, readErr := io.ReadAll(f)
			if readErr != nil {
				return fiber.NewError(fiber.StatusBadRequest, "file could not be read")
			}
			res, err = ctl.ImportText(string(data), storeID, userID, true)
		}
		if err != nil {
			if IsValidation(err) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return fiber.NewError(fiber.StatusBadRequest, "Error processing file")
		}

		return c.JSON(res)
	}
}
