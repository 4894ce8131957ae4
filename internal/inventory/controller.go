package inventory

import (
	"errors"
	"fmt"
	"strings"

	"secura-backend/internal/audit"
	"secura-backend/internal/models"
	"secura-backend/internal/repository"

	"go.uber.org/zap"
)

// Validation errors, surfaced before any write. No partial state is
// produced when one of these is returned.
var (
	ErrMissingCustomer = errors.New("customer name and number are required")
	ErrEmptyItems      = errors.New("at least one item is required")
	ErrMissingStore    = errors.New("source and destination store are required")
	ErrSameStore       = errors.New("source and destination store must differ")
	ErrMissingFields   = errors.New("brand, model and serial number are required")
	ErrEmptyImport     = errors.New("no import data provided")
)

// IsValidation reports whether err is a pre-write validation failure,
// answered to clients as a 400 rather than a 500.
func IsValidation(err error) bool {
	return errors.Is(err, ErrMissingCustomer) ||
		errors.Is(err, ErrEmptyItems) ||
		errors.Is(err, ErrMissingStore) ||
		errors.Is(err, ErrSameStore) ||
		errors.Is(err, ErrMissingFields) ||
		errors.Is(err, ErrEmptyImport)
}

// Controller enforces the stock unit lifecycle: units enter available,
// leave through a sale (sold, terminal) or move stores through a transfer
// (available again at the destination). It keeps the Sales, Transfers and
// ActivityLog collections consistent with those transitions.
//
// Completion operations are a fixed sequence of independent collection
// writes (ledger record, then stock mutations, then activity entry) with
// no rollback; a storage failure mid-sequence leaves the earlier writes in
// place. Acceptable under the single-writer model this service inherits.
type Controller struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewController(repo *repository.Repository, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{repo: repo, log: log}
}

type SaleItemInput struct {
	StockID      string  `json:"stockId"`
	Brand        string  `json:"brand"`
	Model        string  `json:"model"`
	SerialNumber string  `json:"serialNumber"`
	Price        float64 `json:"price"`
}

type TransferItemInput struct {
	StockID      string `json:"stockId"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	SerialNumber string `json:"serialNumber"`
}

// CompleteSale records one sale: the Sale ledger entry (items persisted
// without their sale-local price, only the total survives), the sold flip
// of every referenced unit (store unchanged), and one activity entry.
func (ctl *Controller) CompleteSale(customerName, customerNumber, storeID, userID string, items []SaleItemInput) (models.Sale, error) {
	customerName = strings.TrimSpace(customerName)
	customerNumber = strings.TrimSpace(customerNumber)
	if customerName == "" || customerNumber == "" {
		return models.Sale{}, ErrMissingCustomer
	}
	if len(items) == 0 {
		return models.Sale{}, ErrEmptyItems
	}

	total := 0.0
	saleItems := make([]models.SaleItem, 0, len(items))
	for _, it := range items {
		total += it.Price
		saleItems = append(saleItems, models.SaleItem{
			StockID:      it.StockID,
			Brand:        it.Brand,
			Model:        it.Model,
			SerialNumber: it.SerialNumber,
		})
	}

	sale, err := ctl.repo.AppendSale(models.Sale{
		CustomerName:   customerName,
		CustomerNumber: customerNumber,
		StoreID:        storeID,
		Items:          saleItems,
		TotalAmount:    total,
		CreatedBy:      userID,
	})
	if err != nil {
		return models.Sale{}, err
	}

	for _, it := range items {
		err := ctl.repo.MutateStock(it.StockID, func(s *models.Stock) {
			s.Status = models.StockSold
		})
		if err != nil {
			return models.Sale{}, err
		}
	}

	description := fmt.Sprintf("Sold %d item(s) to %s", len(items), customerName)
	if err := audit.Record(ctl.repo, models.ActivitySale, description, userID); err != nil {
		return models.Sale{}, err
	}

	ctl.log.Info("sale completed",
		zap.String("sale_id", sale.ID),
		zap.String("store_id", storeID),
		zap.Int("items", len(items)),
		zap.Float64("total", total))

	return sale, nil
}

// CompleteTransfer relocates units between stores. Every referenced unit
// ends available at the destination; the transferred status value declared
// in the schema is never assigned.
func (ctl *Controller) CompleteTransfer(fromStoreID, toStoreID, userID string, items []TransferItemInput) (models.Transfer, error) {
	if len(items) == 0 {
		return models.Transfer{}, ErrEmptyItems
	}
	if fromStoreID == "" || toStoreID == "" {
		return models.Transfer{}, ErrMissingStore
	}
	if fromStoreID == toStoreID {
		return models.Transfer{}, ErrSameStore
	}

	transferItems := make([]models.TransferItem, 0, len(items))
	for _, it := range items {
		transferItems = append(transferItems, models.TransferItem{
			StockID:      it.StockID,
			Brand:        it.Brand,
			Model:        it.Model,
			SerialNumber: it.SerialNumber,
		})
	}

	transfer, err := ctl.repo.AppendTransfer(models.Transfer{
		FromStoreID: fromStoreID,
		ToStoreID:   toStoreID,
		Items:       transferItems,
		CreatedBy:   userID,
	})
	if err != nil {
		return models.Transfer{}, err
	}

	for _, it := range items {
		err := ctl.repo.MutateStock(it.StockID, func(s *models.Stock) {
			s.StoreID = toStoreID
			s.Status = models.StockAvailable
		})
		if err != nil {
			return models.Transfer{}, err
		}
	}

	// Destination name is display data; an unknown store leaves it blank.
	toName := ""
	if store, ok := ctl.repo.StoreByID(toStoreID); ok {
		toName = store.Name
	}
	description := fmt.Sprintf("Transferred %d item(s) to %s", len(items), toName)
	if err := audit.Record(ctl.repo, models.ActivityTransfer, description, userID); err != nil {
		return models.Transfer{}, err
	}

	ctl.log.Info("transfer completed",
		zap.String("transfer_id", transfer.ID),
		zap.String("from", fromStoreID),
		zap.String("to", toStoreID),
		zap.Int("items", len(items)))

	return transfer, nil
}

// AddStock takes in one serial-numbered unit: find-or-create the product,
// append the unit as available, record one activity entry.
func (ctl *Controller) AddStock(brand, model, serialNumber, storeID, purchaseBillNo, userID string) (models.Stock, error) {
	brand = strings.TrimSpace(brand)
	model = strings.TrimSpace(model)
	serialNumber = strings.TrimSpace(serialNumber)
	if brand == "" || model == "" || serialNumber == "" {
		return models.Stock{}, ErrMissingFields
	}

	product, err := ctl.repo.FindOrCreateProduct(brand, model)
	if err != nil {
		return models.Stock{}, err
	}

	unit, err := ctl.repo.AppendStock(product.ID, serialNumber, storeID, strings.TrimSpace(purchaseBillNo))
	if err != nil {
		return models.Stock{}, err
	}

	description := fmt.Sprintf("Added stock: %s %s (SN: %s)", brand, model, serialNumber)
	if err := audit.Record(ctl.repo, models.ActivityStockAdd, description, userID); err != nil {
		return models.Stock{}, err
	}

	return unit, nil
}
