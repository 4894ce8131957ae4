package repository

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"secura-backend/internal/models"
	"secura-backend/internal/storage"

	"github.com/bwmarrin/snowflake"
)

// Repository owns the seven collections, each stored as one
// insertion-ordered JSON array under its fixed key. Every write
// re-serializes the whole collection; acceptable because collections stay
// small (tens to low thousands of records). Reads are fail-open: a missing
// or corrupt key yields an empty collection, never an error.
type Repository struct {
	kv   storage.KV
	node *snowflake.Node
	now  func() time.Time
}

func New(kv storage.KV) (*Repository, error) {
	node, err := snowflake.NewNode(1)
	if err != nil {
		return nil, fmt.Errorf("init id generator: %w", err)
	}
	return &Repository{kv: kv, node: node, now: time.Now}, nil
}

func (r *Repository) newID() string {
	return r.node.Generate().String()
}

func readAll[T any](kv storage.KV, key storage.Key) []T {
	raw, err := kv.Get(key)
	if err != nil || len(raw) == 0 {
		return []T{}
	}
	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		// Corrupt value reads as empty (fail-open).
		return []T{}
	}
	return records
}

func writeAll[T any](kv storage.KV, key storage.Key, records []T) error {
	if records == nil {
		records = []T{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return kv.Set(key, raw)
}

// ---------- Users ----------

func (r *Repository) Users() []models.User {
	return readAll[models.User](r.kv, storage.KeyUsers)
}

func (r *Repository) UserByID(id string) (models.User, bool) {
	for _, u := range r.Users() {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

func (r *Repository) UserByEmail(email string) (models.User, bool) {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range r.Users() {
		if strings.ToLower(u.Email) == email {
			return u, true
		}
	}
	return models.User{}, false
}

func (r *Repository) AppendUser(user models.User) (models.User, error) {
	users := r.Users()
	if user.ID == "" {
		user.ID = r.newID()
	}
	user.CreatedAt = r.now()
	users = append(users, user)
	if err := writeAll(r.kv, storage.KeyUsers, users); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// ---------- Stores ----------

func (r *Repository) Stores() []models.Store {
	return readAll[models.Store](r.kv, storage.KeyStores)
}

func (r *Repository) StoreByID(id string) (models.Store, bool) {
	for _, s := range r.Stores() {
		if s.ID == id {
			return s, true
		}
	}
	return models.Store{}, false
}

func (r *Repository) AppendStore(name, location string) (models.Store, error) {
	stores := r.Stores()
	store := models.Store{
		ID:        r.newID(),
		Name:      name,
		Location:  location,
		CreatedAt: r.now(),
	}
	stores = append(stores, store)
	if err := writeAll(r.kv, storage.KeyStores, stores); err != nil {
		return models.Store{}, err
	}
	return store, nil
}

// ---------- Products ----------

func (r *Repository) Products() []models.Product {
	return readAll[models.Product](r.kv, storage.KeyProducts)
}

// FindOrCreateProduct de-duplicates by the (brand, model) pair: repeated
// inserts of the same pair reuse the existing product id.
func (r *Repository) FindOrCreateProduct(brand, model string) (models.Product, error) {
	products := r.Products()
	for _, p := range products {
		if p.Brand == brand && p.Model == model {
			return p, nil
		}
	}

	product := models.Product{
		ID:        r.newID(),
		Brand:     brand,
		Model:     model,
		CreatedAt: r.now(),
	}
	products = append(products, product)
	if err := writeAll(r.kv, storage.KeyProducts, products); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// ---------- Stock ----------

func (r *Repository) Stock() []models.Stock {
	return readAll[models.Stock](r.kv, storage.KeyStock)
}

func (r *Repository) StockByID(id string) (models.Stock, bool) {
	for _, s := range r.Stock() {
		if s.ID == id {
			return s, true
		}
	}
	return models.Stock{}, false
}

func (r *Repository) AppendStock(productID, serialNumber, storeID, purchaseBillNo string) (models.Stock, error) {
	stock := r.Stock()
	now := r.now()
	unit := models.Stock{
		ID:             r.newID(),
		ProductID:      productID,
		SerialNumber:   serialNumber,
		StoreID:        storeID,
		Status:         models.StockAvailable,
		PurchaseBillNo: purchaseBillNo,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	stock = append(stock, unit)
	if err := writeAll(r.kv, storage.KeyStock, stock); err != nil {
		return models.Stock{}, err
	}
	return unit, nil
}

// MutateStock applies an in-place update to the unit with the given id and
// refreshes UpdatedAt. An absent id is a silent no-op.
func (r *Repository) MutateStock(id string, update func(*models.Stock)) error {
	stock := r.Stock()
	for i := range stock {
		if stock[i].ID == id {
			update(&stock[i])
			stock[i].UpdatedAt = r.now()
			return writeAll(r.kv, storage.KeyStock, stock)
		}
	}
	return nil
}

// ---------- Sales ----------

func (r *Repository) Sales() []models.Sale {
	return readAll[models.Sale](r.kv, storage.KeySales)
}

func (r *Repository) AppendSale(sale models.Sale) (models.Sale, error) {
	sales := r.Sales()
	sale.ID = r.newID()
	sale.CreatedAt = r.now()
	sales = append(sales, sale)
	if err := writeAll(r.kv, storage.KeySales, sales); err != nil {
		return models.Sale{}, err
	}
	return sale, nil
}

// ---------- Transfers ----------

func (r *Repository) Transfers() []models.Transfer {
	return readAll[models.Transfer](r.kv, storage.KeyTransfers)
}

func (r *Repository) AppendTransfer(transfer models.Transfer) (models.Transfer, error) {
	transfers := r.Transfers()
	transfer.ID = r.newID()
	transfer.CreatedAt = r.now()
	transfers = append(transfers, transfer)
	if err := writeAll(r.kv, storage.KeyTransfers, transfers); err != nil {
		return models.Transfer{}, err
	}
	return transfer, nil
}

// ---------- Activity log ----------

func (r *Repository) ActivityLogs() []models.ActivityLog {
	return readAll[models.ActivityLog](r.kv, storage.KeyActivityLogs)
}

func (r *Repository) AppendActivityLog(t models.ActivityType, description, userID string) (models.ActivityLog, error) {
	logs := r.ActivityLogs()
	entry := models.ActivityLog{
		ID:          r.newID(),
		Type:        t,
		Description: description,
		UserID:      userID,
		CreatedAt:   r.now(),
	}
	logs = append(logs, entry)
	if err := writeAll(r.kv, storage.KeyActivityLogs, logs); err != nil {
		return models.ActivityLog{}, err
	}
	return entry, nil
}

// ---------- Session ----------

// CurrentUser reads the session key; absence means logged out.
func (r *Repository) CurrentUser() (models.User, bool) {
	raw, err := r.kv.Get(storage.KeyCurrentUser)
	if err != nil || len(raw) == 0 {
		return models.User{}, false
	}
	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return models.User{}, false
	}
	return user, true
}

func (r *Repository) SetCurrentUser(user models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}
	return r.kv.Set(storage.KeyCurrentUser, raw)
}

func (r *Repository) ClearCurrentUser() error {
	return r.kv.Remove(storage.KeyCurrentUser)
}
