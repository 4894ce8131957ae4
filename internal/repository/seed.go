package repository

import (
	"fmt"

	"secura-backend/internal/models"
	"secura-backend/internal/storage"

	"golang.org/x/crypto/bcrypt"
)

// Default credentials written on first run. They match what the login
// screen advertises; change the passwords after first login.
const (
	seedAdminPassword = "admin123"
	seedStaffPassword = "staff123"
)

// SeedIfEmpty writes the two default stores, the four default users and
// empty arrays for the remaining collections. Idempotent: a no-op when the
// users key already exists, even if its array is empty.
func (r *Repository) SeedIfEmpty() error {
	raw, err := r.kv.Get(storage.KeyUsers)
	if err != nil {
		return fmt.Errorf("seed check: %w", err)
	}
	if raw != nil {
		return nil
	}

	now := r.now()

	stores := []models.Store{
		{ID: "store1", Name: "Main Store", Location: "Downtown", CreatedAt: now},
		{ID: "store2", Name: "Branch Store", Location: "Uptown", CreatedAt: now},
	}
	if err := writeAll(r.kv, storage.KeyStores, stores); err != nil {
		return err
	}

	adminHash, err := bcrypt.GenerateFromPassword([]byte(seedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}
	staffHash, err := bcrypt.GenerateFromPassword([]byte(seedStaffPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	users := []models.User{
		{ID: "admin1", Name: "Admin One", Email: "admin1@secura.com", Password: string(adminHash), Role: models.RoleAdmin, CreatedAt: now},
		{ID: "admin2", Name: "Admin Two", Email: "admin2@secura.com", Password: string(adminHash), Role: models.RoleAdmin, CreatedAt: now},
		{ID: "staff1", Name: "Staff One", Email: "staff1@secura.com", Password: string(staffHash), Role: models.RoleStaff, Store: "store1", CreatedAt: now},
		{ID: "staff2", Name: "Staff Two", Email: "staff2@secura.com", Password: string(staffHash), Role: models.RoleStaff, Store: "store2", CreatedAt: now},
	}
	if err := writeAll(r.kv, storage.KeyUsers, users); err != nil {
		return err
	}

	if err := writeAll(r.kv, storage.KeyProducts, []models.Product{}); err != nil {
		return err
	}
	if err := writeAll(r.kv, storage.KeyStock, []models.Stock{}); err != nil {
		return err
	}
	if err := writeAll(r.kv, storage.KeySales, []models.Sale{}); err != nil {
		return err
	}
	if err := writeAll(r.kv, storage.KeyTransfers, []models.Transfer{}); err != nil {
		return err
	}
	return writeAll(r.kv, storage.KeyActivityLogs, []models.ActivityLog{})
}
