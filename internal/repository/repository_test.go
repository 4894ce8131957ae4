package repository_test

import (
	"testing"

	"secura-backend/internal/models"
	"secura-backend/internal/repository"
	"secura-backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestRepo(t *testing.T) *repository.Repository {
	t.Helper()
	repo, err := repository.New(storage.NewMemory())
	require.NoError(t, err)
	require.NoError(t, repo.SeedIfEmpty())
	return repo
}

func TestSeedIfEmpty_Defaults(t *testing.T) {
	repo := newTestRepo(t)

	stores := repo.Stores()
	require.Len(t, stores, 2)
	assert.Equal(t, "store1", stores[0].ID)
	assert.Equal(t, "Main Store", stores[0].Name)
	assert.Equal(t, "store2", stores[1].ID)
	assert.Equal(t, "Branch Store", stores[1].Name)

	users := repo.Users()
	require.Len(t, users, 4)

	var admins, staff int
	for _, u := range users {
		switch u.Role {
		case models.RoleAdmin:
			admins++
			assert.Empty(t, u.Store, "admins are not bound to a store")
		case models.RoleStaff:
			staff++
			assert.NotEmpty(t, u.Store)
		}
	}
	assert.Equal(t, 2, admins)
	assert.Equal(t, 2, staff)

	assert.Empty(t, repo.Products())
	assert.Empty(t, repo.Stock())
	assert.Empty(t, repo.Sales())
	assert.Empty(t, repo.Transfers())
	assert.Empty(t, repo.ActivityLogs())
}

func TestSeedIfEmpty_PasswordsAreHashed(t *testing.T) {
	repo := newTestRepo(t)

	admin, ok := repo.UserByEmail("admin1@secura.com")
	require.True(t, ok)
	assert.NotEqual(t, "admin123", admin.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("admin123")))

	staff, ok := repo.UserByEmail("staff1@secura.com")
	require.True(t, ok)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(staff.Password), []byte("staff123")))
}

func TestSeedIfEmpty_SecondRunIsNoOp(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.FindOrCreateProduct("Dell", "XPS13")
	require.NoError(t, err)
	_, err = repo.AppendStore("Third Store", "Midtown")
	require.NoError(t, err)

	require.NoError(t, repo.SeedIfEmpty())

	assert.Len(t, repo.Stores(), 3, "reseed must not touch existing data")
	assert.Len(t, repo.Users(), 4)
	assert.Len(t, repo.Products(), 1)
}

func TestFindOrCreateProduct_DeduplicatesByBrandModel(t *testing.T) {
	repo := newTestRepo(t)

	first, err := repo.FindOrCreateProduct("Dell", "XPS13")
	require.NoError(t, err)
	second, err := repo.FindOrCreateProduct("Dell", "XPS13")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, repo.Products(), 1)

	other, err := repo.FindOrCreateProduct("Dell", "XPS15")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)
	assert.Len(t, repo.Products(), 2)
}

func TestAppendStock_DefaultsToAvailable(t *testing.T) {
	repo := newTestRepo(t)

	product, err := repo.FindOrCreateProduct("Dell", "XPS13")
	require.NoError(t, err)

	unit, err := repo.AppendStock(product.ID, "SN-001", "store1", "BILL-42")
	require.NoError(t, err)

	assert.NotEmpty(t, unit.ID)
	assert.Equal(t, models.StockAvailable, unit.Status)
	assert.Equal(t, "store1", unit.StoreID)
	assert.Equal(t, "BILL-42", unit.PurchaseBillNo)
	assert.Len(t, repo.Stock(), 1)
}

func TestMutateStock(t *testing.T) {
	repo := newTestRepo(t)

	product, err := repo.FindOrCreateProduct("Dell", "XPS13")
	require.NoError(t, err)
	unit, err := repo.AppendStock(product.ID, "SN-001", "store1", "")
	require.NoError(t, err)

	require.NoError(t, repo.MutateStock(unit.ID, func(s *models.Stock) {
		s.Status = models.StockSold
	}))

	got, ok := repo.StockByID(unit.ID)
	require.True(t, ok)
	assert.Equal(t, models.StockSold, got.Status)
	assert.False(t, got.UpdatedAt.Before(unit.UpdatedAt))
}

func TestMutateStock_AbsentIDIsNoOp(t *testing.T) {
	repo := newTestRepo(t)

	product, err := repo.FindOrCreateProduct("Dell", "XPS13")
	require.NoError(t, err)
	_, err = repo.AppendStock(product.ID, "SN-001", "store1", "")
	require.NoError(t, err)

	require.NoError(t, repo.MutateStock("no-such-id", func(s *models.Stock) {
		s.Status = models.StockSold
	}))

	for _, s := range repo.Stock() {
		assert.Equal(t, models.StockAvailable, s.Status)
	}
}

func TestReadAll_CorruptValueReadsEmpty(t *testing.T) {
	kv := storage.NewMemory()
	repo, err := repository.New(kv)
	require.NoError(t, err)

	require.NoError(t, kv.Set(storage.KeyStock, []byte(`{this is not json`)))
	assert.Empty(t, repo.Stock())

	// The collection is usable again after the next write.
	product, err := repo.FindOrCreateProduct("Dell", "XPS13")
	require.NoError(t, err)
	_, err = repo.AppendStock(product.ID, "SN-001", "store1", "")
	require.NoError(t, err)
	assert.Len(t, repo.Stock(), 1)
}

func TestAppend_IDsAreUnique(t *testing.T) {
	repo := newTestRepo(t)

	product, err := repo.FindOrCreateProduct("Dell", "XPS13")
	require.NoError(t, err)

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		unit, err := repo.AppendStock(product.ID, "SN", "store1", "")
		require.NoError(t, err)
		assert.False(t, seen[unit.ID], "duplicate id %s", unit.ID)
		seen[unit.ID] = true
	}
}

func TestAppendStock_InsertionOrderIsPreserved(t *testing.T) {
	repo := newTestRepo(t)

	product, err := repo.FindOrCreateProduct("Dell", "XPS13")
	require.NoError(t, err)

	serials := []string{"SN-1", "SN-2", "SN-3"}
	for _, sn := range serials {
		_, err := repo.AppendStock(product.ID, sn, "store1", "")
		require.NoError(t, err)
	}

	stock := repo.Stock()
	require.Len(t, stock, 3)
	for i, sn := range serials {
		assert.Equal(t, sn, stock[i].SerialNumber)
	}
}

func TestSession_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)

	_, ok := repo.CurrentUser()
	assert.False(t, ok, "no session key means logged out")

	user, ok := repo.UserByEmail("staff1@secura.com")
	require.True(t, ok)
	require.NoError(t, repo.SetCurrentUser(user))

	got, ok := repo.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, user.Store, got.Store)

	require.NoError(t, repo.ClearCurrentUser())
	_, ok = repo.CurrentUser()
	assert.False(t, ok)
}
