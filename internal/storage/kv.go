package storage

// Key is a collection key in the persistent store. The names are fixed and
// inherited from the original data layout; changing one orphans the data
// written under the old name.
type Key string

const (
	KeyUsers        Key = "secura_users"
	KeyStores       Key = "secura_stores"
	KeyProducts     Key = "secura_products"
	KeyStock        Key = "secura_stock"
	KeySales        Key = "secura_sales"
	KeyTransfers    Key = "secura_transfers"
	KeyActivityLogs Key = "secura_activity_logs"

	// KeyCurrentUser holds the logged-in user's record as JSON; absence
	// means logged out.
	KeyCurrentUser Key = "secura_current_user"
)

// KV is the storage substrate: an opaque string-keyed store with
// JSON-shaped values. Get returns (nil, nil) when the key is absent.
type KV interface {
	Get(key Key) ([]byte, error)
	Set(key Key, value []byte) error
	Remove(key Key) error
	Close() error
}
