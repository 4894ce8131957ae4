package models

import "time"

type StockStatus string

const (
	StockAvailable StockStatus = "available"
	StockSold      StockStatus = "sold"
	// StockTransferred is declared in the schema but never reached: a
	// completed transfer moves the unit and forces it back to available
	// at the destination.
	StockTransferred StockStatus = "transferred"
)

// Stock: one physical, serial-numbered unit. Status and StoreID together
// decide whether the unit is sellable/transferable from a store. The
// serial number is caller-supplied and not validated unique.
type Stock struct {
	ID             string      `json:"id"`
	ProductID      string      `json:"productId"`
	SerialNumber   string      `json:"serialNumber"`
	StoreID        string      `json:"storeId"`
	Status         StockStatus `json:"status"`
	PurchaseBillNo string      `json:"purchaseBillNo,omitempty"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}
