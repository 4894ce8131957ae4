package models

import "time"

// SaleItem is a denormalized snapshot of the sold unit. The per-item price
// is sale-local display data and is not persisted; only the total survives
// on the Sale.
type SaleItem struct {
	StockID      string `json:"stockId"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	SerialNumber string `json:"serialNumber"`
}

type Sale struct {
	ID             string     `json:"id"`
	CustomerName   string     `json:"customerName"`
	CustomerNumber string     `json:"customerNumber"`
	StoreID        string     `json:"storeId"`
	Items          []SaleItem `json:"items"`
	TotalAmount    float64    `json:"totalAmount"`
	CreatedBy      string     `json:"createdBy"`
	CreatedAt      time.Time  `json:"createdAt"`
}
