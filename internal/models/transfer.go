package models

import "time"

type TransferItem struct {
	StockID      string `json:"stockId"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	SerialNumber string `json:"serialNumber"`
}

type Transfer struct {
	ID          string         `json:"id"`
	FromStoreID string         `json:"fromStoreId"`
	ToStoreID   string         `json:"toStoreId"`
	Items       []TransferItem `json:"items"`
	CreatedBy   string         `json:"createdBy"`
	CreatedAt   time.Time      `json:"createdAt"`
}
