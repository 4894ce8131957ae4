package models

import "time"

type ActivityType string

const (
	ActivityStockAdd ActivityType = "stock_add"
	ActivitySale     ActivityType = "sale"
	ActivityTransfer ActivityType = "transfer"
)

// ActivityLog entries are append-only: one entry per completed
// stock-add/sale/transfer action. Bulk actions write a single summarizing
// entry, not one per item.
type ActivityLog struct {
	ID          string       `json:"id"`
	Type        ActivityType `json:"type"`
	Description string       `json:"description"`
	UserID      string       `json:"userId"`
	CreatedAt   time.Time    `json:"createdAt"`
}
