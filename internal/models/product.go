package models

import "time"

// Product identity is the (brand, model) pair; the id is assigned on the
// first insertion of that pair and reused afterwards.
type Product struct {
	ID        string    `json:"id"`
	Brand     string    `json:"brand"`
	Model     string    `json:"model"`
	CreatedAt time.Time `json:"createdAt"`
}
