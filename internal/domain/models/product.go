package models

import "time"

// Product is a catalog item. Images and Specs live in JSON text columns and
// are (de)serialized by the repository.
type Product struct {
	ID          int64             `json:"id"`
	Slug        string            `json:"slug"`
	Name        string            `json:"name"`
	Summary     string            `json:"summary"`
	Description string            `json:"description"`
	Price       float64           `json:"price"`
	Category    string            `json:"category"`
	Images      []string          `json:"images"`
	Specs       map[string]string `json:"specs"`
	Featured    bool              `json:"featured"`
	Status      string            `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
)
