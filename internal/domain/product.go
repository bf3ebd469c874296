package domain

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a single inventory entry. Items scanned twice with the
// same barcode and expiration date are merged into one entry by incrementing
// Units rather than inserting a new row.
type Product struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Brand        string    `json:"brand" db:"brand"`
	Manufacturer string    `json:"manufacturer" db:"manufacturer"`
	Category     string    `json:"category" db:"category"`
	Barcode      string    `json:"barcode" db:"barcode"`

	// ExpirationDate is kept as the raw dd/mm/yyyy string the scanner (or the
	// user) produced. Stored data round-trips through this exact format, so it
	// is never re-encoded; malformed values are tolerated and simply excluded
	// from alert classification.
	ExpirationDate string `json:"expiration_date" db:"expiration_date"`

	Units            int      `json:"units" db:"units"`
	QuantityValue    *float64 `json:"quantity_value,omitempty" db:"quantity_value"`
	QuantityUnit     *string  `json:"quantity_unit,omitempty" db:"quantity_unit"`
	PhotoURL         *string  `json:"photo_url,omitempty" db:"photo_url"`
	NutritionRaw     *string  `json:"nutrition_raw,omitempty" db:"nutrition_raw"`
	NutritionSummary *string  `json:"nutrition_summary,omitempty" db:"nutrition_summary"`

	PurchaseDate time.Time `json:"purchase_date" db:"purchase_date"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// GroupKey identifies the stock-counting group a product belongs to: the
// barcode when present, otherwise the name|brand pair (manually entered items
// have no barcode).
func (p Product) GroupKey() string {
	if p.Barcode != "" {
		return p.Barcode
	}
	return p.Name + "|" + p.Brand
}
