package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a row of shopping_list.
type Product struct {
	ID        int64           `db:"id" json:"id"`
	Name      string          `db:"name" json:"name"`
	Price     decimal.Decimal `db:"price" json:"price"`
	DateAdded time.Time       `db:"date_added" json:"date_added"`
	Checked   bool            `db:"checked" json:"checked"`
	Category  string          `db:"category" json:"category"`
}

// NewProduct carries the fields of a product to insert. A nil DateAdded
// takes the insertion time from the store.
type NewProduct struct {
	Name      string
	Price     decimal.Decimal
	DateAdded *time.Time
	Checked   bool
	Category  string
}

// ProductPatch is a partial replacement: nil fields are left untouched.
type ProductPatch struct {
	Name      *string
	Price     *decimal.Decimal
	DateAdded *time.Time
	Checked   *bool
	Category  *string
}

// IsEmpty reports whether the patch would change nothing.
func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Price == nil && p.DateAdded == nil &&
		p.Checked == nil && p.Category == nil
}

// CategoryTotal is one group of the per-category price aggregate.
type CategoryTotal struct {
	Category string          `db:"category" json:"category"`
	Total    decimal.Decimal `db:"total" json:"total"`
}
