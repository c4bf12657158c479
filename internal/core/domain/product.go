package domain

import "github.com/govalues/decimal"

// ProductPatch carries a partial update; nil fields are left unchanged.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Stock       *int
	Category    *string
	ImageURL    *string
	Active      *bool
}

type Product struct {
	ID          uint64
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	Category    string
	ImageURL    string
	SellerEmail string
	Active      bool
}
