package domain

import "errors"

// ErrNotFound signals an absent product id. A lookup miss is an
// expected outcome, not a failure of the catalog itself.
var ErrNotFound = errors.New("product not found")

// DefaultListLimit is the page size applied when a filter leaves Limit unset.
const DefaultListLimit = 20

type Product struct {
	ID               string
	Title            string
	Price            float64
	Currency         string
	ImageURL         string
	Category         string
	ReadyToShip      bool
	Tags             []string
	ShippingPromise  string
	Badges           []string
	FeaturedInWidget bool
}

// ProductFilter narrows and windows a product listing.
//
// Pointer fields are tri-state: nil imposes no constraint, a non-nil
// value must match exactly. ReadyToShip=false therefore still filters,
// it is not treated as unset.
type ProductFilter struct {
	Category    string
	ReadyToShip *bool
	Tags        []string
	Featured    *bool
	PriceLt     *float64
	Offset      int
	Limit       *int
}
