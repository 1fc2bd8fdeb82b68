package fixturedoc

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrMalformed = errors.New("malformed fixture document")

// A Record is one raw product entry of a fixture document.
//
// Only SKU is required by consumers; every other field is optional and
// left at its zero value when the document omits it.
type Record struct {
	SKU              string   `json:"sku"`
	Title            string   `json:"title"`
	Price            float64  `json:"price"`
	Currency         string   `json:"currency"`
	ImageURL         string   `json:"imageUrl"`
	Category         string   `json:"category"`
	ReadyToShip      bool     `json:"readyToShip"`
	Tags             []string `json:"tags"`
	ShippingPromise  string   `json:"shippingPromise"`
	Badges           []string `json:"badges"`
	FeaturedInWidget bool     `json:"featuredInWidget"`
}

// Decode parses a fixture document: a JSON array of product records.
// Anything else is reported as [ErrMalformed].
func Decode(doc []byte) ([]Record, error) {
	const op = "fixturedoc.Decode"

	var rs []Record
	if err := json.Unmarshal(doc, &rs); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrMalformed, err)
	}
	if rs == nil {
		return nil, fmt.Errorf("%s: %w: document is null", op, ErrMalformed)
	}
	return rs, nil
}
