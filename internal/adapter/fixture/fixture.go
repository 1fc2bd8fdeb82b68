package fixture

import "errors"

const defaultCurrency = "USD"

var (
	ErrMissingSKU   = errors.New("fixture record missing sku")
	ErrDuplicateSKU = errors.New("duplicate sku in fixture")
)
