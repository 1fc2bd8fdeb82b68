package fixture

import (
	"slices"

	"github.com/lumelle/catalog-fixture/internal/core/domain"
	"github.com/lumelle/catalog-fixture/pkg/fixturedoc"
)

// toDomain normalizes one raw fixture record into the canonical product
// shape. Omitted optional fields take their defaults: currency "USD",
// readyToShip and featuredInWidget false, tags and badges empty. The sku
// passes through untouched; validating it is the catalog's job.
func toDomain(r fixturedoc.Record) domain.Product {
	p := domain.Product{
		ID:               r.SKU,
		Title:            r.Title,
		Price:            r.Price,
		Currency:         r.Currency,
		ImageURL:         r.ImageURL,
		Category:         r.Category,
		ReadyToShip:      r.ReadyToShip,
		Tags:             r.Tags,
		ShippingPromise:  r.ShippingPromise,
		Badges:           r.Badges,
		FeaturedInWidget: r.FeaturedInWidget,
	}
	if p.Currency == "" {
		p.Currency = defaultCurrency
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.Badges == nil {
		p.Badges = []string{}
	}
	return p
}

// cloneProduct copies a product with its slices detached from the
// catalog's backing data, so callers can never mutate catalog state.
func cloneProduct(p domain.Product) domain.Product {
	p.Tags = slices.Clone(p.Tags)
	p.Badges = slices.Clone(p.Badges)
	return p
}
