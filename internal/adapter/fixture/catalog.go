package fixture

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/lumelle/catalog-fixture/internal/core/domain"
	"github.com/lumelle/catalog-fixture/internal/core/port"
	"github.com/lumelle/catalog-fixture/pkg/fixturedoc"
)

var _ port.CatalogProvider = (*Catalog)(nil)

// A Catalog is a read-only product collection loaded from a fixture
// document. The collection is normalized and validated once at
// construction and never mutated afterwards, so any number of goroutines
// may query it without locking.
type Catalog struct {
	products []domain.Product
	byID     map[string]int
}

// NewCatalog builds a catalog from a fixture document. It fails on a
// malformed document, a record without a sku, or a duplicated sku:
// fixture bugs should surface here, not in the tests depending on them.
func NewCatalog(doc []byte) (Catalog, error) {
	const op = "fixture.NewCatalog"
	log := slog.With("op", op)

	rs, err := fixturedoc.Decode(doc)
	if err != nil {
		return Catalog{}, fmt.Errorf("%s: %w", op, err)
	}

	c := Catalog{
		products: make([]domain.Product, 0, len(rs)),
		byID:     make(map[string]int, len(rs)),
	}
	for i, r := range rs {
		if strings.TrimSpace(r.SKU) == "" {
			return Catalog{}, fmt.Errorf("%s: record %d: %w", op, i, ErrMissingSKU)
		}
		p := toDomain(r)
		if _, ok := c.byID[p.ID]; ok {
			return Catalog{}, fmt.Errorf("%s: record %d: %w: %q", op, i, ErrDuplicateSKU, p.ID)
		}
		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}

	log.Info("catalog loaded", "products", len(c.products))
	return c, nil
}

// LoadCatalog reads a fixture document from disk and builds the catalog.
func LoadCatalog(path string) (Catalog, error) {
	const op = "fixture.LoadCatalog"

	doc, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("%s: %w", op, err)
	}

	c, err := NewCatalog(doc)
	if err != nil {
		return Catalog{}, fmt.Errorf("%s: %s: %w", op, path, err)
	}
	return c, nil
}

// ListProducts returns the filtered window of the catalog: predicates
// apply first, then the title sort, then the [offset, offset+limit)
// window. An unmatched filter yields an empty slice, never an error.
func (c Catalog) ListProducts(
	ctx context.Context, f domain.ProductFilter,
) ([]domain.Product, error) {
	const op = "Catalog.ListProducts"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ps := filterProducts(c.products, f)
	sortByTitle(ps)
	ps = window(ps, f.Offset, limitOrDefault(f.Limit))

	out := make([]domain.Product, len(ps))
	for i, p := range ps {
		out[i] = cloneProduct(p)
	}
	return out, nil
}

// GetProduct returns the product with the given id, or a
// [domain.ErrNotFound] error for an absent one.
func (c Catalog) GetProduct(
	ctx context.Context, id string,
) (domain.Product, error) {
	const op = "Catalog.GetProduct"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	i, ok := c.byID[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("%s: %q: %w", op, id, domain.ErrNotFound)
	}
	return cloneProduct(c.products[i]), nil
}

// Len reports the number of products in the catalog.
func (c Catalog) Len() int {
	return len(c.products)
}
