package fixture_test

import (
	"context"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumelle/catalog-fixture/internal/adapter/fixture"
	"github.com/lumelle/catalog-fixture/internal/core/domain"
	"github.com/lumelle/catalog-fixture/pkg/fixturedoc"
)

const catalogDoc = `[
	{"sku": "p1", "title": "Zelda Band", "price": 700, "category": "Rings",
	 "readyToShip": true, "tags": ["modern", "popular"], "featuredInWidget": true},
	{"sku": "p2", "title": "Apple Ring", "price": 300, "category": "Rings",
	 "readyToShip": false, "tags": ["classic", "popular"], "badges": ["Bestseller"]},
	{"sku": "p3", "title": "Misty Pendant", "price": 500, "category": "Necklaces",
	 "readyToShip": true, "tags": ["classic"], "shippingPromise": "Ships in 24h"}
]`

func mustCatalog(t *testing.T, doc string) fixture.Catalog {
	t.Helper()
	c, err := fixture.NewCatalog([]byte(doc))
	require.NoError(t, err)
	return c
}

func TestNewCatalog(t *testing.T) {
	t.Run("Regular", func(t *testing.T) {
		c := mustCatalog(t, catalogDoc)
		assert.Equal(t, 3, c.Len())
	})

	t.Run("EmptyCollection", func(t *testing.T) {
		c := mustCatalog(t, `[]`)
		assert.Equal(t, 0, c.Len())
	})

	t.Run("MissingSKU", func(t *testing.T) {
		_, err := fixture.NewCatalog([]byte(`[{"title": "No SKU"}]`))
		require.Error(t, err)
		assert.ErrorIs(t, err, fixture.ErrMissingSKU)
	})

	t.Run("BlankSKU", func(t *testing.T) {
		_, err := fixture.NewCatalog([]byte(`[{"sku": "   ", "title": "Blank SKU"}]`))
		require.Error(t, err)
		assert.ErrorIs(t, err, fixture.ErrMissingSKU)
	})

	t.Run("DuplicateSKU", func(t *testing.T) {
		doc := `[
			{"sku": "p1", "title": "First"},
			{"sku": "p1", "title": "Second"}
		]`
		_, err := fixture.NewCatalog([]byte(doc))
		require.Error(t, err)
		assert.ErrorIs(t, err, fixture.ErrDuplicateSKU)
	})

	t.Run("MalformedDocument", func(t *testing.T) {
		_, err := fixture.NewCatalog([]byte(`{"sku": "p1"}`))
		require.Error(t, err)
		assert.ErrorIs(t, err, fixturedoc.ErrMalformed)
	})

	t.Run("NullDocument", func(t *testing.T) {
		_, err := fixture.NewCatalog([]byte(`null`))
		require.Error(t, err)
		assert.ErrorIs(t, err, fixturedoc.ErrMalformed)
	})
}

func TestLoadCatalog(t *testing.T) {
	t.Run("Regular", func(t *testing.T) {
		c, err := fixture.LoadCatalog("testdata/catalog.json")
		require.NoError(t, err)
		assert.Equal(t, 3, c.Len())

		p, err := c.GetProduct(t.Context(), "band-zelda")
		require.NoError(t, err)
		assert.Equal(t, "Zelda Band", p.Title)
		assert.Equal(t, "EUR", p.Currency)
	})

	t.Run("AbsentFile", func(t *testing.T) {
		_, err := fixture.LoadCatalog("testdata/absent.json")
		require.Error(t, err)
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})
}

func TestGetProduct(t *testing.T) {
	t.Run("Roundtrip", func(t *testing.T) {
		c := mustCatalog(t, catalogDoc)

		n := c.Len()
		ps, err := c.ListProducts(t.Context(), domain.ProductFilter{Limit: &n})
		require.NoError(t, err)
		require.Len(t, ps, n)

		for _, want := range ps {
			got, err := c.GetProduct(t.Context(), want.ID)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("Defaults", func(t *testing.T) {
		c := mustCatalog(t, `[{"sku": "p1", "title": "Bare Ring"}]`)

		p, err := c.GetProduct(t.Context(), "p1")
		require.NoError(t, err)
		assert.Equal(t, "USD", p.Currency)
		assert.False(t, p.ReadyToShip)
		assert.False(t, p.FeaturedInWidget)
		assert.NotNil(t, p.Tags)
		assert.Empty(t, p.Tags)
		assert.NotNil(t, p.Badges)
		assert.Empty(t, p.Badges)
	})

	t.Run("NotFound", func(t *testing.T) {
		c := mustCatalog(t, catalogDoc)

		_, err := c.GetProduct(t.Context(), "absent")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("CallerCannotMutateCatalog", func(t *testing.T) {
		c := mustCatalog(t, catalogDoc)

		p1, err := c.GetProduct(t.Context(), "p1")
		require.NoError(t, err)
		require.NotEmpty(t, p1.Tags)

		p1.Tags[0] = "mutated"

		p2, err := c.GetProduct(t.Context(), "p1")
		require.NoError(t, err)
		assert.Equal(t, "modern", p2.Tags[0])
	})

	t.Run("DoneContext", func(t *testing.T) {
		c := mustCatalog(t, catalogDoc)

		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		_, err := c.GetProduct(ctx, "p1")
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
