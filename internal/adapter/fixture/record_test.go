package fixture

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lumelle/catalog-fixture/internal/core/domain"
	"github.com/lumelle/catalog-fixture/pkg/fixturedoc"
)

func TestToDomain(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		p := toDomain(fixturedoc.Record{SKU: "testSKU", Title: "testTitle"})

		assert.Equal(t, "testSKU", p.ID)
		assert.Equal(t, "testTitle", p.Title)
		assert.Equal(t, "USD", p.Currency)
		assert.False(t, p.ReadyToShip)
		assert.False(t, p.FeaturedInWidget)
		assert.NotNil(t, p.Tags)
		assert.Empty(t, p.Tags)
		assert.NotNil(t, p.Badges)
		assert.Empty(t, p.Badges)
	})

	t.Run("FullRecord", func(t *testing.T) {
		r := fixturedoc.Record{
			SKU:              "testSKU",
			Title:            "testTitle",
			Price:            123.45,
			Currency:         "EUR",
			ImageURL:         "testImageURL",
			Category:         "testCategory",
			ReadyToShip:      true,
			Tags:             []string{"tag1", "tag2"},
			ShippingPromise:  "testPromise",
			Badges:           []string{"badge1"},
			FeaturedInWidget: true,
		}

		p := toDomain(r)

		assert.Equal(t, "testSKU", p.ID)
		assert.Equal(t, "testTitle", p.Title)
		assert.Equal(t, 123.45, p.Price)
		assert.Equal(t, "EUR", p.Currency)
		assert.Equal(t, "testImageURL", p.ImageURL)
		assert.Equal(t, "testCategory", p.Category)
		assert.True(t, p.ReadyToShip)
		assert.Equal(t, []string{"tag1", "tag2"}, p.Tags)
		assert.Equal(t, "testPromise", p.ShippingPromise)
		assert.Equal(t, []string{"badge1"}, p.Badges)
		assert.True(t, p.FeaturedInWidget)
	})
}

func TestCloneProduct(t *testing.T) {
	original := domain.Product{
		ID:     "testSKU",
		Tags:   []string{"tag1", "tag2"},
		Badges: []string{"badge1"},
	}

	clone := cloneProduct(original)
	assert.Equal(t, original, clone)

	clone.Tags[0] = "mutated"
	clone.Badges[0] = "mutated"

	assert.Equal(t, "tag1", original.Tags[0])
	assert.Equal(t, "badge1", original.Badges[0])
}
