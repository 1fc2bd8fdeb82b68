package fixture

import (
	"math"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/lumelle/catalog-fixture/internal/core/domain"
)

// filterProducts keeps the products matching every set filter field. The
// returned slice is freshly allocated; the input is never modified.
func filterProducts(ps []domain.Product, f domain.ProductFilter) []domain.Product {
	out := make([]domain.Product, 0, len(ps))
	for _, p := range ps {
		if matches(p, f) {
			out = append(out, p)
		}
	}
	return out
}

// matches evaluates the filter predicates in their contract order:
// category, readyToShip, tags, featured, priceLt.
func matches(p domain.Product, f domain.ProductFilter) bool {
	if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
		return false
	}
	if f.ReadyToShip != nil && p.ReadyToShip != *f.ReadyToShip {
		return false
	}
	if !containsAll(p.Tags, f.Tags) {
		return false
	}
	if f.Featured != nil && p.FeaturedInWidget != *f.Featured {
		return false
	}
	if f.PriceLt != nil && isFinite(*f.PriceLt) && p.Price >= *f.PriceLt {
		return false
	}
	return true
}

// containsAll reports whether have includes every element of want.
// An empty want imposes no constraint.
func containsAll(have, want []string) bool {
	for _, w := range want {
		if !slices.Contains(have, w) {
			return false
		}
	}
	return true
}

// isFinite reports whether v is a usable bound. NaN and the infinities
// mean "no constraint" rather than an error.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// sortByTitle orders products by title ascending under Unicode collation,
// keeping source order for equal titles. Collators carry mutable internal
// state and are not safe for concurrent use, so each call builds its own.
func sortByTitle(ps []domain.Product) {
	col := collate.New(language.Und)
	slices.SortStableFunc(ps, func(a, b domain.Product) int {
		return col.CompareString(a.Title, b.Title)
	})
}

// window takes the [offset, offset+limit) slice of ps. Windows past the
// end shrink to the remaining tail; negative values count as zero.
func window(ps []domain.Product, offset, limit int) []domain.Product {
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}
	if offset >= len(ps) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(ps) {
		end = len(ps)
	}
	return ps[offset:end]
}

func limitOrDefault(l *int) int {
	if l == nil {
		return domain.DefaultListLimit
	}
	return *l
}
