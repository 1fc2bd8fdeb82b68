package port

import (
	"context"

	"github.com/lumelle/catalog-fixture/internal/core/domain"
)

// ProductsReader is the inbound read contract consumed by handlers and tools.
type ProductsReader interface {
	ListProducts(context.Context, domain.ProductFilter) ([]domain.Product, error)
	GetProduct(context.Context, string) (domain.Product, error)
}

// CatalogProvider is the outbound contract of a loaded product catalog.
type CatalogProvider interface {
	ListProducts(context.Context, domain.ProductFilter) ([]domain.Product, error)
	GetProduct(context.Context, string) (domain.Product, error)
}
