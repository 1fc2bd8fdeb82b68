package service

import (
	"context"
	"fmt"

	"github.com/lumelle/catalog-fixture/internal/core/domain"
	"github.com/lumelle/catalog-fixture/internal/core/port"
)

var _ port.ProductsReader = (*Service)(nil)

// Service is the core read service. Inbound adapters consume it through
// [port.ProductsReader]; it delegates to the configured catalog.
type Service struct {
	catalog port.CatalogProvider
}

func New(catalog port.CatalogProvider) Service {
	return Service{catalog}
}

func (s Service) ListProducts(
	ctx context.Context, f domain.ProductFilter,
) ([]domain.Product, error) {
	const op = "Service.ListProducts"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ps, err := s.catalog.ListProducts(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

func (s Service) GetProduct(
	ctx context.Context, id string,
) (domain.Product, error) {
	const op = "Service.GetProduct"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	p, err := s.catalog.GetProduct(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}
