package catalog

import (
	"context"

	typesCatalog "storefront-main/internal/types/catalog"
)

// CatalogRepo read-only шлюз каталога товаров
//
//go:generate mockgen -source=internal/catalog/catalog.go -destination=internal/mocks/mock_catalog_repo.go -package=mocks
type CatalogRepo interface {
	// GetByID возвращает товар с вариантами — GET /items/{id}
	GetByID(ctx context.Context, itemID string) (*typesCatalog.Item, error)
	// List возвращает все товары витрины — GET /items
	List(ctx context.Context) ([]typesCatalog.Item, error)
}
