package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	typesCatalog "storefront-main/internal/types/catalog"
	myErr "storefront-main/internal/types/errors"
)

// HTTPCatalogRepository реализация CatalogRepo поверх REST API каталога
type HTTPCatalogRepository struct {
	BaseURL string
	Client  *http.Client
	Logger  *zap.SugaredLogger
}

func NewHTTPCatalogRepository(baseURL string, client *http.Client, logger *zap.SugaredLogger) *HTTPCatalogRepository {
	return &HTTPCatalogRepository{
		BaseURL: baseURL,
		Client:  client,
		Logger:  logger,
	}
}

// GetByID возвращает товар с вариантами
func (r *HTTPCatalogRepository) GetByID(ctx context.Context, itemID string) (*typesCatalog.Item, error) {
	body, err := r.get(ctx, r.BaseURL+"/items/"+itemID)
	if err != nil {
		return nil, err
	}

	var item typesCatalog.Item
	if err := json.Unmarshal(body, &item); err != nil {
		r.Logger.Errorf("Failed to decode item %s: %v", itemID, err)
		return nil, fmt.Errorf("%w: %v", myErr.ErrNetwork, err)
	}

	return &item, nil
}

// List возвращает все товары витрины
func (r *HTTPCatalogRepository) List(ctx context.Context) ([]typesCatalog.Item, error) {
	body, err := r.get(ctx, r.BaseURL+"/items")
	if err != nil {
		return nil, err
	}

	var items []typesCatalog.Item
	if err := json.Unmarshal(body, &items); err != nil {
		r.Logger.Errorf("Failed to decode items listing: %v", err)
		return nil, fmt.Errorf("%w: %v", myErr.ErrNetwork, err)
	}

	return items, nil
}

func (r *HTTPCatalogRepository) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.Client.Do(req)
	if err != nil {
		r.Logger.Errorf("Catalog request %s failed: %v", url, err)
		return nil, fmt.Errorf("%w: %v", myErr.ErrNetwork, err)
	}
	defer resp.Body.Close() // nolint:errcheck

	if resp.StatusCode == http.StatusNotFound {
		return nil, myErr.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		r.Logger.Warnf("Catalog %s returned status %d", url, resp.StatusCode)
		return nil, myErr.NetworkError("GET "+url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		r.Logger.Errorf("Failed to read catalog response: %v", err)
		return nil, fmt.Errorf("%w: %v", myErr.ErrNetwork, err)
	}

	return body, nil
}
