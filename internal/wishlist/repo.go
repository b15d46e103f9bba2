package wishlist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	myErr "storefront-main/internal/types/errors"
)

// HTTPWishlistRepository реализация WishlistRepo поверх REST API бэкенда
type HTTPWishlistRepository struct {
	BaseURL string
	Client  *http.Client
	Logger  *zap.SugaredLogger
}

func NewHTTPWishlistRepository(baseURL string, client *http.Client, logger *zap.SugaredLogger) *HTTPWishlistRepository {
	return &HTTPWishlistRepository{
		BaseURL: baseURL,
		Client:  client,
		Logger:  logger,
	}
}

// List возвращает список желаний пользователя
func (r *HTTPWishlistRepository) List(ctx context.Context, token string) ([]Entry, error) {
	body, err := r.do(ctx, http.MethodGet, r.BaseURL+"/wishlist", token, nil)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	if err := json.Unmarshal(body, &entries); err != nil {
		r.Logger.Errorf("Failed to decode wishlist response: %v", err)
		return nil, fmt.Errorf("%w: %v", myErr.ErrNetwork, err)
	}

	return entries, nil
}

// Add добавляет товар в список желаний
func (r *HTTPWishlistRepository) Add(ctx context.Context, token string, itemID string) (*Entry, error) {
	payload, err := json.Marshal(map[string]string{"item_id": itemID})
	if err != nil {
		return nil, err
	}

	body, err := r.do(ctx, http.MethodPost, r.BaseURL+"/wishlist", token, payload)
	if err != nil {
		return nil, err
	}

	var entry Entry
	if err := json.Unmarshal(body, &entry); err != nil {
		r.Logger.Errorf("Failed to decode wishlist add response: %v", err)
		return nil, fmt.Errorf("%w: %v", myErr.ErrNetwork, err)
	}

	return &entry, nil
}

// Remove удаляет товар из списка желаний
func (r *HTTPWishlistRepository) Remove(ctx context.Context, token string, itemID string) error {
	_, err := r.do(ctx, http.MethodDelete, r.BaseURL+"/wishlist/"+itemID, token, nil)

	return err
}

func (r *HTTPWishlistRepository) do(
	ctx context.Context,
	method string,
	url string,
	token string,
	payload []byte,
) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.Client.Do(req)
	if err != nil {
		r.Logger.Errorf("Wishlist request %s %s failed: %v", method, url, err)
		return nil, fmt.Errorf("%w: %v", myErr.ErrNetwork, err)
	}
	defer resp.Body.Close() // nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		r.Logger.Errorf("Failed to read wishlist response: %v", err)
		return nil, fmt.Errorf("%w: %v", myErr.ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		r.Logger.Warnf("Wishlist %s %s returned status %d", method, url, resp.StatusCode)
		return nil, myErr.NetworkError(method+" "+url, resp.StatusCode)
	}

	return body, nil
}
