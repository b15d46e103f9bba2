package remote_cart

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	typesCart "storefront-main/internal/types/cart"
	myErr "storefront-main/internal/types/errors"
)

// HTTPCartGateway реализация CartGateway поверх REST API бэкенда
type HTTPCartGateway struct {
	BaseURL string
	Client  *http.Client
	Logger  *zap.SugaredLogger
}

func NewHTTPCartGateway(baseURL string, client *http.Client, logger *zap.SugaredLogger) *HTTPCartGateway {
	return &HTTPCartGateway{
		BaseURL: baseURL,
		Client:  client,
		Logger:  logger,
	}
}

// Fetch возвращает все строки серверной корзины
func (g *HTTPCartGateway) Fetch(ctx context.Context, token string) ([]typesCart.ServerCartLine, error) {
	body, err := g.do(ctx, http.MethodGet, g.BaseURL+"/cart", token, nil)
	if err != nil {
		return nil, err
	}

	var lines []typesCart.ServerCartLine
	if err := json.Unmarshal(body, &lines); err != nil {
		g.Logger.Errorf("Failed to decode cart response: %v", err)
		return nil, fmt.Errorf("%w: %v", myErr.ErrNetwork, err)
	}

	return lines, nil
}

// Upsert добавляет или обновляет строку корзины
func (g *HTTPCartGateway) Upsert(
	ctx context.Context,
	token string,
	line typesCart.UpsertLine,
) (*typesCart.ServerCartLine, error) {
	payload, err := json.Marshal(line)
	if err != nil {
		return nil, err
	}

	body, err := g.do(ctx, http.MethodPost, g.BaseURL+"/cart", token, payload)
	if err != nil {
		return nil, err
	}

	var saved typesCart.ServerCartLine
	if err := json.Unmarshal(body, &saved); err != nil {
		g.Logger.Errorf("Failed to decode upsert response: %v", err)
		return nil, fmt.Errorf("%w: %v", myErr.ErrNetwork, err)
	}

	return &saved, nil
}

// Delete удаляет строку по серверному id
func (g *HTTPCartGateway) Delete(ctx context.Context, token string, lineID string) error {
	_, err := g.do(ctx, http.MethodDelete, g.BaseURL+"/cart/"+lineID, token, nil)

	return err
}

// Clear удаляет все строки корзины пользователя
func (g *HTTPCartGateway) Clear(ctx context.Context, token string) error {
	_, err := g.do(ctx, http.MethodDelete, g.BaseURL+"/cart", token, nil)

	return err
}

// do выполняет запрос к шлюзу; любой транспортный сбой и не-2xx
// статус сводятся к ErrNetwork
func (g *HTTPCartGateway) do(
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

	resp, err := g.Client.Do(req)
	if err != nil {
		g.Logger.Errorf("Cart gateway request %s %s failed: %v", method, url, err)
		return nil, fmt.Errorf("%w: %v", myErr.ErrNetwork, err)
	}
	defer resp.Body.Close() // nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		g.Logger.Errorf("Failed to read cart gateway response: %v", err)
		return nil, fmt.Errorf("%w: %v", myErr.ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		g.Logger.Warnf("Cart gateway %s %s returned status %d", method, url, resp.StatusCode)
		return nil, myErr.NetworkError(method+" "+url, resp.StatusCode)
	}

	return body, nil
}
