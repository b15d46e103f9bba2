package remote_cart

import (
	"context"

	typesCart "storefront-main/internal/types/cart"
)

// CartGateway REST-шлюз серверной корзины пользователя
//
//go:generate mockgen -source=internal/remote_cart/remote_cart.go -destination=internal/mocks/mock_cart_gateway.go -package=mocks
type CartGateway interface {
	// Fetch возвращает все строки серверной корзины — GET /cart
	Fetch(ctx context.Context, token string) ([]typesCart.ServerCartLine, error)
	// Upsert добавляет или обновляет строку, возвращает сохранённую
	// строку с серверным id — POST /cart
	Upsert(ctx context.Context, token string, line typesCart.UpsertLine) (*typesCart.ServerCartLine, error)
	// Delete удаляет строку по серверному id — DELETE /cart/{id}
	Delete(ctx context.Context, token string, lineID string) error
	// Clear удаляет все строки корзины пользователя — DELETE /cart
	Clear(ctx context.Context, token string) error
}
