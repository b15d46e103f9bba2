package cart

import (
	"context"

	typesCart "storefront-main/internal/types/cart"
)

// CartEngine движок сверки корзины: единое локальное состояние,
// оптимистичные мутации с откатом при сбое удалённого вызова и
// слияние гостевой корзины в серверную при логине
//
//go:generate mockgen -source=internal/cart/cart.go -destination=internal/mocks/mock_cart_engine.go -package=mocks
type CartEngine interface {
	// Lines возвращает копию текущего состояния корзины
	Lines() typesCart.Cart
	// InFlight возвращает id позиций с незавершённым удалённым вызовом
	// (для спиннеров в UI)
	InFlight() map[string]bool

	// Add добавляет товар; возвращает id созданной позиции —
	// серверный для аутентифицированной сессии, временный для гостя
	Add(ctx context.Context, entry typesCart.AddEntry) (string, error)
	// UpdateQuantity выставляет количество; quantity <= 0 означает удаление
	UpdateQuantity(ctx context.Context, lineID string, quantity int) error
	// Remove удаляет позицию; неизвестный id — тихий no-op
	Remove(ctx context.Context, lineID string) error
	// FetchAndEnrich заменяет состояние корзины обогащённым серверным;
	// для гостя возвращает временные позиции без сетевых вызовов
	FetchAndEnrich(ctx context.Context) (typesCart.Cart, error)
	// Clear безусловно очищает корзину; удалённая очистка — best-effort
	Clear(ctx context.Context)
	// MergeGuestInto переносит гостевые позиции в серверную корзину
	// по указанному токену; сбои отдельных позиций не прерывают слияние
	MergeGuestInto(ctx context.Context, token string)
}
