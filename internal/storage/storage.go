package storage

import (
	"context"

	typesCart "storefront-main/internal/types/cart"
)

// CartStorage долговременное зеркало корзины: один именованный слот
// с JSON-сериализованной корзиной, перезаписываемый при каждой мутации
//
//go:generate mockgen -source=internal/storage/storage.go -destination=internal/mocks/mock_cart_storage.go -package=mocks
type CartStorage interface {
	// Load читает корзину из слота
	// Отсутствующий или повреждённый слот — пустая корзина, не ошибка
	Load(ctx context.Context) (typesCart.Cart, error)
	// Save перезаписывает слот текущей корзиной целиком
	Save(ctx context.Context, c typesCart.Cart) error
	// Clear удаляет слот
	Clear(ctx context.Context) error
}
