package wishlist

import (
	"context"

	typesCatalog "storefront-main/internal/types/catalog"
)

// Entry позиция списка желаний
type Entry struct {
	ID     string             `json:"id"`
	ItemID string             `json:"item_id"`
	Item   *typesCatalog.Item `json:"item,omitempty"`
}

// WishlistRepo REST-шлюз списка желаний пользователя
//
//go:generate mockgen -source=internal/wishlist/wishlist.go -destination=internal/mocks/mock_wishlist_repo.go -package=mocks
type WishlistRepo interface {
	// List возвращает список желаний — GET /wishlist
	List(ctx context.Context, token string) ([]Entry, error)
	// Add добавляет товар — POST /wishlist
	Add(ctx context.Context, token string, itemID string) (*Entry, error)
	// Remove удаляет товар — DELETE /wishlist/{itemID}
	Remove(ctx context.Context, token string, itemID string) error
}
