package app

import (
	"context"
	"net/http"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"storefront-main/internal/auth"
	"storefront-main/internal/cart"
	"storefront-main/internal/catalog"
	"storefront-main/internal/remote_cart"
	"storefront-main/internal/storage"
	"storefront-main/internal/wishlist"
)

// Storefront собранное клиентское ядро витрины
// Отдельного бинарника нет: встраивающий UI конструирует Storefront
// и дергает движок корзины и шлюзы напрямую
type Storefront struct {
	Logger   *zap.SugaredLogger
	Auth     *auth.TokenProvider
	Cart     cart.CartEngine
	Catalog  catalog.CatalogRepo
	Wishlist wishlist.WishlistRepo
}

// NewStorefront собирает движок корзины со шлюзами и хранилищем по конфигу
func NewStorefront(ctx context.Context, c *Config, logger *zap.SugaredLogger) *Storefront {
	httpClient := &http.Client{
		Timeout: c.HTTPTimeout,
	}

	var cartStorage storage.CartStorage
	if c.CfgRedis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     c.CfgRedis.Addr,
			Password: c.CfgRedis.Password,
			DB:       c.CfgRedis.DB,
		})
		cartStorage = storage.NewRedisCartStorage(redisClient, logger, c.StorageSlot)
	} else {
		cartStorage = storage.NewMemoryCartStorage(logger)
	}

	provider := auth.NewTokenProvider(logger)
	cartGateway := remote_cart.NewHTTPCartGateway(c.CfgCartAPI.BaseURL, httpClient, logger)
	catalogRepo := catalog.NewHTTPCatalogRepository(c.CfgCatalogAPI.BaseURL, httpClient, logger)
	wishlistRepo := wishlist.NewHTTPWishlistRepository(c.CfgWishlistAPI.BaseURL, httpClient, logger)

	engine := cart.NewService(ctx, logger, cartGateway, catalogRepo, cartStorage, provider)

	return &Storefront{
		Logger:   logger,
		Auth:     provider,
		Cart:     engine,
		Catalog:  catalogRepo,
		Wishlist: wishlistRepo,
	}
}

// Login вызывается UI после успешной аутентификации: запоминает токен,
// сливает гостевую корзину в серверную и перечитывает её с сервера
func (sf *Storefront) Login(ctx context.Context, token string) {
	sf.Auth.SetToken(token)
	if sf.Auth.CurrentUserID() == "" {
		// Нечитаемый или истёкший токен — остаёмся гостем
		return
	}

	sf.Cart.MergeGuestInto(ctx, sf.Auth.CurrentToken())

	if _, err := sf.Cart.FetchAndEnrich(ctx); err != nil {
		sf.Logger.Errorf("Failed to refresh cart after login: %v", err)
	}
}

// Logout переводит ядро в гостевое состояние
func (sf *Storefront) Logout() {
	sf.Auth.ClearToken()
}
