package storage

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	typesCart "storefront-main/internal/types/cart"
)

// RedisCartStorage хранит корзину в Redis под одним ключом
type RedisCartStorage struct {
	RedisClient *redis.Client
	Logger      *zap.SugaredLogger
	slotKey     string
}

func NewRedisCartStorage(
	redisClient *redis.Client,
	logger *zap.SugaredLogger,
	slotKey string,
) *RedisCartStorage {
	return &RedisCartStorage{
		RedisClient: redisClient,
		Logger:      logger,
		slotKey:     slotKey,
	}
}

// Load читает корзину из Redis
// redis.Nil и битый JSON не считаются ошибками — возвращаем пустую корзину
func (rcs *RedisCartStorage) Load(ctx context.Context) (typesCart.Cart, error) {
	data, err := rcs.RedisClient.Get(ctx, rcs.slotKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return typesCart.Cart{}, nil
		}

		rcs.Logger.Errorf("Failed to load cart slot %s from Redis: %v", rcs.slotKey, err)
		return typesCart.Cart{}, err
	}

	var c typesCart.Cart
	if err := json.Unmarshal(data, &c); err != nil {
		rcs.Logger.Errorf("Malformed cart snapshot in slot %s, resetting to empty: %v", rcs.slotKey, err)
		return typesCart.Cart{}, nil
	}
	if c == nil {
		c = typesCart.Cart{}
	}

	return c, nil
}

// Save перезаписывает слот корзины целиком
func (rcs *RedisCartStorage) Save(ctx context.Context, c typesCart.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		rcs.Logger.Errorf("Failed to encode cart for slot %s: %v", rcs.slotKey, err)
		return err
	}

	// Корзина живёт между перезагрузками, поэтому без TTL
	if err := rcs.RedisClient.Set(ctx, rcs.slotKey, data, 0).Err(); err != nil {
		rcs.Logger.Errorf("Failed to save cart to slot %s: %v", rcs.slotKey, err)
		return err
	}

	return nil
}

// Clear удаляет слот корзины
func (rcs *RedisCartStorage) Clear(ctx context.Context) error {
	if err := rcs.RedisClient.Del(ctx, rcs.slotKey).Err(); err != nil {
		rcs.Logger.Errorf("Failed to clear cart slot %s: %v", rcs.slotKey, err)
		return err
	}

	return nil
}
