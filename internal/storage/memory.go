package storage

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	typesCart "storefront-main/internal/types/cart"
)

// MemoryCartStorage слот корзины в памяти процесса
// Используется встраиваниями без Redis: корзина живёт до конца сессии
type MemoryCartStorage struct {
	Logger *zap.SugaredLogger
	data   []byte
}

func NewMemoryCartStorage(logger *zap.SugaredLogger) *MemoryCartStorage {
	return &MemoryCartStorage{
		Logger: logger,
	}
}

func (mcs *MemoryCartStorage) Load(_ context.Context) (typesCart.Cart, error) {
	if mcs.data == nil {
		return typesCart.Cart{}, nil
	}

	var c typesCart.Cart
	if err := json.Unmarshal(mcs.data, &c); err != nil {
		mcs.Logger.Errorf("Malformed in-memory cart snapshot, resetting to empty: %v", err)
		return typesCart.Cart{}, nil
	}
	if c == nil {
		c = typesCart.Cart{}
	}

	return c, nil
}

func (mcs *MemoryCartStorage) Save(_ context.Context, c typesCart.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		mcs.Logger.Errorf("Failed to encode cart snapshot: %v", err)
		return err
	}

	mcs.data = data

	return nil
}

func (mcs *MemoryCartStorage) Clear(_ context.Context) error {
	mcs.data = nil

	return nil
}
