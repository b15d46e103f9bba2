package errors

import (
	"errors"
	"fmt"
)

var (
	ErrNetwork         = errors.New("cart gateway network error")
	ErrNotFound        = errors.New("record not found")
	ErrNoAuth          = errors.New("authorization required")
	ErrBadSnapshot     = errors.New("malformed cart snapshot")
	ErrEmptyItemID     = errors.New("cart line has no item id")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// NetworkError оборачивает статус ответа шлюза в ErrNetwork,
// чтобы вызывающий мог проверять ошибку через errors.Is
func NetworkError(op string, status int) error {
	return fmt.Errorf("%w: %s returned status %d", ErrNetwork, op, status)
}
