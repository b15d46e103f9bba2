package cart

import (
	typesCatalog "storefront-main/internal/types/catalog"
)

// CartLine одна позиция корзины
// ID — либо временный токен (гостевая/оптимистичная позиция),
// либо серверный id после подтверждённого сохранения
type CartLine struct {
	ID          string                `json:"id"`
	ItemID      string                `json:"item_id"`
	ItemTitle   string                `json:"item_title"`
	VariantID   string                `json:"variant_id,omitempty"`
	Quantity    int                   `json:"quantity"`
	Variant     *typesCatalog.Variant `json:"variant,omitempty"`
	Item        *typesCatalog.Item    `json:"item,omitempty"`
	IsTemporary bool                  `json:"is_temporary"`
}

// Cart корзина: отображение id позиции в позицию
// Инвариант: временный ключ заменяется серверным атомарно,
// для одной логической позиции никогда не существует обоих сразу
type Cart map[string]CartLine

// Clone возвращает независимую копию корзины
func (c Cart) Clone() Cart {
	clone := make(Cart, len(c))
	for id, line := range c {
		clone[id] = line
	}

	return clone
}

// AddEntry параметры добавления товара в корзину
type AddEntry struct {
	ItemID    string                `json:"item_id"`
	ItemTitle string                `json:"item_title"`
	VariantID string                `json:"variant_id,omitempty"`
	Quantity  int                   `json:"quantity"`
	Variant   *typesCatalog.Variant `json:"variant,omitempty"`
}

// UpsertLine тело запроса POST /cart
type UpsertLine struct {
	ItemID    string `json:"item_id"`
	VariantID string `json:"variant_id,omitempty"`
	Quantity  int    `json:"quantity"`
}

// ServerCartLine строка корзины в ответе шлюза
type ServerCartLine struct {
	ID        string             `json:"id"`
	ItemID    string             `json:"item_id"`
	VariantID string             `json:"variant_id,omitempty"`
	Quantity  int                `json:"quantity"`
	Item      *typesCatalog.Item `json:"item,omitempty"`
}
