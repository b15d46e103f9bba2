package catalog

// Item карточка товара каталога со всеми вариантами
type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	ImageURL    string    `json:"image_url,omitempty"`
	Images      []string  `json:"images,omitempty"`
	Variants    []Variant `json:"variants,omitempty"`
}

// Variant вариант товара (размер/цвет), со своей ценой и остатком
type Variant struct {
	ID       string   `json:"id"`
	Color    string   `json:"color,omitempty"`
	Size     string   `json:"size,omitempty"`
	Price    float64  `json:"price"`
	Stock    int      `json:"stock"`
	ImageURL string   `json:"image_url,omitempty"`
	Images   []string `json:"images,omitempty"`
}

// FindVariant ищет вариант по точному совпадению id
// Возвращает nil, если вариант не найден
func (i *Item) FindVariant(variantID string) *Variant {
	for idx := range i.Variants {
		if i.Variants[idx].ID == variantID {
			return &i.Variants[idx]
		}
	}

	return nil
}
