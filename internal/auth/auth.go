package auth

// Provider источник статуса аутентификации для движка корзины
// Движок получает его при конструировании и никогда не лезет
// в глобальное состояние напрямую
type Provider interface {
	// CurrentUserID возвращает id пользователя, "" для гостя
	CurrentUserID() string
	// CurrentToken возвращает bearer-токен, "" для гостя
	CurrentToken() string
}

// StaticProvider провайдер с фиксированными значениями
// Гость — пустые значения
type StaticProvider struct {
	UserID string
	Token  string
}

func (p *StaticProvider) CurrentUserID() string {
	return p.UserID
}

func (p *StaticProvider) CurrentToken() string {
	return p.Token
}
