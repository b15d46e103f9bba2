package auth

import (
	"time"

	jwt "github.com/dgrijalva/jwt-go"
	"go.uber.org/zap"
)

// TokenProvider извлекает статус аутентификации из bearer-токена
// Подпись не проверяется: секрет есть только у бэкенда, клиенту из
// claims нужны лишь id пользователя и срок действия
type TokenProvider struct {
	Logger *zap.SugaredLogger

	token  string
	userID string
	expiry time.Time
}

func NewTokenProvider(logger *zap.SugaredLogger) *TokenProvider {
	return &TokenProvider{
		Logger: logger,
	}
}

// SetToken запоминает токен после логина и разбирает его claims
// Нечитаемый токен сбрасывает провайдер в гостевое состояние
func (p *TokenProvider) SetToken(tokenStr string) {
	p.token = ""
	p.userID = ""
	p.expiry = time.Time{}

	if tokenStr == "" {
		return
	}

	token, _, err := new(jwt.Parser).ParseUnverified(tokenStr, jwt.MapClaims{})
	if err != nil {
		p.Logger.Warnf("Failed to parse auth token: %v", err)
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		p.Logger.Warn("Auth token carries no claims")
		return
	}

	userID, ok := claims["id"].(string)
	if !ok || userID == "" {
		p.Logger.Warn("Auth token carries no user id claim")
		return
	}

	p.token = tokenStr
	p.userID = userID

	if exp, ok := claims["exp"].(float64); ok {
		p.expiry = time.Unix(int64(exp), 0)
	}
}

// ClearToken переводит провайдер в гостевое состояние (логаут)
func (p *TokenProvider) ClearToken() {
	p.token = ""
	p.userID = ""
	p.expiry = time.Time{}
}

func (p *TokenProvider) CurrentUserID() string {
	if p.expired() {
		return ""
	}

	return p.userID
}

func (p *TokenProvider) CurrentToken() string {
	if p.expired() {
		return ""
	}

	return p.token
}

func (p *TokenProvider) expired() bool {
	return !p.expiry.IsZero() && time.Now().After(p.expiry)
}
