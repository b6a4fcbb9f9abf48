package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken возвращается на любой сбой валидации токена: подпись,
// формат, срок действия. Причина не раскрывается вызывающему.
var ErrInvalidToken = errors.New("invalid or expired token")

// CustomClaims представляет JWT claims сессионного токена
type CustomClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// UserID возвращает числовой идентификатор пользователя из claim sub
func (c *CustomClaims) UserID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid subject claim: %w", err)
	}
	return id, nil
}

// JWTConfig содержит конфигурацию для JWT
type JWTConfig struct {
	Secret         []byte
	AccessTokenTTL time.Duration
}

// GenerateAccessToken создает подписанный HS256 токен с claims
// {sub, email, exp}. Токен stateless: серверная таблица сессий не ведется.
func GenerateAccessToken(cfg JWTConfig, userID int64, email string) (string, error) {
	now := time.Now()

	claims := CustomClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "tonesculpt",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(cfg.Secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateAccessToken проверяет подпись и срок действия токена.
// Принимаются только HMAC-подписанные токены. Любой сбой дает
// единый ErrInvalidToken.
func ValidateAccessToken(cfg JWTConfig, tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return cfg.Secret, nil
	})

	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
