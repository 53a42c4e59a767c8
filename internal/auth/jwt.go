package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// claims — структура утверждений: стандартные утверждения
// плюс идентификатор пользователя в Subject
type claims struct {
	jwt.RegisteredClaims
}

// JWTService реализует ports.TokenService поверх HS256-подписанных JWT.
type JWTService struct {
	secret    []byte
	expiresIn time.Duration
}

// NewJWTService создает новый сервис токенов.
func NewJWTService(secret []byte, expiresIn time.Duration) *JWTService {
	return &JWTService{secret: secret, expiresIn: expiresIn}
}

// Issue выпускает подписанный токен с subject = userID и сроком действия.
func (s *JWTService) Issue(userID uuid.UUID) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}
	return signed, nil
}

// Verify проверяет подпись и срок действия токена и возвращает subject.
func (s *JWTService) Verify(tokenString string) (uuid.UUID, error) {
	parsed := &claims{}

	token, err := jwt.ParseWithClaims(tokenString, parsed, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	if !token.Valid {
		return uuid.Nil, jwt.ErrTokenUnverifiable
	}

	userID, err := uuid.Parse(parsed.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("некорректный subject в токене: %w", err)
	}
	return userID, nil
}
