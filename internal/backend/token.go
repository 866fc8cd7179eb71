package backend

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// アクセストークンのclaims（sub = user id, sid = session id）
type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

type tokenIssuer struct {
	key []byte
}

// jwt発行
func (t tokenIssuer) issue(userID string, sessionID string, now time.Time, exp time.Time) (string, error) {
	claims := sessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.key)
}

func (t tokenIssuer) parse(raw string) (*sessionClaims, error) {
	if raw == "" {
		return nil, errors.New("empty token")
	}
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(tk *jwt.Token) (interface{}, error) {
		if tk.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return t.key, nil
	})
	if err != nil || token == nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Subject == "" || claims.SessionID == "" {
		return nil, errors.New("missing claims")
	}
	return claims, nil
}
