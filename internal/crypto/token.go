package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
)

const (
	tokenIssuer   = "passgen"
	tokenAudience = "passgen-form"
)

// FormClaims binds a bearer to one form session.
type FormClaims struct {
	jwt.RegisteredClaims
	FormID string `json:"form_id"`
}

// IssueFormToken creates a signed JWT for the given form session.
func IssueFormToken(formID, secret string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := FormClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Audience:  jwt.ClaimStrings{tokenAudience},
			Subject:   formID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		FormID: formID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateFormToken parses and validates a form token, returning its claims.
func ValidateFormToken(tokenString, secret string) (*FormClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &FormClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithAudience(tokenAudience))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*FormClaims)
	if !ok || !token.Valid || claims.FormID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
