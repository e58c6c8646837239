// Package auth issues and verifies session tokens. A token is an HS256 JWT
// carrying {"user": {"id": ...}} and an issued-at time; it has no expiry.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/secondchance/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Subject identifies the account a token was issued for.
type Subject struct {
	ID string `json:"id"`
}

// Claims is the signed payload.
type Claims struct {
	User Subject `json:"user"`
	jwt.RegisteredClaims
}

func GenerateToken(userID string, secretKey []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		User: Subject{ID: userID},
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	})

	return token.SignedString(secretKey)
}

func GetUserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", errors.Join(common.ErrInvalidToken, err)
	}

	if !token.Valid || claims.User.ID == "" {
		return "", common.ErrInvalidToken
	}

	return claims.User.ID, nil
}

// Issuer binds the process-wide secret so flows can issue tokens without
// seeing it.
type Issuer struct {
	secret []byte
}

func NewIssuer(secret string) *Issuer {
	return &Issuer{secret: []byte(secret)}
}

func (i *Issuer) Issue(subjectID string) (string, error) {
	return GenerateToken(subjectID, i.secret)
}

func (i *Issuer) Verify(token string) (string, error) {
	return GetUserIDFromToken(token, i.secret)
}
