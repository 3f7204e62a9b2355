// Package jwt verifies access tokens issued by the identity service.
package jwt

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by player access tokens.
type Claims struct {
	PlayerName  string `json:"player_name"`
	DisplayName string `json:"display_name,omitempty"`
	jwt.RegisteredClaims
}

// Player returns the player the token was issued to, falling back to the subject.
func (c *Claims) Player() string {
	if c.PlayerName != "" {
		return c.PlayerName
	}
	return c.Subject
}

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Verifier validates HS256 access tokens. Tokens are issued elsewhere; this
// service never signs.
type Verifier struct {
	secret []byte
	issuer string
}

// NewVerifier returns a verifier for secret. An empty issuer accepts any issuer.
func NewVerifier(secret []byte, issuer string) *Verifier {
	return &Verifier{secret: secret, issuer: issuer}
}

// Validate parses and validates a token string.
func (v *Verifier) Validate(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return v.secret, nil
	}, opts...)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Player() == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
