package common

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// WebhookSigner produces short-lived HMAC-signed tokens attached to outbound
// partner notifications so the receiving airline can verify the origin.
type WebhookSigner struct {
	secretKey []byte
}

// NewWebhookSigner creates a new webhook signer
func NewWebhookSigner(secretKey []byte) *WebhookSigner {
	return &WebhookSigner{secretKey: secretKey}
}

// Sign creates a token scoped to one delivery to one airline.
func (s *WebhookSigner) Sign(airlineCode, deliveryID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"airline": airlineCode,
		"jti":     deliveryID,
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// Verify parses a token and returns its claims. Used in tests and offered to
// partners as the reference verification.
func (s *WebhookSigner) Verify(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	claims, _ := token.Claims.(jwt.MapClaims)
	return claims, nil
}
