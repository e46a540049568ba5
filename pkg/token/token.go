package token

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken covers malformed tokens, signature mismatches and expired
// claims. Callers that need to distinguish an absent token do so before
// calling Verify.
var ErrInvalidToken = errors.New("invalid token")

// Claims defines the JWT payload for both token classes.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwtlib.RegisteredClaims
}

// Issuer signs and verifies access and refresh tokens. The two classes use
// distinct secrets so a leaked access token cannot mint new sessions and the
// two verification paths can be rotated independently.
type Issuer struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewIssuer(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *Issuer {
	return &Issuer{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// IssueAccess returns a signed short-lived access token for the user.
func (i *Issuer) IssueAccess(userID, email string) (string, error) {
	return i.sign(userID, email, i.accessSecret, i.accessTTL)
}

// IssueRefresh returns a signed long-lived refresh token for the user.
func (i *Issuer) IssueRefresh(userID, email string) (string, error) {
	return i.sign(userID, email, i.refreshSecret, i.refreshTTL)
}

// VerifyAccess validates a token against the access secret.
func (i *Issuer) VerifyAccess(tok string) (*Claims, error) {
	return verify(tok, i.accessSecret)
}

// VerifyRefresh validates a token against the refresh secret.
func (i *Issuer) VerifyRefresh(tok string) (*Claims, error) {
	return verify(tok, i.refreshSecret)
}

func (i *Issuer) sign(userID, email string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwtlib.RegisteredClaims{
			// The jti makes every issued token unique. Timestamps alone have
			// second granularity, so without it two logins in the same second
			// would mint identical refresh tokens and the older session could
			// not be revoked independently.
			ID:        uuid.New().String(),
			Issuer:    "virtualgrow",
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func verify(tok string, secret []byte) (*Claims, error) {
	parsed, err := jwtlib.ParseWithClaims(tok, &Claims{}, func(t *jwtlib.Token) (interface{}, error) {
		return secret, nil
	}, jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Name}))
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
