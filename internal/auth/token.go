package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the fixed lifetime of every issued token.
const TokenTTL = 24 * time.Hour

// ErrInvalidToken is returned by Verify for every rejection cause: wrong
// segment count, bad base64 or JSON, signature mismatch, expiry. Callers
// must not learn which one failed.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the identity payload embedded in a token. JSON keys match the
// wire format of previously issued tokens, so field names and order must
// not change. SubjectID and CustomerID are both 0 for the admin override
// identity, which has no backing account row.
type Claims struct {
	SubjectID  int64  `json:"userId"`
	CustomerID int64  `json:"customerId"`
	UserName   string `json:"userName"`
	IsAdmin    bool   `json:"isAdmin"`
	IssuedAt   int64  `json:"iat"`
	ExpiresAt  int64  `json:"exp"`
}

// GetExpirationTime implements jwt.Claims.
func (c *Claims) GetExpirationTime() (*jwt.NumericDate, error) {
	if c.ExpiresAt == 0 {
		return nil, nil
	}
	return jwt.NewNumericDate(time.Unix(c.ExpiresAt, 0)), nil
}

// GetIssuedAt implements jwt.Claims.
func (c *Claims) GetIssuedAt() (*jwt.NumericDate, error) {
	if c.IssuedAt == 0 {
		return nil, nil
	}
	return jwt.NewNumericDate(time.Unix(c.IssuedAt, 0)), nil
}

// GetNotBefore implements jwt.Claims.
func (c *Claims) GetNotBefore() (*jwt.NumericDate, error) { return nil, nil }

// GetIssuer implements jwt.Claims.
func (c *Claims) GetIssuer() (string, error) { return "", nil }

// GetSubject implements jwt.Claims.
func (c *Claims) GetSubject() (string, error) { return c.UserName, nil }

// GetAudience implements jwt.Claims.
func (c *Claims) GetAudience() (jwt.ClaimStrings, error) { return nil, nil }

// TokenService issues and verifies HS256-signed bearer tokens. It holds no
// mutable state beyond the secret loaded at startup, so a single instance
// is safe for concurrent use across request handlers.
type TokenService struct {
	secret []byte
	now    func() time.Time
}

// NewTokenService builds a service signing under the given secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret), now: time.Now}
}

// Issue stamps iat/exp and signs a token for the given identity. Two calls
// with the same identity at different instants produce different tokens.
func (ts *TokenService) Issue(subjectID, customerID int64, userName string, isAdmin bool) (string, error) {
	now := ts.now().Unix()
	claims := &Claims{
		SubjectID:  subjectID,
		CustomerID: customerID,
		UserName:   userName,
		IsAdmin:    isAdmin,
		IssuedAt:   now,
		ExpiresAt:  now + int64(TokenTTL/time.Second),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(ts.secret)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// Verify parses and validates a token, returning the embedded claims. All
// failure modes collapse into ErrInvalidToken; the wrapped cause is kept
// for server-side diagnostics only and must never reach clients.
func (ts *TokenService) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return ts.secret, nil
	}, jwt.WithTimeFunc(ts.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
