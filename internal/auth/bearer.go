package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
)

const tokenKey = "auth.bearer"

// ErrMissingToken is returned when a request carries no bearer token.
var ErrMissingToken = errors.New("missing bearer token")

// ParseBearer pulls the token out of an Authorization header value.
func ParseBearer(header string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrMissingToken
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrMissingToken
	}
	return token, nil
}

// RequireBearer rejects requests without a bearer token and stores the token
// on the gin context. The token is forwarded to the job API, which is the one
// that actually validates it.
func RequireBearer() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := ParseBearer(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.Set(tokenKey, token)
		c.Next()
	}
}

// Token returns the bearer token stored by RequireBearer.
func Token(c *gin.Context) string {
	return c.GetString(tokenKey)
}

// Owner is a stable, non-reversible key for data recorded on behalf of a token.
func Owner(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// Client returns an HTTP client that sends token as a bearer credential,
// built on top of base (its timeout and transport are kept).
func Client(ctx context.Context, base *http.Client, token string) *http.Client {
	if base != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, base)
	}
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: token,
		TokenType:   "Bearer",
	}))
	if base != nil {
		client.Timeout = base.Timeout
	}
	return client
}
