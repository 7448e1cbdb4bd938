package middleware

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"spendly/internal/config"
	apperrors "spendly/internal/errors"
)

const (
	sessionUserIDKey = "sessionUserID"
	tokenIssuer      = "spendly-api"
)

var errJWTSecretMissing = errors.New("JWT_SECRET is not configured")

// SessionClaims are the claims of a session token. The subject is the
// identity provider's user id.
type SessionClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// GenerateSessionToken signs a session token for userID, valid for ttl.
func GenerateSessionToken(secret, userID, email string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errJWTSecretMissing
	}

	now := time.Now()
	claims := &SessionClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseSessionToken validates a session token and returns its claims.
func ParseSessionToken(secret, tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(tokenIssuer))

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("session token has no subject")
	}
	return claims, nil
}

// SessionAuth establishes the caller's identity for the sync routes.
//
// In AuthModeNone it does nothing and handlers trust the userId in the
// request. In AuthModeJWT it requires a valid bearer token and stores the
// token subject as the session user id; handlers then reject requests
// whose userId names anyone else.
func SessionAuth(mode config.AuthMode, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if mode != config.AuthModeJWT {
			c.Next()
			return
		}
		if secret == "" {
			abortWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, errJWTSecretMissing))
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Authorization header is required"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortWithError(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Invalid authorization header format"))
			return
		}

		claims, err := ParseSessionToken(secret, parts[1])
		if err != nil {
			abortWithError(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Invalid or expired token"))
			return
		}

		c.Set(sessionUserIDKey, claims.Subject)
		c.Next()
	}
}

// SessionUserID returns the user id established by SessionAuth, if any.
func SessionUserID(c *gin.Context) (string, bool) {
	id := c.GetString(sessionUserIDKey)
	return id, id != ""
}
