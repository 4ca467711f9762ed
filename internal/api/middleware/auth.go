package middleware

import (
	"crypto/rsa"
	"crypto/subtle"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/wt-exchange/internal/api/shared/errors"
	"github.com/feral-file/wt-exchange/internal/logger"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	AUTH_TYPE_KEY    contextKey = "auth_type"
	AUTH_SUBJECT_KEY contextKey = "auth_subject"
	JWT_CLAIMS_KEY   contextKey = "jwt_claims"
)

const (
	AUTH_TYPE_JWT    = "jwt"
	AUTH_TYPE_APIKEY = "apikey"
)

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string // RSA public key in PEM format
	APIKeys      []string
}

// AuthResult holds the result of authentication
type AuthResult struct {
	Success     bool
	AuthType    string
	Claims      *jwt.RegisteredClaims
	AuthSubject string
	Error       error
}

func failed(err error) AuthResult {
	return AuthResult{Error: err}
}

// authenticator checks Authorization headers against a parsed config.
// The public key is parsed once per middleware.
type authenticator struct {
	publicKey *rsa.PublicKey
	keyErr    error
	apiKeys   [][]byte
}

func newAuthenticator(cfg AuthConfig) *authenticator {
	a := &authenticator{}
	if cfg.JWTPublicKey == "" {
		a.keyErr = errors.New("JWT public key not configured")
	} else if key, err := parseRSAPublicKey(cfg.JWTPublicKey); err != nil {
		a.keyErr = fmt.Errorf("failed to parse RSA public key: %w", err)
	} else {
		a.publicKey = key
	}

	for _, k := range cfg.APIKeys {
		if k != "" {
			a.apiKeys = append(a.apiKeys, []byte(k))
		}
	}
	return a
}

// Authenticate validates the Authorization header and returns the authentication result
func Authenticate(authHeader string, cfg AuthConfig) AuthResult {
	return newAuthenticator(cfg).authenticate(authHeader)
}

func (a *authenticator) authenticate(header string) AuthResult {
	if header == "" {
		return failed(errors.New("missing Authorization header"))
	}

	scheme, credentials, ok := strings.Cut(header, " ")
	if !ok {
		return failed(errors.New("invalid Authorization header format"))
	}

	switch strings.ToLower(scheme) {
	case "bearer":
		claims, err := a.verifyToken(credentials)
		if err != nil {
			return failed(err)
		}
		return AuthResult{Success: true, AuthType: AUTH_TYPE_JWT, Claims: claims, AuthSubject: strings.TrimSpace(claims.Subject)}
	case "apikey":
		if err := a.verifyAPIKey(credentials); err != nil {
			return failed(err)
		}
		return AuthResult{Success: true, AuthType: AUTH_TYPE_APIKEY}
	default:
		return failed(fmt.Errorf("unsupported authorization type: %s", scheme))
	}
}

// verifyToken checks an RS256 token. Expiry and not-before are enforced by the parser.
func (a *authenticator) verifyToken(token string) (*jwt.RegisteredClaims, error) {
	if a.keyErr != nil {
		return nil, a.keyErr
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.publicKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !parsed.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

func (a *authenticator) verifyAPIKey(key string) error {
	if len(a.apiKeys) == 0 {
		return errors.New("no API keys configured")
	}
	for _, k := range a.apiKeys {
		if subtle.ConstantTimeCompare(k, []byte(key)) == 1 {
			return nil
		}
	}
	return errors.New("invalid API key")
}

func rejectUnauthorized(c *gin.Context, err error) {
	logger.Warn("Authentication failed",
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("client_ip", c.ClientIP()),
	)
	c.AbortWithStatusJSON(http.StatusUnauthorized, apierrors.NewUnauthorizedError("Authentication failed", err.Error()))
}

// Auth returns a gin middleware for player authentication.
// The JWT subject becomes the acting identity of the request.
func Auth(cfg AuthConfig) gin.HandlerFunc {
	a := newAuthenticator(cfg)
	return func(c *gin.Context) {
		result := a.authenticate(c.GetHeader("Authorization"))
		if !result.Success {
			rejectUnauthorized(c, result.Error)
			return
		}
		if result.AuthSubject == "" {
			rejectUnauthorized(c, errors.New("credentials carry no subject"))
			return
		}

		c.Set(AUTH_TYPE_KEY, result.AuthType)
		c.Set(AUTH_SUBJECT_KEY, result.AuthSubject)
		c.Set(JWT_CLAIMS_KEY, result.Claims)
		c.Request = c.Request.WithContext(logger.WithFields(c.Request.Context(), zap.String("acting_id", result.AuthSubject)))
		logger.DebugCtx(c.Request.Context(), "Player authenticated", zap.String("path", c.Request.URL.Path))

		c.Next()
	}
}

// APIKeyAuth returns a gin middleware that only accepts API keys. It guards the admin routes.
func APIKeyAuth(cfg AuthConfig) gin.HandlerFunc {
	a := newAuthenticator(cfg)
	return func(c *gin.Context) {
		result := a.authenticate(c.GetHeader("Authorization"))
		if !result.Success {
			rejectUnauthorized(c, result.Error)
			return
		}
		if result.AuthType != AUTH_TYPE_APIKEY {
			logger.Warn("Admin route called without API key",
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			c.AbortWithStatusJSON(http.StatusForbidden, apierrors.NewForbiddenError("API key required"))
			return
		}

		c.Set(AUTH_TYPE_KEY, result.AuthType)
		c.Next()
	}
}

// ActingID returns the identity that authenticated the request
func ActingID(c *gin.Context) string {
	return c.GetString(AUTH_SUBJECT_KEY)
}

// parseRSAPublicKey accepts PKIX and PKCS1 encoded keys
func parseRSAPublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing public key")
	}

	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return x509.ParsePKCS1PublicKey(block.Bytes)
	}

	rsaKey, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("public key is not an RSA key")
	}
	return rsaKey, nil
}
