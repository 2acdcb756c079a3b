// Package auth verifies identity tokens issued by the external identity
// provider and carries the verified user id through request contexts.
package auth

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"net/http"
	"os"
	"staybook/pkg/config"
	apperrors "staybook/pkg/errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken = errors.New("authorization token missing")
	ErrInvalidToken = errors.New("invalid or expired token")
)

type Identity struct {
	UserID string
}

type Verifier interface {
	Verify(token string) (*Identity, error)
}

type Options struct {
	HMACSecret []byte
	PublicKey  *rsa.PublicKey
	Issuer     string
}

type JWTVerifier struct {
	opts    Options
	methods []string
}

func NewJWTVerifier(opts Options) (*JWTVerifier, error) {
	var methods []string
	if len(opts.HMACSecret) > 0 {
		methods = append(methods, jwt.SigningMethodHS256.Alg())
	}
	if opts.PublicKey != nil {
		methods = append(methods, jwt.SigningMethodRS256.Alg())
	}
	if len(methods) == 0 {
		return nil, errors.New("auth: an HMAC secret or RSA public key is required")
	}
	return &JWTVerifier{opts: opts, methods: methods}, nil
}

// NewVerifierFromConfig builds a verifier from AUTH_JWT_* settings.
func NewVerifierFromConfig(cfg *config.Config) (*JWTVerifier, error) {
	opts := Options{
		HMACSecret: []byte(cfg.AuthJWTSecret),
		Issuer:     cfg.AuthJWTIssuer,
	}
	if cfg.AuthJWTPublicKeyFile != "" {
		pem, err := os.ReadFile(cfg.AuthJWTPublicKeyFile)
		if err != nil {
			return nil, fmt.Errorf("auth: failed to read public key: %w", err)
		}
		key, err := jwt.ParseRSAPublicKeyFromPEM(pem)
		if err != nil {
			return nil, fmt.Errorf("auth: failed to parse public key: %w", err)
		}
		opts.PublicKey = key
	}
	return NewJWTVerifier(opts)
}

func (v *JWTVerifier) Verify(tokenString string) (*Identity, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	parserOpts := []jwt.ParserOption{jwt.WithValidMethods(v.methods)}
	if v.opts.Issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(v.opts.Issuer))
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, v.keyFunc, parserOpts...)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return &Identity{UserID: claims.Subject}, nil
}

func (v *JWTVerifier) keyFunc(token *jwt.Token) (any, error) {
	switch token.Method.(type) {
	case *jwt.SigningMethodHMAC:
		if len(v.opts.HMACSecret) == 0 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.opts.HMACSecret, nil
	case *jwt.SigningMethodRSA:
		if v.opts.PublicKey == nil {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.opts.PublicKey, nil
	default:
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
}

// BearerToken extracts the token from an "Authorization: Bearer <t>" header.
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

type contextKey struct{}

func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

func FromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(*Identity)
	return id, ok && id != nil && id.UserID != ""
}

// UserID returns the verified user id, or "" for anonymous requests.
func UserID(ctx context.Context) string {
	if id, ok := FromContext(ctx); ok {
		return id.UserID
	}
	return ""
}

// RequireUser returns the caller's user id, or a 401 for anonymous callers.
func RequireUser(ctx context.Context) (string, error) {
	if userID := UserID(ctx); userID != "" {
		return userID, nil
	}
	return "", apperrors.Unauthorized("Unauthorized")
}
