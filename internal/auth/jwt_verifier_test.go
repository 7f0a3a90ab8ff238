package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"gridnav/internal/domain"
	"gridnav/internal/domain/models"
)

func newTestVerifier(t *testing.T) (*JWKSVerifier, *rsa.PrivateKey) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatal(err)
	}
	kf := func(*jwt.Token) (interface{}, error) { return &key.PublicKey, nil }
	return NewKeyfuncVerifier(kf, slog.New(slog.NewTextHandler(io.Discard, nil))), key
}

func sign(t *testing.T, key *rsa.PrivateKey, claims models.AuthClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestVerifyToken(t *testing.T) {
	v, key := newTestVerifier(t)
	future := jwt.NewNumericDate(time.Now().Add(time.Hour))
	past := jwt.NewNumericDate(time.Now().Add(-time.Hour))

	tests := []struct {
		name    string
		claims  models.AuthClaims
		wantErr bool
	}{
		{
			name: "valid",
			claims: models.AuthClaims{
				RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1", ExpiresAt: future},
				Role:             "authenticated",
			},
		},
		{
			name: "expired",
			claims: models.AuthClaims{
				RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1", ExpiresAt: past},
				Role:             "authenticated",
			},
			wantErr: true,
		},
		{
			name: "anonymous role",
			claims: models.AuthClaims{
				RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1", ExpiresAt: future},
				Role:             "anon",
			},
			wantErr: true,
		},
		{
			name: "missing subject",
			claims: models.AuthClaims{
				RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: future},
				Role:             "authenticated",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := v.VerifyToken(sign(t, key, tt.claims))
			if tt.wantErr {
				if !errors.Is(err, domain.ErrUnauthorized) {
					t.Errorf("VerifyToken() error = %v, want ErrUnauthorized", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("VerifyToken() unexpected error: %v", err)
			}
			if claims.GetUserID() != "user-1" {
				t.Errorf("GetUserID() = %q, want user-1", claims.GetUserID())
			}
		})
	}
}

func TestVerifyToken_RejectsHMAC(t *testing.T) {
	v, _ := newTestVerifier(t)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, models.AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
		Role:             "authenticated",
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := v.VerifyToken(token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("VerifyToken() error = %v, want ErrUnauthorized", err)
	}
}
