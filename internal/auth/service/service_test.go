package service

import (
	"context"
	"testing"
	"time"

	"leadflow_backend/internal/auth/token"
	"leadflow_backend/internal/auth/transport"
	"leadflow_backend/platform/apperr"
	"leadflow_backend/platform/logger"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type testAuthConfig struct {
	demoEmail string
	demoHash  string
}

func (c testAuthConfig) GetJWTAccessSecret() string       { return "test-secret" }
func (c testAuthConfig) GetAccessTokenTTL() time.Duration { return time.Hour }
func (c testAuthConfig) GetDemoUserEmail() string         { return c.demoEmail }
func (c testAuthConfig) GetDemoPasswordHash() string      { return c.demoHash }

func newTestService(cfg testAuthConfig) *Service {
	return New(cfg, token.NewIssuer(cfg), logger.New("development"))
}

func TestLogin_IssuesValidAccessToken(t *testing.T) {
	svc := newTestService(testAuthConfig{})

	result, err := svc.Login(context.Background(), transport.LoginRequest{
		Email:    "demo@leadflow.test",
		Password: "anything",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success || result.Token == "" {
		t.Fatal("expected successful login with token")
	}

	parsed, err := jwt.Parse(result.Token, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("issued token does not validate: %v", err)
	}

	claims := parsed.Claims.(jwt.MapClaims)
	if claims["type"] != "access" {
		t.Fatalf("expected access token type, got %v", claims["type"])
	}
	if claims["sub"] != result.User.ID.String() {
		t.Fatalf("subject %v does not match user id %s", claims["sub"], result.User.ID)
	}
}

func TestLogin_UserIDIsDeterministicPerEmail(t *testing.T) {
	svc := newTestService(testAuthConfig{})

	first, err := svc.Login(context.Background(), transport.LoginRequest{Email: "demo@leadflow.test", Password: "pw"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Login(context.Background(), transport.LoginRequest{Email: "demo@leadflow.test", Password: "other"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.User.ID != second.User.ID {
		t.Fatal("same email should map to the same user id across sessions")
	}
}

func TestLogin_RejectsEmptyCredentials(t *testing.T) {
	svc := newTestService(testAuthConfig{})

	cases := []transport.LoginRequest{
		{Email: "", Password: "pw"},
		{Email: "demo@leadflow.test", Password: ""},
	}

	for _, req := range cases {
		_, err := svc.Login(context.Background(), req)
		if !apperr.Is(err, apperr.KindUnauthorized) {
			t.Errorf("credentials %+v: expected unauthorized, got %v", req, err)
		}
	}
}

func TestLogin_EnforcesConfiguredDemoAccount(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	svc := newTestService(testAuthConfig{
		demoEmail: "demo@leadflow.test",
		demoHash:  string(hash),
	})

	if _, err := svc.Login(context.Background(), transport.LoginRequest{Email: "other@leadflow.test", Password: "s3cret"}); !apperr.Is(err, apperr.KindUnauthorized) {
		t.Fatalf("expected unauthorized for wrong email, got %v", err)
	}
	if _, err := svc.Login(context.Background(), transport.LoginRequest{Email: "demo@leadflow.test", Password: "wrong"}); !apperr.Is(err, apperr.KindUnauthorized) {
		t.Fatalf("expected unauthorized for wrong password, got %v", err)
	}

	result, err := svc.Login(context.Background(), transport.LoginRequest{Email: "demo@leadflow.test", Password: "s3cret"})
	if err != nil {
		t.Fatalf("expected successful login, got %v", err)
	}
	if result.User.Email != "demo@leadflow.test" {
		t.Fatalf("unexpected user email %s", result.User.Email)
	}
}
