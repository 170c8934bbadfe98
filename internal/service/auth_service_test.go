package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/volunhub/internal/config"
	"github.com/volunhub/internal/models"
	"github.com/volunhub/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

func setupAuthServiceTest(t *testing.T) (*AuthService, repository.AdminRepository) {
	t.Helper()
	dsn := fmt.Sprintf("file:auth_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Admin{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret-key-test-secret-key-1234"
	cfg.JWT.ExpireHours = 1
	cfg.Security.PasswordPolicy = config.PasswordPolicyConfig{
		MinLength:     6,
		RequireUpper:  true,
		RequireLower:  true,
		RequireNumber: true,
	}
	adminRepo := repository.NewAdminRepository(db)
	return NewAuthService(cfg, adminRepo), adminRepo
}

func registerTestAdmin(t *testing.T, svc *AuthService, email, password string) *models.Admin {
	t.Helper()
	admin, _, _, err := svc.Register(email, password, "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	return admin
}

func TestAuthServiceRegisterFirstAdminOpen(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)

	admin, token, expiresAt, err := svc.Register("Boss@Example.com", "Passw0rd", "")
	if err != nil {
		t.Fatalf("first register should succeed: %v", err)
	}
	if admin.Email != "boss@example.com" {
		t.Fatalf("email should be normalized, got %s", admin.Email)
	}
	if token == "" || !expiresAt.After(time.Now()) {
		t.Fatalf("register should return usable token")
	}
}

func TestAuthServiceRegisterClosedAfterFirstAdmin(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)
	registerTestAdmin(t, svc, "first@example.com", "Passw0rd")

	_, _, _, err := svc.Register("second@example.com", "Passw0rd", "")
	if !errors.Is(err, ErrRegistrationClosed) {
		t.Fatalf("want ErrRegistrationClosed got %v", err)
	}
}

func TestAuthServiceRegisterWithSetupToken(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)
	svc.cfg.Security.SetupToken = "bootstrap-token"
	registerTestAdmin(t, svc, "first@example.com", "Passw0rd")

	if _, _, _, err := svc.Register("second@example.com", "Passw0rd", "wrong"); !errors.Is(err, ErrRegistrationClosed) {
		t.Fatalf("wrong setup token should be rejected, got %v", err)
	}
	if _, _, _, err := svc.Register("second@example.com", "Passw0rd", "bootstrap-token"); err != nil {
		t.Fatalf("valid setup token should allow register: %v", err)
	}
}

func TestAuthServiceRegisterValidation(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)

	if _, _, _, err := svc.Register("not-an-email", "Passw0rd", ""); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("want ErrInvalidEmail got %v", err)
	}
	if _, _, _, err := svc.Register("ok@example.com", "weak", ""); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("want ErrWeakPassword got %v", err)
	}

	registerTestAdmin(t, svc, "dup@example.com", "Passw0rd")
	svc.cfg.Security.SetupToken = "bootstrap-token"
	if _, _, _, err := svc.Register("dup@example.com", "Passw0rd", "bootstrap-token"); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("want ErrEmailExists got %v", err)
	}
}

func TestAuthServiceLogin(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)
	registerTestAdmin(t, svc, "admin@example.com", "Passw0rd")

	admin, token, _, err := svc.Login("Admin@Example.com ", "Passw0rd")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("login should return token")
	}
	if admin.LastLoginAt == nil {
		t.Fatalf("login should record last login time")
	}

	claims, err := svc.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.AdminID != admin.ID || claims.Email != admin.Email {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestAuthServiceLoginFailuresIndistinguishable(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)
	registerTestAdmin(t, svc, "admin@example.com", "Passw0rd")

	// 账号不存在和密码错误必须返回同一个错误
	_, _, _, errNoAccount := svc.Login("ghost@example.com", "Passw0rd")
	_, _, _, errBadPassword := svc.Login("admin@example.com", "WrongPass1")
	if !errors.Is(errNoAccount, ErrInvalidCredentials) {
		t.Fatalf("missing account want ErrInvalidCredentials got %v", errNoAccount)
	}
	if !errors.Is(errBadPassword, ErrInvalidCredentials) {
		t.Fatalf("bad password want ErrInvalidCredentials got %v", errBadPassword)
	}
}

func TestAuthServiceParseJWTRejectsTampered(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)
	admin := registerTestAdmin(t, svc, "admin@example.com", "Passw0rd")

	token, _, err := svc.GenerateJWT(admin)
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	if _, err := svc.ParseJWT(token + "x"); err == nil {
		t.Fatalf("tampered token should be rejected")
	}

	other := &AuthService{cfg: &config.Config{}, adminRepo: svc.adminRepo}
	other.cfg.JWT.SecretKey = "another-secret-key-another-secret-key"
	if _, err := other.ParseJWT(token); err == nil {
		t.Fatalf("token signed with different secret should be rejected")
	}
}

func TestAuthServiceParseJWTRejectsExpired(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)
	admin := registerTestAdmin(t, svc, "admin@example.com", "Passw0rd")

	claims := JWTClaims{
		AdminID: admin.ID,
		Email:   admin.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(svc.cfg.JWT.SecretKey))
	if err != nil {
		t.Fatalf("sign expired token failed: %v", err)
	}

	if _, err := svc.ParseJWT(token); err == nil {
		t.Fatalf("expired token should be rejected")
	}
}

func TestAuthServiceGetProfile(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)
	admin := registerTestAdmin(t, svc, "admin@example.com", "Passw0rd")

	got, err := svc.GetProfile(admin.ID)
	if err != nil {
		t.Fatalf("get profile failed: %v", err)
	}
	if got.Email != "admin@example.com" {
		t.Fatalf("profile email mismatch: %s", got.Email)
	}

	if _, err := svc.GetProfile(9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing admin want ErrNotFound got %v", err)
	}
}

func TestNormalizeEmail(t *testing.T) {
	cases := []struct {
		input string
		want  string
		ok    bool
	}{
		{"User@Example.COM", "user@example.com", true},
		{"  user@example.com  ", "user@example.com", true},
		{"user@localhost", "", false},
		{"not-an-email", "", false},
		{"", "", false},
		{"User Name <user@example.com>", "", false},
	}
	for _, tc := range cases {
		got, err := normalizeEmail(tc.input)
		if tc.ok && (err != nil || got != tc.want) {
			t.Fatalf("normalizeEmail(%q) = %q, %v; want %q", tc.input, got, err, tc.want)
		}
		if !tc.ok && err == nil {
			t.Fatalf("normalizeEmail(%q) should fail", tc.input)
		}
	}
}
