package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var userCols = []string{
	"id", "name", "email", "phone", "password_hash", "role", "status", "created_at",
}

func newAuthService(t *testing.T) (AuthService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := AuthService{
		Users:     repositories.UserRepository{DB: db},
		JWTSecret: "test-secret",
	}
	return svc, mock, func() { db.Close() }
}

func adminRow(t *testing.T, password string) *sqlmock.Rows {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}
	return sqlmock.NewRows(userCols).
		AddRow(1, "Admin User", "admin@gmail.com", nil, string(hash),
			"admin", "active", time.Now().UTC())
}

func TestLoginSuccessIssuesToken(t *testing.T) {
	svc, mock, done := newAuthService(t)
	defer done()

	mock.ExpectQuery("FROM users WHERE email =").
		WithArgs("admin@gmail.com").
		WillReturnRows(adminRow(t, "1234"))

	result, err := svc.Login(context.Background(), "admin@gmail.com", "1234")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	if result.User.Email != "admin@gmail.com" || result.User.Role != "admin" {
		t.Fatalf("user = %+v", result.User)
	}

	parsed, err := jwt.Parse(result.Token, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatalf("unexpected claims type %T", parsed.Claims)
	}
	if claims["role"] != "admin" {
		t.Fatalf("claims = %v", claims)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, mock, done := newAuthService(t)
	defer done()

	mock.ExpectQuery("FROM users WHERE email =").
		WithArgs("admin@gmail.com").
		WillReturnRows(adminRow(t, "1234"))

	_, err := svc.Login(context.Background(), "admin@gmail.com", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, mock, done := newAuthService(t)
	defer done()

	mock.ExpectQuery("FROM users WHERE email =").
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows(userCols))

	_, err := svc.Login(context.Background(), "nobody@example.com", "1234")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginEmptyCredentials(t *testing.T) {
	svc, _, done := newAuthService(t)
	defer done()

	if _, err := svc.Login(context.Background(), "", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
