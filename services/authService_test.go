package services

import (
	"testing"
	"time"

	"github.com/DenizAltinisik/internship-management/domain"
	"github.com/DenizAltinisik/internship-management/repositories"
)

func newAuthService(ttl time.Duration) (*AuthService, *repositories.InMemStore) {
	store := repositories.NewInMemStore()
	return NewAuthService(store.Users(), []byte("test-secret"), ttl), store
}

func TestRegisterAndLogIn(t *testing.T) {
	auth, _ := newAuthService(time.Hour)

	user, err := auth.Register("dev@corp.com", "hunter2", "", domain.User{Name: "Deniz", Surname: "Dev"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Role != domain.INTERN {
		t.Errorf("default role = %s, want intern", user.Role)
	}
	if user.Password == "hunter2" {
		t.Fatal("password stored in plaintext")
	}

	token, err := auth.LogIn("dev@corp.com", "hunter2")
	if err != nil {
		t.Fatalf("LogIn failed: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}

	caller, err := auth.ResolveCaller(token)
	if err != nil {
		t.Fatalf("ResolveCaller failed: %v", err)
	}
	if caller.Email != "dev@corp.com" || caller.Role != domain.INTERN {
		t.Errorf("caller = %+v", caller)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	auth, _ := newAuthService(time.Hour)

	if _, err := auth.Register("dev@corp.com", "pw", "admin", domain.User{Name: "A"}); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	if _, err := auth.Register("dev@corp.com", "other", "", domain.User{Name: "B"}); err != domain.ErrEmailTaken() {
		t.Errorf("duplicate Register: err = %v, want email taken", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	auth, _ := newAuthService(time.Hour)

	if _, err := auth.Register("", "pw", "", domain.User{}); err != domain.ErrEmailRequired() {
		t.Errorf("missing email: err = %v", err)
	}
	if _, err := auth.Register("a@b.c", "", "", domain.User{}); err != domain.ErrEmailRequired() {
		t.Errorf("missing password: err = %v", err)
	}
	if _, err := auth.Register("a@b.c", "pw", "superuser", domain.User{}); err != domain.ErrInvalidRole() {
		t.Errorf("bad role: err = %v", err)
	}
}

func TestLogInWrongPassword(t *testing.T) {
	auth, _ := newAuthService(time.Hour)

	if _, err := auth.Register("dev@corp.com", "right", "", domain.User{}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, err := auth.LogIn("dev@corp.com", "wrong"); err != domain.ErrInvalidCredentials() {
		t.Errorf("wrong password: err = %v, want invalid credentials", err)
	}
	if _, err := auth.LogIn("nobody@corp.com", "right"); err != domain.ErrInvalidCredentials() {
		t.Errorf("unknown email: err = %v, want invalid credentials", err)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	auth, _ := newAuthService(-time.Minute)

	if _, err := auth.Register("dev@corp.com", "pw", "", domain.User{}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	token, err := auth.LogIn("dev@corp.com", "pw")
	if err != nil {
		t.Fatalf("LogIn failed: %v", err)
	}

	if _, err := auth.VerifyToken(token); err != domain.ErrInvalidToken() {
		t.Errorf("expired token: err = %v, want invalid token", err)
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	auth, _ := newAuthService(time.Hour)

	if _, err := auth.VerifyToken("not.a.token"); err != domain.ErrInvalidToken() {
		t.Errorf("garbage token: err = %v, want invalid token", err)
	}
}
