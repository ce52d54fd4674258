package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/DenizAltinisik/internship-management/domain"
	"github.com/DenizAltinisik/internship-management/services"
)

// KeyCaller is the context key the auth middleware stores the verified
// caller under.
type KeyCaller struct{}

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	req := &struct {
		Email      string `json:"email"`
		Password   string `json:"password"`
		Role       string `json:"role"`
		Name       string `json:"name"`
		Surname    string `json:"surname"`
		Phone      string `json:"phone"`
		School     string `json:"school"`
		Department string `json:"department"`
		Gender     string `json:"gender"`
		Birthdate  string `json:"birthdate"`
	}{}
	err := readReq(req, r, w)
	if err != nil {
		return
	}

	profile := domain.User{
		Name:       req.Name,
		Surname:    req.Surname,
		Phone:      req.Phone,
		School:     req.School,
		Department: req.Department,
		Gender:     req.Gender,
		Birthdate:  req.Birthdate,
	}

	user, err := h.auth.Register(req.Email, req.Password, req.Role, profile)
	if err != nil {
		writeErrorResp(err, w)
		return
	}

	resp := struct {
		Message string `json:"message"`
		Email   string `json:"email"`
		Role    string `json:"role"`
	}{
		Message: "User registered successfully",
		Email:   user.Email,
		Role:    user.Role.String(),
	}
	writeResp(resp, http.StatusCreated, w)
}

func (h *AuthHandler) LogIn(w http.ResponseWriter, r *http.Request) {
	req := &struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{}
	err := readReq(req, r, w)
	if err != nil {
		return
	}

	token, err := h.auth.LogIn(req.Email, req.Password)
	if err != nil {
		writeErrorResp(err, w)
		return
	}

	resp := struct {
		Message     string `json:"message"`
		AccessToken string `json:"access_token"`
	}{
		Message:     "Login successful",
		AccessToken: token,
	}
	writeResp(resp, http.StatusOK, w)
}

// MiddlewareAuth verifies the bearer token and stores the caller in the
// request context. Role always comes from the token claims, never from the
// request body.
func (h *AuthHandler) MiddlewareAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		tokenString := r.Header.Get("Authorization")
		if tokenString == "" {
			writeErrorMsg(rw, http.StatusUnauthorized, "auth_error", "missing authorization header")
			return
		}

		if !strings.HasPrefix(tokenString, "Bearer ") {
			writeErrorMsg(rw, http.StatusUnauthorized, "auth_error", "invalid authorization header format")
			return
		}
		tokenString = tokenString[len("Bearer "):]

		caller, err := h.auth.ResolveCaller(tokenString)
		if err != nil {
			writeErrorMsg(rw, http.StatusUnauthorized, "auth_error", "invalid token")
			return
		}

		r = r.WithContext(context.WithValue(r.Context(), KeyCaller{}, caller))
		next.ServeHTTP(rw, r)
	})
}

// MiddlewareAdmin rejects non-admin callers. It must run after
// MiddlewareAuth.
func (h *AuthHandler) MiddlewareAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		caller := callerFromContext(r)
		if !caller.IsAdmin() {
			writeErrorMsg(rw, http.StatusForbidden, "forbidden", "admin role required")
			return
		}
		next.ServeHTTP(rw, r)
	})
}

func callerFromContext(r *http.Request) domain.Caller {
	caller, _ := r.Context().Value(KeyCaller{}).(domain.Caller)
	return caller
}
