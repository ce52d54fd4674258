package services

import (
	"time"

	"github.com/DenizAltinisik/internship-management/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type TokenClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	Exp   int64  `json:"exp"`
}

type AuthService struct {
	users     domain.UserRepository
	secretKey []byte
	tokenTTL  time.Duration
}

func NewAuthService(users domain.UserRepository, secretKey []byte, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		secretKey: secretKey,
		tokenTTL:  tokenTTL,
	}
}

// Register creates a user with a bcrypt-hashed password. The role comes from
// the registration payload only; every later request re-derives it from the
// verified token.
func (s *AuthService) Register(email, password, roleString string, profile domain.User) (domain.User, error) {
	if email == "" || password == "" {
		return domain.User{}, domain.ErrEmailRequired()
	}

	role := domain.INTERN
	if roleString != "" {
		var err error
		role, err = domain.RoleFromString(roleString)
		if err != nil {
			return domain.User{}, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}

	user := profile
	user.Email = email
	user.Password = string(hash)
	user.Role = role

	return s.users.Insert(user)
}

func (s *AuthService) LogIn(email, password string) (token string, err error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		err = domain.ErrInvalidCredentials()
		return
	}

	if CheckPasswordHash(password, user.Password) {
		return s.createToken(*user)
	}

	err = domain.ErrInvalidCredentials()
	return
}

func (s *AuthService) createToken(user domain.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256,
		jwt.MapClaims{
			"email": user.Email,
			"role":  user.Role.String(),
			"exp":   time.Now().Add(s.tokenTTL).Unix(),
			"jti":   uuid.NewString(),
		})

	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// VerifyToken parses and validates a bearer token. jwt/v5 rejects expired
// tokens during parsing, so an expired session surfaces as ErrInvalidToken.
func (s *AuthService) VerifyToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.MapClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	})

	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidToken()
	}

	claims, ok := token.Claims.(*jwt.MapClaims)
	if !ok {
		return nil, domain.ErrInvalidToken()
	}

	tokenClaims := &TokenClaims{}

	if email, ok := (*claims)["email"].(string); ok {
		tokenClaims.Email = email
	}
	if role, ok := (*claims)["role"].(string); ok {
		tokenClaims.Role = role
	}
	if exp, ok := (*claims)["exp"].(float64); ok {
		tokenClaims.Exp = int64(exp)
	}

	if tokenClaims.Email == "" {
		return nil, domain.ErrInvalidToken()
	}

	return tokenClaims, nil
}

// ResolveCaller turns verified claims into the identity the access policy
// works with.
func (s *AuthService) ResolveCaller(tokenString string) (domain.Caller, error) {
	claims, err := s.VerifyToken(tokenString)
	if err != nil {
		return domain.Caller{}, err
	}

	role, err := domain.RoleFromString(claims.Role)
	if err != nil {
		return domain.Caller{}, domain.ErrInvalidToken()
	}

	return domain.Caller{Email: claims.Email, Role: role}, nil
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
