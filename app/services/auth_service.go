package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/yaarastore/backend/app/helpers"
	"github.com/yaarastore/backend/app/models"
	"github.com/yaarastore/backend/app/repositories"
)

// Tokens are valid for eight days from issuance.
const tokenTTL = 8 * 24 * time.Hour

type Claims struct {
	jwt.RegisteredClaims
	UserID   uint   `json:"userId"`
	Username string `json:"username"`
}

type AuthService struct {
	userRepo      repositories.UserRepositoryImpl
	secret        []byte
	allowRegister bool
}

func NewAuthService(userRepo repositories.UserRepositoryImpl, secret string, allowRegister bool) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		secret:        []byte(secret),
		allowRegister: allowRegister,
	}
}

// Login verifies the credentials and issues a signed bearer token
// carrying the user id and username.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if user == nil || !helpers.ComparePassword(user.Password, password) {
		return "", helpers.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	}

	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID:   user.ID,
		Username: user.Username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *AuthService) Register(ctx context.Context, username, email, password string) error {
	if !s.allowRegister {
		return helpers.NewHTTPError(http.StatusForbidden, "Registration is disabled")
	}

	existing, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return helpers.NewHTTPError(http.StatusConflict, "Email already registered")
	}

	hashed, err := helpers.HashPassword(password)
	if err != nil {
		return err
	}

	return s.userRepo.Create(ctx, &models.User{
		Username: username,
		Email:    email,
		Password: hashed,
	})
}

// VerifyToken parses and validates a bearer token, returning its claims.
func (s *AuthService) VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, helpers.ErrUnauthorized
	}
	return claims, nil
}
