package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"daeda-site-be/internal/config"
	"daeda-site-be/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

// authService authenticates the single admin account configured via
// environment. There are no visitor accounts on this site.
type authService struct {
	adminEmail        string
	adminPasswordHash string
}

func NewAuthService(cfg config.AdminConfig) IAuthService {
	return &authService{
		adminEmail:        cfg.Email,
		adminPasswordHash: cfg.PasswordHash,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if s.adminEmail == "" || s.adminPasswordHash == "" {
		return nil, fmt.Errorf("admin account is not configured")
	}

	if req.Email != s.adminEmail {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(req.Password)); err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}

	claims := jwt.MapClaims{
		"email": req.Email,
		"role":  "admin",
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{Token: signed}, nil
}
