package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/onlineshop/shop-system/internal/core/domain"
	"github.com/onlineshop/shop-system/internal/core/ports"
	"github.com/onlineshop/shop-system/internal/pkg/images"
)

// AuthService implements registration, admin creation, and login.
type AuthService struct {
	repo      ports.CustomerRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(repo ports.CustomerRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// Register opens a CUSTOMER account with the default profile image attached.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (string, error) {
	customer, err := s.createAccount(ctx, in, domain.RoleCustomer)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Hello %s. Welcome to Online Shop", customer.Username), nil
}

// AddAdmin opens an ADMIN account. Route-level RBAC restricts callers.
func (s *AuthService) AddAdmin(ctx context.Context, in ports.RegisterInput) (string, error) {
	admin, err := s.createAccount(ctx, in, domain.RoleAdmin)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Admin account %s created successfully.", admin.Username), nil
}

func (s *AuthService) createAccount(ctx context.Context, in ports.RegisterInput, role domain.Role) (*domain.Customer, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	taken, err := s.repo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("username %q: %w", username, domain.ErrUsernameTaken)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	customer := &domain.Customer{
		Username:     username,
		PasswordHash: string(hash),
		Phone:        strings.TrimSpace(in.Phone),
		Address:      strings.TrimSpace(in.Address),
		Role:         role,
		ImageBytes:   images.Placeholder(),
		ImageName:    images.PlaceholderName,
		ImageType:    images.PlaceholderType,
	}

	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", username).Str("role", string(role)).Msg("account created")
	return customer, nil
}

// Login verifies the credentials and issues a signed, time-bound token. An
// unknown username and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	customer, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(customer)
	if err != nil {
		return nil, err
	}

	return &ports.LoginResult{Token: token, UserID: customer.ID}, nil
}

func (s *AuthService) generateToken(customer *domain.Customer) (string, error) {
	claims := jwt.MapClaims{
		"username":    customer.Username,
		"role":        string(customer.Role),
		"customer_id": customer.ID,
		"exp":         time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
