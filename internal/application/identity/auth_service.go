package identity

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stockbill/backend/internal/domain/identity"
	"github.com/stockbill/backend/internal/domain/shared"
)

// RegisterRequest is the input for user registration
type RegisterRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is the input for login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token
type LoginResponse struct {
	Username    string    `json:"username"`
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// AuthService handles user registration and login
type AuthService struct {
	userRepo   identity.UserRepository
	jwtSecret  []byte
	expiration time.Duration
	issuer     string
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo identity.UserRepository, jwtSecret string, expiration time.Duration, issuer string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  []byte(jwtSecret),
		expiration: expiration,
		issuer:     issuer,
	}
}

// Register creates a new user with a bcrypt-hashed password
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) error {
	taken, err := s.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return err
	}
	if taken {
		return shared.NewDomainError("ALREADY_EXISTS", "Username already exists")
	}

	user, err := identity.NewUser(req.Username, req.Password)
	if err != nil {
		return err
	}

	return s.userRepo.Save(ctx, user)
}

// Login verifies the credentials and issues a signed access token
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid username or password")
	}
	if !user.CheckPassword(req.Password) {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid username or password")
	}

	expiresAt := time.Now().Add(s.expiration)
	claims := jwt.RegisteredClaims{
		Subject:   user.ID.String(),
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Username:    user.Username,
		AccessToken: signed,
		ExpiresAt:   expiresAt,
	}, nil
}
