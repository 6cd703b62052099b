package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"literaryhub/internal/adapters/persistence/models"
	"literaryhub/internal/adapters/persistence/repositories"
	"literaryhub/internal/config"
	"literaryhub/internal/core/domain"
	"literaryhub/internal/pkg/jwt"
	"literaryhub/internal/pkg/password"

	"gorm.io/gorm"
)

// AuthService handles authentication business logic
type AuthService struct {
	userRepo repositories.UserRepository
	activity *ActivityService
	cfg      *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repositories.UserRepository,
	activity *ActivityService,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		activity: activity,
		cfg:      cfg,
	}
}

// RegisterInput represents registration input
type RegisterInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone" validate:"max=30"`
	Address  string `json:"address" validate:"max=255"`
	IDCard   string `json:"idCard" validate:"max=30"`
}

// LoginInput represents login input
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	Token string               `json:"token"`
	User  *models.UserResponse `json:"user"`
}

// Register creates a reader account and signs it in
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*AuthResponse, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.RuleViolation(domain.ErrUserAlreadyExists, MsgUserExists)
	}

	hashedPassword, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashedPassword,
		Role:     string(domain.RoleUser),
		Phone:    input.Phone,
		Address:  input.Address,
		IDCard:   input.IDCard,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ User registered: %s", user.Email)
	s.activity.Record(ctx, domain.Activity{
		User:     user.Name,
		UserID:   user.ID,
		Action:   "REGISTER",
		Category: domain.CategoryAuth,
		Detail:   fmt.Sprintf("Đăng ký tài khoản: %s", user.Email),
	})

	return &AuthResponse{Token: token, User: user.ToResponse()}, nil
}

// Login authenticates a user by email and password
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.RuleViolation(domain.ErrInvalidCredentials, MsgBadLogin)
		}
		return nil, err
	}

	if !password.Verify(input.Password, user.Password) {
		s.activity.Record(ctx, domain.Activity{
			User:     user.Name,
			UserID:   user.ID,
			Action:   "LOGIN",
			Category: domain.CategoryAuth,
			Detail:   fmt.Sprintf("Đăng nhập thất bại: %s", user.Email),
			Status:   domain.ActivityFailure,
		})
		return nil, domain.RuleViolation(domain.ErrInvalidCredentials, MsgBadLogin)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ User logged in: %s", user.Email)
	s.activity.Record(ctx, domain.Activity{
		User:     user.Name,
		UserID:   user.ID,
		Action:   "LOGIN",
		Category: domain.CategoryAuth,
		Detail:   fmt.Sprintf("Đăng nhập: %s", user.Email),
	})

	return &AuthResponse{Token: token, User: user.ToResponse()}, nil
}

// Me returns the signed-in user
func (s *AuthService) Me(ctx context.Context, userID string) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound(domain.ErrUserNotFound, MsgUserNotFound)
		}
		return nil, err
	}
	return user.ToResponse(), nil
}

// ValidateAccessToken validates an access token
func (s *AuthService) ValidateAccessToken(accessToken string) (*jwt.Claims, error) {
	return jwt.ValidateAccessToken(accessToken, s.cfg.JWT.Secret)
}

// TokenTTL is how long an issued token stays valid
func (s *AuthService) TokenTTL() int {
	return int(s.cfg.JWT.TokenTTL.Seconds())
}

func (s *AuthService) issueToken(user *models.User) (string, error) {
	return jwt.GenerateAccessToken(
		user.ID,
		user.Name,
		user.Email,
		user.Role,
		s.cfg.JWT.Secret,
		s.cfg.JWT.TokenTTL,
	)
}
