package services

import (
	"context"
	"fmt"

	"cycleroute/internal/models"
	"cycleroute/internal/repositories/interfaces"
	"cycleroute/internal/utils"
	"cycleroute/pkg/cache"
	"cycleroute/pkg/email"
	"cycleroute/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(ctx context.Context, request *RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, request *LoginRequest) (*AuthResponse, error)
	Logout(ctx context.Context, token string) error
	ResetPassword(ctx context.Context, request *ResetPasswordRequest) error
	SendVerificationCode(ctx context.Context, emailAddr string) error
	VerifyCode(ctx context.Context, emailAddr, code string) error
}

type authService struct {
	userRepo interfaces.UserRepository
	sessions *SessionStore
	cache    cache.Cache
	mailer   email.Mailer
	logger   *logger.Logger
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Code     string `json:"code" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ResetPasswordRequest struct {
	Username    string `json:"username" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Code        string `json:"code" binding:"required"`
}

type AuthResponse struct {
	Token    string `json:"token"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

func NewAuthService(
	userRepo interfaces.UserRepository,
	sessions *SessionStore,
	cacheStore cache.Cache,
	mailer email.Mailer,
	log *logger.Logger,
) AuthService {
	return &authService{
		userRepo: userRepo,
		sessions: sessions,
		cache:    cacheStore,
		mailer:   mailer,
		logger:   log,
	}
}

func (s *authService) Register(ctx context.Context, request *RegisterRequest) (*AuthResponse, error) {
	if len(request.Password) < utils.PasswordMinLength {
		return nil, ErrPasswordTooShort
	}

	if err := s.consumeCode(ctx, request.Email, request.Code); err != nil {
		return nil, err
	}

	_, err := s.userRepo.GetByUsername(ctx, request.Username)
	if err == nil {
		return nil, ErrUserExists
	}
	if err != interfaces.ErrNotFound {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		UserID:       uuid.New().String(),
		Username:     request.Username,
		Email:        request.Email,
		PasswordHash: string(hash),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.WithUserID(user.UserID).Info("user registered")

	return &AuthResponse{
		Token:    s.sessions.Create(user.UserID),
		UserID:   user.UserID,
		Username: user.Username,
	}, nil
}

func (s *authService) Login(ctx context.Context, request *LoginRequest) (*AuthResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, request.Username)
	if err != nil {
		if err == interfaces.ErrNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &AuthResponse{
		Token:    s.sessions.Create(user.UserID),
		UserID:   user.UserID,
		Username: user.Username,
	}, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if !s.sessions.Delete(token) {
		return ErrUnauthorized
	}

	return nil
}

func (s *authService) ResetPassword(ctx context.Context, request *ResetPasswordRequest) error {
	if len(request.NewPassword) < utils.PasswordMinLength {
		return ErrPasswordTooShort
	}

	if err := s.consumeCode(ctx, request.Email, request.Code); err != nil {
		return err
	}

	user, err := s.userRepo.GetByUsername(ctx, request.Username)
	if err != nil {
		if err == interfaces.ErrNotFound {
			return ErrNotFound
		}
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, user.UserID, string(hash)); err != nil {
		return err
	}

	s.logger.WithUserID(user.UserID).Info("password reset")

	return nil
}

func (s *authService) SendVerificationCode(ctx context.Context, emailAddr string) error {
	key := utils.CacheVerificationPrefix + emailAddr

	exists, err := s.cache.Exists(ctx, key)
	if err != nil {
		return err
	}
	if exists {
		return ErrCodeResendTooSoon
	}

	code := utils.GenerateVerificationCode()
	if err := s.cache.Set(ctx, key, code, utils.VerificationCodeExpiry); err != nil {
		return err
	}

	msg := &email.Message{
		To:       emailAddr,
		Subject:  "Your verification code",
		HTMLBody: fmt.Sprintf("<p>Your %s verification code is <strong>%s</strong>. It expires in 5 minutes.</p>", utils.AppName, code),
		TextBody: fmt.Sprintf("Your %s verification code is %s. It expires in 5 minutes.", utils.AppName, code),
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		// Drop the cached code so the user can retry immediately.
		_ = s.cache.Delete(ctx, key)
		return fmt.Errorf("failed to send verification email: %w", err)
	}

	return nil
}

func (s *authService) VerifyCode(ctx context.Context, emailAddr, code string) error {
	var cached string
	err := s.cache.Get(ctx, utils.CacheVerificationPrefix+emailAddr, &cached)
	if err != nil {
		if err == cache.ErrCacheMiss {
			return ErrCodeExpired
		}
		return err
	}

	if cached != code {
		return ErrCodeMismatch
	}

	return nil
}

// consumeCode verifies the emailed code and invalidates it on success.
func (s *authService) consumeCode(ctx context.Context, emailAddr, code string) error {
	if err := s.VerifyCode(ctx, emailAddr, code); err != nil {
		return err
	}

	return s.cache.Delete(ctx, utils.CacheVerificationPrefix+emailAddr)
}
