package service

import (
	"context"

	"github.com/shoplite/storeapi/internal/dto"
	"github.com/shoplite/storeapi/internal/mapper"
	"github.com/shoplite/storeapi/internal/model"
	"github.com/shoplite/storeapi/internal/repository"
	"github.com/shoplite/storeapi/pkg/jwtutil"
	"github.com/shoplite/storeapi/pkg/logger"
	"github.com/shoplite/storeapi/prometheus"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, login and account maintenance.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (dto.LoginResponse, error)
	Profile(ctx context.Context, userID uint) (dto.UserResponse, error)
	ChangePassword(ctx context.Context, userID uint, req *dto.ChangePasswordRequest) error
}

type authService struct {
	users repository.UserRepository
	jwt   *jwtutil.JWTUtil
}

// NewAuthService creates the auth service.
func NewAuthService(users repository.UserRepository, jwt *jwtutil.JWTUtil) AuthService {
	return &authService{users: users, jwt: jwt}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (dto.UserResponse, error) {
	log := logger.FromContext(ctx)

	exists, err := s.users.EmailExists(ctx, req.Email)
	if err != nil {
		log.Error("Failed to check email uniqueness", zap.String("email", req.Email), zap.Error(err))
		return dto.UserResponse{}, err
	}
	if exists {
		log.Warn("User with this email already exists", zap.String("email", req.Email))
		return dto.UserResponse{}, ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("Failed to hash password", zap.Error(err))
		return dto.UserResponse{}, err
	}

	user := model.User{
		Email:       req.Email,
		Password:    string(hash),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: req.DateOfBirth,
		Role:        model.RoleCustomer,
		IsActive:    true,
	}
	if err := s.users.Create(ctx, &user); err != nil {
		log.Error("Failed to create user", zap.String("email", req.Email), zap.Error(err))
		return dto.UserResponse{}, err
	}

	log.Info("User registered", zap.Uint("user_id", user.ID), zap.String("email", user.Email))
	return mapper.ToUserResponse(&user), nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (dto.LoginResponse, error) {
	log := logger.FromContext(ctx)
	prometheus.AuthAttemptsCounter.Inc()

	user, err := s.users.ByEmail(ctx, req.Email)
	if err != nil {
		log.Warn("Login failed, user not found", zap.String("email", req.Email))
		prometheus.RecordAuthError("user_not_found")
		return dto.LoginResponse{}, ErrInvalidCredentials
	}

	if !user.IsActive {
		log.Warn("Login rejected for inactive user", zap.String("email", req.Email))
		prometheus.RecordAuthError("user_inactive")
		return dto.LoginResponse{}, ErrUserInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		log.Warn("Login failed, invalid password", zap.String("email", req.Email))
		prometheus.RecordAuthError("invalid_password")
		return dto.LoginResponse{}, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.Email, user.ID, user.Role)
	if err != nil {
		log.Error("Failed to generate token", zap.String("email", req.Email), zap.Error(err))
		prometheus.RecordAuthError("token_generation_failed")
		return dto.LoginResponse{}, err
	}

	log.Info("User logged in", zap.Uint("user_id", user.ID), zap.String("email", user.Email))
	prometheus.AuthSuccessCounter.Inc()
	return dto.LoginResponse{Token: token, User: mapper.ToUserResponse(user)}, nil
}

func (s *authService) Profile(ctx context.Context, userID uint) (dto.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Warn("Profile lookup failed", zap.Uint("user_id", userID), zap.Error(err))
		return dto.UserResponse{}, err
	}
	return mapper.ToUserResponse(user), nil
}

func (s *authService) ChangePassword(ctx context.Context, userID uint, req *dto.ChangePasswordRequest) error {
	log := logger.FromContext(ctx)

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		log.Warn("Password change for unknown user", zap.Uint("user_id", userID), zap.Error(err))
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		log.Warn("Password change rejected, current password mismatch", zap.Uint("user_id", userID))
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Error("Failed to hash new password", zap.Error(err))
		return err
	}

	user.Password = string(hash)
	if err := s.users.Update(ctx, user); err != nil {
		log.Error("Failed to update password", zap.Uint("user_id", userID), zap.Error(err))
		return err
	}

	log.Info("Password changed", zap.Uint("user_id", userID))
	return nil
}
