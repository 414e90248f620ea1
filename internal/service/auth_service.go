package service

import (
	"context"
	"errors"
	"fmt"

	"go-catalog-api/internal/model"
	"go-catalog-api/internal/repository"
	"go-catalog-api/pkg/hash"
	"go-catalog-api/pkg/jwt"
	"go-catalog-api/pkg/validator"

	"gorm.io/gorm"
)

type AuthService interface {
	Signup(ctx context.Context, req *SignupRequest) (*model.User, error)
	Signin(ctx context.Context, req *SigninRequest) (*SigninResponse, error)
	ResetPassword(ctx context.Context, username, newPassword string) error
}

type SignupRequest struct {
	Name     string     `json:"name" validate:"required"`
	Username string     `json:"username" validate:"required"`
	Password string     `json:"password" validate:"required,min=6,max=72"`
	Role     model.Role `json:"role" validate:"required,enum"`
}

type SigninRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type SigninResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"-"`
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *jwt.Service
}

func NewAuthService(userRepo repository.UserRepository, tokens *jwt.Service) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *authService) Signup(ctx context.Context, req *SignupRequest) (*model.User, error) {
	// 1. Validate request
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrInvalidInput, errs[0].FailedField, errs[0].Tag)
	}

	// 2. Check if username already exists
	existing, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err == nil && existing != nil {
		return nil, ErrUserExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup username: %w", err)
	}

	// 3. Hash and persist
	user := &model.User{
		Name:     req.Name,
		Username: req.Username,
		Role:     req.Role,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// a concurrent signup won the unique index
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *authService) Signin(ctx context.Context, req *SigninRequest) (*SigninResponse, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrInvalidInput, errs[0].FailedField, errs[0].Tag)
	}

	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("lookup username: %w", err)
	}

	if !user.CheckPassword(req.Password) {
		return nil, ErrWrongPassword
	}

	token, err := s.tokens.Issue(user.ID, user.Name)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &SigninResponse{Token: token, User: user}, nil
}

// ResetPassword replaces a user's password without checking the old one. Operator use only.
func (s *authService) ResetPassword(ctx context.Context, username, newPassword string) error {
	if len(newPassword) < 6 || len(newPassword) > hash.MaxLength {
		return fmt.Errorf("%w: password must be 6 to %d bytes", ErrInvalidInput, hash.MaxLength)
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := user.SetPassword(newPassword); err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.userRepo.UpdatePassword(ctx, user.ID, user.Password)
}
