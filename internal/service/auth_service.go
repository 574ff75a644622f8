package service

import (
	"errors"

	"go-bizadmin/internal/model"
	"go-bizadmin/internal/repository"
	"go-bizadmin/pkg/jwt"
	"go-bizadmin/pkg/logger"
	"go-bizadmin/pkg/validator"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RegisterInput is the sign-up payload.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required"`
}

// LoginInput is the sign-in payload.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResult carries the issued session token and its user.
type AuthResult struct {
	Token string             `json:"token"`
	User  model.UserResponse `json:"user"`
}

type AuthService interface {
	Register(in *RegisterInput) (*AuthResult, error)
	Login(in *LoginInput) (*AuthResult, error)
	ValidateToken(tokenString string) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(in *RegisterInput) (*AuthResult, error) {
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return nil, validationFailure(errs)
	}

	existing, err := s.userRepo.FindByEmail(in.Email)
	if err == nil && existing != nil && existing.ID != uuid.Nil {
		return nil, &ValidationError{Err: ErrEmailTaken, Details: in.Email}
	}

	user := &model.User{
		Email:    in.Email,
		FullName: in.FullName,
	}
	if err := user.SetPassword(in.Password); err != nil {
		return nil, err
	}
	user.CreatedBy = "self"
	user.UpdatedBy = "self"

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	logger.L().Info("user registered", zap.String("email", user.Email))
	return s.issueToken(user)
}

func (s *authService) Login(in *LoginInput) (*AuthResult, error) {
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return nil, validationFailure(errs)
	}

	user, err := s.userRepo.FindByEmail(in.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.CheckPassword(in.Password) {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(user)
}

// ValidateToken resolves a bearer token back to its user, confirming the
// account still exists.
func (s *authService) ValidateToken(tokenString string) (*model.User, error) {
	claims, err := jwt.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return s.userRepo.FindByID(claims.UserID)
}

func (s *authService) issueToken(user *model.User) (*AuthResult, error) {
	token, err := jwt.GenerateToken(user.ID, user.Email, user.FullName)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user.ToResponse()}, nil
}
