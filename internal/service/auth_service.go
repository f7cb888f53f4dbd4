package service

import (
	"errors"
	"fmt"

	"github.com/classroomquiz/backend/config"
	"github.com/classroomquiz/backend/internal/auth"
	"github.com/classroomquiz/backend/internal/dto"
	"github.com/classroomquiz/backend/internal/model"
	"github.com/classroomquiz/backend/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(req dto.RegisterRequest) (string, error)
	Login(req dto.LoginRequest) (string, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{userRepo: userRepo, cfg: cfg}
}

func (s *authService) Register(req dto.RegisterRequest) (string, error) {
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return "", ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error().Err(err).Msg("Register: failed to check existing email")
		return "", fmt.Errorf("error checking existing account: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	user := model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     model.ParseRole(req.Role),
	}
	if err := s.userRepo.Create(&user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", ErrEmailRegistered
		}
		log.Error().Err(err).Str("email", req.Email).Msg("Register: failed to create user")
		return "", fmt.Errorf("error creating account: %w", err)
	}

	log.Info().Uint("userID", user.ID).Str("role", string(user.Role)).Msg("User registered")
	return auth.GenerateJWT(&user, s.cfg.JWT.Secret, s.cfg.JWT.TTL)
}

func (s *authService) Login(req dto.LoginRequest) (string, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return auth.GenerateJWT(user, s.cfg.JWT.Secret, s.cfg.JWT.TTL)
}
