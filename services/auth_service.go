package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Deepti-Velip/Cafe-Management-backend/entity"
	"github.com/Deepti-Velip/Cafe-Management-backend/repository"
	"github.com/Deepti-Velip/Cafe-Management-backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{userRepo: repo, jwtSecret: secret, jwtTTL: ttl}
}

// Register สร้าง user ใหม่ email ซ้ำ = error
func (s *AuthService) Register(ctx context.Context, name, email, password, role string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", nil, fmt.Errorf("%w: email and password are required", ErrValidation)
	}
	if role == "" {
		role = entity.RoleStaff
	}
	if role != entity.RoleAdmin && role != entity.RoleStaff {
		return "", nil, fmt.Errorf("%w: invalid role %q", ErrValidation, role)
	}

	count, err := s.userRepo.CountByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if count > 0 {
		return "", nil, fmt.Errorf("%w: email already registered", ErrValidation)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, errors.New("hash password failed")
	}

	user := &entity.User{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: string(hashed),
		Role:     role,
		Access:   true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", nil, err
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, user, nil
}

// Login ตรวจรหัสผ่าน + ออก JWT
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, errors.New("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, user, nil
}

func (s *AuthService) GetProfile(ctx context.Context, userID uint) (*entity.User, error) {
	u, err := s.userRepo.FindByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	return u, err
}

func (s *AuthService) ListUsers(ctx context.Context, f repository.UserFilter) ([]entity.User, error) {
	return s.userRepo.List(ctx, f)
}

func (s *AuthService) UpdateAccess(ctx context.Context, userID uint, access bool) (*entity.User, error) {
	n, err := s.userRepo.Update(ctx, userID, map[string]any{"access": access})
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrUserNotFound
	}
	return s.GetProfile(ctx, userID)
}

func (s *AuthService) UpdateRole(ctx context.Context, userID uint, role string) (*entity.User, error) {
	if role != entity.RoleAdmin && role != entity.RoleStaff {
		return nil, fmt.Errorf("%w: invalid role %q", ErrValidation, role)
	}
	n, err := s.userRepo.Update(ctx, userID, map[string]any{"role": role})
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrUserNotFound
	}
	return s.GetProfile(ctx, userID)
}

func (s *AuthService) DeleteUser(ctx context.Context, userID uint) error {
	n, err := s.userRepo.Delete(ctx, userID)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return nil
}
