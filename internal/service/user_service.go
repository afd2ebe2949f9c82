package service

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/open-music/server/internal/domain"
	"github.com/open-music/server/internal/repository"
	"github.com/open-music/server/pkg/errors"
)

// UserService 用户服务
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService 创建用户服务
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register 注册新用户，用户名全局唯一
func (s *UserService) Register(ctx context.Context, username, password, fullname string) (string, error) {
	user := &domain.User{
		Username: username,
		Password: password,
		Fullname: fullname,
	}
	if err := user.Validate(); err != nil {
		return "", err
	}

	existing, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", errors.Wrap(err, errors.KindInternal, "failed to check username")
	}
	if existing != nil {
		return "", errors.Invariant("username is already taken")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, errors.KindInternal, "failed to hash password")
	}

	now := time.Now()
	user.ID = domain.NewID(domain.UserIDPrefix)
	user.Password = string(hashed)
	user.CreatedAt = now
	user.UpdatedAt = now

	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", errors.Wrap(err, errors.KindInternal, "failed to create user")
	}
	return user.ID, nil
}

// VerifyCredential 校验用户名密码，成功时返回用户ID
func (s *UserService) VerifyCredential(ctx context.Context, username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", errors.Wrap(err, errors.KindInternal, "failed to get user")
	}
	if user == nil {
		return "", errors.Authentication("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", errors.Authentication("invalid credentials")
	}
	return user.ID, nil
}

// GetByID 获取用户信息
func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindInternal, "failed to get user")
	}
	if user == nil {
		return nil, errors.NotFound("user not found")
	}
	return user, nil
}
