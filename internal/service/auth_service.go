package service

import (
	"context"
	"time"

	"github.com/open-music/server/internal/repository"
	"github.com/open-music/server/pkg/errors"
	"github.com/open-music/server/pkg/jwt"
)

// TokenPair 登录颁发的令牌对
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthService 认证服务，刷新令牌持久化到数据库
type AuthService struct {
	userService *UserService
	tokenRepo   repository.AuthTokenRepository
	jwtManager  *jwt.Manager
}

// NewAuthService 创建认证服务
func NewAuthService(userService *UserService, tokenRepo repository.AuthTokenRepository, jwtManager *jwt.Manager) *AuthService {
	return &AuthService{
		userService: userService,
		tokenRepo:   tokenRepo,
		jwtManager:  jwtManager,
	}
}

// Login 校验凭证并颁发令牌对，刷新令牌落库
func (s *AuthService) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	if username == "" || password == "" {
		return nil, errors.Validation("username and password are required")
	}

	userID, err := s.userService.VerifyCredential(ctx, username, password)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(userID)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindInternal, "failed to generate access token")
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(userID)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindInternal, "failed to generate refresh token")
	}

	if err := s.tokenRepo.Add(ctx, refreshToken, time.Now()); err != nil {
		return nil, errors.Wrap(err, errors.KindInternal, "failed to store refresh token")
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Refresh 用有效的刷新令牌换取新的访问令牌
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", errors.Validation("refresh token is required")
	}

	exists, err := s.tokenRepo.Exists(ctx, refreshToken)
	if err != nil {
		return "", errors.Wrap(err, errors.KindInternal, "failed to check refresh token")
	}
	if !exists {
		return "", errors.Invariant("refresh token is not valid")
	}

	claims, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return "", err
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(claims.UserID)
	if err != nil {
		return "", errors.Wrap(err, errors.KindInternal, "failed to generate access token")
	}
	return accessToken, nil
}

// Logout 撤销刷新令牌
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return errors.Validation("refresh token is required")
	}

	affected, err := s.tokenRepo.Delete(ctx, refreshToken)
	if err != nil {
		return errors.Wrap(err, errors.KindInternal, "failed to delete refresh token")
	}
	if affected == 0 {
		return errors.Invariant("refresh token is not valid")
	}
	return nil
}
