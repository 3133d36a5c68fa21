package service

import (
	"context"

	"github.com/parteecat/folio/internal/api/dto"
	"github.com/parteecat/folio/internal/pkg/security"
	"github.com/parteecat/folio/internal/repository"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (*dto.LoginResultDTO, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.RefreshResultDTO, error)
}

type authServiceImpl struct {
	userRepo repository.UserRepo
}

func NewAuthService(userRepo repository.UserRepo) AuthService {
	return &authServiceImpl{userRepo: userRepo}
}

// Login 校验邮箱密码，签发访问令牌与刷新令牌。
// 用户不存在与密码错误返回同一错误，不泄露账号是否存在
func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*dto.LoginResultDTO, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err = security.CheckPasswordHash(password, user.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := security.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	refreshToken, err := security.GenerateRefreshToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResultDTO{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: dto.UserBriefDTO{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
			Role:  user.Role,
		},
	}, nil
}

// Refresh 校验刷新令牌并确认用户仍然存在，只签发新的访问令牌
func (s *authServiceImpl) Refresh(ctx context.Context, refreshToken string) (*dto.RefreshResultDTO, error) {
	claims, err := security.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefresh
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidRefresh
	}

	accessToken, err := security.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &dto.RefreshResultDTO{AccessToken: accessToken}, nil
}
