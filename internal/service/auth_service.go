package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/L4U04/salvaluno/internal/dto"
	"github.com/L4U04/salvaluno/internal/model"
	"github.com/L4U04/salvaluno/internal/repository"
	"github.com/L4U04/salvaluno/pkg/jwt"
	"github.com/L4U04/salvaluno/pkg/redis"
)

// ── auth module errors ──

var (
	ErrEmailTaken         = errors.New("este e-mail já está cadastrado")
	ErrInvalidCredentials = errors.New("e-mail ou senha incorretos")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrCampusNotFound     = errors.New("campus não encontrado")
	ErrWrongPassword      = errors.New("senha atual incorreta")
	ErrNotRefreshToken    = errors.New("token informado não é um refresh token")
	ErrTokenRevoked       = errors.New("sessão encerrada, faça login novamente")
)

// AuthService handles signup, login and the token lifecycle.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	// Refresh exchanges a valid refresh token for a new pair, revoking
	// the old one when redis is available.
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	// Logout blacklists both tokens until their natural expiry.
	Logout(ctx context.Context, accessToken, refreshToken string) error
	ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error
}

type authService struct {
	repo       *repository.Repository
	jwtManager *jwt.Manager
	rdb        *redis.Client // nil disables token revocation
	logger     *zap.Logger
}

// NewAuthService creates an AuthService.
func NewAuthService(repo *repository.Repository, jwtManager *jwt.Manager, rdb *redis.Client, logger *zap.Logger) AuthService {
	return &authService{repo: repo, jwtManager: jwtManager, rdb: rdb, logger: logger}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.repo.User.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if req.CampusID != "" {
		if _, err := s.repo.University.GetCampus(ctx, req.CampusID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCampusNotFound
			}
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := model.User{
		FullName:     strings.TrimSpace(req.FullName),
		Email:        email,
		PasswordHash: string(hash),
	}
	if req.CampusID != "" {
		user.CampusID = &req.CampusID
	}
	if req.SemestreIngresso != "" {
		user.SemestreIngresso = &req.SemestreIngresso
	}

	if err := s.repo.User.Create(ctx, &user); err != nil {
		s.logger.Error("failed to create user", zap.Error(err))
		return nil, err
	}
	s.logger.Info("user registered", zap.String("user_id", user.UserID))

	return s.issueTokens(ctx, user.UserID, false)
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.repo.User.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("user logged in", zap.String("user_id", user.UserID))
	return s.issueTokens(ctx, user.UserID, req.RememberMe)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	claims, err := s.jwtManager.ParseToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != "refresh" {
		return nil, ErrNotRefreshToken
	}

	if s.rdb != nil {
		revoked, err := s.rdb.IsBlacklisted(ctx, claims.ID)
		if err != nil {
			s.logger.Warn("blacklist lookup failed", zap.Error(err))
		} else if revoked {
			return nil, ErrTokenRevoked
		}
	}

	resp, err := s.issueTokens(ctx, claims.UserID, claims.RememberMe)
	if err != nil {
		return nil, err
	}

	// old refresh token goes out of circulation with the new pair
	s.blacklistClaims(ctx, claims)
	return resp, nil
}

func (s *authService) Logout(ctx context.Context, accessToken, refreshToken string) error {
	for _, token := range []string{accessToken, refreshToken} {
		if token == "" {
			continue
		}
		claims, err := s.jwtManager.ParseToken(token)
		if err != nil {
			// already expired or garbage; nothing to revoke
			continue
		}
		s.blacklistClaims(ctx, claims)
	}
	return nil
}

func (s *authService) ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("failed to update password", zap.Error(err))
		return err
	}
	s.logger.Info("password changed", zap.String("user_id", userID))
	return nil
}

// issueTokens builds the token pair plus the profile payload.
func (s *authService) issueTokens(ctx context.Context, userID string, rememberMe bool) (*dto.TokenResponse, error) {
	user, err := s.repo.User.GetByIDWithCampus(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	campusID := ""
	if user.CampusID != nil {
		campusID = *user.CampusID
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(user.UserID, campusID)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.UserID, campusID, rememberMe)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.jwtManager.AccessTokenTTL().Seconds()),
		User:         toProfileResponse(user),
	}, nil
}

// blacklistClaims revokes one token until it would expire anyway.
func (s *authService) blacklistClaims(ctx context.Context, claims *jwt.Claims) {
	if s.rdb == nil || claims.ExpiresAt == nil {
		return
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return
	}
	if err := s.rdb.BlacklistToken(ctx, claims.ID, ttl); err != nil {
		s.logger.Warn("failed to blacklist token", zap.Error(err))
	}
}

// toProfileResponse strips credentials and flattens the campus preload.
func toProfileResponse(user *model.User) dto.ProfileResponse {
	resp := dto.ProfileResponse{
		ID:       user.UserID,
		FullName: user.FullName,
		Email:    user.Email,
	}
	if user.AvatarURL != nil {
		resp.AvatarURL = *user.AvatarURL
	}
	if user.SemestreIngresso != nil {
		resp.SemestreIngresso = *user.SemestreIngresso
	}
	if user.Campus != nil {
		campus := dto.CampusResponse{
			ID:             user.Campus.CampusID,
			Name:           user.Campus.Name,
			HasCircularBus: user.Campus.HasCircularBus,
			UniversityID:   user.Campus.UniversityID,
		}
		if user.Campus.City != nil {
			campus.City = *user.Campus.City
		}
		if user.Campus.University != nil {
			campus.University = user.Campus.University.ShortName
		}
		resp.Campus = &campus
	}
	return resp
}
