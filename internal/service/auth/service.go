package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/auth"
	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/company"
	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/user"
	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/worker"
	"github.com/HuginnARaven/WorkerOnline-server/internal/pkg/database"
	"github.com/HuginnARaven/WorkerOnline-server/internal/pkg/jwt"
	"github.com/HuginnARaven/WorkerOnline-server/internal/pkg/oauth"
	"github.com/HuginnARaven/WorkerOnline-server/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	company.CompanyRepository
	worker.WorkerRepository
	auth.RefreshTokenRepository
	jwt.Service
	google oauth.GoogleService
	logger *slog.Logger
}

func NewAuthService(
	db *database.DB,
	userRepository user.UserRepository,
	companyRepository company.CompanyRepository,
	workerRepository worker.WorkerRepository,
	refreshTokenRepository auth.RefreshTokenRepository,
	jwtService jwt.Service,
	googleService oauth.GoogleService,
	logger *slog.Logger,
) auth.AuthService {
	return &AuthServiceImpl{
		db:                     db,
		UserRepository:         userRepository,
		CompanyRepository:      companyRepository,
		WorkerRepository:       workerRepository,
		RefreshTokenRepository: refreshTokenRepository,
		Service:                jwtService,
		google:                 googleService,
		logger:                 logger,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// identityFor resolves the token identity of a user. For workers the
// employer is looked up so tenant scoping never trusts client input.
func (a *AuthServiceImpl) identityFor(ctx context.Context, u user.User) (jwt.Identity, error) {
	id := jwt.Identity{UserID: u.ID, Role: u.Role}

	switch u.Role {
	case user.RoleCompany:
		id.CompanyID = u.ID
	case user.RoleWorker:
		w, err := a.WorkerRepository.GetByUserID(ctx, u.ID)
		if err != nil {
			return jwt.Identity{}, fmt.Errorf("failed to resolve worker identity: %w", err)
		}
		id.WorkerID = u.ID
		id.CompanyID = w.EmployerID
	}

	return id, nil
}

func (a *AuthServiceImpl) issueTokens(ctx context.Context, u user.User) (auth.TokenResponse, error) {
	identity, err := a.identityFor(ctx, u)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	var resp auth.TokenResponse
	resp.Role = string(u.Role)
	resp.UserID = u.ID

	var refreshExpiresAt int64
	resp.AccessToken, resp.ExpiresAt, err = a.Service.GenerateAccessToken(identity)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	resp.RefreshToken, refreshExpiresAt, err = a.Service.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	err = a.RefreshTokenRepository.Store(ctx, auth.RefreshToken{
		Token:     resp.RefreshToken,
		UserID:    u.ID,
		ExpiresAt: time.Unix(refreshExpiresAt, 0),
	})
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to save refresh token: %w", err)
	}

	return resp, nil
}

// RegisterCompany implements auth.AuthService.
func (a *AuthServiceImpl) RegisterCompany(ctx context.Context, req auth.RegisterCompanyRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	hashed, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	timezone := req.Timezone
	if timezone == "" {
		timezone = "UTC"
	}

	var created user.User
	err = postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		created, err = a.UserRepository.Create(txCtx, user.User{
			Username:     req.Username,
			Email:        req.Email,
			PasswordHash: hashed,
			Role:         user.RoleCompany,
		})
		if err != nil {
			return err
		}

		_, err = a.CompanyRepository.Create(txCtx, company.Company{
			ID:          created.ID,
			Name:        req.Name,
			Description: req.Description,
			Timezone:    timezone,
		})
		if err != nil {
			return fmt.Errorf("failed to create company: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	a.logger.InfoContext(ctx, "company registered", "user_id", created.ID, "username", created.Username)

	return a.issueTokens(ctx, created)
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.UserRepository.GetByLogin(ctx, req.Login)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(ctx, userData)
}

// Refresh implements auth.AuthService. The presented token is rotated: the
// old session row is revoked and a fresh pair is issued.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	if refreshToken == "" || a.Service.IsTokenRevoked(refreshToken) {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	stored, err := a.RefreshTokenRepository.Get(ctx, refreshToken)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	if stored.RevokedAt != nil {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}
	if !stored.Valid(time.Now()) {
		return auth.TokenResponse{}, auth.ErrTokenExpired
	}

	userData, err := a.UserRepository.GetByID(ctx, stored.UserID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	if err := a.RefreshTokenRepository.Revoke(ctx, refreshToken); err != nil {
		return auth.TokenResponse{}, err
	}
	a.Service.RevokeToken(refreshToken)

	return a.issueTokens(ctx, userData)
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return auth.ErrInvalidToken
	}

	a.Service.RevokeToken(refreshToken)

	err := a.RefreshTokenRepository.Revoke(ctx, refreshToken)
	if err != nil && !errors.Is(err, auth.ErrInvalidToken) {
		return err
	}
	return nil
}

// LoginWithGoogle implements auth.AuthService. Only pre-existing accounts
// can log in this way; there is no just-in-time registration because a
// company profile needs fields Google does not supply.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, code string) (auth.TokenResponse, error) {
	token, err := a.google.VerifyToken(ctx, code)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	info, err := a.google.VerifyUser(ctx, token)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to fetch google profile: %w", err)
	}
	if !info.VerifiedEmail {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	userData, err := a.UserRepository.GetByLogin(ctx, info.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	a.logger.InfoContext(ctx, "google login", "user_id", userData.ID)

	return a.issueTokens(ctx, userData)
}
