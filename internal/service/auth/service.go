package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/asistpro/asistencia-backend-go/internal/domain/auth"
	"github.com/asistpro/asistencia-backend-go/internal/domain/employee"
	"github.com/asistpro/asistencia-backend-go/internal/domain/user"
	"github.com/asistpro/asistencia-backend-go/internal/pkg/database"
	"github.com/asistpro/asistencia-backend-go/internal/pkg/jwt"
	"github.com/asistpro/asistencia-backend-go/internal/repository/postgresql"
)

// maxFailedAttempts is the number of consecutive bad passwords before the
// account locks. Only an administrator can unlock it afterwards.
const maxFailedAttempts = 5

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	employee.EmployeeRepository
	jwt.Service
	auth.RefreshTokenRepository
}

func NewAuthService(db *database.DB, userRepository user.UserRepository, employeeRepository employee.EmployeeRepository, jwtService jwt.Service, refreshTokenRepository auth.RefreshTokenRepository) auth.AuthService {
	return &AuthServiceImpl{
		db:                     db,
		UserRepository:         userRepository,
		EmployeeRepository:     employeeRepository,
		Service:                jwtService,
		RefreshTokenRepository: refreshTokenRepository,
	}
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	userData, err := a.UserRepository.GetByLogin(ctx, req.Login)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by login: %w", err)
	}

	if userData.Locked {
		return auth.TokenResponse{}, user.ErrAccountLocked
	}
	if !userData.Active {
		return auth.TokenResponse{}, user.ErrAccountInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		attempts, recErr := a.UserRepository.RecordFailedAttempt(ctx, userData.ID)
		if recErr != nil {
			return auth.TokenResponse{}, fmt.Errorf("failed to record failed attempt: %w", recErr)
		}
		if attempts >= maxFailedAttempts {
			if lockErr := a.UserRepository.Lock(ctx, userData.ID); lockErr != nil {
				return auth.TokenResponse{}, fmt.Errorf("failed to lock account: %w", lockErr)
			}
			return auth.TokenResponse{}, user.ErrAccountLocked
		}
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if userData.FailedAttempts > 0 {
		if err := a.UserRepository.ResetFailedAttempts(ctx, userData.ID); err != nil {
			return auth.TokenResponse{}, fmt.Errorf("failed to reset failed attempts: %w", err)
		}
	}

	return a.issueTokens(ctx, userData)
}

func (a *AuthServiceImpl) issueTokens(ctx context.Context, userData user.User) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse

	userInfo := auth.UserInfo{
		ID:         userData.ID,
		Username:   userData.Username,
		Email:      userData.Email,
		FullName:   userData.DisplayName(),
		IsAdmin:    userData.IsAdmin,
		EmployeeID: userData.EmployeeID,
	}

	var companyID *string
	if userData.EmployeeID != nil {
		employeeData, err := a.EmployeeRepository.GetByID(ctx, *userData.EmployeeID)
		if err == nil {
			companyID = &employeeData.CompanyID
			userInfo.CompanyID = companyID
			userInfo.Company = employeeData.CompanyName
			userInfo.FullName = employeeData.FullName()
		} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.TokenResponse{}, fmt.Errorf("failed to get linked employee: %w", err)
		}
	}

	err := postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)

		var err error
		tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresAt, err = a.Service.GenerateAccessToken(
			userData.ID, userData.Username, userData.Email, userData.EmployeeID, companyID, userData.IsAdmin,
		)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}

		tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresAt, err = a.Service.GenerateRefreshToken(userData.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		_, err = a.RefreshTokenRepository.Create(txCtx, auth.RefreshToken{
			UserID:    userData.ID,
			TokenHash: hashToken(tokenResponse.RefreshToken),
			ExpiresAt: time.Unix(tokenResponse.RefreshTokenExpiresAt, 0),
		})
		if err != nil {
			return fmt.Errorf("failed to save refresh token: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	tokenResponse.User = userInfo
	return tokenResponse, nil
}

// Refresh implements auth.AuthService. The presented token is revoked and a
// new pair issued, so each refresh token is usable exactly once.
func (a *AuthServiceImpl) Refresh(ctx context.Context, req auth.RefreshTokenRequest) (auth.TokenResponse, error) {
	token, err := jwtauth.VerifyToken(a.JWTAuth(), req.RefreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	if tokenType, ok := claims["type"].(string); !ok || tokenType != "refresh" {
		return auth.TokenResponse{}, auth.ErrWrongTokenType
	}

	stored, err := a.RefreshTokenRepository.GetByHash(ctx, hashToken(req.RefreshToken))
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	if stored.Revoked {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}
	if time.Now().After(stored.ExpiresAt) {
		return auth.TokenResponse{}, auth.ErrTokenExpired
	}

	userData, err := a.UserRepository.GetByID(ctx, stored.UserID)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	if userData.Locked {
		return auth.TokenResponse{}, user.ErrAccountLocked
	}
	if !userData.Active {
		return auth.TokenResponse{}, user.ErrAccountInactive
	}

	if err := a.RefreshTokenRepository.Revoke(ctx, stored.ID); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to rotate refresh token: %w", err)
	}

	return a.issueTokens(ctx, userData)
}

// Logout implements auth.AuthService. Revoking an already revoked or unknown
// token is not an error; logout is idempotent.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	stored, err := a.RefreshTokenRepository.GetByHash(ctx, hashToken(refreshToken))
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			return nil
		}
		return fmt.Errorf("failed to look up refresh token: %w", err)
	}
	if stored.Revoked {
		return nil
	}

	if err := a.RefreshTokenRepository.Revoke(ctx, stored.ID); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return nil
}
