package auth

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/asistpro/asistencia-backend-go/internal/domain/auth"
	"github.com/asistpro/asistencia-backend-go/internal/domain/user"
	"github.com/asistpro/asistencia-backend-go/internal/pkg/database"
	"github.com/asistpro/asistencia-backend-go/internal/pkg/jwt"
	"github.com/asistpro/asistencia-backend-go/internal/repository/postgresql"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

func TestHashToken(t *testing.T) {
	h1 := hashToken("some-refresh-token")
	h2 := hashToken("some-refresh-token")
	h3 := hashToken("another-token")

	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
	assert.Len(t, h1, 64)
}

var testAuthDB *database.DB

func authTestService(t *testing.T) auth.AuthService {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	if testAuthDB == nil {
		var err error
		testAuthDB, err = database.NewPostgreSQLDB(dsn)
		require.NoError(t, err)
	}

	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	return NewAuthService(
		testAuthDB,
		postgresql.NewUserRepository(testAuthDB),
		postgresql.NewEmployeeRepository(testAuthDB),
		jwtService,
		postgresql.NewRefreshTokenRepository(testAuthDB),
	)
}

func createAuthTestUser(t *testing.T, ctx context.Context, password string) (string, string) {
	username := fmt.Sprintf("admin%d", time.Now().UnixNano())
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	var userID string
	err = testAuthDB.QueryRow(ctx, `
		INSERT INTO users (username, email, password_hash, active, is_admin)
		VALUES ($1, $1 || '@example.com', $2, TRUE, TRUE)
		RETURNING id
	`, username, string(hashed)).Scan(&userID)
	require.NoError(t, err)
	return userID, username
}

func TestLoginSuccess(t *testing.T) {
	service := authTestService(t)
	ctx := context.Background()

	userID, username := createAuthTestUser(t, ctx, "secret123")

	tokens, err := service.Login(ctx, auth.LoginRequest{Login: username, Password: "secret123"})
	require.NoError(t, err)

	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, userID, tokens.User.ID)
	assert.True(t, tokens.User.IsAdmin)
}

func TestLoginWrongPassword(t *testing.T) {
	service := authTestService(t)
	ctx := context.Background()

	_, username := createAuthTestUser(t, ctx, "secret123")

	_, err := service.Login(ctx, auth.LoginRequest{Login: username, Password: "wrong"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginLocksAfterRepeatedFailures(t *testing.T) {
	service := authTestService(t)
	ctx := context.Background()

	_, username := createAuthTestUser(t, ctx, "secret123")

	var err error
	for i := 0; i < maxFailedAttempts; i++ {
		_, err = service.Login(ctx, auth.LoginRequest{Login: username, Password: "wrong"})
	}
	assert.ErrorIs(t, err, user.ErrAccountLocked)

	// The right password no longer helps once the account is locked.
	_, err = service.Login(ctx, auth.LoginRequest{Login: username, Password: "secret123"})
	assert.ErrorIs(t, err, user.ErrAccountLocked)
}

func TestRefreshRotatesToken(t *testing.T) {
	service := authTestService(t)
	ctx := context.Background()

	_, username := createAuthTestUser(t, ctx, "secret123")

	tokens, err := service.Login(ctx, auth.LoginRequest{Login: username, Password: "secret123"})
	require.NoError(t, err)

	rotated, err := service.Refresh(ctx, auth.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, rotated.RefreshToken)

	// The presented token was revoked during rotation.
	_, err = service.Refresh(ctx, auth.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestLogoutIsIdempotent(t *testing.T) {
	service := authTestService(t)
	ctx := context.Background()

	_, username := createAuthTestUser(t, ctx, "secret123")

	tokens, err := service.Login(ctx, auth.LoginRequest{Login: username, Password: "secret123"})
	require.NoError(t, err)

	require.NoError(t, service.Logout(ctx, tokens.RefreshToken))
	require.NoError(t, service.Logout(ctx, tokens.RefreshToken))
	require.NoError(t, service.Logout(ctx, "never-issued"))
}
