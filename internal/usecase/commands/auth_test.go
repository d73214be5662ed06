//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	reqdto "restaurant-api/internal/handler/dto/request"
	"restaurant-api/internal/pkg/clock"
	"restaurant-api/internal/pkg/jwt"
	"restaurant-api/internal/pkg/password"
	"restaurant-api/internal/usecase/commands"
	"restaurant-api/internal/usecase/shared"
	"restaurant-api/tests/common/fakes"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPassword = "s3cure-password"

func newAuthFixture(t *testing.T) (*fakes.UnitOfWork, *jwt.Service, commands.AuthCommands) {
	t.Helper()

	uow := fakes.NewUnitOfWork()
	jwtService := jwt.NewService("test-secret-key", 15*time.Minute, 7*24*time.Hour)
	clk := clock.NewMockClock(time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC))
	return uow, jwtService, commands.NewAuthCommands(uow, jwtService, clk)
}

func activeUser(t *testing.T) *shared.UserSnapshot {
	t.Helper()

	hash, err := password.HashPassword(testPassword)
	require.NoError(t, err)
	return &shared.UserSnapshot{
		ID:           uuid.New(),
		Email:        "staff@restaurant.local",
		PasswordHash: hash,
		Role:         "staff",
		IsActive:     true,
	}
}

func TestLogin(t *testing.T) {
	loginReq := reqdto.LoginRequest{
		Email:    "staff@restaurant.local",
		Password: testPassword,
	}

	t.Run("issues a token pair and records last login", func(t *testing.T) {
		uow, jwtService, auth := newAuthFixture(t)
		snap := activeUser(t)
		uow.Tx.CommandReadsFake.User = snap

		result, err := auth.Login(context.Background(), loginReq)

		require.NoError(t, err)
		assert.Equal(t, snap.ID, result.UserID)
		assert.Equal(t, "staff", result.Role)
		require.NotNil(t, result.TokenPair)

		claims, err := jwtService.ValidateToken(result.TokenPair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)
		assert.Equal(t, snap.ID, claims.UserID)

		require.Len(t, uow.Tx.UserRepo.LastLogins, 1)
		assert.Equal(t, snap.ID, uow.Tx.UserRepo.LastLogins[0])
	})

	t.Run("wrong password and unknown email share one sentinel", func(t *testing.T) {
		uow, _, auth := newAuthFixture(t)
		uow.Tx.CommandReadsFake.User = activeUser(t)

		_, err := auth.Login(context.Background(), reqdto.LoginRequest{
			Email:    "staff@restaurant.local",
			Password: "wrong-password",
		})
		require.ErrorIs(t, err, commands.ErrInvalidCredentials)

		uow.Tx.CommandReadsFake.User = nil
		_, err = auth.Login(context.Background(), loginReq)
		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("inactive account is rejected", func(t *testing.T) {
		uow, _, auth := newAuthFixture(t)
		snap := activeUser(t)
		snap.IsActive = false
		uow.Tx.CommandReadsFake.User = snap

		_, err := auth.Login(context.Background(), loginReq)
		require.ErrorIs(t, err, commands.ErrUserInactive)
	})
}

func TestRefreshToken(t *testing.T) {
	t.Run("rotates the pair for an active user", func(t *testing.T) {
		uow, jwtService, auth := newAuthFixture(t)
		snap := activeUser(t)
		uow.Tx.CommandReadsFake.User = snap

		refresh, err := jwtService.GenerateRefreshToken(snap.ID, "staff")
		require.NoError(t, err)

		pair, err := auth.RefreshToken(context.Background(), refresh)
		require.NoError(t, err)

		claims, err := jwtService.ValidateToken(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)
	})

	t.Run("an access token cannot be used as a refresh token", func(t *testing.T) {
		uow, jwtService, auth := newAuthFixture(t)
		snap := activeUser(t)
		uow.Tx.CommandReadsFake.User = snap

		access, err := jwtService.GenerateAccessToken(snap.ID, "staff")
		require.NoError(t, err)

		_, err = auth.RefreshToken(context.Background(), access)
		require.ErrorIs(t, err, commands.ErrTokenValidation)
	})

	t.Run("deactivated user cannot refresh", func(t *testing.T) {
		uow, jwtService, auth := newAuthFixture(t)
		snap := activeUser(t)
		snap.IsActive = false
		uow.Tx.CommandReadsFake.User = snap

		refresh, err := jwtService.GenerateRefreshToken(snap.ID, "staff")
		require.NoError(t, err)

		_, err = auth.RefreshToken(context.Background(), refresh)
		require.ErrorIs(t, err, commands.ErrUserInactive)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		_, _, auth := newAuthFixture(t)

		_, err := auth.RefreshToken(context.Background(), "not-a-jwt")
		require.ErrorIs(t, err, commands.ErrTokenValidation)
	})
}

func TestCurrentUser(t *testing.T) {
	t.Run("returns the stored profile", func(t *testing.T) {
		uow, _, auth := newAuthFixture(t)
		snap := activeUser(t)
		uow.Tx.CommandReadsFake.User = snap

		info, err := auth.CurrentUser(context.Background(), snap.ID)

		require.NoError(t, err)
		assert.Equal(t, snap.ID, info.UserID)
		assert.Equal(t, snap.Email, info.Email)
		assert.Equal(t, "staff", info.Role)
		assert.True(t, info.IsActive)
	})

	t.Run("unknown user maps to not found", func(t *testing.T) {
		_, _, auth := newAuthFixture(t)

		_, err := auth.CurrentUser(context.Background(), uuid.New())
		require.ErrorIs(t, err, commands.ErrUserNotFound)
	})
}
