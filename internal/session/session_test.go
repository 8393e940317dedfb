package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"crmsync/internal/config"
	"crmsync/internal/logger"
	"crmsync/internal/mock"
	"crmsync/internal/store"
	"crmsync/models"
)

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "42",
		"exp": expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte("test-key"))
	require.NoError(t, err)
	return signed
}

func TestRestore_PrefersConfigToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSessionRepository(ctrl)
	repo.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)

	m := NewManager(repo, logger.Nop())
	session, err := m.Restore(context.Background(), config.Session{Token: "  cfg-token ", UserID: 42})

	require.NoError(t, err)
	assert.Equal(t, "cfg-token", session.Token)
	assert.Equal(t, int64(42), session.UserID)
}

func TestRestore_PersistedSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSessionRepository(ctrl)

	persisted := models.Session{
		UserID:  7,
		Token:   signedToken(t, time.Now().Add(time.Hour)),
		SavedAt: time.Now().UTC(),
	}
	repo.EXPECT().GetSession(gomock.Any()).Return(persisted, nil)

	m := NewManager(repo, logger.Nop())
	session, err := m.Restore(context.Background(), config.Session{})

	require.NoError(t, err)
	assert.Equal(t, persisted.Token, session.Token)
}

func TestRestore_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSessionRepository(ctrl)
	repo.EXPECT().GetSession(gomock.Any()).Return(models.Session{}, store.ErrSessionNotFound)

	m := NewManager(repo, logger.Nop())
	_, err := m.Restore(context.Background(), config.Session{})

	assert.ErrorIs(t, err, ErrNoSession)
}

func TestRestore_ExpiredTokenDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSessionRepository(ctrl)

	persisted := models.Session{
		UserID: 7,
		Token:  signedToken(t, time.Now().Add(-time.Hour)),
	}
	repo.EXPECT().GetSession(gomock.Any()).Return(persisted, nil)
	repo.EXPECT().DeleteSession(gomock.Any()).Return(nil)

	m := NewManager(repo, logger.Nop())
	_, err := m.Restore(context.Background(), config.Session{})

	assert.ErrorIs(t, err, ErrNoSession)
}

func TestRestore_OpaqueTokenNeverExpires(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSessionRepository(ctrl)

	// not a JWT at all: the token is kept as-is
	persisted := models.Session{UserID: 7, Token: "opaque-api-key"}
	repo.EXPECT().GetSession(gomock.Any()).Return(persisted, nil)

	m := NewManager(repo, logger.Nop())
	session, err := m.Restore(context.Background(), config.Session{})

	require.NoError(t, err)
	assert.Equal(t, "opaque-api-key", session.Token)
}
