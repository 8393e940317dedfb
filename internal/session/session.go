// Package session keeps the locally persisted login state and decides
// whether the held token is still usable for remote sync.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"crmsync/internal/config"
	"crmsync/internal/logger"
	"crmsync/internal/store"
	"crmsync/models"
)

// ErrNoSession is returned when no usable session exists: nothing persisted,
// nothing in config, or the persisted token is expired.
var ErrNoSession = errors.New("no usable session")

// Manager owns the single persisted session row. It is safe for concurrent
// use as long as the underlying repository is.
type Manager struct {
	sessions store.SessionRepository
	logger   *logger.Logger
}

func NewManager(sessions store.SessionRepository, log *logger.Logger) *Manager {
	return &Manager{
		sessions: sessions,
		logger:   log.WithComponent("session"),
	}
}

// Restore returns the current session, preferring an explicit token from
// config over the persisted one. A config-supplied token is persisted so the
// next run does not need the flag again. Expired tokens are discarded and
// reported as [ErrNoSession].
func (m *Manager) Restore(ctx context.Context, cfg config.Session) (models.Session, error) {
	if strings.TrimSpace(cfg.Token) != "" {
		session := models.Session{
			UserID:  cfg.UserID,
			Token:   strings.TrimSpace(cfg.Token),
			SavedAt: time.Now().UTC(),
		}
		return session, m.Save(ctx, session)
	}

	session, err := m.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.Session{}, ErrNoSession
		}
		return models.Session{}, fmt.Errorf("restore session: %w", err)
	}

	if expired(session.Token) {
		m.logger.Info().
			Int64("user_id", session.UserID).
			Msg("persisted token expired, dropping session")
		if err = m.sessions.DeleteSession(ctx); err != nil {
			m.logger.Err(err).Msg("failed to drop expired session")
		}
		return models.Session{}, ErrNoSession
	}

	return session, nil
}

// Save persists the session, overwriting any previous one.
func (m *Manager) Save(ctx context.Context, session models.Session) error {
	if err := m.sessions.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	m.logger.Info().
		Int64("user_id", session.UserID).
		Msg("session saved")
	return nil
}

// Drop removes the persisted session. Local-only mode continues afterwards.
func (m *Manager) Drop(ctx context.Context) error {
	return m.sessions.DeleteSession(ctx)
}

// expired reports whether token carries an exp claim in the past. The token
// is decoded without signature verification: the client holds no signing key,
// and the authority re-validates on every request anyway. Tokens that are not
// JWTs or carry no exp claim are treated as non-expiring.
func expired(token string) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return exp.Before(time.Now())
}
