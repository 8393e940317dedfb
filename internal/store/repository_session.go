package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"crmsync/internal/logger"
	"crmsync/models"
)

type sessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewSessionRepository returns the SQLite-backed [SessionRepository]. The
// session table holds at most one row.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *sessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	_, err := r.DB.ExecContext(ctx, upsertSession, session.UserID, session.Token, session.SavedAt)
	if err != nil {
		r.logger.Err(err).
			Str("func", "sessionRepository.SaveSession").
			Int64("user_id", session.UserID).
			Msg("failed to save session")
		return fmt.Errorf("%w: save session: %v", ErrStorageUnavailable, err)
	}

	return nil
}

func (r *sessionRepository) GetSession(ctx context.Context) (models.Session, error) {
	var session models.Session

	err := r.DB.QueryRowContext(ctx, getSession).Scan(&session.UserID, &session.Token, &session.SavedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrSessionNotFound
		}
		r.logger.Err(err).
			Str("func", "sessionRepository.GetSession").
			Msg("failed to scan session row")
		return models.Session{}, fmt.Errorf("%w: get session: %v", ErrStorageUnavailable, err)
	}

	return session, nil
}

func (r *sessionRepository) DeleteSession(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, deleteSession)
	if err != nil {
		r.logger.Err(err).
			Str("func", "sessionRepository.DeleteSession").
			Msg("failed to delete session")
		return fmt.Errorf("%w: delete session: %v", ErrStorageUnavailable, err)
	}

	return nil
}
