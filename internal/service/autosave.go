package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"crmsync/internal/adapter"
	"crmsync/internal/connectivity"
	"crmsync/internal/logger"
	"crmsync/internal/store"
	"crmsync/models"
)

// ErrDraftOwnership is returned when a draft exists but belongs to a
// different user.
var ErrDraftOwnership = errors.New("draft belongs to another user")

type autosaveService struct {
	drafts    store.DraftRepository
	authority adapter.RemoteAuthority
	monitor   connectivity.Monitor

	interval time.Duration

	mu   sync.Mutex
	jobs map[string]*autosaveJob

	logger *logger.Logger
}

type autosaveJob struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// NewAutosaveService builds the autosave engine. interval is the snapshot
// period of every form timer.
func NewAutosaveService(
	drafts store.DraftRepository,
	authority adapter.RemoteAuthority,
	monitor connectivity.Monitor,
	interval time.Duration,
	log *logger.Logger,
) AutosaveService {
	return &autosaveService{
		drafts:    drafts,
		authority: authority,
		monitor:   monitor,
		interval:  interval,
		jobs:      make(map[string]*autosaveJob),
		logger:    log.WithComponent("autosave"),
	}
}

func (s *autosaveService) StartAutosave(ctx context.Context, entityType, entityID string, userID int64, snapshot SnapshotFunc) {
	key := models.DraftKey(entityType, entityID)

	s.mu.Lock()
	defer s.mu.Unlock()

	// the latest Start wins: the previous timer and its snapshot source are
	// dropped before the new one launches
	if old, running := s.jobs[key]; running {
		old.cancel()
		<-old.done
		s.logger.Info().Str("draft_key", key).Msg("autosave restarted for form")
	}

	jobCtx, cancel := context.WithCancel(ctx)
	job := &autosaveJob{cancel: cancel, done: make(chan struct{})}
	s.jobs[key] = job

	go s.run(jobCtx, job, entityType, entityID, userID, snapshot)

	s.logger.Info().
		Str("draft_key", key).
		Dur("interval", s.interval).
		Msg("autosave started")
}

func (s *autosaveService) run(ctx context.Context, job *autosaveJob, entityType, entityID string, userID int64, snapshot SnapshotFunc) {
	defer close(job.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx, entityType, entityID, userID, snapshot)
		}
	}
}

// tick captures and persists one snapshot. Empty snapshots are skipped so a
// form the user has not touched never shadows an older meaningful draft.
func (s *autosaveService) tick(ctx context.Context, entityType, entityID string, userID int64, snapshot SnapshotFunc) {
	draft := models.Draft{
		EntityType: entityType,
		EntityID:   entityID,
		UserID:     userID,
		Data:       snapshot(),
	}
	if draft.Empty() {
		return
	}

	if err := s.SaveNow(ctx, draft); err != nil {
		s.logger.Err(err).
			Str("draft_key", models.DraftKey(entityType, entityID)).
			Msg("autosave tick failed")
	}
}

// SaveNow overwrites the draft in place, bumping its version. When the
// authority is reachable the snapshot is also pushed remotely, best effort:
// a push failure is logged and forgotten, the local write already succeeded.
func (s *autosaveService) SaveNow(ctx context.Context, draft models.Draft) error {
	if draft.Empty() {
		return nil
	}

	previous, err := s.drafts.GetDraft(ctx, draft.EntityType, draft.EntityID)
	switch {
	case err == nil:
		draft.Version = previous.Version + 1
	case errors.Is(err, store.ErrDraftNotFound):
		draft.Version = 1
	default:
		return fmt.Errorf("load previous draft: %w", err)
	}

	draft.SavedAt = time.Now().UTC()
	if err = s.drafts.SaveDraft(ctx, draft); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}

	if s.monitor.IsOnline() {
		pushErr := s.authority.PushAutosave(ctx, models.AutosaveRequest{
			EntityType: draft.EntityType,
			EntityID:   draft.EntityID,
			Data:       draft.Data,
		})
		if pushErr != nil && !errors.Is(pushErr, adapter.ErrAuthMissing) {
			s.logger.Err(pushErr).
				Str("draft_key", models.DraftKey(draft.EntityType, draft.EntityID)).
				Msg("remote autosave push failed, local draft kept")
		}
	}

	return nil
}

func (s *autosaveService) LoadDraft(ctx context.Context, entityType, entityID string, userID int64) (models.Draft, error) {
	draft, err := s.drafts.GetDraft(ctx, entityType, entityID)
	if err != nil {
		return models.Draft{}, err
	}

	if draft.UserID != userID {
		s.logger.Info().
			Str("draft_key", models.DraftKey(entityType, entityID)).
			Int64("owner", draft.UserID).
			Int64("requester", userID).
			Msg("draft ownership mismatch")
		return models.Draft{}, ErrDraftOwnership
	}

	return draft, nil
}

func (s *autosaveService) ListDrafts(ctx context.Context, userID int64) ([]models.Draft, error) {
	return s.drafts.GetAllDrafts(ctx, userID)
}

func (s *autosaveService) DiscardDraft(ctx context.Context, entityType, entityID string) error {
	return s.drafts.DeleteDraft(ctx, entityType, entityID)
}

func (s *autosaveService) StopAutosave(entityType, entityID string) {
	key := models.DraftKey(entityType, entityID)

	s.mu.Lock()
	job, running := s.jobs[key]
	delete(s.jobs, key)
	s.mu.Unlock()

	if !running {
		return
	}

	job.cancel()
	<-job.done

	s.logger.Info().Str("draft_key", key).Msg("autosave stopped")
}

func (s *autosaveService) StopAll() {
	s.mu.Lock()
	jobs := s.jobs
	s.jobs = make(map[string]*autosaveJob)
	s.mu.Unlock()

	for _, job := range jobs {
		job.cancel()
		<-job.done
	}

	if len(jobs) > 0 {
		s.logger.Info().Int("stopped", len(jobs)).Msg("all autosave timers stopped")
	}
}
