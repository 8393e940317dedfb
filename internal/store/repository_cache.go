package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"crmsync/internal/logger"
	"crmsync/models"
)

type cacheRepository struct {
	*DB
	logger *logger.Logger
}

// NewCacheRepository returns the SQLite-backed [CacheRepository] holding the
// offline entity mirrors (gallery, catalogue, projects).
func NewCacheRepository(db *DB, logger *logger.Logger) CacheRepository {
	return &cacheRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *cacheRepository) PutEntity(ctx context.Context, entity models.CachedEntity) error {
	_, err := r.DB.ExecContext(ctx, upsertCachedEntity,
		entity.Collection,
		entity.ID,
		string(entity.Payload),
		entity.CachedAt,
		entity.OfflineAvailable,
	)
	if err != nil {
		r.logger.Err(err).
			Str("func", "cacheRepository.PutEntity").
			Str("collection", entity.Collection).
			Str("id", entity.ID).
			Msg("failed to execute upsert for cached entity")
		return fmt.Errorf("%w: put cached entity %s/%s: %v", ErrStorageUnavailable, entity.Collection, entity.ID, err)
	}

	return nil
}

func (r *cacheRepository) GetEntities(ctx context.Context, collection string) ([]models.CachedEntity, error) {
	builder := sq.Select("collection", "id", "payload", "cached_at", "offline_available").
		From("cached_entities").
		OrderBy("cached_at DESC")
	if collection != "" {
		builder = builder.Where(sq.Eq{"collection": collection})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "cacheRepository.GetEntities").
			Str("collection", collection).
			Msg("failed to execute query for cached entities")
		return nil, fmt.Errorf("%w: query cached entities: %v", ErrStorageUnavailable, err)
	}
	defer rows.Close()

	var entities []models.CachedEntity
	for rows.Next() {
		var entity models.CachedEntity
		var payload string

		if scanErr := rows.Scan(
			&entity.Collection,
			&entity.ID,
			&payload,
			&entity.CachedAt,
			&entity.OfflineAvailable,
		); scanErr != nil {
			return nil, fmt.Errorf("%w: scan cached entity row: %v", ErrStorageUnavailable, scanErr)
		}

		entity.Payload = []byte(payload)
		entities = append(entities, entity)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: iterate cached entity rows: %v", ErrStorageUnavailable, rowsErr)
	}

	return entities, nil
}

func (r *cacheRepository) DeleteEntity(ctx context.Context, collection, id string) error {
	_, err := r.DB.ExecContext(ctx, deleteCachedEntity, collection, id)
	if err != nil {
		r.logger.Err(err).
			Str("func", "cacheRepository.DeleteEntity").
			Str("collection", collection).
			Str("id", id).
			Msg("failed to delete cached entity")
		return fmt.Errorf("%w: delete cached entity %s/%s: %v", ErrStorageUnavailable, collection, id, err)
	}

	return nil
}

func (r *cacheRepository) CountEntities(ctx context.Context) (int, error) {
	var count int
	if err := r.DB.QueryRowContext(ctx, countCachedEntities).Scan(&count); err != nil {
		r.logger.Err(err).
			Str("func", "cacheRepository.CountEntities").
			Msg("failed to count cached entities")
		return 0, fmt.Errorf("%w: count cached entities: %v", ErrStorageUnavailable, err)
	}

	return count, nil
}

func (r *cacheRepository) ClearEntities(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, clearCachedEntities)
	if err != nil {
		r.logger.Err(err).
			Str("func", "cacheRepository.ClearEntities").
			Msg("failed to clear cached entities")
		return fmt.Errorf("%w: clear cached entities: %v", ErrStorageUnavailable, err)
	}

	return nil
}
