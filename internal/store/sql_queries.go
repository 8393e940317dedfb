// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	upsertDraft = `
		INSERT INTO drafts (
			entity_type,
			entity_id,
			user_id,
			data,
			saved_at,
			version
		) VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (entity_type, entity_id) DO UPDATE SET
			user_id  = excluded.user_id,
			data     = excluded.data,
			saved_at = excluded.saved_at,
			version  = excluded.version;`

	getDraft = `
		SELECT
			entity_type,
			entity_id,
			user_id,
			data,
			saved_at,
			version
		FROM drafts
		WHERE entity_type = ? AND entity_id = ?;`

	deleteDraft = `
		DELETE FROM drafts
		WHERE entity_type = ? AND entity_id = ?;`

	deleteDraftsOlderThan = `
		DELETE FROM drafts
		WHERE saved_at < ?;`

	upsertOperation = `
		INSERT INTO operations (
			id,
			entity_type,
			operation_type,
			user_id,
			operation_data,
			status,
			retry_count,
			last_error,
			enqueued_at,
			synced_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			status      = excluded.status,
			retry_count = excluded.retry_count,
			last_error  = excluded.last_error,
			synced_at   = excluded.synced_at;`

	markOperationCompleted = `
		UPDATE operations SET
			status    = 'completed',
			synced_at = ?
		WHERE id = ? AND status = 'pending';`

	recordOperationFailure = `
		UPDATE operations SET
			retry_count = retry_count + 1,
			last_error  = ?,
			status      = CASE WHEN retry_count + 1 >= ? THEN 'failed' ELSE status END
		WHERE id = ? AND status = 'pending';`

	deleteOperation = `
		DELETE FROM operations
		WHERE id = ?;`

	deleteCompletedOperationsOlderThan = `
		DELETE FROM operations
		WHERE status = 'completed' AND enqueued_at < ?;`

	countOperationsByStatus = `
		SELECT status, COUNT(*)
		FROM operations
		WHERE user_id = ?
		GROUP BY status;`

	oldestPendingOperation = `
		SELECT enqueued_at
		FROM operations
		WHERE user_id = ? AND status = 'pending'
		ORDER BY enqueued_at ASC
		LIMIT 1;`

	upsertCachedEntity = `
		INSERT INTO cached_entities (
			collection,
			id,
			payload,
			cached_at,
			offline_available
		) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (collection, id) DO UPDATE SET
			payload           = excluded.payload,
			cached_at         = excluded.cached_at,
			offline_available = excluded.offline_available;`

	deleteCachedEntity = `
		DELETE FROM cached_entities
		WHERE collection = ? AND id = ?;`

	countCachedEntities = `
		SELECT COUNT(*) FROM cached_entities;`

	clearCachedEntities = `
		DELETE FROM cached_entities;`

	upsertSession = `
		INSERT INTO session (id, user_id, token, saved_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			user_id  = excluded.user_id,
			token    = excluded.token,
			saved_at = excluded.saved_at;`

	getSession = `
		SELECT user_id, token, saved_at
		FROM session
		WHERE id = 1;`

	deleteSession = `
		DELETE FROM session
		WHERE id = 1;`
)
