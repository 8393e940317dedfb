// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crmsync/internal/adapter"
	"crmsync/internal/logger"
	"crmsync/internal/store"
	"crmsync/models"
)

func newQueueUnderTest(t *testing.T, online bool) (QueueService, store.OperationRepository, *authorityRecorder) {
	t.Helper()
	_, operations := newTestAutosaveStorages(t)
	recorder := &authorityRecorder{}

	queue := NewQueueService(operations, recorder, staticMonitor{online: online}, logger.Nop())
	return queue, operations, recorder
}

// authorityRecorder is a scriptable RemoteAuthority that records every
// delivery in order. Each queued response is consumed once; once the script
// is exhausted every delivery succeeds.
type authorityRecorder struct {
	deliveries []models.DeliverRequest
	responses  []error

	autosaves []models.AutosaveRequest
	pushErr   error
}

func (a *authorityRecorder) script(errs ...error) { a.responses = append(a.responses, errs...) }

func (a *authorityRecorder) Deliver(_ context.Context, req models.DeliverRequest) error {
	a.deliveries = append(a.deliveries, req)
	if len(a.responses) == 0 {
		return nil
	}
	err := a.responses[0]
	a.responses = a.responses[1:]
	return err
}

func (a *authorityRecorder) SetToken(string) {}
func (a *authorityRecorder) Token() string   { return "test-token" }
func (a *authorityRecorder) PushAutosave(_ context.Context, req models.AutosaveRequest) error {
	a.autosaves = append(a.autosaves, req)
	return a.pushErr
}
func (a *authorityRecorder) RemoteStatus(context.Context) (models.RemoteStatusResponse, error) {
	return models.RemoteStatusResponse{}, nil
}
func (a *authorityRecorder) Conflicts(context.Context, int) ([]models.SyncConflict, error) {
	return nil, nil
}
func (a *authorityRecorder) ResolveConflict(context.Context, string, string) error { return nil }
func (a *authorityRecorder) Ping(context.Context) error                            { return nil }

func TestEnqueue_OfflineNothingDelivered(t *testing.T) {
	queue, operations, recorder := newQueueUnderTest(t, false)
	ctx := context.Background()

	op, err := queue.Enqueue(ctx, "lead", models.OperationCreate, 1, json.RawMessage(`{"name":"Amit"}`))
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, op.Status)
	assert.NotEmpty(t, op.ID)

	// queued durably, zero network activity
	stored, err := operations.GetOperation(ctx, op.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, stored.Status)
	assert.Empty(t, recorder.deliveries)
}

func TestDrain_DeliversInEnqueueOrder(t *testing.T) {
	queue, operations, recorder := newQueueUnderTest(t, false)
	ctx := context.Background()

	first, err := queue.Enqueue(ctx, "lead", models.OperationCreate, 1, json.RawMessage(`{"n":1}`))
	require.NoError(t, err)
	second, err := queue.Enqueue(ctx, "task", models.OperationUpdate, 1, json.RawMessage(`{"n":2}`))
	require.NoError(t, err)
	third, err := queue.Enqueue(ctx, "lead", models.OperationDelete, 1, json.RawMessage(`{"n":3}`))
	require.NoError(t, err)

	result, err := queue.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, DrainResult{Delivered: 3}, result)

	require.Len(t, recorder.deliveries, 3)
	assert.Equal(t, first.ID, recorder.deliveries[0].OperationID)
	assert.Equal(t, second.ID, recorder.deliveries[1].OperationID)
	assert.Equal(t, third.ID, recorder.deliveries[2].OperationID)

	status, err := operations.CountByStatus(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, status.Completed)
	assert.Zero(t, status.Pending)
}

func TestDrain_TransientFailureThenSuccess(t *testing.T) {
	queue, operations, recorder := newQueueUnderTest(t, false)
	ctx := context.Background()

	op, err := queue.Enqueue(ctx, "lead", models.OperationCreate, 1, json.RawMessage(`{"name":"Amit"}`))
	require.NoError(t, err)

	// first drain hits a 500, second succeeds
	recorder.script(adapter.ErrDeliveryFailed)

	result, err := queue.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, DrainResult{}, result)

	stored, err := operations.GetOperation(ctx, op.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, stored.Status)
	assert.Equal(t, 1, stored.RetryCount)

	result, err = queue.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, DrainResult{Delivered: 1}, result)

	stored, err = operations.GetOperation(ctx, op.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, stored.Status)
	assert.Equal(t, 1, stored.RetryCount)
	require.NotNil(t, stored.SyncedAt)
}

func TestDrain_RetryCeilingExactlyThreeAttempts(t *testing.T) {
	queue, operations, recorder := newQueueUnderTest(t, false)
	ctx := context.Background()

	op, err := queue.Enqueue(ctx, "lead", models.OperationCreate, 1, json.RawMessage(`{"name":"Amit"}`))
	require.NoError(t, err)

	recorder.script(adapter.ErrDeliveryFailed, adapter.ErrDeliveryFailed, adapter.ErrDeliveryFailed)

	for i := 0; i < 3; i++ {
		_, err = queue.Drain(ctx)
		require.NoError(t, err)
	}

	stored, err := operations.GetOperation(ctx, op.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFailed, stored.Status)
	assert.Equal(t, models.MaxDeliveryAttempts, stored.RetryCount)
	assert.NotEmpty(t, stored.LastError)

	// a fourth drain must not touch the failed operation
	_, err = queue.Drain(ctx)
	require.NoError(t, err)
	assert.Len(t, recorder.deliveries, 3)
}

func TestDrain_AuthMissingStopsEarly(t *testing.T) {
	queue, operations, recorder := newQueueUnderTest(t, false)
	ctx := context.Background()

	op, err := queue.Enqueue(ctx, "lead", models.OperationCreate, 1, json.RawMessage(`{"name":"Amit"}`))
	require.NoError(t, err)

	recorder.script(adapter.ErrAuthMissing)

	result, err := queue.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, DrainResult{}, result)

	// not counted against the retry ceiling
	stored, err := operations.GetOperation(ctx, op.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, stored.Status)
	assert.Zero(t, stored.RetryCount)
}

func TestDrain_ReentrantCallSkipped(t *testing.T) {
	_, operations := newTestAutosaveStorages(t)

	release := make(chan struct{})
	blocking := &blockingAuthority{entered: make(chan struct{}), release: release}
	queue := NewQueueService(operations, blocking, staticMonitor{}, logger.Nop())
	ctx := context.Background()

	_, err := queue.Enqueue(ctx, "lead", models.OperationCreate, 1, json.RawMessage(`{"n":1}`))
	require.NoError(t, err)

	done := make(chan DrainResult, 1)
	go func() {
		result, drainErr := queue.Drain(ctx)
		assert.NoError(t, drainErr)
		done <- result
	}()

	<-blocking.entered

	// second drain while the first is mid-delivery
	result, err := queue.Drain(ctx)
	require.NoError(t, err)
	assert.True(t, result.Skipped)

	close(release)
	first := <-done
	assert.Equal(t, 1, first.Delivered)
}

// blockingAuthority parks the first delivery until released.
type blockingAuthority struct {
	authorityRecorder
	entered chan struct{}
	release chan struct{}
	once    bool
}

func (a *blockingAuthority) Deliver(ctx context.Context, req models.DeliverRequest) error {
	if !a.once {
		a.once = true
		close(a.entered)
		<-a.release
	}
	return a.authorityRecorder.Deliver(ctx, req)
}

func TestDismissFailed(t *testing.T) {
	queue, operations, recorder := newQueueUnderTest(t, false)
	ctx := context.Background()

	op, err := queue.Enqueue(ctx, "lead", models.OperationCreate, 1, json.RawMessage(`{"n":1}`))
	require.NoError(t, err)

	// still pending: refuse
	err = queue.DismissFailed(ctx, op.ID)
	assert.ErrorIs(t, err, ErrNotFailed)

	recorder.script(adapter.ErrDeliveryFailed, adapter.ErrDeliveryFailed, adapter.ErrDeliveryFailed)
	for i := 0; i < 3; i++ {
		_, err = queue.Drain(ctx)
		require.NoError(t, err)
	}

	require.NoError(t, queue.DismissFailed(ctx, op.ID))

	_, err = operations.GetOperation(ctx, op.ID)
	assert.ErrorIs(t, err, store.ErrOperationNotFound)
}

func TestDismissFailed_UnknownOperation(t *testing.T) {
	queue, _, _ := newQueueUnderTest(t, false)

	err := queue.DismissFailed(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, store.ErrOperationNotFound)
}
