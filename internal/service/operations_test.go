package service

import (
	"errors"
	"testing"
	"time"

	"github.com/shenikar/emergensys/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperationTracker_PrunesOldestCommitted(t *testing.T) {
	// Подготовка
	tracker := newOperationTracker(3)
	now := time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)

	failed := tracker.start(&models.Operation{Kind: models.OperationStatus, IncidentKey: "k0"}, now)
	tracker.finish(failed.ID, errors.New("pg down"), now)
	pending := tracker.start(&models.Operation{Kind: models.OperationNote, IncidentKey: "k0"}, now)

	// Действие
	var committed []*models.Operation
	for i := 0; i < 5; i++ {
		at := now.Add(time.Duration(i+1) * time.Second)
		op := tracker.start(&models.Operation{Kind: models.OperationTeam, IncidentKey: "k1"}, at)
		committed = append(committed, tracker.finish(op.ID, nil, at))
	}

	// Проверки
	kept := tracker.list(models.OperationCommitted)
	require.Len(t, kept, 3)
	assert.Equal(t, committed[2].ID, kept[0].ID)
	assert.Equal(t, committed[4].ID, kept[2].ID)

	_, err := tracker.get(committed[0].ID)
	assert.ErrorIs(t, err, models.ErrOperationNotFound)

	stillFailed, err := tracker.get(failed.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OperationFailed, stillFailed.State)

	stillPending, err := tracker.get(pending.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OperationPending, stillPending.State)
	assert.Len(t, tracker.list(""), 5)
}

func TestOperationTracker_RetriedOperationCountsOnceCommitted(t *testing.T) {
	// Подготовка
	tracker := newOperationTracker(1)
	now := time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)
	op := tracker.start(&models.Operation{Kind: models.OperationStatus, IncidentKey: "k1"}, now)
	tracker.finish(op.ID, errors.New("pg down"), now)

	// Действие
	_, err := tracker.beginRetry(op.ID, now.Add(time.Second))
	require.NoError(t, err)
	done := tracker.finish(op.ID, nil, now.Add(2*time.Second))

	// Проверки
	require.NotNil(t, done)
	assert.Equal(t, models.OperationCommitted, done.State)
	assert.Equal(t, 2, done.Attempts)
	got, err := tracker.get(op.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OperationCommitted, got.State)
}

func TestNewOperationTracker_DefaultLimit(t *testing.T) {
	assert.Equal(t, committedOperationsKept, newOperationTracker(0).committedKeep)
}
