package dashboard

import (
	"errors"
	"testing"
	"time"

	"github.com/shenikar/emergensys/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_ReplaceAndSnapshotAreCopies(t *testing.T) {
	b := NewBoard()
	src := []*models.Incident{incident("k1", 1, models.StatusNew)}

	snap := b.Replace(src)
	require.Len(t, snap.Incidents, 1)
	assert.Equal(t, uint64(1), snap.Version)

	src[0].Status = models.StatusResolved
	snap.Incidents[0].Status = models.StatusPending

	got, ok := b.Get("k1")
	require.True(t, ok)
	assert.Equal(t, models.StatusNew, got.Status)
}

func TestBoard_Mutate(t *testing.T) {
	b := NewBoard()
	b.Replace([]*models.Incident{incident("k1", 1, models.StatusNew)})

	updated, err := b.Mutate("k1", func(inc *models.Incident) error {
		inc.Status = models.StatusPending
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, updated.Status)
	assert.Equal(t, uint64(2), b.Snapshot().Version)

	_, err = b.Mutate("k1", func(inc *models.Incident) error {
		inc.Status = models.StatusResolved
		return errors.New("refused")
	})
	require.Error(t, err)
	got, _ := b.Get("k1")
	assert.Equal(t, models.StatusPending, got.Status, "failed mutation must not leak")

	_, err = b.Mutate("missing", func(*models.Incident) error { return nil })
	assert.ErrorIs(t, err, models.ErrIncidentNotFound)
}

func TestBoard_Upsert(t *testing.T) {
	b := NewBoard()
	b.Upsert(incident("k1", 1, models.StatusNew))
	b.Upsert(incident("k2", 2, models.StatusNew))
	b.Upsert(incident("k1", 3, models.StatusPending))

	snap := b.Snapshot()
	require.Len(t, snap.Incidents, 2)
	assert.Equal(t, "k1", snap.Incidents[0].Key)
	assert.Equal(t, models.StatusPending, snap.Incidents[0].Status)
}

func TestBoard_Subscribe(t *testing.T) {
	b := NewBoard()
	ch, cancel := b.Subscribe()

	b.Replace([]*models.Incident{incident("k1", 1, models.StatusNew)})
	b.Replace([]*models.Incident{incident("k1", 1, models.StatusNew), incident("k2", 2, models.StatusNew)})

	select {
	case snap := <-ch:
		// медленный подписчик видит только последний снимок
		assert.Equal(t, uint64(2), snap.Version)
		assert.Len(t, snap.Incidents, 2)
	case <-time.After(time.Second):
		t.Fatal("no snapshot delivered")
	}

	cancel()
	_, open := <-ch
	assert.False(t, open)
	cancel()
}
