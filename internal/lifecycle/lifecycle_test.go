package lifecycle

import (
	"errors"
	"testing"
	"time"

	"github.com/shenikar/emergensys/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMachine(policy Policy, start time.Time) *Machine {
	m := NewMachine(policy)
	tick := start
	m.now = func() time.Time {
		tick = tick.Add(time.Minute)
		return tick
	}
	return m
}

func TestMachine_SetStatusAppendsExactlyOne(t *testing.T) {
	m := newTestMachine(nil, time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC))
	inc := &models.Incident{Status: models.StatusNew}

	sequence := []string{"Pending", "in_progress", "Resolved", "New", "Resolved"}
	for i, raw := range sequence {
		before := make([]models.StatusChange, len(inc.StatusHistory))
		copy(before, inc.StatusHistory)

		entry, err := m.SetStatus(inc, raw)
		require.NoError(t, err)

		require.Len(t, inc.StatusHistory, i+1)
		assert.Equal(t, before, inc.StatusHistory[:i], "prior entries must not change")
		assert.Equal(t, entry, inc.StatusHistory[i])
		assert.Equal(t, entry.Status, inc.Status)
	}
	assert.Equal(t, models.StatusResolved, inc.Status)
}

func TestMachine_SetStatusSameStatusStillAppends(t *testing.T) {
	m := newTestMachine(nil, time.Now())
	inc := &models.Incident{Status: models.StatusPending}

	_, err := m.SetStatus(inc, "Pending")
	require.NoError(t, err)
	_, err = m.SetStatus(inc, "Pending")
	require.NoError(t, err)

	assert.Len(t, inc.StatusHistory, 2)
}

func TestMachine_SetStatusUnknown(t *testing.T) {
	m := newTestMachine(nil, time.Now())
	inc := &models.Incident{Status: models.StatusNew}

	_, err := m.SetStatus(inc, "Escalated")
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrValidation))
	assert.Empty(t, inc.StatusHistory)
	assert.Equal(t, models.StatusNew, inc.Status)
}

func TestMachine_StrictPolicy(t *testing.T) {
	m := newTestMachine(NewTablePolicy(StrictTransitions), time.Now())
	inc := &models.Incident{Status: models.StatusNew}

	_, err := m.SetStatus(inc, "Resolved")
	require.NoError(t, err)

	_, err = m.SetStatus(inc, "New")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrTransitionNotAllowed)
	assert.Len(t, inc.StatusHistory, 1)
	assert.Equal(t, models.StatusResolved, inc.Status)
}

func TestPolicyByName(t *testing.T) {
	p, err := PolicyByName("")
	require.NoError(t, err)
	assert.IsType(t, Permissive{}, p)

	p, err = PolicyByName(" Strict ")
	require.NoError(t, err)
	assert.ErrorIs(t, p.Allow(models.StatusResolved, models.StatusPending), models.ErrTransitionNotAllowed)
	assert.NoError(t, p.Allow(models.StatusInProgress, models.StatusResolved))

	_, err = PolicyByName("chaos")
	assert.Error(t, err)
}

func TestMachine_AssignTeamDoesNotTouchStatus(t *testing.T) {
	m := newTestMachine(nil, time.Now())
	inc := &models.Incident{Status: models.StatusPending}

	_, err := m.AssignTeam(inc, "bfp-iloilo", "")
	require.NoError(t, err)
	entry, err := m.AssignTeam(inc, "ems-2", "EMS Unit 2")
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, inc.Status)
	assert.Empty(t, inc.StatusHistory)
	require.Len(t, inc.TeamAssignments, 2)
	assert.Equal(t, "bfp-iloilo", inc.TeamAssignments[0].TeamName)
	assert.Equal(t, entry, inc.TeamAssignments[1])
	assert.Equal(t, "ems-2", inc.AssignedTeam)
	assert.Equal(t, "EMS Unit 2", inc.AssignedTeamName)

	_, err = m.AssignTeam(inc, "  ", "")
	assert.ErrorIs(t, err, models.ErrValidation)
	assert.Len(t, inc.TeamAssignments, 2)
}

func TestMachine_AddNote(t *testing.T) {
	m := newTestMachine(nil, time.Now())
	inc := &models.Incident{}

	note, err := m.AddNote(inc, "", "  caller called back  ")
	require.NoError(t, err)
	assert.Equal(t, SystemAuthor, note.Author)
	assert.Equal(t, "caller called back", note.Text)

	_, err = m.AddNote(inc, "dispatcher", "")
	assert.ErrorIs(t, err, models.ErrValidation)
	assert.Len(t, inc.Notes, 1)
}

func TestApply_IsIdempotent(t *testing.T) {
	at := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	op := &models.Operation{
		Kind:         models.OperationStatus,
		StatusChange: &models.StatusChange{At: at, Status: models.StatusInProgress},
	}
	inc := &models.Incident{Status: models.StatusNew}

	Apply(inc, op)
	Apply(inc, op)

	assert.Equal(t, models.StatusInProgress, inc.Status)
	assert.Len(t, inc.StatusHistory, 1)

	Apply(inc, &models.Operation{Kind: models.OperationNote, Note: &models.Note{At: at, Author: "a", Text: "b"}})
	Apply(inc, &models.Operation{Kind: models.OperationTeam, TeamAssignment: &models.TeamAssignment{At: at, TeamID: "t"}})
	assert.Len(t, inc.Notes, 1)
	assert.Equal(t, "t", inc.AssignedTeam)
}

func TestMachine_SetLocation(t *testing.T) {
	m := newTestMachine(nil, time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC))
	inc := &models.Incident{Location: models.Location{Address: "12 Main St"}, Status: models.StatusPending}

	change, err := m.SetLocation(inc, "", &models.Coordinates{Lat: 10.7, Lng: 122.56, Accuracy: 15})
	require.NoError(t, err)
	assert.Equal(t, "12 Main St", inc.Location.Address, "empty address keeps the previous one")
	require.NotNil(t, inc.Location.Coordinates)
	assert.Equal(t, models.SourceDevice, inc.Location.Coordinates.Source)
	require.NotNil(t, inc.LocationUpdatedAt)
	assert.True(t, inc.LocationUpdatedAt.Equal(change.At))
	assert.Equal(t, models.StatusPending, inc.Status)
	assert.Empty(t, inc.StatusHistory)

	// удаление координат оставляет метку "нет координат"
	_, err = m.SetLocation(inc, "Corner of Iznart St", nil)
	require.NoError(t, err)
	assert.Nil(t, inc.Location.Coordinates)
	assert.Equal(t, "Corner of Iznart St", inc.Location.Address)

	_, err = m.SetLocation(inc, "", &models.Coordinates{Lat: 91, Lng: 0})
	assert.ErrorIs(t, err, models.ErrValidation)
	assert.Equal(t, "Corner of Iznart St", inc.Location.Address)
}

func TestApply_LocationDoesNotOverrideNewerChange(t *testing.T) {
	older := time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)
	newer := older.Add(time.Minute)
	inc := &models.Incident{
		Location:          models.Location{Address: "new"},
		LocationUpdatedAt: &newer,
	}

	Apply(inc, &models.Operation{
		Kind:           models.OperationLocation,
		LocationChange: &models.LocationChange{At: older, Location: models.Location{Address: "old"}},
	})
	assert.Equal(t, "new", inc.Location.Address)

	Apply(inc, &models.Operation{
		Kind:           models.OperationLocation,
		LocationChange: &models.LocationChange{At: newer, Location: models.Location{Address: "same instant"}},
	})
	assert.Equal(t, "same instant", inc.Location.Address)
}

func TestTimeline_MergedNewestFirst(t *testing.T) {
	base := time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)
	inc := &models.Incident{
		Status:    models.StatusInProgress,
		Timestamp: base,
		StatusHistory: []models.StatusChange{
			{At: base.Add(1 * time.Minute), Status: models.StatusPending},
			{At: base.Add(5 * time.Minute), Status: models.StatusInProgress},
		},
		TeamAssignments: []models.TeamAssignment{
			{At: base.Add(3 * time.Minute), TeamID: "ems-1", TeamName: "EMS 1"},
		},
		Notes: []models.Note{
			{At: base.Add(5 * time.Minute), Author: "System", Text: "en route"},
			{At: base.Add(2 * time.Minute), Author: "ops", Text: "caller confirmed"},
		},
	}

	tl := Timeline(inc)
	require.Len(t, tl, 5)

	kinds := make([]EntryKind, len(tl))
	for i, e := range tl {
		kinds[i] = e.Kind
		if i > 0 {
			assert.False(t, e.At.After(tl[i-1].At), "timeline must be newest first")
		}
	}
	assert.Equal(t, []EntryKind{EntryStatus, EntryNote, EntryTeam, EntryNote, EntryStatus}, kinds)
	assert.Equal(t, models.StatusInProgress, tl[0].Status)
	assert.Equal(t, "en route", tl[1].Text)
}

func TestTimeline_EmptyHistory(t *testing.T) {
	created := time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)
	tl := Timeline(&models.Incident{Status: models.StatusNew, Timestamp: created})

	require.Len(t, tl, 1)
	assert.Equal(t, EntryStatus, tl[0].Kind)
	assert.Equal(t, models.StatusNew, tl[0].Status)
	assert.Equal(t, created, tl[0].At)
}
