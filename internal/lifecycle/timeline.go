package lifecycle

import (
	"sort"
	"time"

	"github.com/shenikar/emergensys/internal/models"
)

type EntryKind string

const (
	EntryStatus EntryKind = "status"
	EntryTeam   EntryKind = "team"
	EntryNote   EntryKind = "note"
)

// TimelineEntry - одна строка хронологии инцидента
type TimelineEntry struct {
	At       time.Time     `json:"at"`
	Kind     EntryKind     `json:"kind"`
	Status   models.Status `json:"status,omitempty"`
	TeamID   string        `json:"teamId,omitempty"`
	TeamName string        `json:"teamName,omitempty"`
	Author   string        `json:"author,omitempty"`
	Text     string        `json:"text,omitempty"`
}

// Timeline сливает журналы статусов, бригад и заметок, новые сверху.
// При равном времени сохраняется порядок статус, бригада, заметка и порядок внутри журнала.
// Пустая история дает одну запись с текущим статусом на момент создания.
func Timeline(inc *models.Incident) []TimelineEntry {
	entries := make([]TimelineEntry, 0, len(inc.StatusHistory)+len(inc.TeamAssignments)+len(inc.Notes))
	for _, s := range inc.StatusHistory {
		entries = append(entries, TimelineEntry{At: s.At, Kind: EntryStatus, Status: s.Status})
	}
	for _, t := range inc.TeamAssignments {
		entries = append(entries, TimelineEntry{At: t.At, Kind: EntryTeam, TeamID: t.TeamID, TeamName: t.TeamName})
	}
	for _, n := range inc.Notes {
		entries = append(entries, TimelineEntry{At: n.At, Kind: EntryNote, Author: n.Author, Text: n.Text})
	}

	if len(entries) == 0 {
		return []TimelineEntry{{At: inc.Timestamp, Kind: EntryStatus, Status: inc.Status}}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].At.After(entries[j].At)
	})
	return entries
}
