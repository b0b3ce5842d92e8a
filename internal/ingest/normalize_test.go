package ingest

import (
	"math"
	"testing"
	"time"

	"github.com/shenikar/emergensys/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"  plain text ", "plain text"},
		{"<b>Fire</b> at <script>alert(1)</script>market", "Fire at market"},
		{"Tom & Jerry's", "Tom & Jerry's"},
		{"&lt;img src=x onerror=alert(1)&gt; fire", "fire"},
		{"&amp;lt;script&amp;gt;alert(1)&amp;lt;/script&amp;gt;smoke", "smoke"},
		{"a &lt; b", "a < b"},
	}
	for _, tt := range tests {
		got := Sanitize(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, got, Sanitize(got), "sanitizing twice changes %q", tt.in)
		assert.NotContains(t, got, "<img")
		assert.NotContains(t, got, "<script")
	}
}

func TestNormalize_SkipsRecordsWithoutKey(t *testing.T) {
	_, ok := Normalize(Record{ReportID: "EM-1"})
	assert.False(t, ok)

	out := NormalizeAll([]Record{{Key: "a"}, {}, {Key: "b"}})
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].Key)
	assert.Equal(t, "b", out[1].Key)
}

func TestNormalize_Defaults(t *testing.T) {
	inc, ok := Normalize(Record{Key: "k1", VictimCount: -3})
	require.True(t, ok)

	assert.Equal(t, "k1", inc.ID, "id falls back to store key")
	assert.Equal(t, models.StatusNew, inc.Status)
	assert.Equal(t, models.SeverityMedium, inc.Severity)
	assert.Equal(t, 0, inc.VictimCount)
	assert.Equal(t, models.AnonymousReporter, inc.ReportedBy.Name)
	assert.Equal(t, models.ContactNotProvided, inc.ReportedBy.Contact)
	assert.False(t, inc.Location.HasCoordinates())
	assert.NotNil(t, inc.Media)
	assert.NotNil(t, inc.StatusHistory)
	assert.NotNil(t, inc.TeamAssignments)
	assert.NotNil(t, inc.Notes)
	assert.Nil(t, inc.ResponseTime)
}

func TestNormalize_Location(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantAddr   string
		wantCoords bool
	}{
		{"with coordinates", `{"address":"Iznart St","coordinates":{"lat":10.7,"lng":122.56,"accuracy":12}}`, "Iznart St", true},
		{"sentinel", `{"address":"Jaro","coordinates":"No precise location provided"}`, "Jaro", false},
		{"null coordinates", `{"address":"Jaro","coordinates":null}`, "Jaro", false},
		{"out of range", `{"address":"x","coordinates":{"lat":123,"lng":0}}`, "x", false},
		{"bare sentinel", `"No precise location provided"`, "", false},
		{"bare address", `"Molo Plaza"`, "Molo Plaza", false},
		{"garbage", `{{{`, "", false},
		{"empty", ``, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inc, ok := Normalize(Record{Key: "k", Location: []byte(tt.raw)})
			require.True(t, ok)
			assert.Equal(t, tt.wantAddr, inc.Location.Address)
			assert.Equal(t, tt.wantCoords, inc.Location.HasCoordinates())
		})
	}
}

func TestNormalize_MediaAndResponseTime(t *testing.T) {
	nan := math.NaN()
	inc, _ := Normalize(Record{
		Key:          "k",
		Media:        []byte(`[{"url":"http://m/1.jpg","type":"image/jpeg","name":"1.jpg","size":10},{"url":""}]`),
		ResponseTime: &nan,
	})
	require.Len(t, inc.Media, 1)
	assert.Equal(t, "1.jpg", inc.Media[0].Name)
	assert.Nil(t, inc.ResponseTime)

	rt := 12.5
	inc, _ = Normalize(Record{Key: "k", Media: []byte(`not json`), ResponseTime: &rt})
	assert.Empty(t, inc.Media)
	require.NotNil(t, inc.ResponseTime)
	assert.Equal(t, 12.5, *inc.ResponseTime)
}

func TestNormalize_StatusAndSeverity(t *testing.T) {
	inc, _ := Normalize(Record{Key: "k", Status: "in-progress", Severity: "HIGH"})
	assert.Equal(t, models.StatusInProgress, inc.Status)
	assert.Equal(t, models.SeverityHigh, inc.Severity)

	inc, _ = Normalize(Record{Key: "k", Status: "Escalated", Severity: "Critical"})
	assert.Equal(t, models.Status("Escalated"), inc.Status)
	assert.Equal(t, models.SeverityMedium, inc.Severity)
}

func TestNormalize_EventsOrderedBySeq(t *testing.T) {
	at := time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)
	inc, _ := Normalize(Record{
		Key: "k",
		Events: []EventRecord{
			{Seq: 4, Kind: "note", Value: "<i>en route</i>", Detail: "ops", At: at},
			{Seq: 2, Kind: "status", Value: "In Progress", At: at},
			{Seq: 1, Kind: "status", Value: "Pending", At: at},
			{Seq: 3, Kind: "team", Value: "ems-1", Detail: "EMS 1", At: at},
			{Seq: 5, Kind: "unknown", Value: "x", At: at},
		},
	})

	require.Len(t, inc.StatusHistory, 2)
	assert.Equal(t, models.StatusPending, inc.StatusHistory[0].Status)
	assert.Equal(t, models.StatusInProgress, inc.StatusHistory[1].Status)
	require.Len(t, inc.TeamAssignments, 1)
	assert.Equal(t, "EMS 1", inc.TeamAssignments[0].TeamName)
	require.Len(t, inc.Notes, 1)
	assert.Equal(t, "en route", inc.Notes[0].Text)
	assert.Equal(t, "ops", inc.Notes[0].Author)
}
