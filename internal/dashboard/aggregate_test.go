package dashboard

import (
	"math"
	"testing"
	"time"

	"github.com/shenikar/emergensys/internal/models"
	"github.com/stretchr/testify/assert"
)

func ptr(f float64) *float64 { return &f }

func TestAggregate_Empty(t *testing.T) {
	s := NewAggregator(time.UTC).Aggregate(nil)

	assert.Equal(t, 0, s.Total)
	assert.Equal(t, 0, s.Active)
	assert.Len(t, s.ByCategory, 6)
	assert.Len(t, s.BySeverity, 3)
	assert.Len(t, s.AvgResponseTime, 6)
	for _, c := range models.Categories {
		assert.Equal(t, 0, s.ByCategory[c])
		assert.Equal(t, 0.0, s.AvgResponseTime[c])
		assert.False(t, math.IsNaN(s.AvgResponseTime[c]))
	}
	for _, st := range models.Statuses {
		assert.Equal(t, StatusStat{}, s.ByStatus[st])
	}
	assert.Equal(t, [HourBuckets]int{}, s.ByHour)
}

func TestAggregate_Counts(t *testing.T) {
	base := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	incidents := []*models.Incident{
		{Type: "Structure Fire", Severity: models.SeverityHigh, Status: models.StatusNew, Timestamp: base.Add(1 * time.Hour), ResponseTime: ptr(10)},
		{Type: "Vehicle Fire", Severity: models.SeverityMedium, Status: models.StatusResolved, Timestamp: base.Add(2 * time.Hour), ResponseTime: ptr(20)},
		{Type: "Heart Attack", Severity: models.SeverityHigh, Status: models.StatusPending, Timestamp: base.Add(5 * time.Hour), ResponseTime: ptr(6)},
		{Type: "Car Crash", Severity: models.SeverityLow, Status: models.StatusInProgress, Timestamp: base.Add(23 * time.Hour)},
		{Type: "Armed Robbery", Severity: "Critical", Status: models.StatusResolved, Timestamp: base.Add(12 * time.Hour), ResponseTime: ptr(math.NaN())},
		{Type: "Lost Pet", Severity: models.SeverityLow, Status: models.StatusResolved},
	}

	s := NewAggregator(time.UTC).Aggregate(incidents)

	assert.Equal(t, 6, s.Total)
	assert.Equal(t, 3, s.Active)

	assert.Equal(t, 2, s.ByCategory[models.CategoryFire])
	assert.Equal(t, 1, s.ByCategory[models.CategoryMedical])
	assert.Equal(t, 1, s.ByCategory[models.CategoryTraffic])
	assert.Equal(t, 1, s.ByCategory[models.CategoryCrime])
	assert.Equal(t, 0, s.ByCategory[models.CategoryNatural])
	assert.Equal(t, 1, s.ByCategory[models.CategoryOther])

	assert.Equal(t, 2, s.BySeverity[models.SeverityHigh])
	assert.Equal(t, 2, s.BySeverity[models.SeverityMedium])
	assert.Equal(t, 2, s.BySeverity[models.SeverityLow])

	assert.Equal(t, [HourBuckets]int{2, 1, 0, 0, 1, 0, 0, 1}, s.ByHour)

	assert.Equal(t, 15.0, s.AvgResponseTime[models.CategoryFire])
	assert.Equal(t, 6.0, s.AvgResponseTime[models.CategoryMedical])
	assert.Equal(t, 0.0, s.AvgResponseTime[models.CategoryCrime])
	assert.Equal(t, 0.0, s.AvgResponseTime[models.CategoryTraffic])

	assert.Equal(t, StatusStat{Count: 1, Percent: 17}, s.ByStatus[models.StatusNew])
	assert.Equal(t, StatusStat{Count: 1, Percent: 17}, s.ByStatus[models.StatusPending])
	assert.Equal(t, StatusStat{Count: 1, Percent: 17}, s.ByStatus[models.StatusInProgress])
	assert.Equal(t, StatusStat{Count: 3, Percent: 50}, s.ByStatus[models.StatusResolved])
}

func TestAggregate_SumsMatchTotal(t *testing.T) {
	types := []string{"Structure Fire", "Stroke", "Flood", "Road Rage", "Assault", "", "Noise Complaint"}
	severities := []models.Severity{models.SeverityLow, models.SeverityHigh, "", "extreme", models.SeverityMedium}

	var incidents []*models.Incident
	for i := 0; i < 50; i++ {
		incidents = append(incidents, &models.Incident{
			Type:     types[i%len(types)],
			Severity: severities[i%len(severities)],
			Status:   models.Statuses[i%len(models.Statuses)],
		})
	}

	s := Aggregate(incidents)

	sumCategory, sumSeverity := 0, 0
	for _, n := range s.ByCategory {
		sumCategory += n
	}
	for _, n := range s.BySeverity {
		sumSeverity += n
	}
	assert.Equal(t, len(incidents), sumCategory)
	assert.Equal(t, len(incidents), sumSeverity)
	assert.Equal(t, len(incidents), s.Total)
}

func TestAggregate_LocalHour(t *testing.T) {
	manila := time.FixedZone("PHT", 8*60*60)
	// 22:30 UTC = 06:30 в Маниле
	incidents := []*models.Incident{{Timestamp: time.Date(2025, 1, 1, 22, 30, 0, 0, time.UTC)}}

	utc := NewAggregator(time.UTC).Aggregate(incidents)
	local := NewAggregator(manila).Aggregate(incidents)

	assert.Equal(t, 1, utc.ByHour[7])
	assert.Equal(t, 1, local.ByHour[2])
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, Percent(0, 0))
	assert.Equal(t, 0, Percent(5, 0))
	assert.Equal(t, 33, Percent(1, 3))
	assert.Equal(t, 67, Percent(2, 3))
	assert.Equal(t, 50, Percent(1, 2))
	assert.Equal(t, 100, Percent(4, 4))
}
