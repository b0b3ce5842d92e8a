package dashboard

import (
	"math"
	"time"

	"github.com/shenikar/emergensys/internal/classifier"
	"github.com/shenikar/emergensys/internal/models"
)

// HourBuckets - число трехчасовых окон в сутках
const HourBuckets = 8

// StatusStat - количество и доля инцидентов в статусе
type StatusStat struct {
	Count   int `json:"count"`
	Percent int `json:"percent"`
}

// Summary - плоская сводка для графиков и счетчиков панели
type Summary struct {
	Total           int                          `json:"total"`
	Active          int                          `json:"active"`
	ByCategory      map[models.Category]int      `json:"byCategory"`
	BySeverity      map[models.Severity]int      `json:"bySeverity"`
	ByHour          [HourBuckets]int             `json:"byHour"`
	AvgResponseTime map[models.Category]float64  `json:"avgResponseTime"`
	ByStatus        map[models.Status]StatusStat `json:"byStatus"`
}

// Aggregator считает сводку в заданном часовом поясе
type Aggregator struct {
	loc *time.Location
}

// NewAggregator создает агрегатор; nil означает локальный пояс процесса
func NewAggregator(loc *time.Location) *Aggregator {
	if loc == nil {
		loc = time.Local
	}
	return &Aggregator{loc: loc}
}

// Aggregate считает сводку в локальном поясе процесса
func Aggregate(incidents []*models.Incident) Summary {
	return NewAggregator(nil).Aggregate(incidents)
}

// Aggregate считает все счетчики за один проход. Пустой набор дает нули во всех корзинах.
func (a *Aggregator) Aggregate(incidents []*models.Incident) Summary {
	s := Summary{
		ByCategory:      make(map[models.Category]int, len(models.Categories)),
		BySeverity:      make(map[models.Severity]int, len(models.Severities)),
		AvgResponseTime: make(map[models.Category]float64, len(models.Categories)),
		ByStatus:        make(map[models.Status]StatusStat, len(models.Statuses)),
	}
	for _, c := range models.Categories {
		s.ByCategory[c] = 0
		s.AvgResponseTime[c] = 0
	}
	for _, sev := range models.Severities {
		s.BySeverity[sev] = 0
	}

	responseSums := make(map[models.Category]float64, len(models.Categories))
	responseCounts := make(map[models.Category]int, len(models.Categories))
	statusCounts := make(map[models.Status]int, len(models.Statuses))

	for _, inc := range incidents {
		if inc == nil {
			continue
		}
		s.Total++
		if inc.IsActive() {
			s.Active++
		}

		category := classifier.Classify(inc.Type)
		s.ByCategory[category]++
		s.BySeverity[models.NormalizeSeverity(string(inc.Severity))]++
		statusCounts[inc.Status]++

		if !inc.Timestamp.IsZero() {
			hour := inc.Timestamp.In(a.loc).Hour()
			s.ByHour[hour/3]++
		}

		if rt := inc.ResponseTime; rt != nil && !math.IsNaN(*rt) && !math.IsInf(*rt, 0) {
			responseSums[category] += *rt
			responseCounts[category]++
		}
	}

	for c, n := range responseCounts {
		if n > 0 {
			s.AvgResponseTime[c] = responseSums[c] / float64(n)
		}
	}

	for _, st := range models.Statuses {
		s.ByStatus[st] = StatusStat{
			Count:   statusCounts[st],
			Percent: Percent(statusCounts[st], s.Total),
		}
	}

	return s
}

// Percent возвращает count/total*100, округленное до целого. При total == 0 возвращает 0.
func Percent(count, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}
