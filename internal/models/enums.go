package models

import "strings"

// Status - состояние инцидента в жизненном цикле реагирования
type Status string

const (
	StatusNew        Status = "New"
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusResolved   Status = "Resolved"
)

// Statuses перечисляет известные статусы в порядке убывания приоритета
var Statuses = []Status{StatusNew, StatusPending, StatusInProgress, StatusResolved}

// Priority возвращает приоритет реагирования. Неизвестные статусы получают 0.
func (s Status) Priority() int {
	switch s {
	case StatusNew:
		return 3
	case StatusPending:
		return 2
	case StatusInProgress:
		return 1
	default:
		return 0
	}
}

// Valid сообщает, является ли статус одним из известных
func (s Status) Valid() bool {
	_, ok := ParseStatus(string(s))
	return ok
}

// ParseStatus разбирает статус без учета регистра; "in_progress" и "in-progress" тоже допустимы
func ParseStatus(raw string) (Status, bool) {
	norm := strings.ToLower(strings.TrimSpace(raw))
	norm = strings.NewReplacer("_", " ", "-", " ").Replace(norm)
	for _, s := range Statuses {
		if strings.ToLower(string(s)) == norm {
			return s, true
		}
	}
	return Status(strings.TrimSpace(raw)), false
}

// Severity - тяжесть происшествия
type Severity string

const (
	SeverityLow    Severity = "Low"
	SeverityMedium Severity = "Medium"
	SeverityHigh   Severity = "High"
)

var Severities = []Severity{SeverityLow, SeverityMedium, SeverityHigh}

// ParseSeverity разбирает тяжесть без учета регистра
func ParseSeverity(raw string) (Severity, bool) {
	norm := strings.ToLower(strings.TrimSpace(raw))
	for _, s := range Severities {
		if strings.ToLower(string(s)) == norm {
			return s, true
		}
	}
	return "", false
}

// NormalizeSeverity приводит тяжесть к одному из трех значений, по умолчанию Medium
func NormalizeSeverity(raw string) Severity {
	if s, ok := ParseSeverity(raw); ok {
		return s
	}
	return SeverityMedium
}

// Category - грубая классификация, выводимая из типа происшествия
type Category string

const (
	CategoryFire    Category = "Fire"
	CategoryMedical Category = "Medical"
	CategoryCrime   Category = "Crime"
	CategoryTraffic Category = "Traffic"
	CategoryNatural Category = "Natural"
	CategoryOther   Category = "Other"
)

// Categories - порядок категорий для отображения
var Categories = []Category{
	CategoryFire,
	CategoryMedical,
	CategoryCrime,
	CategoryTraffic,
	CategoryNatural,
	CategoryOther,
}
