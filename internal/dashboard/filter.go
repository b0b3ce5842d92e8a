// Package dashboard содержит чистые функции панели диспетчера: фильтрацию, сортировку,
// пагинацию, агрегаты и выгрузку, а также контейнер состояния со снимками.
package dashboard

import (
	"sort"
	"strings"

	"github.com/shenikar/emergensys/internal/models"
)

// StatusAll - значение фильтра статуса без ограничения
const StatusAll = "all"

// FilterConfig - поисковая строка и фильтр статуса
type FilterConfig struct {
	Status string `json:"status"`
	Search string `json:"search"`
}

// View - два упорядоченных представления набора инцидентов
type View struct {
	// Filtered - все найденные инциденты, новые сверху
	Filtered []*models.Incident `json:"filtered"`
	// Active - нерешенные инциденты из Filtered по приоритету статуса, затем новые сверху
	Active []*models.Incident `json:"active"`
}

// Filter применяет поиск и фильтр статуса. Входной срез не изменяется.
func Filter(incidents []*models.Incident, cfg FilterConfig) View {
	search := strings.ToLower(strings.TrimSpace(cfg.Search))

	filtered := make([]*models.Incident, 0, len(incidents))
	for _, inc := range incidents {
		if inc == nil {
			continue
		}
		if search == "" || matches(inc, search) {
			filtered = append(filtered, inc)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Timestamp.After(filtered[j].Timestamp)
	})

	statusFilter, all := parseStatusFilter(cfg.Status)
	active := make([]*models.Incident, 0, len(filtered))
	for _, inc := range filtered {
		if !inc.IsActive() {
			continue
		}
		if !all && inc.Status != statusFilter {
			continue
		}
		active = append(active, inc)
	}

	// filtered уже упорядочен по времени, поэтому стабильная сортировка по приоритету
	// сохраняет убывание времени внутри одного статуса
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Status.Priority() > active[j].Status.Priority()
	})

	return View{Filtered: filtered, Active: active}
}

func parseStatusFilter(raw string) (models.Status, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.EqualFold(trimmed, StatusAll) {
		return "", true
	}
	status, _ := models.ParseStatus(trimmed)
	return status, false
}

func matches(inc *models.Incident, search string) bool {
	fields := []string{
		inc.Type,
		inc.Description,
		inc.Location.Address,
		inc.ID,
		inc.ReportedBy.Name,
	}
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), search) {
			return true
		}
	}
	return false
}
