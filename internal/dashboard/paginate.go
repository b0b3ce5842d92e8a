package dashboard

import "github.com/shenikar/emergensys/internal/models"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Page - страница таблицы последних инцидентов
type Page struct {
	Items      []*models.Incident `json:"items"`
	Page       int                `json:"page"`
	PageSize   int                `json:"pageSize"`
	Total      int                `json:"total"`
	TotalPages int                `json:"totalPages"`
	HasPrev    bool               `json:"hasPrev"`
	HasNext    bool               `json:"hasNext"`
}

// Paginate режет упорядоченный набор на страницы. Страница за концом набора пуста.
func Paginate(incidents []*models.Incident, page, pageSize, defaultPageSize int) Page {
	if defaultPageSize < 1 || defaultPageSize > MaxPageSize {
		defaultPageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		pageSize = defaultPageSize
	}

	total := len(incidents)
	totalPages := (total + pageSize - 1) / pageSize

	// страница за концом не умножается: (page-1)*pageSize переполняется на больших page
	start, end := total, total
	if page <= totalPages {
		start = (page - 1) * pageSize
		end = min(start+pageSize, total)
	}

	items := incidents[start:end:end]
	if items == nil {
		items = []*models.Incident{}
	}

	return Page{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
}
