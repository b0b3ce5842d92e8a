package dashboard

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shenikar/emergensys/internal/models"
)

// CSVHeader - фиксированные 9 колонок выгрузки
var CSVHeader = []string{
	"ID",
	"Type",
	"Description",
	"Location",
	"Severity",
	"Status",
	"Reported By",
	"Contact",
	"Timestamp",
}

const exportTimeLayout = "2006-01-02 15:04:05"

// Поля не экранируются: запятые заменяются на ';', переводы строк на пробел.
// Преобразование с потерями, не RFC 4180.
var csvFieldReplacer = strings.NewReplacer(",", ";", "\r\n", " ", "\n", " ", "\r", " ")

// WriteCSV пишет весь набор в порядке входного среза
func WriteCSV(w io.Writer, incidents []*models.Incident, loc *time.Location) error {
	if loc == nil {
		loc = time.Local
	}
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(strings.Join(CSVHeader, ",")); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, inc := range incidents {
		if inc == nil {
			continue
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
		if _, err := bw.WriteString(strings.Join(csvRow(inc, loc), ",")); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

// ExportCSV возвращает выгрузку строкой
func ExportCSV(incidents []*models.Incident, loc *time.Location) string {
	var sb strings.Builder
	// strings.Builder не возвращает ошибок записи
	_ = WriteCSV(&sb, incidents, loc)
	return sb.String()
}

// ExportFileName - имя файла выгрузки на момент now
func ExportFileName(now time.Time) string {
	stamp := strings.NewReplacer(":", "-", ".", "-").Replace(now.UTC().Format("2006-01-02T15:04:05.000Z"))
	return fmt.Sprintf("incidents-export-%s.csv", stamp)
}

func csvRow(inc *models.Incident, loc *time.Location) []string {
	timestamp := ""
	if !inc.Timestamp.IsZero() {
		timestamp = inc.Timestamp.In(loc).Format(exportTimeLayout)
	}
	return []string{
		sanitizeCSVField(inc.ID),
		sanitizeCSVField(inc.Type),
		sanitizeCSVField(inc.Description),
		sanitizeCSVField(inc.Location.Address),
		sanitizeCSVField(string(inc.Severity)),
		sanitizeCSVField(string(inc.Status)),
		sanitizeCSVField(inc.ReportedBy.Name),
		sanitizeCSVField(inc.ReportedBy.Contact),
		timestamp,
	}
}

func sanitizeCSVField(s string) string {
	return csvFieldReplacer.Replace(s)
}
