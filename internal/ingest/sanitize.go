package ingest

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// maxSanitizePasses ограничивает раскрытие вложенно закодированных сущностей
const maxSanitizePasses = 8

var strictPolicy = bluemonday.StrictPolicy()

// Sanitize убирает разметку из свободного текста и обрезает пробелы.
// StrictPolicy экранирует сущности, поэтому результат раскодируется и проверяется заново,
// пока не перестанет меняться: закодированная разметка вроде &lt;img&gt; тоже удаляется.
// Результат - неподвижная точка, повторный вызов его не меняет.
func Sanitize(s string) string {
	out := strings.TrimSpace(s)
	if out == "" {
		return ""
	}
	for i := 0; i < maxSanitizePasses; i++ {
		next := strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(out)))
		if next == out {
			return out
		}
		out = next
	}
	// кодирование глубже лимита остается экранированным
	return strings.TrimSpace(strictPolicy.Sanitize(out))
}
