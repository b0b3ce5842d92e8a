// Package classifier выводит грубую категорию происшествия из свободного текста его типа.
package classifier

import (
	"strings"

	"github.com/shenikar/emergensys/internal/models"
)

type rule struct {
	category models.Category
	keywords []string
}

// rules проверяются строго по порядку: первое совпадение выигрывает.
// "Vehicle Fire" должно попасть в Fire, а не в Traffic.
// Сравнение чувствительно к регистру: "Car" не должно ловить "cardiac".
var rules = []rule{
	{models.CategoryFire, []string{"Fire", "Explosion"}},
	{models.CategoryMedical, []string{"Heart", "Stroke", "Breathing", "Bleeding", "Unconscious", "Childbirth", "Poisoning", "Allergic"}},
	{models.CategoryTraffic, []string{"Car", "Vehicle", "Crash", "Hit", "Road", "Traffic", "Pedestrian"}},
	{models.CategoryCrime, []string{"Assault", "Robbery", "Break", "Shooting", "Violence", "Suspicious"}},
	{models.CategoryNatural, []string{"Flood", "Earthquake", "Landslide", "Tornado", "Hurricane", "Weather", "Disaster"}},
}

// Classify возвращает категорию для типа происшествия. Всегда возвращает значение, по умолчанию Other.
func Classify(incidentType string) models.Category {
	if incidentType == "" {
		return models.CategoryOther
	}
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(incidentType, kw) {
				return r.category
			}
		}
	}
	return models.CategoryOther
}

// Keywords возвращает ключевые слова категории в порядке проверки
func Keywords(c models.Category) []string {
	for _, r := range rules {
		if r.category == c {
			return append([]string(nil), r.keywords...)
		}
	}
	return nil
}
