package classifier

import (
	"testing"

	"github.com/shenikar/emergensys/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		incidentType string
		want         models.Category
	}{
		{"structure fire", "Structure Fire", models.CategoryFire},
		{"fire wins over traffic", "Vehicle Fire", models.CategoryFire},
		{"explosion", "Gas Explosion", models.CategoryFire},
		{"explosion wins over crime", "Suspicious Explosion", models.CategoryFire},
		{"heart attack", "Heart Attack", models.CategoryMedical},
		{"medical wins over traffic", "Bleeding after Car Crash", models.CategoryMedical},
		{"car crash", "Car Crash", models.CategoryTraffic},
		{"pedestrian", "Pedestrian Hit", models.CategoryTraffic},
		{"traffic wins over crime", "Hit and Run Assault", models.CategoryTraffic},
		{"robbery", "Armed Robbery", models.CategoryCrime},
		{"break-in", "Break-in", models.CategoryCrime},
		{"flood", "Flash Flood", models.CategoryNatural},
		{"disaster", "Disaster Evacuation", models.CategoryNatural},
		{"unknown", "Lost Pet", models.CategoryOther},
		{"empty", "", models.CategoryOther},
		{"case sensitive", "cardiac arrest", models.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.incidentType))
		})
	}
}

func TestClassify_FireKeywordAlwaysWins(t *testing.T) {
	others := []string{"Heart", "Car", "Assault", "Flood", "Crash", "Weather"}
	for _, fireKw := range Keywords(models.CategoryFire) {
		for _, other := range others {
			assert.Equal(t, models.CategoryFire, Classify(other+" "+fireKw), "type %q", other+" "+fireKw)
			assert.Equal(t, models.CategoryFire, Classify(fireKw+" "+other), "type %q", fireKw+" "+other)
		}
	}
}

func TestClassify_Deterministic(t *testing.T) {
	for i := 0; i < 10; i++ {
		assert.Equal(t, models.CategoryTraffic, Classify("Road Accident"))
	}
}

func TestSafetyTips(t *testing.T) {
	for _, c := range models.Categories {
		tips := SafetyTips(c)
		assert.Len(t, tips, 4, "category %s", c)
	}

	category, tips := TipsFor("Kitchen Fire")
	assert.Equal(t, models.CategoryFire, category)
	assert.Contains(t, tips, "Do not use elevators during a fire emergency")

	// Изменение копии не должно затрагивать таблицу
	tips[0] = "changed"
	assert.NotEqual(t, "changed", SafetyTips(models.CategoryFire)[0])

	assert.Equal(t, SafetyTips(models.CategoryOther), SafetyTips(models.Category("Unknown")))
}
