package classifier

import "github.com/shenikar/emergensys/internal/models"

var safetyTips = map[models.Category][]string{
	models.CategoryFire: {
		"Move away from the fire to a safe location",
		"If trapped, stay low to the ground to avoid smoke inhalation",
		"Do not use elevators during a fire emergency",
		"Feel doors before opening them - if hot, find another exit",
	},
	models.CategoryMedical: {
		"Keep the person still and comfortable",
		"For cardiac arrest, perform CPR if trained",
		"For choking, perform the Heimlich maneuver if trained",
		"Monitor breathing and consciousness until help arrives",
	},
	models.CategoryCrime: {
		"Move to a safe location away from the incident",
		"Do not confront suspects",
		"Try to remember identifying details to report",
		"Lock doors and windows if possible",
	},
	models.CategoryTraffic: {
		"Turn on hazard lights and place warning triangles if available",
		"Move to a safe location away from traffic",
		"Do not move seriously injured victims unless immediate danger exists",
		"Use reflective clothing or flashlights at night to be visible",
	},
	models.CategoryNatural: {
		"Move to higher ground during flooding",
		"For earthquakes, drop, cover, and hold on",
		"For tornadoes, seek shelter in an interior room on the lowest floor",
		"Stay away from windows and outside walls during severe weather",
	},
	models.CategoryOther: {
		"Assess the situation for immediate dangers",
		"Help others reach safety if possible",
		"Follow instructions from emergency personnel",
		"Document the incident if safe to do so",
	},
}

// SafetyTips возвращает советы по безопасности для категории
func SafetyTips(c models.Category) []string {
	tips, ok := safetyTips[c]
	if !ok {
		tips = safetyTips[models.CategoryOther]
	}
	return append([]string(nil), tips...)
}

// TipsFor классифицирует тип и возвращает категорию вместе с советами
func TipsFor(incidentType string) (models.Category, []string) {
	c := Classify(incidentType)
	return c, SafetyTips(c)
}
