package scheduling

import (
	"math"
	"strings"
)

const (
	// DefaultLaneCount — вместимость одного забега на стандартной дорожке.
	DefaultLaneCount = 8

	// defaultBaseDuration используется, когда дистанция не распознана.
	defaultBaseDuration = 15

	// interHeatGapMinutes — пауза между сериями одного раунда.
	interHeatGapMinutes = 5

	minFieldDuration     = 30
	fieldMinutesPerEntry = 3.5

	combinedBaseDuration    = 120
	combinedMinutesPerEntry = 10
	combinedExtraGapMinutes = 30

	// DefaultBreakMinutes — пауза между группами конкуренций.
	DefaultBreakMinutes = 15
)

// durationRule связывает подстроку дистанции/имени конкуренции с базовой
// длительностью одного забега в минутах. Проверяется по порядку, первое
// совпадение выигрывает.
type durationRule struct {
	pattern string
	minutes int
}

var baseDurationRules = []durationRule{
	// Эстафеты и барьеры раньше дистанций: "4x100m relay" должен попасть
	// в правило эстафеты, а не в "100m".
	{"relay", 15},
	{"sztafeta", 15},
	{"hurdles", 15},
	{"płotki", 15},
	{"10000m", 90},
	{"5000m", 45},
	{"3000m", 35},
	{"1500m", 25},
	{"800m", 20},
	{"400m", 15},
	{"200m", 12},
	{"100m", 10},
	{"60m", 10},
}

// BaseDuration возвращает базовую длительность одного забега для беговой
// конкуренции, определяя ее по тексту дистанции или имени.
func BaseDuration(disciplineText string) int {
	text := strings.ToLower(disciplineText)
	for _, rule := range baseDurationRules {
		if strings.Contains(text, rule.pattern) {
			return rule.minutes
		}
	}
	return defaultBaseDuration
}

// CalculateTrackEventDuration считает суммарную длительность всех раундов
// беговой конкуренции с паузами между сериями. Значение используется только
// для сводной цифры "сколько займет конкуренция" в отчетах; раскладка по
// таймлайну идет по длительностям отдельных ScheduleItem, которые пауз между
// сериями не включают (см. DESIGN.md, Open Questions).
func CalculateTrackEventDuration(disciplineText string, participantsCount int) int {
	base := BaseDuration(disciplineText)
	total := 0
	for _, plan := range trackRoundPlans(participantsCount, base) {
		total += plan.DurationMinutes
		if plan.SeriesCount > 1 {
			total += (plan.SeriesCount - 1) * interHeatGapMinutes
		}
	}
	return total
}

// FieldEventDuration — длительность технической конкуренции; растет с числом
// участников, а не с числом серий.
func FieldEventDuration(participantsCount int) int {
	scaled := int(math.Ceil(float64(participantsCount) * fieldMinutesPerEntry))
	if scaled < minFieldDuration {
		return minFieldDuration
	}
	return scaled
}

// CombinedEventDuration — длительность многоборья.
func CombinedEventDuration(participantsCount int) int {
	scaled := participantsCount * combinedMinutesPerEntry
	if scaled < combinedBaseDuration {
		return combinedBaseDuration
	}
	return scaled
}
