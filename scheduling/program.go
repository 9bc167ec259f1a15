package scheduling

import (
	"fmt"
	"strings"

	"github.com/Dosada05/athletics-system/models"
)

// MinuteProgramGroup — одна временная отметка минутной программы со всеми
// пунктами, стартующими в эту минуту.
type MinuteProgramGroup struct {
	Time   string               `json:"time"`
	Events []MinuteProgramEntry `json:"events"`
}

type MinuteProgramEntry struct {
	EventID     int    `json:"event_id"`
	Name        string `json:"name"`
	Round       string `json:"round"`
	SeriesCount int    `json:"series_count"`
	Notes       string `json:"notes,omitempty"`
}

// defaultCategory не выводится в имени конкуренции.
const defaultCategory = "senior"

// RoundLabel возвращает польское имя раунда; при нескольких сериях
// добавляется их число ("eliminacje – 3 serie").
func RoundLabel(round models.EventRound, seriesCount int) string {
	var label string
	switch round {
	case models.RoundQualification:
		label = "eliminacje"
	case models.RoundSemifinal:
		label = "półfinał"
	case models.RoundFinal:
		label = "finał"
	default:
		label = string(round)
	}
	if seriesCount > 1 {
		label = fmt.Sprintf("%s – %d %s", label, seriesCount, seriesWord(seriesCount))
	}
	return label
}

// seriesWord — польская форма множественного числа слова "seria".
func seriesWord(n int) string {
	if n >= 2 && n <= 4 {
		return "serie"
	}
	return "serii"
}

// FormatEventName — "дистанция-или-имя + буква пола + категория, если она не
// сениорская": "100m M", "skok w dal K (U18)".
func FormatEventName(event models.Event) string {
	name := event.DisciplineText()
	if g := genderLetter(event.Gender); g != "" {
		name += " " + g
	}
	if event.Category != "" && !strings.EqualFold(event.Category, defaultCategory) {
		name += fmt.Sprintf(" (%s)", event.Category)
	}
	return name
}

func genderLetter(gender string) string {
	switch strings.ToLower(gender) {
	case "male", "m", "men":
		return "M"
	case "female", "k", "w", "women":
		return "K"
	case "mixed", "mix":
		return "MIX"
	}
	return strings.ToUpper(gender)
}

// GroupItemsByTime группирует пункты программы (уже отсортированные по
// времени) по локальному времени старта HH:MM. Пункты без загруженной
// конкуренции получают имя-заглушку по ID.
func GroupItemsByTime(items []models.ScheduleItem) []MinuteProgramGroup {
	groups := make([]MinuteProgramGroup, 0)
	var current *MinuteProgramGroup

	for _, item := range items {
		timeLabel := item.ScheduledTime.Local().Format("15:04")
		if current == nil || current.Time != timeLabel {
			groups = append(groups, MinuteProgramGroup{Time: timeLabel})
			current = &groups[len(groups)-1]
		}

		name := fmt.Sprintf("konkurencja #%d", item.EventID)
		if item.Event != nil {
			name = FormatEventName(*item.Event)
		}
		current.Events = append(current.Events, MinuteProgramEntry{
			EventID:     item.EventID,
			Name:        name,
			Round:       RoundLabel(item.Round, item.SeriesCount),
			SeriesCount: item.SeriesCount,
			Notes:       item.Notes,
		})
	}

	return groups
}
