package scheduling

import (
	"fmt"
	"strings"

	"github.com/Dosada05/athletics-system/models"
)

// Семейство технической конкуренции определяется по подстрокам в тексте
// дистанции/имени. Таблица — единственное место, где живет эта эвристика.
var (
	jumpKeywords = []string{
		"skok", "wzwyż", "w dal", "trójskok", "tyczk",
		"jump", "vault",
	}
	throwKeywords = []string{
		"rzut", "pchnięcie", "kula", "dysk", "oszczep", "młot",
		"throw", "shot", "put", "discus", "javelin", "hammer",
	}
)

type fieldFamily string

const (
	familyJump  fieldFamily = "jump"
	familyThrow fieldFamily = "throw"
	familyOther fieldFamily = "other"
)

func detectFieldFamily(event models.Event) fieldFamily {
	text := strings.ToLower(event.DisciplineText())
	for _, kw := range jumpKeywords {
		if strings.Contains(text, kw) {
			return familyJump
		}
	}
	for _, kw := range throwKeywords {
		if strings.Contains(text, kw) {
			return familyThrow
		}
	}
	return familyOther
}

// eventGroup — единица раскладки по таймлайну. Беговые конкуренции образуют
// группы из одного элемента (дорожка занята последовательно); технические
// группируются по (семейство, пол, категория) и при parallel=true стартуют
// одновременно.
type eventGroup struct {
	entries  []EventEntry
	parallel bool
}

func fieldGroupKey(event models.Event) string {
	return fmt.Sprintf("%s|%s|%s", detectFieldFamily(event), event.Gender, event.Category)
}

// buildGroups раскладывает конкуренции по группам в порядке их появления.
// Многоборья сюда не попадают, когда separateCombined=true — они
// планируются отдельным хвостом.
func buildGroups(entries []EventEntry, parallelField, separateCombined bool) (groups []*eventGroup, combined []EventEntry) {
	fieldGroups := make(map[string]*eventGroup)

	for _, entry := range entries {
		switch entry.Event.Type {
		case models.EventCombined:
			if separateCombined {
				combined = append(combined, entry)
				continue
			}
			groups = append(groups, &eventGroup{entries: []EventEntry{entry}})
		case models.EventField:
			if !parallelField {
				groups = append(groups, &eventGroup{entries: []EventEntry{entry}})
				continue
			}
			key := fieldGroupKey(entry.Event)
			group, ok := fieldGroups[key]
			if !ok {
				group = &eventGroup{parallel: true}
				fieldGroups[key] = group
				groups = append(groups, group)
			}
			group.entries = append(group.entries, entry)
		default:
			groups = append(groups, &eventGroup{entries: []EventEntry{entry}})
		}
	}
	return groups, combined
}
