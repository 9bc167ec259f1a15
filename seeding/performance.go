package seeding

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Dosada05/athletics-system/models"
)

var ErrMalformedPerformance = errors.New("malformed performance value")

// Participant — участник одного раунда конкуренции с заявочным результатом.
type Participant struct {
	AthleteID       int
	Surname         string
	BibNumber       *int
	SeedPerformance *string
}

// ParsePerformance переводит текст заявочного результата в сравнимое число:
// секунды для времени, метры для дистанций/высот, очки для многоборий.
// Поддерживаются формы SS.CC, MM:SS.CC, HH:MM:SS.CC, "7.20m", "7,20".
func ParsePerformance(text string, unit models.ResultUnit) (float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, ErrMalformedPerformance
	}

	if unit == models.UnitTime {
		return parseTime(text)
	}
	return parseNumeric(text)
}

func parseTime(text string) (float64, error) {
	parts := strings.Split(text, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedPerformance, text)
	}

	total := 0.0
	for _, part := range parts {
		value, err := strconv.ParseFloat(strings.Replace(part, ",", ".", 1), 64)
		if err != nil || value < 0 {
			return 0, fmt.Errorf("%w: %q", ErrMalformedPerformance, text)
		}
		total = total*60 + value
	}
	return total, nil
}

// parseNumeric принимает число с необязательным текстовым суффиксом единицы
// ("7.20m", "62.15 m", "7,20").
func parseNumeric(text string) (float64, error) {
	text = strings.Replace(text, ",", ".", 1)
	end := 0
	for end < len(text) {
		c := text[end]
		if (c >= '0' && c <= '9') || c == '.' {
			end++
			continue
		}
		break
	}
	if end == 0 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedPerformance, text)
	}
	value, err := strconv.ParseFloat(text[:end], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedPerformance, text)
	}
	return value, nil
}

// ranked — участник с разобранным результатом; malformed участники остаются
// в посеве, но всегда позади разобранных (политика "одна плохая строка не
// валит весь протокол").
type ranked struct {
	Participant
	seed      float64
	malformed bool
}

// rankBySeed сортирует участников от лучшего к худшему согласно единице
// результата. Сортировка стабильная: участники без результата сохраняют
// исходный порядок в хвосте.
func rankBySeed(participants []Participant, unit models.ResultUnit) []ranked {
	out := make([]ranked, 0, len(participants))
	for _, p := range participants {
		r := ranked{Participant: p, malformed: true}
		if p.SeedPerformance != nil {
			if seed, err := ParsePerformance(*p.SeedPerformance, unit); err == nil {
				r.seed = seed
				r.malformed = false
			}
		}
		out = append(out, r)
	}

	lowerIsBetter := unit == models.UnitTime
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].malformed != out[j].malformed {
			return !out[i].malformed
		}
		if out[i].malformed {
			return false
		}
		if lowerIsBetter {
			return out[i].seed < out[j].seed
		}
		return out[i].seed > out[j].seed
	})
	return out
}
