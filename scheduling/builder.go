package scheduling

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Dosada05/athletics-system/models"
)

var ErrNoEvents = errors.New("no events to schedule")

// EventEntry — конкуренция с числом заявленных участников, вход построителя
// программы.
type EventEntry struct {
	Event             models.Event
	ParticipantsCount int
}

// BuildParams задает параметры генерации программы соревнования.
type BuildParams struct {
	Entries                []EventEntry
	StartTime              time.Time
	BreakMinutes           int
	ParallelFieldEvents    bool
	SeparateCombinedEvents bool
}

// BuildProgram строит упорядоченную программу: для каждой конкуренции —
// последовательность раундов с рассчитанными временами старта и
// длительностями. ScheduleID у пунктов не заполняется, это дело вызывающего.
func BuildProgram(params BuildParams) ([]models.ScheduleItem, error) {
	if len(params.Entries) == 0 {
		return nil, ErrNoEvents
	}
	breakMinutes := params.BreakMinutes
	if breakMinutes <= 0 {
		breakMinutes = DefaultBreakMinutes
	}

	groups, combined := buildGroups(params.Entries, params.ParallelFieldEvents, params.SeparateCombinedEvents)

	items, cursor := layoutGroups(groups, params.StartTime, breakMinutes)

	if len(combined) > 0 {
		// Многоборья идут после всех остальных групп с дополнительной паузой.
		cursor = cursor.Add(time.Duration(combinedExtraGapMinutes) * time.Minute)
		for _, entry := range combined {
			plans := CalculateEventStructure(entry.Event, entry.ParticipantsCount)
			for _, plan := range plans {
				items = append(items, newScheduleItem(entry, plan, cursor))
				cursor = cursor.Add(time.Duration(plan.DurationMinutes+breakMinutes) * time.Minute)
			}
		}
	}

	return items, nil
}

// layoutGroups протягивает курсор таймлайна через группы: последовательные
// группы сдвигают его на сумму длительностей раундов, параллельные — один
// раз, на максимум по группе. Возвращает пункты программы и конец таймлайна.
func layoutGroups(groups []*eventGroup, start time.Time, breakMinutes int) ([]models.ScheduleItem, time.Time) {
	items := make([]models.ScheduleItem, 0, len(groups))
	cursor := start

	for _, group := range groups {
		if group.parallel {
			groupStart := cursor
			maxDuration := 0
			for _, entry := range group.entries {
				total := 0
				for _, plan := range CalculateEventStructure(entry.Event, entry.ParticipantsCount) {
					items = append(items, newScheduleItem(entry, plan, groupStart))
					total += plan.DurationMinutes
				}
				if total > maxDuration {
					maxDuration = total
				}
			}
			cursor = groupStart.Add(time.Duration(maxDuration) * time.Minute)
		} else {
			for _, entry := range group.entries {
				for _, plan := range CalculateEventStructure(entry.Event, entry.ParticipantsCount) {
					items = append(items, newScheduleItem(entry, plan, cursor))
					cursor = cursor.Add(time.Duration(plan.DurationMinutes) * time.Minute)
				}
			}
		}
		cursor = cursor.Add(time.Duration(breakMinutes) * time.Minute)
	}

	return items, cursor
}

func newScheduleItem(entry EventEntry, plan RoundPlan, at time.Time) models.ScheduleItem {
	return models.ScheduleItem{
		EventID:         entry.Event.ID,
		ScheduledTime:   at,
		DurationMinutes: plan.DurationMinutes,
		Round:           plan.Round,
		SeriesCount:     plan.SeriesCount,
		FinalistsCount:  plan.FinalistsCount,
		Notes:           buildNotes(entry.ParticipantsCount, plan),
	}
}

func buildNotes(participantsCount int, plan RoundPlan) string {
	parts := []string{fmt.Sprintf("zawodnicy: %d", participantsCount)}
	if plan.SeriesCount > 1 {
		parts = append(parts, fmt.Sprintf("serie: %d", plan.SeriesCount))
	}
	if plan.FinalistsCount != nil {
		parts = append(parts, fmt.Sprintf("awans: %d", *plan.FinalistsCount))
	}
	return strings.Join(parts, ", ")
}
