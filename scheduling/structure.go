package scheduling

import (
	"github.com/Dosada05/athletics-system/models"
)

// RoundPlan описывает один раунд конкуренции: число серий, число проходящих
// дальше (nil для финала) и расчетную длительность раунда.
type RoundPlan struct {
	Round           models.EventRound
	SeriesCount     int
	FinalistsCount  *int
	DurationMinutes int
}

// CalculateEventStructure строит структуру раундов конкуренции по числу
// заявленных участников. Беговые конкуренции при <=8 участниках идут сразу
// финалом; технические и многоборья всегда дают один финальный пункт.
func CalculateEventStructure(event models.Event, participantsCount int) []RoundPlan {
	switch event.Type {
	case models.EventField:
		return []RoundPlan{{
			Round:           models.RoundFinal,
			SeriesCount:     1,
			DurationMinutes: FieldEventDuration(participantsCount),
		}}
	case models.EventCombined:
		return []RoundPlan{{
			Round:           models.RoundFinal,
			SeriesCount:     1,
			DurationMinutes: CombinedEventDuration(participantsCount),
		}}
	default:
		base := BaseDuration(event.DisciplineText())
		return trackRoundPlans(participantsCount, base)
	}
}

func trackRoundPlans(participantsCount, baseDuration int) []RoundPlan {
	if participantsCount <= DefaultLaneCount {
		return []RoundPlan{{
			Round:           models.RoundFinal,
			SeriesCount:     1,
			DurationMinutes: baseDuration,
		}}
	}

	qualHeats := ceilDiv(participantsCount, DefaultLaneCount)

	if participantsCount <= 2*DefaultLaneCount {
		finalists := DefaultLaneCount
		return []RoundPlan{
			{
				Round:           models.RoundQualification,
				SeriesCount:     qualHeats,
				FinalistsCount:  &finalists,
				DurationMinutes: qualHeats * baseDuration,
			},
			{
				Round:           models.RoundFinal,
				SeriesCount:     1,
				DurationMinutes: baseDuration,
			},
		}
	}

	qualFinalists := 2 * DefaultLaneCount
	semiHeats := ceilDiv(qualFinalists, DefaultLaneCount)
	semiFinalists := DefaultLaneCount
	return []RoundPlan{
		{
			Round:           models.RoundQualification,
			SeriesCount:     qualHeats,
			FinalistsCount:  &qualFinalists,
			DurationMinutes: qualHeats * baseDuration,
		},
		{
			Round:           models.RoundSemifinal,
			SeriesCount:     semiHeats,
			FinalistsCount:  &semiFinalists,
			DurationMinutes: semiHeats * baseDuration,
		},
		{
			Round:           models.RoundFinal,
			SeriesCount:     1,
			DurationMinutes: baseDuration,
		},
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
