package scheduling

import (
	"testing"

	"github.com/Dosada05/athletics-system/models"
)

func trackEvent(discipline string) models.Event {
	return models.Event{Type: models.EventTrack, Name: discipline}
}

func TestCalculateEventStructureSmallTrackField(t *testing.T) {
	plans := CalculateEventStructure(trackEvent("100m"), 8)
	if len(plans) != 1 {
		t.Fatalf("expected single round, got %d", len(plans))
	}
	if plans[0].Round != models.RoundFinal || plans[0].SeriesCount != 1 {
		t.Errorf("expected direct final with one series, got %+v", plans[0])
	}
	if plans[0].FinalistsCount != nil {
		t.Errorf("final must not carry finalists count")
	}
	if plans[0].DurationMinutes != 10 {
		t.Errorf("expected 10 minutes, got %d", plans[0].DurationMinutes)
	}
}

func TestCalculateEventStructureMediumTrackField(t *testing.T) {
	plans := CalculateEventStructure(trackEvent("200m"), 12)
	if len(plans) != 2 {
		t.Fatalf("expected qualification + final, got %d rounds", len(plans))
	}

	qual := plans[0]
	if qual.Round != models.RoundQualification || qual.SeriesCount != 2 {
		t.Errorf("expected 2 qualification heats, got %+v", qual)
	}
	if qual.FinalistsCount == nil || *qual.FinalistsCount != 8 {
		t.Errorf("expected 8 finalists from qualification, got %v", qual.FinalistsCount)
	}
	if qual.DurationMinutes != 24 {
		t.Errorf("expected 2*12 minutes, got %d", qual.DurationMinutes)
	}

	if plans[1].Round != models.RoundFinal {
		t.Errorf("last round must be the final, got %s", plans[1].Round)
	}
}

func TestCalculateEventStructureLargeTrackField(t *testing.T) {
	plans := CalculateEventStructure(trackEvent("100m"), 17)
	if len(plans) != 3 {
		t.Fatalf("expected three rounds for 17 entries, got %d", len(plans))
	}

	qual, semi, final := plans[0], plans[1], plans[2]

	if qual.Round != models.RoundQualification || qual.SeriesCount != 3 {
		t.Errorf("expected 3 qualification heats, got %+v", qual)
	}
	if qual.FinalistsCount == nil || *qual.FinalistsCount != 16 {
		t.Errorf("expected 16 advancing to semifinal, got %v", qual.FinalistsCount)
	}

	if semi.Round != models.RoundSemifinal || semi.SeriesCount != 2 {
		t.Errorf("expected 2 semifinal heats, got %+v", semi)
	}
	if semi.FinalistsCount == nil || *semi.FinalistsCount != 8 {
		t.Errorf("expected 8 advancing to final, got %v", semi.FinalistsCount)
	}

	if final.Round != models.RoundFinal || final.SeriesCount != 1 || final.FinalistsCount != nil {
		t.Errorf("unexpected final shape: %+v", final)
	}
}

func TestCalculateEventStructureFieldAndCombined(t *testing.T) {
	field := models.Event{Type: models.EventField, Name: "skok w dal"}
	plans := CalculateEventStructure(field, 14)
	if len(plans) != 1 || plans[0].Round != models.RoundFinal {
		t.Fatalf("field event must be a single final, got %+v", plans)
	}
	if plans[0].DurationMinutes != 49 { // ceil(14*3.5)
		t.Errorf("expected 49 minutes, got %d", plans[0].DurationMinutes)
	}

	combined := models.Event{Type: models.EventCombined, Name: "dziesięciobój"}
	plans = CalculateEventStructure(combined, 6)
	if len(plans) != 1 || plans[0].DurationMinutes != 120 {
		t.Fatalf("combined event must be one long final, got %+v", plans)
	}
}
