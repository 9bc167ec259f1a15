package scheduling

import (
	"testing"
	"time"

	"github.com/Dosada05/athletics-system/models"
)

func TestRoundLabel(t *testing.T) {
	tests := []struct {
		round  models.EventRound
		series int
		want   string
	}{
		{models.RoundQualification, 1, "eliminacje"},
		{models.RoundQualification, 3, "eliminacje – 3 serie"},
		{models.RoundQualification, 5, "eliminacje – 5 serii"},
		{models.RoundSemifinal, 2, "półfinał – 2 serie"},
		{models.RoundFinal, 1, "finał"},
	}
	for _, tt := range tests {
		if got := RoundLabel(tt.round, tt.series); got != tt.want {
			t.Errorf("RoundLabel(%s, %d) = %q, want %q", tt.round, tt.series, got, tt.want)
		}
	}
}

func TestFormatEventName(t *testing.T) {
	tests := []struct {
		event models.Event
		want  string
	}{
		{models.Event{Name: "100m", Gender: "male", Category: "senior"}, "100m M"},
		{models.Event{Name: "skok w dal", Gender: "female", Category: "U18"}, "skok w dal K (U18)"},
		{models.Event{Name: "sztafeta 4x400m", Gender: "mixed", Category: "senior"}, "sztafeta 4x400m MIX"},
		{models.Event{Name: "60m", Gender: "", Category: ""}, "60m"},
	}
	for _, tt := range tests {
		if got := FormatEventName(tt.event); got != tt.want {
			t.Errorf("FormatEventName(%+v) = %q, want %q", tt.event, got, tt.want)
		}
	}
}

func TestGroupItemsByTime(t *testing.T) {
	base := time.Date(2026, 6, 13, 10, 0, 0, 0, time.Local)
	event100 := &models.Event{ID: 1, Name: "100m", Gender: "male", Category: "senior"}
	eventJump := &models.Event{ID: 2, Name: "skok w dal", Gender: "male", Category: "senior"}

	items := []models.ScheduleItem{
		{EventID: 1, Event: event100, ScheduledTime: base, Round: models.RoundQualification, SeriesCount: 2},
		{EventID: 2, Event: eventJump, ScheduledTime: base, Round: models.RoundFinal, SeriesCount: 1},
		{EventID: 1, Event: event100, ScheduledTime: base.Add(45 * time.Minute), Round: models.RoundFinal, SeriesCount: 1},
		{EventID: 7, ScheduledTime: base.Add(90 * time.Minute), Round: models.RoundFinal, SeriesCount: 1},
	}

	groups := GroupItemsByTime(items)
	if len(groups) != 3 {
		t.Fatalf("expected 3 time groups, got %d", len(groups))
	}

	if groups[0].Time != "10:00" || len(groups[0].Events) != 2 {
		t.Errorf("first group: %+v", groups[0])
	}
	if groups[0].Events[0].Round != "eliminacje – 2 serie" {
		t.Errorf("unexpected round label: %q", groups[0].Events[0].Round)
	}

	if groups[1].Time != "10:45" || len(groups[1].Events) != 1 {
		t.Errorf("second group: %+v", groups[1])
	}

	// Пункт без загруженной конкуренции получает имя-заглушку.
	if groups[2].Events[0].Name != "konkurencja #7" {
		t.Errorf("placeholder name: %q", groups[2].Events[0].Name)
	}
}

func TestDetectFieldFamily(t *testing.T) {
	tests := []struct {
		name string
		want fieldFamily
	}{
		{"skok w dal", familyJump},
		{"skok wzwyż", familyJump},
		{"pole vault", familyJump},
		{"rzut oszczepem", familyThrow},
		{"pchnięcie kulą", familyThrow},
		{"shot put", familyThrow},
		{"chód sportowy", familyOther},
	}
	for _, tt := range tests {
		event := models.Event{Type: models.EventField, Name: tt.name}
		if got := detectFieldFamily(event); got != tt.want {
			t.Errorf("detectFieldFamily(%q) = %s, want %s", tt.name, got, tt.want)
		}
	}
}
