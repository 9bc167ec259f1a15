package seeding

import (
	"errors"
	"testing"

	"github.com/Dosada05/athletics-system/models"
)

func TestParsePerformanceTime(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{"7.20", 7.20},
		{"7,20", 7.20},
		{"10.85", 10.85},
		{"1:52.30", 112.30},
		{"4:05,1", 245.1},
		{"1:02:03.5", 3723.5},
	}
	for _, tt := range tests {
		got, err := ParsePerformance(tt.text, models.UnitTime)
		if err != nil {
			t.Errorf("ParsePerformance(%q) error: %v", tt.text, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePerformance(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestParsePerformanceDistance(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{"7.20m", 7.20},
		{"7,20", 7.20},
		{"62.15 m", 62.15},
		{"2.28", 2.28},
	}
	for _, tt := range tests {
		got, err := ParsePerformance(tt.text, models.UnitDistance)
		if err != nil {
			t.Errorf("ParsePerformance(%q) error: %v", tt.text, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePerformance(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestParsePerformanceMalformed(t *testing.T) {
	cases := []struct {
		text string
		unit models.ResultUnit
	}{
		{"", models.UnitTime},
		{"   ", models.UnitTime},
		{"abc", models.UnitTime},
		{"1:2:3:4", models.UnitTime},
		{"-5.0", models.UnitTime},
		{"m7.20", models.UnitDistance},
	}
	for _, tt := range cases {
		if _, err := ParsePerformance(tt.text, tt.unit); !errors.Is(err, ErrMalformedPerformance) {
			t.Errorf("ParsePerformance(%q) = %v, want ErrMalformedPerformance", tt.text, err)
		}
	}
}

func strPtr(s string) *string { return &s }

func TestRankBySeedTime(t *testing.T) {
	participants := []Participant{
		{AthleteID: 1, SeedPerformance: strPtr("11.50")},
		{AthleteID: 2, SeedPerformance: strPtr("10.85")},
		{AthleteID: 3, SeedPerformance: nil},
		{AthleteID: 4, SeedPerformance: strPtr("not-a-time")},
		{AthleteID: 5, SeedPerformance: strPtr("11.02")},
	}

	order := rankBySeed(participants, models.UnitTime)

	gotIDs := make([]int, len(order))
	for i, r := range order {
		gotIDs[i] = r.AthleteID
	}
	// Время: меньше — лучше; нечитаемые результаты стабильно в хвосте.
	wantIDs := []int{2, 5, 1, 3, 4}
	for i := range wantIDs {
		if gotIDs[i] != wantIDs[i] {
			t.Fatalf("rank order = %v, want %v", gotIDs, wantIDs)
		}
	}
	if !order[3].malformed || !order[4].malformed {
		t.Errorf("participants without parsable seed must be flagged malformed")
	}
}

func TestRankBySeedDistance(t *testing.T) {
	participants := []Participant{
		{AthleteID: 1, SeedPerformance: strPtr("7.20m")},
		{AthleteID: 2, SeedPerformance: strPtr("7.95m")},
		{AthleteID: 3, SeedPerformance: strPtr("6.80m")},
	}

	order := rankBySeed(participants, models.UnitDistance)

	// Дистанция: больше — лучше.
	if order[0].AthleteID != 2 || order[1].AthleteID != 1 || order[2].AthleteID != 3 {
		t.Errorf("distance rank order wrong: %v, %v, %v", order[0].AthleteID, order[1].AthleteID, order[2].AthleteID)
	}
}
