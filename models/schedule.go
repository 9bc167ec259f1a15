package models

import "time"

// EventRound представляет стадию конкуренции, соответствующую ENUM в БД.
type EventRound string

const (
	RoundQualification EventRound = "qualification"
	RoundSemifinal     EventRound = "semifinal"
	RoundFinal         EventRound = "final"
)

// Valid reports whether r is one of the known rounds.
func (r EventRound) Valid() bool {
	switch r {
	case RoundQualification, RoundSemifinal, RoundFinal:
		return true
	}
	return false
}

// Previous возвращает предыдущий раунд, из которого берутся квалифицированные
// участники; для квалификации предыдущего раунда нет.
func (r EventRound) Previous() (EventRound, bool) {
	switch r {
	case RoundSemifinal:
		return RoundQualification, true
	case RoundFinal:
		return RoundSemifinal, true
	}
	return "", false
}

// CompetitionSchedule — именованный вариант программы соревнования. Может
// существовать несколько черновиков; минутная программа строится по самому
// свежему.
type CompetitionSchedule struct {
	ID            int       `json:"id" db:"id"`
	CompetitionID int       `json:"competition_id" db:"competition_id"`
	Name          string    `json:"name" db:"name"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`

	Items []ScheduleItem `json:"items,omitempty" db:"-"`
}

// ScheduleItem — одна строка программы: (конкуренция, раунд) со временем
// старта и расчетной длительностью.
type ScheduleItem struct {
	ID              int        `json:"id" db:"id"`
	ScheduleID      int        `json:"schedule_id" db:"schedule_id"`
	EventID         int        `json:"event_id" db:"event_id"`
	ScheduledTime   time.Time  `json:"scheduled_time" db:"scheduled_time"`
	DurationMinutes int        `json:"duration_minutes" db:"duration_minutes"`
	Round           EventRound `json:"round" db:"round"`
	SeriesCount     int        `json:"series_count" db:"series_count"`
	FinalistsCount  *int       `json:"finalists_count,omitempty" db:"finalists_count"`
	Notes           string     `json:"notes" db:"notes"`

	Event *Event `json:"event,omitempty" db:"-"`
}
