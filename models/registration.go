package models

import "time"

// Registration связывает атлета с конкуренцией; seed_performance — заявочный
// результат в текстовом виде ("11.25", "1:52.40", "7.20m").
type Registration struct {
	ID              int       `json:"id" db:"id"`
	EventID         int       `json:"event_id" db:"event_id"`
	AthleteID       int       `json:"athlete_id" db:"athlete_id"`
	SeedPerformance *string   `json:"seed_performance,omitempty" db:"seed_performance"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`

	Athlete *Athlete `json:"athlete,omitempty" db:"-"`
}

// RoundResult хранит зафиксированный результат атлета в раунде; используется
// для отбора квалифицированных участников следующего раунда.
type RoundResult struct {
	ID          int        `json:"id" db:"id"`
	EventID     int        `json:"event_id" db:"event_id"`
	Round       EventRound `json:"round" db:"round"`
	AthleteID   int        `json:"athlete_id" db:"athlete_id"`
	Performance *string    `json:"performance,omitempty" db:"performance"`
	Rank        int        `json:"rank" db:"rank"`
}
