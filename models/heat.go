package models

// Heat — один забег (или "серия") в рамках раунда конкуренции. Для
// технических конкуренций это единственный "flight" раунда.
type Heat struct {
	ID      int        `json:"id" db:"id"`
	EventID int        `json:"event_id" db:"event_id"`
	Round   EventRound `json:"round" db:"round"`
	Number  int        `json:"number" db:"number"`

	Lanes []Lane `json:"lanes,omitempty" db:"-"`
}

// Lane — назначение атлета на дорожку внутри забега.
type Lane struct {
	ID              int     `json:"id" db:"id"`
	HeatID          int     `json:"heat_id" db:"heat_id"`
	LaneNumber      int     `json:"lane_number" db:"lane_number"`
	AthleteID       int     `json:"athlete_id" db:"athlete_id"`
	SeedPerformance *string `json:"seed_performance,omitempty" db:"seed_performance"`

	Athlete *Athlete `json:"athlete,omitempty" db:"-"`
}
