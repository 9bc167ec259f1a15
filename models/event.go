package models

import "time"

// EventType представляет тип конкуренции, соответствующий ENUM в БД.
type EventType string

const (
	EventTrack    EventType = "track"
	EventField    EventType = "field"
	EventCombined EventType = "combined"
	EventRelay    EventType = "relay"
	EventRoad     EventType = "road"
)

// ResultUnit определяет, как сравниваются результаты конкуренции.
type ResultUnit string

const (
	UnitTime     ResultUnit = "time"     // lower is better
	UnitDistance ResultUnit = "distance" // higher is better
	UnitHeight   ResultUnit = "height"   // higher is better
	UnitPoints   ResultUnit = "points"   // higher is better
)

// Event представляет одну конкуренцию в рамках соревнования.
type Event struct {
	ID            int       `json:"id" db:"id"`
	CompetitionID int       `json:"competition_id" db:"competition_id"`
	Name          string    `json:"name" db:"name"`
	Distance      *string   `json:"distance,omitempty" db:"distance"`
	Gender        string    `json:"gender" db:"gender"`
	Category      string    `json:"category" db:"category"`
	Type          EventType `json:"type" db:"type"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`

	// ParticipantsCount считается агрегатом по registrations, не колонка.
	ParticipantsCount int `json:"participants_count" db:"-"`

	Registrations []Registration `json:"registrations,omitempty" db:"-"`
}

// DisciplineText возвращает текст, по которому определяется базовая
// длительность и семейство конкуренции: дистанция, если задана, иначе имя.
func (e Event) DisciplineText() string {
	if e.Distance != nil && *e.Distance != "" {
		return *e.Distance
	}
	return e.Name
}

// ResultUnit выводит единицу результата из типа конкуренции. Прыжки в высоту
// ведут себя как дистанции (больше — лучше), отдельная единица не нужна.
func (e Event) ResultUnit() ResultUnit {
	switch e.Type {
	case EventField:
		return UnitDistance
	case EventCombined:
		return UnitPoints
	default:
		return UnitTime
	}
}
