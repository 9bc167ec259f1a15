package models

import "time"

type Athlete struct {
	ID        int       `json:"id" db:"id"`
	FirstName string    `json:"first_name" db:"first_name"`
	LastName  string    `json:"last_name" db:"last_name"`
	Gender    string    `json:"gender" db:"gender"`
	BibNumber *int      `json:"bib_number,omitempty" db:"bib_number"`
	Club      *string   `json:"club,omitempty" db:"club"`
	BirthYear *int      `json:"birth_year,omitempty" db:"birth_year"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
