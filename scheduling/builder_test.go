package scheduling

import (
	"testing"
	"time"

	"github.com/Dosada05/athletics-system/models"
	"github.com/smartystreets/goconvey/convey"
)

func entry(id int, typ models.EventType, name, gender, category string, participants int) EventEntry {
	return EventEntry{
		Event: models.Event{
			ID:       id,
			Type:     typ,
			Name:     name,
			Gender:   gender,
			Category: category,
		},
		ParticipantsCount: participants,
	}
}

func TestBuildProgram(t *testing.T) {
	start := time.Date(2026, 6, 13, 10, 0, 0, 0, time.UTC)

	convey.Convey("Given a single track event with two rounds", t, func() {
		params := BuildParams{
			Entries:                []EventEntry{entry(1, models.EventTrack, "100m", "male", "senior", 10)},
			StartTime:              start,
			ParallelFieldEvents:    true,
			SeparateCombinedEvents: true,
		}

		items, err := BuildProgram(params)

		convey.Convey("Then rounds follow each other on the timeline", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(items, convey.ShouldHaveLength, 2)

			convey.So(items[0].Round, convey.ShouldEqual, models.RoundQualification)
			convey.So(items[0].ScheduledTime, convey.ShouldEqual, start)
			convey.So(items[0].DurationMinutes, convey.ShouldEqual, 20)

			convey.So(items[1].Round, convey.ShouldEqual, models.RoundFinal)
			convey.So(items[1].ScheduledTime, convey.ShouldEqual, start.Add(20*time.Minute))
		})

		convey.Convey("And the notes carry entries, series and advancement", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(items[0].Notes, convey.ShouldEqual, "zawodnicy: 10, serie: 2, awans: 8")
			convey.So(items[1].Notes, convey.ShouldEqual, "zawodnicy: 10")
		})
	})

	convey.Convey("Given sequential track events", t, func() {
		params := BuildParams{
			Entries: []EventEntry{
				entry(1, models.EventTrack, "100m", "male", "senior", 8),
				entry(2, models.EventTrack, "200m", "male", "senior", 8),
			},
			StartTime:              start,
			BreakMinutes:           10,
			ParallelFieldEvents:    true,
			SeparateCombinedEvents: true,
		}

		items, err := BuildProgram(params)

		convey.Convey("Then items never overlap", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(items, convey.ShouldHaveLength, 2)
			convey.So(items[0].ScheduledTime, convey.ShouldEqual, start)
			// 10 минут финала + 10 минут перерыва между группами.
			convey.So(items[1].ScheduledTime, convey.ShouldEqual, start.Add(20*time.Minute))
		})
	})

	convey.Convey("Given field events of the same family, gender and category", t, func() {
		params := BuildParams{
			Entries: []EventEntry{
				entry(1, models.EventField, "skok w dal", "male", "senior", 10),
				entry(2, models.EventField, "trójskok", "male", "senior", 12),
				entry(3, models.EventField, "rzut dyskiem", "male", "senior", 10),
			},
			StartTime:              start,
			ParallelFieldEvents:    true,
			SeparateCombinedEvents: true,
		}

		items, err := BuildProgram(params)

		convey.Convey("Then jumps run in parallel and the throw starts after them", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(items, convey.ShouldHaveLength, 3)

			convey.So(items[0].ScheduledTime, convey.ShouldEqual, start)
			convey.So(items[1].ScheduledTime, convey.ShouldEqual, start)

			// Более длинный прыжковый блок: ceil(12*3.5)=42; перерыв 15.
			convey.So(items[2].ScheduledTime, convey.ShouldEqual, start.Add(57*time.Minute))
		})
	})

	convey.Convey("Given disabled field parallelism", t, func() {
		params := BuildParams{
			Entries: []EventEntry{
				entry(1, models.EventField, "skok w dal", "male", "senior", 10),
				entry(2, models.EventField, "trójskok", "male", "senior", 10),
			},
			StartTime:              start,
			ParallelFieldEvents:    false,
			SeparateCombinedEvents: true,
		}

		items, err := BuildProgram(params)

		convey.Convey("Then same-family events still run back to back", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(items[0].ScheduledTime, convey.ShouldEqual, start)
			convey.So(items[1].ScheduledTime, convey.ShouldNotEqual, start)
		})
	})

	convey.Convey("Given a combined event among track events", t, func() {
		params := BuildParams{
			Entries: []EventEntry{
				entry(1, models.EventCombined, "dziesięciobój", "male", "senior", 6),
				entry(2, models.EventTrack, "100m", "male", "senior", 8),
			},
			StartTime:              start,
			ParallelFieldEvents:    true,
			SeparateCombinedEvents: true,
		}

		items, err := BuildProgram(params)

		convey.Convey("Then the combined block is scheduled last with an extra gap", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(items, convey.ShouldHaveLength, 2)

			convey.So(items[0].EventID, convey.ShouldEqual, 2)
			convey.So(items[0].ScheduledTime, convey.ShouldEqual, start)

			// Финал 100m: 10 минут + перерыв 15 + дополнительные 30.
			convey.So(items[1].EventID, convey.ShouldEqual, 1)
			convey.So(items[1].ScheduledTime, convey.ShouldEqual, start.Add(55*time.Minute))
		})
	})

	convey.Convey("Given the same input twice", t, func() {
		params := BuildParams{
			Entries: []EventEntry{
				entry(1, models.EventTrack, "400m", "female", "U18", 11),
				entry(2, models.EventField, "kula", "female", "U18", 9),
			},
			StartTime:              start,
			ParallelFieldEvents:    true,
			SeparateCombinedEvents: true,
		}

		first, err1 := BuildProgram(params)
		second, err2 := BuildProgram(params)

		convey.Convey("Then the output is deterministic", func() {
			convey.So(err1, convey.ShouldBeNil)
			convey.So(err2, convey.ShouldBeNil)
			convey.So(second, convey.ShouldResemble, first)
		})
	})

	convey.Convey("Given no events", t, func() {
		_, err := BuildProgram(BuildParams{StartTime: start})

		convey.Convey("Then the builder refuses to produce a schedule", func() {
			convey.So(err, convey.ShouldEqual, ErrNoEvents)
		})
	})
}
