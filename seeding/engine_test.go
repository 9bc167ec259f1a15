package seeding

import (
	"math/rand"
	"testing"

	"github.com/Dosada05/athletics-system/models"
	"github.com/smartystreets/goconvey/convey"
)

func TestAssignHeats(t *testing.T) {
	convey.Convey("Given twenty runners seeded by result", t, func() {
		heats, err := AssignHeats(AssignParams{
			Participants: timedParticipants(20),
			Unit:         models.UnitTime,
			SeriesMethod: SeriesByResult,
			LaneMethod:   LaneWASprintsStraight,
			Rand:         rand.New(rand.NewSource(3)),
		})

		convey.Convey("Then every runner gets exactly one lane in exactly one heat", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(heats, convey.ShouldHaveLength, 3)

			seen := map[int]bool{}
			for _, heat := range heats {
				lanes := map[int]bool{}
				for _, lane := range heat.Lanes {
					convey.So(seen[lane.AthleteID], convey.ShouldBeFalse)
					seen[lane.AthleteID] = true
					convey.So(lanes[lane.LaneNumber], convey.ShouldBeFalse)
					lanes[lane.LaneNumber] = true
				}
			}
			convey.So(seen, convey.ShouldHaveLength, 20)
		})

		convey.Convey("And heats are numbered sequentially from one", func() {
			convey.So(err, convey.ShouldBeNil)
			for i, heat := range heats {
				convey.So(heat.Number, convey.ShouldEqual, i+1)
			}
		})

		convey.Convey("And lanes inside a heat are sorted by lane number", func() {
			convey.So(err, convey.ShouldBeNil)
			for _, heat := range heats {
				for i := 1; i < len(heat.Lanes); i++ {
					convey.So(heat.Lanes[i].LaneNumber, convey.ShouldBeGreaterThan, heat.Lanes[i-1].LaneNumber)
				}
			}
		})
	})

	convey.Convey("Given the fastest runner in the last heat on the straight", t, func() {
		heats, err := AssignHeats(AssignParams{
			Participants: timedParticipants(8),
			Unit:         models.UnitTime,
			SeriesMethod: SeriesByResult,
			LaneMethod:   LaneWASprintsStraight,
		})

		convey.Convey("Then the top seed lands on lane four", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(heats, convey.ShouldHaveLength, 1)
			for _, lane := range heats[0].Lanes {
				if lane.AthleteID == 1 {
					convey.So(lane.LaneNumber, convey.ShouldEqual, 4)
				}
				if lane.AthleteID == 8 {
					convey.So(lane.LaneNumber, convey.ShouldEqual, 1)
				}
			}
		})
	})

	convey.Convey("Given a partial heat of three runners", t, func() {
		heats, err := AssignHeats(AssignParams{
			Participants: timedParticipants(3),
			Unit:         models.UnitTime,
			SeriesMethod: SeriesByResult,
			LaneMethod:   LaneBestToWorst,
		})

		convey.Convey("Then the single heat holds all three", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(heats, convey.ShouldHaveLength, 1)
			convey.So(heats[0].Lanes, convey.ShouldHaveLength, 3)
		})
	})

	convey.Convey("Given a malformed seed performance in the pool", t, func() {
		bad := "dns"
		participants := timedParticipants(4)
		participants = append(participants, Participant{AthleteID: 5, SeedPerformance: &bad})

		heats, err := AssignHeats(AssignParams{
			Participants: participants,
			Unit:         models.UnitTime,
			SeriesMethod: SeriesByResult,
			LaneMethod:   LaneBestToWorst,
		})

		convey.Convey("Then the assignment still succeeds and ranks the athlete last", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(heats, convey.ShouldHaveLength, 1)
			convey.So(heats[0].Lanes, convey.ShouldHaveLength, 5)

			// best_to_worst: последний посев получает последнюю дорожку.
			last := heats[0].Lanes[len(heats[0].Lanes)-1]
			convey.So(last.AthleteID, convey.ShouldEqual, 5)
		})
	})

	convey.Convey("Given invalid input", t, func() {
		convey.Convey("Then an unknown series method is rejected before any work", func() {
			_, err := AssignHeats(AssignParams{
				Participants: timedParticipants(4),
				Unit:         models.UnitTime,
				SeriesMethod: SeriesMethod("chaotic"),
				LaneMethod:   LaneBestToWorst,
			})
			convey.So(err, convey.ShouldEqual, ErrUnsupportedSeriesMethod)
		})

		convey.Convey("Then an unknown lane method is rejected before any work", func() {
			_, err := AssignHeats(AssignParams{
				Participants: timedParticipants(4),
				Unit:         models.UnitTime,
				SeriesMethod: SeriesByResult,
				LaneMethod:   LaneMethod("diagonal"),
			})
			convey.So(err, convey.ShouldEqual, ErrUnsupportedLaneMethod)
		})

		convey.Convey("Then an empty pool is rejected", func() {
			_, err := AssignHeats(AssignParams{
				Unit:         models.UnitTime,
				SeriesMethod: SeriesByResult,
				LaneMethod:   LaneBestToWorst,
			})
			convey.So(err, convey.ShouldEqual, ErrNoParticipants)
		})
	})

	convey.Convey("Given a field flight of twelve athletes", t, func() {
		heats, err := AssignHeats(AssignParams{
			Participants: timedParticipants(12),
			Unit:         models.UnitDistance,
			SeriesMethod: SeriesByResult,
			LaneMethod:   LaneWorstToBest,
			MaxLanes:     DefaultFieldMaxLanes,
		})

		convey.Convey("Then everybody fits in one flight, best jumping last", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(heats, convey.ShouldHaveLength, 1)
			convey.So(heats[0].Lanes, convey.ShouldHaveLength, 12)
		})
	})
}
