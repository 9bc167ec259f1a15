package services

import (
	"context"
	"testing"
	"time"

	"github.com/Dosada05/athletics-system/models"
	"github.com/smartystreets/goconvey/convey"
)

func TestScheduleService(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 6, 13, 10, 0, 0, 0, time.UTC)

	competition := &models.Competition{ID: 1, Name: "Memoriał", StartDate: start, EndDate: start.Add(8 * time.Hour)}

	convey.Convey("Given a competition with events", t, func() {
		eventRepo := newFakeEventRepo(
			&models.Event{ID: 1, CompetitionID: 1, Type: models.EventTrack, Name: "100m", Gender: "male", Category: "senior", ParticipantsCount: 10},
			&models.Event{ID: 2, CompetitionID: 1, Type: models.EventField, Name: "skok w dal", Gender: "male", Category: "senior", ParticipantsCount: 9},
		)
		scheduleRepo := newFakeScheduleRepo()
		service := NewScheduleService(newFakeCompetitionRepo(competition), eventRepo, scheduleRepo, newFakeUploader(), nil, testLogger())

		convey.Convey("When a schedule is generated", func() {
			schedule, err := service.GenerateSchedule(ctx, 1, GenerateScheduleInput{StartTime: start})

			convey.Convey("Then it is persisted with items for every round", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(schedule.ID, convey.ShouldEqual, 1)
				// 100m x10: eliminacje + finał; skok w dal: finał.
				convey.So(schedule.Items, convey.ShouldHaveLength, 3)
				convey.So(schedule.Name, convey.ShouldEqual, "Program 2026-06-13")
			})

			convey.Convey("And a newer schedule supersedes it for the minute program", func() {
				convey.So(err, convey.ShouldBeNil)

				second, err := service.GenerateSchedule(ctx, 1, GenerateScheduleInput{Name: "Wersja 2", StartTime: start})
				convey.So(err, convey.ShouldBeNil)

				program, err := service.GenerateMinuteProgram(ctx, 1)
				convey.So(err, convey.ShouldBeNil)
				convey.So(program.Schedule.ID, convey.ShouldEqual, second.ID)
				convey.So(program.Competition.Name, convey.ShouldEqual, "Memoriał")
				convey.So(len(program.TimeGroups), convey.ShouldBeGreaterThan, 0)
			})
		})

		convey.Convey("When an event filter excludes everything", func() {
			_, err := service.GenerateSchedule(ctx, 1, GenerateScheduleInput{StartTime: start, EventIDs: []int{99}})

			convey.Convey("Then generation fails with no events", func() {
				convey.So(err, convey.ShouldEqual, ErrNoEventsFound)
			})
		})

		convey.Convey("When the competition does not exist", func() {
			_, err := service.GenerateSchedule(ctx, 42, GenerateScheduleInput{StartTime: start})

			convey.Convey("Then the error names the missing competition", func() {
				convey.So(err, convey.ShouldEqual, ErrCompetitionNotFound)
			})
		})
	})

	convey.Convey("Given a competition without any schedule", t, func() {
		service := NewScheduleService(newFakeCompetitionRepo(competition), newFakeEventRepo(), newFakeScheduleRepo(), newFakeUploader(), nil, testLogger())

		convey.Convey("Then the minute program reports the absence", func() {
			_, err := service.GenerateMinuteProgram(ctx, 1)
			convey.So(err, convey.ShouldEqual, ErrNoSchedule)
		})
	})

	convey.Convey("Given an exported minute program", t, func() {
		eventRepo := newFakeEventRepo(
			&models.Event{ID: 1, CompetitionID: 1, Type: models.EventTrack, Name: "100m", Gender: "male", Category: "senior", ParticipantsCount: 6},
		)
		uploader := newFakeUploader()
		service := NewScheduleService(newFakeCompetitionRepo(competition), eventRepo, newFakeScheduleRepo(), uploader, nil, testLogger())

		_, err := service.GenerateSchedule(ctx, 1, GenerateScheduleInput{StartTime: start})
		convey.So(err, convey.ShouldBeNil)

		url, err := service.ExportMinuteProgram(ctx, 1)

		convey.Convey("Then the text lands in object storage and the URL is returned", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(url, convey.ShouldStartWith, "https://cdn.example.com/competitions/1/")
			convey.So(uploader.uploads, convey.ShouldHaveLength, 1)
		})
	})
}

func TestScheduleServiceDefaultStartTime(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 7, 4, 9, 30, 0, 0, time.UTC)
	competition := &models.Competition{ID: 1, Name: "Mityng", StartDate: start, EndDate: start.Add(6 * time.Hour)}

	eventRepo := newFakeEventRepo(
		&models.Event{ID: 1, CompetitionID: 1, Type: models.EventTrack, Name: "400m", Gender: "female", Category: "senior", ParticipantsCount: 7},
	)
	service := NewScheduleService(newFakeCompetitionRepo(competition), eventRepo, newFakeScheduleRepo(), newFakeUploader(), nil, testLogger())

	schedule, err := service.GenerateSchedule(ctx, 1, GenerateScheduleInput{})
	if err != nil {
		t.Fatalf("GenerateSchedule: %v", err)
	}
	if !schedule.Items[0].ScheduledTime.Equal(start) {
		t.Errorf("first item must start at the competition start date, got %v", schedule.Items[0].ScheduledTime)
	}
	if schedule.Name != "Program 2026-07-04" {
		t.Errorf("default schedule name: %q", schedule.Name)
	}
}
