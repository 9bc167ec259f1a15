package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/Dosada05/athletics-system/models"
	"github.com/Dosada05/athletics-system/repositories"
	"github.com/Dosada05/athletics-system/storage"
)

// Фейковые репозитории для сервисных тестов: in-memory, без конкурентности.

type fakeCompetitionRepo struct {
	competitions map[int]*models.Competition
}

func newFakeCompetitionRepo(cs ...*models.Competition) *fakeCompetitionRepo {
	repo := &fakeCompetitionRepo{competitions: make(map[int]*models.Competition)}
	for _, c := range cs {
		repo.competitions[c.ID] = c
	}
	return repo
}

func (r *fakeCompetitionRepo) Create(_ context.Context, c *models.Competition) error {
	c.ID = len(r.competitions) + 1
	r.competitions[c.ID] = c
	return nil
}

func (r *fakeCompetitionRepo) GetByID(_ context.Context, id int) (*models.Competition, error) {
	c, ok := r.competitions[id]
	if !ok {
		return nil, repositories.ErrCompetitionNotFound
	}
	return c, nil
}

func (r *fakeCompetitionRepo) List(_ context.Context, _, _ int) ([]*models.Competition, error) {
	out := make([]*models.Competition, 0, len(r.competitions))
	for _, c := range r.competitions {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCompetitionRepo) Update(_ context.Context, c *models.Competition) error {
	if _, ok := r.competitions[c.ID]; !ok {
		return repositories.ErrCompetitionNotFound
	}
	r.competitions[c.ID] = c
	return nil
}

func (r *fakeCompetitionRepo) UpdateLogoKey(_ context.Context, id int, logoKey *string) error {
	c, ok := r.competitions[id]
	if !ok {
		return repositories.ErrCompetitionNotFound
	}
	c.LogoKey = logoKey
	return nil
}

func (r *fakeCompetitionRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.competitions[id]; !ok {
		return repositories.ErrCompetitionNotFound
	}
	delete(r.competitions, id)
	return nil
}

type fakeEventRepo struct {
	events map[int]*models.Event
}

func newFakeEventRepo(events ...*models.Event) *fakeEventRepo {
	repo := &fakeEventRepo{events: make(map[int]*models.Event)}
	for _, e := range events {
		repo.events[e.ID] = e
	}
	return repo
}

func (r *fakeEventRepo) Create(_ context.Context, e *models.Event) error {
	e.ID = len(r.events) + 1
	r.events[e.ID] = e
	return nil
}

func (r *fakeEventRepo) GetByID(_ context.Context, id int) (*models.Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, repositories.ErrEventNotFound
	}
	return e, nil
}

func (r *fakeEventRepo) ListByCompetition(_ context.Context, competitionID int, idFilter []int) ([]*models.Event, error) {
	allowed := map[int]bool{}
	for _, id := range idFilter {
		allowed[id] = true
	}
	out := make([]*models.Event, 0)
	// Детерминированный порядок по ID.
	for id := 1; id <= len(r.events)+100; id++ {
		e, ok := r.events[id]
		if !ok || e.CompetitionID != competitionID {
			continue
		}
		if len(idFilter) > 0 && !allowed[id] {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeEventRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.events[id]; !ok {
		return repositories.ErrEventNotFound
	}
	delete(r.events, id)
	return nil
}

type fakeScheduleRepo struct {
	nextID    int
	schedules []*models.CompetitionSchedule
	items     map[int][]models.ScheduleItem
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{items: make(map[int][]models.ScheduleItem)}
}

func (r *fakeScheduleRepo) CreateWithItems(_ context.Context, schedule *models.CompetitionSchedule, items []models.ScheduleItem) error {
	r.nextID++
	schedule.ID = r.nextID
	for i := range items {
		items[i].ScheduleID = schedule.ID
	}
	schedule.Items = items
	r.schedules = append(r.schedules, schedule)
	r.items[schedule.ID] = items
	return nil
}

func (r *fakeScheduleRepo) GetLatestByCompetition(_ context.Context, competitionID int) (*models.CompetitionSchedule, error) {
	for i := len(r.schedules) - 1; i >= 0; i-- {
		if r.schedules[i].CompetitionID == competitionID {
			return r.schedules[i], nil
		}
	}
	return nil, repositories.ErrScheduleNotFound
}

func (r *fakeScheduleRepo) ListByCompetition(_ context.Context, competitionID int) ([]*models.CompetitionSchedule, error) {
	out := make([]*models.CompetitionSchedule, 0)
	for _, s := range r.schedules {
		if s.CompetitionID == competitionID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeScheduleRepo) ListItems(_ context.Context, scheduleID int) ([]models.ScheduleItem, error) {
	return r.items[scheduleID], nil
}

type fakeRegistrationRepo struct {
	registrations map[int][]*models.Registration // по eventID
	qualifiers    map[string][]*models.Registration
}

func newFakeRegistrationRepo() *fakeRegistrationRepo {
	return &fakeRegistrationRepo{
		registrations: make(map[int][]*models.Registration),
		qualifiers:    make(map[string][]*models.Registration),
	}
}

func roundKey(eventID int, round models.EventRound) string {
	return fmt.Sprintf("%d|%s", eventID, round)
}

func (r *fakeRegistrationRepo) Create(_ context.Context, reg *models.Registration) error {
	reg.ID = len(r.registrations[reg.EventID]) + 1
	r.registrations[reg.EventID] = append(r.registrations[reg.EventID], reg)
	return nil
}

func (r *fakeRegistrationRepo) ListByEvent(_ context.Context, eventID int) ([]*models.Registration, error) {
	return r.registrations[eventID], nil
}

func (r *fakeRegistrationRepo) ListQualifiers(_ context.Context, eventID int, round models.EventRound, limit int) ([]*models.Registration, error) {
	regs := r.qualifiers[roundKey(eventID, round)]
	if len(regs) > limit {
		regs = regs[:limit]
	}
	return regs, nil
}

func (r *fakeRegistrationRepo) Delete(_ context.Context, id int) error {
	for eventID, regs := range r.registrations {
		for i, reg := range regs {
			if reg.ID == id {
				r.registrations[eventID] = append(regs[:i], regs[i+1:]...)
				return nil
			}
		}
	}
	return repositories.ErrRegistrationNotFound
}

type fakeHeatRepo struct {
	heats map[string][]models.Heat // по (eventID, round)
}

func newFakeHeatRepo() *fakeHeatRepo {
	return &fakeHeatRepo{heats: make(map[string][]models.Heat)}
}

func (r *fakeHeatRepo) ReplaceForRound(_ context.Context, eventID int, round models.EventRound, heats []models.Heat) error {
	r.heats[roundKey(eventID, round)] = heats
	return nil
}

func (r *fakeHeatRepo) ListByEventRound(_ context.Context, eventID int, round models.EventRound) ([]*models.Heat, error) {
	stored := r.heats[roundKey(eventID, round)]
	out := make([]*models.Heat, 0, len(stored))
	for i := range stored {
		out = append(out, &stored[i])
	}
	return out, nil
}

type fakeUploader struct {
	uploads map[string][]byte
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{uploads: make(map[string][]byte)}
}

func (u *fakeUploader) Upload(_ context.Context, key, _ string, body io.Reader) (*storage.UploadResult, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	u.uploads[key] = data
	return &storage.UploadResult{Key: key, Location: "https://cdn.example.com/" + key}, nil
}

func (u *fakeUploader) Delete(_ context.Context, key string) error {
	delete(u.uploads, key)
	return nil
}

func (u *fakeUploader) GetPublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
