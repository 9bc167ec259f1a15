package seeding

import (
	"errors"
	"math/rand"
	"sort"
	"time"

	"github.com/Dosada05/athletics-system/models"
)

var ErrNoParticipants = errors.New("no participants to assign")

// DefaultMaxLanes — число дорожек стандартного стадиона; технические
// конкуренции используют до 20 позиций в одном "flight".
const (
	DefaultMaxLanes      = 8
	DefaultFieldMaxLanes = 20
)

// AssignParams задает вход движка посева: участники раунда, методы разбиения
// на забеги и расстановки по дорожкам.
type AssignParams struct {
	Participants []Participant
	Unit         models.ResultUnit
	SeriesMethod SeriesMethod
	LaneMethod   LaneMethod

	// MaxLanes — вместимость забега; 0 означает DefaultMaxLanes.
	MaxLanes int
	// HeatsCount — явное число забегов; 0 означает ceil(n/MaxLanes).
	HeatsCount int
	// Rand используется только методами random; nil — источник по времени.
	Rand *rand.Rand
}

// AssignedLane и AssignedHeat — результат посева, еще без идентификаторов БД.
type AssignedLane struct {
	LaneNumber      int
	AthleteID       int
	SeedPerformance *string
}

type AssignedHeat struct {
	Number int
	Lanes  []AssignedLane
}

// AssignHeats разбивает участников на забеги и расставляет каждый забег по
// дорожкам. Любой непустой список участников допустим, включая неполный
// забег. Методы проверяются до каких-либо вычислений.
func AssignHeats(params AssignParams) ([]AssignedHeat, error) {
	if !params.SeriesMethod.Valid() {
		return nil, ErrUnsupportedSeriesMethod
	}
	if !params.LaneMethod.Valid() {
		return nil, ErrUnsupportedLaneMethod
	}
	if len(params.Participants) == 0 {
		return nil, ErrNoParticipants
	}

	maxLanes := params.MaxLanes
	if maxLanes <= 0 {
		maxLanes = DefaultMaxLanes
	}
	rng := params.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	series, err := partitionSeries(params.Participants, params.SeriesMethod, params.Unit, maxLanes, params.HeatsCount, rng)
	if err != nil {
		return nil, err
	}

	heats := make([]AssignedHeat, 0, len(series))
	number := 0
	for _, heatParticipants := range series {
		if len(heatParticipants) == 0 {
			continue
		}
		number++

		// Внутри забега методы дорожек работают по посеву лучший→худший.
		order := rerankHeat(heatParticipants, params.Unit)

		laneCount := maxLanes
		if len(order) > laneCount {
			laneCount = len(order)
		}
		lanes, err := laneOrder(params.LaneMethod, laneCount, rng)
		if err != nil {
			return nil, err
		}

		heat := AssignedHeat{Number: number}
		for rank, p := range order {
			heat.Lanes = append(heat.Lanes, AssignedLane{
				LaneNumber:      lanes[rank],
				AthleteID:       p.AthleteID,
				SeedPerformance: p.SeedPerformance,
			})
		}
		sort.Slice(heat.Lanes, func(a, b int) bool {
			return heat.Lanes[a].LaneNumber < heat.Lanes[b].LaneNumber
		})
		heats = append(heats, heat)
	}

	return heats, nil
}

// rerankHeat восстанавливает порядок лучший→худший внутри забега: методы
// разбиения могли раздать участников в произвольном порядке.
func rerankHeat(heat []ranked, unit models.ResultUnit) []ranked {
	ps := make([]Participant, len(heat))
	for i, r := range heat {
		ps[i] = r.Participant
	}
	return rankBySeed(ps, unit)
}
