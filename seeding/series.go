package seeding

import (
	"errors"
	"math/rand"
	"sort"

	"github.com/Dosada05/athletics-system/models"
)

var ErrUnsupportedSeriesMethod = errors.New("unsupported series method")

// SeriesMethod — алгоритм разбиения участников на забеги.
type SeriesMethod string

const (
	SeriesByResult       SeriesMethod = "by_result"
	SeriesByResultIndoor SeriesMethod = "by_result_indoor"
	SeriesSeedTime       SeriesMethod = "seed_time"
	SeriesAlphaNumber    SeriesMethod = "alphabetical_number"
	SeriesAlphaName      SeriesMethod = "alphabetical_name"
	SeriesRoundRobin     SeriesMethod = "round_robin"
	SeriesZigzag         SeriesMethod = "zigzag"
	SeriesRandom         SeriesMethod = "random"
)

func (m SeriesMethod) Valid() bool {
	switch m {
	case SeriesByResult, SeriesByResultIndoor, SeriesSeedTime,
		SeriesAlphaNumber, SeriesAlphaName,
		SeriesRoundRobin, SeriesZigzag, SeriesRandom:
		return true
	}
	return false
}

// partitionSeries разбивает участников на heatCount забегов. Забеги
// нумеруются с первого; "лучший" забег при посеве по результату — последний.
func partitionSeries(participants []Participant, method SeriesMethod, unit models.ResultUnit, maxLanes, heatsCount int, rng *rand.Rand) ([][]ranked, error) {
	n := len(participants)
	heatCount := heatsCount
	if heatCount <= 0 {
		heatCount = (n + maxLanes - 1) / maxLanes
	}
	if heatCount < 1 {
		heatCount = 1
	}

	switch method {
	case SeriesByResult:
		return chunkBestLast(rankBySeed(participants, unit), heatCount, maxLanes), nil

	case SeriesByResultIndoor:
		heats := chunkBestLast(rankBySeed(participants, unit), heatCount, maxLanes)
		separateTopTwo(heats)
		return heats, nil

	case SeriesSeedTime:
		return dealRoundRobin(rankBySeed(participants, unit), heatCount), nil

	case SeriesAlphaNumber:
		order := asRanked(participants)
		sort.SliceStable(order, func(i, j int) bool {
			bi, bj := order[i].BibNumber, order[j].BibNumber
			if bi == nil || bj == nil {
				return bj == nil && bi != nil
			}
			return *bi < *bj
		})
		return fillSequential(order, heatCount, maxLanes), nil

	case SeriesAlphaName:
		order := asRanked(participants)
		sort.SliceStable(order, func(i, j int) bool {
			return order[i].Surname < order[j].Surname
		})
		return fillSequential(order, heatCount, maxLanes), nil

	case SeriesRoundRobin:
		return dealRoundRobin(asRanked(participants), heatCount), nil

	case SeriesZigzag:
		return dealZigzag(rankBySeed(participants, unit), heatCount), nil

	case SeriesRandom:
		order := asRanked(participants)
		rng.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
		return fillSequential(order, heatCount, maxLanes), nil
	}

	return nil, ErrUnsupportedSeriesMethod
}

func asRanked(participants []Participant) []ranked {
	out := make([]ranked, len(participants))
	for i, p := range participants {
		out[i] = ranked{Participant: p}
	}
	return out
}

// chunkBestLast режет посеянный список кусками по вместимости забега и
// раскладывает их с конца: лучшие бегут в последнем забеге, остаток — в
// первом (он может быть неполным).
func chunkBestLast(order []ranked, heatCount, maxLanes int) [][]ranked {
	size := maxLanes
	if heatCount*maxLanes < len(order) {
		size = (len(order) + heatCount - 1) / heatCount
	}

	heats := make([][]ranked, heatCount)
	idx := 0
	for h := heatCount - 1; h >= 0 && idx < len(order); h-- {
		end := idx + size
		if end > len(order) {
			end = len(order)
		}
		heats[h] = append(heats[h], order[idx:end]...)
		idx = end
	}
	return heats
}

// separateTopTwo переносит второго по посеву из "лучшего" (последнего)
// забега в предпоследний, меняя его местами с тамошним лучшим, чтобы два
// сильнейших не встретились до финала.
func separateTopTwo(heats [][]ranked) {
	last := len(heats) - 1
	if last < 1 || len(heats[last]) < 2 || len(heats[last-1]) < 1 {
		return
	}
	heats[last][1], heats[last-1][0] = heats[last-1][0], heats[last][1]
}

func dealRoundRobin(order []ranked, heatCount int) [][]ranked {
	heats := make([][]ranked, heatCount)
	for i, p := range order {
		h := i % heatCount
		heats[h] = append(heats[h], p)
	}
	return heats
}

// dealZigzag раздает посеянных участников "змейкой" (1..N, N..1), выравнивая
// силу забегов.
func dealZigzag(order []ranked, heatCount int) [][]ranked {
	heats := make([][]ranked, heatCount)
	for i, p := range order {
		pos := i % (2 * heatCount)
		h := pos
		if pos >= heatCount {
			h = 2*heatCount - 1 - pos
		}
		heats[h] = append(heats[h], p)
	}
	return heats
}

func fillSequential(order []ranked, heatCount, maxLanes int) [][]ranked {
	size := maxLanes
	if heatCount*maxLanes < len(order) {
		size = (len(order) + heatCount - 1) / heatCount
	}

	heats := make([][]ranked, heatCount)
	idx := 0
	for h := 0; h < heatCount && idx < len(order); h++ {
		end := idx + size
		if end > len(order) {
			end = len(order)
		}
		heats[h] = append(heats[h], order[idx:end]...)
		idx = end
	}
	return heats
}
