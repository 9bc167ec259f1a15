package seeding

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	ErrUnsupportedLaneMethod = errors.New("unsupported lane method")
	ErrUnsupportedLaneCount  = errors.New("lane method does not support this lane count")
)

// LaneMethod — алгоритм расстановки посеянных участников забега по дорожкам.
type LaneMethod string

const (
	LaneBestToWorst       LaneMethod = "best_to_worst"
	LaneWorstToBest       LaneMethod = "worst_to_best"
	LaneStandardOutside   LaneMethod = "standard_outside"
	LaneStandardInside    LaneMethod = "standard_inside"
	LaneWaterfall         LaneMethod = "waterfall"
	LaneWaterfallReverse  LaneMethod = "waterfall_reverse"
	LaneHalfAndHalf       LaneMethod = "half_and_half"
	LanePairs             LaneMethod = "pairs"
	LanePairsIndoor       LaneMethod = "pairs_indoor"
	LaneWAHalvesAndPairs  LaneMethod = "wa_halves_and_pairs"
	LaneWASprintsStraight LaneMethod = "wa_sprints_straight"
	LaneWA200m            LaneMethod = "wa_200m"
	LaneWA400m800m        LaneMethod = "wa_400m_800m"
	LaneWA9Lanes          LaneMethod = "wa_9_lanes"
	LaneRandom            LaneMethod = "random"
	LaneSeedTime          LaneMethod = "seed_time"
)

func (m LaneMethod) Valid() bool {
	_, procedural := laneAssigners[m]
	_, tabled := waLaneTables[m]
	return procedural || tabled
}

// waLaneTables — фиксированные перестановки "место в посеве → дорожка" по
// правилам World Athletics, ключ — число дорожек. Первые четыре посева
// получают центральные дорожки, худшие — крайние.
var waLaneTables = map[LaneMethod]map[int][]int{
	// Спринт по прямой: 1–4 посевы на 4,5,3,6; пары 5–6 → 7,2; 7–8 → 8,1.
	LaneWASprintsStraight: {8: {4, 5, 3, 6, 7, 2, 8, 1}},
	// Жеребьевка половинами и парами.
	LaneWAHalvesAndPairs: {8: {5, 4, 6, 3, 7, 2, 8, 1}},
	// 200m: лидеры посева дальше от первого виража.
	LaneWA200m: {8: {5, 6, 4, 7, 3, 8, 2, 1}},
	// 400m/800m: внешний уклон еще сильнее.
	LaneWA400m800m: {8: {6, 5, 7, 4, 8, 3, 2, 1}},
	// Девятидорожечные стадионы.
	LaneWA9Lanes: {9: {5, 6, 4, 7, 8, 3, 9, 2, 1}},
}

// laneAssigners — процедурные методы: по числу дорожек возвращают порядок
// дорожек для посевов 1..laneCount.
var laneAssigners = map[LaneMethod]func(laneCount int, rng *rand.Rand) []int{
	LaneBestToWorst:      ascendingLanes,
	LaneWaterfall:        ascendingLanes,
	LaneStandardOutside:  ascendingLanes,
	LaneWorstToBest:      descendingLanes,
	LaneWaterfallReverse: descendingLanes,
	LaneStandardInside:   descendingLanes,
	LaneHalfAndHalf:      halfAndHalfLanes,
	LanePairs:            centerOutLanes,
	LanePairsIndoor:      centerOutLanes,
	LaneSeedTime:         centerOutLanes,
	LaneRandom: func(laneCount int, rng *rand.Rand) []int {
		order := make([]int, laneCount)
		for i, lane := range rng.Perm(laneCount) {
			order[i] = lane + 1
		}
		return order
	},
}

func init() {
	// Каждый LaneMethod обязан иметь либо процедурный раздатчик, либо
	// таблицу перестановок — проверяем полноту на старте.
	all := []LaneMethod{
		LaneBestToWorst, LaneWorstToBest, LaneStandardOutside, LaneStandardInside,
		LaneWaterfall, LaneWaterfallReverse, LaneHalfAndHalf,
		LanePairs, LanePairsIndoor,
		LaneWAHalvesAndPairs, LaneWASprintsStraight, LaneWA200m, LaneWA400m800m, LaneWA9Lanes,
		LaneRandom, LaneSeedTime,
	}
	for _, m := range all {
		if !m.Valid() {
			panic(fmt.Sprintf("seeding: lane method %q has no assigner", m))
		}
	}
}

// laneOrder возвращает перестановку дорожек для посевов 1..laneCount.
func laneOrder(method LaneMethod, laneCount int, rng *rand.Rand) ([]int, error) {
	if tables, ok := waLaneTables[method]; ok {
		table, ok := tables[laneCount]
		if !ok {
			return nil, fmt.Errorf("%w: %s with %d lanes", ErrUnsupportedLaneCount, method, laneCount)
		}
		return table, nil
	}
	if assign, ok := laneAssigners[method]; ok {
		return assign(laneCount, rng), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedLaneMethod, method)
}

func ascendingLanes(laneCount int, _ *rand.Rand) []int {
	order := make([]int, laneCount)
	for i := range order {
		order[i] = i + 1
	}
	return order
}

func descendingLanes(laneCount int, _ *rand.Rand) []int {
	order := make([]int, laneCount)
	for i := range order {
		order[i] = laneCount - i
	}
	return order
}

// centerOutLanes: лучший — на центральной дорожке, дальше попеременно
// наружу (для 8 дорожек: 4,5,3,6,2,7,1,8). Тот же порядок задает пары
// дорожек для методов pairs/pairs_indoor.
func centerOutLanes(laneCount int, _ *rand.Rand) []int {
	order := make([]int, 0, laneCount)
	center := (laneCount + 1) / 2
	for offset := 0; len(order) < laneCount; offset++ {
		low := center - offset
		high := center + offset + 1
		if offset == 0 {
			order = append(order, center)
			if high <= laneCount {
				order = append(order, high)
			}
			continue
		}
		if low >= 1 {
			order = append(order, low)
		}
		if high <= laneCount && len(order) < laneCount {
			order = append(order, high)
		}
	}
	return order
}

// halfAndHalfLanes: верхняя половина посева — на центральных дорожках по
// порядку, остаток — на крайних, чередуя стороны (для 8: 3,4,5,6 потом
// 2,7,1,8).
func halfAndHalfLanes(laneCount int, _ *rand.Rand) []int {
	half := laneCount / 2
	start := (laneCount-half)/2 + 1

	order := make([]int, 0, laneCount)
	for lane := start; lane < start+half; lane++ {
		order = append(order, lane)
	}
	low, high := start-1, start+half
	for len(order) < laneCount {
		if low >= 1 {
			order = append(order, low)
			low--
		}
		if high <= laneCount && len(order) < laneCount {
			order = append(order, high)
			high++
		}
	}
	return order
}
