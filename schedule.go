package p0gen

import (
	set3 "github.com/TomTonic/Set3"
)

const (
	// ScheduleLength is the number of rotation amounts in one schedule (one per permutation round).
	ScheduleLength = MaxRounds
	// NumSchedules is the number of schedules drawn from one stream.
	NumSchedules = 4
)

// DefaultScheduleSeed is the seed the published schedules ROT1..ROT4 were generated from.
const DefaultScheduleSeed = "p0"

// Schedule is an ordered list of 64-bit rotation amounts.
type Schedule []int

// ValidRotations returns a fresh slice with the odd integers in [1,63].
func ValidRotations() []int {
	r := make([]int, 0, 32)
	for x := 1; x < 64; x += 2 {
		r = append(r, x)
	}
	return r
}

// ScheduleGenerator draws rotation schedules from a single DPRNG stream.
// Schedules must be drawn in order; the stream is never reseeded.
type ScheduleGenerator struct {
	rng *DPRNG
}

// NewScheduleGenerator returns a generator whose stream is seeded by SeedFromString(seed).
func NewScheduleGenerator(seed string) *ScheduleGenerator {
	return &ScheduleGenerator{rng: NewDPRNGFromString(seed)}
}

// Next returns the next schedule of ScheduleLength rotation amounts.
func (g *ScheduleGenerator) Next() Schedule {
	return g.next(ScheduleLength)
}

// next samples length values without replacement from a shuffled pool of ValidRotations.
// When the pool runs dry it is refilled with a freshly shuffled copy of the full domain,
// so duplicates can only appear for length > 32.
func (g *ScheduleGenerator) next(length int) Schedule {
	schedule := make(Schedule, 0, length)
	pool := g.freshPool()
	for range length {
		if len(pool) == 0 {
			pool = g.freshPool()
		}
		last := len(pool) - 1
		schedule = append(schedule, pool[last])
		pool = pool[:last]
	}
	return schedule
}

func (g *ScheduleGenerator) freshPool() []int {
	pool := ValidRotations()
	g.rng.Shuffle(pool)
	return pool
}

// GenerateSchedules draws NumSchedules schedules, in order, from the stream seeded by seed.
func GenerateSchedules(seed string) [NumSchedules]Schedule {
	g := NewScheduleGenerator(seed)
	var out [NumSchedules]Schedule
	for i := range out {
		out[i] = g.Next()
	}
	return out
}

// HasDuplicates reports whether any value occurs more than once in s.
func HasDuplicates(s Schedule) bool {
	distinct := set3.EmptyWithCapacity[int](uint32(len(s)))
	for _, v := range s {
		distinct.Add(v)
	}
	return int(distinct.Size()) != len(s)
}
