package cpu

import (
	"math/rand"
	"time"
)

// RandomSource supplies the bytes consumed by RND.
type RandomSource interface {
	NextByte() uint8
}

// LiveRandom is a pseudo random source backed by math/rand.
type LiveRandom struct {
	rnd *rand.Rand
}

// NewLiveRandom seeds a generator, a zero seed picks one from the clock.
func NewLiveRandom(seed int64) *LiveRandom {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &LiveRandom{rnd: rand.New(rand.NewSource(seed))}
}

func (r *LiveRandom) NextByte() uint8 {
	return uint8(r.rnd.Intn(256))
}

// FixedRandom replays a fixed sequence, wrapping around at the end.
type FixedRandom struct {
	values []uint8
	pos    int
}

func NewFixedRandom(values ...uint8) *FixedRandom {
	return &FixedRandom{values: values}
}

func (r *FixedRandom) NextByte() uint8 {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[r.pos%len(r.values)]
	r.pos++
	return v
}
