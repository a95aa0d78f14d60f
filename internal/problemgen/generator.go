package problemgen

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Generator produces arithmetic questions.
type Generator interface {
	// Generate returns a new question. It never fails.
	Generate() *Question
}

// RandomGenerator draws operations and operands uniformly at random.
type RandomGenerator struct {
	ranges Ranges
	rng    *rand.Rand
}

var _ Generator = (*RandomGenerator)(nil)

// NewRandom creates a RandomGenerator over the given ranges. A nil rng
// seeds a fresh source from the clock. Ranges that could make the
// subtraction redraw loop spin forever are rejected here.
func NewRandom(ranges Ranges, rng *rand.Rand) (*RandomGenerator, error) {
	if err := ranges.Validate(); err != nil {
		return nil, fmt.Errorf("generator ranges: %w", err)
	}
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	return &RandomGenerator{ranges: ranges, rng: rng}, nil
}

// Generate picks addition or subtraction with equal probability.
func (g *RandomGenerator) Generate() *Question {
	if g.rng.IntN(2) == 0 {
		return g.subtraction()
	}
	return g.addition()
}

// subtraction redraws both operands until the minuend is strictly greater
// than the subtrahend, so the answer is always positive.
func (g *RandomGenerator) subtraction() *Question {
	minuend := g.draw(g.ranges.Minuend)
	subtrahend := g.draw(g.ranges.Subtrahend)
	for minuend <= subtrahend {
		minuend = g.draw(g.ranges.Minuend)
		subtrahend = g.draw(g.ranges.Subtrahend)
	}
	return NewQuestion(OpSubtraction, minuend, subtrahend)
}

func (g *RandomGenerator) addition() *Question {
	return NewQuestion(OpAddition, g.draw(g.ranges.Addend1), g.draw(g.ranges.Addend2))
}

func (g *RandomGenerator) draw(r Range) int {
	return r.Min + g.rng.IntN(r.Max-r.Min+1)
}
