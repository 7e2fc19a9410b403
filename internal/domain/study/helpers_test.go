package study

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedRandom returns pre-arranged draws and never shuffles, so tests
// control the exact queue layout.
type scriptedRandom struct {
	t     *testing.T
	draws []int
}

func newScriptedRandom(t *testing.T, draws ...int) *scriptedRandom {
	t.Helper()
	return &scriptedRandom{t: t, draws: draws}
}

func (r *scriptedRandom) UniformInt(lo, hi int) int {
	r.t.Helper()
	require.NotEmpty(r.t, r.draws, "unexpected draw from [%d, %d]", lo, hi)
	v := r.draws[0]
	r.draws = r.draws[1:]
	require.GreaterOrEqual(r.t, v, lo, "scripted draw below range")
	require.LessOrEqual(r.t, v, hi, "scripted draw above range")
	return v
}

func (r *scriptedRandom) Shuffle(int, func(i, j int)) {}

func (r *scriptedRandom) exhausted() bool {
	return len(r.draws) == 0
}

// makeCards builds n cards keyed "w0".."w{n-1}".
func makeCards(n int) []Card {
	cards := make([]Card, n)
	for i := range cards {
		key := fmt.Sprintf("w%d", i)
		cards[i] = Card{Key: key, Prompt: key, Auxiliary: "r" + key, Answer: "t" + key}
	}
	return cards
}

func keysOf(cards []Card) []string {
	keys := make([]string, len(cards))
	for i, c := range cards {
		keys[i] = c.Key
	}
	return keys
}

func keyCounts(cards []Card) map[string]int {
	counts := make(map[string]int, len(cards))
	for _, c := range cards {
		counts[c.Key]++
	}
	return counts
}

// startedScheduler returns a scheduler loaded with cards in their given order.
func startedScheduler(t *testing.T, cards []Card, opts ...Option) *Scheduler {
	t.Helper()
	s := NewScheduler(opts...)
	require.NoError(t, s.Start(cards, newScriptedRandom(t)))
	return s
}
