package study

import "fmt"

// State is the lifecycle stage of a study session.
type State string

// Session states. Complete only leaves via Start.
const (
	StateNotStarted State = "not_started"
	StateInProgress State = "in_progress"
	StateComplete   State = "complete"
)

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithRecencyWindow sets how many recently answered keys are suppressed
// by Next. Values below 1 use DefaultRecencyWindow.
func WithRecencyWindow(capacity int) Option {
	return func(s *Scheduler) {
		s.recent = NewRecencyWindow(capacity)
	}
}

// WithGapPolicy replaces the default reinsertion ranges.
func WithGapPolicy(p GapPolicy) Option {
	return func(s *Scheduler) {
		s.policy = p
	}
}

// Scheduler decides which card is shown next and where an answered card
// goes back into the queue. It is not safe for concurrent use.
type Scheduler struct {
	queue  *CardQueue
	recent *RecencyWindow
	policy GapPolicy
	state  State
}

// NewScheduler creates an idle scheduler. Call Start to load a deck.
func NewScheduler(opts ...Option) *Scheduler {
	s := &Scheduler{
		queue:  NewCardQueue(nil),
		recent: NewRecencyWindow(DefaultRecencyWindow),
		policy: DefaultGapPolicy(),
		state:  StateNotStarted,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start shuffles cards with rng and loads them as a fresh session,
// discarding any previous queue and recency history.
func (s *Scheduler) Start(cards []Card, rng Random) error {
	if len(cards) == 0 {
		return ErrEmptyDeck
	}

	shuffled := make([]Card, len(cards))
	copy(shuffled, cards)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	s.queue = NewCardQueue(shuffled)
	s.recent.Reset()
	s.state = StateInProgress
	return nil
}

// Next returns the card to present. If the front card was answered
// recently and there is an alternative, the front is rotated to the back
// once before returning; a recent card may still surface when the queue
// is small.
func (s *Scheduler) Next() (Card, error) {
	if err := s.checkInProgress(); err != nil {
		return Card{}, err
	}
	// RecordOutcome always reinserts, so an empty queue only appears if
	// the queue was drained outside the scheduler's own operations.
	if s.queue.IsEmpty() {
		s.state = StateComplete
		return Card{}, ErrSessionComplete
	}

	front, err := s.queue.PeekFront()
	if err != nil {
		return Card{}, err
	}
	if s.queue.Size() > 1 && s.recent.Contains(front.Key) {
		if err := s.queue.RotateFrontToBack(); err != nil {
			return Card{}, err
		}
	}
	return s.queue.PeekFront()
}

// RecordOutcome removes the front card, remembers it as recently shown and
// reinserts it at a randomized distance chosen by the gap policy. It
// returns the index the card was inserted at.
func (s *Scheduler) RecordOutcome(outcome Outcome, rng Random) (int, error) {
	if err := s.checkInProgress(); err != nil {
		return 0, err
	}
	gap, err := s.policy.RangeFor(outcome)
	if err != nil {
		return 0, err
	}

	current, err := s.queue.RemoveFront()
	if err != nil {
		return 0, err
	}
	s.recent.Record(current.Key)

	at := s.insertionIndex(current, gap, rng)
	if err := s.queue.InsertAt(at, current); err != nil {
		return 0, fmt.Errorf("reinsert %q: %w", current.Key, err)
	}
	return at, nil
}

// insertionIndex picks where current goes back into the queue. The
// duplicate-neighbour bump is applied at most once.
func (s *Scheduler) insertionIndex(current Card, gap GapRange, rng Random) int {
	size := s.queue.Size()
	if size == 0 {
		return 0
	}

	target := min(rng.UniformInt(gap.Min, gap.Max), size)
	jitter := rng.UniformInt(-1, 1)
	at := clamp(target+jitter, 0, size)

	if neighbour, ok := s.queue.At(at); ok && neighbour.Key == current.Key {
		at = min(at+1, size)
	}
	return at
}

// Finish ends the session. Only Start is accepted afterwards.
func (s *Scheduler) Finish() {
	s.state = StateComplete
}

// State returns the current lifecycle stage.
func (s *Scheduler) State() State {
	return s.state
}

// Size returns the number of cards waiting in the queue.
func (s *Scheduler) Size() int {
	return s.queue.Size()
}

// Pending returns a copy of the queue, front first.
func (s *Scheduler) Pending() []Card {
	return s.queue.Cards()
}

// RecentKeys returns the keys currently suppressed by Next, oldest first.
func (s *Scheduler) RecentKeys() []string {
	return s.recent.Keys()
}

func (s *Scheduler) checkInProgress() error {
	switch s.state {
	case StateNotStarted:
		return ErrNotStarted
	case StateComplete:
		return ErrSessionComplete
	}
	return nil
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
