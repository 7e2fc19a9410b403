package study

import "fmt"

// GapRange is an inclusive range of reinsertion distances, counted in
// positions forward from the front of the queue.
type GapRange struct {
	Min int
	Max int
}

// Validate checks that the range is non-negative and ordered.
func (r GapRange) Validate() error {
	if r.Min < 0 || r.Max < r.Min {
		return fmt.Errorf("%w: [%d, %d]", ErrInvalidGapRange, r.Min, r.Max)
	}
	return nil
}

// GapPolicy maps each Outcome to the range its card is reinserted within.
type GapPolicy struct {
	Struggled GapRange
	Easy      GapRange
}

// DefaultGapPolicy returns the standard spacing: struggled cards come back
// after 4-7 cards, easy cards after 25-60.
func DefaultGapPolicy() GapPolicy {
	return GapPolicy{
		Struggled: GapRange{Min: 4, Max: 7},
		Easy:      GapRange{Min: 25, Max: 60},
	}
}

// Validate checks both ranges.
func (p GapPolicy) Validate() error {
	if err := p.Struggled.Validate(); err != nil {
		return fmt.Errorf("struggled: %w", err)
	}
	if err := p.Easy.Validate(); err != nil {
		return fmt.Errorf("easy: %w", err)
	}
	return nil
}

// RangeFor returns the gap range for outcome.
func (p GapPolicy) RangeFor(outcome Outcome) (GapRange, error) {
	switch outcome {
	case OutcomeStruggled:
		return p.Struggled, nil
	case OutcomeEasy:
		return p.Easy, nil
	default:
		return GapRange{}, fmt.Errorf("%w: %q", ErrInvalidOutcome, outcome)
	}
}
