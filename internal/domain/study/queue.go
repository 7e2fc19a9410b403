package study

import "fmt"

// CardQueue is an ordered, index-addressable sequence of cards.
// Position 0 is the front. Sessions are small, so inserts are a plain
// slice shift.
type CardQueue struct {
	cards []Card
}

// NewCardQueue returns a queue holding a copy of cards in order.
func NewCardQueue(cards []Card) *CardQueue {
	q := &CardQueue{cards: make([]Card, len(cards))}
	copy(q.cards, cards)
	return q
}

// Size returns the number of cards in the queue.
func (q *CardQueue) Size() int {
	return len(q.cards)
}

// IsEmpty reports whether the queue has no cards.
func (q *CardQueue) IsEmpty() bool {
	return len(q.cards) == 0
}

// PeekFront returns the first card without removing it.
func (q *CardQueue) PeekFront() (Card, error) {
	if q.IsEmpty() {
		return Card{}, ErrEmptyQueue
	}
	return q.cards[0], nil
}

// RemoveFront removes and returns the first card.
func (q *CardQueue) RemoveFront() (Card, error) {
	if q.IsEmpty() {
		return Card{}, ErrEmptyQueue
	}
	front := q.cards[0]
	q.cards[0] = Card{}
	q.cards = q.cards[1:]
	return front, nil
}

// InsertAt places card so that it becomes the element at index.
// index must be within [0, Size()].
func (q *CardQueue) InsertAt(index int, card Card) error {
	if index < 0 || index > len(q.cards) {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrIndexOutOfRange, index, len(q.cards))
	}
	q.cards = append(q.cards, Card{})
	copy(q.cards[index+1:], q.cards[index:])
	q.cards[index] = card
	return nil
}

// RotateFrontToBack moves the first card to the end of the queue.
func (q *CardQueue) RotateFrontToBack() error {
	front, err := q.RemoveFront()
	if err != nil {
		return err
	}
	q.cards = append(q.cards, front)
	return nil
}

// At returns the card at index and whether index was in range.
func (q *CardQueue) At(index int) (Card, bool) {
	if index < 0 || index >= len(q.cards) {
		return Card{}, false
	}
	return q.cards[index], true
}

// Cards returns a copy of the queue contents, front first.
func (q *CardQueue) Cards() []Card {
	out := make([]Card, len(q.cards))
	copy(out, q.cards)
	return out
}
