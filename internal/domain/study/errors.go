package study

import "errors"

// Sentinel errors returned by the scheduler and its components.
// Use errors.Is to check for them.
var (
	// ErrEmptyDeck is returned by Start when no cards are supplied.
	// The session cannot begin.
	ErrEmptyDeck = errors.New("study: cannot start a session with no cards")

	// ErrEmptyQueue is returned when a queue operation needs a card but the
	// queue is empty. It indicates a caller protocol error.
	ErrEmptyQueue = errors.New("study: card queue is empty")

	// ErrIndexOutOfRange is returned by CardQueue.InsertAt for an index
	// outside [0, Size()]. Callers must clamp first.
	ErrIndexOutOfRange = errors.New("study: queue index out of range")

	// ErrSessionComplete signals that no further cards will be presented.
	// It is a control signal rather than a failure.
	ErrSessionComplete = errors.New("study: session complete")

	// ErrNotStarted is returned when Next or RecordOutcome is called before Start.
	ErrNotStarted = errors.New("study: session not started")

	// ErrInvalidOutcome is returned for an outcome other than struggled or easy.
	ErrInvalidOutcome = errors.New("study: invalid outcome")

	// ErrInvalidGapRange is returned when a GapPolicy range is malformed.
	ErrInvalidGapRange = errors.New("study: invalid gap range")
)
