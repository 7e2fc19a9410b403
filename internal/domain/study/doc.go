// Package study implements the in-session card scheduler.
//
// A Scheduler owns a CardQueue and a RecencyWindow for the lifetime of one
// study session. Each turn the caller asks for the next card with Next,
// renders it, and reports the learner's Outcome with RecordOutcome, which
// reinserts the card further back in the queue: close to the front for
// struggled cards, much farther back for easy ones. Reinsertion distance is
// randomized within the range given by a GapPolicy.
//
// Nothing in this package performs I/O or locking. Randomness is always
// supplied by the caller through the Random interface so that sessions can
// be replayed under a fixed seed.
package study
