package study_session

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/flipwise/flipwise/internal/domain"
	"github.com/flipwise/flipwise/internal/domain/study"
	"github.com/flipwise/flipwise/internal/platform/logger"
	"github.com/google/uuid"
)

// WordSource loads the words a session studies.
type WordSource interface {
	WordsForCategories(ctx context.Context, categoryIDs []uuid.UUID) ([]*domain.Word, error)
}

// Summary describes a session's progress.
type Summary struct {
	ID           uuid.UUID   `json:"id"`
	State        study.State `json:"state"`
	CategoryIDs  []uuid.UUID `json:"category_ids"`
	QueueSize    int         `json:"queue_size"`
	Turns        int         `json:"turns"`
	Struggled    int         `json:"struggled"`
	Easy         int         `json:"easy"`
	StartedAt    time.Time   `json:"started_at"`
	LastActivity time.Time   `json:"last_activity"`
}

// AnswerResult reports where an answered card went and what comes next.
type AnswerResult struct {
	Answered study.Card    `json:"answered"`
	Outcome  study.Outcome `json:"outcome"`
	// Position is the queue index the answered card was reinserted at.
	Position int         `json:"position"`
	Next     *study.Card `json:"next,omitempty"`
	Summary  Summary     `json:"summary"`
}

// Service runs study sessions.
type Service interface {
	// Start loads the words of categoryIDs into a new session. Returns
	// study.ErrEmptyDeck when the categories hold no words and
	// ErrTooManySessions when the registry is full.
	Start(ctx context.Context, categoryIDs []uuid.UUID) (*Summary, error)

	// Current returns the card on display. Repeated calls return the same
	// card until it is answered.
	Current(ctx context.Context, id uuid.UUID) (study.Card, error)

	// Answer records the outcome for the card on display and presents the
	// next one.
	Answer(ctx context.Context, id uuid.UUID, outcome study.Outcome) (*AnswerResult, error)

	Get(ctx context.Context, id uuid.UUID) (*Summary, error)

	// End finishes and forgets the session, returning its final summary.
	End(ctx context.Context, id uuid.UUID) (*Summary, error)

	// Sweep removes sessions idle for longer than the TTL.
	Sweep(ctx context.Context) int

	// ActiveSessions returns the number of registered sessions.
	ActiveSessions() int
}

type serviceImpl struct {
	words    WordSource
	cfg      Config
	sessions *registry
	logger   *slog.Logger
}

var _ Service = (*serviceImpl)(nil)

// NewService creates a study session Service.
func NewService(words WordSource, cfg Config, logger *slog.Logger) (Service, error) {
	if words == nil {
		return nil, domain.NewValidationError("words", "cannot be nil", domain.ErrValidation)
	}
	cfg = cfg.withDefaults()
	if err := cfg.GapPolicy.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &serviceImpl{
		words:    words,
		cfg:      cfg,
		sessions: newRegistry(cfg.MaxActive, cfg.SessionTTL),
		logger:   logger.With(slog.String("component", "study_session_service")),
	}, nil
}

func (s *serviceImpl) Start(ctx context.Context, categoryIDs []uuid.UUID) (*Summary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	ids := uniqueIDs(categoryIDs)
	if len(ids) == 0 {
		return nil, ErrNoCategories
	}

	words, err := s.words.WordsForCategories(ctx, ids)
	if err != nil {
		log.Error("failed to load words for session", slog.String("error", err.Error()))
		return nil, &ServiceError{Operation: "start", Message: "failed to load words", Err: err}
	}

	scheduler := study.NewScheduler(
		study.WithRecencyWindow(s.cfg.RecencyWindow),
		study.WithGapPolicy(*s.cfg.GapPolicy),
	)
	rng := s.cfg.RandomSource()
	if err := scheduler.Start(domain.CardsFromWords(words), rng); err != nil {
		return nil, err
	}

	now := s.cfg.Clock().UTC()
	sess := &session{
		id:          uuid.New(),
		categoryIDs: ids,
		scheduler:   scheduler,
		rng:         rng,
		startedAt:   now,
	}
	sess.touch(now)

	if err := s.sessions.add(sess, now); err != nil {
		log.Warn("session registry full", slog.Int("active", s.sessions.count()))
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	summary := sess.summary()

	log.Info("study session started",
		slog.String("session_id", sess.id.String()),
		slog.Int("cards", len(words)),
		slog.Int("categories", len(ids)))
	return &summary, nil
}

func (s *serviceImpl) Current(ctx context.Context, id uuid.UUID) (study.Card, error) {
	now := s.cfg.Clock().UTC()
	sess, err := s.sessions.get(id, now)
	if err != nil {
		return study.Card{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	card, err := present(sess)
	if err != nil {
		return study.Card{}, err
	}
	sess.touch(now)
	return card, nil
}

func (s *serviceImpl) Answer(ctx context.Context, id uuid.UUID, outcome study.Outcome) (*AnswerResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !outcome.Valid() {
		return nil, study.ErrInvalidOutcome
	}

	now := s.cfg.Clock().UTC()
	sess, err := s.sessions.get(id, now)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	answered, err := present(sess)
	if err != nil {
		return nil, err
	}

	position, err := sess.scheduler.RecordOutcome(outcome, sess.rng)
	if err != nil {
		return nil, err
	}
	sess.presented = nil
	sess.turns++
	switch outcome {
	case study.OutcomeStruggled:
		sess.struggled++
	case study.OutcomeEasy:
		sess.easy++
	}

	result := &AnswerResult{
		Answered: answered,
		Outcome:  outcome,
		Position: position,
	}
	next, err := present(sess)
	switch {
	case err == nil:
		result.Next = &next
	case errors.Is(err, study.ErrSessionComplete):
		// nothing left to show
	default:
		return nil, err
	}

	sess.touch(now)
	result.Summary = sess.summary()

	log.Debug("answer recorded",
		slog.String("session_id", id.String()),
		slog.String("card", answered.Key),
		slog.String("outcome", string(outcome)),
		slog.Int("position", position))
	return result, nil
}

func (s *serviceImpl) Get(ctx context.Context, id uuid.UUID) (*Summary, error) {
	sess, err := s.sessions.get(id, s.cfg.Clock().UTC())
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	summary := sess.summary()
	return &summary, nil
}

func (s *serviceImpl) End(ctx context.Context, id uuid.UUID) (*Summary, error) {
	sess, err := s.sessions.remove(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.scheduler.Finish()
	sess.presented = nil
	summary := sess.summary()

	logger.FromContextOrDefault(ctx, s.logger).Info("study session ended",
		slog.String("session_id", id.String()),
		slog.Int("turns", summary.Turns),
		slog.Int("struggled", summary.Struggled),
		slog.Int("easy", summary.Easy))
	return &summary, nil
}

func (s *serviceImpl) Sweep(ctx context.Context) int {
	removed := s.sessions.sweep(s.cfg.Clock().UTC())
	if removed > 0 {
		logger.FromContextOrDefault(ctx, s.logger).Info("expired study sessions removed",
			slog.Int("removed", removed),
			slog.Int("active", s.sessions.count()))
	}
	return removed
}

func (s *serviceImpl) ActiveSessions() int {
	return s.sessions.count()
}

// present returns the card on display, asking the scheduler for one if
// nothing is shown yet. Must be called with sess.mu held.
func present(sess *session) (study.Card, error) {
	if sess.presented != nil {
		return *sess.presented, nil
	}
	card, err := sess.scheduler.Next()
	if err != nil {
		return study.Card{}, err
	}
	sess.presented = &card
	return card, nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
