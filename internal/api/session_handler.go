package api

import (
	"log/slog"
	"net/http"

	"github.com/flipwise/flipwise/internal/api/shared"
	"github.com/flipwise/flipwise/internal/domain/study"
	"github.com/flipwise/flipwise/internal/platform/logger"
	"github.com/flipwise/flipwise/internal/service/study_session"
)

// SessionHandler serves /api/sessions, the study loop: start a session,
// read the card on display, answer it, and end the session.
type SessionHandler struct {
	sessions study_session.Service
	logger   *slog.Logger
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(sessions study_session.Service, logger *slog.Logger) *SessionHandler {
	if sessions == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("study session service cannot be nil for SessionHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionHandler{
		sessions: sessions,
		logger:   logger.With(slog.String("component", "session_handler")),
	}
}

// StartSession handles POST /api/sessions. The response carries the first
// card so clients can start without a second round trip.
func (h *SessionHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req StartSessionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	summary, err := h.sessions.Start(r.Context(), req.CategoryIDs)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to start study session")
		return
	}

	resp := SessionResponse{Session: *summary}
	card, err := h.sessions.Current(r.Context(), summary.ID)
	if err != nil {
		// The session exists either way; the client can fetch the card later.
		log.Warn("failed to present first card",
			slog.String("session_id", summary.ID.String()),
			slog.String("error", err.Error()))
	} else {
		resp.Card = &card
		if refreshed, err := h.sessions.Get(r.Context(), summary.ID); err == nil {
			resp.Session = *refreshed
		}
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, resp)
}

// GetSession handles GET /api/sessions/{id}.
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	summary, err := h.sessions.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get study session")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, summary)
}

// GetCurrentCard handles GET /api/sessions/{id}/card. Repeated calls
// return the same card until it is answered.
func (h *SessionHandler) GetCurrentCard(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	card, err := h.sessions.Current(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get current card")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, CardResponse{SessionID: id, Card: card})
}

// SubmitAnswer handles POST /api/sessions/{id}/answers.
func (h *SessionHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req AnswerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	outcome, err := study.ParseOutcome(req.Outcome)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	result, err := h.sessions.Answer(r.Context(), id, outcome)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to submit answer")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// EndSession handles DELETE /api/sessions/{id} and returns the final
// summary.
func (h *SessionHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	summary, err := h.sessions.End(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to end study session")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, summary)
}
