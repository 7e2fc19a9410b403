package api

import (
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"github.com/flipwise/flipwise/internal/api/shared"
	"github.com/flipwise/flipwise/internal/domain"
	"github.com/flipwise/flipwise/internal/importer"
	"github.com/flipwise/flipwise/internal/platform/logger"
	"github.com/flipwise/flipwise/internal/service"
)

// MaxImportBytes caps the size of an uploaded spreadsheet.
const MaxImportBytes = 10 << 20

// WordHandler serves words, including spreadsheet imports into a category.
type WordHandler struct {
	words         service.WordService
	importOptions importer.Options
	logger        *slog.Logger
}

// NewWordHandler creates a WordHandler. importOptions supplies the sheet
// and column layout used when a request does not override them.
func NewWordHandler(words service.WordService, importOptions importer.Options, logger *slog.Logger) *WordHandler {
	if words == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("word service cannot be nil for WordHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &WordHandler{
		words:         words,
		importOptions: importOptions,
		logger:        logger.With(slog.String("component", "word_handler")),
	}
}

// ListWords handles GET /api/categories/{id}/words.
func (h *WordHandler) ListWords(w http.ResponseWriter, r *http.Request) {
	categoryID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	words, err := h.words.ListWords(r.Context(), categoryID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list words")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, wordsToResponse(words))
}

// CreateWord handles POST /api/categories/{id}/words.
func (h *WordHandler) CreateWord(w http.ResponseWriter, r *http.Request) {
	categoryID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req WordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	word, err := h.words.CreateWord(r.Context(), categoryID, req.content())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create word")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, wordToResponse(word))
}

// GetWord handles GET /api/words/{id}.
func (h *WordHandler) GetWord(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	word, err := h.words.GetWord(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get word")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, wordToResponse(word))
}

// UpdateWord handles PUT /api/words/{id}.
func (h *WordHandler) UpdateWord(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req WordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	word, err := h.words.UpdateWord(r.Context(), id, req.content())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update word")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, wordToResponse(word))
}

// DeleteWord handles DELETE /api/words/{id}.
func (h *WordHandler) DeleteWord(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.words.DeleteWord(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete word")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ImportWords handles POST /api/categories/{id}/words/import. The body is
// an xlsx workbook, or CSV when the content type is text/csv. The optional
// query parameters sheet and start_row override the configured layout.
// Incomplete rows are skipped and reported; the remaining rows are
// imported together or not at all.
func (h *WordHandler) ImportWords(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	categoryID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	opts, err := h.optionsFromQuery(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	body := http.MaxBytesReader(w, r.Body, MaxImportBytes)
	defer func() { _ = body.Close() }()

	var result *importer.Result
	if isCSV(r) {
		result, err = importer.ParseCSV(body, opts)
	} else {
		result, err = importer.Parse(body, opts)
	}
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			shared.RespondWithErrorAndLog(w, r, http.StatusRequestEntityTooLarge, "Spreadsheet is too large", err)
		case errors.Is(err, importer.ErrUnknownSheet):
			HandleAPIError(w, r, err, "")
		default:
			shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Could not read the spreadsheet", err)
		}
		return
	}

	words, err := h.words.ImportWords(r.Context(), categoryID, result.Entries())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to import words")
		return
	}

	log.Info("words imported",
		slog.String("category_id", categoryID.String()),
		slog.Int("imported", len(words)),
		slog.Int("skipped", len(result.Errors)),
		slog.Int("blank", result.Blank))

	skipped := result.Errors
	if skipped == nil {
		skipped = []importer.RowError{}
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, ImportResponse{
		Imported: len(words),
		Words:    wordsToResponse(words),
		Skipped:  skipped,
		Blank:    result.Blank,
	})
}

func (h *WordHandler) optionsFromQuery(r *http.Request) (importer.Options, error) {
	opts := h.importOptions
	query := r.URL.Query()
	if sheet := query.Get("sheet"); sheet != "" {
		opts.Sheet = sheet
	}
	if raw := query.Get("start_row"); raw != "" {
		startRow, err := strconv.Atoi(raw)
		if err != nil || startRow < 1 {
			return opts, domain.NewValidationError("start_row", "must be a positive integer", domain.ErrValidation)
		}
		opts.StartRow = startRow
	}
	return opts, nil
}

func isCSV(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "text/csv"
}
