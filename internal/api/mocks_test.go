package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/flipwise/flipwise/internal/api/middleware"
	"github.com/flipwise/flipwise/internal/domain"
	"github.com/flipwise/flipwise/internal/domain/study"
	"github.com/flipwise/flipwise/internal/importer"
	"github.com/flipwise/flipwise/internal/service/study_session"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type mockDeckService struct{ mock.Mock }

func (m *mockDeckService) CreateDeck(ctx context.Context, name, code string) (*domain.Deck, error) {
	args := m.Called(ctx, name, code)
	deck, _ := args.Get(0).(*domain.Deck)
	return deck, args.Error(1)
}

func (m *mockDeckService) GetDeck(ctx context.Context, id uuid.UUID) (*domain.Deck, error) {
	args := m.Called(ctx, id)
	deck, _ := args.Get(0).(*domain.Deck)
	return deck, args.Error(1)
}

func (m *mockDeckService) ListDecks(ctx context.Context) ([]*domain.Deck, error) {
	args := m.Called(ctx)
	decks, _ := args.Get(0).([]*domain.Deck)
	return decks, args.Error(1)
}

func (m *mockDeckService) UpdateDeck(ctx context.Context, id uuid.UUID, name, code string) (*domain.Deck, error) {
	args := m.Called(ctx, id, name, code)
	deck, _ := args.Get(0).(*domain.Deck)
	return deck, args.Error(1)
}

func (m *mockDeckService) DeleteDeck(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockCategoryService struct{ mock.Mock }

func (m *mockCategoryService) CreateCategory(ctx context.Context, deckID uuid.UUID, name string) (*domain.Category, error) {
	args := m.Called(ctx, deckID, name)
	c, _ := args.Get(0).(*domain.Category)
	return c, args.Error(1)
}

func (m *mockCategoryService) GetCategory(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*domain.Category)
	return c, args.Error(1)
}

func (m *mockCategoryService) ListCategories(ctx context.Context, deckID uuid.UUID) ([]*domain.Category, error) {
	args := m.Called(ctx, deckID)
	c, _ := args.Get(0).([]*domain.Category)
	return c, args.Error(1)
}

func (m *mockCategoryService) UpdateCategory(ctx context.Context, id uuid.UUID, name string) (*domain.Category, error) {
	args := m.Called(ctx, id, name)
	c, _ := args.Get(0).(*domain.Category)
	return c, args.Error(1)
}

func (m *mockCategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockWordService struct{ mock.Mock }

func (m *mockWordService) CreateWord(ctx context.Context, categoryID uuid.UUID, content domain.WordContent) (*domain.Word, error) {
	args := m.Called(ctx, categoryID, content)
	w, _ := args.Get(0).(*domain.Word)
	return w, args.Error(1)
}

func (m *mockWordService) GetWord(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	args := m.Called(ctx, id)
	w, _ := args.Get(0).(*domain.Word)
	return w, args.Error(1)
}

func (m *mockWordService) ListWords(ctx context.Context, categoryID uuid.UUID) ([]*domain.Word, error) {
	args := m.Called(ctx, categoryID)
	w, _ := args.Get(0).([]*domain.Word)
	return w, args.Error(1)
}

func (m *mockWordService) UpdateWord(ctx context.Context, id uuid.UUID, content domain.WordContent) (*domain.Word, error) {
	args := m.Called(ctx, id, content)
	w, _ := args.Get(0).(*domain.Word)
	return w, args.Error(1)
}

func (m *mockWordService) DeleteWord(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockWordService) ImportWords(ctx context.Context, categoryID uuid.UUID, entries []domain.WordContent) ([]*domain.Word, error) {
	args := m.Called(ctx, categoryID, entries)
	w, _ := args.Get(0).([]*domain.Word)
	return w, args.Error(1)
}

func (m *mockWordService) WordsForCategories(ctx context.Context, ids []uuid.UUID) ([]*domain.Word, error) {
	args := m.Called(ctx, ids)
	w, _ := args.Get(0).([]*domain.Word)
	return w, args.Error(1)
}

type mockSessionService struct{ mock.Mock }

func (m *mockSessionService) Start(ctx context.Context, ids []uuid.UUID) (*study_session.Summary, error) {
	args := m.Called(ctx, ids)
	s, _ := args.Get(0).(*study_session.Summary)
	return s, args.Error(1)
}

func (m *mockSessionService) Current(ctx context.Context, id uuid.UUID) (study.Card, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(study.Card)
	return c, args.Error(1)
}

func (m *mockSessionService) Answer(ctx context.Context, id uuid.UUID, outcome study.Outcome) (*study_session.AnswerResult, error) {
	args := m.Called(ctx, id, outcome)
	r, _ := args.Get(0).(*study_session.AnswerResult)
	return r, args.Error(1)
}

func (m *mockSessionService) Get(ctx context.Context, id uuid.UUID) (*study_session.Summary, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*study_session.Summary)
	return s, args.Error(1)
}

func (m *mockSessionService) End(ctx context.Context, id uuid.UUID) (*study_session.Summary, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*study_session.Summary)
	return s, args.Error(1)
}

func (m *mockSessionService) Sweep(ctx context.Context) int {
	return m.Called(ctx).Int(0)
}

func (m *mockSessionService) ActiveSessions() int {
	return m.Called().Int(0)
}

type testServer struct {
	decks      *mockDeckService
	categories *mockCategoryService
	words      *mockWordService
	sessions   *mockSessionService
	router     http.Handler
}

func newTestServer() *testServer {
	ts := &testServer{
		decks:      &mockDeckService{},
		categories: &mockCategoryService{},
		words:      &mockWordService{},
		sessions:   &mockSessionService{},
	}
	ts.router = newRouter(Handlers{
		Decks:      NewDeckHandler(ts.decks, discard),
		Categories: NewCategoryHandler(ts.categories, discard),
		Words:      NewWordHandler(ts.words, importer.DefaultOptions(), discard),
		Sessions:   NewSessionHandler(ts.sessions, discard),
	})
	return ts
}

func newRouter(h Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Trace(discard))
	r.Route("/api", func(r chi.Router) {
		RegisterRoutes(r, h)
	})
	return r
}

func (ts *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func (ts *testServer) assertExpectations(t mock.TestingT) {
	ts.decks.AssertExpectations(t)
	ts.categories.AssertExpectations(t)
	ts.words.AssertExpectations(t)
	ts.sessions.AssertExpectations(t)
}
