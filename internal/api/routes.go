package api

import "github.com/go-chi/chi/v5"

// Handlers groups the resource handlers mounted under /api.
type Handlers struct {
	Decks      *DeckHandler
	Categories *CategoryHandler
	Words      *WordHandler
	Sessions   *SessionHandler
}

// RegisterRoutes mounts every handler on r. The caller adds /api and any
// middleware.
func RegisterRoutes(r chi.Router, h Handlers) {
	r.Route("/decks", func(r chi.Router) {
		r.Get("/", h.Decks.ListDecks)
		r.Post("/", h.Decks.CreateDeck)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.Decks.GetDeck)
			r.Put("/", h.Decks.UpdateDeck)
			r.Delete("/", h.Decks.DeleteDeck)
			r.Get("/categories", h.Categories.ListCategories)
			r.Post("/categories", h.Categories.CreateCategory)
		})
	})

	r.Route("/categories/{id}", func(r chi.Router) {
		r.Get("/", h.Categories.GetCategory)
		r.Put("/", h.Categories.UpdateCategory)
		r.Delete("/", h.Categories.DeleteCategory)
		r.Get("/words", h.Words.ListWords)
		r.Post("/words", h.Words.CreateWord)
		r.Post("/words/import", h.Words.ImportWords)
	})

	r.Route("/words/{id}", func(r chi.Router) {
		r.Get("/", h.Words.GetWord)
		r.Put("/", h.Words.UpdateWord)
		r.Delete("/", h.Words.DeleteWord)
	})

	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", h.Sessions.StartSession)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.Sessions.GetSession)
			r.Delete("/", h.Sessions.EndSession)
			r.Get("/card", h.Sessions.GetCurrentCard)
			r.Post("/answers", h.Sessions.SubmitAnswer)
		})
	})
}
