package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/biblethink/biblethink-api/internal/auth"
	"github.com/biblethink/biblethink-api/internal/bible"
	"github.com/biblethink/biblethink-api/internal/chat"
	"github.com/biblethink/biblethink-api/internal/mood"
	"github.com/biblethink/biblethink-api/internal/progress"
	"github.com/biblethink/biblethink-api/pkg/response"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Get home route
	r.Get("/", s.ServerIsWorking)

	r.Route("/biblethink/v1", func(r chi.Router) {
		s.loadAuthRoutes(r)
		s.loadBibleRoutes(r)
		s.loadProgressRoutes(r)
		s.loadChatRoutes(r)
	})
	r.Get("/biblethink/v1", s.ServerIsWorking)

	return r
}

func (s *Server) ServerIsWorking(w http.ResponseWriter, r *http.Request) {
	resp := make(map[string]string)
	resp["message"] = "Welcome to BibleThink api"
	response.Success(w, resp, "Success")
}

func (s *Server) loadAuthRoutes(router chi.Router) {
	authRepo := auth.NewRepository(s.db)
	authService := auth.NewAuthService(authRepo)
	authHandler := auth.NewHandler(authService)

	router.Post("/auth/register", authHandler.RegisterHandler)
	router.Post("/auth/login", authHandler.LoginHandler)

	router.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Get("/auth/me", authHandler.GetUserDetailsHandler)
	})
}

func (s *Server) loadBibleRoutes(router chi.Router) {
	bibleHandler := bible.NewHandler(s.bibleService)
	moodHandler := mood.NewHandler()

	router.Group(func(r chi.Router) {
		r.Get("/passages", bibleHandler.GetPassageHandler)
		r.Get("/passages/random", bibleHandler.GetRandomPassageHandler)
		r.Get("/books", bibleHandler.GetBooksHandler)
		r.Get("/search", bibleHandler.SearchHandler)

		r.Get("/moods", moodHandler.GetMoodsHandler)
		r.Get("/moods/{id}", moodHandler.GetMoodHandler)
		r.Get("/moods/{id}/random", moodHandler.GetRandomMoodPassageHandler)
	})
}

func (s *Server) loadProgressRoutes(router chi.Router) {
	progressHandler := progress.NewHandler(s.progressService)

	router.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Post("/progress/read", progressHandler.MarkReadHandler)
		r.Get("/progress", progressHandler.GetSummaryHandler)
		r.Get("/progress/passages", progressHandler.ListReadHandler)
		r.Get("/progress/is-read", progressHandler.IsReadHandler)
		r.Get("/progress/notes", progressHandler.GetNotesHandler)
		r.Put("/progress/notes", progressHandler.UpdateNotesHandler)
		r.Get("/progress/unread-passage", progressHandler.UnreadPassageHandler)
		r.Get("/progress/unread-count", progressHandler.UnreadCountHandler)
	})
}

func (s *Server) loadChatRoutes(router chi.Router) {
	chatHandler := chat.NewHandler(s.chatService)

	router.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Post("/chat/message", chatHandler.SendMessageHandler)
		r.Post("/chat/reflection-questions", chatHandler.ReflectionQuestionsHandler)
	})
}
