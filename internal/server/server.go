package server

import (
	"fmt"
	"log"
	"net/http"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/biblethink/biblethink-api/internal/bible"
	"github.com/biblethink/biblethink-api/internal/chat"
	"github.com/biblethink/biblethink-api/internal/database"
	"github.com/biblethink/biblethink-api/internal/progress"
	"github.com/biblethink/biblethink-api/pkg/config"
)

type Server struct {
	port    string
	db      database.Service
	handler http.Handler
	cfg     *config.Config

	bibleService    *bible.Service
	progressService progress.ProgressService
	chatService     chat.ChatService
}

// NewServer constructs the app server with all dependencies injected.
func NewServer(db database.Service, cfg *config.Config) *Server {
	stats := db.Health()
	fmt.Println("Database Health:", stats)

	if stats["status"] != "up" {
		log.Fatal("Database connection failed")
		return &Server{}
	}
	log.Println("Database connection successful")

	if err := database.CreateSchema(db.DB()); err != nil {
		log.Fatalf("Schema setup failed: %v", err)
	}

	bibleService := bible.NewService(bible.NewLoader(cfg.BibleSource))
	progressRepo := progress.NewRepository(db)
	progressService := progress.NewProgressService(progressRepo, bibleService)
	chatClient := chat.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
	chatService := chat.NewChatService(chatClient)

	s := &Server{
		port:            cfg.Port,
		db:              db,
		cfg:             cfg,
		bibleService:    bibleService,
		progressService: progressService,
		chatService:     chatService,
	}

	s.handler = s.RegisterRoutes()
	return s
}

// HTTPServer returns the actual *http.Server instance
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%s", s.port),
		Handler:      s.handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
