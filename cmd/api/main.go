package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"blogpub/cmd/app"
	"blogpub/internal/config"
	handlers "blogpub/internal/handler"
	"blogpub/internal/middleware"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	// setting up config
	cfg := config.LoadConfig()

	db, rdb, services, sessions := app.App(cfg)
	defer db.CloseDB()
	defer rdb.Close()

	handler := handlers.NewHandlers(services, sessions, db, rdb, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	router.HandleFunc("/api/auth/register", handler.Register).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/login", handler.Login).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/logout", handler.Logout).Methods(http.MethodPost)

	router.HandleFunc("/api/me", handler.Me).Methods(http.MethodGet)
	router.HandleFunc("/api/profile", handler.UpdateProfile).Methods(http.MethodPut)

	router.HandleFunc("/api/publications", handler.GetFeed).Methods(http.MethodGet)
	router.HandleFunc("/api/publications", handler.CreatePublication).Methods(http.MethodPost)
	router.HandleFunc("/api/publications/mine", handler.GetMyPublications).Methods(http.MethodGet)
	router.HandleFunc("/api/publications/search", handler.SearchPublications).Methods(http.MethodGet)
	router.HandleFunc("/api/publications/{id}", handler.GetPublication).Methods(http.MethodGet)
	router.HandleFunc("/api/publications/{id}", handler.UpdatePublication).Methods(http.MethodPut)
	router.HandleFunc("/api/publications/{id}", handler.DeletePublication).Methods(http.MethodDelete)
	router.HandleFunc("/api/publications/{id}/image", handler.GetPublicationImage).Methods(http.MethodGet)

	handlerChain := middleware.Chain(
		router,
		middleware.SessionMiddleware(sessions, cfg.SessionCookieName),
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	slog.Info("server listening", "addr", addr, "dbname", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
