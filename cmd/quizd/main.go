package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"

	api "github.com/cloudprep/ccpquiz/internal/api/http"
	"github.com/cloudprep/ccpquiz/internal/auth"
	authmw "github.com/cloudprep/ccpquiz/internal/auth/middleware"
	"github.com/cloudprep/ccpquiz/internal/config"
	"github.com/cloudprep/ccpquiz/internal/db"
	"github.com/cloudprep/ccpquiz/internal/session"
)

func main() {
	cfg := config.FromEnv()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("session store: %v", err)
	}

	authSvc := authmw.NewAuthService(cfg.AuthSecret)

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/login", auth.GateLoginHandler(authSvc, cfg))

	r.Group(func(pr chi.Router) {
		pr.Use(authmw.JWTMiddleware(authSvc))

		pr.Post("/sessions", api.StartSessionHandler(store, cfg))
		pr.Route("/sessions/{sessionID}", func(sr chi.Router) {
			sr.Get("/question", api.CurrentQuestionHandler(store))
			sr.Post("/answers", api.SubmitAnswerHandler(store))
			sr.Post("/advance", api.AdvanceHandler(store))
			sr.Post("/finish", api.FinishHandler(store))
			sr.Get("/results", api.ResultsHandler(store))
			sr.Post("/reset", api.ResetHandler(store, cfg))
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (store=%s)", cfg.HTTPAddr, cfg.SessionStore)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}

func openStore(ctx context.Context, cfg config.Config) (session.Store, error) {
	switch cfg.SessionStore {
	case "memory":
		return session.NewMemoryStore(), nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, err
		}
		return session.NewRedisStore(client, 24*time.Hour), nil
	default: // "sql"
		dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
		if err != nil {
			return nil, err
		}
		return session.NewSQLStore(dbh), nil
	}
}
