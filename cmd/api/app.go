package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"booktracker/internal/auth"
	"booktracker/internal/catalog"
	"booktracker/internal/config"
	"booktracker/internal/httpx"
	"booktracker/internal/ingest"
	"booktracker/internal/platform/openlibrary"
	"booktracker/internal/profile"
	"booktracker/internal/readinglist"
	"booktracker/internal/session"
	"booktracker/internal/tracker"
	"booktracker/internal/user"
)

type app struct {
	cfg *config.Config

	catalogStore *catalog.FileStore
	libraries    *readinglist.Registry
	revocations  *session.Revocations
	tracker      *tracker.Tracker
	rateLimiter  *httpx.RateLimiter

	authHandler    *auth.HTTPHandler
	catalogHandler *catalog.HTTPHandler
	libraryHandler *readinglist.HTTPHandler
	trackerHandler *tracker.HTTPHandler
	profileHandler *profile.HTTPHandler
	importHandler  *ingest.HTTPHandler
}

// newApp loads the catalog and wires every service. Sessions and the rate
// limiter sweep stop when ctx is cancelled.
func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	catalogStore := catalog.NewFileStore(cfg.CatalogPath())
	if err := catalogStore.Load(); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	libraries := readinglist.NewRegistry(cfg.DataDir)
	revocations := session.NewRevocations()

	userService := user.NewService(user.NewFileStore(cfg.UsersPath()), cfg.AdminUsername, cfg.AdminPassword)
	authService := auth.NewService(cfg.JWTSecret, cfg.TokenTTL, userService, revocations)
	catalogService := catalog.NewService(catalogStore)
	readingListService := readinglist.NewService(libraries, catalogStore)
	profileService := profile.NewService(userService, readingListService)
	readingTracker := tracker.New(ctx, readingListService, cfg.ReadingTick)

	olClient := openlibrary.NewClient(cfg.OpenLibraryUserAgent, cfg.OpenLibraryRPS, cfg.OpenLibraryMaxRetries)
	ingestService := ingest.NewService(olClient, catalogStore, ingest.Config{
		BooksMax: cfg.ImportBooksMax,
		Subjects: cfg.ImportSubjects,
	})

	authService.OnLogout(func(username string) error {
		if _, err := readingTracker.Stop(username); err != nil && !errors.Is(err, tracker.ErrNoSession) {
			return err
		}
		return libraries.Release(username)
	})

	return &app{
		cfg:            cfg,
		catalogStore:   catalogStore,
		libraries:      libraries,
		revocations:    revocations,
		tracker:        readingTracker,
		rateLimiter:    httpx.NewRateLimiter(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst),
		authHandler:    auth.NewHTTPHandler(authService),
		catalogHandler: catalog.NewHTTPHandler(catalogService),
		libraryHandler: readinglist.NewHTTPHandler(readingListService),
		trackerHandler: tracker.NewHTTPHandler(readingTracker),
		profileHandler: profile.NewHTTPHandler(profileService),
		importHandler:  ingest.NewHTTPHandler(ingestService),
	}, nil
}

func (a *app) routes() http.Handler {
	router := http.NewServeMux()

	authMiddleware := httpx.AuthMiddleware(a.cfg.JWTSecret, a.revocations)
	authed := func(h http.HandlerFunc) http.Handler {
		return httpx.Chain(h, authMiddleware)
	}
	admin := func(h http.HandlerFunc) http.Handler {
		return httpx.Chain(h, authMiddleware, httpx.RequireRole(user.RoleAdmin))
	}

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.HandleFunc("POST /users/register", a.authHandler.Register)
	router.HandleFunc("POST /users/login", a.authHandler.Login)
	router.Handle("POST /users/logout", authed(a.authHandler.Logout))

	router.HandleFunc("GET /books", a.catalogHandler.List)
	router.HandleFunc("GET /books/{title}", a.catalogHandler.Get)
	router.Handle("POST /books", admin(a.catalogHandler.Create))
	router.Handle("PATCH /books/{title}", admin(a.catalogHandler.Update))
	router.Handle("DELETE /books/{title}", admin(a.catalogHandler.Delete))
	router.Handle("POST /books/import", admin(a.importHandler.Import))

	router.Handle("GET /me", authed(a.profileHandler.GetOwnProfile))
	router.Handle("GET /me/stats", authed(a.profileHandler.GetStats))
	router.Handle("GET /me/books", authed(a.libraryHandler.List))
	router.Handle("POST /me/books", authed(a.libraryHandler.Add))
	router.Handle("GET /me/books/{title}", authed(a.libraryHandler.Get))
	router.Handle("DELETE /me/books/{title}", authed(a.libraryHandler.Delete))
	router.Handle("POST /me/books/{title}/rating", authed(a.libraryHandler.Rate))
	router.Handle("POST /me/books/{title}/reviews", authed(a.libraryHandler.Review))
	router.Handle("PUT /me/books/{title}/status", authed(a.libraryHandler.ChangeStatus))
	router.Handle("POST /me/books/{title}/reading", authed(a.trackerHandler.Start))
	router.Handle("DELETE /me/books/{title}/reading", authed(a.trackerHandler.Stop))
	router.Handle("GET /me/reading", authed(a.trackerHandler.Active))

	return httpx.Chain(router,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware,
		httpx.RecoveryMiddleware,
		httpx.SecurityHeadersMiddleware(a.cfg.EnableHSTS),
		httpx.CORSMiddleware(a.cfg.CORSAllowedOrigins),
		a.rateLimiter.Middleware,
		httpx.RequestSizeLimitMiddleware(a.cfg.MaxBodyBytes),
	)
}

// close ends reading sessions and flushes every store.
func (a *app) close() error {
	a.tracker.StopAll()
	return errors.Join(
		a.libraries.SaveAll(),
		a.catalogStore.Save(),
	)
}

func (a *app) runRevocationCleanup(ctx context.Context) {
	go a.revocations.RunCleanup(ctx, 10*time.Minute)
	log.Printf("revocation cleanup started interval=%s", 10*time.Minute)
}
