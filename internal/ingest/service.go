package ingest

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"booktracker/internal/book"
	"booktracker/internal/catalog"
	"booktracker/internal/platform/openlibrary"
)

type Config struct {
	BooksMax int
	Subjects []string
}

type OpenLibraryClient interface {
	SearchBooks(ctx context.Context, subject string, limit int) (*openlibrary.SearchResponse, error)
}

type Service struct {
	olClient    OpenLibraryClient
	catalogRepo catalog.Repository
	cfg         Config
}

func NewService(olClient OpenLibraryClient, catalogRepo catalog.Repository, cfg Config) *Service {
	return &Service{
		olClient:    olClient,
		catalogRepo: catalogRepo,
		cfg:         cfg,
	}
}

// Run adds up to BooksMax new books from the configured subjects. Titles
// already in the catalog are skipped, as are results whose title or author
// would not survive the comma-delimited catalog file.
func (s *Service) Run(ctx context.Context) (run Run, err error) {
	return s.RunWith(ctx, s.cfg)
}

// RunWith is Run with an explicit configuration.
func (s *Service) RunWith(ctx context.Context, cfg Config) (run Run, err error) {
	run = Run{
		Status:    StatusRunning,
		Subjects:  cfg.Subjects,
		BooksMax:  cfg.BooksMax,
		StartedAt: time.Now(),
	}

	defer func() {
		now := time.Now()
		run.FinishedAt = &now
		if err != nil && run.Error == "" {
			run.Error = err.Error()
		}
		if run.Error != "" {
			run.Status = StatusFailed
		} else {
			run.Status = StatusCompleted
		}
		log.Printf("ingest: run finished status=%s fetched=%d added=%d skipped_existing=%d skipped_invalid=%d",
			run.Status, run.BooksFetched, run.BooksAdded, run.SkippedExisting, run.SkippedInvalid)
	}()

	if cfg.BooksMax <= 0 {
		return run, nil
	}

	seen := make(map[string]bool)
	for _, subject := range cfg.Subjects {
		if run.BooksAdded >= cfg.BooksMax {
			break
		}

		needed := cfg.BooksMax - run.BooksAdded
		searchLimit := min(100, needed*2)

		res, err := s.olClient.SearchBooks(ctx, subject, searchLimit)
		if err != nil {
			run.Error = fmt.Sprintf("search failed for %s: %v", subject, err)
			return run, err
		}
		run.BooksFetched += len(res.Docs)

		for _, doc := range res.Docs {
			if run.BooksAdded >= cfg.BooksMax {
				break
			}

			title := strings.TrimSpace(doc.Title)
			author := firstAuthor(doc.AuthorNames)
			if title == "" || author == "" || strings.Contains(title, ",") || strings.Contains(author, ",") {
				run.SkippedInvalid++
				continue
			}

			key := strings.ToLower(title)
			if seen[key] {
				continue
			}
			seen[key] = true

			if _, exists := s.catalogRepo.FindByTitle(title); exists {
				run.SkippedExisting++
				continue
			}

			s.catalogRepo.Add(book.New(title, author))
			run.BooksAdded++
		}
	}

	return run, nil
}

func firstAuthor(names []string) string {
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			return n
		}
	}
	return ""
}
