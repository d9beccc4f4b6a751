package main

import (
	"context"
	"fmt"
	"strings"

	"booktracker/internal/ingest"
	"booktracker/internal/platform/openlibrary"

	"github.com/spf13/cobra"
)

func newCatalogCmd(getEnv func() *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse and manage the shared catalog",
	}
	cmd.AddCommand(
		newCatalogListCmd(getEnv),
		newCatalogShowCmd(getEnv),
		newCatalogAddCmd(getEnv),
		newCatalogEditCmd(getEnv),
		newCatalogRemoveCmd(getEnv),
		newCatalogImportCmd(getEnv),
	)
	return cmd
}

func newCatalogListCmd(getEnv func() *env) *cobra.Command {
	var query string
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog books, optionally filtered by title or author",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			books, total := getEnv().catalog.Search(query, limit, 0)
			printBooks(cmd.OutOrStdout(), books)
			if total > len(books) {
				fmt.Fprintf(cmd.OutOrStdout(), "... %d of %d shown\n", len(books), total)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "case-insensitive title or author filter")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of books to show (0 for all)")
	return cmd
}

func newCatalogShowCmd(getEnv func() *env) *cobra.Command {
	return &cobra.Command{
		Use:   "show <title>",
		Short: "Show one catalog book with its reviews",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := getEnv().catalog.Get(args[0])
			if err != nil {
				return err
			}
			printBook(cmd.OutOrStdout(), b)
			return nil
		},
	}
}

func newCatalogAddCmd(getEnv func() *env) *cobra.Command {
	return &cobra.Command{
		Use:   "add <title> <author>",
		Short: "Add a book to the catalog (admin)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := getEnv()
			if _, err := e.requireAdmin(); err != nil {
				return err
			}
			if err := rejectCommas(args...); err != nil {
				return err
			}
			b, err := e.catalog.Create(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %q by %s\n", b.Title, b.Author)
			return nil
		},
	}
}

func newCatalogEditCmd(getEnv func() *env) *cobra.Command {
	var newTitle, newAuthor string

	cmd := &cobra.Command{
		Use:   "edit <title>",
		Short: "Change a catalog book's title or author (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := getEnv()
			if _, err := e.requireAdmin(); err != nil {
				return err
			}
			if err := rejectCommas(newTitle, newAuthor); err != nil {
				return err
			}
			b, err := e.catalog.Update(args[0], newTitle, newAuthor)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %q by %s\n", b.Title, b.Author)
			return nil
		},
	}
	cmd.Flags().StringVar(&newTitle, "title", "", "new title (unchanged if empty)")
	cmd.Flags().StringVar(&newAuthor, "author", "", "new author (unchanged if empty)")
	return cmd
}

func newCatalogRemoveCmd(getEnv func() *env) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <title>",
		Short: "Remove every catalog book with this title (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := getEnv()
			if _, err := e.requireAdmin(); err != nil {
				return err
			}
			if err := e.catalog.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %q\n", args[0])
			return nil
		},
	}
}

func newCatalogImportCmd(getEnv func() *env) *cobra.Command {
	var subjects []string
	var booksMax int

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import books from Open Library by subject (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e := getEnv()
			if _, err := e.requireAdmin(); err != nil {
				return err
			}

			cfg := ingest.Config{BooksMax: e.cfg.ImportBooksMax, Subjects: e.cfg.ImportSubjects}
			if len(subjects) > 0 {
				cfg.Subjects = subjects
			}
			if booksMax > 0 {
				cfg.BooksMax = booksMax
			}

			client := openlibrary.NewClient(e.cfg.OpenLibraryUserAgent, e.cfg.OpenLibraryRPS, e.cfg.OpenLibraryMaxRetries)
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			run, err := ingest.NewService(client, e.catalogStore, cfg).Run(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d books (%d fetched, %d already in catalog, %d unusable)\n",
				run.BooksAdded, run.BooksFetched, run.SkippedExisting, run.SkippedInvalid)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&subjects, "subject", nil, "Open Library subject to search (repeatable)")
	cmd.Flags().IntVar(&booksMax, "max", 0, "maximum number of books to add")
	return cmd
}

// rejectCommas keeps user input from shifting columns in the record files.
func rejectCommas(values ...string) error {
	for _, v := range values {
		if strings.Contains(v, ",") {
			return fmt.Errorf("%q: commas are not allowed", v)
		}
	}
	return nil
}
