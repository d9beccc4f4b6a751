package main

import (
	"fmt"
	"log"
	"math/rand"

	"booktracker/internal/book"

	"github.com/spf13/cobra"
)

var authors = []string{
	"Ann Leckie", "Octavia Butler", "Ted Chiang", "Iain Banks", "N.K. Jemisin",
	"Gene Wolfe", "Jo Walton", "China Mieville", "Becky Chambers", "Ken Liu",
}

func newSeedCmd(getEnv func() *env) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill the catalog with generated books (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e := getEnv()
			if _, err := e.requireAdmin(); err != nil {
				return err
			}

			log.Printf("Generating %d books...", count)
			for i := 0; i < count; i++ {
				title := fmt.Sprintf("Book Title %d - %s", i+1, getRandomWord())
				e.catalogStore.Add(book.New(title, authors[rand.Intn(len(authors))]))

				if (i+1)%1000 == 0 {
					log.Printf("Generated %d/%d books", i+1, count)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d books; catalog now holds %d\n", count, len(e.catalogStore.All()))
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 100, "number of books to generate")
	return cmd
}

func getRandomWord() string {
	words := []string{
		"Adventure", "Mystery", "Journey", "Discovery", "Secrets", "Dreams", "Hope",
		"Love", "War", "Peace", "Science", "Nature", "Technology", "History", "Future",
		"Past", "Present", "Reality", "Imagination", "Wisdom", "Life", "Death",
		"Light", "Darkness", "World", "Universe", "Time", "Space", "Mind", "Soul",
	}
	return words[rand.Intn(len(words))]
}
