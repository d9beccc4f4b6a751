package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"booktracker/internal/tracker"

	"github.com/spf13/cobra"
)

func newLibraryCmd(getEnv func() *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "library",
		Aliases: []string{"lib"},
		Short:   "Manage the logged-in user's personal library",
	}
	cmd.AddCommand(
		newLibraryListCmd(getEnv),
		newLibraryShowCmd(getEnv),
		newLibraryAddCmd(getEnv),
		newLibraryRemoveCmd(getEnv),
		newLibraryRateCmd(getEnv),
		newLibraryReviewCmd(getEnv),
		newLibraryStatusCmd(getEnv),
		newLibraryReadCmd(getEnv),
		newLibraryStatsCmd(getEnv),
	)
	return cmd
}

// userCmd builds a library subcommand that runs as the logged-in user.
func userCmd(getEnv func() *env, use, short string, args cobra.PositionalArgs,
	run func(cmd *cobra.Command, e *env, username string, args []string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			e := getEnv()
			u, err := e.currentUser()
			if err != nil {
				return err
			}
			return run(cmd, e, u.Username, args)
		},
	}
}

func newLibraryListCmd(getEnv func() *env) *cobra.Command {
	return userCmd(getEnv, "list", "List the books in your library", cobra.NoArgs,
		func(cmd *cobra.Command, e *env, username string, args []string) error {
			entries, err := e.readingList.List(username)
			if err != nil {
				return err
			}
			printEntries(cmd.OutOrStdout(), entries)
			return nil
		})
}

func newLibraryShowCmd(getEnv func() *env) *cobra.Command {
	return userCmd(getEnv, "show <title>", "Show one book in your library", cobra.ExactArgs(1),
		func(cmd *cobra.Command, e *env, username string, args []string) error {
			entry, err := e.readingList.Get(username, args[0])
			if err != nil {
				return err
			}
			printEntry(cmd.OutOrStdout(), entry)
			return nil
		})
}

func newLibraryAddCmd(getEnv func() *env) *cobra.Command {
	return userCmd(getEnv, "add <title>", "Copy a catalog book into your library", cobra.ExactArgs(1),
		func(cmd *cobra.Command, e *env, username string, args []string) error {
			entry, err := e.readingList.AddFromCatalog(username, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %q to your library\n", entry.Title)
			return nil
		})
}

func newLibraryRemoveCmd(getEnv func() *env) *cobra.Command {
	return userCmd(getEnv, "remove <title>", "Remove a book from your library", cobra.ExactArgs(1),
		func(cmd *cobra.Command, e *env, username string, args []string) error {
			if err := e.readingList.Delete(username, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %q from your library\n", args[0])
			return nil
		})
}

func newLibraryRateCmd(getEnv func() *env) *cobra.Command {
	return userCmd(getEnv, "rate <title> <1-5>", "Rate a book in your library", cobra.ExactArgs(2),
		func(cmd *cobra.Command, e *env, username string, args []string) error {
			rating, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("rating %q is not a number", args[1])
			}
			entry, err := e.readingList.Rate(username, args[0], rating)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Rated %q %s\n", entry.Title, args[1])
			return nil
		})
}

func newLibraryReviewCmd(getEnv func() *env) *cobra.Command {
	return userCmd(getEnv, "review <title> <text>", "Review a book in your library", cobra.ExactArgs(2),
		func(cmd *cobra.Command, e *env, username string, args []string) error {
			entry, err := e.readingList.Review(username, args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reviewed %q\n", entry.Title)
			return nil
		})
}

func newLibraryStatusCmd(getEnv func() *env) *cobra.Command {
	return userCmd(getEnv, "status <title> <status>", "Set status to Not Started, Ongoing or Completed", cobra.ExactArgs(2),
		func(cmd *cobra.Command, e *env, username string, args []string) error {
			entry, err := e.readingList.ChangeStatus(username, args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%q is now %s\n", entry.Title, entry.Status)
			return nil
		})
}

func newLibraryReadCmd(getEnv func() *env) *cobra.Command {
	var duration time.Duration

	cmd := userCmd(getEnv, "read <title>", "Track reading time until the duration elapses or Ctrl-C", cobra.ExactArgs(1),
		func(cmd *cobra.Command, e *env, username string, args []string) error {
			title := args[0]
			if err := e.readingList.AddTime(username, title, 0); err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
			defer stop()
			if duration > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, duration)
				defer cancel()
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Reading %q. Press Ctrl-C to stop.\n", title)
			minutes, err := tracker.Run(ctx, e.readingList, username, title, e.cfg.ReadingTick)
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %d minutes on %q\n", minutes, title)
			return err
		})
	cmd.Flags().DurationVar(&duration, "for", 0, "stop after this long (0 waits for Ctrl-C)")
	return cmd
}

func newLibraryStatsCmd(getEnv func() *env) *cobra.Command {
	return userCmd(getEnv, "stats", "Summarise your reading", cobra.NoArgs,
		func(cmd *cobra.Command, e *env, username string, args []string) error {
			stats, err := e.profile.GetStats(username)
			if err != nil {
				return err
			}
			printStats(cmd.OutOrStdout(), stats)
			return nil
		})
}
