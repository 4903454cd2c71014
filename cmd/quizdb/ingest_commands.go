package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"quizdb/internal/config"
	"quizdb/internal/ingest"
	"quizdb/internal/logging"
	"quizdb/internal/runlock"
	"quizdb/internal/scores"
	"quizdb/internal/store"
)

func newIngestCommand(ctx *commandContext) *cobra.Command {
	ingestCmd := &cobra.Command{
		Use:   "ingest",
		Short: "Load archives from the data directory into the database",
	}

	ingestCmd.AddCommand(newIngestSetsCommand(ctx))
	ingestCmd.AddCommand(newIngestTournamentsCommand(ctx))

	return ingestCmd
}

func newIngestSetsCommand(ctx *commandContext) *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "sets",
		Short: "Ingest question-set archives",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("overwrite") {
				overwrite = cfg.Ingest.Overwrite
			}
			return withStore(cfg, func(s *store.Store, run *runEnv) error {
				summary, err := ingest.NewMigrator(s, run.logger, overwrite).Run(cmd.Context(), cfg.QuestionSetsDir())
				if summary != nil {
					printSetsSummary(cmd, summary)
				}
				return err
			})
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Re-ingest editions that are already in the database")
	return cmd
}

func newIngestTournamentsCommand(ctx *commandContext) *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "tournaments",
		Short: "Ingest tournament results",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("overwrite") {
				overwrite = cfg.Ingest.Overwrite
			}
			return withStore(cfg, func(s *store.Store, run *runEnv) error {
				summary, err := scores.NewMigrator(s, run.logger, overwrite).Run(cmd.Context(), cfg.TournamentsDir())
				if summary != nil {
					printTournamentsSummary(cmd, summary)
				}
				return err
			})
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Re-ingest tournaments that are already in the database")
	return cmd
}

// runEnv carries the per-run logger alongside the open store.
type runEnv struct {
	logger *slog.Logger
}

// withStore acquires the run lock, opens the store, and hands both to fn.
func withStore(cfg *config.Config, fn func(*store.Store, *runEnv) error) error {
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return err
	}
	logger, _ = logging.WithRunID(logger)
	logger.Info("starting run")

	lock, err := runlock.Acquire(cfg.Paths.LockPath)
	if err != nil {
		return err
	}
	defer lock.Release()

	s, err := store.Open(cfg.Paths.DBPath)
	if err != nil {
		return err
	}
	defer s.Close()

	return fn(s, &runEnv{logger: logger})
}

func printSetsSummary(cmd *cobra.Command, summary *ingest.Summary) {
	out := cmd.OutOrStdout()
	rows := [][]string{
		{"Sets created", strconv.Itoa(summary.Sets)},
		{"Editions ingested", strconv.Itoa(summary.Editions)},
		{"Editions skipped", strconv.Itoa(summary.SkippedEditions)},
		{"Packets", strconv.Itoa(summary.Packets)},
		{"Tossups", strconv.Itoa(summary.Tossups)},
		{"Bonuses", strconv.Itoa(summary.Bonuses)},
		{"Duplicates reused", strconv.Itoa(summary.Reused)},
		{"Failed files", strconv.Itoa(summary.FailedFiles)},
	}
	fmt.Fprintln(out, renderTable(out, []string{"Metric", "Count"}, rows, []columnAlignment{alignLeft, alignRight}))
}

func printTournamentsSummary(cmd *cobra.Command, summary *scores.Summary) {
	out := cmd.OutOrStdout()
	rows := [][]string{
		{"Tournaments ingested", strconv.Itoa(summary.Tournaments)},
		{"Tournaments skipped", strconv.Itoa(summary.SkippedTournaments)},
		{"Rounds", strconv.Itoa(summary.Rounds)},
		{"Games", strconv.Itoa(summary.Games)},
		{"Buzzes", strconv.Itoa(summary.Buzzes)},
		{"Bonus conversions", strconv.Itoa(summary.BonusConversions)},
		{"Missing references", strconv.Itoa(summary.MissingRefs)},
		{"Failed files", strconv.Itoa(summary.FailedFiles)},
	}
	fmt.Fprintln(out, renderTable(out, []string{"Metric", "Count"}, rows, []columnAlignment{alignLeft, alignRight}))
}
