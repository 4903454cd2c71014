package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"quizdb/internal/store"
)

// statusTables fixes the display order of the row-count table.
var statusTables = []string{
	"question_set",
	"question_set_edition",
	"packet",
	"question",
	"tossup",
	"bonus",
	"bonus_part",
	"packet_question",
	"tournament",
	"round",
	"team",
	"player",
	"game",
	"buzz",
	"bonus_part_direct",
}

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show database row counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			s, err := store.Open(cfg.Paths.DBPath)
			if err != nil {
				return err
			}
			defer s.Close()

			counts, err := s.Counts(cmd.Context())
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(statusTables))
			for _, name := range statusTables {
				rows = append(rows, []string{name, strconv.FormatInt(counts[name], 10)})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Database: %s\n", s.Path())
			fmt.Fprintln(out, renderTable(out, []string{"Table", "Rows"}, rows, []columnAlignment{alignLeft, alignRight}))
			return nil
		},
	}
}
