package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizgame/internal/report"
	"github.com/abhisek/quizgame/internal/store"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the report of the last game (or --id)",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := cmd.Flags().GetString("id")
		formatFlag, _ := cmd.Flags().GetString("format")

		format, err := report.ParseFormat(formatFlag)
		if err != nil {
			return err
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		repo := st.GameRepo()
		ctx := cmd.Context()

		var game *store.GameRecord
		if id != "" {
			game, err = repo.GetGame(ctx, id)
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("no game with session id %q", id)
			}
		} else {
			game, err = repo.LatestGame(ctx)
		}
		if err != nil {
			return fmt.Errorf("load game: %w", err)
		}
		if game == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "No games played yet.")
			return nil
		}

		return report.Write(cmd.OutOrStdout(), game.Report, format)
	},
}

func init() {
	reportCmd.Flags().String("id", "", "Session ID of the game (default: latest)")
	reportCmd.Flags().String("format", string(report.FormatText), "Output format: text, json or yaml")
}
