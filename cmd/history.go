package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizgame/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past games",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		games, err := st.GameRepo().RecentGames(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(games) == 0 {
			fmt.Fprintln(out, "No games played yet.")
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "FINISHED\tSESSION\tOUTCOME\tSCORE\tUNATTEMPTED\t")
		for _, g := range games {
			outcome := string(g.Outcome)
			if g.EndedEarly {
				outcome += " (early)"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%d/%d %.0f%%\t%d\t\n",
				g.FinishedAt.Local().Format("2006-01-02 15:04"),
				g.SessionID,
				outcome,
				g.Correct, g.Total, g.Percentage,
				g.Unattempted)
		}
		return w.Flush()
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of games to list (0 = all)")
}
