package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/abhisek/quizgame/internal/config"
	"github.com/abhisek/quizgame/internal/logging"
	"github.com/abhisek/quizgame/internal/questions"
	"github.com/abhisek/quizgame/internal/store"
)

// v holds configuration layered from defaults, config file, env and flags.
var v = config.New()

var rootCmd = &cobra.Command{
	Use:   "quizgame",
	Short: "Timed multiple-choice quiz in your terminal",
	Long: "Quizgame fetches a question set, gives you 15 seconds per question " +
		"and reports what you got right, wrong and left unattempted.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to config file (default ./config.yaml or $XDG_CONFIG_HOME/quizgame/config.yaml)")
	flags.String("db", "", "Path to SQLite database file (overrides QUIZGAME_DB env var)")
	flags.String("endpoint", "", "Questions API endpoint")
	flags.String("questions", "", "Play from a local JSON file instead of the endpoint")
	flags.String("log-file", "", "Write logs to this file")
	flags.Bool("splash", true, "Show the welcome animation on start")

	bindFlag(v, "db", "db")
	bindFlag(v, "endpoint", "endpoint")
	bindFlag(v, "questions_file", "questions")
	bindFlag(v, "log.file", "log-file")
	bindFlag(v, "splash", "splash")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

func bindFlag(v *viper.Viper, key, flag string) {
	if err := v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", flag, err))
	}
}

// loadConfig resolves configuration for the running command.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(v, path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// resolveDBPath returns the database path using the db setting (flag,
// env or config file), then QUIZGAME_DB, then the default XDG path.
func resolveDBPath(cfg *config.Config) (string, error) {
	if cfg.DB != "" {
		return cfg.DB, store.EnsureDir(cfg.DB)
	}
	return store.DefaultDBPath()
}

// openStore opens the history database.
func openStore(cfg *config.Config) (*store.Store, error) {
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// newLoader picks the question source: a local file when configured,
// otherwise the HTTP endpoint.
func newLoader(cfg *config.Config, logger *zap.Logger) questions.Loader {
	if cfg.QuestionsFile != "" {
		return questions.FileLoader{Path: cfg.QuestionsFile}
	}
	return questions.NewHTTPLoader(cfg.Endpoint,
		questions.WithTimeout(cfg.HTTPTimeout),
		questions.WithLogger(logger),
		questions.WithUserAgent("quizgame/"+version),
	)
}

// newLogger builds the file logger; it is a no-op when no file is set.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	logger, err := logging.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return logger, nil
}
