package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/quizgame/internal/app"
	quizscreen "github.com/abhisek/quizgame/internal/screens/quiz"
	"github.com/abhisek/quizgame/internal/session"
)

// runApp loads config, opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	logger.Info("starting quizgame",
		zap.String("version", version),
		zap.String("endpoint", cfg.Endpoint),
		zap.String("questions_file", cfg.QuestionsFile))

	return app.Run(app.Options{
		Quiz: quizscreen.Options{
			Loader: newLoader(cfg, logger),
			Games:  st.GameRepo(),
			Logger: logger,
			Settings: session.Settings{
				QuestionSeconds: cfg.QuestionSeconds,
				PassPercent:     cfg.PassPercent,
			},
			RevealDelay:   cfg.RevealDelay,
			RedirectDelay: cfg.RedirectDelay,
		},
		Splash: cfg.Splash,
	})
}
