package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/vytor/flashquiz/internal/config"
	"github.com/vytor/flashquiz/internal/deck"
	apperrors "github.com/vytor/flashquiz/internal/errors"
	"github.com/vytor/flashquiz/internal/logger"
	"github.com/vytor/flashquiz/internal/quiz"
	"github.com/vytor/flashquiz/internal/repository"
	"github.com/vytor/flashquiz/internal/session"
	"github.com/vytor/flashquiz/internal/terminal"
)

func main() {
	cfg := config.Load()

	// Ctrl+C ends the quiz with the results gathered so far.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd(cfg, os.Stdin, os.Stdout).ExecuteContext(ctx)
	stop()
	if err != nil {
		pterm.Error.WithWriter(os.Stderr).Println(err)
		os.Exit(apperrors.ExitCodeOf(err))
	}
}

func newRootCmd(cfg config.Config, in io.Reader, out io.Writer) *cobra.Command {
	noColor := !cfg.Color

	cmd := &cobra.Command{
		Use:   "flashquiz",
		Short: "Quiz yourself on a deck of flashcards",
		Long: `flashquiz reads a deck of question/answer cards from a JSON file or a
SQLite database and quizzes you on it in the terminal.

Type 'exit' or press Ctrl+C to stop early and see your results.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Color = !noColor
			if err := cfg.Validate(); err != nil {
				return &apperrors.AppError{
					Code:     apperrors.ErrCodeConfig,
					Message:  "invalid configuration",
					ExitCode: apperrors.ExitUsage,
					Err:      err,
				}
			}
			return run(cmd.Context(), cfg, in, out)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.DeckPath, "file", "f", cfg.DeckPath, "path to a JSON deck or SQLite database (.db, .sqlite, .sqlite3)")
	flags.StringVarP(&cfg.Mode, "mode", "m", cfg.Mode, fmt.Sprintf("quiz mode: %s", strings.Join(quiz.AvailableModes(), ", ")))
	flags.BoolVar(&cfg.ShowStats, "stats", cfg.ShowStats, "list the cards you missed at the end")
	flags.BoolVar(&noColor, "no-color", noColor, "disable colored output")
	flags.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "seed for random mode (0 picks one from the clock)")
	flags.StringVar(&cfg.DeckName, "deck", cfg.DeckName, "deck to load from a SQLite database")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: DEBUG, INFO, WARN, ERROR, OFF")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return apperrors.NewConfigError("flags", err.Error())
	})

	return cmd
}

// run loads the deck, builds the quiz and blocks until the session ends.
func run(ctx context.Context, cfg config.Config, in io.Reader, out io.Writer) error {
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(cfg.Color),
	)
	logger.SetDefault(log)
	ctx = logger.NewContext(ctx, log)

	log.Debug("configuration loaded")
	log.Debug("deck_path=%s", cfg.DeckPath)
	log.Debug("deck_name=%s", cfg.DeckName)
	log.Debug("mode=%s", cfg.Mode)
	log.Debug("show_stats=%t", cfg.ShowStats)
	log.Debug("seed=%d", cfg.Seed)

	cards, err := deck.Load(ctx, cfg.DeckPath, repository.DeckFilter{Name: cfg.DeckName})
	if err != nil {
		return err
	}

	var opts []quiz.Option
	if cfg.Seed != 0 {
		opts = append(opts, quiz.WithSeed(cfg.Seed))
	}
	mode, err := quiz.Create(cfg.Mode, cards, opts...)
	if err != nil {
		return err
	}

	display := terminal.NewDisplay(out, cfg.Color)
	s, err := session.New(mode, cards, display, terminal.NewInput(in, out),
		session.WithDetailedStats(cfg.ShowStats))
	if err != nil {
		return err
	}

	display.ShowWelcome(deckLabel(cfg), cfg.Mode, len(cards))
	stats := s.Run(ctx)

	log.WithField("session_id", s.ID()).Debug("session finished: state=%s score=%d/%d",
		s.State(), stats.CorrectAnswers, stats.TotalQuestions)
	return nil
}

func deckLabel(cfg config.Config) string {
	if cfg.DeckName == "" {
		return cfg.DeckPath
	}
	return fmt.Sprintf("%s (%s)", cfg.DeckPath, cfg.DeckName)
}
