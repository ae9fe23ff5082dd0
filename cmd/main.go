package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/fuinorg/objects4j-sub000/cmd/config"
	"github.com/fuinorg/objects4j-sub000/internal/logger"
	"github.com/fuinorg/objects4j-sub000/internal/model"
	"github.com/fuinorg/objects4j-sub000/internal/parser"
	"github.com/fuinorg/objects4j-sub000/internal/processor"
	"github.com/fuinorg/objects4j-sub000/internal/storage"
	"github.com/go-redis/redis/v8"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var validators = map[string]func(string) bool{
	"hour":                 model.IsValidHour,
	"hour-range":           model.IsValidHourRange,
	"hour-ranges":          model.IsValidHourRanges,
	"day":                  model.IsValidDayOfTheWeek,
	"multi-day":            model.IsValidMultiDayOfTheWeek,
	"day-opening-hours":    model.IsValidDayOpeningHours,
	"weekly-opening-hours": model.IsValidWeeklyOpeningHours,
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFile string

	rootCmd := &cobra.Command{
		Use:   "opening-hours",
		Short: "Validate, normalize and diff opening hours",
		Long: `opening-hours works with weekly opening hours written as
"Mon-Fri 09:00-17:00,Sat/Sun 09:00-12:00".

It validates and normalizes them, computes the changes between two
versions and tracks the changes of whole schedule files over time.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.LoadEnvFile(envFile)
		},
	}

	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "load configuration from a .env file")

	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(normalizeCmd())
	rootCmd.AddCommand(compressCmd())
	rootCmd.AddCommand(diffCmd())
	rootCmd.AddCommand(openCmd())
	rootCmd.AddCommand(applyCmd())

	return rootCmd
}

func validateCmd() *cobra.Command {
	kinds := make([]string, 0, len(validators))
	for kind := range validators {
		kinds = append(kinds, kind)
	}

	return &cobra.Command{
		Use:       "validate <kind> <value>",
		Short:     "Check a value against the grammar of its kind",
		Args:      cobra.ExactArgs(2),
		ValidArgs: kinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			isValid, ok := validators[args[0]]
			if !ok {
				return fmt.Errorf("unknown kind %q", args[0])
			}

			if !isValid(args[1]) {
				return fmt.Errorf("%s %q is not valid", args[0], args[1])
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}
}

func normalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <weekly-opening-hours>",
		Short: "Move hours past midnight to the following day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := model.ParseWeeklyOpeningHours(args[0])
			if err != nil {
				return err
			}

			normalized, err := w.Normalize()
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), normalized)
			return nil
		},
	}
}

func compressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compress <weekly-opening-hours>",
		Short: "Print the shortest form of weekly opening hours",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := model.ParseWeeklyOpeningHours(args[0])
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), w.Compress())
			return nil
		},
	}
}

func diffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <from> <to>",
		Short: "Print the changes between two weekly opening hours",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := model.ParseWeeklyOpeningHours(args[0])
			if err != nil {
				return err
			}

			to, err := model.ParseWeeklyOpeningHours(args[1])
			if err != nil {
				return err
			}

			changes, err := from.Diff(to)
			if err != nil {
				return err
			}

			for _, c := range changes {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), c)
			}

			return nil
		},
	}
}

func openCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <weekly-opening-hours> <day> <hour-range>",
		Short: "Check whether a whole hour range is open on a day",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := model.ParseWeeklyOpeningHours(args[0])
			if err != nil {
				return err
			}

			day, err := model.ParseDayOfTheWeek(args[1])
			if err != nil {
				return err
			}

			r, err := model.ParseHourRange(args[2])
			if err != nil {
				return err
			}

			open, err := w.OpenAt(day, r)
			if err != nil {
				return err
			}

			if open {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "open")
			} else {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "closed")
			}

			return nil
		},
	}
}

func applyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply <schedule-file>",
		Short: "Report the changes of every schedule in a file and store them",
		Long: `Every row of the schedule file is "<key> <weekly-opening-hours>".
The opening hours are compared with the ones stored for the key,
the changes are printed and the new opening hours are stored.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return runApply(ctx, cmd, args[0])
		},
	}
}

func runApply(ctx context.Context, cmd *cobra.Command, filename string) error {
	loggerConfig, err := config.NewLoggerConfig()
	if err != nil {
		return fmt.Errorf("checkout configuration: %w", err)
	}

	log, err := logger.NewZapLogger(loggerConfig)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	defer func() { _ = log.Sync() }()

	parserConfig, err := config.NewParserConfig()
	if err != nil {
		return fmt.Errorf("checkout configuration: %w", err)
	}

	processorConfig, err := config.NewProcessorConfig()
	if err != nil {
		return fmt.Errorf("checkout configuration: %w", err)
	}

	storeConfig, err := config.NewStoreConfig()
	if err != nil {
		return fmt.Errorf("checkout configuration: %w", err)
	}

	snapshots, closeStore, err := newSnapshotStore(ctx, storeConfig)
	if err != nil {
		return err
	}

	defer closeStore()

	f, err := openFile(filename)
	if err != nil {
		return err
	}

	defer func() {
		if err = f.Close(); err != nil {
			log.Warn("failed to close file", zap.String("file", filename), zap.Error(err))
		}
	}()

	fp := parser.NewFileParser(bufio.NewScanner(f), parserConfig)

	p := processor.NewChangeProcessor(
		cmd.OutOrStdout(),
		processorConfig,
		log,
		snapshots,
		storage.NewInMemoryStorage[string, *model.ChangeStats](),
	)

	log.Info("applying schedule file",
		zap.String("file", filename),
		zap.String("store", storeConfig.Backend),
	)

	if err = p.ProcessUpdates(ctx, fp.ReadUpdates()); err != nil {
		log.Error("failed to apply schedule file", zap.String("file", filename), zap.Error(err))
		return err
	}

	p.ShowSummary()
	return nil
}

func newSnapshotStore(ctx context.Context, cfg *config.Store) (storage.SnapshotStore, func(), error) {
	switch strings.ToLower(cfg.Backend) {
	case "", "memory":
		return storage.NewInMemorySnapshotStore(), func() {}, nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})

		store := storage.NewRedisSnapshotStore(client)
		if err := store.Ping(ctx); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("could not connect to redis at %s: %w", cfg.RedisAddr, err)
		}

		return store, func() { _ = client.Close() }, nil
	}

	return nil, nil, fmt.Errorf("unknown store backend: %s", cfg.Backend)
}

func openFile(filename string) (*os.File, error) {
	f, err := os.Open(filepath.Clean(filename))
	switch {
	case err == nil:
	case errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("file does not exist: %s", filename)
	case errors.Is(err, os.ErrPermission):
		return nil, fmt.Errorf("not enough permissions to open file: %s", filename)
	default:
		return nil, fmt.Errorf("could not open file: %s", err)
	}

	return f, nil
}
