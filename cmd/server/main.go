package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmynk/chama/internal/config"
	"github.com/mmynk/chama/internal/seed"
	"github.com/mmynk/chama/internal/storage"
	"github.com/mmynk/chama/internal/storage/memory"
	"github.com/mmynk/chama/internal/storage/sqlite"
	"github.com/mmynk/chama/pkg/logging"
)

var (
	envFile string

	rootCmd = &cobra.Command{
		Use:   "chama",
		Short: "Savings group dashboard API server",
		Long: `Serves the chama dashboard API: chamas, members, contributions,
the loan approval workflow, the ledger and gamification insights.`,
		PersistentPreRunE: loadConfig,
		RunE:              runServe,
		SilenceUsage:      true,
	}
	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Start the Connect API server (default)",
		RunE:  runServe,
	}
	seedCmd = &cobra.Command{
		Use:   "seed",
		Short: "Populate the configured store with the demo data set",
		RunE:  runSeed,
	}

	cfg *config.Config
)

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "path to a .env file (skipped when missing)")
	rootCmd.AddCommand(serveCmd, seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(envFile)
	if err != nil {
		return err
	}
	logging.SetupWithLevel(logging.ParseLevel(cfg.LogLevel))
	return nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	res, err := seed.Demo(cmd.Context(), store)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d chamas, %d members, %d contributions, %d loans\n",
		res.Chamas, res.Members, res.Contributions, res.Loans)
	if res.AdminCreated {
		fmt.Fprintf(cmd.OutOrStdout(), "admin login: %s / %s\n", seed.AdminEmail, seed.AdminPassword)
	}
	return nil
}

// openStore opens the configured backend and applies simulated latency.
func openStore(cfg *config.Config) (storage.Store, error) {
	var store storage.Store
	switch cfg.DBDriver {
	case config.DriverMemory:
		store = memory.New()
		slog.Info("Storage initialized", "driver", cfg.DBDriver)
	default:
		s, err := sqlite.New(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
		store = s
		slog.Info("Storage initialized", "driver", cfg.DBDriver, "database", cfg.DBPath)
	}

	if cfg.MockLatency > 0 {
		slog.Info("Simulating storage latency", "latency", cfg.MockLatency)
	}
	return storage.WithLatency(store, cfg.MockLatency, cfg.MockLatency/2), nil
}

// seedIfEmpty loads demo data on startup when SEED_DEMO is set.
func seedIfEmpty(ctx context.Context, store storage.Store) error {
	if !cfg.SeedDemo {
		return nil
	}
	_, err := seed.Demo(ctx, store)
	return err
}
