package commands

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"resultsdb/internal/components/chrono"
	"resultsdb/internal/components/telemetry"
	"resultsdb/internal/store"
	"resultsdb/lib/serviceutil"

	"github.com/spf13/cobra"
)

var (
	configPath  string
	debug       bool
	runSetup    bool
	replace     bool
	onlyStudent bool
	onlyResults bool
)

// commands annotated with this do not open the database
const annotationNoDB = "no-db"

// loaded by the root PersistentPreRun
var (
	cfg      Config
	tel      telemetry.Telemetry
	database *sql.DB
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "config.json5", "The json5 config file to read.")
	flags.BoolVar(&debug, "debug", false, "Log debug output and dump every http exchange to <dev_state>/resty.")

	rootCmd.Flags().BoolVar(&runSetup, "setup", false, "Create the database tables and exit.")
	rootCmd.Flags().BoolVar(&replace, "replace", false, "Replace records that are already stored instead of failing.")
	rootCmd.Flags().BoolVar(&onlyStudent, "students", false, "Scrape student details.")
	rootCmd.Flags().BoolVar(&onlyResults, "results", false, "Scrape subject grades and GPAs.")
}

var rootCmd = &cobra.Command{
	Use:   "resultsdb [--setup] [--replace] [--students] [--results]",
	Short: "resultsdb scrapes the online exam results portal into a database.",
	Long: `resultsdb scrapes the online exam results portal into a database.

Without --students or --results both student details and grades are scraped.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		telemetry.InitSlog(debug)
		database = nil

		var err error
		cfg, err = loadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		tel, err = telemetry.SetupFromEnv(cmd.Context(), "resultsdb")
		if err != nil {
			return fmt.Errorf("failed to setup telemetry: %w", err)
		}

		if cmd.Annotations[annotationNoDB] == "true" {
			return nil
		}
		database, err = cfg.Database.OpenDB()
		if err != nil {
			return fmt.Errorf("no database connection could be established: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if runSetup {
			return setup(cmd.Context())
		}
		return scrape(cmd.Context())
	},
}

// cleanup runs after every command, including failed ones.
func cleanup() {
	if database != nil {
		err := database.Close()
		if err != nil {
			slog.Warn("failed to close database", "err", err)
		}
	}
	err := tel.Shutdown(context.Background())
	if err != nil {
		slog.Warn("failed to shutdown telemetry", "err", err)
	}
	tel = telemetry.Telemetry{}
}

func openStore() (store.Store, error) {
	clock, err := chrono.NewStandardImpl()
	if err != nil {
		return store.Store{}, fmt.Errorf("failed to load timezone: %w", err)
	}
	return store.NewStore(database, clock), nil
}

func run(ctx context.Context, args []string) error {
	defer cleanup()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

func ExecuteContext(ctx context.Context) {
	err := run(ctx, os.Args[1:])
	if err != nil {
		serviceutil.Fatal("resultsdb failed", err)
	}
}
