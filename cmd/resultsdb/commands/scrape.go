package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"resultsdb/internal/components/telemetry"
	"resultsdb/internal/db"
	"resultsdb/internal/pipeline"
	"resultsdb/internal/regno"
	"resultsdb/internal/scrapers/doeresults"
	"resultsdb/internal/store"
	"resultsdb/lib/restyutil"
	"resultsdb/lib/serviceutil"
	"time"

	"github.com/mazen160/go-random"
)

func setup(ctx context.Context) error {
	err := db.Setup(ctx, database)
	if errors.Is(err, db.ErrAlreadySetup) {
		fmt.Println("App database already exists. Run the app without --setup.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to setup database: %w", err)
	}
	fmt.Println("Database setup completed. Now run the app without --setup.")
	return nil
}

func newClient(slogTel telemetry.API) (doeresults.Client, error) {
	opts := doeresults.ClientOptions{
		BaseUrl:          cfg.BaseUrl,
		Timeout:          time.Duration(cfg.Timeout) * time.Second,
		CloudflareBypass: !cfg.DisableCloudflareBypass,
	}
	if debug {
		output, err := restyutil.NewFilesystemOutput("<dev_state>/resty")
		if err != nil {
			return doeresults.Client{}, fmt.Errorf("failed to create resty output directory: %w", err)
		}
		opts.Output = output
	}
	return doeresults.NewClient(opts, slogTel), nil
}

func scrape(ctx context.Context) error {
	ctx, cancel := serviceutil.SignalContext(ctx)
	defer cancel()

	slogTel := telemetry.SlogAPI{}
	if tel.Enabled() {
		telemetry.InstrumentPerfStats(ctx, slogTel)
	}

	mode := store.ModeError
	if replace {
		mode = store.ModeReplace
	}

	runId, err := random.String(12)
	if err != nil {
		return fmt.Errorf("failed to generate run id: %w", err)
	}
	candidates := regno.Generate(cfg.Ranges)
	slog.Info(
		"scraping candidates",
		"run_id", runId,
		"candidates", len(candidates),
		"pages", regno.PairCount(cfg.Ranges),
		"mode", mode.String(),
	)

	client, err := newClient(slogTel)
	if err != nil {
		return err
	}
	s, err := openStore()
	if err != nil {
		return err
	}
	p := pipeline.New(client, s, slogTel)

	t1 := time.Now()
	summary, err := p.Run(ctx, candidates, pipeline.Options{
		Students: onlyStudent,
		Results:  onlyResults,
		Mode:     mode,
		RunId:    runId,
	})
	t2 := time.Now()

	slog.Info(
		"scrape finished",
		"run_id", runId,
		"seconds", t2.Sub(t1).Seconds(),
		"pages", summary.Pages,
		"skipped", summary.Skipped,
		"students", summary.StudentsSaved,
		"grades", summary.GradesSaved,
	)
	if err != nil {
		return fmt.Errorf("scrape stopped: %w", err)
	}
	fmt.Println("All ids done!")
	return nil
}
