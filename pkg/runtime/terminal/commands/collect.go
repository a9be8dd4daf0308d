package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/de-tools/cost-radar/pkg/models/domain"
	"github.com/de-tools/cost-radar/pkg/runtime/terminal/export"
	"github.com/de-tools/cost-radar/pkg/services/anomaly"
	"github.com/de-tools/cost-radar/pkg/services/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

type CollectCmd struct {
	profile    string
	configPath string
	from       string
	to         string
	days       int
	format     string
	outPath    string
	reporter   *export.Reporter
	logger     zerolog.Logger
}

func NewCollectCmd(reporter *export.Reporter, logger zerolog.Logger) *cobra.Command {
	cc := &CollectCmd{reporter: reporter, logger: logger}
	cmd := &cobra.Command{
		Use:   "collect",
		Short: "Collect cost anomalies and build a report",
		RunE:  cc.run,
	}

	// Define flags
	cmd.Flags().StringVar(&cc.profile, "profile", "default", "AWS shared config profile to use")
	cmd.Flags().StringVar(&cc.configPath, "config", "", "Path to the radar configuration file")
	cmd.Flags().StringVar(&cc.from, "from", "", "Window start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&cc.to, "to", "", "Window end date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&cc.days, "days", 0, "Lookback in days, ignored when --from is set")
	cmd.Flags().StringVar(&cc.format, "format", "table", "Output format: table, json or html")
	cmd.Flags().StringVar(&cc.outPath, "out", "", "Write the report to a file instead of stdout")

	return cmd
}

func (cc *CollectCmd) run(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Minute)
	defer cancel()

	format, err := export.ParseFormat(cc.format)
	if err != nil {
		return err
	}

	settings, err := config.LoadSettings(cc.configPath)
	if err != nil {
		return err
	}

	client, err := anomaly.NewClient(ctx, cc.profile)
	if err != nil {
		return fmt.Errorf("failed to create cost explorer client: %w", err)
	}

	fetcher := anomaly.NewUsageFetcher(client, cc.logger)
	resolver := anomaly.NewResolver(fetcher, anomaly.StaticTagSource(settings.Tags))
	aggregator := anomaly.NewAggregator(client, resolver, cc.logger).WithFanOut(settings.FanOut)

	window, err := cc.window(settings)
	if err != nil {
		return err
	}

	report, err := aggregator.Collect(ctx, window)
	if err != nil {
		return fmt.Errorf("failed to collect anomalies: %w", err)
	}

	if cc.outPath == "" {
		return cc.reporter.Handle(report, format)
	}

	file, err := os.Create(cc.outPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := cc.reporter.HandleTo(file, report, format); err != nil {
		return err
	}

	cc.logger.Info().Str("path", cc.outPath).Msg("report written")
	return nil
}

func (cc *CollectCmd) window(settings *config.Settings) (domain.DateWindow, error) {
	days := cc.days
	if days <= 0 {
		days = settings.WindowDays
	}

	now := time.Now().UTC()
	window := domain.DateWindow{
		Start: now.AddDate(0, 0, -days),
		End:   now,
	}

	if cc.from != "" {
		start, err := time.Parse(dateLayout, cc.from)
		if err != nil {
			return domain.DateWindow{}, fmt.Errorf("invalid --from date: %w", err)
		}
		window.Start = start
	}
	if cc.to != "" {
		end, err := time.Parse(dateLayout, cc.to)
		if err != nil {
			return domain.DateWindow{}, fmt.Errorf("invalid --to date: %w", err)
		}
		window.End = end
	}

	if window.End.Before(window.Start) {
		return domain.DateWindow{}, fmt.Errorf("window end %s is before start %s",
			window.End.Format(dateLayout), window.Start.Format(dateLayout))
	}

	return window, nil
}
