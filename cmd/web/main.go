package main

import (
	"fmt"
	"os"

	"github.com/de-tools/cost-radar/pkg/server"
	"github.com/de-tools/cost-radar/pkg/services/anomaly"
	"github.com/de-tools/cost-radar/pkg/services/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgPath string
	profile string
	addr    string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "radar-web",
		Short: "Start the web server for Cost Radar",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the radar configuration file")
	rootCmd.Flags().StringVarP(&profile, "profile", "p", "default",
		"AWS shared config profile to use")
	rootCmd.Flags().StringVarP(&addr, "addr", "a", "",
		"Listen address, overrides the configured one")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	settings, err := config.LoadSettings(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	client, err := anomaly.NewClient(ctx, profile)
	if err != nil {
		return fmt.Errorf("failed to create cost explorer client: %w", err)
	}

	fetcher := anomaly.NewUsageFetcher(client, logger)
	resolver := anomaly.NewResolver(fetcher, anomaly.StaticTagSource(settings.Tags))
	aggregator := anomaly.NewAggregator(client, resolver, logger).WithFanOut(settings.FanOut)

	listenAddr := settings.Server.Addr
	if addr != "" {
		listenAddr = addr
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr: listenAddr,
		Dependencies: server.Dependencies{
			Collector: aggregator,
		},
	})

	return api.Start()
}
