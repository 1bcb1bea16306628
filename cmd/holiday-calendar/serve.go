package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/username/holiday-calendar/internal/api"
	"github.com/username/holiday-calendar/internal/calendar"
	"github.com/username/holiday-calendar/internal/console"
	"github.com/username/holiday-calendar/internal/tray"
)

func interactiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Prompt for month and year and print calendar sheets",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader, err := console.NewReader(cfg.Console.HistoryFile)
			if err != nil {
				return fmt.Errorf("failed to initialize terminal: %w", err)
			}
			defer reader.Close()

			return console.New(reader, reader.Stdout(), newCalendar(), logger).Run()
		},
	}
}

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calendar as a JSON HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			serverCfg := cfg.Server
			if addr != "" {
				serverCfg.Addr = addr
			}

			cal := calendar.NewCachedCalendar(newCalendar(), cfg.Calendar.GetCacheTTL(), logger)
			handlers := api.NewHandlers(cal, logger)
			router := api.SetupRoutes(handlers, serverCfg, logger)

			logger.Info("Starting API server",
				zap.String("addr", serverCfg.Addr),
				zap.Int("rate_limit", serverCfg.RateLimit),
				zap.Strings("cors_origins", serverCfg.CORSOrigins))

			return api.NewServer(serverCfg, router, logger).Start()
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (overrides server.addr)")

	return cmd
}

func trayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tray",
		Short: "Show the current month in the system tray (Windows only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.Info("Initializing system tray")
			app, err := tray.New(newCalendar(), logger)
			if err != nil {
				return err
			}
			// Run tray (blocks until Quit)
			return app.Run()
		},
	}
}
