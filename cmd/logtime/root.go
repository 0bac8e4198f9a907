package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"logtime/internal/config"
	"logtime/internal/fights"
	"logtime/internal/logging"
	"logtime/internal/timefmt"
	"logtime/internal/wclogs"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var formatFlag string
	var apiURLFlag string
	var timeoutFlag int
	var verbose bool

	cmd := &cobra.Command{
		Use:   "logtime <report_id> <api_key> <vod_start>",
		Short: "Generate boss pull timestamps for a Warcraft Logs report",
		Long: `Generate video timestamps for the boss pulls in a Warcraft Logs report.

vod_start is the video time of the first boss pull in HH:MM:SS; every pull in
the report is shifted by the same offset so the printed timestamps line up
with the recording.`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFlag)
			if err != nil {
				return err
			}

			format := cfg.Output.Format
			if cmd.Flags().Changed("format") {
				format = strings.ToLower(strings.TrimSpace(formatFlag))
			}
			switch format {
			case formatText, formatTable, formatJSON:
			default:
				return fmt.Errorf("unsupported output format %q", format)
			}

			level := cfg.Logging.Level
			if verbose {
				level = "debug"
			}
			logger, err := logging.New(logging.Options{
				Level:  level,
				Format: cfg.Logging.Format,
				Writer: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}

			reportID, apiKey, vodStart := args[0], args[1], args[2]

			vodStartSeconds, err := timefmt.ParseHHMMSS(vodStart)
			if err != nil {
				return err
			}

			baseURL := cfg.API.BaseURL
			if cmd.Flags().Changed("api-url") {
				baseURL = apiURLFlag
			}
			timeout := cfg.API.TimeoutSeconds
			if cmd.Flags().Changed("timeout") {
				timeout = timeoutFlag
			}

			client, err := wclogs.New(apiKey,
				wclogs.WithBaseURL(baseURL),
				wclogs.WithTimeout(time.Duration(timeout)*time.Second),
				wclogs.WithLogger(logger),
			)
			if err != nil {
				return err
			}

			report, err := client.FetchReportFights(cmd.Context(), reportID)
			if err != nil {
				return err
			}

			rows, err := fights.BuildRows(report.Fights, vodStartSeconds)
			if err != nil {
				return err
			}

			return renderRows(cmd, format, rows)
		},
	}

	cmd.Flags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	cmd.Flags().StringVar(&formatFlag, "format", "", "Output format: text, table, or json")
	cmd.Flags().StringVar(&apiURLFlag, "api-url", "", "Warcraft Logs API base URL override")
	cmd.Flags().IntVar(&timeoutFlag, "timeout", 0, "Request timeout in seconds")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Enable debug request logging on stderr")

	return cmd
}
