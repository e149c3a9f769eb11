package main

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pkordes/timeline-export/internal/config"
	"github.com/pkordes/timeline-export/internal/domain"
	"github.com/pkordes/timeline-export/internal/geo"
	"github.com/pkordes/timeline-export/internal/normalize"
	"github.com/pkordes/timeline-export/internal/service"
)

// newRootCmd builds the CLI. Logs go to logOut; cobra's own usage and
// error output go to the command's stderr.
func newRootCmd(logOut io.Writer) *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:     "timeline-export <json-folder>",
		Short:   "Convert a location-history export into sorted CSV and KML files",
		Example: "  timeline-export ~/Takeout/Location\\ History/Semantic\\ Location\\ History/2024",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				cmd.PrintErrln("Error:", err)
				return err
			}
			return nil
		},
		// Runtime failures are logged; usage is only for argument errors.
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			// --- Config -------------------------------------------------------
			cfg, err := config.Load()
			if err != nil {
				slog.New(slog.NewTextHandler(logOut, nil)).Error("configuration error", "error", err)
				return err
			}
			if cmd.Flags().Changed("output-dir") {
				cfg.OutputDir = outputDir
			}

			// --- Logger -------------------------------------------------------
			logger := newLogger(logOut, cfg).With("run_id", uuid.NewString())
			slog.SetDefault(logger)

			// --- Pipeline -----------------------------------------------------
			loc, err := normalize.LoadTargetZone()
			if err != nil {
				logger.Error("failed to load timezone", "zone", normalize.TargetZone, "error", err)
				return err
			}
			n := normalize.New(geo.NewDefaultResolver(), loc, domain.DefaultRenames)
			svc := service.NewConvertService(n, logger)

			sum, err := svc.Convert(cmd.Context(), args[0], cfg.OutputDir)
			if err != nil {
				logger.Error("conversion failed", "input", args[0], "error", err)
				return err
			}
			for _, d := range sum.Diagnostics {
				logger.Debug("diagnostic", "class", d.Class, "detail", d.String())
			}
			logger.Info("conversion complete",
				"files", len(sum.Files),
				"rows", len(sum.Rows),
				"skipped", len(sum.Diagnostics),
				"csv", sum.CSVPath,
				"kml", sum.KMLPath,
			)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", ".", "directory to write the CSV and KML files into (overrides TIMELINE_OUTPUT_DIR)")
	return cmd
}

// newLogger builds the run logger. An unparseable level falls back to info.
func newLogger(w io.Writer, cfg config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
