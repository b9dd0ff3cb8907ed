package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"resume-intake/internal/config"
	"resume-intake/internal/logger"
	"resume-intake/internal/resume"
	"resume-intake/internal/storage"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type exporter interface {
	ExportShortlistCSV(ctx context.Context, w io.Writer) error
}

func main() {
	var out string
	v := viper.New()

	cmd := &cobra.Command{
		Use:          "export_shortlist",
		Short:        "Write the shortlist as CSV straight from the database",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			log, err := logger.New(cfg.LogJSON, cfg.LogDebug)
			if err != nil {
				return err
			}
			defer log.Sync()

			db, err := storage.NewDB(cfg.DatabaseURL)
			if err != nil {
				log.Error("database connection failed", zap.Error(err))
				return err
			}
			defer db.Close()

			svc := resume.NewService(db, nil, nil, log)
			if err := export(cmd.Context(), svc, out, cmd.OutOrStdout()); err != nil {
				return err
			}
			if out != "" {
				log.Info("shortlist exported", zap.String("file", out))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().BoolP("debug", "d", false, "verbose/debug output")
	v.BindPFlag("log_debug", cmd.Flags().Lookup("debug"))

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// export writes the CSV to path, or to stdout when path is empty. A failed
// export does not leave a partial file behind.
func export(ctx context.Context, svc exporter, path string, stdout io.Writer) error {
	if path == "" {
		return svc.ExportShortlistCSV(ctx, stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := svc.ExportShortlistCSV(ctx, f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
