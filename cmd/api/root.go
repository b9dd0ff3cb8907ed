package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"resume-intake/internal/api"
	"resume-intake/internal/config"
	"resume-intake/internal/cv"
	"resume-intake/internal/logger"
	"resume-intake/internal/resume"
	"resume-intake/internal/storage"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	app             = "resume-intake"
	shutdownTimeout = 10 * time.Second
)

var (
	v = viper.New()

	rootCmd = &cobra.Command{
		Use:          app,
		Short:        "resume-intake serves the resume upload, search, ranking and shortlist API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntP("port", "p", 8080, "HTTP listen port")
	flags.String("uploads-dir", "./uploads", "directory for stored PDFs when FILE_STORE=local")
	flags.BoolP("debug", "d", false, "verbose/debug output")
	flags.BoolP("json", "j", false, "json format for logging")

	v.BindPFlag("port", flags.Lookup("port"))
	v.BindPFlag("uploads_dir", flags.Lookup("uploads-dir"))
	v.BindPFlag("log_debug", flags.Lookup("debug"))
	v.BindPFlag("log_json", flags.Lookup("json"))

	rootCmd.AddCommand(migrateCmd)
}

// setup loads the configuration and builds the logger.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(cfg.LogJSON, cfg.LogDebug)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, log, nil
}

func openDB(cfg *config.Config, log *zap.Logger) (*storage.DB, error) {
	log.Info("connecting to database", zap.String("dsn", logger.RedactDSN(cfg.DatabaseURL)))
	db, err := storage.NewDB(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	log.Info("database connected")
	return db, nil
}

func openFileStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (storage.FileStore, error) {
	switch cfg.FileStore {
	case config.FileStoreMinIO:
		log.Info("using minio file store",
			zap.String("endpoint", cfg.MinIO.Endpoint),
			zap.String("bucket", cfg.MinIO.Bucket),
		)
		return storage.NewMinIOFileStore(ctx, storage.MinIOConfig{
			Endpoint:         cfg.MinIO.Endpoint,
			AccessKeyID:      cfg.MinIO.AccessKeyID,
			SecretAccessKey:  cfg.MinIO.SecretAccessKey,
			Bucket:           cfg.MinIO.Bucket,
			Region:           cfg.MinIO.Region,
			UseSSL:           cfg.MinIO.UseSSL,
			AutoCreateBucket: cfg.MinIO.AutoCreateBucket,
		})
	default:
		log.Info("using local file store", zap.String("dir", cfg.UploadsDir))
		return storage.NewLocalFileStore(cfg.UploadsDir)
	}
}

func serve(ctx context.Context) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := openDB(cfg, log)
	if err != nil {
		log.Error("database connection failed", zap.Error(err))
		return err
	}
	defer db.Close()

	if cfg.AutoMigrate {
		if err := db.Migrate(ctx); err != nil {
			log.Error("schema migration failed", zap.Error(err))
			return err
		}
		log.Info("schema is up to date")
	}

	files, err := openFileStore(ctx, cfg, log)
	if err != nil {
		log.Error("file store init failed", zap.Error(err))
		return err
	}

	extractor, err := cv.NewTextExtractor(cfg.PDFExtractor)
	if err != nil {
		return err
	}

	svc := resume.NewService(db, files, extractor, log.Named("resume"))

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	apiSrv := api.NewAPI(svc, db, log.Named("http"), api.Options{
		MaxUploadBytes: cfg.MaxUploadBytes,
		CORSOrigin:     cfg.CORSOrigin,
		Registry:       registry,
	})

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           api.NewRouter(apiSrv),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("API server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped with error", zap.Error(err))
		return err
	}
	return nil
}
