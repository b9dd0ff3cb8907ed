package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"resume-intake/internal/logger"
	apiclient "resume-intake/pkg/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type uploader interface {
	UploadResume(ctx context.Context, name, filename string, pdf io.Reader) error
}

type options struct {
	server       string
	dir          string
	concurrency  int
	timeout      time.Duration
	nameFromFile bool
	debug        bool
}

func main() {
	var opts options

	cmd := &cobra.Command{
		Use:          "bulk_upload",
		Short:        "Upload every PDF in a directory to a running resume-intake server",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := logger.New(false, opts.debug)
			if err != nil {
				return err
			}
			defer log.Sync()

			client := apiclient.NewClient(opts.server, opts.timeout)
			res, err := uploadDir(cmd.Context(), client, opts, log)
			if err != nil {
				return err
			}
			log.Info("bulk upload finished",
				zap.Int("uploaded", res.uploaded),
				zap.Int("failed", res.failed),
			)
			if res.failed > 0 {
				return fmt.Errorf("%d of %d uploads failed", res.failed, res.uploaded+res.failed)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.server, "server", "http://localhost:8080", "base URL of the resume-intake API")
	flags.StringVar(&opts.dir, "dir", ".", "directory containing PDF resumes")
	flags.IntVar(&opts.concurrency, "concurrency", 4, "number of parallel uploads")
	flags.DurationVar(&opts.timeout, "timeout", 60*time.Second, "per-request timeout")
	flags.BoolVar(&opts.nameFromFile, "name-from-file", true, "derive the candidate name from the file name")
	flags.BoolVarP(&opts.debug, "debug", "d", false, "verbose/debug output")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type result struct {
	uploaded int
	failed   int
}

// uploadDir uploads the PDFs directly inside opts.dir. Individual upload
// failures are logged and counted, not returned.
func uploadDir(ctx context.Context, c uploader, opts options, log *zap.Logger) (result, error) {
	files, err := pdfFiles(opts.dir)
	if err != nil {
		return result{}, err
	}
	log.Info("found resumes", zap.String("dir", opts.dir), zap.Int("count", len(files)))

	var uploaded, failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.concurrency, 1))

	for _, path := range files {
		g.Go(func() error {
			if err := uploadFile(gctx, c, path, opts.nameFromFile); err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				failed.Add(1)
				log.Warn("upload failed", zap.String("file", path), zap.Error(err))
				return nil
			}
			uploaded.Add(1)
			log.Debug("uploaded", zap.String("file", path))
			return nil
		})
	}

	err = g.Wait()
	return result{uploaded: int(uploaded.Load()), failed: int(failed.Load())}, err
}

func uploadFile(ctx context.Context, c uploader, path string, nameFromFile bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	base := filepath.Base(path)
	name := ""
	if nameFromFile {
		name = nameFromFilename(base)
	}
	return c.UploadResume(ctx, name, base, f)
}

func pdfFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// nameFromFilename turns "ada_lovelace-cv.pdf" into "ada lovelace cv".
func nameFromFilename(base string) string {
	name := strings.TrimSuffix(base, filepath.Ext(base))
	name = strings.NewReplacer("_", " ", "-", " ").Replace(name)
	return strings.Join(strings.Fields(name), " ")
}
