package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nutriscan/nutrition-scanner/constants"
	"github.com/nutriscan/nutrition-scanner/internal/ai/qwen"
	"github.com/nutriscan/nutrition-scanner/internal/analysis"
	"github.com/nutriscan/nutrition-scanner/internal/async"
	"github.com/nutriscan/nutrition-scanner/internal/common"
	"github.com/nutriscan/nutrition-scanner/internal/ocr"
	"github.com/nutriscan/nutrition-scanner/internal/pipeline"
	"github.com/nutriscan/nutrition-scanner/internal/products"
	repo "github.com/nutriscan/nutrition-scanner/internal/repository"
)

var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".webp": true,
}

// scan-batch runs the detection pipeline over a directory of label
// photos, anonymous, using the worker queue instead of the server.
func main() {
	dir := flag.String("dir", "", "directory of label images to scan")
	workers := flag.Int("workers", 4, "concurrent pipeline workers")
	timeout := flag.Duration("timeout", 2*time.Minute, "per-image processing timeout")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if *dir == "" {
		logger.Error("missing -dir flag")
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	detectionsRepo := repo.NewDetectionRepository(entc, logger)
	ocrClient := ocr.NewClient(ocr.Config{
		BaseURL:   cfg.OCR.BaseURL,
		SecretID:  cfg.OCR.SecretID,
		SecretKey: cfg.OCR.SecretKey,
		Timeout:   cfg.OCR.Timeout,
	}, logger)
	qwenClient := qwen.NewClient(qwen.Config{
		APIKey:      cfg.AI.APIKey,
		BaseURL:     cfg.AI.BaseURL,
		Model:       cfg.AI.Model,
		Temperature: cfg.AI.Temperature,
		Timeout:     cfg.AI.Timeout,
	}, logger)
	adapter := analysis.NewAdapter(qwenClient, cfg.AI.Timeout, logger)
	images := pipeline.NewImageStore(cfg.Upload.Dir, cfg.Upload.MaxUploadSize)
	controller := pipeline.NewController(detectionsRepo, ocrClient, adapter, products.NewStaticCatalog(), images, logger)

	queue := async.NewIngestQueue(controller, logger,
		async.WithWorkers(*workers),
		async.WithProcessTimeout(*timeout),
	)

	entries, err := os.ReadDir(*dir)
	if err != nil {
		logger.Error("failed to read directory", "dir", *dir, "error", err)
		os.Exit(1)
	}

	var queued int
	for _, e := range entries {
		if e.IsDir() || !imageExts[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		path := filepath.Join(*dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("skipping unreadable file", "path", path, "error", err)
			continue
		}
		job := async.Job{Input: pipeline.Input{
			Type:     constants.TypeOCRScan,
			Image:    data,
			Filename: e.Name(),
		}}
		for {
			err := queue.Enqueue(ctx, job)
			if err == nil {
				queued++
				break
			}
			if err == async.ErrQueueFull {
				time.Sleep(100 * time.Millisecond)
				continue
			}
			logger.Error("failed to enqueue", "path", path, "error", err)
			break
		}
	}

	logger.Info("batch queued", "count", queued)
	queue.Shutdown(context.Background())
	logger.Info("batch done")
}
