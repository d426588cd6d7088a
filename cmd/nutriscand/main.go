package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	nutritionpb "github.com/nutriscan/nutrition-scanner/gen/proto/nutrition/v1"
	"github.com/nutriscan/nutrition-scanner/internal/ai/qwen"
	"github.com/nutriscan/nutrition-scanner/internal/analysis"
	"github.com/nutriscan/nutrition-scanner/internal/common"
	"github.com/nutriscan/nutrition-scanner/internal/export"
	"github.com/nutriscan/nutrition-scanner/internal/ocr"
	"github.com/nutriscan/nutrition-scanner/internal/pipeline"
	"github.com/nutriscan/nutrition-scanner/internal/products"
	repo "github.com/nutriscan/nutrition-scanner/internal/repository"
	svc "github.com/nutriscan/nutrition-scanner/internal/server"
	"github.com/nutriscan/nutrition-scanner/internal/stats"
	"github.com/nutriscan/nutrition-scanner/internal/wechat"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	detectionsRepo := repo.NewDetectionRepository(entc, logger)
	usersRepo := repo.NewUserRepository(entc, logger)
	articlesRepo := repo.NewArticleRepository(entc, logger)

	ocrClient := ocr.NewClient(ocr.Config{
		BaseURL:   cfg.OCR.BaseURL,
		SecretID:  cfg.OCR.SecretID,
		SecretKey: cfg.OCR.SecretKey,
		Timeout:   cfg.OCR.Timeout,
	}, logger)
	if !ocrClient.Configured() {
		logger.Warn("OCR provider not configured, image scans will fail per detection")
	}

	qwenClient := qwen.NewClient(qwen.Config{
		APIKey:      cfg.AI.APIKey,
		BaseURL:     cfg.AI.BaseURL,
		Model:       cfg.AI.Model,
		Temperature: cfg.AI.Temperature,
		Timeout:     cfg.AI.Timeout,
	}, logger)
	if !qwenClient.Configured() {
		logger.Warn("AI provider not configured, analysis will use the heuristic scorer")
	}
	adapter := analysis.NewAdapter(qwenClient, cfg.AI.Timeout, logger)

	catalog := products.NewStaticCatalog()
	images := pipeline.NewImageStore(cfg.Upload.Dir, cfg.Upload.MaxUploadSize)
	controller := pipeline.NewController(detectionsRepo, ocrClient, adapter, catalog, images, logger)

	wxClient := wechat.NewClient(wechat.Config{
		AppID:     cfg.WeChat.AppID,
		AppSecret: cfg.WeChat.AppSecret,
		Timeout:   cfg.WeChat.Timeout,
	}, logger)

	statsSvc := stats.NewService(detectionsRepo, logger)
	exportSvc := export.NewService(detectionsRepo, logger)

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	nutritionpb.RegisterDetectionServiceServer(grpcServer,
		svc.NewDetectionServer(controller, detectionsRepo, usersRepo, images, logger))
	nutritionpb.RegisterUserServiceServer(grpcServer,
		svc.NewUserServer(wxClient, usersRepo, logger))
	nutritionpb.RegisterStatsServiceServer(grpcServer,
		svc.NewStatsServer(statsSvc, exportSvc, logger))
	nutritionpb.RegisterEducationServiceServer(grpcServer,
		svc.NewEducationServer(articlesRepo, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	logger.Info("nutrition-scanner listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	grpcServer.GracefulStop()
}
