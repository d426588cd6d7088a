package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	nutritionpb "github.com/nutriscan/nutrition-scanner/gen/proto/nutrition/v1"
	"github.com/nutriscan/nutrition-scanner/internal/common"
	"github.com/nutriscan/nutrition-scanner/internal/export"
	"github.com/nutriscan/nutrition-scanner/internal/stats"
	"github.com/nutriscan/nutrition-scanner/internal/utils"
)

// StatsServer serves aggregation and export RPCs.
type StatsServer struct {
	nutritionpb.UnimplementedStatsServiceServer
	stats    *stats.Service
	exporter *export.Service
	logger   *slog.Logger
}

func NewStatsServer(statsSvc *stats.Service, exporter *export.Service, logger *slog.Logger) *StatsServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatsServer{stats: statsSvc, exporter: exporter, logger: logger}
}

func (s *StatsServer) TodayStats(ctx context.Context, req *nutritionpb.TodayStatsRequest) (*nutritionpb.StatsResponse, error) {
	id, err := parseID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}
	st, err := s.stats.Today(ctx, id)
	if err != nil {
		return nil, statusFromError(err)
	}
	return &nutritionpb.StatsResponse{Stats: utils.ToPBStats(st)}, nil
}

func (s *StatsServer) WeeklyStats(ctx context.Context, req *nutritionpb.WeeklyStatsRequest) (*nutritionpb.WeeklyStatsResponse, error) {
	id, err := parseID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}
	days, err := s.stats.Weekly(ctx, id)
	if err != nil {
		return nil, statusFromError(err)
	}
	out := make([]*nutritionpb.DailyStat, 0, len(days))
	for _, d := range days {
		out = append(out, utils.ToPBDailyStat(d))
	}
	return &nutritionpb.WeeklyStatsResponse{Days: out}, nil
}

func (s *StatsServer) SummaryStats(ctx context.Context, req *nutritionpb.SummaryStatsRequest) (*nutritionpb.StatsResponse, error) {
	id, err := parseID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}
	st, err := s.stats.Summary(ctx, id)
	if err != nil {
		return nil, statusFromError(err)
	}
	return &nutritionpb.StatsResponse{Stats: utils.ToPBStats(st)}, nil
}

func (s *StatsServer) ExportDetections(ctx context.Context, req *nutritionpb.ExportDetectionsRequest) (*nutritionpb.ExportDetectionsResponse, error) {
	id, err := parseID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}

	var fromPtr, toPtr *time.Time
	if v := strings.TrimSpace(req.GetFromDate()); v != "" {
		t, err := utils.ParseYMD(v)
		if err != nil {
			return nil, common.InvalidArgumentError("from_date must be YYYY-MM-DD")
		}
		fromPtr = &t
	}
	if v := strings.TrimSpace(req.GetToDate()); v != "" {
		t, err := utils.ParseYMD(v)
		if err != nil {
			return nil, common.InvalidArgumentError("to_date must be YYYY-MM-DD")
		}
		toPtr = &t
	}

	xlsx, err := s.exporter.ExportDetectionsXLSX(ctx, id, fromPtr, toPtr)
	if err != nil {
		s.logger.Error("stats.export.failed", "user_id", id, "error", err)
		return nil, statusFromError(err)
	}
	return &nutritionpb.ExportDetectionsResponse{
		Xlsx:     xlsx,
		Filename: export.Filename(time.Now()),
	}, nil
}
