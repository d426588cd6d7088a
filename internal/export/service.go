package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/nutriscan/nutrition-scanner/internal/repository"
)

// Service produces XLSX workbooks from a user's detection history.
type Service struct {
	detections repository.DetectionRepository
	logger     *slog.Logger
}

func NewService(detections repository.DetectionRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{detections: detections, logger: logger}
}

// ExportDetectionsXLSX returns a workbook for the given user and date
// window. If only from is provided -> from..today (inclusive). If only
// to is provided -> beginning..to (inclusive). If neither -> all.
func (s *Service) ExportDetectionsXLSX(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	var fromDate, toDate *time.Time
	if from != nil {
		f := dateOnly(*from)
		fromDate = &f
	}
	if to != nil {
		// inclusive end of day
		t := dateOnly(*to).Add(24 * time.Hour)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		t := dateOnly(time.Now().UTC()).Add(24 * time.Hour)
		toDate = &t
	}

	recs, _, err := s.detections.List(ctx, repository.DetectionFilter{
		UserID: &userID,
		From:   fromDate,
		To:     toDate,
	})
	if err != nil {
		return nil, fmt.Errorf("query detections: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Detections"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"检测时间",
		"检测方式",
		"产品名称",
		"状态",
		"健康评分",
		"风险等级",
		"能量(kJ)",
		"蛋白质(g)",
		"脂肪(g)",
		"碳水化合物(g)",
		"钠(mg)",
		"健康建议",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, d := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, d.CreatedAt.UTC().Format("2006-01-02 15:04"))
		write(2, string(d.DetectionType))
		write(3, derefStr(d.ProductName))
		write(4, string(d.Status))
		if d.HealthScore != nil {
			write(5, *d.HealthScore)
		}
		write(6, string(d.RiskLevel))
		writeFloat(write, 7, d.EnergyKJ)
		writeFloat(write, 8, d.Protein)
		writeFloat(write, 9, d.Fat)
		writeFloat(write, 10, d.Carbohydrate)
		writeFloat(write, 11, d.Sodium)
		write(12, truncate(derefStr(d.HealthAdvice), 140))

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 18) // timestamp
	_ = f.SetColWidth(sheet, "B", "B", 14) // type
	_ = f.SetColWidth(sheet, "C", "C", 28) // product
	_ = f.SetColWidth(sheet, "D", "F", 12) // status, score, risk
	_ = f.SetColWidth(sheet, "G", "K", 14) // nutrients
	_ = f.SetColWidth(sheet, "L", "L", 48) // advice

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"user_id", userID.String(),
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// Filename builds the download name for one export.
func Filename(at time.Time) string {
	return fmt.Sprintf("detections-%s.xlsx", at.UTC().Format("20060102"))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func derefStr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func writeFloat(write func(int, any), col int, v *float64) {
	if v != nil {
		write(col, *v)
	}
}

// truncate caps a string at n runes, never splitting a multi-byte
// character.
func truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	if n == 1 {
		return string(runes[:1])
	}
	return string(runes[:n-1]) + "…"
}
