package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nutriscan/nutrition-scanner/constants"
	"github.com/nutriscan/nutrition-scanner/gen/ent"
	"github.com/nutriscan/nutrition-scanner/gen/ent/detection"
	"github.com/nutriscan/nutrition-scanner/internal/common"
	"github.com/nutriscan/nutrition-scanner/internal/entity"
	"github.com/nutriscan/nutrition-scanner/internal/nutrition"
	"github.com/nutriscan/nutrition-scanner/internal/utils"
)

// CreateDetectionRequest wraps parameters for creating a pending detection.
type CreateDetectionRequest struct {
	UserID        *uuid.UUID
	DetectionType constants.DetectionType
	ImagePath     *string
	RawText       *string
	Barcode       *string
}

// CompleteDetectionRequest carries everything written when a detection
// reaches the completed status.
type CompleteDetectionRequest struct {
	ID             uuid.UUID
	Facts          nutrition.Facts
	OtherNutrients json.RawMessage
	ProductName    *string
	Brand          *string
	Category       *string
	Score          float64
	RiskLevel      constants.RiskLevel
	Advice         *string
	Analysis       json.RawMessage
	RiskFactors    json.RawMessage
	RawText        *string
	OCRConfidence  *float32
	ProcessingMS   int64
}

// FailDetectionRequest carries everything written when a detection
// reaches the failed status.
type FailDetectionRequest struct {
	ID            uuid.UUID
	ErrorMessage  string
	RawText       *string
	OCRConfidence *float32
	ProcessingMS  int64
}

// DetectionFilter narrows ListDetections. Nil fields match everything.
type DetectionFilter struct {
	UserID        *uuid.UUID
	Status        *constants.DetectionStatus
	Type          *constants.DetectionType
	FavoritesOnly bool
	From          *time.Time
	To            *time.Time
	Offset        int
	Limit         int
}

type DetectionRepository interface {
	Create(ctx context.Context, req *CreateDetectionRequest) (*entity.Detection, error)
	MarkProcessing(ctx context.Context, id uuid.UUID) error
	Complete(ctx context.Context, req *CompleteDetectionRequest) (*entity.Detection, error)
	Fail(ctx context.Context, req *FailDetectionRequest) (*entity.Detection, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Detection, error)
	List(ctx context.Context, filter DetectionFilter) ([]*entity.Detection, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SaveFeedback(ctx context.Context, id uuid.UUID, rating *int, feedback *string, accurate *bool) error
	SetFavorite(ctx context.Context, id uuid.UUID, favorite bool) error
	Stats(ctx context.Context, userID uuid.UUID, from, to *time.Time) (*entity.DetectionStats, error)
	DailyCounts(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.DailyStat, error)
}

type detectionRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDetectionRepository(client *ent.Client, logger *slog.Logger) DetectionRepository {
	return &detectionRepository{
		client: client,
		logger: logger,
	}
}

func (r *detectionRepository) Create(ctx context.Context, req *CreateDetectionRequest) (*entity.Detection, error) {
	builder := r.client.Detection.Create().
		SetDetectionType(string(req.DetectionType)).
		SetStatus(string(constants.StatusPending)).
		SetRiskLevel(string(constants.RiskUnknown)).
		SetNillableImagePath(req.ImagePath).
		SetNillableRawText(req.RawText).
		SetNillableBarcode(req.Barcode)
	if req.UserID != nil {
		builder = builder.SetUserID(*req.UserID)
	}

	rec, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create detection", "error", err)
		return nil, common.WrapError(err, common.ErrDatabase)
	}
	return utils.ToDetection(rec), nil
}

func (r *detectionRepository) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	err := r.client.Detection.UpdateOneID(id).
		SetStatus(string(constants.StatusProcessing)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to mark detection processing", "detection_id", id, "error", err)
		return common.WrapError(err, common.ErrDatabase)
	}
	return nil
}

func (r *detectionRepository) Complete(ctx context.Context, req *CompleteDetectionRequest) (*entity.Detection, error) {
	f := req.Facts
	builder := r.client.Detection.UpdateOneID(req.ID).
		SetStatus(string(constants.StatusCompleted)).
		SetNillableEnergyKj(f.EnergyKJ).
		SetNillableEnergyKcal(f.EnergyKcal).
		SetNillableProtein(f.Protein).
		SetNillableFat(f.Fat).
		SetNillableSaturatedFat(f.SaturatedFat).
		SetNillableCarbohydrate(f.Carbohydrate).
		SetNillableSugar(f.Sugar).
		SetNillableFiber(f.Fiber).
		SetNillableSodium(f.Sodium).
		SetNillableProductName(req.ProductName).
		SetNillableBrand(req.Brand).
		SetNillableCategory(req.Category).
		SetHealthScore(req.Score).
		SetRiskLevel(string(req.RiskLevel)).
		SetNillableHealthAdvice(req.Advice)
	if len(req.OtherNutrients) > 0 {
		builder = builder.SetOtherNutrients(req.OtherNutrients)
	}
	if len(req.Analysis) > 0 {
		builder = builder.SetAnalysis(req.Analysis)
	}
	if len(req.RiskFactors) > 0 {
		builder = builder.SetRiskFactors(req.RiskFactors)
	}
	rec, err := builder.
		SetNillableRawText(req.RawText).
		SetNillableOcrConfidence(req.OCRConfidence).
		SetProcessingMs(req.ProcessingMS).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to complete detection", "detection_id", req.ID, "error", err)
		return nil, common.WrapError(err, common.ErrDatabase)
	}
	return utils.ToDetection(rec), nil
}

func (r *detectionRepository) Fail(ctx context.Context, req *FailDetectionRequest) (*entity.Detection, error) {
	rec, err := r.client.Detection.UpdateOneID(req.ID).
		SetStatus(string(constants.StatusFailed)).
		SetErrorMessage(req.ErrorMessage).
		SetNillableRawText(req.RawText).
		SetNillableOcrConfidence(req.OCRConfidence).
		SetProcessingMs(req.ProcessingMS).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to fail detection", "detection_id", req.ID, "error", err)
		return nil, common.WrapError(err, common.ErrDatabase)
	}
	return utils.ToDetection(rec), nil
}

func (r *detectionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Detection, error) {
	rec, err := r.client.Detection.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to get detection", "detection_id", id, "error", err)
		return nil, common.WrapError(err, common.ErrDatabase)
	}
	return utils.ToDetection(rec), nil
}

func (r *detectionRepository) List(ctx context.Context, filter DetectionFilter) ([]*entity.Detection, int, error) {
	q := r.client.Detection.Query()
	if filter.UserID != nil {
		q = q.Where(detection.UserID(*filter.UserID))
	}
	if filter.Status != nil {
		q = q.Where(detection.StatusEQ(string(*filter.Status)))
	}
	if filter.Type != nil {
		q = q.Where(detection.DetectionTypeEQ(string(*filter.Type)))
	}
	if filter.FavoritesOnly {
		q = q.Where(detection.IsFavorite(true))
	}
	if filter.From != nil {
		q = q.Where(detection.CreatedAtGTE(*filter.From))
	}
	if filter.To != nil {
		q = q.Where(detection.CreatedAtLT(*filter.To))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		r.logger.Error("failed to count detections", "error", err)
		return nil, 0, common.WrapError(err, common.ErrDatabase)
	}

	q = q.Order(ent.Desc(detection.FieldCreatedAt))
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	recs, err := q.All(ctx)
	if err != nil {
		r.logger.Error("failed to list detections", "error", err)
		return nil, 0, common.WrapError(err, common.ErrDatabase)
	}

	result := make([]*entity.Detection, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToDetection(rec)
	}
	return result, total, nil
}

func (r *detectionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.client.Detection.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		r.logger.Error("failed to delete detection", "detection_id", id, "error", err)
		return common.WrapError(err, common.ErrDatabase)
	}
	return nil
}

func (r *detectionRepository) SaveFeedback(ctx context.Context, id uuid.UUID, rating *int, feedback *string, accurate *bool) error {
	err := r.client.Detection.UpdateOneID(id).
		SetNillableUserRating(rating).
		SetNillableUserFeedback(feedback).
		SetNillableIsAccurate(accurate).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		r.logger.Error("failed to save feedback", "detection_id", id, "error", err)
		return common.WrapError(err, common.ErrDatabase)
	}
	return nil
}

func (r *detectionRepository) SetFavorite(ctx context.Context, id uuid.UUID, favorite bool) error {
	err := r.client.Detection.UpdateOneID(id).
		SetIsFavorite(favorite).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		r.logger.Error("failed to set favorite", "detection_id", id, "error", err)
		return common.WrapError(err, common.ErrDatabase)
	}
	return nil
}

func (r *detectionRepository) Stats(ctx context.Context, userID uuid.UUID, from, to *time.Time) (*entity.DetectionStats, error) {
	q := r.client.Detection.Query().Where(detection.UserID(userID))
	if from != nil {
		q = q.Where(detection.CreatedAtGTE(*from))
	}
	if to != nil {
		q = q.Where(detection.CreatedAtLT(*to))
	}

	recs, err := q.All(ctx)
	if err != nil {
		r.logger.Error("failed to query detection stats", "user_id", userID, "error", err)
		return nil, common.WrapError(err, common.ErrDatabase)
	}

	stats := &entity.DetectionStats{
		RiskCounts: make(map[constants.RiskLevel]int),
	}
	var scoreSum float64
	var scored int
	for _, rec := range recs {
		stats.Total++
		switch constants.DetectionStatus(rec.Status) {
		case constants.StatusCompleted:
			stats.Completed++
			level, _ := constants.ParseRiskLevel(rec.RiskLevel)
			stats.RiskCounts[level]++
			if rec.HealthScore != nil {
				scoreSum += *rec.HealthScore
				scored++
			}
		case constants.StatusFailed:
			stats.Failed++
		}
		if rec.IsFavorite {
			stats.FavoriteCount++
		}
	}
	if scored > 0 {
		avg := scoreSum / float64(scored)
		stats.AverageScore = &avg
	}
	return stats, nil
}

func (r *detectionRepository) DailyCounts(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.DailyStat, error) {
	recs, err := r.client.Detection.Query().
		Where(
			detection.UserID(userID),
			detection.CreatedAtGTE(from),
			detection.CreatedAtLT(to),
		).
		Order(ent.Asc(detection.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to query daily counts", "user_id", userID, "error", err)
		return nil, common.WrapError(err, common.ErrDatabase)
	}

	type bucket struct {
		count  int
		sum    float64
		scored int
	}
	buckets := make(map[time.Time]*bucket)
	for _, rec := range recs {
		day := rec.CreatedAt.UTC().Truncate(24 * time.Hour)
		b := buckets[day]
		if b == nil {
			b = &bucket{}
			buckets[day] = b
		}
		b.count++
		if rec.HealthScore != nil {
			b.sum += *rec.HealthScore
			b.scored++
		}
	}

	// One entry per day in range so the trend has no holes.
	var out []*entity.DailyStat
	for day := from.UTC().Truncate(24 * time.Hour); day.Before(to); day = day.Add(24 * time.Hour) {
		stat := &entity.DailyStat{Date: day}
		if b := buckets[day]; b != nil {
			stat.Count = b.count
			if b.scored > 0 {
				avg := b.sum / float64(b.scored)
				stat.AverageScore = &avg
			}
		}
		out = append(out, stat)
	}
	return out, nil
}
