package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/nutriscan/nutrition-scanner/constants"
	nutritionpb "github.com/nutriscan/nutrition-scanner/gen/proto/nutrition/v1"
	"github.com/nutriscan/nutrition-scanner/internal/common"
	"github.com/nutriscan/nutrition-scanner/internal/entity"
	"github.com/nutriscan/nutrition-scanner/internal/pipeline"
	"github.com/nutriscan/nutrition-scanner/internal/repository"
	"github.com/nutriscan/nutrition-scanner/internal/utils"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// DetectionServer bridges the detection RPCs onto the pipeline and
// the repositories.
type DetectionServer struct {
	nutritionpb.UnimplementedDetectionServiceServer
	controller *pipeline.Controller
	detections repository.DetectionRepository
	users      repository.UserRepository
	images     *pipeline.ImageStore
	logger     *slog.Logger
}

func NewDetectionServer(
	controller *pipeline.Controller,
	detections repository.DetectionRepository,
	users repository.UserRepository,
	images *pipeline.ImageStore,
	logger *slog.Logger,
) *DetectionServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &DetectionServer{
		controller: controller,
		detections: detections,
		users:      users,
		images:     images,
		logger:     logger,
	}
}

func (s *DetectionServer) AnalyzeImage(ctx context.Context, req *nutritionpb.AnalyzeImageRequest) (*nutritionpb.DetectionResponse, error) {
	if len(req.GetImage()) == 0 {
		return nil, common.InvalidArgumentError("image is required")
	}
	return s.ingest(ctx, req.GetUserId(), pipeline.Input{
		Type:     constants.TypeOCRScan,
		Image:    req.GetImage(),
		Filename: req.GetFilename(),
	})
}

func (s *DetectionServer) AnalyzeText(ctx context.Context, req *nutritionpb.AnalyzeTextRequest) (*nutritionpb.DetectionResponse, error) {
	if strings.TrimSpace(req.GetRawText()) == "" {
		return nil, common.InvalidArgumentError("raw_text is required")
	}
	return s.ingest(ctx, req.GetUserId(), pipeline.Input{
		Type:    constants.TypeManualInput,
		RawText: req.GetRawText(),
	})
}

func (s *DetectionServer) AnalyzeBarcode(ctx context.Context, req *nutritionpb.AnalyzeBarcodeRequest) (*nutritionpb.DetectionResponse, error) {
	if strings.TrimSpace(req.GetBarcode()) == "" {
		return nil, common.InvalidArgumentError("barcode is required")
	}
	return s.ingest(ctx, req.GetUserId(), pipeline.Input{
		Type:    constants.TypeBarcodeScan,
		Barcode: strings.TrimSpace(req.GetBarcode()),
	})
}

func (s *DetectionServer) ingest(ctx context.Context, rawUserID string, in pipeline.Input) (*nutritionpb.DetectionResponse, error) {
	userID, err := parseOptionalID("user_id", rawUserID)
	if err != nil {
		return nil, err
	}
	in.UserID = userID
	if userID != nil {
		u, err := s.users.GetByID(ctx, *userID)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return nil, common.NotFoundError("user not found")
			}
			return nil, statusFromError(err)
		}
		if !u.HealthProfile.Empty() {
			profile := u.HealthProfile
			in.Profile = &profile
		}
	}

	det, err := s.controller.Ingest(ctx, in)
	if err != nil {
		s.logger.Error("detections.ingest.failed", "detection_type", in.Type, "error", err)
		return nil, statusFromError(err)
	}

	if userID != nil && det.Status == constants.StatusCompleted {
		if err := s.users.RecordScan(ctx, *userID, time.Now()); err != nil {
			// counter drift is acceptable, the detection is already stored
			s.logger.Warn("detections.scan_count.failed", "user_id", userID, "error", err)
		}
	}
	return &nutritionpb.DetectionResponse{Detection: utils.ToPBDetection(det)}, nil
}

func (s *DetectionServer) GetDetection(ctx context.Context, req *nutritionpb.GetDetectionRequest) (*nutritionpb.DetectionResponse, error) {
	det, err := s.authorize(ctx, req.GetId(), req.GetUserId())
	if err != nil {
		return nil, err
	}
	return &nutritionpb.DetectionResponse{Detection: utils.ToPBDetection(det)}, nil
}

func (s *DetectionServer) ListDetections(ctx context.Context, req *nutritionpb.ListDetectionsRequest) (*nutritionpb.ListDetectionsResponse, error) {
	userID, err := parseID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}

	filter := repository.DetectionFilter{
		UserID:        &userID,
		FavoritesOnly: req.GetFavoritesOnly(),
	}
	if v := req.GetStatus(); v != "" {
		st, ok := constants.ParseDetectionStatus(v)
		if !ok {
			return nil, common.InvalidArgumentErrorf("unknown status %q", v)
		}
		filter.Status = &st
	}
	if v := req.GetDetectionType(); v != "" {
		dt, ok := constants.ParseDetectionType(v)
		if !ok {
			return nil, common.InvalidArgumentErrorf("unknown detection type %q", v)
		}
		filter.Type = &dt
	}

	page := int(req.GetPage())
	if page < 1 {
		page = 1
	}
	size := int(req.GetPageSize())
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	filter.Offset = (page - 1) * size
	filter.Limit = size

	recs, total, err := s.detections.List(ctx, filter)
	if err != nil {
		return nil, statusFromError(err)
	}

	out := make([]*nutritionpb.Detection, 0, len(recs))
	for _, d := range recs {
		out = append(out, utils.ToPBDetection(d))
	}
	return &nutritionpb.ListDetectionsResponse{
		Detections: out,
		Total:      int32(total),
		Page:       int32(page),
		PageSize:   int32(size),
	}, nil
}

func (s *DetectionServer) SubmitFeedback(ctx context.Context, req *nutritionpb.SubmitFeedbackRequest) (*nutritionpb.SubmitFeedbackResponse, error) {
	det, err := s.authorize(ctx, req.GetId(), req.GetUserId())
	if err != nil {
		return nil, err
	}

	var rating *int
	if req.Rating != nil {
		r := int(req.GetRating())
		if r < 1 || r > 5 {
			return nil, common.InvalidArgumentError("rating must be between 1 and 5")
		}
		rating = &r
	}
	var feedback *string
	if v := strings.TrimSpace(req.GetFeedback()); v != "" {
		feedback = &v
	}
	if rating == nil && feedback == nil && req.IsAccurate == nil {
		return nil, common.InvalidArgumentError("feedback is empty")
	}

	if err := s.detections.SaveFeedback(ctx, det.ID, rating, feedback, req.IsAccurate); err != nil {
		return nil, statusFromError(err)
	}
	return &nutritionpb.SubmitFeedbackResponse{}, nil
}

func (s *DetectionServer) ToggleFavorite(ctx context.Context, req *nutritionpb.ToggleFavoriteRequest) (*nutritionpb.ToggleFavoriteResponse, error) {
	det, err := s.authorize(ctx, req.GetId(), req.GetUserId())
	if err != nil {
		return nil, err
	}
	if err := s.detections.SetFavorite(ctx, det.ID, req.GetFavorite()); err != nil {
		return nil, statusFromError(err)
	}
	return &nutritionpb.ToggleFavoriteResponse{IsFavorite: req.GetFavorite()}, nil
}

func (s *DetectionServer) DeleteDetection(ctx context.Context, req *nutritionpb.DeleteDetectionRequest) (*nutritionpb.DeleteDetectionResponse, error) {
	det, err := s.authorize(ctx, req.GetId(), req.GetUserId())
	if err != nil {
		return nil, err
	}
	if err := s.detections.Delete(ctx, det.ID); err != nil {
		return nil, statusFromError(err)
	}
	if s.images != nil && det.ImagePath != nil {
		if err := s.images.Remove(*det.ImagePath); err != nil {
			// The row is gone; an orphaned file is not worth failing the call.
			s.logger.Warn("detections.image.remove_failed", "path", *det.ImagePath, "error", err)
		}
	}
	return &nutritionpb.DeleteDetectionResponse{}, nil
}

// authorize loads a detection and enforces ownership. Records owned by
// another user come back as NotFound so record IDs are not probeable.
func (s *DetectionServer) authorize(ctx context.Context, rawID, rawUserID string) (*entity.Detection, error) {
	id, err := parseID("id", rawID)
	if err != nil {
		return nil, err
	}
	userID, err := parseOptionalID("user_id", rawUserID)
	if err != nil {
		return nil, err
	}

	det, err := s.detections.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("detection not found")
		}
		return nil, statusFromError(err)
	}
	if det.UserID != nil {
		if userID == nil || *det.UserID != *userID {
			return nil, common.NotFoundError("detection not found")
		}
	}
	return det, nil
}
