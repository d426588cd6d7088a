package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nutriscan/nutrition-scanner/constants"
	"github.com/nutriscan/nutrition-scanner/internal/ai"
	"github.com/nutriscan/nutrition-scanner/internal/analysis"
	"github.com/nutriscan/nutrition-scanner/internal/common"
	"github.com/nutriscan/nutrition-scanner/internal/entity"
	"github.com/nutriscan/nutrition-scanner/internal/nutrition"
	"github.com/nutriscan/nutrition-scanner/internal/ocr"
	"github.com/nutriscan/nutrition-scanner/internal/products"
	"github.com/nutriscan/nutrition-scanner/internal/repository"
)

// Input is one ingestion request. Exactly one of Image, RawText or
// Barcode is meaningful, selected by Type.
type Input struct {
	Type     constants.DetectionType
	UserID   *uuid.UUID // nil for anonymous scans
	Profile  *entity.HealthProfile
	Image    []byte
	Filename string
	RawText  string
	Barcode  string
}

// Analyzer is the normalized analysis stage. *analysis.Adapter is the
// production implementation.
type Analyzer interface {
	Analyze(ctx context.Context, req ai.Request) analysis.Result
}

// Controller walks one detection through its lifecycle: create the
// record, run the stages for its input type, and persist a terminal
// status. Stage failures land in the record as status=failed; only
// validation and persistence problems surface as errors.
type Controller struct {
	detections repository.DetectionRepository
	recognizer ocr.Recognizer
	parser     *nutrition.Parser
	analyzer   Analyzer
	catalog    products.Catalog
	images     *ImageStore
	logger     *slog.Logger
}

func NewController(
	detections repository.DetectionRepository,
	recognizer ocr.Recognizer,
	analyzer Analyzer,
	catalog products.Catalog,
	images *ImageStore,
	logger *slog.Logger,
) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		detections: detections,
		recognizer: recognizer,
		parser:     nutrition.NewParser(),
		analyzer:   analyzer,
		catalog:    catalog,
		images:     images,
		logger:     logger,
	}
}

// Ingest validates the input, creates the detection record and runs
// the pipeline to a terminal status. The returned detection is always
// terminal: completed, or failed with a stage-naming error message.
// An error return means no usable record exists (bad input or a
// persistence problem), never a stage failure.
func (c *Controller) Ingest(ctx context.Context, in Input) (*entity.Detection, error) {
	if err := c.validate(in); err != nil {
		return nil, err
	}

	create := &repository.CreateDetectionRequest{
		UserID:        in.UserID,
		DetectionType: in.Type,
	}
	switch in.Type {
	case constants.TypeOCRScan:
		path, err := c.images.Save(in.Image, in.Filename)
		if err != nil {
			c.logger.Error("pipeline.image.save_failed", "error", err)
			return nil, common.NewAppError("IMAGE_STORE_ERROR", "failed to store image", err)
		}
		create.ImagePath = &path
	case constants.TypeManualInput:
		create.RawText = &in.RawText
	case constants.TypeBarcodeScan:
		create.Barcode = &in.Barcode
	}

	det, err := c.detections.Create(ctx, create)
	if err != nil {
		return nil, err
	}
	if err := c.detections.MarkProcessing(ctx, det.ID); err != nil {
		return nil, err
	}
	c.logger.Info("pipeline.ingest.start",
		"detection_id", det.ID,
		"detection_type", in.Type,
	)

	return c.process(ctx, det, in)
}

func (c *Controller) validate(in Input) error {
	switch in.Type {
	case constants.TypeOCRScan:
		if len(in.Image) == 0 {
			return common.NewAppError("INVALID_INPUT", "image is required", common.ErrInvalidInput)
		}
		if c.images.MaxSize > 0 && int64(len(in.Image)) > c.images.MaxSize {
			return common.NewAppError("INVALID_INPUT",
				fmt.Sprintf("image exceeds %d bytes", c.images.MaxSize), common.ErrInvalidInput)
		}
	case constants.TypeManualInput:
		if in.RawText == "" {
			return common.NewAppError("INVALID_INPUT", "raw_text is required", common.ErrInvalidInput)
		}
	case constants.TypeBarcodeScan:
		if in.Barcode == "" {
			return common.NewAppError("INVALID_INPUT", "barcode is required", common.ErrInvalidInput)
		}
	default:
		return common.NewAppError("INVALID_INPUT",
			fmt.Sprintf("unknown detection type %q", in.Type), common.ErrInvalidInput)
	}
	return nil
}

// process runs the stages after the record exists. A panic anywhere in
// a stage is converted into a failed record instead of crossing the
// API boundary. Terminal writes run on a context detached from caller
// cancellation: a record that reached processing must reach completed
// or failed even when the client already went away.
func (c *Controller) process(ctx context.Context, det *entity.Detection, in Input) (out *entity.Detection, err error) {
	start := time.Now()
	persistCtx := context.WithoutCancel(ctx)
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("pipeline.panic", "detection_id", det.ID, "panic", r)
			out, err = c.detections.Fail(persistCtx, &repository.FailDetectionRequest{
				ID:           det.ID,
				ErrorMessage: "internal error during processing",
				ProcessingMS: time.Since(start).Milliseconds(),
			})
		}
	}()

	var (
		facts      nutrition.Facts
		rawText    *string
		confidence *float32
		product    ai.ProductInfo
	)

	switch in.Type {
	case constants.TypeOCRScan:
		res := c.recognizer.Recognize(ctx, in.Image)
		if !res.Success {
			c.logger.Warn("pipeline.ocr.failed", "detection_id", det.ID, "reason", res.Err)
			return c.detections.Fail(persistCtx, &repository.FailDetectionRequest{
				ID:           det.ID,
				ErrorMessage: "OCR recognition failed: " + res.Err,
				ProcessingMS: time.Since(start).Milliseconds(),
			})
		}
		rawText = &res.Text
		confidence = &res.Confidence

		var extraction nutrition.Extraction
		if len(res.Tokens) > 0 {
			extraction = c.parser.ParseTokens(res.Tokens)
		} else {
			extraction = c.parser.Parse(res.Text)
		}
		if len(extraction) == 0 {
			c.logger.Warn("pipeline.parse.empty", "detection_id", det.ID)
			return c.detections.Fail(persistCtx, &repository.FailDetectionRequest{
				ID:            det.ID,
				ErrorMessage:  "no nutrition label detected",
				RawText:       rawText,
				OCRConfidence: confidence,
				ProcessingMS:  time.Since(start).Milliseconds(),
			})
		}
		facts = nutrition.Normalize(extraction)

	case constants.TypeManualInput:
		extraction := c.parser.Parse(in.RawText)
		facts = nutrition.Normalize(extraction)

	case constants.TypeBarcodeScan:
		p, lookupErr := c.catalog.Lookup(ctx, in.Barcode)
		if lookupErr != nil {
			reason := "product catalog lookup failed"
			if lookupErr == products.ErrNotFound {
				reason = "barcode not found in product catalog"
			}
			c.logger.Warn("pipeline.barcode.failed",
				"detection_id", det.ID, "barcode", in.Barcode, "error", lookupErr)
			return c.detections.Fail(persistCtx, &repository.FailDetectionRequest{
				ID:           det.ID,
				ErrorMessage: reason,
				ProcessingMS: time.Since(start).Milliseconds(),
			})
		}
		facts = p.Facts
		product = ai.ProductInfo{Name: p.Name, Brand: p.Brand, Category: p.Category}
	}

	result := c.analyze(ctx, det.ID, facts, product, in.Profile)

	complete := &repository.CompleteDetectionRequest{
		ID:            det.ID,
		Facts:         facts,
		Score:         result.Score,
		RiskLevel:     result.RiskLevel,
		Analysis:      result.Analysis,
		RiskFactors:   result.RiskFactors,
		RawText:       rawText,
		OCRConfidence: confidence,
		ProcessingMS:  time.Since(start).Milliseconds(),
	}
	if result.Advice != "" {
		complete.Advice = &result.Advice
	}
	if product.Name != "" {
		complete.ProductName = &product.Name
	}
	if product.Brand != "" {
		complete.Brand = &product.Brand
	}
	if product.Category != "" {
		complete.Category = &product.Category
	}

	done, err := c.detections.Complete(persistCtx, complete)
	if err != nil {
		return nil, err
	}
	c.logger.Info("pipeline.ingest.completed",
		"detection_id", det.ID,
		"score", result.Score,
		"risk_level", result.RiskLevel,
		"duration_ms", complete.ProcessingMS,
	)
	return done, nil
}

// analyze runs the AI stage and substitutes the heuristic result when
// the provider cannot deliver. Labels with no recognized nutrients
// skip the provider entirely; there is nothing for it to assess.
func (c *Controller) analyze(ctx context.Context, id uuid.UUID, facts nutrition.Facts, product ai.ProductInfo, profile *entity.HealthProfile) analysis.Result {
	if facts.Empty() || c.analyzer == nil {
		return analysis.Heuristic(facts)
	}
	result := c.analyzer.Analyze(ctx, ai.Request{
		Facts:   facts,
		Product: product,
		Profile: profile,
	})
	if !result.Success {
		c.logger.Warn("pipeline.analysis.fallback", "detection_id", id)
		return analysis.Heuristic(facts)
	}
	return result
}
