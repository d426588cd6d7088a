package pipeline

import (
	"context"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/nutriscan/nutrition-scanner/constants"
	"github.com/nutriscan/nutrition-scanner/internal/ai"
	"github.com/nutriscan/nutrition-scanner/internal/analysis"
	"github.com/nutriscan/nutrition-scanner/internal/entity"
	"github.com/nutriscan/nutrition-scanner/internal/nutrition"
	"github.com/nutriscan/nutrition-scanner/internal/ocr"
	"github.com/nutriscan/nutrition-scanner/internal/products"
	"github.com/nutriscan/nutrition-scanner/internal/repository"
)

// fakeStore keeps detections in memory and records lifecycle
// transitions. Methods not used by the controller stay on the
// embedded interface and panic if reached.
type fakeStore struct {
	repository.DetectionRepository
	mu      sync.Mutex
	records map[uuid.UUID]*entity.Detection
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: make(map[uuid.UUID]*entity.Detection)}
}

func (f *fakeStore) Create(_ context.Context, req *repository.CreateDetectionRequest) (*entity.Detection, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d := &entity.Detection{
		ID:            uuid.New(),
		UserID:        req.UserID,
		DetectionType: req.DetectionType,
		Status:        constants.StatusPending,
		RiskLevel:     constants.RiskUnknown,
		ImagePath:     req.ImagePath,
		RawText:       req.RawText,
		Barcode:       req.Barcode,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	f.records[d.ID] = d
	return d, nil
}

func (f *fakeStore) MarkProcessing(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records[id].Status = constants.StatusProcessing
	return nil
}

func (f *fakeStore) Complete(_ context.Context, req *repository.CompleteDetectionRequest) (*entity.Detection, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d := f.records[req.ID]
	d.Status = constants.StatusCompleted
	d.EnergyKJ = req.Facts.EnergyKJ
	d.Protein = req.Facts.Protein
	d.Fat = req.Facts.Fat
	d.Sodium = req.Facts.Sodium
	d.ProductName = req.ProductName
	d.Brand = req.Brand
	d.Category = req.Category
	score := req.Score
	d.HealthScore = &score
	d.RiskLevel = req.RiskLevel
	d.HealthAdvice = req.Advice
	d.Analysis = req.Analysis
	d.RiskFactors = req.RiskFactors
	if req.RawText != nil {
		d.RawText = req.RawText
	}
	d.OCRConfidence = req.OCRConfidence
	ms := req.ProcessingMS
	d.ProcessingMS = &ms
	now := time.Now()
	d.CompletedAt = &now
	return d, nil
}

func (f *fakeStore) Fail(_ context.Context, req *repository.FailDetectionRequest) (*entity.Detection, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d := f.records[req.ID]
	d.Status = constants.StatusFailed
	msg := req.ErrorMessage
	d.ErrorMessage = &msg
	if req.RawText != nil {
		d.RawText = req.RawText
	}
	d.OCRConfidence = req.OCRConfidence
	ms := req.ProcessingMS
	d.ProcessingMS = &ms
	now := time.Now()
	d.CompletedAt = &now
	return d, nil
}

func (f *fakeStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.records)
}

// ctxAwareStore rejects terminal writes once the write's own context
// is dead, the way a real database driver would.
type ctxAwareStore struct {
	*fakeStore
}

func (s *ctxAwareStore) Complete(ctx context.Context, req *repository.CompleteDetectionRequest) (*entity.Detection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.fakeStore.Complete(ctx, req)
}

func (s *ctxAwareStore) Fail(ctx context.Context, req *repository.FailDetectionRequest) (*entity.Detection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.fakeStore.Fail(ctx, req)
}

type fakeRecognizer struct {
	result ocr.Result
}

func (f *fakeRecognizer) Recognize(context.Context, []byte) ocr.Result {
	return f.result
}

// cancellingRecognizer abandons the request mid-recognition, the shape
// of a client disconnect during a slow OCR call.
type cancellingRecognizer struct {
	cancel context.CancelFunc
}

func (r *cancellingRecognizer) Recognize(context.Context, []byte) ocr.Result {
	r.cancel()
	return ocr.Failure("request aborted")
}

type fakeAnalyzer struct {
	result    analysis.Result
	panics    bool
	onAnalyze func()
}

func (f *fakeAnalyzer) Analyze(context.Context, ai.Request) analysis.Result {
	if f.panics {
		panic("provider blew up")
	}
	if f.onAnalyze != nil {
		f.onAnalyze()
	}
	return f.result
}

const labelText = "能量 2600kJ 蛋白质 12g 脂肪 25g 钠 800mg"

func newTestController(t *testing.T, store repository.DetectionRepository, rec ocr.Recognizer, an Analyzer, catalog products.Catalog) *Controller {
	t.Helper()
	images := NewImageStore(t.TempDir(), 1<<20)
	return NewController(store, rec, an, catalog, images, nil)
}

func aiSuccess() analysis.Result {
	return analysis.Result{
		Success:   true,
		Score:     55,
		RiskLevel: constants.RiskHigh,
		Advice:    "注意脂肪和钠的摄入",
	}
}

func TestIngestManualInputWithAI(t *testing.T) {
	store := newFakeStore()
	c := newTestController(t, store, &fakeRecognizer{}, &fakeAnalyzer{result: aiSuccess()}, nil)

	det, err := c.Ingest(context.Background(), Input{
		Type:    constants.TypeManualInput,
		RawText: labelText,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if det.Status != constants.StatusCompleted {
		t.Fatalf("expected completed, got %s", det.Status)
	}
	if det.HealthScore == nil || *det.HealthScore != 55 {
		t.Errorf("expected AI score 55, got %v", det.HealthScore)
	}
	if det.RiskLevel != constants.RiskHigh {
		t.Errorf("expected high risk, got %s", det.RiskLevel)
	}
	if det.HealthAdvice == nil || *det.HealthAdvice == "" {
		t.Error("expected advice")
	}
	if det.ErrorMessage != nil {
		t.Errorf("completed detection must not carry an error message, got %q", *det.ErrorMessage)
	}
	if det.ProcessingMS == nil {
		t.Error("expected processing duration")
	}
	if det.Sodium == nil || *det.Sodium != 800 {
		t.Errorf("expected parsed sodium 800, got %v", det.Sodium)
	}
}

func TestIngestFallsBackToHeuristic(t *testing.T) {
	store := newFakeStore()
	c := newTestController(t, store, &fakeRecognizer{}, &fakeAnalyzer{result: analysis.Result{}}, nil)

	det, err := c.Ingest(context.Background(), Input{
		Type:    constants.TypeManualInput,
		RawText: labelText,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if det.Status != constants.StatusCompleted {
		t.Fatalf("heuristic fallback must still complete, got %s", det.Status)
	}

	// The stored score must match the deterministic scorer exactly.
	want := nutrition.Score(nutrition.Facts{
		EnergyKJ: det.EnergyKJ,
		Protein:  det.Protein,
		Fat:      det.Fat,
		Sodium:   det.Sodium,
	})
	if det.HealthScore == nil || *det.HealthScore != want.Score {
		t.Errorf("expected heuristic score %v, got %v", want.Score, det.HealthScore)
	}
	if *det.HealthScore != 40.0 {
		t.Errorf("expected 40.0 for this label, got %v", *det.HealthScore)
	}
	if det.RiskLevel != constants.RiskHigh {
		t.Errorf("expected high risk, got %s", det.RiskLevel)
	}
	if det.HealthAdvice == nil || *det.HealthAdvice == "" {
		t.Error("heuristic fallback must still produce advice")
	}
}

func TestIngestOCRSuccess(t *testing.T) {
	store := newFakeStore()
	rec := &fakeRecognizer{result: ocr.Result{
		Success:    true,
		Text:       labelText,
		Confidence: 0.9,
		Tokens: []nutrition.Token{
			{Text: "能量", Confidence: 0.9},
			{Text: "2600kJ", Confidence: 0.9},
			{Text: "钠 800mg", Confidence: 0.9},
		},
	}}
	c := newTestController(t, store, rec, &fakeAnalyzer{result: aiSuccess()}, nil)

	det, err := c.Ingest(context.Background(), Input{
		Type:     constants.TypeOCRScan,
		Image:    []byte{0xFF, 0xD8},
		Filename: "label.jpg",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if det.Status != constants.StatusCompleted {
		t.Fatalf("expected completed, got %s", det.Status)
	}
	if det.ImagePath == nil {
		t.Fatal("expected stored image path")
	}
	if _, err := os.Stat(*det.ImagePath); err != nil {
		t.Errorf("image file not written: %v", err)
	}
	if det.RawText == nil || *det.RawText != labelText {
		t.Errorf("expected OCR text persisted, got %v", det.RawText)
	}
	if det.OCRConfidence == nil || *det.OCRConfidence != 0.9 {
		t.Errorf("expected confidence 0.9, got %v", det.OCRConfidence)
	}
	if det.EnergyKJ == nil || *det.EnergyKJ != 2600 {
		t.Errorf("expected energy parsed from tokens, got %v", det.EnergyKJ)
	}
}

func TestIngestOCRFailure(t *testing.T) {
	store := newFakeStore()
	rec := &fakeRecognizer{result: ocr.Failure("no text detected")}
	c := newTestController(t, store, rec, &fakeAnalyzer{result: aiSuccess()}, nil)

	det, err := c.Ingest(context.Background(), Input{
		Type:     constants.TypeOCRScan,
		Image:    []byte{1},
		Filename: "label.jpg",
	})
	if err != nil {
		t.Fatalf("stage failure must not be an error: %v", err)
	}
	if det.Status != constants.StatusFailed {
		t.Fatalf("expected failed, got %s", det.Status)
	}
	if det.ErrorMessage == nil || !strings.HasPrefix(*det.ErrorMessage, "OCR recognition failed") {
		t.Errorf("expected stage-naming error message, got %v", det.ErrorMessage)
	}
	if det.HealthScore != nil {
		t.Errorf("failed detection must not carry a score, got %v", *det.HealthScore)
	}
}

func TestIngestOCRNoNutrients(t *testing.T) {
	store := newFakeStore()
	rec := &fakeRecognizer{result: ocr.Result{
		Success:    true,
		Text:       "配料：水、白砂糖",
		Confidence: 0.8,
	}}
	c := newTestController(t, store, rec, &fakeAnalyzer{result: aiSuccess()}, nil)

	det, err := c.Ingest(context.Background(), Input{
		Type:     constants.TypeOCRScan,
		Image:    []byte{1},
		Filename: "x.png",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if det.Status != constants.StatusFailed {
		t.Fatalf("expected failed, got %s", det.Status)
	}
	if det.ErrorMessage == nil || *det.ErrorMessage != "no nutrition label detected" {
		t.Errorf("unexpected error message: %v", det.ErrorMessage)
	}
	if det.RawText == nil {
		t.Error("recognized text should be kept for diagnosis")
	}
}

func TestIngestManualInputNoNutrientsCompletes(t *testing.T) {
	store := newFakeStore()
	c := newTestController(t, store, &fakeRecognizer{}, &fakeAnalyzer{result: aiSuccess()}, nil)

	det, err := c.Ingest(context.Background(), Input{
		Type:    constants.TypeManualInput,
		RawText: "配料：水、白砂糖",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if det.Status != constants.StatusCompleted {
		t.Fatalf("expected completed, got %s", det.Status)
	}
	if det.HealthScore == nil || *det.HealthScore != 70.0 {
		t.Errorf("expected base score for empty facts, got %v", det.HealthScore)
	}
	if det.RiskLevel != constants.RiskUnknown {
		t.Errorf("expected unknown risk, got %s", det.RiskLevel)
	}
}

func TestIngestBarcode(t *testing.T) {
	protein := 12.0
	catalog := products.NewStaticCatalog(products.Product{
		Barcode:  "6901234567890",
		Name:     "高蛋白牛奶",
		Brand:    "测试乳业",
		Category: "乳制品",
		Facts:    nutrition.Facts{Protein: &protein},
	})
	store := newFakeStore()
	c := newTestController(t, store, &fakeRecognizer{}, &fakeAnalyzer{result: aiSuccess()}, catalog)

	det, err := c.Ingest(context.Background(), Input{
		Type:    constants.TypeBarcodeScan,
		Barcode: "6901234567890",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if det.Status != constants.StatusCompleted {
		t.Fatalf("expected completed, got %s", det.Status)
	}
	if det.ProductName == nil || *det.ProductName != "高蛋白牛奶" {
		t.Errorf("expected product name, got %v", det.ProductName)
	}
	if det.Protein == nil || *det.Protein != 12.0 {
		t.Errorf("expected catalog protein, got %v", det.Protein)
	}
}

func TestIngestBarcodeUnknown(t *testing.T) {
	store := newFakeStore()
	c := newTestController(t, store, &fakeRecognizer{}, &fakeAnalyzer{result: aiSuccess()}, products.NewStaticCatalog())

	det, err := c.Ingest(context.Background(), Input{
		Type:    constants.TypeBarcodeScan,
		Barcode: "0000000000000",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if det.Status != constants.StatusFailed {
		t.Fatalf("expected failed, got %s", det.Status)
	}
	if det.ErrorMessage == nil || *det.ErrorMessage != "barcode not found in product catalog" {
		t.Errorf("unexpected error message: %v", det.ErrorMessage)
	}
}

func TestIngestValidation(t *testing.T) {
	store := newFakeStore()
	c := newTestController(t, store, &fakeRecognizer{}, &fakeAnalyzer{result: aiSuccess()}, nil)

	cases := []struct {
		name string
		in   Input
	}{
		{"empty image", Input{Type: constants.TypeOCRScan}},
		{"empty text", Input{Type: constants.TypeManualInput}},
		{"empty barcode", Input{Type: constants.TypeBarcodeScan}},
		{"unknown type", Input{Type: constants.DetectionType("telepathy")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := c.Ingest(context.Background(), tc.in); err == nil {
				t.Error("expected validation error")
			}
		})
	}
	if store.count() != 0 {
		t.Errorf("invalid input must not create records, got %d", store.count())
	}
}

func TestIngestRecoversFromPanic(t *testing.T) {
	store := newFakeStore()
	c := newTestController(t, store, &fakeRecognizer{}, &fakeAnalyzer{panics: true}, nil)

	det, err := c.Ingest(context.Background(), Input{
		Type:    constants.TypeManualInput,
		RawText: labelText,
	})
	if err != nil {
		t.Fatalf("panic must not surface as an error: %v", err)
	}
	if det.Status != constants.StatusFailed {
		t.Fatalf("expected failed, got %s", det.Status)
	}
	if det.ErrorMessage == nil || *det.ErrorMessage != "internal error during processing" {
		t.Errorf("unexpected error message: %v", det.ErrorMessage)
	}
}

func TestIngestAbandonedCallerStillFails(t *testing.T) {
	store := &ctxAwareStore{fakeStore: newFakeStore()}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rec := &cancellingRecognizer{cancel: cancel}
	c := newTestController(t, store, rec, &fakeAnalyzer{result: aiSuccess()}, nil)

	det, err := c.Ingest(ctx, Input{
		Type:     constants.TypeOCRScan,
		Image:    []byte{1},
		Filename: "label.jpg",
	})
	if err != nil {
		t.Fatalf("terminal write must survive caller cancellation: %v", err)
	}
	if det.Status != constants.StatusFailed {
		t.Fatalf("expected failed, got %s", det.Status)
	}
	for _, d := range store.records {
		if d.Status == constants.StatusProcessing {
			t.Error("record stranded in processing after caller went away")
		}
	}
}

func TestIngestAbandonedCallerStillCompletes(t *testing.T) {
	store := &ctxAwareStore{fakeStore: newFakeStore()}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	// Cancellation surfaces as a provider failure; the heuristic result
	// must still be persisted.
	an := &fakeAnalyzer{result: analysis.Result{}, onAnalyze: cancel}
	c := newTestController(t, store, &fakeRecognizer{}, an, nil)

	det, err := c.Ingest(ctx, Input{
		Type:    constants.TypeManualInput,
		RawText: labelText,
	})
	if err != nil {
		t.Fatalf("terminal write must survive caller cancellation: %v", err)
	}
	if det.Status != constants.StatusCompleted {
		t.Fatalf("expected completed via fallback, got %s", det.Status)
	}
	if det.HealthScore == nil || *det.HealthScore != 40.0 {
		t.Errorf("expected heuristic score persisted, got %v", det.HealthScore)
	}
}
