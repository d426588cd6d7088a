package ocr

import (
	"context"

	"github.com/nutriscan/nutrition-scanner/internal/nutrition"
)

// Result is the tagged outcome of one recognition attempt. Success is
// the only discriminator: when false, Err carries a short caller-safe
// reason and every other field is zero.
type Result struct {
	Success    bool
	Text       string            // all recognized text, token order preserved
	Confidence float32           // mean word confidence, 0..1
	Tokens     []nutrition.Token // per-token text + confidence
	Err        string
}

// Failure builds a failed result.
func Failure(reason string) Result {
	return Result{Err: reason}
}

// Recognizer converts a nutrition-label image into recognized text.
// Implementations must not panic and must respect ctx deadlines; a
// provider problem is reported through the result, never an error.
type Recognizer interface {
	Recognize(ctx context.Context, image []byte) Result
}
