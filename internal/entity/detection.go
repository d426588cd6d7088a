package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/nutriscan/nutrition-scanner/constants"
)

// Detection represents one ingestion attempt and its outcome, for data
// transfer between layers. Nullable columns stay pointers so the zero
// value is distinguishable from "absent".
type Detection struct {
	ID     uuid.UUID  `json:"id"`
	UserID *uuid.UUID `json:"user_id,omitempty"` // nil for anonymous scans

	DetectionType constants.DetectionType   `json:"detection_type"`
	Status        constants.DetectionStatus `json:"status"`

	// Input provenance
	ImagePath *string `json:"image_path,omitempty"`
	RawText   *string `json:"raw_text,omitempty"`
	Barcode   *string `json:"barcode,omitempty"`

	// Product descriptors (filled by enrichment, not by the pipeline)
	ProductName *string `json:"product_name,omitempty"`
	Brand       *string `json:"brand,omitempty"`
	Category    *string `json:"category,omitempty"`

	// Nutrient columns, normalized units (kJ/kcal, g, mg per 100g).
	EnergyKJ       *float64        `json:"energy_kj,omitempty"`
	EnergyKcal     *float64        `json:"energy_kcal,omitempty"`
	Protein        *float64        `json:"protein,omitempty"`
	Fat            *float64        `json:"fat,omitempty"`
	SaturatedFat   *float64        `json:"saturated_fat,omitempty"`
	Carbohydrate   *float64        `json:"carbohydrate,omitempty"`
	Sugar          *float64        `json:"sugar,omitempty"`
	Fiber          *float64        `json:"fiber,omitempty"`
	Sodium         *float64        `json:"sodium,omitempty"`
	OtherNutrients json.RawMessage `json:"other_nutrients,omitempty"` // vitamins/minerals bag

	// Outcome
	HealthScore   *float64            `json:"health_score,omitempty"` // set iff status == completed
	RiskLevel     constants.RiskLevel `json:"risk_level"`
	HealthAdvice  *string             `json:"health_advice,omitempty"`
	Analysis      json.RawMessage     `json:"analysis,omitempty"` // source-specific payload
	RiskFactors   json.RawMessage     `json:"risk_factors,omitempty"`
	OCRConfidence *float32            `json:"ocr_confidence,omitempty"` // 0..1
	ProcessingMS  *int64              `json:"processing_ms,omitempty"`
	ErrorMessage  *string             `json:"error_message,omitempty"` // set iff status == failed

	// User feedback
	UserRating   *int    `json:"user_rating,omitempty"` // 1..5
	UserFeedback *string `json:"user_feedback,omitempty"`
	IsAccurate   *bool   `json:"is_accurate,omitempty"`
	IsFavorite   bool    `json:"is_favorite"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// OwnedBy reports whether the detection belongs to the given user.
// Anonymous detections belong to nobody.
func (d *Detection) OwnedBy(userID uuid.UUID) bool {
	return d.UserID != nil && *d.UserID == userID
}
