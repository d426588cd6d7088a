// Code generated by ent, DO NOT EDIT.

package detection

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/nutriscan/nutrition-scanner/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Detection {
	return predicate.Detection(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Detection {
	return predicate.Detection(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Detection {
	return predicate.Detection(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Detection {
	return predicate.Detection(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Detection {
	return predicate.Detection(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Detection {
	return predicate.Detection(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Detection {
	return predicate.Detection(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldUserID, v))
}

// DetectionType applies equality check predicate on the "detection_type" field. It's identical to DetectionTypeEQ.
func DetectionType(v string) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldDetectionType, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldStatus, v))
}

// ImagePath applies equality check predicate on the "image_path" field. It's identical to ImagePathEQ.
func ImagePath(v string) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldImagePath, v))
}

// RawText applies equality check predicate on the "raw_text" field. It's identical to RawTextEQ.
func RawText(v string) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldRawText, v))
}

// Barcode applies equality check predicate on the "barcode" field. It's identical to BarcodeEQ.
func Barcode(v string) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldBarcode, v))
}

// ProductName applies equality check predicate on the "product_name" field. It's identical to ProductNameEQ.
func ProductName(v string) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldProductName, v))
}

// Brand applies equality check predicate on the "brand" field. It's identical to BrandEQ.
func Brand(v string) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldBrand, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldCategory, v))
}

// EnergyKj applies equality check predicate on the "energy_kj" field. It's identical to EnergyKjEQ.
func EnergyKj(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldEnergyKj, v))
}

// EnergyKcal applies equality check predicate on the "energy_kcal" field. It's identical to EnergyKcalEQ.
func EnergyKcal(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldEnergyKcal, v))
}

// Protein applies equality check predicate on the "protein" field. It's identical to ProteinEQ.
func Protein(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldProtein, v))
}

// Fat applies equality check predicate on the "fat" field. It's identical to FatEQ.
func Fat(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldFat, v))
}

// SaturatedFat applies equality check predicate on the "saturated_fat" field. It's identical to SaturatedFatEQ.
func SaturatedFat(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldSaturatedFat, v))
}

// Carbohydrate applies equality check predicate on the "carbohydrate" field. It's identical to CarbohydrateEQ.
func Carbohydrate(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldCarbohydrate, v))
}

// Sugar applies equality check predicate on the "sugar" field. It's identical to SugarEQ.
func Sugar(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldSugar, v))
}

// Fiber applies equality check predicate on the "fiber" field. It's identical to FiberEQ.
func Fiber(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldFiber, v))
}

// Sodium applies equality check predicate on the "sodium" field. It's identical to SodiumEQ.
func Sodium(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldSodium, v))
}

// HealthScore applies equality check predicate on the "health_score" field. It's identical to HealthScoreEQ.
func HealthScore(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldHealthScore, v))
}

// RiskLevel applies equality check predicate on the "risk_level" field. It's identical to RiskLevelEQ.
func RiskLevel(v string) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldRiskLevel, v))
}

// HealthAdvice applies equality check predicate on the "health_advice" field. It's identical to HealthAdviceEQ.
func HealthAdvice(v string) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldHealthAdvice, v))
}

// OcrConfidence applies equality check predicate on the "ocr_confidence" field. It's identical to OcrConfidenceEQ.
func OcrConfidence(v float32) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldOcrConfidence, v))
}

// ProcessingMs applies equality check predicate on the "processing_ms" field. It's identical to ProcessingMsEQ.
func ProcessingMs(v int64) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldProcessingMs, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldErrorMessage, v))
}

// UserRating applies equality check predicate on the "user_rating" field. It's identical to UserRatingEQ.
func UserRating(v int) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldUserRating, v))
}

// UserFeedback applies equality check predicate on the "user_feedback" field. It's identical to UserFeedbackEQ.
func UserFeedback(v string) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldUserFeedback, v))
}

// IsAccurate applies equality check predicate on the "is_accurate" field. It's identical to IsAccurateEQ.
func IsAccurate(v bool) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldIsAccurate, v))
}

// IsFavorite applies equality check predicate on the "is_favorite" field. It's identical to IsFavoriteEQ.
func IsFavorite(v bool) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldIsFavorite, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldUpdatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldCompletedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.Detection {
	return predicate.Detection(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.Detection {
	return predicate.Detection(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.Detection {
	return predicate.Detection(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.Detection {
	return predicate.Detection(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.Detection {
	return predicate.Detection(sql.FieldNotNull(FieldUserID))
}

// DetectionTypeEQ applies the EQ predicate on the "detection_type" field.
func DetectionTypeEQ(v string) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldDetectionType, v))
}

// DetectionTypeNEQ applies the NEQ predicate on the "detection_type" field.
func DetectionTypeNEQ(v string) predicate.Detection {
	return predicate.Detection(sql.FieldNEQ(FieldDetectionType, v))
}

// DetectionTypeIn applies the In predicate on the "detection_type" field.
func DetectionTypeIn(vs ...string) predicate.Detection {
	return predicate.Detection(sql.FieldIn(FieldDetectionType, vs...))
}

// DetectionTypeNotIn applies the NotIn predicate on the "detection_type" field.
func DetectionTypeNotIn(vs ...string) predicate.Detection {
	return predicate.Detection(sql.FieldNotIn(FieldDetectionType, vs...))
}

// DetectionTypeGT applies the GT predicate on the "detection_type" field.
func DetectionTypeGT(v string) predicate.Detection {
	return predicate.Detection(sql.FieldGT(FieldDetectionType, v))
}

// DetectionTypeGTE applies the GTE predicate on the "detection_type" field.
func DetectionTypeGTE(v string) predicate.Detection {
	return predicate.Detection(sql.FieldGTE(FieldDetectionType, v))
}

// DetectionTypeLT applies the LT predicate on the "detection_type" field.
func DetectionTypeLT(v string) predicate.Detection {
	return predicate.Detection(sql.FieldLT(FieldDetectionType, v))
}

// DetectionTypeLTE applies the LTE predicate on the "detection_type" field.
func DetectionTypeLTE(v string) predicate.Detection {
	return predicate.Detection(sql.FieldLTE(FieldDetectionType, v))
}

// DetectionTypeContains applies the Contains predicate on the "detection_type" field.
func DetectionTypeContains(v string) predicate.Detection {
	return predicate.Detection(sql.FieldContains(FieldDetectionType, v))
}

// DetectionTypeHasPrefix applies the HasPrefix predicate on the "detection_type" field.
func DetectionTypeHasPrefix(v string) predicate.Detection {
	return predicate.Detection(sql.FieldHasPrefix(FieldDetectionType, v))
}

// DetectionTypeHasSuffix applies the HasSuffix predicate on the "detection_type" field.
func DetectionTypeHasSuffix(v string) predicate.Detection {
	return predicate.Detection(sql.FieldHasSuffix(FieldDetectionType, v))
}

// DetectionTypeEqualFold applies the EqualFold predicate on the "detection_type" field.
func DetectionTypeEqualFold(v string) predicate.Detection {
	return predicate.Detection(sql.FieldEqualFold(FieldDetectionType, v))
}

// DetectionTypeContainsFold applies the ContainsFold predicate on the "detection_type" field.
func DetectionTypeContainsFold(v string) predicate.Detection {
	return predicate.Detection(sql.FieldContainsFold(FieldDetectionType, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Detection {
	return predicate.Detection(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Detection {
	return predicate.Detection(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Detection {
	return predicate.Detection(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Detection {
	return predicate.Detection(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Detection {
	return predicate.Detection(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Detection {
	return predicate.Detection(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Detection {
	return predicate.Detection(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Detection {
	return predicate.Detection(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Detection {
	return predicate.Detection(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Detection {
	return predicate.Detection(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Detection {
	return predicate.Detection(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Detection {
	return predicate.Detection(sql.FieldContainsFold(FieldStatus, v))
}

// ImagePathEQ applies the EQ predicate on the "image_path" field.
func ImagePathEQ(v string) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldImagePath, v))
}

// ImagePathNEQ applies the NEQ predicate on the "image_path" field.
func ImagePathNEQ(v string) predicate.Detection {
	return predicate.Detection(sql.FieldNEQ(FieldImagePath, v))
}

// ImagePathIn applies the In predicate on the "image_path" field.
func ImagePathIn(vs ...string) predicate.Detection {
	return predicate.Detection(sql.FieldIn(FieldImagePath, vs...))
}

// ImagePathNotIn applies the NotIn predicate on the "image_path" field.
func ImagePathNotIn(vs ...string) predicate.Detection {
	return predicate.Detection(sql.FieldNotIn(FieldImagePath, vs...))
}

// ImagePathGT applies the GT predicate on the "image_path" field.
func ImagePathGT(v string) predicate.Detection {
	return predicate.Detection(sql.FieldGT(FieldImagePath, v))
}

// ImagePathGTE applies the GTE predicate on the "image_path" field.
func ImagePathGTE(v string) predicate.Detection {
	return predicate.Detection(sql.FieldGTE(FieldImagePath, v))
}

// ImagePathLT applies the LT predicate on the "image_path" field.
func ImagePathLT(v string) predicate.Detection {
	return predicate.Detection(sql.FieldLT(FieldImagePath, v))
}

// ImagePathLTE applies the LTE predicate on the "image_path" field.
func ImagePathLTE(v string) predicate.Detection {
	return predicate.Detection(sql.FieldLTE(FieldImagePath, v))
}

// ImagePathContains applies the Contains predicate on the "image_path" field.
func ImagePathContains(v string) predicate.Detection {
	return predicate.Detection(sql.FieldContains(FieldImagePath, v))
}

// ImagePathHasPrefix applies the HasPrefix predicate on the "image_path" field.
func ImagePathHasPrefix(v string) predicate.Detection {
	return predicate.Detection(sql.FieldHasPrefix(FieldImagePath, v))
}

// ImagePathHasSuffix applies the HasSuffix predicate on the "image_path" field.
func ImagePathHasSuffix(v string) predicate.Detection {
	return predicate.Detection(sql.FieldHasSuffix(FieldImagePath, v))
}

// ImagePathIsNil applies the IsNil predicate on the "image_path" field.
func ImagePathIsNil() predicate.Detection {
	return predicate.Detection(sql.FieldIsNull(FieldImagePath))
}

// ImagePathNotNil applies the NotNil predicate on the "image_path" field.
func ImagePathNotNil() predicate.Detection {
	return predicate.Detection(sql.FieldNotNull(FieldImagePath))
}

// ImagePathEqualFold applies the EqualFold predicate on the "image_path" field.
func ImagePathEqualFold(v string) predicate.Detection {
	return predicate.Detection(sql.FieldEqualFold(FieldImagePath, v))
}

// ImagePathContainsFold applies the ContainsFold predicate on the "image_path" field.
func ImagePathContainsFold(v string) predicate.Detection {
	return predicate.Detection(sql.FieldContainsFold(FieldImagePath, v))
}

// RawTextEQ applies the EQ predicate on the "raw_text" field.
func RawTextEQ(v string) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldRawText, v))
}

// RawTextNEQ applies the NEQ predicate on the "raw_text" field.
func RawTextNEQ(v string) predicate.Detection {
	return predicate.Detection(sql.FieldNEQ(FieldRawText, v))
}

// RawTextIn applies the In predicate on the "raw_text" field.
func RawTextIn(vs ...string) predicate.Detection {
	return predicate.Detection(sql.FieldIn(FieldRawText, vs...))
}

// RawTextNotIn applies the NotIn predicate on the "raw_text" field.
func RawTextNotIn(vs ...string) predicate.Detection {
	return predicate.Detection(sql.FieldNotIn(FieldRawText, vs...))
}

// RawTextGT applies the GT predicate on the "raw_text" field.
func RawTextGT(v string) predicate.Detection {
	return predicate.Detection(sql.FieldGT(FieldRawText, v))
}

// RawTextGTE applies the GTE predicate on the "raw_text" field.
func RawTextGTE(v string) predicate.Detection {
	return predicate.Detection(sql.FieldGTE(FieldRawText, v))
}

// RawTextLT applies the LT predicate on the "raw_text" field.
func RawTextLT(v string) predicate.Detection {
	return predicate.Detection(sql.FieldLT(FieldRawText, v))
}

// RawTextLTE applies the LTE predicate on the "raw_text" field.
func RawTextLTE(v string) predicate.Detection {
	return predicate.Detection(sql.FieldLTE(FieldRawText, v))
}

// RawTextContains applies the Contains predicate on the "raw_text" field.
func RawTextContains(v string) predicate.Detection {
	return predicate.Detection(sql.FieldContains(FieldRawText, v))
}

// RawTextHasPrefix applies the HasPrefix predicate on the "raw_text" field.
func RawTextHasPrefix(v string) predicate.Detection {
	return predicate.Detection(sql.FieldHasPrefix(FieldRawText, v))
}

// RawTextHasSuffix applies the HasSuffix predicate on the "raw_text" field.
func RawTextHasSuffix(v string) predicate.Detection {
	return predicate.Detection(sql.FieldHasSuffix(FieldRawText, v))
}

// RawTextIsNil applies the IsNil predicate on the "raw_text" field.
func RawTextIsNil() predicate.Detection {
	return predicate.Detection(sql.FieldIsNull(FieldRawText))
}

// RawTextNotNil applies the NotNil predicate on the "raw_text" field.
func RawTextNotNil() predicate.Detection {
	return predicate.Detection(sql.FieldNotNull(FieldRawText))
}

// RawTextEqualFold applies the EqualFold predicate on the "raw_text" field.
func RawTextEqualFold(v string) predicate.Detection {
	return predicate.Detection(sql.FieldEqualFold(FieldRawText, v))
}

// RawTextContainsFold applies the ContainsFold predicate on the "raw_text" field.
func RawTextContainsFold(v string) predicate.Detection {
	return predicate.Detection(sql.FieldContainsFold(FieldRawText, v))
}

// BarcodeEQ applies the EQ predicate on the "barcode" field.
func BarcodeEQ(v string) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldBarcode, v))
}

// BarcodeNEQ applies the NEQ predicate on the "barcode" field.
func BarcodeNEQ(v string) predicate.Detection {
	return predicate.Detection(sql.FieldNEQ(FieldBarcode, v))
}

// BarcodeIn applies the In predicate on the "barcode" field.
func BarcodeIn(vs ...string) predicate.Detection {
	return predicate.Detection(sql.FieldIn(FieldBarcode, vs...))
}

// BarcodeNotIn applies the NotIn predicate on the "barcode" field.
func BarcodeNotIn(vs ...string) predicate.Detection {
	return predicate.Detection(sql.FieldNotIn(FieldBarcode, vs...))
}

// BarcodeGT applies the GT predicate on the "barcode" field.
func BarcodeGT(v string) predicate.Detection {
	return predicate.Detection(sql.FieldGT(FieldBarcode, v))
}

// BarcodeGTE applies the GTE predicate on the "barcode" field.
func BarcodeGTE(v string) predicate.Detection {
	return predicate.Detection(sql.FieldGTE(FieldBarcode, v))
}

// BarcodeLT applies the LT predicate on the "barcode" field.
func BarcodeLT(v string) predicate.Detection {
	return predicate.Detection(sql.FieldLT(FieldBarcode, v))
}

// BarcodeLTE applies the LTE predicate on the "barcode" field.
func BarcodeLTE(v string) predicate.Detection {
	return predicate.Detection(sql.FieldLTE(FieldBarcode, v))
}

// BarcodeContains applies the Contains predicate on the "barcode" field.
func BarcodeContains(v string) predicate.Detection {
	return predicate.Detection(sql.FieldContains(FieldBarcode, v))
}

// BarcodeHasPrefix applies the HasPrefix predicate on the "barcode" field.
func BarcodeHasPrefix(v string) predicate.Detection {
	return predicate.Detection(sql.FieldHasPrefix(FieldBarcode, v))
}

// BarcodeHasSuffix applies the HasSuffix predicate on the "barcode" field.
func BarcodeHasSuffix(v string) predicate.Detection {
	return predicate.Detection(sql.FieldHasSuffix(FieldBarcode, v))
}

// BarcodeIsNil applies the IsNil predicate on the "barcode" field.
func BarcodeIsNil() predicate.Detection {
	return predicate.Detection(sql.FieldIsNull(FieldBarcode))
}

// BarcodeNotNil applies the NotNil predicate on the "barcode" field.
func BarcodeNotNil() predicate.Detection {
	return predicate.Detection(sql.FieldNotNull(FieldBarcode))
}

// BarcodeEqualFold applies the EqualFold predicate on the "barcode" field.
func BarcodeEqualFold(v string) predicate.Detection {
	return predicate.Detection(sql.FieldEqualFold(FieldBarcode, v))
}

// BarcodeContainsFold applies the ContainsFold predicate on the "barcode" field.
func BarcodeContainsFold(v string) predicate.Detection {
	return predicate.Detection(sql.FieldContainsFold(FieldBarcode, v))
}

// ProductNameEQ applies the EQ predicate on the "product_name" field.
func ProductNameEQ(v string) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldProductName, v))
}

// ProductNameNEQ applies the NEQ predicate on the "product_name" field.
func ProductNameNEQ(v string) predicate.Detection {
	return predicate.Detection(sql.FieldNEQ(FieldProductName, v))
}

// ProductNameIn applies the In predicate on the "product_name" field.
func ProductNameIn(vs ...string) predicate.Detection {
	return predicate.Detection(sql.FieldIn(FieldProductName, vs...))
}

// ProductNameNotIn applies the NotIn predicate on the "product_name" field.
func ProductNameNotIn(vs ...string) predicate.Detection {
	return predicate.Detection(sql.FieldNotIn(FieldProductName, vs...))
}

// ProductNameGT applies the GT predicate on the "product_name" field.
func ProductNameGT(v string) predicate.Detection {
	return predicate.Detection(sql.FieldGT(FieldProductName, v))
}

// ProductNameGTE applies the GTE predicate on the "product_name" field.
func ProductNameGTE(v string) predicate.Detection {
	return predicate.Detection(sql.FieldGTE(FieldProductName, v))
}

// ProductNameLT applies the LT predicate on the "product_name" field.
func ProductNameLT(v string) predicate.Detection {
	return predicate.Detection(sql.FieldLT(FieldProductName, v))
}

// ProductNameLTE applies the LTE predicate on the "product_name" field.
func ProductNameLTE(v string) predicate.Detection {
	return predicate.Detection(sql.FieldLTE(FieldProductName, v))
}

// ProductNameContains applies the Contains predicate on the "product_name" field.
func ProductNameContains(v string) predicate.Detection {
	return predicate.Detection(sql.FieldContains(FieldProductName, v))
}

// ProductNameHasPrefix applies the HasPrefix predicate on the "product_name" field.
func ProductNameHasPrefix(v string) predicate.Detection {
	return predicate.Detection(sql.FieldHasPrefix(FieldProductName, v))
}

// ProductNameHasSuffix applies the HasSuffix predicate on the "product_name" field.
func ProductNameHasSuffix(v string) predicate.Detection {
	return predicate.Detection(sql.FieldHasSuffix(FieldProductName, v))
}

// ProductNameIsNil applies the IsNil predicate on the "product_name" field.
func ProductNameIsNil() predicate.Detection {
	return predicate.Detection(sql.FieldIsNull(FieldProductName))
}

// ProductNameNotNil applies the NotNil predicate on the "product_name" field.
func ProductNameNotNil() predicate.Detection {
	return predicate.Detection(sql.FieldNotNull(FieldProductName))
}

// ProductNameEqualFold applies the EqualFold predicate on the "product_name" field.
func ProductNameEqualFold(v string) predicate.Detection {
	return predicate.Detection(sql.FieldEqualFold(FieldProductName, v))
}

// ProductNameContainsFold applies the ContainsFold predicate on the "product_name" field.
func ProductNameContainsFold(v string) predicate.Detection {
	return predicate.Detection(sql.FieldContainsFold(FieldProductName, v))
}

// BrandEQ applies the EQ predicate on the "brand" field.
func BrandEQ(v string) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldBrand, v))
}

// BrandNEQ applies the NEQ predicate on the "brand" field.
func BrandNEQ(v string) predicate.Detection {
	return predicate.Detection(sql.FieldNEQ(FieldBrand, v))
}

// BrandIn applies the In predicate on the "brand" field.
func BrandIn(vs ...string) predicate.Detection {
	return predicate.Detection(sql.FieldIn(FieldBrand, vs...))
}

// BrandNotIn applies the NotIn predicate on the "brand" field.
func BrandNotIn(vs ...string) predicate.Detection {
	return predicate.Detection(sql.FieldNotIn(FieldBrand, vs...))
}

// BrandGT applies the GT predicate on the "brand" field.
func BrandGT(v string) predicate.Detection {
	return predicate.Detection(sql.FieldGT(FieldBrand, v))
}

// BrandGTE applies the GTE predicate on the "brand" field.
func BrandGTE(v string) predicate.Detection {
	return predicate.Detection(sql.FieldGTE(FieldBrand, v))
}

// BrandLT applies the LT predicate on the "brand" field.
func BrandLT(v string) predicate.Detection {
	return predicate.Detection(sql.FieldLT(FieldBrand, v))
}

// BrandLTE applies the LTE predicate on the "brand" field.
func BrandLTE(v string) predicate.Detection {
	return predicate.Detection(sql.FieldLTE(FieldBrand, v))
}

// BrandContains applies the Contains predicate on the "brand" field.
func BrandContains(v string) predicate.Detection {
	return predicate.Detection(sql.FieldContains(FieldBrand, v))
}

// BrandHasPrefix applies the HasPrefix predicate on the "brand" field.
func BrandHasPrefix(v string) predicate.Detection {
	return predicate.Detection(sql.FieldHasPrefix(FieldBrand, v))
}

// BrandHasSuffix applies the HasSuffix predicate on the "brand" field.
func BrandHasSuffix(v string) predicate.Detection {
	return predicate.Detection(sql.FieldHasSuffix(FieldBrand, v))
}

// BrandIsNil applies the IsNil predicate on the "brand" field.
func BrandIsNil() predicate.Detection {
	return predicate.Detection(sql.FieldIsNull(FieldBrand))
}

// BrandNotNil applies the NotNil predicate on the "brand" field.
func BrandNotNil() predicate.Detection {
	return predicate.Detection(sql.FieldNotNull(FieldBrand))
}

// BrandEqualFold applies the EqualFold predicate on the "brand" field.
func BrandEqualFold(v string) predicate.Detection {
	return predicate.Detection(sql.FieldEqualFold(FieldBrand, v))
}

// BrandContainsFold applies the ContainsFold predicate on the "brand" field.
func BrandContainsFold(v string) predicate.Detection {
	return predicate.Detection(sql.FieldContainsFold(FieldBrand, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.Detection {
	return predicate.Detection(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.Detection {
	return predicate.Detection(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.Detection {
	return predicate.Detection(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.Detection {
	return predicate.Detection(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.Detection {
	return predicate.Detection(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.Detection {
	return predicate.Detection(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.Detection {
	return predicate.Detection(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.Detection {
	return predicate.Detection(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.Detection {
	return predicate.Detection(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.Detection {
	return predicate.Detection(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryIsNil applies the IsNil predicate on the "category" field.
func CategoryIsNil() predicate.Detection {
	return predicate.Detection(sql.FieldIsNull(FieldCategory))
}

// CategoryNotNil applies the NotNil predicate on the "category" field.
func CategoryNotNil() predicate.Detection {
	return predicate.Detection(sql.FieldNotNull(FieldCategory))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.Detection {
	return predicate.Detection(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.Detection {
	return predicate.Detection(sql.FieldContainsFold(FieldCategory, v))
}

// EnergyKjEQ applies the EQ predicate on the "energy_kj" field.
func EnergyKjEQ(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldEnergyKj, v))
}

// EnergyKjNEQ applies the NEQ predicate on the "energy_kj" field.
func EnergyKjNEQ(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldNEQ(FieldEnergyKj, v))
}

// EnergyKjIn applies the In predicate on the "energy_kj" field.
func EnergyKjIn(vs ...float64) predicate.Detection {
	return predicate.Detection(sql.FieldIn(FieldEnergyKj, vs...))
}

// EnergyKjNotIn applies the NotIn predicate on the "energy_kj" field.
func EnergyKjNotIn(vs ...float64) predicate.Detection {
	return predicate.Detection(sql.FieldNotIn(FieldEnergyKj, vs...))
}

// EnergyKjGT applies the GT predicate on the "energy_kj" field.
func EnergyKjGT(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldGT(FieldEnergyKj, v))
}

// EnergyKjGTE applies the GTE predicate on the "energy_kj" field.
func EnergyKjGTE(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldGTE(FieldEnergyKj, v))
}

// EnergyKjLT applies the LT predicate on the "energy_kj" field.
func EnergyKjLT(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldLT(FieldEnergyKj, v))
}

// EnergyKjLTE applies the LTE predicate on the "energy_kj" field.
func EnergyKjLTE(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldLTE(FieldEnergyKj, v))
}

// EnergyKjIsNil applies the IsNil predicate on the "energy_kj" field.
func EnergyKjIsNil() predicate.Detection {
	return predicate.Detection(sql.FieldIsNull(FieldEnergyKj))
}

// EnergyKjNotNil applies the NotNil predicate on the "energy_kj" field.
func EnergyKjNotNil() predicate.Detection {
	return predicate.Detection(sql.FieldNotNull(FieldEnergyKj))
}

// EnergyKcalEQ applies the EQ predicate on the "energy_kcal" field.
func EnergyKcalEQ(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldEnergyKcal, v))
}

// EnergyKcalNEQ applies the NEQ predicate on the "energy_kcal" field.
func EnergyKcalNEQ(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldNEQ(FieldEnergyKcal, v))
}

// EnergyKcalIn applies the In predicate on the "energy_kcal" field.
func EnergyKcalIn(vs ...float64) predicate.Detection {
	return predicate.Detection(sql.FieldIn(FieldEnergyKcal, vs...))
}

// EnergyKcalNotIn applies the NotIn predicate on the "energy_kcal" field.
func EnergyKcalNotIn(vs ...float64) predicate.Detection {
	return predicate.Detection(sql.FieldNotIn(FieldEnergyKcal, vs...))
}

// EnergyKcalGT applies the GT predicate on the "energy_kcal" field.
func EnergyKcalGT(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldGT(FieldEnergyKcal, v))
}

// EnergyKcalGTE applies the GTE predicate on the "energy_kcal" field.
func EnergyKcalGTE(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldGTE(FieldEnergyKcal, v))
}

// EnergyKcalLT applies the LT predicate on the "energy_kcal" field.
func EnergyKcalLT(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldLT(FieldEnergyKcal, v))
}

// EnergyKcalLTE applies the LTE predicate on the "energy_kcal" field.
func EnergyKcalLTE(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldLTE(FieldEnergyKcal, v))
}

// EnergyKcalIsNil applies the IsNil predicate on the "energy_kcal" field.
func EnergyKcalIsNil() predicate.Detection {
	return predicate.Detection(sql.FieldIsNull(FieldEnergyKcal))
}

// EnergyKcalNotNil applies the NotNil predicate on the "energy_kcal" field.
func EnergyKcalNotNil() predicate.Detection {
	return predicate.Detection(sql.FieldNotNull(FieldEnergyKcal))
}

// ProteinEQ applies the EQ predicate on the "protein" field.
func ProteinEQ(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldProtein, v))
}

// ProteinNEQ applies the NEQ predicate on the "protein" field.
func ProteinNEQ(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldNEQ(FieldProtein, v))
}

// ProteinIn applies the In predicate on the "protein" field.
func ProteinIn(vs ...float64) predicate.Detection {
	return predicate.Detection(sql.FieldIn(FieldProtein, vs...))
}

// ProteinNotIn applies the NotIn predicate on the "protein" field.
func ProteinNotIn(vs ...float64) predicate.Detection {
	return predicate.Detection(sql.FieldNotIn(FieldProtein, vs...))
}

// ProteinGT applies the GT predicate on the "protein" field.
func ProteinGT(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldGT(FieldProtein, v))
}

// ProteinGTE applies the GTE predicate on the "protein" field.
func ProteinGTE(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldGTE(FieldProtein, v))
}

// ProteinLT applies the LT predicate on the "protein" field.
func ProteinLT(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldLT(FieldProtein, v))
}

// ProteinLTE applies the LTE predicate on the "protein" field.
func ProteinLTE(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldLTE(FieldProtein, v))
}

// ProteinIsNil applies the IsNil predicate on the "protein" field.
func ProteinIsNil() predicate.Detection {
	return predicate.Detection(sql.FieldIsNull(FieldProtein))
}

// ProteinNotNil applies the NotNil predicate on the "protein" field.
func ProteinNotNil() predicate.Detection {
	return predicate.Detection(sql.FieldNotNull(FieldProtein))
}

// FatEQ applies the EQ predicate on the "fat" field.
func FatEQ(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldFat, v))
}

// FatNEQ applies the NEQ predicate on the "fat" field.
func FatNEQ(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldNEQ(FieldFat, v))
}

// FatIn applies the In predicate on the "fat" field.
func FatIn(vs ...float64) predicate.Detection {
	return predicate.Detection(sql.FieldIn(FieldFat, vs...))
}

// FatNotIn applies the NotIn predicate on the "fat" field.
func FatNotIn(vs ...float64) predicate.Detection {
	return predicate.Detection(sql.FieldNotIn(FieldFat, vs...))
}

// FatGT applies the GT predicate on the "fat" field.
func FatGT(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldGT(FieldFat, v))
}

// FatGTE applies the GTE predicate on the "fat" field.
func FatGTE(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldGTE(FieldFat, v))
}

// FatLT applies the LT predicate on the "fat" field.
func FatLT(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldLT(FieldFat, v))
}

// FatLTE applies the LTE predicate on the "fat" field.
func FatLTE(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldLTE(FieldFat, v))
}

// FatIsNil applies the IsNil predicate on the "fat" field.
func FatIsNil() predicate.Detection {
	return predicate.Detection(sql.FieldIsNull(FieldFat))
}

// FatNotNil applies the NotNil predicate on the "fat" field.
func FatNotNil() predicate.Detection {
	return predicate.Detection(sql.FieldNotNull(FieldFat))
}

// SaturatedFatEQ applies the EQ predicate on the "saturated_fat" field.
func SaturatedFatEQ(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldSaturatedFat, v))
}

// SaturatedFatNEQ applies the NEQ predicate on the "saturated_fat" field.
func SaturatedFatNEQ(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldNEQ(FieldSaturatedFat, v))
}

// SaturatedFatIn applies the In predicate on the "saturated_fat" field.
func SaturatedFatIn(vs ...float64) predicate.Detection {
	return predicate.Detection(sql.FieldIn(FieldSaturatedFat, vs...))
}

// SaturatedFatNotIn applies the NotIn predicate on the "saturated_fat" field.
func SaturatedFatNotIn(vs ...float64) predicate.Detection {
	return predicate.Detection(sql.FieldNotIn(FieldSaturatedFat, vs...))
}

// SaturatedFatGT applies the GT predicate on the "saturated_fat" field.
func SaturatedFatGT(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldGT(FieldSaturatedFat, v))
}

// SaturatedFatGTE applies the GTE predicate on the "saturated_fat" field.
func SaturatedFatGTE(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldGTE(FieldSaturatedFat, v))
}

// SaturatedFatLT applies the LT predicate on the "saturated_fat" field.
func SaturatedFatLT(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldLT(FieldSaturatedFat, v))
}

// SaturatedFatLTE applies the LTE predicate on the "saturated_fat" field.
func SaturatedFatLTE(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldLTE(FieldSaturatedFat, v))
}

// SaturatedFatIsNil applies the IsNil predicate on the "saturated_fat" field.
func SaturatedFatIsNil() predicate.Detection {
	return predicate.Detection(sql.FieldIsNull(FieldSaturatedFat))
}

// SaturatedFatNotNil applies the NotNil predicate on the "saturated_fat" field.
func SaturatedFatNotNil() predicate.Detection {
	return predicate.Detection(sql.FieldNotNull(FieldSaturatedFat))
}

// CarbohydrateEQ applies the EQ predicate on the "carbohydrate" field.
func CarbohydrateEQ(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldCarbohydrate, v))
}

// CarbohydrateNEQ applies the NEQ predicate on the "carbohydrate" field.
func CarbohydrateNEQ(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldNEQ(FieldCarbohydrate, v))
}

// CarbohydrateIn applies the In predicate on the "carbohydrate" field.
func CarbohydrateIn(vs ...float64) predicate.Detection {
	return predicate.Detection(sql.FieldIn(FieldCarbohydrate, vs...))
}

// CarbohydrateNotIn applies the NotIn predicate on the "carbohydrate" field.
func CarbohydrateNotIn(vs ...float64) predicate.Detection {
	return predicate.Detection(sql.FieldNotIn(FieldCarbohydrate, vs...))
}

// CarbohydrateGT applies the GT predicate on the "carbohydrate" field.
func CarbohydrateGT(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldGT(FieldCarbohydrate, v))
}

// CarbohydrateGTE applies the GTE predicate on the "carbohydrate" field.
func CarbohydrateGTE(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldGTE(FieldCarbohydrate, v))
}

// CarbohydrateLT applies the LT predicate on the "carbohydrate" field.
func CarbohydrateLT(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldLT(FieldCarbohydrate, v))
}

// CarbohydrateLTE applies the LTE predicate on the "carbohydrate" field.
func CarbohydrateLTE(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldLTE(FieldCarbohydrate, v))
}

// CarbohydrateIsNil applies the IsNil predicate on the "carbohydrate" field.
func CarbohydrateIsNil() predicate.Detection {
	return predicate.Detection(sql.FieldIsNull(FieldCarbohydrate))
}

// CarbohydrateNotNil applies the NotNil predicate on the "carbohydrate" field.
func CarbohydrateNotNil() predicate.Detection {
	return predicate.Detection(sql.FieldNotNull(FieldCarbohydrate))
}

// SugarEQ applies the EQ predicate on the "sugar" field.
func SugarEQ(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldSugar, v))
}

// SugarNEQ applies the NEQ predicate on the "sugar" field.
func SugarNEQ(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldNEQ(FieldSugar, v))
}

// SugarIn applies the In predicate on the "sugar" field.
func SugarIn(vs ...float64) predicate.Detection {
	return predicate.Detection(sql.FieldIn(FieldSugar, vs...))
}

// SugarNotIn applies the NotIn predicate on the "sugar" field.
func SugarNotIn(vs ...float64) predicate.Detection {
	return predicate.Detection(sql.FieldNotIn(FieldSugar, vs...))
}

// SugarGT applies the GT predicate on the "sugar" field.
func SugarGT(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldGT(FieldSugar, v))
}

// SugarGTE applies the GTE predicate on the "sugar" field.
func SugarGTE(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldGTE(FieldSugar, v))
}

// SugarLT applies the LT predicate on the "sugar" field.
func SugarLT(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldLT(FieldSugar, v))
}

// SugarLTE applies the LTE predicate on the "sugar" field.
func SugarLTE(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldLTE(FieldSugar, v))
}

// SugarIsNil applies the IsNil predicate on the "sugar" field.
func SugarIsNil() predicate.Detection {
	return predicate.Detection(sql.FieldIsNull(FieldSugar))
}

// SugarNotNil applies the NotNil predicate on the "sugar" field.
func SugarNotNil() predicate.Detection {
	return predicate.Detection(sql.FieldNotNull(FieldSugar))
}

// FiberEQ applies the EQ predicate on the "fiber" field.
func FiberEQ(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldFiber, v))
}

// FiberNEQ applies the NEQ predicate on the "fiber" field.
func FiberNEQ(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldNEQ(FieldFiber, v))
}

// FiberIn applies the In predicate on the "fiber" field.
func FiberIn(vs ...float64) predicate.Detection {
	return predicate.Detection(sql.FieldIn(FieldFiber, vs...))
}

// FiberNotIn applies the NotIn predicate on the "fiber" field.
func FiberNotIn(vs ...float64) predicate.Detection {
	return predicate.Detection(sql.FieldNotIn(FieldFiber, vs...))
}

// FiberGT applies the GT predicate on the "fiber" field.
func FiberGT(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldGT(FieldFiber, v))
}

// FiberGTE applies the GTE predicate on the "fiber" field.
func FiberGTE(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldGTE(FieldFiber, v))
}

// FiberLT applies the LT predicate on the "fiber" field.
func FiberLT(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldLT(FieldFiber, v))
}

// FiberLTE applies the LTE predicate on the "fiber" field.
func FiberLTE(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldLTE(FieldFiber, v))
}

// FiberIsNil applies the IsNil predicate on the "fiber" field.
func FiberIsNil() predicate.Detection {
	return predicate.Detection(sql.FieldIsNull(FieldFiber))
}

// FiberNotNil applies the NotNil predicate on the "fiber" field.
func FiberNotNil() predicate.Detection {
	return predicate.Detection(sql.FieldNotNull(FieldFiber))
}

// SodiumEQ applies the EQ predicate on the "sodium" field.
func SodiumEQ(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldSodium, v))
}

// SodiumNEQ applies the NEQ predicate on the "sodium" field.
func SodiumNEQ(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldNEQ(FieldSodium, v))
}

// SodiumIn applies the In predicate on the "sodium" field.
func SodiumIn(vs ...float64) predicate.Detection {
	return predicate.Detection(sql.FieldIn(FieldSodium, vs...))
}

// SodiumNotIn applies the NotIn predicate on the "sodium" field.
func SodiumNotIn(vs ...float64) predicate.Detection {
	return predicate.Detection(sql.FieldNotIn(FieldSodium, vs...))
}

// SodiumGT applies the GT predicate on the "sodium" field.
func SodiumGT(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldGT(FieldSodium, v))
}

// SodiumGTE applies the GTE predicate on the "sodium" field.
func SodiumGTE(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldGTE(FieldSodium, v))
}

// SodiumLT applies the LT predicate on the "sodium" field.
func SodiumLT(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldLT(FieldSodium, v))
}

// SodiumLTE applies the LTE predicate on the "sodium" field.
func SodiumLTE(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldLTE(FieldSodium, v))
}

// SodiumIsNil applies the IsNil predicate on the "sodium" field.
func SodiumIsNil() predicate.Detection {
	return predicate.Detection(sql.FieldIsNull(FieldSodium))
}

// SodiumNotNil applies the NotNil predicate on the "sodium" field.
func SodiumNotNil() predicate.Detection {
	return predicate.Detection(sql.FieldNotNull(FieldSodium))
}

// OtherNutrientsIsNil applies the IsNil predicate on the "other_nutrients" field.
func OtherNutrientsIsNil() predicate.Detection {
	return predicate.Detection(sql.FieldIsNull(FieldOtherNutrients))
}

// OtherNutrientsNotNil applies the NotNil predicate on the "other_nutrients" field.
func OtherNutrientsNotNil() predicate.Detection {
	return predicate.Detection(sql.FieldNotNull(FieldOtherNutrients))
}

// HealthScoreEQ applies the EQ predicate on the "health_score" field.
func HealthScoreEQ(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldHealthScore, v))
}

// HealthScoreNEQ applies the NEQ predicate on the "health_score" field.
func HealthScoreNEQ(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldNEQ(FieldHealthScore, v))
}

// HealthScoreIn applies the In predicate on the "health_score" field.
func HealthScoreIn(vs ...float64) predicate.Detection {
	return predicate.Detection(sql.FieldIn(FieldHealthScore, vs...))
}

// HealthScoreNotIn applies the NotIn predicate on the "health_score" field.
func HealthScoreNotIn(vs ...float64) predicate.Detection {
	return predicate.Detection(sql.FieldNotIn(FieldHealthScore, vs...))
}

// HealthScoreGT applies the GT predicate on the "health_score" field.
func HealthScoreGT(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldGT(FieldHealthScore, v))
}

// HealthScoreGTE applies the GTE predicate on the "health_score" field.
func HealthScoreGTE(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldGTE(FieldHealthScore, v))
}

// HealthScoreLT applies the LT predicate on the "health_score" field.
func HealthScoreLT(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldLT(FieldHealthScore, v))
}

// HealthScoreLTE applies the LTE predicate on the "health_score" field.
func HealthScoreLTE(v float64) predicate.Detection {
	return predicate.Detection(sql.FieldLTE(FieldHealthScore, v))
}

// HealthScoreIsNil applies the IsNil predicate on the "health_score" field.
func HealthScoreIsNil() predicate.Detection {
	return predicate.Detection(sql.FieldIsNull(FieldHealthScore))
}

// HealthScoreNotNil applies the NotNil predicate on the "health_score" field.
func HealthScoreNotNil() predicate.Detection {
	return predicate.Detection(sql.FieldNotNull(FieldHealthScore))
}

// RiskLevelEQ applies the EQ predicate on the "risk_level" field.
func RiskLevelEQ(v string) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldRiskLevel, v))
}

// RiskLevelNEQ applies the NEQ predicate on the "risk_level" field.
func RiskLevelNEQ(v string) predicate.Detection {
	return predicate.Detection(sql.FieldNEQ(FieldRiskLevel, v))
}

// RiskLevelIn applies the In predicate on the "risk_level" field.
func RiskLevelIn(vs ...string) predicate.Detection {
	return predicate.Detection(sql.FieldIn(FieldRiskLevel, vs...))
}

// RiskLevelNotIn applies the NotIn predicate on the "risk_level" field.
func RiskLevelNotIn(vs ...string) predicate.Detection {
	return predicate.Detection(sql.FieldNotIn(FieldRiskLevel, vs...))
}

// RiskLevelGT applies the GT predicate on the "risk_level" field.
func RiskLevelGT(v string) predicate.Detection {
	return predicate.Detection(sql.FieldGT(FieldRiskLevel, v))
}

// RiskLevelGTE applies the GTE predicate on the "risk_level" field.
func RiskLevelGTE(v string) predicate.Detection {
	return predicate.Detection(sql.FieldGTE(FieldRiskLevel, v))
}

// RiskLevelLT applies the LT predicate on the "risk_level" field.
func RiskLevelLT(v string) predicate.Detection {
	return predicate.Detection(sql.FieldLT(FieldRiskLevel, v))
}

// RiskLevelLTE applies the LTE predicate on the "risk_level" field.
func RiskLevelLTE(v string) predicate.Detection {
	return predicate.Detection(sql.FieldLTE(FieldRiskLevel, v))
}

// RiskLevelContains applies the Contains predicate on the "risk_level" field.
func RiskLevelContains(v string) predicate.Detection {
	return predicate.Detection(sql.FieldContains(FieldRiskLevel, v))
}

// RiskLevelHasPrefix applies the HasPrefix predicate on the "risk_level" field.
func RiskLevelHasPrefix(v string) predicate.Detection {
	return predicate.Detection(sql.FieldHasPrefix(FieldRiskLevel, v))
}

// RiskLevelHasSuffix applies the HasSuffix predicate on the "risk_level" field.
func RiskLevelHasSuffix(v string) predicate.Detection {
	return predicate.Detection(sql.FieldHasSuffix(FieldRiskLevel, v))
}

// RiskLevelEqualFold applies the EqualFold predicate on the "risk_level" field.
func RiskLevelEqualFold(v string) predicate.Detection {
	return predicate.Detection(sql.FieldEqualFold(FieldRiskLevel, v))
}

// RiskLevelContainsFold applies the ContainsFold predicate on the "risk_level" field.
func RiskLevelContainsFold(v string) predicate.Detection {
	return predicate.Detection(sql.FieldContainsFold(FieldRiskLevel, v))
}

// HealthAdviceEQ applies the EQ predicate on the "health_advice" field.
func HealthAdviceEQ(v string) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldHealthAdvice, v))
}

// HealthAdviceNEQ applies the NEQ predicate on the "health_advice" field.
func HealthAdviceNEQ(v string) predicate.Detection {
	return predicate.Detection(sql.FieldNEQ(FieldHealthAdvice, v))
}

// HealthAdviceIn applies the In predicate on the "health_advice" field.
func HealthAdviceIn(vs ...string) predicate.Detection {
	return predicate.Detection(sql.FieldIn(FieldHealthAdvice, vs...))
}

// HealthAdviceNotIn applies the NotIn predicate on the "health_advice" field.
func HealthAdviceNotIn(vs ...string) predicate.Detection {
	return predicate.Detection(sql.FieldNotIn(FieldHealthAdvice, vs...))
}

// HealthAdviceGT applies the GT predicate on the "health_advice" field.
func HealthAdviceGT(v string) predicate.Detection {
	return predicate.Detection(sql.FieldGT(FieldHealthAdvice, v))
}

// HealthAdviceGTE applies the GTE predicate on the "health_advice" field.
func HealthAdviceGTE(v string) predicate.Detection {
	return predicate.Detection(sql.FieldGTE(FieldHealthAdvice, v))
}

// HealthAdviceLT applies the LT predicate on the "health_advice" field.
func HealthAdviceLT(v string) predicate.Detection {
	return predicate.Detection(sql.FieldLT(FieldHealthAdvice, v))
}

// HealthAdviceLTE applies the LTE predicate on the "health_advice" field.
func HealthAdviceLTE(v string) predicate.Detection {
	return predicate.Detection(sql.FieldLTE(FieldHealthAdvice, v))
}

// HealthAdviceContains applies the Contains predicate on the "health_advice" field.
func HealthAdviceContains(v string) predicate.Detection {
	return predicate.Detection(sql.FieldContains(FieldHealthAdvice, v))
}

// HealthAdviceHasPrefix applies the HasPrefix predicate on the "health_advice" field.
func HealthAdviceHasPrefix(v string) predicate.Detection {
	return predicate.Detection(sql.FieldHasPrefix(FieldHealthAdvice, v))
}

// HealthAdviceHasSuffix applies the HasSuffix predicate on the "health_advice" field.
func HealthAdviceHasSuffix(v string) predicate.Detection {
	return predicate.Detection(sql.FieldHasSuffix(FieldHealthAdvice, v))
}

// HealthAdviceIsNil applies the IsNil predicate on the "health_advice" field.
func HealthAdviceIsNil() predicate.Detection {
	return predicate.Detection(sql.FieldIsNull(FieldHealthAdvice))
}

// HealthAdviceNotNil applies the NotNil predicate on the "health_advice" field.
func HealthAdviceNotNil() predicate.Detection {
	return predicate.Detection(sql.FieldNotNull(FieldHealthAdvice))
}

// HealthAdviceEqualFold applies the EqualFold predicate on the "health_advice" field.
func HealthAdviceEqualFold(v string) predicate.Detection {
	return predicate.Detection(sql.FieldEqualFold(FieldHealthAdvice, v))
}

// HealthAdviceContainsFold applies the ContainsFold predicate on the "health_advice" field.
func HealthAdviceContainsFold(v string) predicate.Detection {
	return predicate.Detection(sql.FieldContainsFold(FieldHealthAdvice, v))
}

// AnalysisIsNil applies the IsNil predicate on the "analysis" field.
func AnalysisIsNil() predicate.Detection {
	return predicate.Detection(sql.FieldIsNull(FieldAnalysis))
}

// AnalysisNotNil applies the NotNil predicate on the "analysis" field.
func AnalysisNotNil() predicate.Detection {
	return predicate.Detection(sql.FieldNotNull(FieldAnalysis))
}

// RiskFactorsIsNil applies the IsNil predicate on the "risk_factors" field.
func RiskFactorsIsNil() predicate.Detection {
	return predicate.Detection(sql.FieldIsNull(FieldRiskFactors))
}

// RiskFactorsNotNil applies the NotNil predicate on the "risk_factors" field.
func RiskFactorsNotNil() predicate.Detection {
	return predicate.Detection(sql.FieldNotNull(FieldRiskFactors))
}

// OcrConfidenceEQ applies the EQ predicate on the "ocr_confidence" field.
func OcrConfidenceEQ(v float32) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldOcrConfidence, v))
}

// OcrConfidenceNEQ applies the NEQ predicate on the "ocr_confidence" field.
func OcrConfidenceNEQ(v float32) predicate.Detection {
	return predicate.Detection(sql.FieldNEQ(FieldOcrConfidence, v))
}

// OcrConfidenceIn applies the In predicate on the "ocr_confidence" field.
func OcrConfidenceIn(vs ...float32) predicate.Detection {
	return predicate.Detection(sql.FieldIn(FieldOcrConfidence, vs...))
}

// OcrConfidenceNotIn applies the NotIn predicate on the "ocr_confidence" field.
func OcrConfidenceNotIn(vs ...float32) predicate.Detection {
	return predicate.Detection(sql.FieldNotIn(FieldOcrConfidence, vs...))
}

// OcrConfidenceGT applies the GT predicate on the "ocr_confidence" field.
func OcrConfidenceGT(v float32) predicate.Detection {
	return predicate.Detection(sql.FieldGT(FieldOcrConfidence, v))
}

// OcrConfidenceGTE applies the GTE predicate on the "ocr_confidence" field.
func OcrConfidenceGTE(v float32) predicate.Detection {
	return predicate.Detection(sql.FieldGTE(FieldOcrConfidence, v))
}

// OcrConfidenceLT applies the LT predicate on the "ocr_confidence" field.
func OcrConfidenceLT(v float32) predicate.Detection {
	return predicate.Detection(sql.FieldLT(FieldOcrConfidence, v))
}

// OcrConfidenceLTE applies the LTE predicate on the "ocr_confidence" field.
func OcrConfidenceLTE(v float32) predicate.Detection {
	return predicate.Detection(sql.FieldLTE(FieldOcrConfidence, v))
}

// OcrConfidenceIsNil applies the IsNil predicate on the "ocr_confidence" field.
func OcrConfidenceIsNil() predicate.Detection {
	return predicate.Detection(sql.FieldIsNull(FieldOcrConfidence))
}

// OcrConfidenceNotNil applies the NotNil predicate on the "ocr_confidence" field.
func OcrConfidenceNotNil() predicate.Detection {
	return predicate.Detection(sql.FieldNotNull(FieldOcrConfidence))
}

// ProcessingMsEQ applies the EQ predicate on the "processing_ms" field.
func ProcessingMsEQ(v int64) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldProcessingMs, v))
}

// ProcessingMsNEQ applies the NEQ predicate on the "processing_ms" field.
func ProcessingMsNEQ(v int64) predicate.Detection {
	return predicate.Detection(sql.FieldNEQ(FieldProcessingMs, v))
}

// ProcessingMsIn applies the In predicate on the "processing_ms" field.
func ProcessingMsIn(vs ...int64) predicate.Detection {
	return predicate.Detection(sql.FieldIn(FieldProcessingMs, vs...))
}

// ProcessingMsNotIn applies the NotIn predicate on the "processing_ms" field.
func ProcessingMsNotIn(vs ...int64) predicate.Detection {
	return predicate.Detection(sql.FieldNotIn(FieldProcessingMs, vs...))
}

// ProcessingMsGT applies the GT predicate on the "processing_ms" field.
func ProcessingMsGT(v int64) predicate.Detection {
	return predicate.Detection(sql.FieldGT(FieldProcessingMs, v))
}

// ProcessingMsGTE applies the GTE predicate on the "processing_ms" field.
func ProcessingMsGTE(v int64) predicate.Detection {
	return predicate.Detection(sql.FieldGTE(FieldProcessingMs, v))
}

// ProcessingMsLT applies the LT predicate on the "processing_ms" field.
func ProcessingMsLT(v int64) predicate.Detection {
	return predicate.Detection(sql.FieldLT(FieldProcessingMs, v))
}

// ProcessingMsLTE applies the LTE predicate on the "processing_ms" field.
func ProcessingMsLTE(v int64) predicate.Detection {
	return predicate.Detection(sql.FieldLTE(FieldProcessingMs, v))
}

// ProcessingMsIsNil applies the IsNil predicate on the "processing_ms" field.
func ProcessingMsIsNil() predicate.Detection {
	return predicate.Detection(sql.FieldIsNull(FieldProcessingMs))
}

// ProcessingMsNotNil applies the NotNil predicate on the "processing_ms" field.
func ProcessingMsNotNil() predicate.Detection {
	return predicate.Detection(sql.FieldNotNull(FieldProcessingMs))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Detection {
	return predicate.Detection(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Detection {
	return predicate.Detection(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Detection {
	return predicate.Detection(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Detection {
	return predicate.Detection(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Detection {
	return predicate.Detection(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Detection {
	return predicate.Detection(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Detection {
	return predicate.Detection(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Detection {
	return predicate.Detection(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Detection {
	return predicate.Detection(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Detection {
	return predicate.Detection(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Detection {
	return predicate.Detection(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Detection {
	return predicate.Detection(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Detection {
	return predicate.Detection(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Detection {
	return predicate.Detection(sql.FieldContainsFold(FieldErrorMessage, v))
}

// UserRatingEQ applies the EQ predicate on the "user_rating" field.
func UserRatingEQ(v int) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldUserRating, v))
}

// UserRatingNEQ applies the NEQ predicate on the "user_rating" field.
func UserRatingNEQ(v int) predicate.Detection {
	return predicate.Detection(sql.FieldNEQ(FieldUserRating, v))
}

// UserRatingIn applies the In predicate on the "user_rating" field.
func UserRatingIn(vs ...int) predicate.Detection {
	return predicate.Detection(sql.FieldIn(FieldUserRating, vs...))
}

// UserRatingNotIn applies the NotIn predicate on the "user_rating" field.
func UserRatingNotIn(vs ...int) predicate.Detection {
	return predicate.Detection(sql.FieldNotIn(FieldUserRating, vs...))
}

// UserRatingGT applies the GT predicate on the "user_rating" field.
func UserRatingGT(v int) predicate.Detection {
	return predicate.Detection(sql.FieldGT(FieldUserRating, v))
}

// UserRatingGTE applies the GTE predicate on the "user_rating" field.
func UserRatingGTE(v int) predicate.Detection {
	return predicate.Detection(sql.FieldGTE(FieldUserRating, v))
}

// UserRatingLT applies the LT predicate on the "user_rating" field.
func UserRatingLT(v int) predicate.Detection {
	return predicate.Detection(sql.FieldLT(FieldUserRating, v))
}

// UserRatingLTE applies the LTE predicate on the "user_rating" field.
func UserRatingLTE(v int) predicate.Detection {
	return predicate.Detection(sql.FieldLTE(FieldUserRating, v))
}

// UserRatingIsNil applies the IsNil predicate on the "user_rating" field.
func UserRatingIsNil() predicate.Detection {
	return predicate.Detection(sql.FieldIsNull(FieldUserRating))
}

// UserRatingNotNil applies the NotNil predicate on the "user_rating" field.
func UserRatingNotNil() predicate.Detection {
	return predicate.Detection(sql.FieldNotNull(FieldUserRating))
}

// UserFeedbackEQ applies the EQ predicate on the "user_feedback" field.
func UserFeedbackEQ(v string) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldUserFeedback, v))
}

// UserFeedbackNEQ applies the NEQ predicate on the "user_feedback" field.
func UserFeedbackNEQ(v string) predicate.Detection {
	return predicate.Detection(sql.FieldNEQ(FieldUserFeedback, v))
}

// UserFeedbackIn applies the In predicate on the "user_feedback" field.
func UserFeedbackIn(vs ...string) predicate.Detection {
	return predicate.Detection(sql.FieldIn(FieldUserFeedback, vs...))
}

// UserFeedbackNotIn applies the NotIn predicate on the "user_feedback" field.
func UserFeedbackNotIn(vs ...string) predicate.Detection {
	return predicate.Detection(sql.FieldNotIn(FieldUserFeedback, vs...))
}

// UserFeedbackGT applies the GT predicate on the "user_feedback" field.
func UserFeedbackGT(v string) predicate.Detection {
	return predicate.Detection(sql.FieldGT(FieldUserFeedback, v))
}

// UserFeedbackGTE applies the GTE predicate on the "user_feedback" field.
func UserFeedbackGTE(v string) predicate.Detection {
	return predicate.Detection(sql.FieldGTE(FieldUserFeedback, v))
}

// UserFeedbackLT applies the LT predicate on the "user_feedback" field.
func UserFeedbackLT(v string) predicate.Detection {
	return predicate.Detection(sql.FieldLT(FieldUserFeedback, v))
}

// UserFeedbackLTE applies the LTE predicate on the "user_feedback" field.
func UserFeedbackLTE(v string) predicate.Detection {
	return predicate.Detection(sql.FieldLTE(FieldUserFeedback, v))
}

// UserFeedbackContains applies the Contains predicate on the "user_feedback" field.
func UserFeedbackContains(v string) predicate.Detection {
	return predicate.Detection(sql.FieldContains(FieldUserFeedback, v))
}

// UserFeedbackHasPrefix applies the HasPrefix predicate on the "user_feedback" field.
func UserFeedbackHasPrefix(v string) predicate.Detection {
	return predicate.Detection(sql.FieldHasPrefix(FieldUserFeedback, v))
}

// UserFeedbackHasSuffix applies the HasSuffix predicate on the "user_feedback" field.
func UserFeedbackHasSuffix(v string) predicate.Detection {
	return predicate.Detection(sql.FieldHasSuffix(FieldUserFeedback, v))
}

// UserFeedbackIsNil applies the IsNil predicate on the "user_feedback" field.
func UserFeedbackIsNil() predicate.Detection {
	return predicate.Detection(sql.FieldIsNull(FieldUserFeedback))
}

// UserFeedbackNotNil applies the NotNil predicate on the "user_feedback" field.
func UserFeedbackNotNil() predicate.Detection {
	return predicate.Detection(sql.FieldNotNull(FieldUserFeedback))
}

// UserFeedbackEqualFold applies the EqualFold predicate on the "user_feedback" field.
func UserFeedbackEqualFold(v string) predicate.Detection {
	return predicate.Detection(sql.FieldEqualFold(FieldUserFeedback, v))
}

// UserFeedbackContainsFold applies the ContainsFold predicate on the "user_feedback" field.
func UserFeedbackContainsFold(v string) predicate.Detection {
	return predicate.Detection(sql.FieldContainsFold(FieldUserFeedback, v))
}

// IsAccurateEQ applies the EQ predicate on the "is_accurate" field.
func IsAccurateEQ(v bool) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldIsAccurate, v))
}

// IsAccurateNEQ applies the NEQ predicate on the "is_accurate" field.
func IsAccurateNEQ(v bool) predicate.Detection {
	return predicate.Detection(sql.FieldNEQ(FieldIsAccurate, v))
}

// IsAccurateIsNil applies the IsNil predicate on the "is_accurate" field.
func IsAccurateIsNil() predicate.Detection {
	return predicate.Detection(sql.FieldIsNull(FieldIsAccurate))
}

// IsAccurateNotNil applies the NotNil predicate on the "is_accurate" field.
func IsAccurateNotNil() predicate.Detection {
	return predicate.Detection(sql.FieldNotNull(FieldIsAccurate))
}

// IsFavoriteEQ applies the EQ predicate on the "is_favorite" field.
func IsFavoriteEQ(v bool) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldIsFavorite, v))
}

// IsFavoriteNEQ applies the NEQ predicate on the "is_favorite" field.
func IsFavoriteNEQ(v bool) predicate.Detection {
	return predicate.Detection(sql.FieldNEQ(FieldIsFavorite, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Detection {
	return predicate.Detection(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Detection {
	return predicate.Detection(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Detection {
	return predicate.Detection(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Detection {
	return predicate.Detection(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Detection {
	return predicate.Detection(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Detection {
	return predicate.Detection(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Detection {
	return predicate.Detection(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Detection {
	return predicate.Detection(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Detection {
	return predicate.Detection(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Detection {
	return predicate.Detection(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Detection {
	return predicate.Detection(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Detection {
	return predicate.Detection(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Detection {
	return predicate.Detection(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Detection {
	return predicate.Detection(sql.FieldLTE(FieldUpdatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Detection {
	return predicate.Detection(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Detection {
	return predicate.Detection(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Detection {
	return predicate.Detection(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Detection {
	return predicate.Detection(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Detection {
	return predicate.Detection(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Detection {
	return predicate.Detection(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Detection {
	return predicate.Detection(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Detection {
	return predicate.Detection(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Detection {
	return predicate.Detection(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Detection {
	return predicate.Detection(sql.FieldNotNull(FieldCompletedAt))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.Detection {
	return predicate.Detection(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.Detection {
	return predicate.Detection(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Detection) predicate.Detection {
	return predicate.Detection(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Detection) predicate.Detection {
	return predicate.Detection(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Detection) predicate.Detection {
	return predicate.Detection(sql.NotPredicates(p))
}
