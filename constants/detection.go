package constants

// DetectionType says where a detection's input came from.
type DetectionType string

const (
	TypeOCRScan     DetectionType = "ocr_scan"     // uploaded nutrition-label photo
	TypeManualInput DetectionType = "manual_input" // user-entered label text
	TypeBarcodeScan DetectionType = "barcode_scan" // barcode lookup against the product catalog
)

// DetectionTypes holds the allowed values for the detection_type field.
var DetectionTypes = []string{
	string(TypeOCRScan),
	string(TypeManualInput),
	string(TypeBarcodeScan),
}

// ParseDetectionType maps a stored string back to a known detection type.
func ParseDetectionType(s string) (DetectionType, bool) {
	switch DetectionType(s) {
	case TypeOCRScan, TypeManualInput, TypeBarcodeScan:
		return DetectionType(s), true
	}
	return "", false
}

// RiskLevel is the discrete risk band attached to a completed detection.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskVeryHigh RiskLevel = "very_high"
	RiskUnknown  RiskLevel = "unknown"
)

// RiskLevels holds the allowed values for the risk_level field.
var RiskLevels = []string{
	string(RiskLow),
	string(RiskMedium),
	string(RiskHigh),
	string(RiskVeryHigh),
	string(RiskUnknown),
}

// ParseRiskLevel maps a provider- or DB-supplied label to a known risk
// level. Unrecognized labels fall back to unknown.
func ParseRiskLevel(s string) (RiskLevel, bool) {
	switch RiskLevel(s) {
	case RiskLow, RiskMedium, RiskHigh, RiskVeryHigh, RiskUnknown:
		return RiskLevel(s), true
	}
	return RiskUnknown, false
}
