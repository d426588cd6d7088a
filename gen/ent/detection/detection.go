// Code generated by ent, DO NOT EDIT.

package detection

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the detection type in the database.
	Label = "detection"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldDetectionType holds the string denoting the detection_type field in the database.
	FieldDetectionType = "detection_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldImagePath holds the string denoting the image_path field in the database.
	FieldImagePath = "image_path"
	// FieldRawText holds the string denoting the raw_text field in the database.
	FieldRawText = "raw_text"
	// FieldBarcode holds the string denoting the barcode field in the database.
	FieldBarcode = "barcode"
	// FieldProductName holds the string denoting the product_name field in the database.
	FieldProductName = "product_name"
	// FieldBrand holds the string denoting the brand field in the database.
	FieldBrand = "brand"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldEnergyKj holds the string denoting the energy_kj field in the database.
	FieldEnergyKj = "energy_kj"
	// FieldEnergyKcal holds the string denoting the energy_kcal field in the database.
	FieldEnergyKcal = "energy_kcal"
	// FieldProtein holds the string denoting the protein field in the database.
	FieldProtein = "protein"
	// FieldFat holds the string denoting the fat field in the database.
	FieldFat = "fat"
	// FieldSaturatedFat holds the string denoting the saturated_fat field in the database.
	FieldSaturatedFat = "saturated_fat"
	// FieldCarbohydrate holds the string denoting the carbohydrate field in the database.
	FieldCarbohydrate = "carbohydrate"
	// FieldSugar holds the string denoting the sugar field in the database.
	FieldSugar = "sugar"
	// FieldFiber holds the string denoting the fiber field in the database.
	FieldFiber = "fiber"
	// FieldSodium holds the string denoting the sodium field in the database.
	FieldSodium = "sodium"
	// FieldOtherNutrients holds the string denoting the other_nutrients field in the database.
	FieldOtherNutrients = "other_nutrients"
	// FieldHealthScore holds the string denoting the health_score field in the database.
	FieldHealthScore = "health_score"
	// FieldRiskLevel holds the string denoting the risk_level field in the database.
	FieldRiskLevel = "risk_level"
	// FieldHealthAdvice holds the string denoting the health_advice field in the database.
	FieldHealthAdvice = "health_advice"
	// FieldAnalysis holds the string denoting the analysis field in the database.
	FieldAnalysis = "analysis"
	// FieldRiskFactors holds the string denoting the risk_factors field in the database.
	FieldRiskFactors = "risk_factors"
	// FieldOcrConfidence holds the string denoting the ocr_confidence field in the database.
	FieldOcrConfidence = "ocr_confidence"
	// FieldProcessingMs holds the string denoting the processing_ms field in the database.
	FieldProcessingMs = "processing_ms"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldUserRating holds the string denoting the user_rating field in the database.
	FieldUserRating = "user_rating"
	// FieldUserFeedback holds the string denoting the user_feedback field in the database.
	FieldUserFeedback = "user_feedback"
	// FieldIsAccurate holds the string denoting the is_accurate field in the database.
	FieldIsAccurate = "is_accurate"
	// FieldIsFavorite holds the string denoting the is_favorite field in the database.
	FieldIsFavorite = "is_favorite"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// Table holds the table name of the detection in the database.
	Table = "detections"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "detections"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
)

// Columns holds all SQL columns for detection fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldDetectionType,
	FieldStatus,
	FieldImagePath,
	FieldRawText,
	FieldBarcode,
	FieldProductName,
	FieldBrand,
	FieldCategory,
	FieldEnergyKj,
	FieldEnergyKcal,
	FieldProtein,
	FieldFat,
	FieldSaturatedFat,
	FieldCarbohydrate,
	FieldSugar,
	FieldFiber,
	FieldSodium,
	FieldOtherNutrients,
	FieldHealthScore,
	FieldRiskLevel,
	FieldHealthAdvice,
	FieldAnalysis,
	FieldRiskFactors,
	FieldOcrConfidence,
	FieldProcessingMs,
	FieldErrorMessage,
	FieldUserRating,
	FieldUserFeedback,
	FieldIsAccurate,
	FieldIsFavorite,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DetectionTypeValidator is a validator for the "detection_type" field. It is called by the builders before save.
	DetectionTypeValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultRiskLevel holds the default value on creation for the "risk_level" field.
	DefaultRiskLevel string
	// RiskLevelValidator is a validator for the "risk_level" field. It is called by the builders before save.
	RiskLevelValidator func(string) error
	// UserRatingValidator is a validator for the "user_rating" field. It is called by the builders before save.
	UserRatingValidator func(int) error
	// DefaultIsFavorite holds the default value on creation for the "is_favorite" field.
	DefaultIsFavorite bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Detection queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByDetectionType orders the results by the detection_type field.
func ByDetectionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetectionType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByImagePath orders the results by the image_path field.
func ByImagePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImagePath, opts...).ToFunc()
}

// ByRawText orders the results by the raw_text field.
func ByRawText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawText, opts...).ToFunc()
}

// ByBarcode orders the results by the barcode field.
func ByBarcode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBarcode, opts...).ToFunc()
}

// ByProductName orders the results by the product_name field.
func ByProductName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProductName, opts...).ToFunc()
}

// ByBrand orders the results by the brand field.
func ByBrand(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBrand, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByEnergyKj orders the results by the energy_kj field.
func ByEnergyKj(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnergyKj, opts...).ToFunc()
}

// ByEnergyKcal orders the results by the energy_kcal field.
func ByEnergyKcal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnergyKcal, opts...).ToFunc()
}

// ByProtein orders the results by the protein field.
func ByProtein(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProtein, opts...).ToFunc()
}

// ByFat orders the results by the fat field.
func ByFat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFat, opts...).ToFunc()
}

// BySaturatedFat orders the results by the saturated_fat field.
func BySaturatedFat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSaturatedFat, opts...).ToFunc()
}

// ByCarbohydrate orders the results by the carbohydrate field.
func ByCarbohydrate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCarbohydrate, opts...).ToFunc()
}

// BySugar orders the results by the sugar field.
func BySugar(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSugar, opts...).ToFunc()
}

// ByFiber orders the results by the fiber field.
func ByFiber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFiber, opts...).ToFunc()
}

// BySodium orders the results by the sodium field.
func BySodium(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSodium, opts...).ToFunc()
}

// ByHealthScore orders the results by the health_score field.
func ByHealthScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHealthScore, opts...).ToFunc()
}

// ByRiskLevel orders the results by the risk_level field.
func ByRiskLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskLevel, opts...).ToFunc()
}

// ByHealthAdvice orders the results by the health_advice field.
func ByHealthAdvice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHealthAdvice, opts...).ToFunc()
}

// ByOcrConfidence orders the results by the ocr_confidence field.
func ByOcrConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOcrConfidence, opts...).ToFunc()
}

// ByProcessingMs orders the results by the processing_ms field.
func ByProcessingMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingMs, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByUserRating orders the results by the user_rating field.
func ByUserRating(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserRating, opts...).ToFunc()
}

// ByUserFeedback orders the results by the user_feedback field.
func ByUserFeedback(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserFeedback, opts...).ToFunc()
}

// ByIsAccurate orders the results by the is_accurate field.
func ByIsAccurate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsAccurate, opts...).ToFunc()
}

// ByIsFavorite orders the results by the is_favorite field.
func ByIsFavorite(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsFavorite, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByUserField orders the results by user field.
func ByUserField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserStep(), sql.OrderByField(field, opts...))
	}
}
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
	)
}
