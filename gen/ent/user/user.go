// Code generated by ent, DO NOT EDIT.

package user

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the user type in the database.
	Label = "user"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOpenid holds the string denoting the openid field in the database.
	FieldOpenid = "openid"
	// FieldNickname holds the string denoting the nickname field in the database.
	FieldNickname = "nickname"
	// FieldAvatarURL holds the string denoting the avatar_url field in the database.
	FieldAvatarURL = "avatar_url"
	// FieldAge holds the string denoting the age field in the database.
	FieldAge = "age"
	// FieldHealthConditions holds the string denoting the health_conditions field in the database.
	FieldHealthConditions = "health_conditions"
	// FieldDietaryPreferences holds the string denoting the dietary_preferences field in the database.
	FieldDietaryPreferences = "dietary_preferences"
	// FieldAllergies holds the string denoting the allergies field in the database.
	FieldAllergies = "allergies"
	// FieldScanCount holds the string denoting the scan_count field in the database.
	FieldScanCount = "scan_count"
	// FieldLastScanAt holds the string denoting the last_scan_at field in the database.
	FieldLastScanAt = "last_scan_at"
	// FieldLastLoginAt holds the string denoting the last_login_at field in the database.
	FieldLastLoginAt = "last_login_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeDetections holds the string denoting the detections edge name in mutations.
	EdgeDetections = "detections"
	// Table holds the table name of the user in the database.
	Table = "users"
	// DetectionsTable is the table that holds the detections relation/edge.
	DetectionsTable = "detections"
	// DetectionsInverseTable is the table name for the Detection entity.
	// It exists in this package in order to avoid circular dependency with the "detection" package.
	DetectionsInverseTable = "detections"
	// DetectionsColumn is the table column denoting the detections relation/edge.
	DetectionsColumn = "user_id"
)

// Columns holds all SQL columns for user fields.
var Columns = []string{
	FieldID,
	FieldOpenid,
	FieldNickname,
	FieldAvatarURL,
	FieldAge,
	FieldHealthConditions,
	FieldDietaryPreferences,
	FieldAllergies,
	FieldScanCount,
	FieldLastScanAt,
	FieldLastLoginAt,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// OpenidValidator is a validator for the "openid" field. It is called by the builders before save.
	OpenidValidator func(string) error
	// AgeValidator is a validator for the "age" field. It is called by the builders before save.
	AgeValidator func(int) error
	// DefaultScanCount holds the default value on creation for the "scan_count" field.
	DefaultScanCount int
	// ScanCountValidator is a validator for the "scan_count" field. It is called by the builders before save.
	ScanCountValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the User queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOpenid orders the results by the openid field.
func ByOpenid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOpenid, opts...).ToFunc()
}

// ByNickname orders the results by the nickname field.
func ByNickname(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNickname, opts...).ToFunc()
}

// ByAvatarURL orders the results by the avatar_url field.
func ByAvatarURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvatarURL, opts...).ToFunc()
}

// ByAge orders the results by the age field.
func ByAge(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAge, opts...).ToFunc()
}

// ByHealthConditions orders the results by the health_conditions field.
func ByHealthConditions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHealthConditions, opts...).ToFunc()
}

// ByDietaryPreferences orders the results by the dietary_preferences field.
func ByDietaryPreferences(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDietaryPreferences, opts...).ToFunc()
}

// ByAllergies orders the results by the allergies field.
func ByAllergies(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAllergies, opts...).ToFunc()
}

// ByScanCount orders the results by the scan_count field.
func ByScanCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScanCount, opts...).ToFunc()
}

// ByLastScanAt orders the results by the last_scan_at field.
func ByLastScanAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastScanAt, opts...).ToFunc()
}

// ByLastLoginAt orders the results by the last_login_at field.
func ByLastLoginAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastLoginAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDetectionsCount orders the results by detections count.
func ByDetectionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDetectionsStep(), opts...)
	}
}

// ByDetections orders the results by detections terms.
func ByDetections(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDetectionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newDetectionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DetectionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DetectionsTable, DetectionsColumn),
	)
}
