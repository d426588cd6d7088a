// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nutriscan/nutrition-scanner/gen/ent/detection"
	"github.com/nutriscan/nutrition-scanner/gen/ent/user"
)

// Detection is the model entity for the Detection schema.
type Detection struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID *uuid.UUID `json:"user_id,omitempty"`
	// DetectionType holds the value of the "detection_type" field.
	DetectionType string `json:"detection_type,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ImagePath holds the value of the "image_path" field.
	ImagePath *string `json:"image_path,omitempty"`
	// RawText holds the value of the "raw_text" field.
	RawText *string `json:"raw_text,omitempty"`
	// Barcode holds the value of the "barcode" field.
	Barcode *string `json:"barcode,omitempty"`
	// ProductName holds the value of the "product_name" field.
	ProductName *string `json:"product_name,omitempty"`
	// Brand holds the value of the "brand" field.
	Brand *string `json:"brand,omitempty"`
	// Category holds the value of the "category" field.
	Category *string `json:"category,omitempty"`
	// EnergyKj holds the value of the "energy_kj" field.
	EnergyKj *float64 `json:"energy_kj,omitempty"`
	// EnergyKcal holds the value of the "energy_kcal" field.
	EnergyKcal *float64 `json:"energy_kcal,omitempty"`
	// Protein holds the value of the "protein" field.
	Protein *float64 `json:"protein,omitempty"`
	// Fat holds the value of the "fat" field.
	Fat *float64 `json:"fat,omitempty"`
	// SaturatedFat holds the value of the "saturated_fat" field.
	SaturatedFat *float64 `json:"saturated_fat,omitempty"`
	// Carbohydrate holds the value of the "carbohydrate" field.
	Carbohydrate *float64 `json:"carbohydrate,omitempty"`
	// Sugar holds the value of the "sugar" field.
	Sugar *float64 `json:"sugar,omitempty"`
	// Fiber holds the value of the "fiber" field.
	Fiber *float64 `json:"fiber,omitempty"`
	// Sodium holds the value of the "sodium" field.
	Sodium *float64 `json:"sodium,omitempty"`
	// OtherNutrients holds the value of the "other_nutrients" field.
	OtherNutrients json.RawMessage `json:"other_nutrients,omitempty"`
	// HealthScore holds the value of the "health_score" field.
	HealthScore *float64 `json:"health_score,omitempty"`
	// RiskLevel holds the value of the "risk_level" field.
	RiskLevel string `json:"risk_level,omitempty"`
	// HealthAdvice holds the value of the "health_advice" field.
	HealthAdvice *string `json:"health_advice,omitempty"`
	// Analysis holds the value of the "analysis" field.
	Analysis json.RawMessage `json:"analysis,omitempty"`
	// RiskFactors holds the value of the "risk_factors" field.
	RiskFactors json.RawMessage `json:"risk_factors,omitempty"`
	// OcrConfidence holds the value of the "ocr_confidence" field.
	OcrConfidence *float32 `json:"ocr_confidence,omitempty"`
	// ProcessingMs holds the value of the "processing_ms" field.
	ProcessingMs *int64 `json:"processing_ms,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// UserRating holds the value of the "user_rating" field.
	UserRating *int `json:"user_rating,omitempty"`
	// UserFeedback holds the value of the "user_feedback" field.
	UserFeedback *string `json:"user_feedback,omitempty"`
	// IsAccurate holds the value of the "is_accurate" field.
	IsAccurate *bool `json:"is_accurate,omitempty"`
	// IsFavorite holds the value of the "is_favorite" field.
	IsFavorite bool `json:"is_favorite,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DetectionQuery when eager-loading is set.
	Edges        DetectionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DetectionEdges holds the relations/edges for other nodes in the graph.
type DetectionEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DetectionEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Detection) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case detection.FieldUserID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case detection.FieldOtherNutrients, detection.FieldAnalysis, detection.FieldRiskFactors:
			values[i] = new([]byte)
		case detection.FieldIsAccurate, detection.FieldIsFavorite:
			values[i] = new(sql.NullBool)
		case detection.FieldEnergyKj, detection.FieldEnergyKcal, detection.FieldProtein, detection.FieldFat, detection.FieldSaturatedFat, detection.FieldCarbohydrate, detection.FieldSugar, detection.FieldFiber, detection.FieldSodium, detection.FieldHealthScore, detection.FieldOcrConfidence:
			values[i] = new(sql.NullFloat64)
		case detection.FieldProcessingMs, detection.FieldUserRating:
			values[i] = new(sql.NullInt64)
		case detection.FieldDetectionType, detection.FieldStatus, detection.FieldImagePath, detection.FieldRawText, detection.FieldBarcode, detection.FieldProductName, detection.FieldBrand, detection.FieldCategory, detection.FieldRiskLevel, detection.FieldHealthAdvice, detection.FieldErrorMessage, detection.FieldUserFeedback:
			values[i] = new(sql.NullString)
		case detection.FieldCreatedAt, detection.FieldUpdatedAt, detection.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		case detection.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Detection fields.
func (_m *Detection) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case detection.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case detection.FieldUserID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = new(uuid.UUID)
				*_m.UserID = *value.S.(*uuid.UUID)
			}
		case detection.FieldDetectionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field detection_type", values[i])
			} else if value.Valid {
				_m.DetectionType = value.String
			}
		case detection.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case detection.FieldImagePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image_path", values[i])
			} else if value.Valid {
				_m.ImagePath = new(string)
				*_m.ImagePath = value.String
			}
		case detection.FieldRawText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_text", values[i])
			} else if value.Valid {
				_m.RawText = new(string)
				*_m.RawText = value.String
			}
		case detection.FieldBarcode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field barcode", values[i])
			} else if value.Valid {
				_m.Barcode = new(string)
				*_m.Barcode = value.String
			}
		case detection.FieldProductName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field product_name", values[i])
			} else if value.Valid {
				_m.ProductName = new(string)
				*_m.ProductName = value.String
			}
		case detection.FieldBrand:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field brand", values[i])
			} else if value.Valid {
				_m.Brand = new(string)
				*_m.Brand = value.String
			}
		case detection.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = new(string)
				*_m.Category = value.String
			}
		case detection.FieldEnergyKj:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field energy_kj", values[i])
			} else if value.Valid {
				_m.EnergyKj = new(float64)
				*_m.EnergyKj = value.Float64
			}
		case detection.FieldEnergyKcal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field energy_kcal", values[i])
			} else if value.Valid {
				_m.EnergyKcal = new(float64)
				*_m.EnergyKcal = value.Float64
			}
		case detection.FieldProtein:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field protein", values[i])
			} else if value.Valid {
				_m.Protein = new(float64)
				*_m.Protein = value.Float64
			}
		case detection.FieldFat:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field fat", values[i])
			} else if value.Valid {
				_m.Fat = new(float64)
				*_m.Fat = value.Float64
			}
		case detection.FieldSaturatedFat:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field saturated_fat", values[i])
			} else if value.Valid {
				_m.SaturatedFat = new(float64)
				*_m.SaturatedFat = value.Float64
			}
		case detection.FieldCarbohydrate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field carbohydrate", values[i])
			} else if value.Valid {
				_m.Carbohydrate = new(float64)
				*_m.Carbohydrate = value.Float64
			}
		case detection.FieldSugar:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field sugar", values[i])
			} else if value.Valid {
				_m.Sugar = new(float64)
				*_m.Sugar = value.Float64
			}
		case detection.FieldFiber:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field fiber", values[i])
			} else if value.Valid {
				_m.Fiber = new(float64)
				*_m.Fiber = value.Float64
			}
		case detection.FieldSodium:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field sodium", values[i])
			} else if value.Valid {
				_m.Sodium = new(float64)
				*_m.Sodium = value.Float64
			}
		case detection.FieldOtherNutrients:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field other_nutrients", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.OtherNutrients); err != nil {
					return fmt.Errorf("unmarshal field other_nutrients: %w", err)
				}
			}
		case detection.FieldHealthScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field health_score", values[i])
			} else if value.Valid {
				_m.HealthScore = new(float64)
				*_m.HealthScore = value.Float64
			}
		case detection.FieldRiskLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field risk_level", values[i])
			} else if value.Valid {
				_m.RiskLevel = value.String
			}
		case detection.FieldHealthAdvice:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field health_advice", values[i])
			} else if value.Valid {
				_m.HealthAdvice = new(string)
				*_m.HealthAdvice = value.String
			}
		case detection.FieldAnalysis:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field analysis", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Analysis); err != nil {
					return fmt.Errorf("unmarshal field analysis: %w", err)
				}
			}
		case detection.FieldRiskFactors:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field risk_factors", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RiskFactors); err != nil {
					return fmt.Errorf("unmarshal field risk_factors: %w", err)
				}
			}
		case detection.FieldOcrConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ocr_confidence", values[i])
			} else if value.Valid {
				_m.OcrConfidence = new(float32)
				*_m.OcrConfidence = float32(value.Float64)
			}
		case detection.FieldProcessingMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field processing_ms", values[i])
			} else if value.Valid {
				_m.ProcessingMs = new(int64)
				*_m.ProcessingMs = value.Int64
			}
		case detection.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case detection.FieldUserRating:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_rating", values[i])
			} else if value.Valid {
				_m.UserRating = new(int)
				*_m.UserRating = int(value.Int64)
			}
		case detection.FieldUserFeedback:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_feedback", values[i])
			} else if value.Valid {
				_m.UserFeedback = new(string)
				*_m.UserFeedback = value.String
			}
		case detection.FieldIsAccurate:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_accurate", values[i])
			} else if value.Valid {
				_m.IsAccurate = new(bool)
				*_m.IsAccurate = value.Bool
			}
		case detection.FieldIsFavorite:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_favorite", values[i])
			} else if value.Valid {
				_m.IsFavorite = value.Bool
			}
		case detection.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case detection.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case detection.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Detection.
// This includes values selected through modifiers, order, etc.
func (_m *Detection) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the Detection entity.
func (_m *Detection) QueryUser() *UserQuery {
	return NewDetectionClient(_m.config).QueryUser(_m)
}

// Update returns a builder for updating this Detection.
// Note that you need to call Detection.Unwrap() before calling this method if this Detection
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Detection) Update() *DetectionUpdateOne {
	return NewDetectionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Detection entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Detection) Unwrap() *Detection {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Detection is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Detection) String() string {
	var builder strings.Builder
	builder.WriteString("Detection(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.UserID; v != nil {
		builder.WriteString("user_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("detection_type=")
	builder.WriteString(_m.DetectionType)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.ImagePath; v != nil {
		builder.WriteString("image_path=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RawText; v != nil {
		builder.WriteString("raw_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Barcode; v != nil {
		builder.WriteString("barcode=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ProductName; v != nil {
		builder.WriteString("product_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Brand; v != nil {
		builder.WriteString("brand=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Category; v != nil {
		builder.WriteString("category=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.EnergyKj; v != nil {
		builder.WriteString("energy_kj=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.EnergyKcal; v != nil {
		builder.WriteString("energy_kcal=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Protein; v != nil {
		builder.WriteString("protein=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Fat; v != nil {
		builder.WriteString("fat=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.SaturatedFat; v != nil {
		builder.WriteString("saturated_fat=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Carbohydrate; v != nil {
		builder.WriteString("carbohydrate=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Sugar; v != nil {
		builder.WriteString("sugar=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Fiber; v != nil {
		builder.WriteString("fiber=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Sodium; v != nil {
		builder.WriteString("sodium=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("other_nutrients=")
	builder.WriteString(fmt.Sprintf("%v", _m.OtherNutrients))
	builder.WriteString(", ")
	if v := _m.HealthScore; v != nil {
		builder.WriteString("health_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("risk_level=")
	builder.WriteString(_m.RiskLevel)
	builder.WriteString(", ")
	if v := _m.HealthAdvice; v != nil {
		builder.WriteString("health_advice=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("analysis=")
	builder.WriteString(fmt.Sprintf("%v", _m.Analysis))
	builder.WriteString(", ")
	builder.WriteString("risk_factors=")
	builder.WriteString(fmt.Sprintf("%v", _m.RiskFactors))
	builder.WriteString(", ")
	if v := _m.OcrConfidence; v != nil {
		builder.WriteString("ocr_confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ProcessingMs; v != nil {
		builder.WriteString("processing_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.UserRating; v != nil {
		builder.WriteString("user_rating=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.UserFeedback; v != nil {
		builder.WriteString("user_feedback=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.IsAccurate; v != nil {
		builder.WriteString("is_accurate=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("is_favorite=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsFavorite))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Detections is a parsable slice of Detection.
type Detections []*Detection
