// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/nutriscan/nutrition-scanner/gen/ent/detection"
	"github.com/nutriscan/nutrition-scanner/gen/ent/user"
)

// DetectionCreate is the builder for creating a Detection entity.
type DetectionCreate struct {
	config
	mutation *DetectionMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *DetectionCreate) SetUserID(v uuid.UUID) *DetectionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *DetectionCreate) SetNillableUserID(v *uuid.UUID) *DetectionCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetDetectionType sets the "detection_type" field.
func (_c *DetectionCreate) SetDetectionType(v string) *DetectionCreate {
	_c.mutation.SetDetectionType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *DetectionCreate) SetStatus(v string) *DetectionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DetectionCreate) SetNillableStatus(v *string) *DetectionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetImagePath sets the "image_path" field.
func (_c *DetectionCreate) SetImagePath(v string) *DetectionCreate {
	_c.mutation.SetImagePath(v)
	return _c
}

// SetNillableImagePath sets the "image_path" field if the given value is not nil.
func (_c *DetectionCreate) SetNillableImagePath(v *string) *DetectionCreate {
	if v != nil {
		_c.SetImagePath(*v)
	}
	return _c
}

// SetRawText sets the "raw_text" field.
func (_c *DetectionCreate) SetRawText(v string) *DetectionCreate {
	_c.mutation.SetRawText(v)
	return _c
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_c *DetectionCreate) SetNillableRawText(v *string) *DetectionCreate {
	if v != nil {
		_c.SetRawText(*v)
	}
	return _c
}

// SetBarcode sets the "barcode" field.
func (_c *DetectionCreate) SetBarcode(v string) *DetectionCreate {
	_c.mutation.SetBarcode(v)
	return _c
}

// SetNillableBarcode sets the "barcode" field if the given value is not nil.
func (_c *DetectionCreate) SetNillableBarcode(v *string) *DetectionCreate {
	if v != nil {
		_c.SetBarcode(*v)
	}
	return _c
}

// SetProductName sets the "product_name" field.
func (_c *DetectionCreate) SetProductName(v string) *DetectionCreate {
	_c.mutation.SetProductName(v)
	return _c
}

// SetNillableProductName sets the "product_name" field if the given value is not nil.
func (_c *DetectionCreate) SetNillableProductName(v *string) *DetectionCreate {
	if v != nil {
		_c.SetProductName(*v)
	}
	return _c
}

// SetBrand sets the "brand" field.
func (_c *DetectionCreate) SetBrand(v string) *DetectionCreate {
	_c.mutation.SetBrand(v)
	return _c
}

// SetNillableBrand sets the "brand" field if the given value is not nil.
func (_c *DetectionCreate) SetNillableBrand(v *string) *DetectionCreate {
	if v != nil {
		_c.SetBrand(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *DetectionCreate) SetCategory(v string) *DetectionCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *DetectionCreate) SetNillableCategory(v *string) *DetectionCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetEnergyKj sets the "energy_kj" field.
func (_c *DetectionCreate) SetEnergyKj(v float64) *DetectionCreate {
	_c.mutation.SetEnergyKj(v)
	return _c
}

// SetNillableEnergyKj sets the "energy_kj" field if the given value is not nil.
func (_c *DetectionCreate) SetNillableEnergyKj(v *float64) *DetectionCreate {
	if v != nil {
		_c.SetEnergyKj(*v)
	}
	return _c
}

// SetEnergyKcal sets the "energy_kcal" field.
func (_c *DetectionCreate) SetEnergyKcal(v float64) *DetectionCreate {
	_c.mutation.SetEnergyKcal(v)
	return _c
}

// SetNillableEnergyKcal sets the "energy_kcal" field if the given value is not nil.
func (_c *DetectionCreate) SetNillableEnergyKcal(v *float64) *DetectionCreate {
	if v != nil {
		_c.SetEnergyKcal(*v)
	}
	return _c
}

// SetProtein sets the "protein" field.
func (_c *DetectionCreate) SetProtein(v float64) *DetectionCreate {
	_c.mutation.SetProtein(v)
	return _c
}

// SetNillableProtein sets the "protein" field if the given value is not nil.
func (_c *DetectionCreate) SetNillableProtein(v *float64) *DetectionCreate {
	if v != nil {
		_c.SetProtein(*v)
	}
	return _c
}

// SetFat sets the "fat" field.
func (_c *DetectionCreate) SetFat(v float64) *DetectionCreate {
	_c.mutation.SetFat(v)
	return _c
}

// SetNillableFat sets the "fat" field if the given value is not nil.
func (_c *DetectionCreate) SetNillableFat(v *float64) *DetectionCreate {
	if v != nil {
		_c.SetFat(*v)
	}
	return _c
}

// SetSaturatedFat sets the "saturated_fat" field.
func (_c *DetectionCreate) SetSaturatedFat(v float64) *DetectionCreate {
	_c.mutation.SetSaturatedFat(v)
	return _c
}

// SetNillableSaturatedFat sets the "saturated_fat" field if the given value is not nil.
func (_c *DetectionCreate) SetNillableSaturatedFat(v *float64) *DetectionCreate {
	if v != nil {
		_c.SetSaturatedFat(*v)
	}
	return _c
}

// SetCarbohydrate sets the "carbohydrate" field.
func (_c *DetectionCreate) SetCarbohydrate(v float64) *DetectionCreate {
	_c.mutation.SetCarbohydrate(v)
	return _c
}

// SetNillableCarbohydrate sets the "carbohydrate" field if the given value is not nil.
func (_c *DetectionCreate) SetNillableCarbohydrate(v *float64) *DetectionCreate {
	if v != nil {
		_c.SetCarbohydrate(*v)
	}
	return _c
}

// SetSugar sets the "sugar" field.
func (_c *DetectionCreate) SetSugar(v float64) *DetectionCreate {
	_c.mutation.SetSugar(v)
	return _c
}

// SetNillableSugar sets the "sugar" field if the given value is not nil.
func (_c *DetectionCreate) SetNillableSugar(v *float64) *DetectionCreate {
	if v != nil {
		_c.SetSugar(*v)
	}
	return _c
}

// SetFiber sets the "fiber" field.
func (_c *DetectionCreate) SetFiber(v float64) *DetectionCreate {
	_c.mutation.SetFiber(v)
	return _c
}

// SetNillableFiber sets the "fiber" field if the given value is not nil.
func (_c *DetectionCreate) SetNillableFiber(v *float64) *DetectionCreate {
	if v != nil {
		_c.SetFiber(*v)
	}
	return _c
}

// SetSodium sets the "sodium" field.
func (_c *DetectionCreate) SetSodium(v float64) *DetectionCreate {
	_c.mutation.SetSodium(v)
	return _c
}

// SetNillableSodium sets the "sodium" field if the given value is not nil.
func (_c *DetectionCreate) SetNillableSodium(v *float64) *DetectionCreate {
	if v != nil {
		_c.SetSodium(*v)
	}
	return _c
}

// SetOtherNutrients sets the "other_nutrients" field.
func (_c *DetectionCreate) SetOtherNutrients(v json.RawMessage) *DetectionCreate {
	_c.mutation.SetOtherNutrients(v)
	return _c
}

// SetHealthScore sets the "health_score" field.
func (_c *DetectionCreate) SetHealthScore(v float64) *DetectionCreate {
	_c.mutation.SetHealthScore(v)
	return _c
}

// SetNillableHealthScore sets the "health_score" field if the given value is not nil.
func (_c *DetectionCreate) SetNillableHealthScore(v *float64) *DetectionCreate {
	if v != nil {
		_c.SetHealthScore(*v)
	}
	return _c
}

// SetRiskLevel sets the "risk_level" field.
func (_c *DetectionCreate) SetRiskLevel(v string) *DetectionCreate {
	_c.mutation.SetRiskLevel(v)
	return _c
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_c *DetectionCreate) SetNillableRiskLevel(v *string) *DetectionCreate {
	if v != nil {
		_c.SetRiskLevel(*v)
	}
	return _c
}

// SetHealthAdvice sets the "health_advice" field.
func (_c *DetectionCreate) SetHealthAdvice(v string) *DetectionCreate {
	_c.mutation.SetHealthAdvice(v)
	return _c
}

// SetNillableHealthAdvice sets the "health_advice" field if the given value is not nil.
func (_c *DetectionCreate) SetNillableHealthAdvice(v *string) *DetectionCreate {
	if v != nil {
		_c.SetHealthAdvice(*v)
	}
	return _c
}

// SetAnalysis sets the "analysis" field.
func (_c *DetectionCreate) SetAnalysis(v json.RawMessage) *DetectionCreate {
	_c.mutation.SetAnalysis(v)
	return _c
}

// SetRiskFactors sets the "risk_factors" field.
func (_c *DetectionCreate) SetRiskFactors(v json.RawMessage) *DetectionCreate {
	_c.mutation.SetRiskFactors(v)
	return _c
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (_c *DetectionCreate) SetOcrConfidence(v float32) *DetectionCreate {
	_c.mutation.SetOcrConfidence(v)
	return _c
}

// SetNillableOcrConfidence sets the "ocr_confidence" field if the given value is not nil.
func (_c *DetectionCreate) SetNillableOcrConfidence(v *float32) *DetectionCreate {
	if v != nil {
		_c.SetOcrConfidence(*v)
	}
	return _c
}

// SetProcessingMs sets the "processing_ms" field.
func (_c *DetectionCreate) SetProcessingMs(v int64) *DetectionCreate {
	_c.mutation.SetProcessingMs(v)
	return _c
}

// SetNillableProcessingMs sets the "processing_ms" field if the given value is not nil.
func (_c *DetectionCreate) SetNillableProcessingMs(v *int64) *DetectionCreate {
	if v != nil {
		_c.SetProcessingMs(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *DetectionCreate) SetErrorMessage(v string) *DetectionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *DetectionCreate) SetNillableErrorMessage(v *string) *DetectionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetUserRating sets the "user_rating" field.
func (_c *DetectionCreate) SetUserRating(v int) *DetectionCreate {
	_c.mutation.SetUserRating(v)
	return _c
}

// SetNillableUserRating sets the "user_rating" field if the given value is not nil.
func (_c *DetectionCreate) SetNillableUserRating(v *int) *DetectionCreate {
	if v != nil {
		_c.SetUserRating(*v)
	}
	return _c
}

// SetUserFeedback sets the "user_feedback" field.
func (_c *DetectionCreate) SetUserFeedback(v string) *DetectionCreate {
	_c.mutation.SetUserFeedback(v)
	return _c
}

// SetNillableUserFeedback sets the "user_feedback" field if the given value is not nil.
func (_c *DetectionCreate) SetNillableUserFeedback(v *string) *DetectionCreate {
	if v != nil {
		_c.SetUserFeedback(*v)
	}
	return _c
}

// SetIsAccurate sets the "is_accurate" field.
func (_c *DetectionCreate) SetIsAccurate(v bool) *DetectionCreate {
	_c.mutation.SetIsAccurate(v)
	return _c
}

// SetNillableIsAccurate sets the "is_accurate" field if the given value is not nil.
func (_c *DetectionCreate) SetNillableIsAccurate(v *bool) *DetectionCreate {
	if v != nil {
		_c.SetIsAccurate(*v)
	}
	return _c
}

// SetIsFavorite sets the "is_favorite" field.
func (_c *DetectionCreate) SetIsFavorite(v bool) *DetectionCreate {
	_c.mutation.SetIsFavorite(v)
	return _c
}

// SetNillableIsFavorite sets the "is_favorite" field if the given value is not nil.
func (_c *DetectionCreate) SetNillableIsFavorite(v *bool) *DetectionCreate {
	if v != nil {
		_c.SetIsFavorite(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DetectionCreate) SetCreatedAt(v time.Time) *DetectionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DetectionCreate) SetNillableCreatedAt(v *time.Time) *DetectionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DetectionCreate) SetUpdatedAt(v time.Time) *DetectionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DetectionCreate) SetNillableUpdatedAt(v *time.Time) *DetectionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *DetectionCreate) SetCompletedAt(v time.Time) *DetectionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *DetectionCreate) SetNillableCompletedAt(v *time.Time) *DetectionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DetectionCreate) SetID(v uuid.UUID) *DetectionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DetectionCreate) SetNillableID(v *uuid.UUID) *DetectionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *DetectionCreate) SetUser(v *User) *DetectionCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the DetectionMutation object of the builder.
func (_c *DetectionCreate) Mutation() *DetectionMutation {
	return _c.mutation
}

// Save creates the Detection in the database.
func (_c *DetectionCreate) Save(ctx context.Context) (*Detection, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DetectionCreate) SaveX(ctx context.Context) *Detection {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DetectionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DetectionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DetectionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := detection.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RiskLevel(); !ok {
		v := detection.DefaultRiskLevel
		_c.mutation.SetRiskLevel(v)
	}
	if _, ok := _c.mutation.IsFavorite(); !ok {
		v := detection.DefaultIsFavorite
		_c.mutation.SetIsFavorite(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := detection.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := detection.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := detection.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DetectionCreate) check() error {
	if _, ok := _c.mutation.DetectionType(); !ok {
		return &ValidationError{Name: "detection_type", err: errors.New(`ent: missing required field "Detection.detection_type"`)}
	}
	if v, ok := _c.mutation.DetectionType(); ok {
		if err := detection.DetectionTypeValidator(v); err != nil {
			return &ValidationError{Name: "detection_type", err: fmt.Errorf(`ent: validator failed for field "Detection.detection_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Detection.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := detection.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Detection.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RiskLevel(); !ok {
		return &ValidationError{Name: "risk_level", err: errors.New(`ent: missing required field "Detection.risk_level"`)}
	}
	if v, ok := _c.mutation.RiskLevel(); ok {
		if err := detection.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "Detection.risk_level": %w`, err)}
		}
	}
	if v, ok := _c.mutation.UserRating(); ok {
		if err := detection.UserRatingValidator(v); err != nil {
			return &ValidationError{Name: "user_rating", err: fmt.Errorf(`ent: validator failed for field "Detection.user_rating": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsFavorite(); !ok {
		return &ValidationError{Name: "is_favorite", err: errors.New(`ent: missing required field "Detection.is_favorite"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Detection.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Detection.updated_at"`)}
	}
	return nil
}

func (_c *DetectionCreate) sqlSave(ctx context.Context) (*Detection, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DetectionCreate) createSpec() (*Detection, *sqlgraph.CreateSpec) {
	var (
		_node = &Detection{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(detection.Table, sqlgraph.NewFieldSpec(detection.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.DetectionType(); ok {
		_spec.SetField(detection.FieldDetectionType, field.TypeString, value)
		_node.DetectionType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(detection.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ImagePath(); ok {
		_spec.SetField(detection.FieldImagePath, field.TypeString, value)
		_node.ImagePath = &value
	}
	if value, ok := _c.mutation.RawText(); ok {
		_spec.SetField(detection.FieldRawText, field.TypeString, value)
		_node.RawText = &value
	}
	if value, ok := _c.mutation.Barcode(); ok {
		_spec.SetField(detection.FieldBarcode, field.TypeString, value)
		_node.Barcode = &value
	}
	if value, ok := _c.mutation.ProductName(); ok {
		_spec.SetField(detection.FieldProductName, field.TypeString, value)
		_node.ProductName = &value
	}
	if value, ok := _c.mutation.Brand(); ok {
		_spec.SetField(detection.FieldBrand, field.TypeString, value)
		_node.Brand = &value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(detection.FieldCategory, field.TypeString, value)
		_node.Category = &value
	}
	if value, ok := _c.mutation.EnergyKj(); ok {
		_spec.SetField(detection.FieldEnergyKj, field.TypeFloat64, value)
		_node.EnergyKj = &value
	}
	if value, ok := _c.mutation.EnergyKcal(); ok {
		_spec.SetField(detection.FieldEnergyKcal, field.TypeFloat64, value)
		_node.EnergyKcal = &value
	}
	if value, ok := _c.mutation.Protein(); ok {
		_spec.SetField(detection.FieldProtein, field.TypeFloat64, value)
		_node.Protein = &value
	}
	if value, ok := _c.mutation.Fat(); ok {
		_spec.SetField(detection.FieldFat, field.TypeFloat64, value)
		_node.Fat = &value
	}
	if value, ok := _c.mutation.SaturatedFat(); ok {
		_spec.SetField(detection.FieldSaturatedFat, field.TypeFloat64, value)
		_node.SaturatedFat = &value
	}
	if value, ok := _c.mutation.Carbohydrate(); ok {
		_spec.SetField(detection.FieldCarbohydrate, field.TypeFloat64, value)
		_node.Carbohydrate = &value
	}
	if value, ok := _c.mutation.Sugar(); ok {
		_spec.SetField(detection.FieldSugar, field.TypeFloat64, value)
		_node.Sugar = &value
	}
	if value, ok := _c.mutation.Fiber(); ok {
		_spec.SetField(detection.FieldFiber, field.TypeFloat64, value)
		_node.Fiber = &value
	}
	if value, ok := _c.mutation.Sodium(); ok {
		_spec.SetField(detection.FieldSodium, field.TypeFloat64, value)
		_node.Sodium = &value
	}
	if value, ok := _c.mutation.OtherNutrients(); ok {
		_spec.SetField(detection.FieldOtherNutrients, field.TypeJSON, value)
		_node.OtherNutrients = value
	}
	if value, ok := _c.mutation.HealthScore(); ok {
		_spec.SetField(detection.FieldHealthScore, field.TypeFloat64, value)
		_node.HealthScore = &value
	}
	if value, ok := _c.mutation.RiskLevel(); ok {
		_spec.SetField(detection.FieldRiskLevel, field.TypeString, value)
		_node.RiskLevel = value
	}
	if value, ok := _c.mutation.HealthAdvice(); ok {
		_spec.SetField(detection.FieldHealthAdvice, field.TypeString, value)
		_node.HealthAdvice = &value
	}
	if value, ok := _c.mutation.Analysis(); ok {
		_spec.SetField(detection.FieldAnalysis, field.TypeJSON, value)
		_node.Analysis = value
	}
	if value, ok := _c.mutation.RiskFactors(); ok {
		_spec.SetField(detection.FieldRiskFactors, field.TypeJSON, value)
		_node.RiskFactors = value
	}
	if value, ok := _c.mutation.OcrConfidence(); ok {
		_spec.SetField(detection.FieldOcrConfidence, field.TypeFloat32, value)
		_node.OcrConfidence = &value
	}
	if value, ok := _c.mutation.ProcessingMs(); ok {
		_spec.SetField(detection.FieldProcessingMs, field.TypeInt64, value)
		_node.ProcessingMs = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(detection.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.UserRating(); ok {
		_spec.SetField(detection.FieldUserRating, field.TypeInt, value)
		_node.UserRating = &value
	}
	if value, ok := _c.mutation.UserFeedback(); ok {
		_spec.SetField(detection.FieldUserFeedback, field.TypeString, value)
		_node.UserFeedback = &value
	}
	if value, ok := _c.mutation.IsAccurate(); ok {
		_spec.SetField(detection.FieldIsAccurate, field.TypeBool, value)
		_node.IsAccurate = &value
	}
	if value, ok := _c.mutation.IsFavorite(); ok {
		_spec.SetField(detection.FieldIsFavorite, field.TypeBool, value)
		_node.IsFavorite = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(detection.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(detection.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(detection.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   detection.UserTable,
			Columns: []string{detection.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UserID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DetectionCreateBulk is the builder for creating many Detection entities in bulk.
type DetectionCreateBulk struct {
	config
	err      error
	builders []*DetectionCreate
}

// Save creates the Detection entities in the database.
func (_c *DetectionCreateBulk) Save(ctx context.Context) ([]*Detection, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Detection, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DetectionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DetectionCreateBulk) SaveX(ctx context.Context) []*Detection {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DetectionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DetectionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
