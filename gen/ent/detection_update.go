// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/nutriscan/nutrition-scanner/gen/ent/detection"
	"github.com/nutriscan/nutrition-scanner/gen/ent/predicate"
	"github.com/nutriscan/nutrition-scanner/gen/ent/user"
)

// DetectionUpdate is the builder for updating Detection entities.
type DetectionUpdate struct {
	config
	hooks    []Hook
	mutation *DetectionMutation
}

// Where appends a list predicates to the DetectionUpdate builder.
func (_u *DetectionUpdate) Where(ps ...predicate.Detection) *DetectionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *DetectionUpdate) SetUserID(v uuid.UUID) *DetectionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DetectionUpdate) SetNillableUserID(v *uuid.UUID) *DetectionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *DetectionUpdate) ClearUserID() *DetectionUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetDetectionType sets the "detection_type" field.
func (_u *DetectionUpdate) SetDetectionType(v string) *DetectionUpdate {
	_u.mutation.SetDetectionType(v)
	return _u
}

// SetNillableDetectionType sets the "detection_type" field if the given value is not nil.
func (_u *DetectionUpdate) SetNillableDetectionType(v *string) *DetectionUpdate {
	if v != nil {
		_u.SetDetectionType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DetectionUpdate) SetStatus(v string) *DetectionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DetectionUpdate) SetNillableStatus(v *string) *DetectionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetImagePath sets the "image_path" field.
func (_u *DetectionUpdate) SetImagePath(v string) *DetectionUpdate {
	_u.mutation.SetImagePath(v)
	return _u
}

// SetNillableImagePath sets the "image_path" field if the given value is not nil.
func (_u *DetectionUpdate) SetNillableImagePath(v *string) *DetectionUpdate {
	if v != nil {
		_u.SetImagePath(*v)
	}
	return _u
}

// ClearImagePath clears the value of the "image_path" field.
func (_u *DetectionUpdate) ClearImagePath() *DetectionUpdate {
	_u.mutation.ClearImagePath()
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *DetectionUpdate) SetRawText(v string) *DetectionUpdate {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *DetectionUpdate) SetNillableRawText(v *string) *DetectionUpdate {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *DetectionUpdate) ClearRawText() *DetectionUpdate {
	_u.mutation.ClearRawText()
	return _u
}

// SetBarcode sets the "barcode" field.
func (_u *DetectionUpdate) SetBarcode(v string) *DetectionUpdate {
	_u.mutation.SetBarcode(v)
	return _u
}

// SetNillableBarcode sets the "barcode" field if the given value is not nil.
func (_u *DetectionUpdate) SetNillableBarcode(v *string) *DetectionUpdate {
	if v != nil {
		_u.SetBarcode(*v)
	}
	return _u
}

// ClearBarcode clears the value of the "barcode" field.
func (_u *DetectionUpdate) ClearBarcode() *DetectionUpdate {
	_u.mutation.ClearBarcode()
	return _u
}

// SetProductName sets the "product_name" field.
func (_u *DetectionUpdate) SetProductName(v string) *DetectionUpdate {
	_u.mutation.SetProductName(v)
	return _u
}

// SetNillableProductName sets the "product_name" field if the given value is not nil.
func (_u *DetectionUpdate) SetNillableProductName(v *string) *DetectionUpdate {
	if v != nil {
		_u.SetProductName(*v)
	}
	return _u
}

// ClearProductName clears the value of the "product_name" field.
func (_u *DetectionUpdate) ClearProductName() *DetectionUpdate {
	_u.mutation.ClearProductName()
	return _u
}

// SetBrand sets the "brand" field.
func (_u *DetectionUpdate) SetBrand(v string) *DetectionUpdate {
	_u.mutation.SetBrand(v)
	return _u
}

// SetNillableBrand sets the "brand" field if the given value is not nil.
func (_u *DetectionUpdate) SetNillableBrand(v *string) *DetectionUpdate {
	if v != nil {
		_u.SetBrand(*v)
	}
	return _u
}

// ClearBrand clears the value of the "brand" field.
func (_u *DetectionUpdate) ClearBrand() *DetectionUpdate {
	_u.mutation.ClearBrand()
	return _u
}

// SetCategory sets the "category" field.
func (_u *DetectionUpdate) SetCategory(v string) *DetectionUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *DetectionUpdate) SetNillableCategory(v *string) *DetectionUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *DetectionUpdate) ClearCategory() *DetectionUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetEnergyKj sets the "energy_kj" field.
func (_u *DetectionUpdate) SetEnergyKj(v float64) *DetectionUpdate {
	_u.mutation.ResetEnergyKj()
	_u.mutation.SetEnergyKj(v)
	return _u
}

// SetNillableEnergyKj sets the "energy_kj" field if the given value is not nil.
func (_u *DetectionUpdate) SetNillableEnergyKj(v *float64) *DetectionUpdate {
	if v != nil {
		_u.SetEnergyKj(*v)
	}
	return _u
}

// AddEnergyKj adds value to the "energy_kj" field.
func (_u *DetectionUpdate) AddEnergyKj(v float64) *DetectionUpdate {
	_u.mutation.AddEnergyKj(v)
	return _u
}

// ClearEnergyKj clears the value of the "energy_kj" field.
func (_u *DetectionUpdate) ClearEnergyKj() *DetectionUpdate {
	_u.mutation.ClearEnergyKj()
	return _u
}

// SetEnergyKcal sets the "energy_kcal" field.
func (_u *DetectionUpdate) SetEnergyKcal(v float64) *DetectionUpdate {
	_u.mutation.ResetEnergyKcal()
	_u.mutation.SetEnergyKcal(v)
	return _u
}

// SetNillableEnergyKcal sets the "energy_kcal" field if the given value is not nil.
func (_u *DetectionUpdate) SetNillableEnergyKcal(v *float64) *DetectionUpdate {
	if v != nil {
		_u.SetEnergyKcal(*v)
	}
	return _u
}

// AddEnergyKcal adds value to the "energy_kcal" field.
func (_u *DetectionUpdate) AddEnergyKcal(v float64) *DetectionUpdate {
	_u.mutation.AddEnergyKcal(v)
	return _u
}

// ClearEnergyKcal clears the value of the "energy_kcal" field.
func (_u *DetectionUpdate) ClearEnergyKcal() *DetectionUpdate {
	_u.mutation.ClearEnergyKcal()
	return _u
}

// SetProtein sets the "protein" field.
func (_u *DetectionUpdate) SetProtein(v float64) *DetectionUpdate {
	_u.mutation.ResetProtein()
	_u.mutation.SetProtein(v)
	return _u
}

// SetNillableProtein sets the "protein" field if the given value is not nil.
func (_u *DetectionUpdate) SetNillableProtein(v *float64) *DetectionUpdate {
	if v != nil {
		_u.SetProtein(*v)
	}
	return _u
}

// AddProtein adds value to the "protein" field.
func (_u *DetectionUpdate) AddProtein(v float64) *DetectionUpdate {
	_u.mutation.AddProtein(v)
	return _u
}

// ClearProtein clears the value of the "protein" field.
func (_u *DetectionUpdate) ClearProtein() *DetectionUpdate {
	_u.mutation.ClearProtein()
	return _u
}

// SetFat sets the "fat" field.
func (_u *DetectionUpdate) SetFat(v float64) *DetectionUpdate {
	_u.mutation.ResetFat()
	_u.mutation.SetFat(v)
	return _u
}

// SetNillableFat sets the "fat" field if the given value is not nil.
func (_u *DetectionUpdate) SetNillableFat(v *float64) *DetectionUpdate {
	if v != nil {
		_u.SetFat(*v)
	}
	return _u
}

// AddFat adds value to the "fat" field.
func (_u *DetectionUpdate) AddFat(v float64) *DetectionUpdate {
	_u.mutation.AddFat(v)
	return _u
}

// ClearFat clears the value of the "fat" field.
func (_u *DetectionUpdate) ClearFat() *DetectionUpdate {
	_u.mutation.ClearFat()
	return _u
}

// SetSaturatedFat sets the "saturated_fat" field.
func (_u *DetectionUpdate) SetSaturatedFat(v float64) *DetectionUpdate {
	_u.mutation.ResetSaturatedFat()
	_u.mutation.SetSaturatedFat(v)
	return _u
}

// SetNillableSaturatedFat sets the "saturated_fat" field if the given value is not nil.
func (_u *DetectionUpdate) SetNillableSaturatedFat(v *float64) *DetectionUpdate {
	if v != nil {
		_u.SetSaturatedFat(*v)
	}
	return _u
}

// AddSaturatedFat adds value to the "saturated_fat" field.
func (_u *DetectionUpdate) AddSaturatedFat(v float64) *DetectionUpdate {
	_u.mutation.AddSaturatedFat(v)
	return _u
}

// ClearSaturatedFat clears the value of the "saturated_fat" field.
func (_u *DetectionUpdate) ClearSaturatedFat() *DetectionUpdate {
	_u.mutation.ClearSaturatedFat()
	return _u
}

// SetCarbohydrate sets the "carbohydrate" field.
func (_u *DetectionUpdate) SetCarbohydrate(v float64) *DetectionUpdate {
	_u.mutation.ResetCarbohydrate()
	_u.mutation.SetCarbohydrate(v)
	return _u
}

// SetNillableCarbohydrate sets the "carbohydrate" field if the given value is not nil.
func (_u *DetectionUpdate) SetNillableCarbohydrate(v *float64) *DetectionUpdate {
	if v != nil {
		_u.SetCarbohydrate(*v)
	}
	return _u
}

// AddCarbohydrate adds value to the "carbohydrate" field.
func (_u *DetectionUpdate) AddCarbohydrate(v float64) *DetectionUpdate {
	_u.mutation.AddCarbohydrate(v)
	return _u
}

// ClearCarbohydrate clears the value of the "carbohydrate" field.
func (_u *DetectionUpdate) ClearCarbohydrate() *DetectionUpdate {
	_u.mutation.ClearCarbohydrate()
	return _u
}

// SetSugar sets the "sugar" field.
func (_u *DetectionUpdate) SetSugar(v float64) *DetectionUpdate {
	_u.mutation.ResetSugar()
	_u.mutation.SetSugar(v)
	return _u
}

// SetNillableSugar sets the "sugar" field if the given value is not nil.
func (_u *DetectionUpdate) SetNillableSugar(v *float64) *DetectionUpdate {
	if v != nil {
		_u.SetSugar(*v)
	}
	return _u
}

// AddSugar adds value to the "sugar" field.
func (_u *DetectionUpdate) AddSugar(v float64) *DetectionUpdate {
	_u.mutation.AddSugar(v)
	return _u
}

// ClearSugar clears the value of the "sugar" field.
func (_u *DetectionUpdate) ClearSugar() *DetectionUpdate {
	_u.mutation.ClearSugar()
	return _u
}

// SetFiber sets the "fiber" field.
func (_u *DetectionUpdate) SetFiber(v float64) *DetectionUpdate {
	_u.mutation.ResetFiber()
	_u.mutation.SetFiber(v)
	return _u
}

// SetNillableFiber sets the "fiber" field if the given value is not nil.
func (_u *DetectionUpdate) SetNillableFiber(v *float64) *DetectionUpdate {
	if v != nil {
		_u.SetFiber(*v)
	}
	return _u
}

// AddFiber adds value to the "fiber" field.
func (_u *DetectionUpdate) AddFiber(v float64) *DetectionUpdate {
	_u.mutation.AddFiber(v)
	return _u
}

// ClearFiber clears the value of the "fiber" field.
func (_u *DetectionUpdate) ClearFiber() *DetectionUpdate {
	_u.mutation.ClearFiber()
	return _u
}

// SetSodium sets the "sodium" field.
func (_u *DetectionUpdate) SetSodium(v float64) *DetectionUpdate {
	_u.mutation.ResetSodium()
	_u.mutation.SetSodium(v)
	return _u
}

// SetNillableSodium sets the "sodium" field if the given value is not nil.
func (_u *DetectionUpdate) SetNillableSodium(v *float64) *DetectionUpdate {
	if v != nil {
		_u.SetSodium(*v)
	}
	return _u
}

// AddSodium adds value to the "sodium" field.
func (_u *DetectionUpdate) AddSodium(v float64) *DetectionUpdate {
	_u.mutation.AddSodium(v)
	return _u
}

// ClearSodium clears the value of the "sodium" field.
func (_u *DetectionUpdate) ClearSodium() *DetectionUpdate {
	_u.mutation.ClearSodium()
	return _u
}

// SetOtherNutrients sets the "other_nutrients" field.
func (_u *DetectionUpdate) SetOtherNutrients(v json.RawMessage) *DetectionUpdate {
	_u.mutation.SetOtherNutrients(v)
	return _u
}

// AppendOtherNutrients appends value to the "other_nutrients" field.
func (_u *DetectionUpdate) AppendOtherNutrients(v json.RawMessage) *DetectionUpdate {
	_u.mutation.AppendOtherNutrients(v)
	return _u
}

// ClearOtherNutrients clears the value of the "other_nutrients" field.
func (_u *DetectionUpdate) ClearOtherNutrients() *DetectionUpdate {
	_u.mutation.ClearOtherNutrients()
	return _u
}

// SetHealthScore sets the "health_score" field.
func (_u *DetectionUpdate) SetHealthScore(v float64) *DetectionUpdate {
	_u.mutation.ResetHealthScore()
	_u.mutation.SetHealthScore(v)
	return _u
}

// SetNillableHealthScore sets the "health_score" field if the given value is not nil.
func (_u *DetectionUpdate) SetNillableHealthScore(v *float64) *DetectionUpdate {
	if v != nil {
		_u.SetHealthScore(*v)
	}
	return _u
}

// AddHealthScore adds value to the "health_score" field.
func (_u *DetectionUpdate) AddHealthScore(v float64) *DetectionUpdate {
	_u.mutation.AddHealthScore(v)
	return _u
}

// ClearHealthScore clears the value of the "health_score" field.
func (_u *DetectionUpdate) ClearHealthScore() *DetectionUpdate {
	_u.mutation.ClearHealthScore()
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *DetectionUpdate) SetRiskLevel(v string) *DetectionUpdate {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *DetectionUpdate) SetNillableRiskLevel(v *string) *DetectionUpdate {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// SetHealthAdvice sets the "health_advice" field.
func (_u *DetectionUpdate) SetHealthAdvice(v string) *DetectionUpdate {
	_u.mutation.SetHealthAdvice(v)
	return _u
}

// SetNillableHealthAdvice sets the "health_advice" field if the given value is not nil.
func (_u *DetectionUpdate) SetNillableHealthAdvice(v *string) *DetectionUpdate {
	if v != nil {
		_u.SetHealthAdvice(*v)
	}
	return _u
}

// ClearHealthAdvice clears the value of the "health_advice" field.
func (_u *DetectionUpdate) ClearHealthAdvice() *DetectionUpdate {
	_u.mutation.ClearHealthAdvice()
	return _u
}

// SetAnalysis sets the "analysis" field.
func (_u *DetectionUpdate) SetAnalysis(v json.RawMessage) *DetectionUpdate {
	_u.mutation.SetAnalysis(v)
	return _u
}

// AppendAnalysis appends value to the "analysis" field.
func (_u *DetectionUpdate) AppendAnalysis(v json.RawMessage) *DetectionUpdate {
	_u.mutation.AppendAnalysis(v)
	return _u
}

// ClearAnalysis clears the value of the "analysis" field.
func (_u *DetectionUpdate) ClearAnalysis() *DetectionUpdate {
	_u.mutation.ClearAnalysis()
	return _u
}

// SetRiskFactors sets the "risk_factors" field.
func (_u *DetectionUpdate) SetRiskFactors(v json.RawMessage) *DetectionUpdate {
	_u.mutation.SetRiskFactors(v)
	return _u
}

// AppendRiskFactors appends value to the "risk_factors" field.
func (_u *DetectionUpdate) AppendRiskFactors(v json.RawMessage) *DetectionUpdate {
	_u.mutation.AppendRiskFactors(v)
	return _u
}

// ClearRiskFactors clears the value of the "risk_factors" field.
func (_u *DetectionUpdate) ClearRiskFactors() *DetectionUpdate {
	_u.mutation.ClearRiskFactors()
	return _u
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (_u *DetectionUpdate) SetOcrConfidence(v float32) *DetectionUpdate {
	_u.mutation.ResetOcrConfidence()
	_u.mutation.SetOcrConfidence(v)
	return _u
}

// SetNillableOcrConfidence sets the "ocr_confidence" field if the given value is not nil.
func (_u *DetectionUpdate) SetNillableOcrConfidence(v *float32) *DetectionUpdate {
	if v != nil {
		_u.SetOcrConfidence(*v)
	}
	return _u
}

// AddOcrConfidence adds value to the "ocr_confidence" field.
func (_u *DetectionUpdate) AddOcrConfidence(v float32) *DetectionUpdate {
	_u.mutation.AddOcrConfidence(v)
	return _u
}

// ClearOcrConfidence clears the value of the "ocr_confidence" field.
func (_u *DetectionUpdate) ClearOcrConfidence() *DetectionUpdate {
	_u.mutation.ClearOcrConfidence()
	return _u
}

// SetProcessingMs sets the "processing_ms" field.
func (_u *DetectionUpdate) SetProcessingMs(v int64) *DetectionUpdate {
	_u.mutation.ResetProcessingMs()
	_u.mutation.SetProcessingMs(v)
	return _u
}

// SetNillableProcessingMs sets the "processing_ms" field if the given value is not nil.
func (_u *DetectionUpdate) SetNillableProcessingMs(v *int64) *DetectionUpdate {
	if v != nil {
		_u.SetProcessingMs(*v)
	}
	return _u
}

// AddProcessingMs adds value to the "processing_ms" field.
func (_u *DetectionUpdate) AddProcessingMs(v int64) *DetectionUpdate {
	_u.mutation.AddProcessingMs(v)
	return _u
}

// ClearProcessingMs clears the value of the "processing_ms" field.
func (_u *DetectionUpdate) ClearProcessingMs() *DetectionUpdate {
	_u.mutation.ClearProcessingMs()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DetectionUpdate) SetErrorMessage(v string) *DetectionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DetectionUpdate) SetNillableErrorMessage(v *string) *DetectionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DetectionUpdate) ClearErrorMessage() *DetectionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUserRating sets the "user_rating" field.
func (_u *DetectionUpdate) SetUserRating(v int) *DetectionUpdate {
	_u.mutation.ResetUserRating()
	_u.mutation.SetUserRating(v)
	return _u
}

// SetNillableUserRating sets the "user_rating" field if the given value is not nil.
func (_u *DetectionUpdate) SetNillableUserRating(v *int) *DetectionUpdate {
	if v != nil {
		_u.SetUserRating(*v)
	}
	return _u
}

// AddUserRating adds value to the "user_rating" field.
func (_u *DetectionUpdate) AddUserRating(v int) *DetectionUpdate {
	_u.mutation.AddUserRating(v)
	return _u
}

// ClearUserRating clears the value of the "user_rating" field.
func (_u *DetectionUpdate) ClearUserRating() *DetectionUpdate {
	_u.mutation.ClearUserRating()
	return _u
}

// SetUserFeedback sets the "user_feedback" field.
func (_u *DetectionUpdate) SetUserFeedback(v string) *DetectionUpdate {
	_u.mutation.SetUserFeedback(v)
	return _u
}

// SetNillableUserFeedback sets the "user_feedback" field if the given value is not nil.
func (_u *DetectionUpdate) SetNillableUserFeedback(v *string) *DetectionUpdate {
	if v != nil {
		_u.SetUserFeedback(*v)
	}
	return _u
}

// ClearUserFeedback clears the value of the "user_feedback" field.
func (_u *DetectionUpdate) ClearUserFeedback() *DetectionUpdate {
	_u.mutation.ClearUserFeedback()
	return _u
}

// SetIsAccurate sets the "is_accurate" field.
func (_u *DetectionUpdate) SetIsAccurate(v bool) *DetectionUpdate {
	_u.mutation.SetIsAccurate(v)
	return _u
}

// SetNillableIsAccurate sets the "is_accurate" field if the given value is not nil.
func (_u *DetectionUpdate) SetNillableIsAccurate(v *bool) *DetectionUpdate {
	if v != nil {
		_u.SetIsAccurate(*v)
	}
	return _u
}

// ClearIsAccurate clears the value of the "is_accurate" field.
func (_u *DetectionUpdate) ClearIsAccurate() *DetectionUpdate {
	_u.mutation.ClearIsAccurate()
	return _u
}

// SetIsFavorite sets the "is_favorite" field.
func (_u *DetectionUpdate) SetIsFavorite(v bool) *DetectionUpdate {
	_u.mutation.SetIsFavorite(v)
	return _u
}

// SetNillableIsFavorite sets the "is_favorite" field if the given value is not nil.
func (_u *DetectionUpdate) SetNillableIsFavorite(v *bool) *DetectionUpdate {
	if v != nil {
		_u.SetIsFavorite(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DetectionUpdate) SetUpdatedAt(v time.Time) *DetectionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *DetectionUpdate) SetCompletedAt(v time.Time) *DetectionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *DetectionUpdate) SetNillableCompletedAt(v *time.Time) *DetectionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *DetectionUpdate) ClearCompletedAt() *DetectionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *DetectionUpdate) SetUser(v *User) *DetectionUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the DetectionMutation object of the builder.
func (_u *DetectionUpdate) Mutation() *DetectionMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *DetectionUpdate) ClearUser() *DetectionUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DetectionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DetectionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DetectionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DetectionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DetectionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := detection.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DetectionUpdate) check() error {
	if v, ok := _u.mutation.DetectionType(); ok {
		if err := detection.DetectionTypeValidator(v); err != nil {
			return &ValidationError{Name: "detection_type", err: fmt.Errorf(`ent: validator failed for field "Detection.detection_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := detection.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Detection.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RiskLevel(); ok {
		if err := detection.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "Detection.risk_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserRating(); ok {
		if err := detection.UserRatingValidator(v); err != nil {
			return &ValidationError{Name: "user_rating", err: fmt.Errorf(`ent: validator failed for field "Detection.user_rating": %w`, err)}
		}
	}
	return nil
}

func (_u *DetectionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(detection.Table, detection.Columns, sqlgraph.NewFieldSpec(detection.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DetectionType(); ok {
		_spec.SetField(detection.FieldDetectionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(detection.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImagePath(); ok {
		_spec.SetField(detection.FieldImagePath, field.TypeString, value)
	}
	if _u.mutation.ImagePathCleared() {
		_spec.ClearField(detection.FieldImagePath, field.TypeString)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(detection.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(detection.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.Barcode(); ok {
		_spec.SetField(detection.FieldBarcode, field.TypeString, value)
	}
	if _u.mutation.BarcodeCleared() {
		_spec.ClearField(detection.FieldBarcode, field.TypeString)
	}
	if value, ok := _u.mutation.ProductName(); ok {
		_spec.SetField(detection.FieldProductName, field.TypeString, value)
	}
	if _u.mutation.ProductNameCleared() {
		_spec.ClearField(detection.FieldProductName, field.TypeString)
	}
	if value, ok := _u.mutation.Brand(); ok {
		_spec.SetField(detection.FieldBrand, field.TypeString, value)
	}
	if _u.mutation.BrandCleared() {
		_spec.ClearField(detection.FieldBrand, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(detection.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(detection.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.EnergyKj(); ok {
		_spec.SetField(detection.FieldEnergyKj, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEnergyKj(); ok {
		_spec.AddField(detection.FieldEnergyKj, field.TypeFloat64, value)
	}
	if _u.mutation.EnergyKjCleared() {
		_spec.ClearField(detection.FieldEnergyKj, field.TypeFloat64)
	}
	if value, ok := _u.mutation.EnergyKcal(); ok {
		_spec.SetField(detection.FieldEnergyKcal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEnergyKcal(); ok {
		_spec.AddField(detection.FieldEnergyKcal, field.TypeFloat64, value)
	}
	if _u.mutation.EnergyKcalCleared() {
		_spec.ClearField(detection.FieldEnergyKcal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Protein(); ok {
		_spec.SetField(detection.FieldProtein, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProtein(); ok {
		_spec.AddField(detection.FieldProtein, field.TypeFloat64, value)
	}
	if _u.mutation.ProteinCleared() {
		_spec.ClearField(detection.FieldProtein, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Fat(); ok {
		_spec.SetField(detection.FieldFat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFat(); ok {
		_spec.AddField(detection.FieldFat, field.TypeFloat64, value)
	}
	if _u.mutation.FatCleared() {
		_spec.ClearField(detection.FieldFat, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SaturatedFat(); ok {
		_spec.SetField(detection.FieldSaturatedFat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSaturatedFat(); ok {
		_spec.AddField(detection.FieldSaturatedFat, field.TypeFloat64, value)
	}
	if _u.mutation.SaturatedFatCleared() {
		_spec.ClearField(detection.FieldSaturatedFat, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Carbohydrate(); ok {
		_spec.SetField(detection.FieldCarbohydrate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCarbohydrate(); ok {
		_spec.AddField(detection.FieldCarbohydrate, field.TypeFloat64, value)
	}
	if _u.mutation.CarbohydrateCleared() {
		_spec.ClearField(detection.FieldCarbohydrate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Sugar(); ok {
		_spec.SetField(detection.FieldSugar, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSugar(); ok {
		_spec.AddField(detection.FieldSugar, field.TypeFloat64, value)
	}
	if _u.mutation.SugarCleared() {
		_spec.ClearField(detection.FieldSugar, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Fiber(); ok {
		_spec.SetField(detection.FieldFiber, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFiber(); ok {
		_spec.AddField(detection.FieldFiber, field.TypeFloat64, value)
	}
	if _u.mutation.FiberCleared() {
		_spec.ClearField(detection.FieldFiber, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Sodium(); ok {
		_spec.SetField(detection.FieldSodium, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSodium(); ok {
		_spec.AddField(detection.FieldSodium, field.TypeFloat64, value)
	}
	if _u.mutation.SodiumCleared() {
		_spec.ClearField(detection.FieldSodium, field.TypeFloat64)
	}
	if value, ok := _u.mutation.OtherNutrients(); ok {
		_spec.SetField(detection.FieldOtherNutrients, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOtherNutrients(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, detection.FieldOtherNutrients, value)
		})
	}
	if _u.mutation.OtherNutrientsCleared() {
		_spec.ClearField(detection.FieldOtherNutrients, field.TypeJSON)
	}
	if value, ok := _u.mutation.HealthScore(); ok {
		_spec.SetField(detection.FieldHealthScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHealthScore(); ok {
		_spec.AddField(detection.FieldHealthScore, field.TypeFloat64, value)
	}
	if _u.mutation.HealthScoreCleared() {
		_spec.ClearField(detection.FieldHealthScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(detection.FieldRiskLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.HealthAdvice(); ok {
		_spec.SetField(detection.FieldHealthAdvice, field.TypeString, value)
	}
	if _u.mutation.HealthAdviceCleared() {
		_spec.ClearField(detection.FieldHealthAdvice, field.TypeString)
	}
	if value, ok := _u.mutation.Analysis(); ok {
		_spec.SetField(detection.FieldAnalysis, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnalysis(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, detection.FieldAnalysis, value)
		})
	}
	if _u.mutation.AnalysisCleared() {
		_spec.ClearField(detection.FieldAnalysis, field.TypeJSON)
	}
	if value, ok := _u.mutation.RiskFactors(); ok {
		_spec.SetField(detection.FieldRiskFactors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRiskFactors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, detection.FieldRiskFactors, value)
		})
	}
	if _u.mutation.RiskFactorsCleared() {
		_spec.ClearField(detection.FieldRiskFactors, field.TypeJSON)
	}
	if value, ok := _u.mutation.OcrConfidence(); ok {
		_spec.SetField(detection.FieldOcrConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedOcrConfidence(); ok {
		_spec.AddField(detection.FieldOcrConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.OcrConfidenceCleared() {
		_spec.ClearField(detection.FieldOcrConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.ProcessingMs(); ok {
		_spec.SetField(detection.FieldProcessingMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedProcessingMs(); ok {
		_spec.AddField(detection.FieldProcessingMs, field.TypeInt64, value)
	}
	if _u.mutation.ProcessingMsCleared() {
		_spec.ClearField(detection.FieldProcessingMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(detection.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(detection.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UserRating(); ok {
		_spec.SetField(detection.FieldUserRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserRating(); ok {
		_spec.AddField(detection.FieldUserRating, field.TypeInt, value)
	}
	if _u.mutation.UserRatingCleared() {
		_spec.ClearField(detection.FieldUserRating, field.TypeInt)
	}
	if value, ok := _u.mutation.UserFeedback(); ok {
		_spec.SetField(detection.FieldUserFeedback, field.TypeString, value)
	}
	if _u.mutation.UserFeedbackCleared() {
		_spec.ClearField(detection.FieldUserFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.IsAccurate(); ok {
		_spec.SetField(detection.FieldIsAccurate, field.TypeBool, value)
	}
	if _u.mutation.IsAccurateCleared() {
		_spec.ClearField(detection.FieldIsAccurate, field.TypeBool)
	}
	if value, ok := _u.mutation.IsFavorite(); ok {
		_spec.SetField(detection.FieldIsFavorite, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(detection.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(detection.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(detection.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{detection.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DetectionUpdateOne is the builder for updating a single Detection entity.
type DetectionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DetectionMutation
}

// SetUserID sets the "user_id" field.
func (_u *DetectionUpdateOne) SetUserID(v uuid.UUID) *DetectionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DetectionUpdateOne) SetNillableUserID(v *uuid.UUID) *DetectionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *DetectionUpdateOne) ClearUserID() *DetectionUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetDetectionType sets the "detection_type" field.
func (_u *DetectionUpdateOne) SetDetectionType(v string) *DetectionUpdateOne {
	_u.mutation.SetDetectionType(v)
	return _u
}

// SetNillableDetectionType sets the "detection_type" field if the given value is not nil.
func (_u *DetectionUpdateOne) SetNillableDetectionType(v *string) *DetectionUpdateOne {
	if v != nil {
		_u.SetDetectionType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DetectionUpdateOne) SetStatus(v string) *DetectionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DetectionUpdateOne) SetNillableStatus(v *string) *DetectionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetImagePath sets the "image_path" field.
func (_u *DetectionUpdateOne) SetImagePath(v string) *DetectionUpdateOne {
	_u.mutation.SetImagePath(v)
	return _u
}

// SetNillableImagePath sets the "image_path" field if the given value is not nil.
func (_u *DetectionUpdateOne) SetNillableImagePath(v *string) *DetectionUpdateOne {
	if v != nil {
		_u.SetImagePath(*v)
	}
	return _u
}

// ClearImagePath clears the value of the "image_path" field.
func (_u *DetectionUpdateOne) ClearImagePath() *DetectionUpdateOne {
	_u.mutation.ClearImagePath()
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *DetectionUpdateOne) SetRawText(v string) *DetectionUpdateOne {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *DetectionUpdateOne) SetNillableRawText(v *string) *DetectionUpdateOne {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *DetectionUpdateOne) ClearRawText() *DetectionUpdateOne {
	_u.mutation.ClearRawText()
	return _u
}

// SetBarcode sets the "barcode" field.
func (_u *DetectionUpdateOne) SetBarcode(v string) *DetectionUpdateOne {
	_u.mutation.SetBarcode(v)
	return _u
}

// SetNillableBarcode sets the "barcode" field if the given value is not nil.
func (_u *DetectionUpdateOne) SetNillableBarcode(v *string) *DetectionUpdateOne {
	if v != nil {
		_u.SetBarcode(*v)
	}
	return _u
}

// ClearBarcode clears the value of the "barcode" field.
func (_u *DetectionUpdateOne) ClearBarcode() *DetectionUpdateOne {
	_u.mutation.ClearBarcode()
	return _u
}

// SetProductName sets the "product_name" field.
func (_u *DetectionUpdateOne) SetProductName(v string) *DetectionUpdateOne {
	_u.mutation.SetProductName(v)
	return _u
}

// SetNillableProductName sets the "product_name" field if the given value is not nil.
func (_u *DetectionUpdateOne) SetNillableProductName(v *string) *DetectionUpdateOne {
	if v != nil {
		_u.SetProductName(*v)
	}
	return _u
}

// ClearProductName clears the value of the "product_name" field.
func (_u *DetectionUpdateOne) ClearProductName() *DetectionUpdateOne {
	_u.mutation.ClearProductName()
	return _u
}

// SetBrand sets the "brand" field.
func (_u *DetectionUpdateOne) SetBrand(v string) *DetectionUpdateOne {
	_u.mutation.SetBrand(v)
	return _u
}

// SetNillableBrand sets the "brand" field if the given value is not nil.
func (_u *DetectionUpdateOne) SetNillableBrand(v *string) *DetectionUpdateOne {
	if v != nil {
		_u.SetBrand(*v)
	}
	return _u
}

// ClearBrand clears the value of the "brand" field.
func (_u *DetectionUpdateOne) ClearBrand() *DetectionUpdateOne {
	_u.mutation.ClearBrand()
	return _u
}

// SetCategory sets the "category" field.
func (_u *DetectionUpdateOne) SetCategory(v string) *DetectionUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *DetectionUpdateOne) SetNillableCategory(v *string) *DetectionUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *DetectionUpdateOne) ClearCategory() *DetectionUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetEnergyKj sets the "energy_kj" field.
func (_u *DetectionUpdateOne) SetEnergyKj(v float64) *DetectionUpdateOne {
	_u.mutation.ResetEnergyKj()
	_u.mutation.SetEnergyKj(v)
	return _u
}

// SetNillableEnergyKj sets the "energy_kj" field if the given value is not nil.
func (_u *DetectionUpdateOne) SetNillableEnergyKj(v *float64) *DetectionUpdateOne {
	if v != nil {
		_u.SetEnergyKj(*v)
	}
	return _u
}

// AddEnergyKj adds value to the "energy_kj" field.
func (_u *DetectionUpdateOne) AddEnergyKj(v float64) *DetectionUpdateOne {
	_u.mutation.AddEnergyKj(v)
	return _u
}

// ClearEnergyKj clears the value of the "energy_kj" field.
func (_u *DetectionUpdateOne) ClearEnergyKj() *DetectionUpdateOne {
	_u.mutation.ClearEnergyKj()
	return _u
}

// SetEnergyKcal sets the "energy_kcal" field.
func (_u *DetectionUpdateOne) SetEnergyKcal(v float64) *DetectionUpdateOne {
	_u.mutation.ResetEnergyKcal()
	_u.mutation.SetEnergyKcal(v)
	return _u
}

// SetNillableEnergyKcal sets the "energy_kcal" field if the given value is not nil.
func (_u *DetectionUpdateOne) SetNillableEnergyKcal(v *float64) *DetectionUpdateOne {
	if v != nil {
		_u.SetEnergyKcal(*v)
	}
	return _u
}

// AddEnergyKcal adds value to the "energy_kcal" field.
func (_u *DetectionUpdateOne) AddEnergyKcal(v float64) *DetectionUpdateOne {
	_u.mutation.AddEnergyKcal(v)
	return _u
}

// ClearEnergyKcal clears the value of the "energy_kcal" field.
func (_u *DetectionUpdateOne) ClearEnergyKcal() *DetectionUpdateOne {
	_u.mutation.ClearEnergyKcal()
	return _u
}

// SetProtein sets the "protein" field.
func (_u *DetectionUpdateOne) SetProtein(v float64) *DetectionUpdateOne {
	_u.mutation.ResetProtein()
	_u.mutation.SetProtein(v)
	return _u
}

// SetNillableProtein sets the "protein" field if the given value is not nil.
func (_u *DetectionUpdateOne) SetNillableProtein(v *float64) *DetectionUpdateOne {
	if v != nil {
		_u.SetProtein(*v)
	}
	return _u
}

// AddProtein adds value to the "protein" field.
func (_u *DetectionUpdateOne) AddProtein(v float64) *DetectionUpdateOne {
	_u.mutation.AddProtein(v)
	return _u
}

// ClearProtein clears the value of the "protein" field.
func (_u *DetectionUpdateOne) ClearProtein() *DetectionUpdateOne {
	_u.mutation.ClearProtein()
	return _u
}

// SetFat sets the "fat" field.
func (_u *DetectionUpdateOne) SetFat(v float64) *DetectionUpdateOne {
	_u.mutation.ResetFat()
	_u.mutation.SetFat(v)
	return _u
}

// SetNillableFat sets the "fat" field if the given value is not nil.
func (_u *DetectionUpdateOne) SetNillableFat(v *float64) *DetectionUpdateOne {
	if v != nil {
		_u.SetFat(*v)
	}
	return _u
}

// AddFat adds value to the "fat" field.
func (_u *DetectionUpdateOne) AddFat(v float64) *DetectionUpdateOne {
	_u.mutation.AddFat(v)
	return _u
}

// ClearFat clears the value of the "fat" field.
func (_u *DetectionUpdateOne) ClearFat() *DetectionUpdateOne {
	_u.mutation.ClearFat()
	return _u
}

// SetSaturatedFat sets the "saturated_fat" field.
func (_u *DetectionUpdateOne) SetSaturatedFat(v float64) *DetectionUpdateOne {
	_u.mutation.ResetSaturatedFat()
	_u.mutation.SetSaturatedFat(v)
	return _u
}

// SetNillableSaturatedFat sets the "saturated_fat" field if the given value is not nil.
func (_u *DetectionUpdateOne) SetNillableSaturatedFat(v *float64) *DetectionUpdateOne {
	if v != nil {
		_u.SetSaturatedFat(*v)
	}
	return _u
}

// AddSaturatedFat adds value to the "saturated_fat" field.
func (_u *DetectionUpdateOne) AddSaturatedFat(v float64) *DetectionUpdateOne {
	_u.mutation.AddSaturatedFat(v)
	return _u
}

// ClearSaturatedFat clears the value of the "saturated_fat" field.
func (_u *DetectionUpdateOne) ClearSaturatedFat() *DetectionUpdateOne {
	_u.mutation.ClearSaturatedFat()
	return _u
}

// SetCarbohydrate sets the "carbohydrate" field.
func (_u *DetectionUpdateOne) SetCarbohydrate(v float64) *DetectionUpdateOne {
	_u.mutation.ResetCarbohydrate()
	_u.mutation.SetCarbohydrate(v)
	return _u
}

// SetNillableCarbohydrate sets the "carbohydrate" field if the given value is not nil.
func (_u *DetectionUpdateOne) SetNillableCarbohydrate(v *float64) *DetectionUpdateOne {
	if v != nil {
		_u.SetCarbohydrate(*v)
	}
	return _u
}

// AddCarbohydrate adds value to the "carbohydrate" field.
func (_u *DetectionUpdateOne) AddCarbohydrate(v float64) *DetectionUpdateOne {
	_u.mutation.AddCarbohydrate(v)
	return _u
}

// ClearCarbohydrate clears the value of the "carbohydrate" field.
func (_u *DetectionUpdateOne) ClearCarbohydrate() *DetectionUpdateOne {
	_u.mutation.ClearCarbohydrate()
	return _u
}

// SetSugar sets the "sugar" field.
func (_u *DetectionUpdateOne) SetSugar(v float64) *DetectionUpdateOne {
	_u.mutation.ResetSugar()
	_u.mutation.SetSugar(v)
	return _u
}

// SetNillableSugar sets the "sugar" field if the given value is not nil.
func (_u *DetectionUpdateOne) SetNillableSugar(v *float64) *DetectionUpdateOne {
	if v != nil {
		_u.SetSugar(*v)
	}
	return _u
}

// AddSugar adds value to the "sugar" field.
func (_u *DetectionUpdateOne) AddSugar(v float64) *DetectionUpdateOne {
	_u.mutation.AddSugar(v)
	return _u
}

// ClearSugar clears the value of the "sugar" field.
func (_u *DetectionUpdateOne) ClearSugar() *DetectionUpdateOne {
	_u.mutation.ClearSugar()
	return _u
}

// SetFiber sets the "fiber" field.
func (_u *DetectionUpdateOne) SetFiber(v float64) *DetectionUpdateOne {
	_u.mutation.ResetFiber()
	_u.mutation.SetFiber(v)
	return _u
}

// SetNillableFiber sets the "fiber" field if the given value is not nil.
func (_u *DetectionUpdateOne) SetNillableFiber(v *float64) *DetectionUpdateOne {
	if v != nil {
		_u.SetFiber(*v)
	}
	return _u
}

// AddFiber adds value to the "fiber" field.
func (_u *DetectionUpdateOne) AddFiber(v float64) *DetectionUpdateOne {
	_u.mutation.AddFiber(v)
	return _u
}

// ClearFiber clears the value of the "fiber" field.
func (_u *DetectionUpdateOne) ClearFiber() *DetectionUpdateOne {
	_u.mutation.ClearFiber()
	return _u
}

// SetSodium sets the "sodium" field.
func (_u *DetectionUpdateOne) SetSodium(v float64) *DetectionUpdateOne {
	_u.mutation.ResetSodium()
	_u.mutation.SetSodium(v)
	return _u
}

// SetNillableSodium sets the "sodium" field if the given value is not nil.
func (_u *DetectionUpdateOne) SetNillableSodium(v *float64) *DetectionUpdateOne {
	if v != nil {
		_u.SetSodium(*v)
	}
	return _u
}

// AddSodium adds value to the "sodium" field.
func (_u *DetectionUpdateOne) AddSodium(v float64) *DetectionUpdateOne {
	_u.mutation.AddSodium(v)
	return _u
}

// ClearSodium clears the value of the "sodium" field.
func (_u *DetectionUpdateOne) ClearSodium() *DetectionUpdateOne {
	_u.mutation.ClearSodium()
	return _u
}

// SetOtherNutrients sets the "other_nutrients" field.
func (_u *DetectionUpdateOne) SetOtherNutrients(v json.RawMessage) *DetectionUpdateOne {
	_u.mutation.SetOtherNutrients(v)
	return _u
}

// AppendOtherNutrients appends value to the "other_nutrients" field.
func (_u *DetectionUpdateOne) AppendOtherNutrients(v json.RawMessage) *DetectionUpdateOne {
	_u.mutation.AppendOtherNutrients(v)
	return _u
}

// ClearOtherNutrients clears the value of the "other_nutrients" field.
func (_u *DetectionUpdateOne) ClearOtherNutrients() *DetectionUpdateOne {
	_u.mutation.ClearOtherNutrients()
	return _u
}

// SetHealthScore sets the "health_score" field.
func (_u *DetectionUpdateOne) SetHealthScore(v float64) *DetectionUpdateOne {
	_u.mutation.ResetHealthScore()
	_u.mutation.SetHealthScore(v)
	return _u
}

// SetNillableHealthScore sets the "health_score" field if the given value is not nil.
func (_u *DetectionUpdateOne) SetNillableHealthScore(v *float64) *DetectionUpdateOne {
	if v != nil {
		_u.SetHealthScore(*v)
	}
	return _u
}

// AddHealthScore adds value to the "health_score" field.
func (_u *DetectionUpdateOne) AddHealthScore(v float64) *DetectionUpdateOne {
	_u.mutation.AddHealthScore(v)
	return _u
}

// ClearHealthScore clears the value of the "health_score" field.
func (_u *DetectionUpdateOne) ClearHealthScore() *DetectionUpdateOne {
	_u.mutation.ClearHealthScore()
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *DetectionUpdateOne) SetRiskLevel(v string) *DetectionUpdateOne {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *DetectionUpdateOne) SetNillableRiskLevel(v *string) *DetectionUpdateOne {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// SetHealthAdvice sets the "health_advice" field.
func (_u *DetectionUpdateOne) SetHealthAdvice(v string) *DetectionUpdateOne {
	_u.mutation.SetHealthAdvice(v)
	return _u
}

// SetNillableHealthAdvice sets the "health_advice" field if the given value is not nil.
func (_u *DetectionUpdateOne) SetNillableHealthAdvice(v *string) *DetectionUpdateOne {
	if v != nil {
		_u.SetHealthAdvice(*v)
	}
	return _u
}

// ClearHealthAdvice clears the value of the "health_advice" field.
func (_u *DetectionUpdateOne) ClearHealthAdvice() *DetectionUpdateOne {
	_u.mutation.ClearHealthAdvice()
	return _u
}

// SetAnalysis sets the "analysis" field.
func (_u *DetectionUpdateOne) SetAnalysis(v json.RawMessage) *DetectionUpdateOne {
	_u.mutation.SetAnalysis(v)
	return _u
}

// AppendAnalysis appends value to the "analysis" field.
func (_u *DetectionUpdateOne) AppendAnalysis(v json.RawMessage) *DetectionUpdateOne {
	_u.mutation.AppendAnalysis(v)
	return _u
}

// ClearAnalysis clears the value of the "analysis" field.
func (_u *DetectionUpdateOne) ClearAnalysis() *DetectionUpdateOne {
	_u.mutation.ClearAnalysis()
	return _u
}

// SetRiskFactors sets the "risk_factors" field.
func (_u *DetectionUpdateOne) SetRiskFactors(v json.RawMessage) *DetectionUpdateOne {
	_u.mutation.SetRiskFactors(v)
	return _u
}

// AppendRiskFactors appends value to the "risk_factors" field.
func (_u *DetectionUpdateOne) AppendRiskFactors(v json.RawMessage) *DetectionUpdateOne {
	_u.mutation.AppendRiskFactors(v)
	return _u
}

// ClearRiskFactors clears the value of the "risk_factors" field.
func (_u *DetectionUpdateOne) ClearRiskFactors() *DetectionUpdateOne {
	_u.mutation.ClearRiskFactors()
	return _u
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (_u *DetectionUpdateOne) SetOcrConfidence(v float32) *DetectionUpdateOne {
	_u.mutation.ResetOcrConfidence()
	_u.mutation.SetOcrConfidence(v)
	return _u
}

// SetNillableOcrConfidence sets the "ocr_confidence" field if the given value is not nil.
func (_u *DetectionUpdateOne) SetNillableOcrConfidence(v *float32) *DetectionUpdateOne {
	if v != nil {
		_u.SetOcrConfidence(*v)
	}
	return _u
}

// AddOcrConfidence adds value to the "ocr_confidence" field.
func (_u *DetectionUpdateOne) AddOcrConfidence(v float32) *DetectionUpdateOne {
	_u.mutation.AddOcrConfidence(v)
	return _u
}

// ClearOcrConfidence clears the value of the "ocr_confidence" field.
func (_u *DetectionUpdateOne) ClearOcrConfidence() *DetectionUpdateOne {
	_u.mutation.ClearOcrConfidence()
	return _u
}

// SetProcessingMs sets the "processing_ms" field.
func (_u *DetectionUpdateOne) SetProcessingMs(v int64) *DetectionUpdateOne {
	_u.mutation.ResetProcessingMs()
	_u.mutation.SetProcessingMs(v)
	return _u
}

// SetNillableProcessingMs sets the "processing_ms" field if the given value is not nil.
func (_u *DetectionUpdateOne) SetNillableProcessingMs(v *int64) *DetectionUpdateOne {
	if v != nil {
		_u.SetProcessingMs(*v)
	}
	return _u
}

// AddProcessingMs adds value to the "processing_ms" field.
func (_u *DetectionUpdateOne) AddProcessingMs(v int64) *DetectionUpdateOne {
	_u.mutation.AddProcessingMs(v)
	return _u
}

// ClearProcessingMs clears the value of the "processing_ms" field.
func (_u *DetectionUpdateOne) ClearProcessingMs() *DetectionUpdateOne {
	_u.mutation.ClearProcessingMs()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DetectionUpdateOne) SetErrorMessage(v string) *DetectionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DetectionUpdateOne) SetNillableErrorMessage(v *string) *DetectionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DetectionUpdateOne) ClearErrorMessage() *DetectionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUserRating sets the "user_rating" field.
func (_u *DetectionUpdateOne) SetUserRating(v int) *DetectionUpdateOne {
	_u.mutation.ResetUserRating()
	_u.mutation.SetUserRating(v)
	return _u
}

// SetNillableUserRating sets the "user_rating" field if the given value is not nil.
func (_u *DetectionUpdateOne) SetNillableUserRating(v *int) *DetectionUpdateOne {
	if v != nil {
		_u.SetUserRating(*v)
	}
	return _u
}

// AddUserRating adds value to the "user_rating" field.
func (_u *DetectionUpdateOne) AddUserRating(v int) *DetectionUpdateOne {
	_u.mutation.AddUserRating(v)
	return _u
}

// ClearUserRating clears the value of the "user_rating" field.
func (_u *DetectionUpdateOne) ClearUserRating() *DetectionUpdateOne {
	_u.mutation.ClearUserRating()
	return _u
}

// SetUserFeedback sets the "user_feedback" field.
func (_u *DetectionUpdateOne) SetUserFeedback(v string) *DetectionUpdateOne {
	_u.mutation.SetUserFeedback(v)
	return _u
}

// SetNillableUserFeedback sets the "user_feedback" field if the given value is not nil.
func (_u *DetectionUpdateOne) SetNillableUserFeedback(v *string) *DetectionUpdateOne {
	if v != nil {
		_u.SetUserFeedback(*v)
	}
	return _u
}

// ClearUserFeedback clears the value of the "user_feedback" field.
func (_u *DetectionUpdateOne) ClearUserFeedback() *DetectionUpdateOne {
	_u.mutation.ClearUserFeedback()
	return _u
}

// SetIsAccurate sets the "is_accurate" field.
func (_u *DetectionUpdateOne) SetIsAccurate(v bool) *DetectionUpdateOne {
	_u.mutation.SetIsAccurate(v)
	return _u
}

// SetNillableIsAccurate sets the "is_accurate" field if the given value is not nil.
func (_u *DetectionUpdateOne) SetNillableIsAccurate(v *bool) *DetectionUpdateOne {
	if v != nil {
		_u.SetIsAccurate(*v)
	}
	return _u
}

// ClearIsAccurate clears the value of the "is_accurate" field.
func (_u *DetectionUpdateOne) ClearIsAccurate() *DetectionUpdateOne {
	_u.mutation.ClearIsAccurate()
	return _u
}

// SetIsFavorite sets the "is_favorite" field.
func (_u *DetectionUpdateOne) SetIsFavorite(v bool) *DetectionUpdateOne {
	_u.mutation.SetIsFavorite(v)
	return _u
}

// SetNillableIsFavorite sets the "is_favorite" field if the given value is not nil.
func (_u *DetectionUpdateOne) SetNillableIsFavorite(v *bool) *DetectionUpdateOne {
	if v != nil {
		_u.SetIsFavorite(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DetectionUpdateOne) SetUpdatedAt(v time.Time) *DetectionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *DetectionUpdateOne) SetCompletedAt(v time.Time) *DetectionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *DetectionUpdateOne) SetNillableCompletedAt(v *time.Time) *DetectionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *DetectionUpdateOne) ClearCompletedAt() *DetectionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *DetectionUpdateOne) SetUser(v *User) *DetectionUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the DetectionMutation object of the builder.
func (_u *DetectionUpdateOne) Mutation() *DetectionMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *DetectionUpdateOne) ClearUser() *DetectionUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the DetectionUpdate builder.
func (_u *DetectionUpdateOne) Where(ps ...predicate.Detection) *DetectionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DetectionUpdateOne) Select(field string, fields ...string) *DetectionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Detection entity.
func (_u *DetectionUpdateOne) Save(ctx context.Context) (*Detection, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DetectionUpdateOne) SaveX(ctx context.Context) *Detection {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DetectionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DetectionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DetectionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := detection.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DetectionUpdateOne) check() error {
	if v, ok := _u.mutation.DetectionType(); ok {
		if err := detection.DetectionTypeValidator(v); err != nil {
			return &ValidationError{Name: "detection_type", err: fmt.Errorf(`ent: validator failed for field "Detection.detection_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := detection.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Detection.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RiskLevel(); ok {
		if err := detection.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "Detection.risk_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserRating(); ok {
		if err := detection.UserRatingValidator(v); err != nil {
			return &ValidationError{Name: "user_rating", err: fmt.Errorf(`ent: validator failed for field "Detection.user_rating": %w`, err)}
		}
	}
	return nil
}

func (_u *DetectionUpdateOne) sqlSave(ctx context.Context) (_node *Detection, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(detection.Table, detection.Columns, sqlgraph.NewFieldSpec(detection.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Detection.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, detection.FieldID)
		for _, f := range fields {
			if !detection.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != detection.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DetectionType(); ok {
		_spec.SetField(detection.FieldDetectionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(detection.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImagePath(); ok {
		_spec.SetField(detection.FieldImagePath, field.TypeString, value)
	}
	if _u.mutation.ImagePathCleared() {
		_spec.ClearField(detection.FieldImagePath, field.TypeString)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(detection.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(detection.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.Barcode(); ok {
		_spec.SetField(detection.FieldBarcode, field.TypeString, value)
	}
	if _u.mutation.BarcodeCleared() {
		_spec.ClearField(detection.FieldBarcode, field.TypeString)
	}
	if value, ok := _u.mutation.ProductName(); ok {
		_spec.SetField(detection.FieldProductName, field.TypeString, value)
	}
	if _u.mutation.ProductNameCleared() {
		_spec.ClearField(detection.FieldProductName, field.TypeString)
	}
	if value, ok := _u.mutation.Brand(); ok {
		_spec.SetField(detection.FieldBrand, field.TypeString, value)
	}
	if _u.mutation.BrandCleared() {
		_spec.ClearField(detection.FieldBrand, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(detection.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(detection.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.EnergyKj(); ok {
		_spec.SetField(detection.FieldEnergyKj, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEnergyKj(); ok {
		_spec.AddField(detection.FieldEnergyKj, field.TypeFloat64, value)
	}
	if _u.mutation.EnergyKjCleared() {
		_spec.ClearField(detection.FieldEnergyKj, field.TypeFloat64)
	}
	if value, ok := _u.mutation.EnergyKcal(); ok {
		_spec.SetField(detection.FieldEnergyKcal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEnergyKcal(); ok {
		_spec.AddField(detection.FieldEnergyKcal, field.TypeFloat64, value)
	}
	if _u.mutation.EnergyKcalCleared() {
		_spec.ClearField(detection.FieldEnergyKcal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Protein(); ok {
		_spec.SetField(detection.FieldProtein, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProtein(); ok {
		_spec.AddField(detection.FieldProtein, field.TypeFloat64, value)
	}
	if _u.mutation.ProteinCleared() {
		_spec.ClearField(detection.FieldProtein, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Fat(); ok {
		_spec.SetField(detection.FieldFat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFat(); ok {
		_spec.AddField(detection.FieldFat, field.TypeFloat64, value)
	}
	if _u.mutation.FatCleared() {
		_spec.ClearField(detection.FieldFat, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SaturatedFat(); ok {
		_spec.SetField(detection.FieldSaturatedFat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSaturatedFat(); ok {
		_spec.AddField(detection.FieldSaturatedFat, field.TypeFloat64, value)
	}
	if _u.mutation.SaturatedFatCleared() {
		_spec.ClearField(detection.FieldSaturatedFat, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Carbohydrate(); ok {
		_spec.SetField(detection.FieldCarbohydrate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCarbohydrate(); ok {
		_spec.AddField(detection.FieldCarbohydrate, field.TypeFloat64, value)
	}
	if _u.mutation.CarbohydrateCleared() {
		_spec.ClearField(detection.FieldCarbohydrate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Sugar(); ok {
		_spec.SetField(detection.FieldSugar, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSugar(); ok {
		_spec.AddField(detection.FieldSugar, field.TypeFloat64, value)
	}
	if _u.mutation.SugarCleared() {
		_spec.ClearField(detection.FieldSugar, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Fiber(); ok {
		_spec.SetField(detection.FieldFiber, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFiber(); ok {
		_spec.AddField(detection.FieldFiber, field.TypeFloat64, value)
	}
	if _u.mutation.FiberCleared() {
		_spec.ClearField(detection.FieldFiber, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Sodium(); ok {
		_spec.SetField(detection.FieldSodium, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSodium(); ok {
		_spec.AddField(detection.FieldSodium, field.TypeFloat64, value)
	}
	if _u.mutation.SodiumCleared() {
		_spec.ClearField(detection.FieldSodium, field.TypeFloat64)
	}
	if value, ok := _u.mutation.OtherNutrients(); ok {
		_spec.SetField(detection.FieldOtherNutrients, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOtherNutrients(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, detection.FieldOtherNutrients, value)
		})
	}
	if _u.mutation.OtherNutrientsCleared() {
		_spec.ClearField(detection.FieldOtherNutrients, field.TypeJSON)
	}
	if value, ok := _u.mutation.HealthScore(); ok {
		_spec.SetField(detection.FieldHealthScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHealthScore(); ok {
		_spec.AddField(detection.FieldHealthScore, field.TypeFloat64, value)
	}
	if _u.mutation.HealthScoreCleared() {
		_spec.ClearField(detection.FieldHealthScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(detection.FieldRiskLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.HealthAdvice(); ok {
		_spec.SetField(detection.FieldHealthAdvice, field.TypeString, value)
	}
	if _u.mutation.HealthAdviceCleared() {
		_spec.ClearField(detection.FieldHealthAdvice, field.TypeString)
	}
	if value, ok := _u.mutation.Analysis(); ok {
		_spec.SetField(detection.FieldAnalysis, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnalysis(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, detection.FieldAnalysis, value)
		})
	}
	if _u.mutation.AnalysisCleared() {
		_spec.ClearField(detection.FieldAnalysis, field.TypeJSON)
	}
	if value, ok := _u.mutation.RiskFactors(); ok {
		_spec.SetField(detection.FieldRiskFactors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRiskFactors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, detection.FieldRiskFactors, value)
		})
	}
	if _u.mutation.RiskFactorsCleared() {
		_spec.ClearField(detection.FieldRiskFactors, field.TypeJSON)
	}
	if value, ok := _u.mutation.OcrConfidence(); ok {
		_spec.SetField(detection.FieldOcrConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedOcrConfidence(); ok {
		_spec.AddField(detection.FieldOcrConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.OcrConfidenceCleared() {
		_spec.ClearField(detection.FieldOcrConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.ProcessingMs(); ok {
		_spec.SetField(detection.FieldProcessingMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedProcessingMs(); ok {
		_spec.AddField(detection.FieldProcessingMs, field.TypeInt64, value)
	}
	if _u.mutation.ProcessingMsCleared() {
		_spec.ClearField(detection.FieldProcessingMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(detection.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(detection.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UserRating(); ok {
		_spec.SetField(detection.FieldUserRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserRating(); ok {
		_spec.AddField(detection.FieldUserRating, field.TypeInt, value)
	}
	if _u.mutation.UserRatingCleared() {
		_spec.ClearField(detection.FieldUserRating, field.TypeInt)
	}
	if value, ok := _u.mutation.UserFeedback(); ok {
		_spec.SetField(detection.FieldUserFeedback, field.TypeString, value)
	}
	if _u.mutation.UserFeedbackCleared() {
		_spec.ClearField(detection.FieldUserFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.IsAccurate(); ok {
		_spec.SetField(detection.FieldIsAccurate, field.TypeBool, value)
	}
	if _u.mutation.IsAccurateCleared() {
		_spec.ClearField(detection.FieldIsAccurate, field.TypeBool)
	}
	if value, ok := _u.mutation.IsFavorite(); ok {
		_spec.SetField(detection.FieldIsFavorite, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(detection.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(detection.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(detection.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Detection{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{detection.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
