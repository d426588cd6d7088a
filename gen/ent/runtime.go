// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/nutriscan/nutrition-scanner/db/ent/schema"
	"github.com/nutriscan/nutrition-scanner/gen/ent/article"
	"github.com/nutriscan/nutrition-scanner/gen/ent/detection"
	"github.com/nutriscan/nutrition-scanner/gen/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	articleFields := schema.Article{}.Fields()
	_ = articleFields
	// articleDescTitle is the schema descriptor for title field.
	articleDescTitle := articleFields[1].Descriptor()
	// article.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	article.TitleValidator = articleDescTitle.Validators[0].(func(string) error)
	// articleDescContent is the schema descriptor for content field.
	articleDescContent := articleFields[3].Descriptor()
	// article.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	article.ContentValidator = articleDescContent.Validators[0].(func(string) error)
	// articleDescViewCount is the schema descriptor for view_count field.
	articleDescViewCount := articleFields[6].Descriptor()
	// article.DefaultViewCount holds the default value on creation for the view_count field.
	article.DefaultViewCount = articleDescViewCount.Default.(int)
	// article.ViewCountValidator is a validator for the "view_count" field. It is called by the builders before save.
	article.ViewCountValidator = articleDescViewCount.Validators[0].(func(int) error)
	// articleDescIsPublished is the schema descriptor for is_published field.
	articleDescIsPublished := articleFields[7].Descriptor()
	// article.DefaultIsPublished holds the default value on creation for the is_published field.
	article.DefaultIsPublished = articleDescIsPublished.Default.(bool)
	// articleDescCreatedAt is the schema descriptor for created_at field.
	articleDescCreatedAt := articleFields[8].Descriptor()
	// article.DefaultCreatedAt holds the default value on creation for the created_at field.
	article.DefaultCreatedAt = articleDescCreatedAt.Default.(func() time.Time)
	// articleDescUpdatedAt is the schema descriptor for updated_at field.
	articleDescUpdatedAt := articleFields[9].Descriptor()
	// article.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	article.DefaultUpdatedAt = articleDescUpdatedAt.Default.(func() time.Time)
	// article.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	article.UpdateDefaultUpdatedAt = articleDescUpdatedAt.UpdateDefault.(func() time.Time)
	// articleDescID is the schema descriptor for id field.
	articleDescID := articleFields[0].Descriptor()
	// article.IDValidator is a validator for the "id" field. It is called by the builders before save.
	article.IDValidator = articleDescID.Validators[0].(func(int) error)
	detectionFields := schema.Detection{}.Fields()
	_ = detectionFields
	// detectionDescDetectionType is the schema descriptor for detection_type field.
	detectionDescDetectionType := detectionFields[2].Descriptor()
	// detection.DetectionTypeValidator is a validator for the "detection_type" field. It is called by the builders before save.
	detection.DetectionTypeValidator = func() func(string) error {
		validators := detectionDescDetectionType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(detection_type string) error {
			for _, fn := range fns {
				if err := fn(detection_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// detectionDescStatus is the schema descriptor for status field.
	detectionDescStatus := detectionFields[3].Descriptor()
	// detection.DefaultStatus holds the default value on creation for the status field.
	detection.DefaultStatus = detectionDescStatus.Default.(string)
	// detection.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	detection.StatusValidator = detectionDescStatus.Validators[0].(func(string) error)
	// detectionDescRiskLevel is the schema descriptor for risk_level field.
	detectionDescRiskLevel := detectionFields[21].Descriptor()
	// detection.DefaultRiskLevel holds the default value on creation for the risk_level field.
	detection.DefaultRiskLevel = detectionDescRiskLevel.Default.(string)
	// detection.RiskLevelValidator is a validator for the "risk_level" field. It is called by the builders before save.
	detection.RiskLevelValidator = detectionDescRiskLevel.Validators[0].(func(string) error)
	// detectionDescUserRating is the schema descriptor for user_rating field.
	detectionDescUserRating := detectionFields[28].Descriptor()
	// detection.UserRatingValidator is a validator for the "user_rating" field. It is called by the builders before save.
	detection.UserRatingValidator = func() func(int) error {
		validators := detectionDescUserRating.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(user_rating int) error {
			for _, fn := range fns {
				if err := fn(user_rating); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// detectionDescIsFavorite is the schema descriptor for is_favorite field.
	detectionDescIsFavorite := detectionFields[31].Descriptor()
	// detection.DefaultIsFavorite holds the default value on creation for the is_favorite field.
	detection.DefaultIsFavorite = detectionDescIsFavorite.Default.(bool)
	// detectionDescCreatedAt is the schema descriptor for created_at field.
	detectionDescCreatedAt := detectionFields[32].Descriptor()
	// detection.DefaultCreatedAt holds the default value on creation for the created_at field.
	detection.DefaultCreatedAt = detectionDescCreatedAt.Default.(func() time.Time)
	// detectionDescUpdatedAt is the schema descriptor for updated_at field.
	detectionDescUpdatedAt := detectionFields[33].Descriptor()
	// detection.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	detection.DefaultUpdatedAt = detectionDescUpdatedAt.Default.(func() time.Time)
	// detection.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	detection.UpdateDefaultUpdatedAt = detectionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// detectionDescID is the schema descriptor for id field.
	detectionDescID := detectionFields[0].Descriptor()
	// detection.DefaultID holds the default value on creation for the id field.
	detection.DefaultID = detectionDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescOpenid is the schema descriptor for openid field.
	userDescOpenid := userFields[1].Descriptor()
	// user.OpenidValidator is a validator for the "openid" field. It is called by the builders before save.
	user.OpenidValidator = userDescOpenid.Validators[0].(func(string) error)
	// userDescAge is the schema descriptor for age field.
	userDescAge := userFields[4].Descriptor()
	// user.AgeValidator is a validator for the "age" field. It is called by the builders before save.
	user.AgeValidator = func() func(int) error {
		validators := userDescAge.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(age int) error {
			for _, fn := range fns {
				if err := fn(age); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescScanCount is the schema descriptor for scan_count field.
	userDescScanCount := userFields[8].Descriptor()
	// user.DefaultScanCount holds the default value on creation for the scan_count field.
	user.DefaultScanCount = userDescScanCount.Default.(int)
	// user.ScanCountValidator is a validator for the "scan_count" field. It is called by the builders before save.
	user.ScanCountValidator = userDescScanCount.Validators[0].(func(int) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[11].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[12].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
