// Code generated by ent, DO NOT EDIT.

package user

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/nutriscan/nutrition-scanner/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.User {
	return predicate.User(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.User {
	return predicate.User(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.User {
	return predicate.User(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.User {
	return predicate.User(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.User {
	return predicate.User(sql.FieldLTE(FieldID, id))
}

// Openid applies equality check predicate on the "openid" field. It's identical to OpenidEQ.
func Openid(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldOpenid, v))
}

// Nickname applies equality check predicate on the "nickname" field. It's identical to NicknameEQ.
func Nickname(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldNickname, v))
}

// AvatarURL applies equality check predicate on the "avatar_url" field. It's identical to AvatarURLEQ.
func AvatarURL(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldAvatarURL, v))
}

// Age applies equality check predicate on the "age" field. It's identical to AgeEQ.
func Age(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldAge, v))
}

// HealthConditions applies equality check predicate on the "health_conditions" field. It's identical to HealthConditionsEQ.
func HealthConditions(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldHealthConditions, v))
}

// DietaryPreferences applies equality check predicate on the "dietary_preferences" field. It's identical to DietaryPreferencesEQ.
func DietaryPreferences(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldDietaryPreferences, v))
}

// Allergies applies equality check predicate on the "allergies" field. It's identical to AllergiesEQ.
func Allergies(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldAllergies, v))
}

// ScanCount applies equality check predicate on the "scan_count" field. It's identical to ScanCountEQ.
func ScanCount(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldScanCount, v))
}

// LastScanAt applies equality check predicate on the "last_scan_at" field. It's identical to LastScanAtEQ.
func LastScanAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLastScanAt, v))
}

// LastLoginAt applies equality check predicate on the "last_login_at" field. It's identical to LastLoginAtEQ.
func LastLoginAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLastLoginAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUpdatedAt, v))
}

// OpenidEQ applies the EQ predicate on the "openid" field.
func OpenidEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldOpenid, v))
}

// OpenidNEQ applies the NEQ predicate on the "openid" field.
func OpenidNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldOpenid, v))
}

// OpenidIn applies the In predicate on the "openid" field.
func OpenidIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldOpenid, vs...))
}

// OpenidNotIn applies the NotIn predicate on the "openid" field.
func OpenidNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldOpenid, vs...))
}

// OpenidGT applies the GT predicate on the "openid" field.
func OpenidGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldOpenid, v))
}

// OpenidGTE applies the GTE predicate on the "openid" field.
func OpenidGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldOpenid, v))
}

// OpenidLT applies the LT predicate on the "openid" field.
func OpenidLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldOpenid, v))
}

// OpenidLTE applies the LTE predicate on the "openid" field.
func OpenidLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldOpenid, v))
}

// OpenidContains applies the Contains predicate on the "openid" field.
func OpenidContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldOpenid, v))
}

// OpenidHasPrefix applies the HasPrefix predicate on the "openid" field.
func OpenidHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldOpenid, v))
}

// OpenidHasSuffix applies the HasSuffix predicate on the "openid" field.
func OpenidHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldOpenid, v))
}

// OpenidEqualFold applies the EqualFold predicate on the "openid" field.
func OpenidEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldOpenid, v))
}

// OpenidContainsFold applies the ContainsFold predicate on the "openid" field.
func OpenidContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldOpenid, v))
}

// NicknameEQ applies the EQ predicate on the "nickname" field.
func NicknameEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldNickname, v))
}

// NicknameNEQ applies the NEQ predicate on the "nickname" field.
func NicknameNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldNickname, v))
}

// NicknameIn applies the In predicate on the "nickname" field.
func NicknameIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldNickname, vs...))
}

// NicknameNotIn applies the NotIn predicate on the "nickname" field.
func NicknameNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldNickname, vs...))
}

// NicknameGT applies the GT predicate on the "nickname" field.
func NicknameGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldNickname, v))
}

// NicknameGTE applies the GTE predicate on the "nickname" field.
func NicknameGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldNickname, v))
}

// NicknameLT applies the LT predicate on the "nickname" field.
func NicknameLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldNickname, v))
}

// NicknameLTE applies the LTE predicate on the "nickname" field.
func NicknameLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldNickname, v))
}

// NicknameContains applies the Contains predicate on the "nickname" field.
func NicknameContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldNickname, v))
}

// NicknameHasPrefix applies the HasPrefix predicate on the "nickname" field.
func NicknameHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldNickname, v))
}

// NicknameHasSuffix applies the HasSuffix predicate on the "nickname" field.
func NicknameHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldNickname, v))
}

// NicknameIsNil applies the IsNil predicate on the "nickname" field.
func NicknameIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldNickname))
}

// NicknameNotNil applies the NotNil predicate on the "nickname" field.
func NicknameNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldNickname))
}

// NicknameEqualFold applies the EqualFold predicate on the "nickname" field.
func NicknameEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldNickname, v))
}

// NicknameContainsFold applies the ContainsFold predicate on the "nickname" field.
func NicknameContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldNickname, v))
}

// AvatarURLEQ applies the EQ predicate on the "avatar_url" field.
func AvatarURLEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldAvatarURL, v))
}

// AvatarURLNEQ applies the NEQ predicate on the "avatar_url" field.
func AvatarURLNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldAvatarURL, v))
}

// AvatarURLIn applies the In predicate on the "avatar_url" field.
func AvatarURLIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldAvatarURL, vs...))
}

// AvatarURLNotIn applies the NotIn predicate on the "avatar_url" field.
func AvatarURLNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldAvatarURL, vs...))
}

// AvatarURLGT applies the GT predicate on the "avatar_url" field.
func AvatarURLGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldAvatarURL, v))
}

// AvatarURLGTE applies the GTE predicate on the "avatar_url" field.
func AvatarURLGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldAvatarURL, v))
}

// AvatarURLLT applies the LT predicate on the "avatar_url" field.
func AvatarURLLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldAvatarURL, v))
}

// AvatarURLLTE applies the LTE predicate on the "avatar_url" field.
func AvatarURLLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldAvatarURL, v))
}

// AvatarURLContains applies the Contains predicate on the "avatar_url" field.
func AvatarURLContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldAvatarURL, v))
}

// AvatarURLHasPrefix applies the HasPrefix predicate on the "avatar_url" field.
func AvatarURLHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldAvatarURL, v))
}

// AvatarURLHasSuffix applies the HasSuffix predicate on the "avatar_url" field.
func AvatarURLHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldAvatarURL, v))
}

// AvatarURLIsNil applies the IsNil predicate on the "avatar_url" field.
func AvatarURLIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldAvatarURL))
}

// AvatarURLNotNil applies the NotNil predicate on the "avatar_url" field.
func AvatarURLNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldAvatarURL))
}

// AvatarURLEqualFold applies the EqualFold predicate on the "avatar_url" field.
func AvatarURLEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldAvatarURL, v))
}

// AvatarURLContainsFold applies the ContainsFold predicate on the "avatar_url" field.
func AvatarURLContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldAvatarURL, v))
}

// AgeEQ applies the EQ predicate on the "age" field.
func AgeEQ(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldAge, v))
}

// AgeNEQ applies the NEQ predicate on the "age" field.
func AgeNEQ(v int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldAge, v))
}

// AgeIn applies the In predicate on the "age" field.
func AgeIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldAge, vs...))
}

// AgeNotIn applies the NotIn predicate on the "age" field.
func AgeNotIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldAge, vs...))
}

// AgeGT applies the GT predicate on the "age" field.
func AgeGT(v int) predicate.User {
	return predicate.User(sql.FieldGT(FieldAge, v))
}

// AgeGTE applies the GTE predicate on the "age" field.
func AgeGTE(v int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldAge, v))
}

// AgeLT applies the LT predicate on the "age" field.
func AgeLT(v int) predicate.User {
	return predicate.User(sql.FieldLT(FieldAge, v))
}

// AgeLTE applies the LTE predicate on the "age" field.
func AgeLTE(v int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldAge, v))
}

// AgeIsNil applies the IsNil predicate on the "age" field.
func AgeIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldAge))
}

// AgeNotNil applies the NotNil predicate on the "age" field.
func AgeNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldAge))
}

// HealthConditionsEQ applies the EQ predicate on the "health_conditions" field.
func HealthConditionsEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldHealthConditions, v))
}

// HealthConditionsNEQ applies the NEQ predicate on the "health_conditions" field.
func HealthConditionsNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldHealthConditions, v))
}

// HealthConditionsIn applies the In predicate on the "health_conditions" field.
func HealthConditionsIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldHealthConditions, vs...))
}

// HealthConditionsNotIn applies the NotIn predicate on the "health_conditions" field.
func HealthConditionsNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldHealthConditions, vs...))
}

// HealthConditionsGT applies the GT predicate on the "health_conditions" field.
func HealthConditionsGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldHealthConditions, v))
}

// HealthConditionsGTE applies the GTE predicate on the "health_conditions" field.
func HealthConditionsGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldHealthConditions, v))
}

// HealthConditionsLT applies the LT predicate on the "health_conditions" field.
func HealthConditionsLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldHealthConditions, v))
}

// HealthConditionsLTE applies the LTE predicate on the "health_conditions" field.
func HealthConditionsLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldHealthConditions, v))
}

// HealthConditionsContains applies the Contains predicate on the "health_conditions" field.
func HealthConditionsContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldHealthConditions, v))
}

// HealthConditionsHasPrefix applies the HasPrefix predicate on the "health_conditions" field.
func HealthConditionsHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldHealthConditions, v))
}

// HealthConditionsHasSuffix applies the HasSuffix predicate on the "health_conditions" field.
func HealthConditionsHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldHealthConditions, v))
}

// HealthConditionsIsNil applies the IsNil predicate on the "health_conditions" field.
func HealthConditionsIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldHealthConditions))
}

// HealthConditionsNotNil applies the NotNil predicate on the "health_conditions" field.
func HealthConditionsNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldHealthConditions))
}

// HealthConditionsEqualFold applies the EqualFold predicate on the "health_conditions" field.
func HealthConditionsEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldHealthConditions, v))
}

// HealthConditionsContainsFold applies the ContainsFold predicate on the "health_conditions" field.
func HealthConditionsContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldHealthConditions, v))
}

// DietaryPreferencesEQ applies the EQ predicate on the "dietary_preferences" field.
func DietaryPreferencesEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldDietaryPreferences, v))
}

// DietaryPreferencesNEQ applies the NEQ predicate on the "dietary_preferences" field.
func DietaryPreferencesNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldDietaryPreferences, v))
}

// DietaryPreferencesIn applies the In predicate on the "dietary_preferences" field.
func DietaryPreferencesIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldDietaryPreferences, vs...))
}

// DietaryPreferencesNotIn applies the NotIn predicate on the "dietary_preferences" field.
func DietaryPreferencesNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldDietaryPreferences, vs...))
}

// DietaryPreferencesGT applies the GT predicate on the "dietary_preferences" field.
func DietaryPreferencesGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldDietaryPreferences, v))
}

// DietaryPreferencesGTE applies the GTE predicate on the "dietary_preferences" field.
func DietaryPreferencesGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldDietaryPreferences, v))
}

// DietaryPreferencesLT applies the LT predicate on the "dietary_preferences" field.
func DietaryPreferencesLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldDietaryPreferences, v))
}

// DietaryPreferencesLTE applies the LTE predicate on the "dietary_preferences" field.
func DietaryPreferencesLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldDietaryPreferences, v))
}

// DietaryPreferencesContains applies the Contains predicate on the "dietary_preferences" field.
func DietaryPreferencesContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldDietaryPreferences, v))
}

// DietaryPreferencesHasPrefix applies the HasPrefix predicate on the "dietary_preferences" field.
func DietaryPreferencesHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldDietaryPreferences, v))
}

// DietaryPreferencesHasSuffix applies the HasSuffix predicate on the "dietary_preferences" field.
func DietaryPreferencesHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldDietaryPreferences, v))
}

// DietaryPreferencesIsNil applies the IsNil predicate on the "dietary_preferences" field.
func DietaryPreferencesIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldDietaryPreferences))
}

// DietaryPreferencesNotNil applies the NotNil predicate on the "dietary_preferences" field.
func DietaryPreferencesNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldDietaryPreferences))
}

// DietaryPreferencesEqualFold applies the EqualFold predicate on the "dietary_preferences" field.
func DietaryPreferencesEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldDietaryPreferences, v))
}

// DietaryPreferencesContainsFold applies the ContainsFold predicate on the "dietary_preferences" field.
func DietaryPreferencesContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldDietaryPreferences, v))
}

// AllergiesEQ applies the EQ predicate on the "allergies" field.
func AllergiesEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldAllergies, v))
}

// AllergiesNEQ applies the NEQ predicate on the "allergies" field.
func AllergiesNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldAllergies, v))
}

// AllergiesIn applies the In predicate on the "allergies" field.
func AllergiesIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldAllergies, vs...))
}

// AllergiesNotIn applies the NotIn predicate on the "allergies" field.
func AllergiesNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldAllergies, vs...))
}

// AllergiesGT applies the GT predicate on the "allergies" field.
func AllergiesGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldAllergies, v))
}

// AllergiesGTE applies the GTE predicate on the "allergies" field.
func AllergiesGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldAllergies, v))
}

// AllergiesLT applies the LT predicate on the "allergies" field.
func AllergiesLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldAllergies, v))
}

// AllergiesLTE applies the LTE predicate on the "allergies" field.
func AllergiesLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldAllergies, v))
}

// AllergiesContains applies the Contains predicate on the "allergies" field.
func AllergiesContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldAllergies, v))
}

// AllergiesHasPrefix applies the HasPrefix predicate on the "allergies" field.
func AllergiesHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldAllergies, v))
}

// AllergiesHasSuffix applies the HasSuffix predicate on the "allergies" field.
func AllergiesHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldAllergies, v))
}

// AllergiesIsNil applies the IsNil predicate on the "allergies" field.
func AllergiesIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldAllergies))
}

// AllergiesNotNil applies the NotNil predicate on the "allergies" field.
func AllergiesNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldAllergies))
}

// AllergiesEqualFold applies the EqualFold predicate on the "allergies" field.
func AllergiesEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldAllergies, v))
}

// AllergiesContainsFold applies the ContainsFold predicate on the "allergies" field.
func AllergiesContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldAllergies, v))
}

// ScanCountEQ applies the EQ predicate on the "scan_count" field.
func ScanCountEQ(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldScanCount, v))
}

// ScanCountNEQ applies the NEQ predicate on the "scan_count" field.
func ScanCountNEQ(v int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldScanCount, v))
}

// ScanCountIn applies the In predicate on the "scan_count" field.
func ScanCountIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldScanCount, vs...))
}

// ScanCountNotIn applies the NotIn predicate on the "scan_count" field.
func ScanCountNotIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldScanCount, vs...))
}

// ScanCountGT applies the GT predicate on the "scan_count" field.
func ScanCountGT(v int) predicate.User {
	return predicate.User(sql.FieldGT(FieldScanCount, v))
}

// ScanCountGTE applies the GTE predicate on the "scan_count" field.
func ScanCountGTE(v int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldScanCount, v))
}

// ScanCountLT applies the LT predicate on the "scan_count" field.
func ScanCountLT(v int) predicate.User {
	return predicate.User(sql.FieldLT(FieldScanCount, v))
}

// ScanCountLTE applies the LTE predicate on the "scan_count" field.
func ScanCountLTE(v int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldScanCount, v))
}

// LastScanAtEQ applies the EQ predicate on the "last_scan_at" field.
func LastScanAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLastScanAt, v))
}

// LastScanAtNEQ applies the NEQ predicate on the "last_scan_at" field.
func LastScanAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldLastScanAt, v))
}

// LastScanAtIn applies the In predicate on the "last_scan_at" field.
func LastScanAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldLastScanAt, vs...))
}

// LastScanAtNotIn applies the NotIn predicate on the "last_scan_at" field.
func LastScanAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldLastScanAt, vs...))
}

// LastScanAtGT applies the GT predicate on the "last_scan_at" field.
func LastScanAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldLastScanAt, v))
}

// LastScanAtGTE applies the GTE predicate on the "last_scan_at" field.
func LastScanAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldLastScanAt, v))
}

// LastScanAtLT applies the LT predicate on the "last_scan_at" field.
func LastScanAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldLastScanAt, v))
}

// LastScanAtLTE applies the LTE predicate on the "last_scan_at" field.
func LastScanAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldLastScanAt, v))
}

// LastScanAtIsNil applies the IsNil predicate on the "last_scan_at" field.
func LastScanAtIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldLastScanAt))
}

// LastScanAtNotNil applies the NotNil predicate on the "last_scan_at" field.
func LastScanAtNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldLastScanAt))
}

// LastLoginAtEQ applies the EQ predicate on the "last_login_at" field.
func LastLoginAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLastLoginAt, v))
}

// LastLoginAtNEQ applies the NEQ predicate on the "last_login_at" field.
func LastLoginAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldLastLoginAt, v))
}

// LastLoginAtIn applies the In predicate on the "last_login_at" field.
func LastLoginAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldLastLoginAt, vs...))
}

// LastLoginAtNotIn applies the NotIn predicate on the "last_login_at" field.
func LastLoginAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldLastLoginAt, vs...))
}

// LastLoginAtGT applies the GT predicate on the "last_login_at" field.
func LastLoginAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldLastLoginAt, v))
}

// LastLoginAtGTE applies the GTE predicate on the "last_login_at" field.
func LastLoginAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldLastLoginAt, v))
}

// LastLoginAtLT applies the LT predicate on the "last_login_at" field.
func LastLoginAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldLastLoginAt, v))
}

// LastLoginAtLTE applies the LTE predicate on the "last_login_at" field.
func LastLoginAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldLastLoginAt, v))
}

// LastLoginAtIsNil applies the IsNil predicate on the "last_login_at" field.
func LastLoginAtIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldLastLoginAt))
}

// LastLoginAtNotNil applies the NotNil predicate on the "last_login_at" field.
func LastLoginAtNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldLastLoginAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasDetections applies the HasEdge predicate on the "detections" edge.
func HasDetections() predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DetectionsTable, DetectionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDetectionsWith applies the HasEdge predicate on the "detections" edge with a given conditions (other predicates).
func HasDetectionsWith(preds ...predicate.Detection) predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := newDetectionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.User) predicate.User {
	return predicate.User(sql.NotPredicates(p))
}
