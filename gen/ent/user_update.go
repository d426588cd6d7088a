// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/nutriscan/nutrition-scanner/gen/ent/detection"
	"github.com/nutriscan/nutrition-scanner/gen/ent/predicate"
	"github.com/nutriscan/nutrition-scanner/gen/ent/user"
)

// UserUpdate is the builder for updating User entities.
type UserUpdate struct {
	config
	hooks    []Hook
	mutation *UserMutation
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdate) Where(ps ...predicate.User) *UserUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOpenid sets the "openid" field.
func (_u *UserUpdate) SetOpenid(v string) *UserUpdate {
	_u.mutation.SetOpenid(v)
	return _u
}

// SetNillableOpenid sets the "openid" field if the given value is not nil.
func (_u *UserUpdate) SetNillableOpenid(v *string) *UserUpdate {
	if v != nil {
		_u.SetOpenid(*v)
	}
	return _u
}

// SetNickname sets the "nickname" field.
func (_u *UserUpdate) SetNickname(v string) *UserUpdate {
	_u.mutation.SetNickname(v)
	return _u
}

// SetNillableNickname sets the "nickname" field if the given value is not nil.
func (_u *UserUpdate) SetNillableNickname(v *string) *UserUpdate {
	if v != nil {
		_u.SetNickname(*v)
	}
	return _u
}

// ClearNickname clears the value of the "nickname" field.
func (_u *UserUpdate) ClearNickname() *UserUpdate {
	_u.mutation.ClearNickname()
	return _u
}

// SetAvatarURL sets the "avatar_url" field.
func (_u *UserUpdate) SetAvatarURL(v string) *UserUpdate {
	_u.mutation.SetAvatarURL(v)
	return _u
}

// SetNillableAvatarURL sets the "avatar_url" field if the given value is not nil.
func (_u *UserUpdate) SetNillableAvatarURL(v *string) *UserUpdate {
	if v != nil {
		_u.SetAvatarURL(*v)
	}
	return _u
}

// ClearAvatarURL clears the value of the "avatar_url" field.
func (_u *UserUpdate) ClearAvatarURL() *UserUpdate {
	_u.mutation.ClearAvatarURL()
	return _u
}

// SetAge sets the "age" field.
func (_u *UserUpdate) SetAge(v int) *UserUpdate {
	_u.mutation.ResetAge()
	_u.mutation.SetAge(v)
	return _u
}

// SetNillableAge sets the "age" field if the given value is not nil.
func (_u *UserUpdate) SetNillableAge(v *int) *UserUpdate {
	if v != nil {
		_u.SetAge(*v)
	}
	return _u
}

// AddAge adds value to the "age" field.
func (_u *UserUpdate) AddAge(v int) *UserUpdate {
	_u.mutation.AddAge(v)
	return _u
}

// ClearAge clears the value of the "age" field.
func (_u *UserUpdate) ClearAge() *UserUpdate {
	_u.mutation.ClearAge()
	return _u
}

// SetHealthConditions sets the "health_conditions" field.
func (_u *UserUpdate) SetHealthConditions(v string) *UserUpdate {
	_u.mutation.SetHealthConditions(v)
	return _u
}

// SetNillableHealthConditions sets the "health_conditions" field if the given value is not nil.
func (_u *UserUpdate) SetNillableHealthConditions(v *string) *UserUpdate {
	if v != nil {
		_u.SetHealthConditions(*v)
	}
	return _u
}

// ClearHealthConditions clears the value of the "health_conditions" field.
func (_u *UserUpdate) ClearHealthConditions() *UserUpdate {
	_u.mutation.ClearHealthConditions()
	return _u
}

// SetDietaryPreferences sets the "dietary_preferences" field.
func (_u *UserUpdate) SetDietaryPreferences(v string) *UserUpdate {
	_u.mutation.SetDietaryPreferences(v)
	return _u
}

// SetNillableDietaryPreferences sets the "dietary_preferences" field if the given value is not nil.
func (_u *UserUpdate) SetNillableDietaryPreferences(v *string) *UserUpdate {
	if v != nil {
		_u.SetDietaryPreferences(*v)
	}
	return _u
}

// ClearDietaryPreferences clears the value of the "dietary_preferences" field.
func (_u *UserUpdate) ClearDietaryPreferences() *UserUpdate {
	_u.mutation.ClearDietaryPreferences()
	return _u
}

// SetAllergies sets the "allergies" field.
func (_u *UserUpdate) SetAllergies(v string) *UserUpdate {
	_u.mutation.SetAllergies(v)
	return _u
}

// SetNillableAllergies sets the "allergies" field if the given value is not nil.
func (_u *UserUpdate) SetNillableAllergies(v *string) *UserUpdate {
	if v != nil {
		_u.SetAllergies(*v)
	}
	return _u
}

// ClearAllergies clears the value of the "allergies" field.
func (_u *UserUpdate) ClearAllergies() *UserUpdate {
	_u.mutation.ClearAllergies()
	return _u
}

// SetScanCount sets the "scan_count" field.
func (_u *UserUpdate) SetScanCount(v int) *UserUpdate {
	_u.mutation.ResetScanCount()
	_u.mutation.SetScanCount(v)
	return _u
}

// SetNillableScanCount sets the "scan_count" field if the given value is not nil.
func (_u *UserUpdate) SetNillableScanCount(v *int) *UserUpdate {
	if v != nil {
		_u.SetScanCount(*v)
	}
	return _u
}

// AddScanCount adds value to the "scan_count" field.
func (_u *UserUpdate) AddScanCount(v int) *UserUpdate {
	_u.mutation.AddScanCount(v)
	return _u
}

// SetLastScanAt sets the "last_scan_at" field.
func (_u *UserUpdate) SetLastScanAt(v time.Time) *UserUpdate {
	_u.mutation.SetLastScanAt(v)
	return _u
}

// SetNillableLastScanAt sets the "last_scan_at" field if the given value is not nil.
func (_u *UserUpdate) SetNillableLastScanAt(v *time.Time) *UserUpdate {
	if v != nil {
		_u.SetLastScanAt(*v)
	}
	return _u
}

// ClearLastScanAt clears the value of the "last_scan_at" field.
func (_u *UserUpdate) ClearLastScanAt() *UserUpdate {
	_u.mutation.ClearLastScanAt()
	return _u
}

// SetLastLoginAt sets the "last_login_at" field.
func (_u *UserUpdate) SetLastLoginAt(v time.Time) *UserUpdate {
	_u.mutation.SetLastLoginAt(v)
	return _u
}

// SetNillableLastLoginAt sets the "last_login_at" field if the given value is not nil.
func (_u *UserUpdate) SetNillableLastLoginAt(v *time.Time) *UserUpdate {
	if v != nil {
		_u.SetLastLoginAt(*v)
	}
	return _u
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (_u *UserUpdate) ClearLastLoginAt() *UserUpdate {
	_u.mutation.ClearLastLoginAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *UserUpdate) SetCreatedAt(v time.Time) *UserUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *UserUpdate) SetNillableCreatedAt(v *time.Time) *UserUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserUpdate) SetUpdatedAt(v time.Time) *UserUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddDetectionIDs adds the "detections" edge to the Detection entity by IDs.
func (_u *UserUpdate) AddDetectionIDs(ids ...uuid.UUID) *UserUpdate {
	_u.mutation.AddDetectionIDs(ids...)
	return _u
}

// AddDetections adds the "detections" edges to the Detection entity.
func (_u *UserUpdate) AddDetections(v ...*Detection) *UserUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDetectionIDs(ids...)
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdate) Mutation() *UserMutation {
	return _u.mutation
}

// ClearDetections clears all "detections" edges to the Detection entity.
func (_u *UserUpdate) ClearDetections() *UserUpdate {
	_u.mutation.ClearDetections()
	return _u
}

// RemoveDetectionIDs removes the "detections" edge to Detection entities by IDs.
func (_u *UserUpdate) RemoveDetectionIDs(ids ...uuid.UUID) *UserUpdate {
	_u.mutation.RemoveDetectionIDs(ids...)
	return _u
}

// RemoveDetections removes "detections" edges to Detection entities.
func (_u *UserUpdate) RemoveDetections(v ...*Detection) *UserUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDetectionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := user.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdate) check() error {
	if v, ok := _u.mutation.Openid(); ok {
		if err := user.OpenidValidator(v); err != nil {
			return &ValidationError{Name: "openid", err: fmt.Errorf(`ent: validator failed for field "User.openid": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Age(); ok {
		if err := user.AgeValidator(v); err != nil {
			return &ValidationError{Name: "age", err: fmt.Errorf(`ent: validator failed for field "User.age": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScanCount(); ok {
		if err := user.ScanCountValidator(v); err != nil {
			return &ValidationError{Name: "scan_count", err: fmt.Errorf(`ent: validator failed for field "User.scan_count": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Openid(); ok {
		_spec.SetField(user.FieldOpenid, field.TypeString, value)
	}
	if value, ok := _u.mutation.Nickname(); ok {
		_spec.SetField(user.FieldNickname, field.TypeString, value)
	}
	if _u.mutation.NicknameCleared() {
		_spec.ClearField(user.FieldNickname, field.TypeString)
	}
	if value, ok := _u.mutation.AvatarURL(); ok {
		_spec.SetField(user.FieldAvatarURL, field.TypeString, value)
	}
	if _u.mutation.AvatarURLCleared() {
		_spec.ClearField(user.FieldAvatarURL, field.TypeString)
	}
	if value, ok := _u.mutation.Age(); ok {
		_spec.SetField(user.FieldAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAge(); ok {
		_spec.AddField(user.FieldAge, field.TypeInt, value)
	}
	if _u.mutation.AgeCleared() {
		_spec.ClearField(user.FieldAge, field.TypeInt)
	}
	if value, ok := _u.mutation.HealthConditions(); ok {
		_spec.SetField(user.FieldHealthConditions, field.TypeString, value)
	}
	if _u.mutation.HealthConditionsCleared() {
		_spec.ClearField(user.FieldHealthConditions, field.TypeString)
	}
	if value, ok := _u.mutation.DietaryPreferences(); ok {
		_spec.SetField(user.FieldDietaryPreferences, field.TypeString, value)
	}
	if _u.mutation.DietaryPreferencesCleared() {
		_spec.ClearField(user.FieldDietaryPreferences, field.TypeString)
	}
	if value, ok := _u.mutation.Allergies(); ok {
		_spec.SetField(user.FieldAllergies, field.TypeString, value)
	}
	if _u.mutation.AllergiesCleared() {
		_spec.ClearField(user.FieldAllergies, field.TypeString)
	}
	if value, ok := _u.mutation.ScanCount(); ok {
		_spec.SetField(user.FieldScanCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScanCount(); ok {
		_spec.AddField(user.FieldScanCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastScanAt(); ok {
		_spec.SetField(user.FieldLastScanAt, field.TypeTime, value)
	}
	if _u.mutation.LastScanAtCleared() {
		_spec.ClearField(user.FieldLastScanAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastLoginAt(); ok {
		_spec.SetField(user.FieldLastLoginAt, field.TypeTime, value)
	}
	if _u.mutation.LastLoginAtCleared() {
		_spec.ClearField(user.FieldLastLoginAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(user.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DetectionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.DetectionsTable,
			Columns: []string{user.DetectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(detection.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDetectionsIDs(); len(nodes) > 0 && !_u.mutation.DetectionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.DetectionsTable,
			Columns: []string{user.DetectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(detection.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DetectionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.DetectionsTable,
			Columns: []string{user.DetectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(detection.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserUpdateOne is the builder for updating a single User entity.
type UserUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserMutation
}

// SetOpenid sets the "openid" field.
func (_u *UserUpdateOne) SetOpenid(v string) *UserUpdateOne {
	_u.mutation.SetOpenid(v)
	return _u
}

// SetNillableOpenid sets the "openid" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableOpenid(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetOpenid(*v)
	}
	return _u
}

// SetNickname sets the "nickname" field.
func (_u *UserUpdateOne) SetNickname(v string) *UserUpdateOne {
	_u.mutation.SetNickname(v)
	return _u
}

// SetNillableNickname sets the "nickname" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableNickname(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetNickname(*v)
	}
	return _u
}

// ClearNickname clears the value of the "nickname" field.
func (_u *UserUpdateOne) ClearNickname() *UserUpdateOne {
	_u.mutation.ClearNickname()
	return _u
}

// SetAvatarURL sets the "avatar_url" field.
func (_u *UserUpdateOne) SetAvatarURL(v string) *UserUpdateOne {
	_u.mutation.SetAvatarURL(v)
	return _u
}

// SetNillableAvatarURL sets the "avatar_url" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableAvatarURL(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetAvatarURL(*v)
	}
	return _u
}

// ClearAvatarURL clears the value of the "avatar_url" field.
func (_u *UserUpdateOne) ClearAvatarURL() *UserUpdateOne {
	_u.mutation.ClearAvatarURL()
	return _u
}

// SetAge sets the "age" field.
func (_u *UserUpdateOne) SetAge(v int) *UserUpdateOne {
	_u.mutation.ResetAge()
	_u.mutation.SetAge(v)
	return _u
}

// SetNillableAge sets the "age" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableAge(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetAge(*v)
	}
	return _u
}

// AddAge adds value to the "age" field.
func (_u *UserUpdateOne) AddAge(v int) *UserUpdateOne {
	_u.mutation.AddAge(v)
	return _u
}

// ClearAge clears the value of the "age" field.
func (_u *UserUpdateOne) ClearAge() *UserUpdateOne {
	_u.mutation.ClearAge()
	return _u
}

// SetHealthConditions sets the "health_conditions" field.
func (_u *UserUpdateOne) SetHealthConditions(v string) *UserUpdateOne {
	_u.mutation.SetHealthConditions(v)
	return _u
}

// SetNillableHealthConditions sets the "health_conditions" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableHealthConditions(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetHealthConditions(*v)
	}
	return _u
}

// ClearHealthConditions clears the value of the "health_conditions" field.
func (_u *UserUpdateOne) ClearHealthConditions() *UserUpdateOne {
	_u.mutation.ClearHealthConditions()
	return _u
}

// SetDietaryPreferences sets the "dietary_preferences" field.
func (_u *UserUpdateOne) SetDietaryPreferences(v string) *UserUpdateOne {
	_u.mutation.SetDietaryPreferences(v)
	return _u
}

// SetNillableDietaryPreferences sets the "dietary_preferences" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableDietaryPreferences(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetDietaryPreferences(*v)
	}
	return _u
}

// ClearDietaryPreferences clears the value of the "dietary_preferences" field.
func (_u *UserUpdateOne) ClearDietaryPreferences() *UserUpdateOne {
	_u.mutation.ClearDietaryPreferences()
	return _u
}

// SetAllergies sets the "allergies" field.
func (_u *UserUpdateOne) SetAllergies(v string) *UserUpdateOne {
	_u.mutation.SetAllergies(v)
	return _u
}

// SetNillableAllergies sets the "allergies" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableAllergies(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetAllergies(*v)
	}
	return _u
}

// ClearAllergies clears the value of the "allergies" field.
func (_u *UserUpdateOne) ClearAllergies() *UserUpdateOne {
	_u.mutation.ClearAllergies()
	return _u
}

// SetScanCount sets the "scan_count" field.
func (_u *UserUpdateOne) SetScanCount(v int) *UserUpdateOne {
	_u.mutation.ResetScanCount()
	_u.mutation.SetScanCount(v)
	return _u
}

// SetNillableScanCount sets the "scan_count" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableScanCount(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetScanCount(*v)
	}
	return _u
}

// AddScanCount adds value to the "scan_count" field.
func (_u *UserUpdateOne) AddScanCount(v int) *UserUpdateOne {
	_u.mutation.AddScanCount(v)
	return _u
}

// SetLastScanAt sets the "last_scan_at" field.
func (_u *UserUpdateOne) SetLastScanAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetLastScanAt(v)
	return _u
}

// SetNillableLastScanAt sets the "last_scan_at" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableLastScanAt(v *time.Time) *UserUpdateOne {
	if v != nil {
		_u.SetLastScanAt(*v)
	}
	return _u
}

// ClearLastScanAt clears the value of the "last_scan_at" field.
func (_u *UserUpdateOne) ClearLastScanAt() *UserUpdateOne {
	_u.mutation.ClearLastScanAt()
	return _u
}

// SetLastLoginAt sets the "last_login_at" field.
func (_u *UserUpdateOne) SetLastLoginAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetLastLoginAt(v)
	return _u
}

// SetNillableLastLoginAt sets the "last_login_at" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableLastLoginAt(v *time.Time) *UserUpdateOne {
	if v != nil {
		_u.SetLastLoginAt(*v)
	}
	return _u
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (_u *UserUpdateOne) ClearLastLoginAt() *UserUpdateOne {
	_u.mutation.ClearLastLoginAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *UserUpdateOne) SetCreatedAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableCreatedAt(v *time.Time) *UserUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserUpdateOne) SetUpdatedAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddDetectionIDs adds the "detections" edge to the Detection entity by IDs.
func (_u *UserUpdateOne) AddDetectionIDs(ids ...uuid.UUID) *UserUpdateOne {
	_u.mutation.AddDetectionIDs(ids...)
	return _u
}

// AddDetections adds the "detections" edges to the Detection entity.
func (_u *UserUpdateOne) AddDetections(v ...*Detection) *UserUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDetectionIDs(ids...)
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdateOne) Mutation() *UserMutation {
	return _u.mutation
}

// ClearDetections clears all "detections" edges to the Detection entity.
func (_u *UserUpdateOne) ClearDetections() *UserUpdateOne {
	_u.mutation.ClearDetections()
	return _u
}

// RemoveDetectionIDs removes the "detections" edge to Detection entities by IDs.
func (_u *UserUpdateOne) RemoveDetectionIDs(ids ...uuid.UUID) *UserUpdateOne {
	_u.mutation.RemoveDetectionIDs(ids...)
	return _u
}

// RemoveDetections removes "detections" edges to Detection entities.
func (_u *UserUpdateOne) RemoveDetections(v ...*Detection) *UserUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDetectionIDs(ids...)
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdateOne) Where(ps ...predicate.User) *UserUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserUpdateOne) Select(field string, fields ...string) *UserUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated User entity.
func (_u *UserUpdateOne) Save(ctx context.Context) (*User, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdateOne) SaveX(ctx context.Context) *User {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := user.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdateOne) check() error {
	if v, ok := _u.mutation.Openid(); ok {
		if err := user.OpenidValidator(v); err != nil {
			return &ValidationError{Name: "openid", err: fmt.Errorf(`ent: validator failed for field "User.openid": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Age(); ok {
		if err := user.AgeValidator(v); err != nil {
			return &ValidationError{Name: "age", err: fmt.Errorf(`ent: validator failed for field "User.age": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScanCount(); ok {
		if err := user.ScanCountValidator(v); err != nil {
			return &ValidationError{Name: "scan_count", err: fmt.Errorf(`ent: validator failed for field "User.scan_count": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdateOne) sqlSave(ctx context.Context) (_node *User, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "User.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, user.FieldID)
		for _, f := range fields {
			if !user.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != user.FieldID {
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
	if value, ok := _u.mutation.Openid(); ok {
		_spec.SetField(user.FieldOpenid, field.TypeString, value)
	}
	if value, ok := _u.mutation.Nickname(); ok {
		_spec.SetField(user.FieldNickname, field.TypeString, value)
	}
	if _u.mutation.NicknameCleared() {
		_spec.ClearField(user.FieldNickname, field.TypeString)
	}
	if value, ok := _u.mutation.AvatarURL(); ok {
		_spec.SetField(user.FieldAvatarURL, field.TypeString, value)
	}
	if _u.mutation.AvatarURLCleared() {
		_spec.ClearField(user.FieldAvatarURL, field.TypeString)
	}
	if value, ok := _u.mutation.Age(); ok {
		_spec.SetField(user.FieldAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAge(); ok {
		_spec.AddField(user.FieldAge, field.TypeInt, value)
	}
	if _u.mutation.AgeCleared() {
		_spec.ClearField(user.FieldAge, field.TypeInt)
	}
	if value, ok := _u.mutation.HealthConditions(); ok {
		_spec.SetField(user.FieldHealthConditions, field.TypeString, value)
	}
	if _u.mutation.HealthConditionsCleared() {
		_spec.ClearField(user.FieldHealthConditions, field.TypeString)
	}
	if value, ok := _u.mutation.DietaryPreferences(); ok {
		_spec.SetField(user.FieldDietaryPreferences, field.TypeString, value)
	}
	if _u.mutation.DietaryPreferencesCleared() {
		_spec.ClearField(user.FieldDietaryPreferences, field.TypeString)
	}
	if value, ok := _u.mutation.Allergies(); ok {
		_spec.SetField(user.FieldAllergies, field.TypeString, value)
	}
	if _u.mutation.AllergiesCleared() {
		_spec.ClearField(user.FieldAllergies, field.TypeString)
	}
	if value, ok := _u.mutation.ScanCount(); ok {
		_spec.SetField(user.FieldScanCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScanCount(); ok {
		_spec.AddField(user.FieldScanCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastScanAt(); ok {
		_spec.SetField(user.FieldLastScanAt, field.TypeTime, value)
	}
	if _u.mutation.LastScanAtCleared() {
		_spec.ClearField(user.FieldLastScanAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastLoginAt(); ok {
		_spec.SetField(user.FieldLastLoginAt, field.TypeTime, value)
	}
	if _u.mutation.LastLoginAtCleared() {
		_spec.ClearField(user.FieldLastLoginAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(user.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DetectionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.DetectionsTable,
			Columns: []string{user.DetectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(detection.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDetectionsIDs(); len(nodes) > 0 && !_u.mutation.DetectionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.DetectionsTable,
			Columns: []string{user.DetectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(detection.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DetectionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.DetectionsTable,
			Columns: []string{user.DetectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(detection.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &User{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
