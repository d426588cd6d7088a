// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nutriscan/nutrition-scanner/gen/ent/article"
	"github.com/nutriscan/nutrition-scanner/gen/ent/detection"
	"github.com/nutriscan/nutrition-scanner/gen/ent/predicate"
	"github.com/nutriscan/nutrition-scanner/gen/ent/user"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeArticle   = "Article"
	TypeDetection = "Detection"
	TypeUser      = "User"
)

// ArticleMutation represents an operation that mutates the Article nodes in the graph.
type ArticleMutation struct {
	config
	op            Op
	typ           string
	id            *int
	title         *string
	summary       *string
	content       *string
	category      *string
	cover_url     *string
	view_count    *int
	addview_count *int
	is_published  *bool
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Article, error)
	predicates    []predicate.Article
}

var _ ent.Mutation = (*ArticleMutation)(nil)

// articleOption allows management of the mutation configuration using functional options.
type articleOption func(*ArticleMutation)

// newArticleMutation creates new mutation for the Article entity.
func newArticleMutation(c config, op Op, opts ...articleOption) *ArticleMutation {
	m := &ArticleMutation{
		config:        c,
		op:            op,
		typ:           TypeArticle,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withArticleID sets the ID field of the mutation.
func withArticleID(id int) articleOption {
	return func(m *ArticleMutation) {
		var (
			err   error
			once  sync.Once
			value *Article
		)
		m.oldValue = func(ctx context.Context) (*Article, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Article.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withArticle sets the old Article of the mutation.
func withArticle(node *Article) articleOption {
	return func(m *ArticleMutation) {
		m.oldValue = func(context.Context) (*Article, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ArticleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ArticleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Article entities.
func (m *ArticleMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ArticleMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ArticleMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Article.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *ArticleMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ArticleMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ArticleMutation) ResetTitle() {
	m.title = nil
}

// SetSummary sets the "summary" field.
func (m *ArticleMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *ArticleMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *ArticleMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[article.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *ArticleMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[article.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *ArticleMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, article.FieldSummary)
}

// SetContent sets the "content" field.
func (m *ArticleMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ArticleMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ArticleMutation) ResetContent() {
	m.content = nil
}

// SetCategory sets the "category" field.
func (m *ArticleMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *ArticleMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldCategory(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *ArticleMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[article.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *ArticleMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[article.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *ArticleMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, article.FieldCategory)
}

// SetCoverURL sets the "cover_url" field.
func (m *ArticleMutation) SetCoverURL(s string) {
	m.cover_url = &s
}

// CoverURL returns the value of the "cover_url" field in the mutation.
func (m *ArticleMutation) CoverURL() (r string, exists bool) {
	v := m.cover_url
	if v == nil {
		return
	}
	return *v, true
}

// OldCoverURL returns the old "cover_url" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldCoverURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCoverURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCoverURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCoverURL: %w", err)
	}
	return oldValue.CoverURL, nil
}

// ClearCoverURL clears the value of the "cover_url" field.
func (m *ArticleMutation) ClearCoverURL() {
	m.cover_url = nil
	m.clearedFields[article.FieldCoverURL] = struct{}{}
}

// CoverURLCleared returns if the "cover_url" field was cleared in this mutation.
func (m *ArticleMutation) CoverURLCleared() bool {
	_, ok := m.clearedFields[article.FieldCoverURL]
	return ok
}

// ResetCoverURL resets all changes to the "cover_url" field.
func (m *ArticleMutation) ResetCoverURL() {
	m.cover_url = nil
	delete(m.clearedFields, article.FieldCoverURL)
}

// SetViewCount sets the "view_count" field.
func (m *ArticleMutation) SetViewCount(i int) {
	m.view_count = &i
	m.addview_count = nil
}

// ViewCount returns the value of the "view_count" field in the mutation.
func (m *ArticleMutation) ViewCount() (r int, exists bool) {
	v := m.view_count
	if v == nil {
		return
	}
	return *v, true
}

// OldViewCount returns the old "view_count" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldViewCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldViewCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldViewCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldViewCount: %w", err)
	}
	return oldValue.ViewCount, nil
}

// AddViewCount adds i to the "view_count" field.
func (m *ArticleMutation) AddViewCount(i int) {
	if m.addview_count != nil {
		*m.addview_count += i
	} else {
		m.addview_count = &i
	}
}

// AddedViewCount returns the value that was added to the "view_count" field in this mutation.
func (m *ArticleMutation) AddedViewCount() (r int, exists bool) {
	v := m.addview_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetViewCount resets all changes to the "view_count" field.
func (m *ArticleMutation) ResetViewCount() {
	m.view_count = nil
	m.addview_count = nil
}

// SetIsPublished sets the "is_published" field.
func (m *ArticleMutation) SetIsPublished(b bool) {
	m.is_published = &b
}

// IsPublished returns the value of the "is_published" field in the mutation.
func (m *ArticleMutation) IsPublished() (r bool, exists bool) {
	v := m.is_published
	if v == nil {
		return
	}
	return *v, true
}

// OldIsPublished returns the old "is_published" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldIsPublished(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsPublished is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsPublished requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsPublished: %w", err)
	}
	return oldValue.IsPublished, nil
}

// ResetIsPublished resets all changes to the "is_published" field.
func (m *ArticleMutation) ResetIsPublished() {
	m.is_published = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ArticleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ArticleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ArticleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ArticleMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ArticleMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ArticleMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ArticleMutation builder.
func (m *ArticleMutation) Where(ps ...predicate.Article) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ArticleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ArticleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Article, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ArticleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ArticleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Article).
func (m *ArticleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ArticleMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.title != nil {
		fields = append(fields, article.FieldTitle)
	}
	if m.summary != nil {
		fields = append(fields, article.FieldSummary)
	}
	if m.content != nil {
		fields = append(fields, article.FieldContent)
	}
	if m.category != nil {
		fields = append(fields, article.FieldCategory)
	}
	if m.cover_url != nil {
		fields = append(fields, article.FieldCoverURL)
	}
	if m.view_count != nil {
		fields = append(fields, article.FieldViewCount)
	}
	if m.is_published != nil {
		fields = append(fields, article.FieldIsPublished)
	}
	if m.created_at != nil {
		fields = append(fields, article.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, article.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ArticleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case article.FieldTitle:
		return m.Title()
	case article.FieldSummary:
		return m.Summary()
	case article.FieldContent:
		return m.Content()
	case article.FieldCategory:
		return m.Category()
	case article.FieldCoverURL:
		return m.CoverURL()
	case article.FieldViewCount:
		return m.ViewCount()
	case article.FieldIsPublished:
		return m.IsPublished()
	case article.FieldCreatedAt:
		return m.CreatedAt()
	case article.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ArticleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case article.FieldTitle:
		return m.OldTitle(ctx)
	case article.FieldSummary:
		return m.OldSummary(ctx)
	case article.FieldContent:
		return m.OldContent(ctx)
	case article.FieldCategory:
		return m.OldCategory(ctx)
	case article.FieldCoverURL:
		return m.OldCoverURL(ctx)
	case article.FieldViewCount:
		return m.OldViewCount(ctx)
	case article.FieldIsPublished:
		return m.OldIsPublished(ctx)
	case article.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case article.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Article field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArticleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case article.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case article.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case article.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case article.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case article.FieldCoverURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCoverURL(v)
		return nil
	case article.FieldViewCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetViewCount(v)
		return nil
	case article.FieldIsPublished:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsPublished(v)
		return nil
	case article.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case article.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Article field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ArticleMutation) AddedFields() []string {
	var fields []string
	if m.addview_count != nil {
		fields = append(fields, article.FieldViewCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ArticleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case article.FieldViewCount:
		return m.AddedViewCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArticleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case article.FieldViewCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddViewCount(v)
		return nil
	}
	return fmt.Errorf("unknown Article numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ArticleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(article.FieldSummary) {
		fields = append(fields, article.FieldSummary)
	}
	if m.FieldCleared(article.FieldCategory) {
		fields = append(fields, article.FieldCategory)
	}
	if m.FieldCleared(article.FieldCoverURL) {
		fields = append(fields, article.FieldCoverURL)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ArticleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ArticleMutation) ClearField(name string) error {
	switch name {
	case article.FieldSummary:
		m.ClearSummary()
		return nil
	case article.FieldCategory:
		m.ClearCategory()
		return nil
	case article.FieldCoverURL:
		m.ClearCoverURL()
		return nil
	}
	return fmt.Errorf("unknown Article nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ArticleMutation) ResetField(name string) error {
	switch name {
	case article.FieldTitle:
		m.ResetTitle()
		return nil
	case article.FieldSummary:
		m.ResetSummary()
		return nil
	case article.FieldContent:
		m.ResetContent()
		return nil
	case article.FieldCategory:
		m.ResetCategory()
		return nil
	case article.FieldCoverURL:
		m.ResetCoverURL()
		return nil
	case article.FieldViewCount:
		m.ResetViewCount()
		return nil
	case article.FieldIsPublished:
		m.ResetIsPublished()
		return nil
	case article.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case article.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Article field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ArticleMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ArticleMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ArticleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ArticleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ArticleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ArticleMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ArticleMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Article unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ArticleMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Article edge %s", name)
}

// DetectionMutation represents an operation that mutates the Detection nodes in the graph.
type DetectionMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	detection_type        *string
	status                *string
	image_path            *string
	raw_text              *string
	barcode               *string
	product_name          *string
	brand                 *string
	category              *string
	energy_kj             *float64
	addenergy_kj          *float64
	energy_kcal           *float64
	addenergy_kcal        *float64
	protein               *float64
	addprotein            *float64
	fat                   *float64
	addfat                *float64
	saturated_fat         *float64
	addsaturated_fat      *float64
	carbohydrate          *float64
	addcarbohydrate       *float64
	sugar                 *float64
	addsugar              *float64
	fiber                 *float64
	addfiber              *float64
	sodium                *float64
	addsodium             *float64
	other_nutrients       *json.RawMessage
	appendother_nutrients json.RawMessage
	health_score          *float64
	addhealth_score       *float64
	risk_level            *string
	health_advice         *string
	analysis              *json.RawMessage
	appendanalysis        json.RawMessage
	risk_factors          *json.RawMessage
	appendrisk_factors    json.RawMessage
	ocr_confidence        *float32
	addocr_confidence     *float32
	processing_ms         *int64
	addprocessing_ms      *int64
	error_message         *string
	user_rating           *int
	adduser_rating        *int
	user_feedback         *string
	is_accurate           *bool
	is_favorite           *bool
	created_at            *time.Time
	updated_at            *time.Time
	completed_at          *time.Time
	clearedFields         map[string]struct{}
	user                  *uuid.UUID
	cleareduser           bool
	done                  bool
	oldValue              func(context.Context) (*Detection, error)
	predicates            []predicate.Detection
}

var _ ent.Mutation = (*DetectionMutation)(nil)

// detectionOption allows management of the mutation configuration using functional options.
type detectionOption func(*DetectionMutation)

// newDetectionMutation creates new mutation for the Detection entity.
func newDetectionMutation(c config, op Op, opts ...detectionOption) *DetectionMutation {
	m := &DetectionMutation{
		config:        c,
		op:            op,
		typ:           TypeDetection,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDetectionID sets the ID field of the mutation.
func withDetectionID(id uuid.UUID) detectionOption {
	return func(m *DetectionMutation) {
		var (
			err   error
			once  sync.Once
			value *Detection
		)
		m.oldValue = func(ctx context.Context) (*Detection, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Detection.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDetection sets the old Detection of the mutation.
func withDetection(node *Detection) detectionOption {
	return func(m *DetectionMutation) {
		m.oldValue = func(context.Context) (*Detection, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DetectionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DetectionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Detection entities.
func (m *DetectionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DetectionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DetectionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Detection.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *DetectionMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *DetectionMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Detection entity.
// If the Detection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionMutation) OldUserID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *DetectionMutation) ClearUserID() {
	m.user = nil
	m.clearedFields[detection.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *DetectionMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[detection.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *DetectionMutation) ResetUserID() {
	m.user = nil
	delete(m.clearedFields, detection.FieldUserID)
}

// SetDetectionType sets the "detection_type" field.
func (m *DetectionMutation) SetDetectionType(s string) {
	m.detection_type = &s
}

// DetectionType returns the value of the "detection_type" field in the mutation.
func (m *DetectionMutation) DetectionType() (r string, exists bool) {
	v := m.detection_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDetectionType returns the old "detection_type" field's value of the Detection entity.
// If the Detection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionMutation) OldDetectionType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetectionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetectionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetectionType: %w", err)
	}
	return oldValue.DetectionType, nil
}

// ResetDetectionType resets all changes to the "detection_type" field.
func (m *DetectionMutation) ResetDetectionType() {
	m.detection_type = nil
}

// SetStatus sets the "status" field.
func (m *DetectionMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *DetectionMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Detection entity.
// If the Detection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DetectionMutation) ResetStatus() {
	m.status = nil
}

// SetImagePath sets the "image_path" field.
func (m *DetectionMutation) SetImagePath(s string) {
	m.image_path = &s
}

// ImagePath returns the value of the "image_path" field in the mutation.
func (m *DetectionMutation) ImagePath() (r string, exists bool) {
	v := m.image_path
	if v == nil {
		return
	}
	return *v, true
}

// OldImagePath returns the old "image_path" field's value of the Detection entity.
// If the Detection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionMutation) OldImagePath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImagePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImagePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImagePath: %w", err)
	}
	return oldValue.ImagePath, nil
}

// ClearImagePath clears the value of the "image_path" field.
func (m *DetectionMutation) ClearImagePath() {
	m.image_path = nil
	m.clearedFields[detection.FieldImagePath] = struct{}{}
}

// ImagePathCleared returns if the "image_path" field was cleared in this mutation.
func (m *DetectionMutation) ImagePathCleared() bool {
	_, ok := m.clearedFields[detection.FieldImagePath]
	return ok
}

// ResetImagePath resets all changes to the "image_path" field.
func (m *DetectionMutation) ResetImagePath() {
	m.image_path = nil
	delete(m.clearedFields, detection.FieldImagePath)
}

// SetRawText sets the "raw_text" field.
func (m *DetectionMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *DetectionMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the Detection entity.
// If the Detection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionMutation) OldRawText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ClearRawText clears the value of the "raw_text" field.
func (m *DetectionMutation) ClearRawText() {
	m.raw_text = nil
	m.clearedFields[detection.FieldRawText] = struct{}{}
}

// RawTextCleared returns if the "raw_text" field was cleared in this mutation.
func (m *DetectionMutation) RawTextCleared() bool {
	_, ok := m.clearedFields[detection.FieldRawText]
	return ok
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *DetectionMutation) ResetRawText() {
	m.raw_text = nil
	delete(m.clearedFields, detection.FieldRawText)
}

// SetBarcode sets the "barcode" field.
func (m *DetectionMutation) SetBarcode(s string) {
	m.barcode = &s
}

// Barcode returns the value of the "barcode" field in the mutation.
func (m *DetectionMutation) Barcode() (r string, exists bool) {
	v := m.barcode
	if v == nil {
		return
	}
	return *v, true
}

// OldBarcode returns the old "barcode" field's value of the Detection entity.
// If the Detection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionMutation) OldBarcode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBarcode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBarcode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBarcode: %w", err)
	}
	return oldValue.Barcode, nil
}

// ClearBarcode clears the value of the "barcode" field.
func (m *DetectionMutation) ClearBarcode() {
	m.barcode = nil
	m.clearedFields[detection.FieldBarcode] = struct{}{}
}

// BarcodeCleared returns if the "barcode" field was cleared in this mutation.
func (m *DetectionMutation) BarcodeCleared() bool {
	_, ok := m.clearedFields[detection.FieldBarcode]
	return ok
}

// ResetBarcode resets all changes to the "barcode" field.
func (m *DetectionMutation) ResetBarcode() {
	m.barcode = nil
	delete(m.clearedFields, detection.FieldBarcode)
}

// SetProductName sets the "product_name" field.
func (m *DetectionMutation) SetProductName(s string) {
	m.product_name = &s
}

// ProductName returns the value of the "product_name" field in the mutation.
func (m *DetectionMutation) ProductName() (r string, exists bool) {
	v := m.product_name
	if v == nil {
		return
	}
	return *v, true
}

// OldProductName returns the old "product_name" field's value of the Detection entity.
// If the Detection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionMutation) OldProductName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProductName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProductName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProductName: %w", err)
	}
	return oldValue.ProductName, nil
}

// ClearProductName clears the value of the "product_name" field.
func (m *DetectionMutation) ClearProductName() {
	m.product_name = nil
	m.clearedFields[detection.FieldProductName] = struct{}{}
}

// ProductNameCleared returns if the "product_name" field was cleared in this mutation.
func (m *DetectionMutation) ProductNameCleared() bool {
	_, ok := m.clearedFields[detection.FieldProductName]
	return ok
}

// ResetProductName resets all changes to the "product_name" field.
func (m *DetectionMutation) ResetProductName() {
	m.product_name = nil
	delete(m.clearedFields, detection.FieldProductName)
}

// SetBrand sets the "brand" field.
func (m *DetectionMutation) SetBrand(s string) {
	m.brand = &s
}

// Brand returns the value of the "brand" field in the mutation.
func (m *DetectionMutation) Brand() (r string, exists bool) {
	v := m.brand
	if v == nil {
		return
	}
	return *v, true
}

// OldBrand returns the old "brand" field's value of the Detection entity.
// If the Detection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionMutation) OldBrand(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBrand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBrand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBrand: %w", err)
	}
	return oldValue.Brand, nil
}

// ClearBrand clears the value of the "brand" field.
func (m *DetectionMutation) ClearBrand() {
	m.brand = nil
	m.clearedFields[detection.FieldBrand] = struct{}{}
}

// BrandCleared returns if the "brand" field was cleared in this mutation.
func (m *DetectionMutation) BrandCleared() bool {
	_, ok := m.clearedFields[detection.FieldBrand]
	return ok
}

// ResetBrand resets all changes to the "brand" field.
func (m *DetectionMutation) ResetBrand() {
	m.brand = nil
	delete(m.clearedFields, detection.FieldBrand)
}

// SetCategory sets the "category" field.
func (m *DetectionMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *DetectionMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Detection entity.
// If the Detection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionMutation) OldCategory(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *DetectionMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[detection.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *DetectionMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[detection.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *DetectionMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, detection.FieldCategory)
}

// SetEnergyKj sets the "energy_kj" field.
func (m *DetectionMutation) SetEnergyKj(f float64) {
	m.energy_kj = &f
	m.addenergy_kj = nil
}

// EnergyKj returns the value of the "energy_kj" field in the mutation.
func (m *DetectionMutation) EnergyKj() (r float64, exists bool) {
	v := m.energy_kj
	if v == nil {
		return
	}
	return *v, true
}

// OldEnergyKj returns the old "energy_kj" field's value of the Detection entity.
// If the Detection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionMutation) OldEnergyKj(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnergyKj is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnergyKj requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnergyKj: %w", err)
	}
	return oldValue.EnergyKj, nil
}

// AddEnergyKj adds f to the "energy_kj" field.
func (m *DetectionMutation) AddEnergyKj(f float64) {
	if m.addenergy_kj != nil {
		*m.addenergy_kj += f
	} else {
		m.addenergy_kj = &f
	}
}

// AddedEnergyKj returns the value that was added to the "energy_kj" field in this mutation.
func (m *DetectionMutation) AddedEnergyKj() (r float64, exists bool) {
	v := m.addenergy_kj
	if v == nil {
		return
	}
	return *v, true
}

// ClearEnergyKj clears the value of the "energy_kj" field.
func (m *DetectionMutation) ClearEnergyKj() {
	m.energy_kj = nil
	m.addenergy_kj = nil
	m.clearedFields[detection.FieldEnergyKj] = struct{}{}
}

// EnergyKjCleared returns if the "energy_kj" field was cleared in this mutation.
func (m *DetectionMutation) EnergyKjCleared() bool {
	_, ok := m.clearedFields[detection.FieldEnergyKj]
	return ok
}

// ResetEnergyKj resets all changes to the "energy_kj" field.
func (m *DetectionMutation) ResetEnergyKj() {
	m.energy_kj = nil
	m.addenergy_kj = nil
	delete(m.clearedFields, detection.FieldEnergyKj)
}

// SetEnergyKcal sets the "energy_kcal" field.
func (m *DetectionMutation) SetEnergyKcal(f float64) {
	m.energy_kcal = &f
	m.addenergy_kcal = nil
}

// EnergyKcal returns the value of the "energy_kcal" field in the mutation.
func (m *DetectionMutation) EnergyKcal() (r float64, exists bool) {
	v := m.energy_kcal
	if v == nil {
		return
	}
	return *v, true
}

// OldEnergyKcal returns the old "energy_kcal" field's value of the Detection entity.
// If the Detection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionMutation) OldEnergyKcal(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnergyKcal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnergyKcal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnergyKcal: %w", err)
	}
	return oldValue.EnergyKcal, nil
}

// AddEnergyKcal adds f to the "energy_kcal" field.
func (m *DetectionMutation) AddEnergyKcal(f float64) {
	if m.addenergy_kcal != nil {
		*m.addenergy_kcal += f
	} else {
		m.addenergy_kcal = &f
	}
}

// AddedEnergyKcal returns the value that was added to the "energy_kcal" field in this mutation.
func (m *DetectionMutation) AddedEnergyKcal() (r float64, exists bool) {
	v := m.addenergy_kcal
	if v == nil {
		return
	}
	return *v, true
}

// ClearEnergyKcal clears the value of the "energy_kcal" field.
func (m *DetectionMutation) ClearEnergyKcal() {
	m.energy_kcal = nil
	m.addenergy_kcal = nil
	m.clearedFields[detection.FieldEnergyKcal] = struct{}{}
}

// EnergyKcalCleared returns if the "energy_kcal" field was cleared in this mutation.
func (m *DetectionMutation) EnergyKcalCleared() bool {
	_, ok := m.clearedFields[detection.FieldEnergyKcal]
	return ok
}

// ResetEnergyKcal resets all changes to the "energy_kcal" field.
func (m *DetectionMutation) ResetEnergyKcal() {
	m.energy_kcal = nil
	m.addenergy_kcal = nil
	delete(m.clearedFields, detection.FieldEnergyKcal)
}

// SetProtein sets the "protein" field.
func (m *DetectionMutation) SetProtein(f float64) {
	m.protein = &f
	m.addprotein = nil
}

// Protein returns the value of the "protein" field in the mutation.
func (m *DetectionMutation) Protein() (r float64, exists bool) {
	v := m.protein
	if v == nil {
		return
	}
	return *v, true
}

// OldProtein returns the old "protein" field's value of the Detection entity.
// If the Detection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionMutation) OldProtein(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProtein is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProtein requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProtein: %w", err)
	}
	return oldValue.Protein, nil
}

// AddProtein adds f to the "protein" field.
func (m *DetectionMutation) AddProtein(f float64) {
	if m.addprotein != nil {
		*m.addprotein += f
	} else {
		m.addprotein = &f
	}
}

// AddedProtein returns the value that was added to the "protein" field in this mutation.
func (m *DetectionMutation) AddedProtein() (r float64, exists bool) {
	v := m.addprotein
	if v == nil {
		return
	}
	return *v, true
}

// ClearProtein clears the value of the "protein" field.
func (m *DetectionMutation) ClearProtein() {
	m.protein = nil
	m.addprotein = nil
	m.clearedFields[detection.FieldProtein] = struct{}{}
}

// ProteinCleared returns if the "protein" field was cleared in this mutation.
func (m *DetectionMutation) ProteinCleared() bool {
	_, ok := m.clearedFields[detection.FieldProtein]
	return ok
}

// ResetProtein resets all changes to the "protein" field.
func (m *DetectionMutation) ResetProtein() {
	m.protein = nil
	m.addprotein = nil
	delete(m.clearedFields, detection.FieldProtein)
}

// SetFat sets the "fat" field.
func (m *DetectionMutation) SetFat(f float64) {
	m.fat = &f
	m.addfat = nil
}

// Fat returns the value of the "fat" field in the mutation.
func (m *DetectionMutation) Fat() (r float64, exists bool) {
	v := m.fat
	if v == nil {
		return
	}
	return *v, true
}

// OldFat returns the old "fat" field's value of the Detection entity.
// If the Detection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionMutation) OldFat(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFat: %w", err)
	}
	return oldValue.Fat, nil
}

// AddFat adds f to the "fat" field.
func (m *DetectionMutation) AddFat(f float64) {
	if m.addfat != nil {
		*m.addfat += f
	} else {
		m.addfat = &f
	}
}

// AddedFat returns the value that was added to the "fat" field in this mutation.
func (m *DetectionMutation) AddedFat() (r float64, exists bool) {
	v := m.addfat
	if v == nil {
		return
	}
	return *v, true
}

// ClearFat clears the value of the "fat" field.
func (m *DetectionMutation) ClearFat() {
	m.fat = nil
	m.addfat = nil
	m.clearedFields[detection.FieldFat] = struct{}{}
}

// FatCleared returns if the "fat" field was cleared in this mutation.
func (m *DetectionMutation) FatCleared() bool {
	_, ok := m.clearedFields[detection.FieldFat]
	return ok
}

// ResetFat resets all changes to the "fat" field.
func (m *DetectionMutation) ResetFat() {
	m.fat = nil
	m.addfat = nil
	delete(m.clearedFields, detection.FieldFat)
}

// SetSaturatedFat sets the "saturated_fat" field.
func (m *DetectionMutation) SetSaturatedFat(f float64) {
	m.saturated_fat = &f
	m.addsaturated_fat = nil
}

// SaturatedFat returns the value of the "saturated_fat" field in the mutation.
func (m *DetectionMutation) SaturatedFat() (r float64, exists bool) {
	v := m.saturated_fat
	if v == nil {
		return
	}
	return *v, true
}

// OldSaturatedFat returns the old "saturated_fat" field's value of the Detection entity.
// If the Detection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionMutation) OldSaturatedFat(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSaturatedFat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSaturatedFat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSaturatedFat: %w", err)
	}
	return oldValue.SaturatedFat, nil
}

// AddSaturatedFat adds f to the "saturated_fat" field.
func (m *DetectionMutation) AddSaturatedFat(f float64) {
	if m.addsaturated_fat != nil {
		*m.addsaturated_fat += f
	} else {
		m.addsaturated_fat = &f
	}
}

// AddedSaturatedFat returns the value that was added to the "saturated_fat" field in this mutation.
func (m *DetectionMutation) AddedSaturatedFat() (r float64, exists bool) {
	v := m.addsaturated_fat
	if v == nil {
		return
	}
	return *v, true
}

// ClearSaturatedFat clears the value of the "saturated_fat" field.
func (m *DetectionMutation) ClearSaturatedFat() {
	m.saturated_fat = nil
	m.addsaturated_fat = nil
	m.clearedFields[detection.FieldSaturatedFat] = struct{}{}
}

// SaturatedFatCleared returns if the "saturated_fat" field was cleared in this mutation.
func (m *DetectionMutation) SaturatedFatCleared() bool {
	_, ok := m.clearedFields[detection.FieldSaturatedFat]
	return ok
}

// ResetSaturatedFat resets all changes to the "saturated_fat" field.
func (m *DetectionMutation) ResetSaturatedFat() {
	m.saturated_fat = nil
	m.addsaturated_fat = nil
	delete(m.clearedFields, detection.FieldSaturatedFat)
}

// SetCarbohydrate sets the "carbohydrate" field.
func (m *DetectionMutation) SetCarbohydrate(f float64) {
	m.carbohydrate = &f
	m.addcarbohydrate = nil
}

// Carbohydrate returns the value of the "carbohydrate" field in the mutation.
func (m *DetectionMutation) Carbohydrate() (r float64, exists bool) {
	v := m.carbohydrate
	if v == nil {
		return
	}
	return *v, true
}

// OldCarbohydrate returns the old "carbohydrate" field's value of the Detection entity.
// If the Detection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionMutation) OldCarbohydrate(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCarbohydrate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCarbohydrate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCarbohydrate: %w", err)
	}
	return oldValue.Carbohydrate, nil
}

// AddCarbohydrate adds f to the "carbohydrate" field.
func (m *DetectionMutation) AddCarbohydrate(f float64) {
	if m.addcarbohydrate != nil {
		*m.addcarbohydrate += f
	} else {
		m.addcarbohydrate = &f
	}
}

// AddedCarbohydrate returns the value that was added to the "carbohydrate" field in this mutation.
func (m *DetectionMutation) AddedCarbohydrate() (r float64, exists bool) {
	v := m.addcarbohydrate
	if v == nil {
		return
	}
	return *v, true
}

// ClearCarbohydrate clears the value of the "carbohydrate" field.
func (m *DetectionMutation) ClearCarbohydrate() {
	m.carbohydrate = nil
	m.addcarbohydrate = nil
	m.clearedFields[detection.FieldCarbohydrate] = struct{}{}
}

// CarbohydrateCleared returns if the "carbohydrate" field was cleared in this mutation.
func (m *DetectionMutation) CarbohydrateCleared() bool {
	_, ok := m.clearedFields[detection.FieldCarbohydrate]
	return ok
}

// ResetCarbohydrate resets all changes to the "carbohydrate" field.
func (m *DetectionMutation) ResetCarbohydrate() {
	m.carbohydrate = nil
	m.addcarbohydrate = nil
	delete(m.clearedFields, detection.FieldCarbohydrate)
}

// SetSugar sets the "sugar" field.
func (m *DetectionMutation) SetSugar(f float64) {
	m.sugar = &f
	m.addsugar = nil
}

// Sugar returns the value of the "sugar" field in the mutation.
func (m *DetectionMutation) Sugar() (r float64, exists bool) {
	v := m.sugar
	if v == nil {
		return
	}
	return *v, true
}

// OldSugar returns the old "sugar" field's value of the Detection entity.
// If the Detection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionMutation) OldSugar(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSugar is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSugar requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSugar: %w", err)
	}
	return oldValue.Sugar, nil
}

// AddSugar adds f to the "sugar" field.
func (m *DetectionMutation) AddSugar(f float64) {
	if m.addsugar != nil {
		*m.addsugar += f
	} else {
		m.addsugar = &f
	}
}

// AddedSugar returns the value that was added to the "sugar" field in this mutation.
func (m *DetectionMutation) AddedSugar() (r float64, exists bool) {
	v := m.addsugar
	if v == nil {
		return
	}
	return *v, true
}

// ClearSugar clears the value of the "sugar" field.
func (m *DetectionMutation) ClearSugar() {
	m.sugar = nil
	m.addsugar = nil
	m.clearedFields[detection.FieldSugar] = struct{}{}
}

// SugarCleared returns if the "sugar" field was cleared in this mutation.
func (m *DetectionMutation) SugarCleared() bool {
	_, ok := m.clearedFields[detection.FieldSugar]
	return ok
}

// ResetSugar resets all changes to the "sugar" field.
func (m *DetectionMutation) ResetSugar() {
	m.sugar = nil
	m.addsugar = nil
	delete(m.clearedFields, detection.FieldSugar)
}

// SetFiber sets the "fiber" field.
func (m *DetectionMutation) SetFiber(f float64) {
	m.fiber = &f
	m.addfiber = nil
}

// Fiber returns the value of the "fiber" field in the mutation.
func (m *DetectionMutation) Fiber() (r float64, exists bool) {
	v := m.fiber
	if v == nil {
		return
	}
	return *v, true
}

// OldFiber returns the old "fiber" field's value of the Detection entity.
// If the Detection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionMutation) OldFiber(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFiber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFiber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFiber: %w", err)
	}
	return oldValue.Fiber, nil
}

// AddFiber adds f to the "fiber" field.
func (m *DetectionMutation) AddFiber(f float64) {
	if m.addfiber != nil {
		*m.addfiber += f
	} else {
		m.addfiber = &f
	}
}

// AddedFiber returns the value that was added to the "fiber" field in this mutation.
func (m *DetectionMutation) AddedFiber() (r float64, exists bool) {
	v := m.addfiber
	if v == nil {
		return
	}
	return *v, true
}

// ClearFiber clears the value of the "fiber" field.
func (m *DetectionMutation) ClearFiber() {
	m.fiber = nil
	m.addfiber = nil
	m.clearedFields[detection.FieldFiber] = struct{}{}
}

// FiberCleared returns if the "fiber" field was cleared in this mutation.
func (m *DetectionMutation) FiberCleared() bool {
	_, ok := m.clearedFields[detection.FieldFiber]
	return ok
}

// ResetFiber resets all changes to the "fiber" field.
func (m *DetectionMutation) ResetFiber() {
	m.fiber = nil
	m.addfiber = nil
	delete(m.clearedFields, detection.FieldFiber)
}

// SetSodium sets the "sodium" field.
func (m *DetectionMutation) SetSodium(f float64) {
	m.sodium = &f
	m.addsodium = nil
}

// Sodium returns the value of the "sodium" field in the mutation.
func (m *DetectionMutation) Sodium() (r float64, exists bool) {
	v := m.sodium
	if v == nil {
		return
	}
	return *v, true
}

// OldSodium returns the old "sodium" field's value of the Detection entity.
// If the Detection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionMutation) OldSodium(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSodium is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSodium requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSodium: %w", err)
	}
	return oldValue.Sodium, nil
}

// AddSodium adds f to the "sodium" field.
func (m *DetectionMutation) AddSodium(f float64) {
	if m.addsodium != nil {
		*m.addsodium += f
	} else {
		m.addsodium = &f
	}
}

// AddedSodium returns the value that was added to the "sodium" field in this mutation.
func (m *DetectionMutation) AddedSodium() (r float64, exists bool) {
	v := m.addsodium
	if v == nil {
		return
	}
	return *v, true
}

// ClearSodium clears the value of the "sodium" field.
func (m *DetectionMutation) ClearSodium() {
	m.sodium = nil
	m.addsodium = nil
	m.clearedFields[detection.FieldSodium] = struct{}{}
}

// SodiumCleared returns if the "sodium" field was cleared in this mutation.
func (m *DetectionMutation) SodiumCleared() bool {
	_, ok := m.clearedFields[detection.FieldSodium]
	return ok
}

// ResetSodium resets all changes to the "sodium" field.
func (m *DetectionMutation) ResetSodium() {
	m.sodium = nil
	m.addsodium = nil
	delete(m.clearedFields, detection.FieldSodium)
}

// SetOtherNutrients sets the "other_nutrients" field.
func (m *DetectionMutation) SetOtherNutrients(jm json.RawMessage) {
	m.other_nutrients = &jm
	m.appendother_nutrients = nil
}

// OtherNutrients returns the value of the "other_nutrients" field in the mutation.
func (m *DetectionMutation) OtherNutrients() (r json.RawMessage, exists bool) {
	v := m.other_nutrients
	if v == nil {
		return
	}
	return *v, true
}

// OldOtherNutrients returns the old "other_nutrients" field's value of the Detection entity.
// If the Detection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionMutation) OldOtherNutrients(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOtherNutrients is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOtherNutrients requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOtherNutrients: %w", err)
	}
	return oldValue.OtherNutrients, nil
}

// AppendOtherNutrients adds jm to the "other_nutrients" field.
func (m *DetectionMutation) AppendOtherNutrients(jm json.RawMessage) {
	m.appendother_nutrients = append(m.appendother_nutrients, jm...)
}

// AppendedOtherNutrients returns the list of values that were appended to the "other_nutrients" field in this mutation.
func (m *DetectionMutation) AppendedOtherNutrients() (json.RawMessage, bool) {
	if len(m.appendother_nutrients) == 0 {
		return nil, false
	}
	return m.appendother_nutrients, true
}

// ClearOtherNutrients clears the value of the "other_nutrients" field.
func (m *DetectionMutation) ClearOtherNutrients() {
	m.other_nutrients = nil
	m.appendother_nutrients = nil
	m.clearedFields[detection.FieldOtherNutrients] = struct{}{}
}

// OtherNutrientsCleared returns if the "other_nutrients" field was cleared in this mutation.
func (m *DetectionMutation) OtherNutrientsCleared() bool {
	_, ok := m.clearedFields[detection.FieldOtherNutrients]
	return ok
}

// ResetOtherNutrients resets all changes to the "other_nutrients" field.
func (m *DetectionMutation) ResetOtherNutrients() {
	m.other_nutrients = nil
	m.appendother_nutrients = nil
	delete(m.clearedFields, detection.FieldOtherNutrients)
}

// SetHealthScore sets the "health_score" field.
func (m *DetectionMutation) SetHealthScore(f float64) {
	m.health_score = &f
	m.addhealth_score = nil
}

// HealthScore returns the value of the "health_score" field in the mutation.
func (m *DetectionMutation) HealthScore() (r float64, exists bool) {
	v := m.health_score
	if v == nil {
		return
	}
	return *v, true
}

// OldHealthScore returns the old "health_score" field's value of the Detection entity.
// If the Detection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionMutation) OldHealthScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHealthScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHealthScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHealthScore: %w", err)
	}
	return oldValue.HealthScore, nil
}

// AddHealthScore adds f to the "health_score" field.
func (m *DetectionMutation) AddHealthScore(f float64) {
	if m.addhealth_score != nil {
		*m.addhealth_score += f
	} else {
		m.addhealth_score = &f
	}
}

// AddedHealthScore returns the value that was added to the "health_score" field in this mutation.
func (m *DetectionMutation) AddedHealthScore() (r float64, exists bool) {
	v := m.addhealth_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearHealthScore clears the value of the "health_score" field.
func (m *DetectionMutation) ClearHealthScore() {
	m.health_score = nil
	m.addhealth_score = nil
	m.clearedFields[detection.FieldHealthScore] = struct{}{}
}

// HealthScoreCleared returns if the "health_score" field was cleared in this mutation.
func (m *DetectionMutation) HealthScoreCleared() bool {
	_, ok := m.clearedFields[detection.FieldHealthScore]
	return ok
}

// ResetHealthScore resets all changes to the "health_score" field.
func (m *DetectionMutation) ResetHealthScore() {
	m.health_score = nil
	m.addhealth_score = nil
	delete(m.clearedFields, detection.FieldHealthScore)
}

// SetRiskLevel sets the "risk_level" field.
func (m *DetectionMutation) SetRiskLevel(s string) {
	m.risk_level = &s
}

// RiskLevel returns the value of the "risk_level" field in the mutation.
func (m *DetectionMutation) RiskLevel() (r string, exists bool) {
	v := m.risk_level
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskLevel returns the old "risk_level" field's value of the Detection entity.
// If the Detection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionMutation) OldRiskLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskLevel: %w", err)
	}
	return oldValue.RiskLevel, nil
}

// ResetRiskLevel resets all changes to the "risk_level" field.
func (m *DetectionMutation) ResetRiskLevel() {
	m.risk_level = nil
}

// SetHealthAdvice sets the "health_advice" field.
func (m *DetectionMutation) SetHealthAdvice(s string) {
	m.health_advice = &s
}

// HealthAdvice returns the value of the "health_advice" field in the mutation.
func (m *DetectionMutation) HealthAdvice() (r string, exists bool) {
	v := m.health_advice
	if v == nil {
		return
	}
	return *v, true
}

// OldHealthAdvice returns the old "health_advice" field's value of the Detection entity.
// If the Detection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionMutation) OldHealthAdvice(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHealthAdvice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHealthAdvice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHealthAdvice: %w", err)
	}
	return oldValue.HealthAdvice, nil
}

// ClearHealthAdvice clears the value of the "health_advice" field.
func (m *DetectionMutation) ClearHealthAdvice() {
	m.health_advice = nil
	m.clearedFields[detection.FieldHealthAdvice] = struct{}{}
}

// HealthAdviceCleared returns if the "health_advice" field was cleared in this mutation.
func (m *DetectionMutation) HealthAdviceCleared() bool {
	_, ok := m.clearedFields[detection.FieldHealthAdvice]
	return ok
}

// ResetHealthAdvice resets all changes to the "health_advice" field.
func (m *DetectionMutation) ResetHealthAdvice() {
	m.health_advice = nil
	delete(m.clearedFields, detection.FieldHealthAdvice)
}

// SetAnalysis sets the "analysis" field.
func (m *DetectionMutation) SetAnalysis(jm json.RawMessage) {
	m.analysis = &jm
	m.appendanalysis = nil
}

// Analysis returns the value of the "analysis" field in the mutation.
func (m *DetectionMutation) Analysis() (r json.RawMessage, exists bool) {
	v := m.analysis
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysis returns the old "analysis" field's value of the Detection entity.
// If the Detection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionMutation) OldAnalysis(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysis is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysis requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysis: %w", err)
	}
	return oldValue.Analysis, nil
}

// AppendAnalysis adds jm to the "analysis" field.
func (m *DetectionMutation) AppendAnalysis(jm json.RawMessage) {
	m.appendanalysis = append(m.appendanalysis, jm...)
}

// AppendedAnalysis returns the list of values that were appended to the "analysis" field in this mutation.
func (m *DetectionMutation) AppendedAnalysis() (json.RawMessage, bool) {
	if len(m.appendanalysis) == 0 {
		return nil, false
	}
	return m.appendanalysis, true
}

// ClearAnalysis clears the value of the "analysis" field.
func (m *DetectionMutation) ClearAnalysis() {
	m.analysis = nil
	m.appendanalysis = nil
	m.clearedFields[detection.FieldAnalysis] = struct{}{}
}

// AnalysisCleared returns if the "analysis" field was cleared in this mutation.
func (m *DetectionMutation) AnalysisCleared() bool {
	_, ok := m.clearedFields[detection.FieldAnalysis]
	return ok
}

// ResetAnalysis resets all changes to the "analysis" field.
func (m *DetectionMutation) ResetAnalysis() {
	m.analysis = nil
	m.appendanalysis = nil
	delete(m.clearedFields, detection.FieldAnalysis)
}

// SetRiskFactors sets the "risk_factors" field.
func (m *DetectionMutation) SetRiskFactors(jm json.RawMessage) {
	m.risk_factors = &jm
	m.appendrisk_factors = nil
}

// RiskFactors returns the value of the "risk_factors" field in the mutation.
func (m *DetectionMutation) RiskFactors() (r json.RawMessage, exists bool) {
	v := m.risk_factors
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskFactors returns the old "risk_factors" field's value of the Detection entity.
// If the Detection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionMutation) OldRiskFactors(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskFactors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskFactors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskFactors: %w", err)
	}
	return oldValue.RiskFactors, nil
}

// AppendRiskFactors adds jm to the "risk_factors" field.
func (m *DetectionMutation) AppendRiskFactors(jm json.RawMessage) {
	m.appendrisk_factors = append(m.appendrisk_factors, jm...)
}

// AppendedRiskFactors returns the list of values that were appended to the "risk_factors" field in this mutation.
func (m *DetectionMutation) AppendedRiskFactors() (json.RawMessage, bool) {
	if len(m.appendrisk_factors) == 0 {
		return nil, false
	}
	return m.appendrisk_factors, true
}

// ClearRiskFactors clears the value of the "risk_factors" field.
func (m *DetectionMutation) ClearRiskFactors() {
	m.risk_factors = nil
	m.appendrisk_factors = nil
	m.clearedFields[detection.FieldRiskFactors] = struct{}{}
}

// RiskFactorsCleared returns if the "risk_factors" field was cleared in this mutation.
func (m *DetectionMutation) RiskFactorsCleared() bool {
	_, ok := m.clearedFields[detection.FieldRiskFactors]
	return ok
}

// ResetRiskFactors resets all changes to the "risk_factors" field.
func (m *DetectionMutation) ResetRiskFactors() {
	m.risk_factors = nil
	m.appendrisk_factors = nil
	delete(m.clearedFields, detection.FieldRiskFactors)
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (m *DetectionMutation) SetOcrConfidence(f float32) {
	m.ocr_confidence = &f
	m.addocr_confidence = nil
}

// OcrConfidence returns the value of the "ocr_confidence" field in the mutation.
func (m *DetectionMutation) OcrConfidence() (r float32, exists bool) {
	v := m.ocr_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrConfidence returns the old "ocr_confidence" field's value of the Detection entity.
// If the Detection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionMutation) OldOcrConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrConfidence: %w", err)
	}
	return oldValue.OcrConfidence, nil
}

// AddOcrConfidence adds f to the "ocr_confidence" field.
func (m *DetectionMutation) AddOcrConfidence(f float32) {
	if m.addocr_confidence != nil {
		*m.addocr_confidence += f
	} else {
		m.addocr_confidence = &f
	}
}

// AddedOcrConfidence returns the value that was added to the "ocr_confidence" field in this mutation.
func (m *DetectionMutation) AddedOcrConfidence() (r float32, exists bool) {
	v := m.addocr_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearOcrConfidence clears the value of the "ocr_confidence" field.
func (m *DetectionMutation) ClearOcrConfidence() {
	m.ocr_confidence = nil
	m.addocr_confidence = nil
	m.clearedFields[detection.FieldOcrConfidence] = struct{}{}
}

// OcrConfidenceCleared returns if the "ocr_confidence" field was cleared in this mutation.
func (m *DetectionMutation) OcrConfidenceCleared() bool {
	_, ok := m.clearedFields[detection.FieldOcrConfidence]
	return ok
}

// ResetOcrConfidence resets all changes to the "ocr_confidence" field.
func (m *DetectionMutation) ResetOcrConfidence() {
	m.ocr_confidence = nil
	m.addocr_confidence = nil
	delete(m.clearedFields, detection.FieldOcrConfidence)
}

// SetProcessingMs sets the "processing_ms" field.
func (m *DetectionMutation) SetProcessingMs(i int64) {
	m.processing_ms = &i
	m.addprocessing_ms = nil
}

// ProcessingMs returns the value of the "processing_ms" field in the mutation.
func (m *DetectionMutation) ProcessingMs() (r int64, exists bool) {
	v := m.processing_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingMs returns the old "processing_ms" field's value of the Detection entity.
// If the Detection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionMutation) OldProcessingMs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingMs: %w", err)
	}
	return oldValue.ProcessingMs, nil
}

// AddProcessingMs adds i to the "processing_ms" field.
func (m *DetectionMutation) AddProcessingMs(i int64) {
	if m.addprocessing_ms != nil {
		*m.addprocessing_ms += i
	} else {
		m.addprocessing_ms = &i
	}
}

// AddedProcessingMs returns the value that was added to the "processing_ms" field in this mutation.
func (m *DetectionMutation) AddedProcessingMs() (r int64, exists bool) {
	v := m.addprocessing_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearProcessingMs clears the value of the "processing_ms" field.
func (m *DetectionMutation) ClearProcessingMs() {
	m.processing_ms = nil
	m.addprocessing_ms = nil
	m.clearedFields[detection.FieldProcessingMs] = struct{}{}
}

// ProcessingMsCleared returns if the "processing_ms" field was cleared in this mutation.
func (m *DetectionMutation) ProcessingMsCleared() bool {
	_, ok := m.clearedFields[detection.FieldProcessingMs]
	return ok
}

// ResetProcessingMs resets all changes to the "processing_ms" field.
func (m *DetectionMutation) ResetProcessingMs() {
	m.processing_ms = nil
	m.addprocessing_ms = nil
	delete(m.clearedFields, detection.FieldProcessingMs)
}

// SetErrorMessage sets the "error_message" field.
func (m *DetectionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *DetectionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Detection entity.
// If the Detection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *DetectionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[detection.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *DetectionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[detection.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *DetectionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, detection.FieldErrorMessage)
}

// SetUserRating sets the "user_rating" field.
func (m *DetectionMutation) SetUserRating(i int) {
	m.user_rating = &i
	m.adduser_rating = nil
}

// UserRating returns the value of the "user_rating" field in the mutation.
func (m *DetectionMutation) UserRating() (r int, exists bool) {
	v := m.user_rating
	if v == nil {
		return
	}
	return *v, true
}

// OldUserRating returns the old "user_rating" field's value of the Detection entity.
// If the Detection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionMutation) OldUserRating(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserRating: %w", err)
	}
	return oldValue.UserRating, nil
}

// AddUserRating adds i to the "user_rating" field.
func (m *DetectionMutation) AddUserRating(i int) {
	if m.adduser_rating != nil {
		*m.adduser_rating += i
	} else {
		m.adduser_rating = &i
	}
}

// AddedUserRating returns the value that was added to the "user_rating" field in this mutation.
func (m *DetectionMutation) AddedUserRating() (r int, exists bool) {
	v := m.adduser_rating
	if v == nil {
		return
	}
	return *v, true
}

// ClearUserRating clears the value of the "user_rating" field.
func (m *DetectionMutation) ClearUserRating() {
	m.user_rating = nil
	m.adduser_rating = nil
	m.clearedFields[detection.FieldUserRating] = struct{}{}
}

// UserRatingCleared returns if the "user_rating" field was cleared in this mutation.
func (m *DetectionMutation) UserRatingCleared() bool {
	_, ok := m.clearedFields[detection.FieldUserRating]
	return ok
}

// ResetUserRating resets all changes to the "user_rating" field.
func (m *DetectionMutation) ResetUserRating() {
	m.user_rating = nil
	m.adduser_rating = nil
	delete(m.clearedFields, detection.FieldUserRating)
}

// SetUserFeedback sets the "user_feedback" field.
func (m *DetectionMutation) SetUserFeedback(s string) {
	m.user_feedback = &s
}

// UserFeedback returns the value of the "user_feedback" field in the mutation.
func (m *DetectionMutation) UserFeedback() (r string, exists bool) {
	v := m.user_feedback
	if v == nil {
		return
	}
	return *v, true
}

// OldUserFeedback returns the old "user_feedback" field's value of the Detection entity.
// If the Detection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionMutation) OldUserFeedback(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserFeedback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserFeedback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserFeedback: %w", err)
	}
	return oldValue.UserFeedback, nil
}

// ClearUserFeedback clears the value of the "user_feedback" field.
func (m *DetectionMutation) ClearUserFeedback() {
	m.user_feedback = nil
	m.clearedFields[detection.FieldUserFeedback] = struct{}{}
}

// UserFeedbackCleared returns if the "user_feedback" field was cleared in this mutation.
func (m *DetectionMutation) UserFeedbackCleared() bool {
	_, ok := m.clearedFields[detection.FieldUserFeedback]
	return ok
}

// ResetUserFeedback resets all changes to the "user_feedback" field.
func (m *DetectionMutation) ResetUserFeedback() {
	m.user_feedback = nil
	delete(m.clearedFields, detection.FieldUserFeedback)
}

// SetIsAccurate sets the "is_accurate" field.
func (m *DetectionMutation) SetIsAccurate(b bool) {
	m.is_accurate = &b
}

// IsAccurate returns the value of the "is_accurate" field in the mutation.
func (m *DetectionMutation) IsAccurate() (r bool, exists bool) {
	v := m.is_accurate
	if v == nil {
		return
	}
	return *v, true
}

// OldIsAccurate returns the old "is_accurate" field's value of the Detection entity.
// If the Detection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionMutation) OldIsAccurate(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsAccurate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsAccurate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsAccurate: %w", err)
	}
	return oldValue.IsAccurate, nil
}

// ClearIsAccurate clears the value of the "is_accurate" field.
func (m *DetectionMutation) ClearIsAccurate() {
	m.is_accurate = nil
	m.clearedFields[detection.FieldIsAccurate] = struct{}{}
}

// IsAccurateCleared returns if the "is_accurate" field was cleared in this mutation.
func (m *DetectionMutation) IsAccurateCleared() bool {
	_, ok := m.clearedFields[detection.FieldIsAccurate]
	return ok
}

// ResetIsAccurate resets all changes to the "is_accurate" field.
func (m *DetectionMutation) ResetIsAccurate() {
	m.is_accurate = nil
	delete(m.clearedFields, detection.FieldIsAccurate)
}

// SetIsFavorite sets the "is_favorite" field.
func (m *DetectionMutation) SetIsFavorite(b bool) {
	m.is_favorite = &b
}

// IsFavorite returns the value of the "is_favorite" field in the mutation.
func (m *DetectionMutation) IsFavorite() (r bool, exists bool) {
	v := m.is_favorite
	if v == nil {
		return
	}
	return *v, true
}

// OldIsFavorite returns the old "is_favorite" field's value of the Detection entity.
// If the Detection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionMutation) OldIsFavorite(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsFavorite is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsFavorite requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsFavorite: %w", err)
	}
	return oldValue.IsFavorite, nil
}

// ResetIsFavorite resets all changes to the "is_favorite" field.
func (m *DetectionMutation) ResetIsFavorite() {
	m.is_favorite = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DetectionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DetectionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Detection entity.
// If the Detection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DetectionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DetectionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DetectionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Detection entity.
// If the Detection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DetectionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *DetectionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *DetectionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Detection entity.
// If the Detection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *DetectionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[detection.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *DetectionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[detection.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *DetectionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, detection.FieldCompletedAt)
}

// ClearUser clears the "user" edge to the User entity.
func (m *DetectionMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[detection.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *DetectionMutation) UserCleared() bool {
	return m.UserIDCleared() || m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *DetectionMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *DetectionMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the DetectionMutation builder.
func (m *DetectionMutation) Where(ps ...predicate.Detection) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DetectionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DetectionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Detection, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DetectionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DetectionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Detection).
func (m *DetectionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DetectionMutation) Fields() []string {
	fields := make([]string, 0, 34)
	if m.user != nil {
		fields = append(fields, detection.FieldUserID)
	}
	if m.detection_type != nil {
		fields = append(fields, detection.FieldDetectionType)
	}
	if m.status != nil {
		fields = append(fields, detection.FieldStatus)
	}
	if m.image_path != nil {
		fields = append(fields, detection.FieldImagePath)
	}
	if m.raw_text != nil {
		fields = append(fields, detection.FieldRawText)
	}
	if m.barcode != nil {
		fields = append(fields, detection.FieldBarcode)
	}
	if m.product_name != nil {
		fields = append(fields, detection.FieldProductName)
	}
	if m.brand != nil {
		fields = append(fields, detection.FieldBrand)
	}
	if m.category != nil {
		fields = append(fields, detection.FieldCategory)
	}
	if m.energy_kj != nil {
		fields = append(fields, detection.FieldEnergyKj)
	}
	if m.energy_kcal != nil {
		fields = append(fields, detection.FieldEnergyKcal)
	}
	if m.protein != nil {
		fields = append(fields, detection.FieldProtein)
	}
	if m.fat != nil {
		fields = append(fields, detection.FieldFat)
	}
	if m.saturated_fat != nil {
		fields = append(fields, detection.FieldSaturatedFat)
	}
	if m.carbohydrate != nil {
		fields = append(fields, detection.FieldCarbohydrate)
	}
	if m.sugar != nil {
		fields = append(fields, detection.FieldSugar)
	}
	if m.fiber != nil {
		fields = append(fields, detection.FieldFiber)
	}
	if m.sodium != nil {
		fields = append(fields, detection.FieldSodium)
	}
	if m.other_nutrients != nil {
		fields = append(fields, detection.FieldOtherNutrients)
	}
	if m.health_score != nil {
		fields = append(fields, detection.FieldHealthScore)
	}
	if m.risk_level != nil {
		fields = append(fields, detection.FieldRiskLevel)
	}
	if m.health_advice != nil {
		fields = append(fields, detection.FieldHealthAdvice)
	}
	if m.analysis != nil {
		fields = append(fields, detection.FieldAnalysis)
	}
	if m.risk_factors != nil {
		fields = append(fields, detection.FieldRiskFactors)
	}
	if m.ocr_confidence != nil {
		fields = append(fields, detection.FieldOcrConfidence)
	}
	if m.processing_ms != nil {
		fields = append(fields, detection.FieldProcessingMs)
	}
	if m.error_message != nil {
		fields = append(fields, detection.FieldErrorMessage)
	}
	if m.user_rating != nil {
		fields = append(fields, detection.FieldUserRating)
	}
	if m.user_feedback != nil {
		fields = append(fields, detection.FieldUserFeedback)
	}
	if m.is_accurate != nil {
		fields = append(fields, detection.FieldIsAccurate)
	}
	if m.is_favorite != nil {
		fields = append(fields, detection.FieldIsFavorite)
	}
	if m.created_at != nil {
		fields = append(fields, detection.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, detection.FieldUpdatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, detection.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DetectionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case detection.FieldUserID:
		return m.UserID()
	case detection.FieldDetectionType:
		return m.DetectionType()
	case detection.FieldStatus:
		return m.Status()
	case detection.FieldImagePath:
		return m.ImagePath()
	case detection.FieldRawText:
		return m.RawText()
	case detection.FieldBarcode:
		return m.Barcode()
	case detection.FieldProductName:
		return m.ProductName()
	case detection.FieldBrand:
		return m.Brand()
	case detection.FieldCategory:
		return m.Category()
	case detection.FieldEnergyKj:
		return m.EnergyKj()
	case detection.FieldEnergyKcal:
		return m.EnergyKcal()
	case detection.FieldProtein:
		return m.Protein()
	case detection.FieldFat:
		return m.Fat()
	case detection.FieldSaturatedFat:
		return m.SaturatedFat()
	case detection.FieldCarbohydrate:
		return m.Carbohydrate()
	case detection.FieldSugar:
		return m.Sugar()
	case detection.FieldFiber:
		return m.Fiber()
	case detection.FieldSodium:
		return m.Sodium()
	case detection.FieldOtherNutrients:
		return m.OtherNutrients()
	case detection.FieldHealthScore:
		return m.HealthScore()
	case detection.FieldRiskLevel:
		return m.RiskLevel()
	case detection.FieldHealthAdvice:
		return m.HealthAdvice()
	case detection.FieldAnalysis:
		return m.Analysis()
	case detection.FieldRiskFactors:
		return m.RiskFactors()
	case detection.FieldOcrConfidence:
		return m.OcrConfidence()
	case detection.FieldProcessingMs:
		return m.ProcessingMs()
	case detection.FieldErrorMessage:
		return m.ErrorMessage()
	case detection.FieldUserRating:
		return m.UserRating()
	case detection.FieldUserFeedback:
		return m.UserFeedback()
	case detection.FieldIsAccurate:
		return m.IsAccurate()
	case detection.FieldIsFavorite:
		return m.IsFavorite()
	case detection.FieldCreatedAt:
		return m.CreatedAt()
	case detection.FieldUpdatedAt:
		return m.UpdatedAt()
	case detection.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DetectionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case detection.FieldUserID:
		return m.OldUserID(ctx)
	case detection.FieldDetectionType:
		return m.OldDetectionType(ctx)
	case detection.FieldStatus:
		return m.OldStatus(ctx)
	case detection.FieldImagePath:
		return m.OldImagePath(ctx)
	case detection.FieldRawText:
		return m.OldRawText(ctx)
	case detection.FieldBarcode:
		return m.OldBarcode(ctx)
	case detection.FieldProductName:
		return m.OldProductName(ctx)
	case detection.FieldBrand:
		return m.OldBrand(ctx)
	case detection.FieldCategory:
		return m.OldCategory(ctx)
	case detection.FieldEnergyKj:
		return m.OldEnergyKj(ctx)
	case detection.FieldEnergyKcal:
		return m.OldEnergyKcal(ctx)
	case detection.FieldProtein:
		return m.OldProtein(ctx)
	case detection.FieldFat:
		return m.OldFat(ctx)
	case detection.FieldSaturatedFat:
		return m.OldSaturatedFat(ctx)
	case detection.FieldCarbohydrate:
		return m.OldCarbohydrate(ctx)
	case detection.FieldSugar:
		return m.OldSugar(ctx)
	case detection.FieldFiber:
		return m.OldFiber(ctx)
	case detection.FieldSodium:
		return m.OldSodium(ctx)
	case detection.FieldOtherNutrients:
		return m.OldOtherNutrients(ctx)
	case detection.FieldHealthScore:
		return m.OldHealthScore(ctx)
	case detection.FieldRiskLevel:
		return m.OldRiskLevel(ctx)
	case detection.FieldHealthAdvice:
		return m.OldHealthAdvice(ctx)
	case detection.FieldAnalysis:
		return m.OldAnalysis(ctx)
	case detection.FieldRiskFactors:
		return m.OldRiskFactors(ctx)
	case detection.FieldOcrConfidence:
		return m.OldOcrConfidence(ctx)
	case detection.FieldProcessingMs:
		return m.OldProcessingMs(ctx)
	case detection.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case detection.FieldUserRating:
		return m.OldUserRating(ctx)
	case detection.FieldUserFeedback:
		return m.OldUserFeedback(ctx)
	case detection.FieldIsAccurate:
		return m.OldIsAccurate(ctx)
	case detection.FieldIsFavorite:
		return m.OldIsFavorite(ctx)
	case detection.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case detection.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case detection.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Detection field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DetectionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case detection.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case detection.FieldDetectionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetectionType(v)
		return nil
	case detection.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case detection.FieldImagePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImagePath(v)
		return nil
	case detection.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case detection.FieldBarcode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBarcode(v)
		return nil
	case detection.FieldProductName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProductName(v)
		return nil
	case detection.FieldBrand:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBrand(v)
		return nil
	case detection.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case detection.FieldEnergyKj:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnergyKj(v)
		return nil
	case detection.FieldEnergyKcal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnergyKcal(v)
		return nil
	case detection.FieldProtein:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProtein(v)
		return nil
	case detection.FieldFat:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFat(v)
		return nil
	case detection.FieldSaturatedFat:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSaturatedFat(v)
		return nil
	case detection.FieldCarbohydrate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCarbohydrate(v)
		return nil
	case detection.FieldSugar:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSugar(v)
		return nil
	case detection.FieldFiber:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFiber(v)
		return nil
	case detection.FieldSodium:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSodium(v)
		return nil
	case detection.FieldOtherNutrients:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOtherNutrients(v)
		return nil
	case detection.FieldHealthScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHealthScore(v)
		return nil
	case detection.FieldRiskLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskLevel(v)
		return nil
	case detection.FieldHealthAdvice:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHealthAdvice(v)
		return nil
	case detection.FieldAnalysis:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysis(v)
		return nil
	case detection.FieldRiskFactors:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskFactors(v)
		return nil
	case detection.FieldOcrConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrConfidence(v)
		return nil
	case detection.FieldProcessingMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingMs(v)
		return nil
	case detection.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case detection.FieldUserRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserRating(v)
		return nil
	case detection.FieldUserFeedback:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserFeedback(v)
		return nil
	case detection.FieldIsAccurate:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsAccurate(v)
		return nil
	case detection.FieldIsFavorite:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsFavorite(v)
		return nil
	case detection.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case detection.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case detection.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Detection field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DetectionMutation) AddedFields() []string {
	var fields []string
	if m.addenergy_kj != nil {
		fields = append(fields, detection.FieldEnergyKj)
	}
	if m.addenergy_kcal != nil {
		fields = append(fields, detection.FieldEnergyKcal)
	}
	if m.addprotein != nil {
		fields = append(fields, detection.FieldProtein)
	}
	if m.addfat != nil {
		fields = append(fields, detection.FieldFat)
	}
	if m.addsaturated_fat != nil {
		fields = append(fields, detection.FieldSaturatedFat)
	}
	if m.addcarbohydrate != nil {
		fields = append(fields, detection.FieldCarbohydrate)
	}
	if m.addsugar != nil {
		fields = append(fields, detection.FieldSugar)
	}
	if m.addfiber != nil {
		fields = append(fields, detection.FieldFiber)
	}
	if m.addsodium != nil {
		fields = append(fields, detection.FieldSodium)
	}
	if m.addhealth_score != nil {
		fields = append(fields, detection.FieldHealthScore)
	}
	if m.addocr_confidence != nil {
		fields = append(fields, detection.FieldOcrConfidence)
	}
	if m.addprocessing_ms != nil {
		fields = append(fields, detection.FieldProcessingMs)
	}
	if m.adduser_rating != nil {
		fields = append(fields, detection.FieldUserRating)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DetectionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case detection.FieldEnergyKj:
		return m.AddedEnergyKj()
	case detection.FieldEnergyKcal:
		return m.AddedEnergyKcal()
	case detection.FieldProtein:
		return m.AddedProtein()
	case detection.FieldFat:
		return m.AddedFat()
	case detection.FieldSaturatedFat:
		return m.AddedSaturatedFat()
	case detection.FieldCarbohydrate:
		return m.AddedCarbohydrate()
	case detection.FieldSugar:
		return m.AddedSugar()
	case detection.FieldFiber:
		return m.AddedFiber()
	case detection.FieldSodium:
		return m.AddedSodium()
	case detection.FieldHealthScore:
		return m.AddedHealthScore()
	case detection.FieldOcrConfidence:
		return m.AddedOcrConfidence()
	case detection.FieldProcessingMs:
		return m.AddedProcessingMs()
	case detection.FieldUserRating:
		return m.AddedUserRating()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DetectionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case detection.FieldEnergyKj:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEnergyKj(v)
		return nil
	case detection.FieldEnergyKcal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEnergyKcal(v)
		return nil
	case detection.FieldProtein:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProtein(v)
		return nil
	case detection.FieldFat:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFat(v)
		return nil
	case detection.FieldSaturatedFat:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSaturatedFat(v)
		return nil
	case detection.FieldCarbohydrate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCarbohydrate(v)
		return nil
	case detection.FieldSugar:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSugar(v)
		return nil
	case detection.FieldFiber:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFiber(v)
		return nil
	case detection.FieldSodium:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSodium(v)
		return nil
	case detection.FieldHealthScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHealthScore(v)
		return nil
	case detection.FieldOcrConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOcrConfidence(v)
		return nil
	case detection.FieldProcessingMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProcessingMs(v)
		return nil
	case detection.FieldUserRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserRating(v)
		return nil
	}
	return fmt.Errorf("unknown Detection numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DetectionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(detection.FieldUserID) {
		fields = append(fields, detection.FieldUserID)
	}
	if m.FieldCleared(detection.FieldImagePath) {
		fields = append(fields, detection.FieldImagePath)
	}
	if m.FieldCleared(detection.FieldRawText) {
		fields = append(fields, detection.FieldRawText)
	}
	if m.FieldCleared(detection.FieldBarcode) {
		fields = append(fields, detection.FieldBarcode)
	}
	if m.FieldCleared(detection.FieldProductName) {
		fields = append(fields, detection.FieldProductName)
	}
	if m.FieldCleared(detection.FieldBrand) {
		fields = append(fields, detection.FieldBrand)
	}
	if m.FieldCleared(detection.FieldCategory) {
		fields = append(fields, detection.FieldCategory)
	}
	if m.FieldCleared(detection.FieldEnergyKj) {
		fields = append(fields, detection.FieldEnergyKj)
	}
	if m.FieldCleared(detection.FieldEnergyKcal) {
		fields = append(fields, detection.FieldEnergyKcal)
	}
	if m.FieldCleared(detection.FieldProtein) {
		fields = append(fields, detection.FieldProtein)
	}
	if m.FieldCleared(detection.FieldFat) {
		fields = append(fields, detection.FieldFat)
	}
	if m.FieldCleared(detection.FieldSaturatedFat) {
		fields = append(fields, detection.FieldSaturatedFat)
	}
	if m.FieldCleared(detection.FieldCarbohydrate) {
		fields = append(fields, detection.FieldCarbohydrate)
	}
	if m.FieldCleared(detection.FieldSugar) {
		fields = append(fields, detection.FieldSugar)
	}
	if m.FieldCleared(detection.FieldFiber) {
		fields = append(fields, detection.FieldFiber)
	}
	if m.FieldCleared(detection.FieldSodium) {
		fields = append(fields, detection.FieldSodium)
	}
	if m.FieldCleared(detection.FieldOtherNutrients) {
		fields = append(fields, detection.FieldOtherNutrients)
	}
	if m.FieldCleared(detection.FieldHealthScore) {
		fields = append(fields, detection.FieldHealthScore)
	}
	if m.FieldCleared(detection.FieldHealthAdvice) {
		fields = append(fields, detection.FieldHealthAdvice)
	}
	if m.FieldCleared(detection.FieldAnalysis) {
		fields = append(fields, detection.FieldAnalysis)
	}
	if m.FieldCleared(detection.FieldRiskFactors) {
		fields = append(fields, detection.FieldRiskFactors)
	}
	if m.FieldCleared(detection.FieldOcrConfidence) {
		fields = append(fields, detection.FieldOcrConfidence)
	}
	if m.FieldCleared(detection.FieldProcessingMs) {
		fields = append(fields, detection.FieldProcessingMs)
	}
	if m.FieldCleared(detection.FieldErrorMessage) {
		fields = append(fields, detection.FieldErrorMessage)
	}
	if m.FieldCleared(detection.FieldUserRating) {
		fields = append(fields, detection.FieldUserRating)
	}
	if m.FieldCleared(detection.FieldUserFeedback) {
		fields = append(fields, detection.FieldUserFeedback)
	}
	if m.FieldCleared(detection.FieldIsAccurate) {
		fields = append(fields, detection.FieldIsAccurate)
	}
	if m.FieldCleared(detection.FieldCompletedAt) {
		fields = append(fields, detection.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DetectionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DetectionMutation) ClearField(name string) error {
	switch name {
	case detection.FieldUserID:
		m.ClearUserID()
		return nil
	case detection.FieldImagePath:
		m.ClearImagePath()
		return nil
	case detection.FieldRawText:
		m.ClearRawText()
		return nil
	case detection.FieldBarcode:
		m.ClearBarcode()
		return nil
	case detection.FieldProductName:
		m.ClearProductName()
		return nil
	case detection.FieldBrand:
		m.ClearBrand()
		return nil
	case detection.FieldCategory:
		m.ClearCategory()
		return nil
	case detection.FieldEnergyKj:
		m.ClearEnergyKj()
		return nil
	case detection.FieldEnergyKcal:
		m.ClearEnergyKcal()
		return nil
	case detection.FieldProtein:
		m.ClearProtein()
		return nil
	case detection.FieldFat:
		m.ClearFat()
		return nil
	case detection.FieldSaturatedFat:
		m.ClearSaturatedFat()
		return nil
	case detection.FieldCarbohydrate:
		m.ClearCarbohydrate()
		return nil
	case detection.FieldSugar:
		m.ClearSugar()
		return nil
	case detection.FieldFiber:
		m.ClearFiber()
		return nil
	case detection.FieldSodium:
		m.ClearSodium()
		return nil
	case detection.FieldOtherNutrients:
		m.ClearOtherNutrients()
		return nil
	case detection.FieldHealthScore:
		m.ClearHealthScore()
		return nil
	case detection.FieldHealthAdvice:
		m.ClearHealthAdvice()
		return nil
	case detection.FieldAnalysis:
		m.ClearAnalysis()
		return nil
	case detection.FieldRiskFactors:
		m.ClearRiskFactors()
		return nil
	case detection.FieldOcrConfidence:
		m.ClearOcrConfidence()
		return nil
	case detection.FieldProcessingMs:
		m.ClearProcessingMs()
		return nil
	case detection.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case detection.FieldUserRating:
		m.ClearUserRating()
		return nil
	case detection.FieldUserFeedback:
		m.ClearUserFeedback()
		return nil
	case detection.FieldIsAccurate:
		m.ClearIsAccurate()
		return nil
	case detection.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Detection nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DetectionMutation) ResetField(name string) error {
	switch name {
	case detection.FieldUserID:
		m.ResetUserID()
		return nil
	case detection.FieldDetectionType:
		m.ResetDetectionType()
		return nil
	case detection.FieldStatus:
		m.ResetStatus()
		return nil
	case detection.FieldImagePath:
		m.ResetImagePath()
		return nil
	case detection.FieldRawText:
		m.ResetRawText()
		return nil
	case detection.FieldBarcode:
		m.ResetBarcode()
		return nil
	case detection.FieldProductName:
		m.ResetProductName()
		return nil
	case detection.FieldBrand:
		m.ResetBrand()
		return nil
	case detection.FieldCategory:
		m.ResetCategory()
		return nil
	case detection.FieldEnergyKj:
		m.ResetEnergyKj()
		return nil
	case detection.FieldEnergyKcal:
		m.ResetEnergyKcal()
		return nil
	case detection.FieldProtein:
		m.ResetProtein()
		return nil
	case detection.FieldFat:
		m.ResetFat()
		return nil
	case detection.FieldSaturatedFat:
		m.ResetSaturatedFat()
		return nil
	case detection.FieldCarbohydrate:
		m.ResetCarbohydrate()
		return nil
	case detection.FieldSugar:
		m.ResetSugar()
		return nil
	case detection.FieldFiber:
		m.ResetFiber()
		return nil
	case detection.FieldSodium:
		m.ResetSodium()
		return nil
	case detection.FieldOtherNutrients:
		m.ResetOtherNutrients()
		return nil
	case detection.FieldHealthScore:
		m.ResetHealthScore()
		return nil
	case detection.FieldRiskLevel:
		m.ResetRiskLevel()
		return nil
	case detection.FieldHealthAdvice:
		m.ResetHealthAdvice()
		return nil
	case detection.FieldAnalysis:
		m.ResetAnalysis()
		return nil
	case detection.FieldRiskFactors:
		m.ResetRiskFactors()
		return nil
	case detection.FieldOcrConfidence:
		m.ResetOcrConfidence()
		return nil
	case detection.FieldProcessingMs:
		m.ResetProcessingMs()
		return nil
	case detection.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case detection.FieldUserRating:
		m.ResetUserRating()
		return nil
	case detection.FieldUserFeedback:
		m.ResetUserFeedback()
		return nil
	case detection.FieldIsAccurate:
		m.ResetIsAccurate()
		return nil
	case detection.FieldIsFavorite:
		m.ResetIsFavorite()
		return nil
	case detection.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case detection.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case detection.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Detection field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DetectionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, detection.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DetectionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case detection.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DetectionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DetectionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DetectionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, detection.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DetectionMutation) EdgeCleared(name string) bool {
	switch name {
	case detection.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DetectionMutation) ClearEdge(name string) error {
	switch name {
	case detection.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown Detection unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DetectionMutation) ResetEdge(name string) error {
	switch name {
	case detection.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown Detection edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	openid              *string
	nickname            *string
	avatar_url          *string
	age                 *int
	addage              *int
	health_conditions   *string
	dietary_preferences *string
	allergies           *string
	scan_count          *int
	addscan_count       *int
	last_scan_at        *time.Time
	last_login_at       *time.Time
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	detections          map[uuid.UUID]struct{}
	removeddetections   map[uuid.UUID]struct{}
	cleareddetections   bool
	done                bool
	oldValue            func(context.Context) (*User, error)
	predicates          []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id uuid.UUID) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOpenid sets the "openid" field.
func (m *UserMutation) SetOpenid(s string) {
	m.openid = &s
}

// Openid returns the value of the "openid" field in the mutation.
func (m *UserMutation) Openid() (r string, exists bool) {
	v := m.openid
	if v == nil {
		return
	}
	return *v, true
}

// OldOpenid returns the old "openid" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldOpenid(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOpenid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOpenid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOpenid: %w", err)
	}
	return oldValue.Openid, nil
}

// ResetOpenid resets all changes to the "openid" field.
func (m *UserMutation) ResetOpenid() {
	m.openid = nil
}

// SetNickname sets the "nickname" field.
func (m *UserMutation) SetNickname(s string) {
	m.nickname = &s
}

// Nickname returns the value of the "nickname" field in the mutation.
func (m *UserMutation) Nickname() (r string, exists bool) {
	v := m.nickname
	if v == nil {
		return
	}
	return *v, true
}

// OldNickname returns the old "nickname" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldNickname(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNickname is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNickname requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNickname: %w", err)
	}
	return oldValue.Nickname, nil
}

// ClearNickname clears the value of the "nickname" field.
func (m *UserMutation) ClearNickname() {
	m.nickname = nil
	m.clearedFields[user.FieldNickname] = struct{}{}
}

// NicknameCleared returns if the "nickname" field was cleared in this mutation.
func (m *UserMutation) NicknameCleared() bool {
	_, ok := m.clearedFields[user.FieldNickname]
	return ok
}

// ResetNickname resets all changes to the "nickname" field.
func (m *UserMutation) ResetNickname() {
	m.nickname = nil
	delete(m.clearedFields, user.FieldNickname)
}

// SetAvatarURL sets the "avatar_url" field.
func (m *UserMutation) SetAvatarURL(s string) {
	m.avatar_url = &s
}

// AvatarURL returns the value of the "avatar_url" field in the mutation.
func (m *UserMutation) AvatarURL() (r string, exists bool) {
	v := m.avatar_url
	if v == nil {
		return
	}
	return *v, true
}

// OldAvatarURL returns the old "avatar_url" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldAvatarURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvatarURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvatarURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvatarURL: %w", err)
	}
	return oldValue.AvatarURL, nil
}

// ClearAvatarURL clears the value of the "avatar_url" field.
func (m *UserMutation) ClearAvatarURL() {
	m.avatar_url = nil
	m.clearedFields[user.FieldAvatarURL] = struct{}{}
}

// AvatarURLCleared returns if the "avatar_url" field was cleared in this mutation.
func (m *UserMutation) AvatarURLCleared() bool {
	_, ok := m.clearedFields[user.FieldAvatarURL]
	return ok
}

// ResetAvatarURL resets all changes to the "avatar_url" field.
func (m *UserMutation) ResetAvatarURL() {
	m.avatar_url = nil
	delete(m.clearedFields, user.FieldAvatarURL)
}

// SetAge sets the "age" field.
func (m *UserMutation) SetAge(i int) {
	m.age = &i
	m.addage = nil
}

// Age returns the value of the "age" field in the mutation.
func (m *UserMutation) Age() (r int, exists bool) {
	v := m.age
	if v == nil {
		return
	}
	return *v, true
}

// OldAge returns the old "age" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldAge(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAge is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAge requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAge: %w", err)
	}
	return oldValue.Age, nil
}

// AddAge adds i to the "age" field.
func (m *UserMutation) AddAge(i int) {
	if m.addage != nil {
		*m.addage += i
	} else {
		m.addage = &i
	}
}

// AddedAge returns the value that was added to the "age" field in this mutation.
func (m *UserMutation) AddedAge() (r int, exists bool) {
	v := m.addage
	if v == nil {
		return
	}
	return *v, true
}

// ClearAge clears the value of the "age" field.
func (m *UserMutation) ClearAge() {
	m.age = nil
	m.addage = nil
	m.clearedFields[user.FieldAge] = struct{}{}
}

// AgeCleared returns if the "age" field was cleared in this mutation.
func (m *UserMutation) AgeCleared() bool {
	_, ok := m.clearedFields[user.FieldAge]
	return ok
}

// ResetAge resets all changes to the "age" field.
func (m *UserMutation) ResetAge() {
	m.age = nil
	m.addage = nil
	delete(m.clearedFields, user.FieldAge)
}

// SetHealthConditions sets the "health_conditions" field.
func (m *UserMutation) SetHealthConditions(s string) {
	m.health_conditions = &s
}

// HealthConditions returns the value of the "health_conditions" field in the mutation.
func (m *UserMutation) HealthConditions() (r string, exists bool) {
	v := m.health_conditions
	if v == nil {
		return
	}
	return *v, true
}

// OldHealthConditions returns the old "health_conditions" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldHealthConditions(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHealthConditions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHealthConditions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHealthConditions: %w", err)
	}
	return oldValue.HealthConditions, nil
}

// ClearHealthConditions clears the value of the "health_conditions" field.
func (m *UserMutation) ClearHealthConditions() {
	m.health_conditions = nil
	m.clearedFields[user.FieldHealthConditions] = struct{}{}
}

// HealthConditionsCleared returns if the "health_conditions" field was cleared in this mutation.
func (m *UserMutation) HealthConditionsCleared() bool {
	_, ok := m.clearedFields[user.FieldHealthConditions]
	return ok
}

// ResetHealthConditions resets all changes to the "health_conditions" field.
func (m *UserMutation) ResetHealthConditions() {
	m.health_conditions = nil
	delete(m.clearedFields, user.FieldHealthConditions)
}

// SetDietaryPreferences sets the "dietary_preferences" field.
func (m *UserMutation) SetDietaryPreferences(s string) {
	m.dietary_preferences = &s
}

// DietaryPreferences returns the value of the "dietary_preferences" field in the mutation.
func (m *UserMutation) DietaryPreferences() (r string, exists bool) {
	v := m.dietary_preferences
	if v == nil {
		return
	}
	return *v, true
}

// OldDietaryPreferences returns the old "dietary_preferences" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldDietaryPreferences(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDietaryPreferences is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDietaryPreferences requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDietaryPreferences: %w", err)
	}
	return oldValue.DietaryPreferences, nil
}

// ClearDietaryPreferences clears the value of the "dietary_preferences" field.
func (m *UserMutation) ClearDietaryPreferences() {
	m.dietary_preferences = nil
	m.clearedFields[user.FieldDietaryPreferences] = struct{}{}
}

// DietaryPreferencesCleared returns if the "dietary_preferences" field was cleared in this mutation.
func (m *UserMutation) DietaryPreferencesCleared() bool {
	_, ok := m.clearedFields[user.FieldDietaryPreferences]
	return ok
}

// ResetDietaryPreferences resets all changes to the "dietary_preferences" field.
func (m *UserMutation) ResetDietaryPreferences() {
	m.dietary_preferences = nil
	delete(m.clearedFields, user.FieldDietaryPreferences)
}

// SetAllergies sets the "allergies" field.
func (m *UserMutation) SetAllergies(s string) {
	m.allergies = &s
}

// Allergies returns the value of the "allergies" field in the mutation.
func (m *UserMutation) Allergies() (r string, exists bool) {
	v := m.allergies
	if v == nil {
		return
	}
	return *v, true
}

// OldAllergies returns the old "allergies" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldAllergies(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllergies is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllergies requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllergies: %w", err)
	}
	return oldValue.Allergies, nil
}

// ClearAllergies clears the value of the "allergies" field.
func (m *UserMutation) ClearAllergies() {
	m.allergies = nil
	m.clearedFields[user.FieldAllergies] = struct{}{}
}

// AllergiesCleared returns if the "allergies" field was cleared in this mutation.
func (m *UserMutation) AllergiesCleared() bool {
	_, ok := m.clearedFields[user.FieldAllergies]
	return ok
}

// ResetAllergies resets all changes to the "allergies" field.
func (m *UserMutation) ResetAllergies() {
	m.allergies = nil
	delete(m.clearedFields, user.FieldAllergies)
}

// SetScanCount sets the "scan_count" field.
func (m *UserMutation) SetScanCount(i int) {
	m.scan_count = &i
	m.addscan_count = nil
}

// ScanCount returns the value of the "scan_count" field in the mutation.
func (m *UserMutation) ScanCount() (r int, exists bool) {
	v := m.scan_count
	if v == nil {
		return
	}
	return *v, true
}

// OldScanCount returns the old "scan_count" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldScanCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScanCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScanCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScanCount: %w", err)
	}
	return oldValue.ScanCount, nil
}

// AddScanCount adds i to the "scan_count" field.
func (m *UserMutation) AddScanCount(i int) {
	if m.addscan_count != nil {
		*m.addscan_count += i
	} else {
		m.addscan_count = &i
	}
}

// AddedScanCount returns the value that was added to the "scan_count" field in this mutation.
func (m *UserMutation) AddedScanCount() (r int, exists bool) {
	v := m.addscan_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetScanCount resets all changes to the "scan_count" field.
func (m *UserMutation) ResetScanCount() {
	m.scan_count = nil
	m.addscan_count = nil
}

// SetLastScanAt sets the "last_scan_at" field.
func (m *UserMutation) SetLastScanAt(t time.Time) {
	m.last_scan_at = &t
}

// LastScanAt returns the value of the "last_scan_at" field in the mutation.
func (m *UserMutation) LastScanAt() (r time.Time, exists bool) {
	v := m.last_scan_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastScanAt returns the old "last_scan_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastScanAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastScanAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastScanAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastScanAt: %w", err)
	}
	return oldValue.LastScanAt, nil
}

// ClearLastScanAt clears the value of the "last_scan_at" field.
func (m *UserMutation) ClearLastScanAt() {
	m.last_scan_at = nil
	m.clearedFields[user.FieldLastScanAt] = struct{}{}
}

// LastScanAtCleared returns if the "last_scan_at" field was cleared in this mutation.
func (m *UserMutation) LastScanAtCleared() bool {
	_, ok := m.clearedFields[user.FieldLastScanAt]
	return ok
}

// ResetLastScanAt resets all changes to the "last_scan_at" field.
func (m *UserMutation) ResetLastScanAt() {
	m.last_scan_at = nil
	delete(m.clearedFields, user.FieldLastScanAt)
}

// SetLastLoginAt sets the "last_login_at" field.
func (m *UserMutation) SetLastLoginAt(t time.Time) {
	m.last_login_at = &t
}

// LastLoginAt returns the value of the "last_login_at" field in the mutation.
func (m *UserMutation) LastLoginAt() (r time.Time, exists bool) {
	v := m.last_login_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLoginAt returns the old "last_login_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastLoginAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLoginAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLoginAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLoginAt: %w", err)
	}
	return oldValue.LastLoginAt, nil
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (m *UserMutation) ClearLastLoginAt() {
	m.last_login_at = nil
	m.clearedFields[user.FieldLastLoginAt] = struct{}{}
}

// LastLoginAtCleared returns if the "last_login_at" field was cleared in this mutation.
func (m *UserMutation) LastLoginAtCleared() bool {
	_, ok := m.clearedFields[user.FieldLastLoginAt]
	return ok
}

// ResetLastLoginAt resets all changes to the "last_login_at" field.
func (m *UserMutation) ResetLastLoginAt() {
	m.last_login_at = nil
	delete(m.clearedFields, user.FieldLastLoginAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddDetectionIDs adds the "detections" edge to the Detection entity by ids.
func (m *UserMutation) AddDetectionIDs(ids ...uuid.UUID) {
	if m.detections == nil {
		m.detections = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.detections[ids[i]] = struct{}{}
	}
}

// ClearDetections clears the "detections" edge to the Detection entity.
func (m *UserMutation) ClearDetections() {
	m.cleareddetections = true
}

// DetectionsCleared reports if the "detections" edge to the Detection entity was cleared.
func (m *UserMutation) DetectionsCleared() bool {
	return m.cleareddetections
}

// RemoveDetectionIDs removes the "detections" edge to the Detection entity by IDs.
func (m *UserMutation) RemoveDetectionIDs(ids ...uuid.UUID) {
	if m.removeddetections == nil {
		m.removeddetections = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.detections, ids[i])
		m.removeddetections[ids[i]] = struct{}{}
	}
}

// RemovedDetections returns the removed IDs of the "detections" edge to the Detection entity.
func (m *UserMutation) RemovedDetectionsIDs() (ids []uuid.UUID) {
	for id := range m.removeddetections {
		ids = append(ids, id)
	}
	return
}

// DetectionsIDs returns the "detections" edge IDs in the mutation.
func (m *UserMutation) DetectionsIDs() (ids []uuid.UUID) {
	for id := range m.detections {
		ids = append(ids, id)
	}
	return
}

// ResetDetections resets all changes to the "detections" edge.
func (m *UserMutation) ResetDetections() {
	m.detections = nil
	m.cleareddetections = false
	m.removeddetections = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.openid != nil {
		fields = append(fields, user.FieldOpenid)
	}
	if m.nickname != nil {
		fields = append(fields, user.FieldNickname)
	}
	if m.avatar_url != nil {
		fields = append(fields, user.FieldAvatarURL)
	}
	if m.age != nil {
		fields = append(fields, user.FieldAge)
	}
	if m.health_conditions != nil {
		fields = append(fields, user.FieldHealthConditions)
	}
	if m.dietary_preferences != nil {
		fields = append(fields, user.FieldDietaryPreferences)
	}
	if m.allergies != nil {
		fields = append(fields, user.FieldAllergies)
	}
	if m.scan_count != nil {
		fields = append(fields, user.FieldScanCount)
	}
	if m.last_scan_at != nil {
		fields = append(fields, user.FieldLastScanAt)
	}
	if m.last_login_at != nil {
		fields = append(fields, user.FieldLastLoginAt)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldOpenid:
		return m.Openid()
	case user.FieldNickname:
		return m.Nickname()
	case user.FieldAvatarURL:
		return m.AvatarURL()
	case user.FieldAge:
		return m.Age()
	case user.FieldHealthConditions:
		return m.HealthConditions()
	case user.FieldDietaryPreferences:
		return m.DietaryPreferences()
	case user.FieldAllergies:
		return m.Allergies()
	case user.FieldScanCount:
		return m.ScanCount()
	case user.FieldLastScanAt:
		return m.LastScanAt()
	case user.FieldLastLoginAt:
		return m.LastLoginAt()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldOpenid:
		return m.OldOpenid(ctx)
	case user.FieldNickname:
		return m.OldNickname(ctx)
	case user.FieldAvatarURL:
		return m.OldAvatarURL(ctx)
	case user.FieldAge:
		return m.OldAge(ctx)
	case user.FieldHealthConditions:
		return m.OldHealthConditions(ctx)
	case user.FieldDietaryPreferences:
		return m.OldDietaryPreferences(ctx)
	case user.FieldAllergies:
		return m.OldAllergies(ctx)
	case user.FieldScanCount:
		return m.OldScanCount(ctx)
	case user.FieldLastScanAt:
		return m.OldLastScanAt(ctx)
	case user.FieldLastLoginAt:
		return m.OldLastLoginAt(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldOpenid:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpenid(v)
		return nil
	case user.FieldNickname:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNickname(v)
		return nil
	case user.FieldAvatarURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvatarURL(v)
		return nil
	case user.FieldAge:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAge(v)
		return nil
	case user.FieldHealthConditions:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHealthConditions(v)
		return nil
	case user.FieldDietaryPreferences:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDietaryPreferences(v)
		return nil
	case user.FieldAllergies:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllergies(v)
		return nil
	case user.FieldScanCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScanCount(v)
		return nil
	case user.FieldLastScanAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastScanAt(v)
		return nil
	case user.FieldLastLoginAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLoginAt(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	var fields []string
	if m.addage != nil {
		fields = append(fields, user.FieldAge)
	}
	if m.addscan_count != nil {
		fields = append(fields, user.FieldScanCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case user.FieldAge:
		return m.AddedAge()
	case user.FieldScanCount:
		return m.AddedScanCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	case user.FieldAge:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAge(v)
		return nil
	case user.FieldScanCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScanCount(v)
		return nil
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldNickname) {
		fields = append(fields, user.FieldNickname)
	}
	if m.FieldCleared(user.FieldAvatarURL) {
		fields = append(fields, user.FieldAvatarURL)
	}
	if m.FieldCleared(user.FieldAge) {
		fields = append(fields, user.FieldAge)
	}
	if m.FieldCleared(user.FieldHealthConditions) {
		fields = append(fields, user.FieldHealthConditions)
	}
	if m.FieldCleared(user.FieldDietaryPreferences) {
		fields = append(fields, user.FieldDietaryPreferences)
	}
	if m.FieldCleared(user.FieldAllergies) {
		fields = append(fields, user.FieldAllergies)
	}
	if m.FieldCleared(user.FieldLastScanAt) {
		fields = append(fields, user.FieldLastScanAt)
	}
	if m.FieldCleared(user.FieldLastLoginAt) {
		fields = append(fields, user.FieldLastLoginAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldNickname:
		m.ClearNickname()
		return nil
	case user.FieldAvatarURL:
		m.ClearAvatarURL()
		return nil
	case user.FieldAge:
		m.ClearAge()
		return nil
	case user.FieldHealthConditions:
		m.ClearHealthConditions()
		return nil
	case user.FieldDietaryPreferences:
		m.ClearDietaryPreferences()
		return nil
	case user.FieldAllergies:
		m.ClearAllergies()
		return nil
	case user.FieldLastScanAt:
		m.ClearLastScanAt()
		return nil
	case user.FieldLastLoginAt:
		m.ClearLastLoginAt()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldOpenid:
		m.ResetOpenid()
		return nil
	case user.FieldNickname:
		m.ResetNickname()
		return nil
	case user.FieldAvatarURL:
		m.ResetAvatarURL()
		return nil
	case user.FieldAge:
		m.ResetAge()
		return nil
	case user.FieldHealthConditions:
		m.ResetHealthConditions()
		return nil
	case user.FieldDietaryPreferences:
		m.ResetDietaryPreferences()
		return nil
	case user.FieldAllergies:
		m.ResetAllergies()
		return nil
	case user.FieldScanCount:
		m.ResetScanCount()
		return nil
	case user.FieldLastScanAt:
		m.ResetLastScanAt()
		return nil
	case user.FieldLastLoginAt:
		m.ResetLastLoginAt()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.detections != nil {
		edges = append(edges, user.EdgeDetections)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeDetections:
		ids := make([]ent.Value, 0, len(m.detections))
		for id := range m.detections {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removeddetections != nil {
		edges = append(edges, user.EdgeDetections)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeDetections:
		ids := make([]ent.Value, 0, len(m.removeddetections))
		for id := range m.removeddetections {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddetections {
		edges = append(edges, user.EdgeDetections)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeDetections:
		return m.cleareddetections
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeDetections:
		m.ResetDetections()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}
