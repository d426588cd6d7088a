package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type User struct{ ent.Schema }

func (User) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "users"},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("openid").NotEmpty().Unique(),
		field.String("nickname").Optional().Nillable(),
		field.String("avatar_url").Optional().Nillable(),
		// Health profile, all optional.
		field.Int("age").Optional().Nillable().Min(0).Max(150),
		field.String("health_conditions").Optional().Nillable(),
		field.String("dietary_preferences").Optional().Nillable(),
		field.String("allergies").Optional().Nillable(),
		field.Int("scan_count").Default(0).Min(0),
		field.Time("last_scan_at").Optional().Nillable(),
		field.Time("last_login_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("detections", Detection.Type),
	}
}
