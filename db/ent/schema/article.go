package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

type Article struct{ ent.Schema }

func (Article) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "articles"},
	}
}

func (Article) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").Positive(),
		field.String("title").NotEmpty(),
		field.String("summary").Optional().Nillable(),
		field.Text("content").NotEmpty(),
		field.String("category").Optional().Nillable(),
		field.String("cover_url").Optional().Nillable(),
		field.Int("view_count").Default(0).Min(0),
		field.Bool("is_published").Default(true),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Article) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category"),
	}
}
