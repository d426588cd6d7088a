package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/nutriscan/nutrition-scanner/constants"
	"github.com/nutriscan/nutrition-scanner/db/ent/schema/utils"
)

type Detection struct{ ent.Schema }

func (Detection) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "detections"},
	}
}

func (Detection) Fields() []ent.Field {
	numeric := map[string]string{dialect.Postgres: "numeric(10,2)"}
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// Nullable so anonymous scans are storable.
		field.UUID("user_id", uuid.UUID{}).Optional().Nillable(),
		field.String("detection_type").NotEmpty().
			Validate(utils.EnumValidator(
				string(constants.TypeOCRScan),
				string(constants.TypeManualInput),
				string(constants.TypeBarcodeScan),
			)),
		field.String("status").
			Default(string(constants.StatusPending)).
			Validate(utils.EnumValidator(
				string(constants.StatusPending),
				string(constants.StatusProcessing),
				string(constants.StatusCompleted),
				string(constants.StatusFailed),
				string(constants.StatusCancelled),
			)),

		// Input provenance.
		field.String("image_path").Optional().Nillable(),
		field.Text("raw_text").Optional().Nillable(),
		field.String("barcode").Optional().Nillable(),

		field.String("product_name").Optional().Nillable(),
		field.String("brand").Optional().Nillable(),
		field.String("category").Optional().Nillable(),

		// Nutrients per 100g, normalized units.
		field.Float("energy_kj").Optional().Nillable().SchemaType(numeric),
		field.Float("energy_kcal").Optional().Nillable().SchemaType(numeric),
		field.Float("protein").Optional().Nillable().SchemaType(numeric),
		field.Float("fat").Optional().Nillable().SchemaType(numeric),
		field.Float("saturated_fat").Optional().Nillable().SchemaType(numeric),
		field.Float("carbohydrate").Optional().Nillable().SchemaType(numeric),
		field.Float("sugar").Optional().Nillable().SchemaType(numeric),
		field.Float("fiber").Optional().Nillable().SchemaType(numeric),
		field.Float("sodium").Optional().Nillable().SchemaType(numeric),
		field.JSON("other_nutrients", json.RawMessage{}).Optional(),

		// Outcome.
		field.Float("health_score").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(4,1)"}),
		field.String("risk_level").
			Default(string(constants.RiskUnknown)).
			Validate(utils.EnumValidator(
				string(constants.RiskLow),
				string(constants.RiskMedium),
				string(constants.RiskHigh),
				string(constants.RiskVeryHigh),
				string(constants.RiskUnknown),
			)),
		field.Text("health_advice").Optional().Nillable(),
		field.JSON("analysis", json.RawMessage{}).Optional(),
		field.JSON("risk_factors", json.RawMessage{}).Optional(),
		field.Float32("ocr_confidence").Optional().Nillable(),
		field.Int64("processing_ms").Optional().Nillable(),
		field.Text("error_message").Optional().Nillable(),

		// Feedback.
		field.Int("user_rating").Optional().Nillable().Min(1).Max(5),
		field.Text("user_feedback").Optional().Nillable(),
		field.Bool("is_accurate").Optional().Nillable(),
		field.Bool("is_favorite").Default(false),

		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
		field.Time("completed_at").Optional().Nillable(),
	}
}

func (Detection) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY detections -> ONE user (FK: detections.user_id)
		edge.From("user", User.Type).
			Ref("detections").
			Field("user_id").
			Unique(),
	}
}

func (Detection) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
		index.Fields("status"),
	}
}
