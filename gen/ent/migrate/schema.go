// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ArticlesColumns holds the columns for the "articles" table.
	ArticlesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString},
		{Name: "summary", Type: field.TypeString, Nullable: true},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "cover_url", Type: field.TypeString, Nullable: true},
		{Name: "view_count", Type: field.TypeInt, Default: 0},
		{Name: "is_published", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ArticlesTable holds the schema information for the "articles" table.
	ArticlesTable = &schema.Table{
		Name:       "articles",
		Columns:    ArticlesColumns,
		PrimaryKey: []*schema.Column{ArticlesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "article_category",
				Unique:  false,
				Columns: []*schema.Column{ArticlesColumns[4]},
			},
		},
	}
	// DetectionsColumns holds the columns for the "detections" table.
	DetectionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "detection_type", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "image_path", Type: field.TypeString, Nullable: true},
		{Name: "raw_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "barcode", Type: field.TypeString, Nullable: true},
		{Name: "product_name", Type: field.TypeString, Nullable: true},
		{Name: "brand", Type: field.TypeString, Nullable: true},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "energy_kj", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(10,2)"}},
		{Name: "energy_kcal", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(10,2)"}},
		{Name: "protein", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(10,2)"}},
		{Name: "fat", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(10,2)"}},
		{Name: "saturated_fat", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(10,2)"}},
		{Name: "carbohydrate", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(10,2)"}},
		{Name: "sugar", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(10,2)"}},
		{Name: "fiber", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(10,2)"}},
		{Name: "sodium", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(10,2)"}},
		{Name: "other_nutrients", Type: field.TypeJSON, Nullable: true},
		{Name: "health_score", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(4,1)"}},
		{Name: "risk_level", Type: field.TypeString, Default: "unknown"},
		{Name: "health_advice", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "analysis", Type: field.TypeJSON, Nullable: true},
		{Name: "risk_factors", Type: field.TypeJSON, Nullable: true},
		{Name: "ocr_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "processing_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "user_rating", Type: field.TypeInt, Nullable: true},
		{Name: "user_feedback", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_accurate", Type: field.TypeBool, Nullable: true},
		{Name: "is_favorite", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID, Nullable: true},
	}
	// DetectionsTable holds the schema information for the "detections" table.
	DetectionsTable = &schema.Table{
		Name:       "detections",
		Columns:    DetectionsColumns,
		PrimaryKey: []*schema.Column{DetectionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "detections_users_detections",
				Columns:    []*schema.Column{DetectionsColumns[34]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "detection_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{DetectionsColumns[34], DetectionsColumns[31]},
			},
			{
				Name:    "detection_status",
				Unique:  false,
				Columns: []*schema.Column{DetectionsColumns[2]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "openid", Type: field.TypeString, Unique: true},
		{Name: "nickname", Type: field.TypeString, Nullable: true},
		{Name: "avatar_url", Type: field.TypeString, Nullable: true},
		{Name: "age", Type: field.TypeInt, Nullable: true},
		{Name: "health_conditions", Type: field.TypeString, Nullable: true},
		{Name: "dietary_preferences", Type: field.TypeString, Nullable: true},
		{Name: "allergies", Type: field.TypeString, Nullable: true},
		{Name: "scan_count", Type: field.TypeInt, Default: 0},
		{Name: "last_scan_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ArticlesTable,
		DetectionsTable,
		UsersTable,
	}
)

func init() {
	ArticlesTable.Annotation = &entsql.Annotation{
		Table: "articles",
	}
	DetectionsTable.ForeignKeys[0].RefTable = UsersTable
	DetectionsTable.Annotation = &entsql.Annotation{
		Table: "detections",
	}
	UsersTable.Annotation = &entsql.Annotation{
		Table: "users",
	}
}
