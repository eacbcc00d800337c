package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ParseResult is the validated output of a successful parse job.
type ParseResult struct{ ent.Schema }

func (ParseResult) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "parse_results"},
	}
}

func (ParseResult) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("job_id", uuid.UUID{}),
		field.String("issuer").NotEmpty(),
		field.Float("issuer_confidence"),
		field.Float("overall_confidence"),
		// fields and transactions as emitted by the engine, schema-validated
		// before persistence
		field.JSON("fields", json.RawMessage{}).Optional(),
		field.JSON("transactions", json.RawMessage{}).Optional(),
		field.Time("created_at").Default(time.Now),
	}
}

func (ParseResult) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", ParseJob.Type).
			Ref("result").
			Field("job_id").
			Unique().
			Required(),
	}
}

func (ParseResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id").Unique(),
		index.Fields("issuer", "created_at"),
	}
}
