package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// StateBucket stores one persisted quiz session document. Saves replace
// the row for the bucket.
type StateBucket struct {
	ent.Schema
}

func (StateBucket) Fields() []ent.Field {
	return []ent.Field{
		field.String("bucket").
			Unique(),
		field.Bytes("data").
			Comment("JSON envelope {state, version}"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
