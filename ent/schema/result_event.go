package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResultEvent is appended each time an assessment is completed.
type ResultEvent struct {
	ent.Schema
}

func (ResultEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ResultEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id"),
		field.String("first_name").
			Default(""),
		field.String("adhd_type"),
		field.Int("inattentive_score"),
		field.Int("hyperactive_score"),
		field.Int("combined_score"),
		field.Int("focus_score"),
		field.Int("organization_score"),
		field.Strings("primary_challenges"),
		field.Int("answer_count").
			Default(0),
		field.String("bank_version").
			Default("").
			Comment("Version of the question bank the answers were scored against"),
	}
}

func (ResultEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("adhd_type"),
	}
}
