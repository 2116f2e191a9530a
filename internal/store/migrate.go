package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table and column declarations, laid out the way ent's generated migrate
// package declares them so the schema can be diffed and applied by Atlas.
var (
	// StateBucketsColumns holds the columns for the "state_buckets" table.
	StateBucketsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "bucket", Type: field.TypeString, Unique: true},
		{Name: "data", Type: field.TypeBytes},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// StateBucketsTable holds the schema information for the "state_buckets" table.
	StateBucketsTable = &schema.Table{
		Name:       "state_buckets",
		Columns:    StateBucketsColumns,
		PrimaryKey: []*schema.Column{StateBucketsColumns[0]},
	}

	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "llmrequestevent_timestamp", Columns: []*schema.Column{LlmRequestEventsColumns[2]}},
			{Name: "llmrequestevent_provider", Columns: []*schema.Column{LlmRequestEventsColumns[3]}},
			{Name: "llmrequestevent_purpose", Columns: []*schema.Column{LlmRequestEventsColumns[5]}},
			{Name: "llmrequestevent_success", Columns: []*schema.Column{LlmRequestEventsColumns[9]}},
		},
	}

	// ResultEventsColumns holds the columns for the "result_events" table.
	ResultEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "first_name", Type: field.TypeString, Default: ""},
		{Name: "adhd_type", Type: field.TypeString},
		{Name: "inattentive_score", Type: field.TypeInt},
		{Name: "hyperactive_score", Type: field.TypeInt},
		{Name: "combined_score", Type: field.TypeInt},
		{Name: "focus_score", Type: field.TypeInt},
		{Name: "organization_score", Type: field.TypeInt},
		{Name: "primary_challenges", Type: field.TypeJSON},
		{Name: "answer_count", Type: field.TypeInt, Default: 0},
		{Name: "bank_version", Type: field.TypeString, Default: ""},
	}
	// ResultEventsTable holds the schema information for the "result_events" table.
	ResultEventsTable = &schema.Table{
		Name:       "result_events",
		Columns:    ResultEventsColumns,
		PrimaryKey: []*schema.Column{ResultEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "resultevent_timestamp", Columns: []*schema.Column{ResultEventsColumns[2]}},
			{Name: "resultevent_session_id", Columns: []*schema.Column{ResultEventsColumns[3]}},
			{Name: "resultevent_adhd_type", Columns: []*schema.Column{ResultEventsColumns[5]}},
		},
	}

	// EventSequenceColumns holds the columns for the "event_sequence" table.
	EventSequenceColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt},
		{Name: "last", Type: field.TypeInt64, Default: 0},
	}
	// EventSequenceTable is a single-row counter shared by the event tables.
	EventSequenceTable = &schema.Table{
		Name:       "event_sequence",
		Columns:    EventSequenceColumns,
		PrimaryKey: []*schema.Column{EventSequenceColumns[0]},
	}

	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		StateBucketsTable,
		LlmRequestEventsTable,
		ResultEventsTable,
		EventSequenceTable,
	}
)

// migrate creates missing tables, columns and indexes. It runs in ent's
// append-only mode: nothing is dropped.
func migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("init migration: %w", err)
	}
	if err := m.Create(ctx, Tables...); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}
