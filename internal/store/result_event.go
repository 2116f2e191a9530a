package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

const resultEventsTable = "result_events"

var resultEventColumns = []string{
	"id", "sequence", "timestamp", "session_id", "first_name", "adhd_type",
	"inattentive_score", "hyperactive_score", "combined_score",
	"focus_score", "organization_score", "primary_challenges",
	"answer_count", "bank_version",
}

func (r *eventRepo) AppendResult(ctx context.Context, data ResultEventData) error {
	challenges := data.PrimaryChallenges
	if challenges == nil {
		challenges = []string{}
	}
	challengesJSON, err := json.Marshal(challenges)
	if err != nil {
		return fmt.Errorf("marshal challenges: %w", err)
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	ins := builder().Insert(resultEventsTable).
		Columns(resultEventColumns[1:]...).
		Values(
			seqNum,
			time.Now().UTC(),
			data.SessionID,
			data.FirstName,
			data.ADHDType,
			data.InattentiveScore,
			data.HyperactiveScore,
			data.CombinedScore,
			data.FocusScore,
			data.OrganizationScore,
			string(challengesJSON),
			data.AnswerCount,
			data.BankVersion,
		)
	if err := r.exec(ctx, ins); err != nil {
		return fmt.Errorf("save result event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryResults(ctx context.Context, opts QueryOpts) ([]ResultEvent, error) {
	sel := builder().Select(resultEventColumns...).From(entsql.Table(resultEventsTable))
	applyQueryOpts(sel, opts.utc())

	var rows entsql.Rows
	query, args := sel.Query()
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query result events: %w", err)
	}
	defer rows.Close()

	var events []ResultEvent
	for rows.Next() {
		var (
			e          ResultEvent
			challenges []byte
		)
		if err := rows.Scan(
			&e.ID, &e.Sequence, &e.Timestamp,
			&e.SessionID, &e.FirstName, &e.ADHDType,
			&e.InattentiveScore, &e.HyperactiveScore, &e.CombinedScore,
			&e.FocusScore, &e.OrganizationScore, &challenges,
			&e.AnswerCount, &e.BankVersion,
		); err != nil {
			return nil, fmt.Errorf("scan result event: %w", err)
		}
		if err := json.Unmarshal(challenges, &e.PrimaryChallenges); err != nil {
			return nil, fmt.Errorf("decode challenges of event %d: %w", e.ID, err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
