package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

const stateTable = "state_buckets"

// stateRepo implements StateRepo as one row per bucket.
type stateRepo struct {
	drv *entsql.Driver
}

func (r *stateRepo) Load(ctx context.Context, bucket string) ([]byte, error) {
	sel := builder().Select("data").
		From(entsql.Table(stateTable)).
		Where(entsql.EQ("bucket", bucket)).
		Limit(1)

	var rows entsql.Rows
	query, args := sel.Query()
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("load bucket %q: %w", bucket, err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	var data []byte
	if err := rows.Scan(&data); err != nil {
		return nil, fmt.Errorf("scan bucket %q: %w", bucket, err)
	}
	return data, nil
}

func (r *stateRepo) Save(ctx context.Context, bucket string, data []byte) error {
	ins := builder().Insert(stateTable).
		Columns("bucket", "data", "updated_at").
		Values(bucket, data, time.Now().UTC()).
		OnConflict(
			entsql.ConflictColumns("bucket"),
			entsql.ResolveWithNewValues(),
		)

	query, args := ins.Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save bucket %q: %w", bucket, err)
	}
	return nil
}

func (r *stateRepo) Delete(ctx context.Context, bucket string) error {
	del := builder().Delete(stateTable).Where(entsql.EQ("bucket", bucket))

	query, args := del.Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("delete bucket %q: %w", bucket, err)
	}
	return nil
}
