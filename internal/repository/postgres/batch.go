package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// deleteBatchSize bounds each bulk-delete statement so maintenance
// sweeps over large collections hold locks briefly instead of in one
// giant transaction.
const deleteBatchSize = 450

// deleteInBatches repeatedly executes the given ctid-limited DELETE
// until no rows remain. The query must take the batch size as $1;
// extra args follow from $2.
func deleteInBatches(ctx context.Context, db *pgxpool.Pool, query string, args ...interface{}) (int64, error) {
	var total int64
	params := append([]interface{}{deleteBatchSize}, args...)
	for {
		tag, err := db.Exec(ctx, query, params...)
		if err != nil {
			return total, err
		}
		affected := tag.RowsAffected()
		total += affected
		if affected < deleteBatchSize {
			return total, nil
		}
	}
}
