package store

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

type SyncHistoryStore struct {
	db *sqlx.DB
}

var (
	TriggerTypeManual    = "manual"
	TriggerTypeScheduled = "scheduled"
)

var (
	StatusInProgress = "in_progress"
	StatusSuccess    = "success"
	StatusFailure    = "failure"
)

func (sh *SyncHistoryStore) InsertSyncHistory(ctx context.Context, history *SyncHistory) error {
	query := `INSERT INTO sync_history (
		trigger_type,
		status,
		property_filter,
		project_filter,
		core_rows,
		invoice_rows,
		change_order_rows
	) VALUES (
		:trigger_type,
		:status,
		:property_filter,
		:project_filter,
		:core_rows,
		:invoice_rows,
		:change_order_rows
	) RETURNING id, started_at`

	// NamedQuery instead of NamedExec so the generated id and started_at
	// come back into the struct.
	rows, err := sh.db.NamedQuery(query, history)
	if err != nil {
		return err
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&history.ID, &history.StartedAt); err != nil {
			return err
		}
	}

	return nil
}

func (sh *SyncHistoryStore) FinishSync(ctx context.Context, id int64, status string, coreRows, invoiceRows, changeOrderRows int) error {
	query := `UPDATE sync_history SET
		status = $1,
		core_rows = $2,
		invoice_rows = $3,
		change_order_rows = $4,
		finished_at = $5
	WHERE id = $6`

	_, err := sh.db.ExecContext(ctx, query, status, coreRows, invoiceRows, changeOrderRows, time.Now().UTC(), id)
	return err
}

func (sh *SyncHistoryStore) GetLatest(ctx context.Context, limit int) ([]SyncHistory, error) {
	query := `SELECT * FROM sync_history ORDER BY started_at DESC LIMIT $1`

	history := []SyncHistory{}
	if err := sh.db.SelectContext(ctx, &history, query, limit); err != nil {
		return nil, err
	}
	return history, nil
}
