package store

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type ChangeOrderStore struct {
	db *sqlx.DB
}

func (cs *ChangeOrderStore) InsertChangeOrderRow(ctx context.Context, row *ChangeOrderRow) error {
	query := `INSERT INTO change_order_rows (
		sync_id,
		change_order_id,
		change_order_name,
		change_order_identifier,
		contract_id,
		inserted_at
	) VALUES (
		:sync_id,
		:change_order_id,
		:change_order_name,
		:change_order_identifier,
		:contract_id,
		:inserted_at
	)`

	_, err := cs.db.NamedExecContext(ctx, query, row)
	return err
}

func (cs *ChangeOrderStore) GetChangeOrders(ctx context.Context, contractID string, limit int) ([]ChangeOrderRow, error) {
	rows := []ChangeOrderRow{}

	if contractID != "" {
		query := `SELECT * FROM change_order_rows WHERE contract_id = $1 ORDER BY id LIMIT $2`
		if err := cs.db.SelectContext(ctx, &rows, query, contractID, limit); err != nil {
			return nil, err
		}
		return rows, nil
	}

	query := `SELECT * FROM change_order_rows ORDER BY id LIMIT $1`
	if err := cs.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, err
	}
	return rows, nil
}
