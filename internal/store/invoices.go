package store

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type InvoiceStore struct {
	db *sqlx.DB
}

func (is *InvoiceStore) InsertInvoiceRow(ctx context.Context, row *InvoiceRow) error {
	query := `INSERT INTO invoice_rows (
		sync_id,
		invoice_id,
		invoice_number,
		contract_id,
		inserted_at
	) VALUES (
		:sync_id,
		:invoice_id,
		:invoice_number,
		:contract_id,
		:inserted_at
	)`

	_, err := is.db.NamedExecContext(ctx, query, row)
	return err
}

func (is *InvoiceStore) GetInvoices(ctx context.Context, contractID string, limit int) ([]InvoiceRow, error) {
	rows := []InvoiceRow{}

	if contractID != "" {
		query := `SELECT * FROM invoice_rows WHERE contract_id = $1 ORDER BY id LIMIT $2`
		if err := is.db.SelectContext(ctx, &rows, query, contractID, limit); err != nil {
			return nil, err
		}
		return rows, nil
	}

	query := `SELECT * FROM invoice_rows ORDER BY id LIMIT $1`
	if err := is.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, err
	}
	return rows, nil
}
