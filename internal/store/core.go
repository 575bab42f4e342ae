package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type CoreStore struct {
	db *sqlx.DB
}

// CoreFilter narrows the consolidated view. Zero values mean "no filter".
type CoreFilter struct {
	PropertyID   string
	ProjectID    string
	ContractorID string
	Limit        int
}

func (cs *CoreStore) InsertCoreRow(ctx context.Context, row *CoreRow) error {
	query := `INSERT INTO core_rows (
		sync_id,
		property_id,
		property_name,
		project_id,
		project_name,
		contract_unit_id,
		contract_unit_name,
		contract_id,
		contract_name,
		contract_number,
		contractor_id,
		contractor_name,
		inserted_at
	) VALUES (
		:sync_id,
		:property_id,
		:property_name,
		:project_id,
		:project_name,
		:contract_unit_id,
		:contract_unit_name,
		:contract_id,
		:contract_name,
		:contract_number,
		:contractor_id,
		:contractor_name,
		:inserted_at
	)`

	_, err := cs.db.NamedExecContext(ctx, query, row)
	return err
}

func (cs *CoreStore) GetCore(ctx context.Context, filter CoreFilter) ([]CoreRow, error) {
	query := `SELECT * FROM core_rows WHERE 1=1`
	args := []interface{}{}

	if filter.PropertyID != "" {
		args = append(args, filter.PropertyID)
		query += fmt.Sprintf(" AND property_id = $%d", len(args))
	}
	if filter.ProjectID != "" {
		args = append(args, filter.ProjectID)
		query += fmt.Sprintf(" AND project_id = $%d", len(args))
	}
	if filter.ContractorID != "" {
		args = append(args, filter.ContractorID)
		query += fmt.Sprintf(" AND contractor_id = $%d", len(args))
	}

	query += " ORDER BY id"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows := []CoreRow{}
	if err := cs.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	return rows, nil
}
