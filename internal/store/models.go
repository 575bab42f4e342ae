package store

import (
	"time"
)

// CoreRow is one row of the consolidated core table: the inner join of
// property, project, contract unit, contract and contractor.
type CoreRow struct {
	ID               int64     `db:"id" json:"id"`
	SyncID           int64     `db:"sync_id" json:"sync_id"`
	PropertyID       string    `db:"property_id" json:"property_id"`
	PropertyName     string    `db:"property_name" json:"property_name"`
	ProjectID        string    `db:"project_id" json:"project_id"`
	ProjectName      string    `db:"project_name" json:"project_name"`
	ContractUnitID   string    `db:"contract_unit_id" json:"contract_unit_id"`
	ContractUnitName string    `db:"contract_unit_name" json:"contract_unit_name"`
	ContractID       string    `db:"contract_id" json:"contract_id"`
	ContractName     string    `db:"contract_name" json:"contract_name"`
	ContractNumber   string    `db:"contract_number" json:"contract_number"`
	ContractorID     string    `db:"contractor_id" json:"contractor_id"`
	ContractorName   string    `db:"contractor_name" json:"contractor_name"`
	InsertedAt       time.Time `db:"inserted_at" json:"inserted_at"`
}

// InvoiceRow is one row of the invoices view joined onto the core table.
type InvoiceRow struct {
	ID            int64     `db:"id" json:"id"`
	SyncID        int64     `db:"sync_id" json:"sync_id"`
	InvoiceID     string    `db:"invoice_id" json:"invoice_id"`
	InvoiceNumber string    `db:"invoice_number" json:"invoice_number"`
	ContractID    string    `db:"contract_id" json:"contract_id"`
	InsertedAt    time.Time `db:"inserted_at" json:"inserted_at"`
}

// ChangeOrderRow is one row of the change orders view joined onto the core table.
type ChangeOrderRow struct {
	ID                    int64     `db:"id" json:"id"`
	SyncID                int64     `db:"sync_id" json:"sync_id"`
	ChangeOrderID         string    `db:"change_order_id" json:"change_order_id"`
	ChangeOrderName       string    `db:"change_order_name" json:"change_order_name"`
	ChangeOrderIdentifier string    `db:"change_order_identifier" json:"change_order_identifier"`
	ContractID            string    `db:"contract_id" json:"contract_id"`
	InsertedAt            time.Time `db:"inserted_at" json:"inserted_at"`
}

// SyncHistory records one run of the fetch-consolidate-load pipeline.
type SyncHistory struct {
	ID              int64      `db:"id" json:"id"`
	TriggerType     string     `db:"trigger_type" json:"trigger_type"`
	Status          string     `db:"status" json:"status"`
	PropertyFilter  string     `db:"property_filter" json:"property_filter"`
	ProjectFilter   string     `db:"project_filter" json:"project_filter"`
	CoreRows        int        `db:"core_rows" json:"core_rows"`
	InvoiceRows     int        `db:"invoice_rows" json:"invoice_rows"`
	ChangeOrderRows int        `db:"change_order_rows" json:"change_order_rows"`
	StartedAt       time.Time  `db:"started_at" json:"started_at"`
	FinishedAt      *time.Time `db:"finished_at" json:"finished_at,omitempty"`
}
