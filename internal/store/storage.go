package store

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type Storage struct {
	Core interface {
		InsertCoreRow(ctx context.Context, row *CoreRow) error
		GetCore(ctx context.Context, filter CoreFilter) ([]CoreRow, error)
	}

	Invoice interface {
		InsertInvoiceRow(ctx context.Context, row *InvoiceRow) error
		GetInvoices(ctx context.Context, contractID string, limit int) ([]InvoiceRow, error)
	}

	ChangeOrder interface {
		InsertChangeOrderRow(ctx context.Context, row *ChangeOrderRow) error
		GetChangeOrders(ctx context.Context, contractID string, limit int) ([]ChangeOrderRow, error)
	}

	SyncHistory interface {
		InsertSyncHistory(ctx context.Context, history *SyncHistory) error
		FinishSync(ctx context.Context, id int64, status string, coreRows, invoiceRows, changeOrderRows int) error
		GetLatest(ctx context.Context, limit int) ([]SyncHistory, error)
	}
}

func NewStorage(db *sqlx.DB) *Storage {
	return &Storage{
		Core:        &CoreStore{db: db},
		Invoice:     &InvoiceStore{db: db},
		ChangeOrder: &ChangeOrderStore{db: db},
		SyncHistory: &SyncHistoryStore{db: db},
	}
}
