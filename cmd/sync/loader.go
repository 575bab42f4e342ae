package main

import (
	"context"
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/sylvainHellin/Alasco/internal/alasco/convert"
	"github.com/sylvainHellin/Alasco/internal/logger"
	"github.com/sylvainHellin/Alasco/internal/store"
)

// LoadCounts reports how many rows of each table made it into the database.
type LoadCounts struct {
	CoreRows        int
	InvoiceRows     int
	ChangeOrderRows int
}

/*
LoadTables inserts the consolidated tables row by row under the given sync id.
Individual insert failures are logged and counted but do not abort the load;
the returned error is non-nil when at least one row failed so the sync record
can be marked accordingly.
*/
func LoadTables(ctx context.Context, storage *store.Storage, syncID int64, core, invoices, changeOrders dataframe.DataFrame, appLogger *logger.Logger) (LoadCounts, error) {
	const component = "Loader"

	var counts LoadCounts
	failed := 0

	appLogger.Info(component, "Starting data load: syncID=%d", syncID)

	for i := 0; i < core.Nrow(); i++ {
		row := convert.DfRowToCoreRow(core, i, syncID)
		if err := storage.Core.InsertCoreRow(ctx, &row); err != nil {
			appLogger.Error(component, "Failed to insert core row: contract=%s error=%v", row.ContractID, err)
			failed++
			continue
		}
		counts.CoreRows++
	}

	for i := 0; i < invoices.Nrow(); i++ {
		row := convert.DfRowToInvoiceRow(invoices, i, syncID)
		if err := storage.Invoice.InsertInvoiceRow(ctx, &row); err != nil {
			appLogger.Error(component, "Failed to insert invoice row: invoice=%s error=%v", row.InvoiceID, err)
			failed++
			continue
		}
		counts.InvoiceRows++
	}

	for i := 0; i < changeOrders.Nrow(); i++ {
		row := convert.DfRowToChangeOrderRow(changeOrders, i, syncID)
		if err := storage.ChangeOrder.InsertChangeOrderRow(ctx, &row); err != nil {
			appLogger.Error(component, "Failed to insert change order row: changeOrder=%s error=%v", row.ChangeOrderID, err)
			failed++
			continue
		}
		counts.ChangeOrderRows++
	}

	appLogger.Info(component, "Data load finished: core=%d invoices=%d changeOrders=%d failed=%d",
		counts.CoreRows, counts.InvoiceRows, counts.ChangeOrderRows, failed)

	if failed > 0 {
		return counts, fmt.Errorf("%d rows failed to load", failed)
	}
	return counts, nil
}
