package convert

import (
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDfRowToCoreRow(t *testing.T) {
	df := dataframe.LoadRecords([][]string{
		{"property_id", "property_name", "project_id", "project_name", "contract_unit_id", "contract_unit_name", "contract_id", "contract_name", "contract_number", "contractor_id", "contractor_name"},
		{"p1", "Harbor Quarter", "pr1", "Phase One", "cu1", "Shell and core", "c1", "Facade works", "001", "ct1", "Builder GmbH"},
	}, dataframe.DetectTypes(false), dataframe.DefaultType(series.String))

	row := DfRowToCoreRow(df, 0, 42)

	assert.Equal(t, int64(42), row.SyncID)
	assert.Equal(t, "p1", row.PropertyID)
	assert.Equal(t, "Harbor Quarter", row.PropertyName)
	assert.Equal(t, "c1", row.ContractID)
	assert.Equal(t, "001", row.ContractNumber)
	assert.Equal(t, "Builder GmbH", row.ContractorName)
	assert.False(t, row.InsertedAt.IsZero())
}

func TestDfRowToInvoiceRow(t *testing.T) {
	df := dataframe.LoadRecords([][]string{
		{"invoice_id", "invoice_number", "contract_id"},
		{"i1", "INV-100", "c1"},
		{"i2", "NaN", "c1"},
	}, dataframe.DetectTypes(false), dataframe.DefaultType(series.String))

	row := DfRowToInvoiceRow(df, 0, 7)
	require.Equal(t, "i1", row.InvoiceID)
	assert.Equal(t, "INV-100", row.InvoiceNumber)
	assert.Equal(t, "c1", row.ContractID)

	row = DfRowToInvoiceRow(df, 1, 7)
	assert.Equal(t, "", row.InvoiceNumber, "missing cells load as empty strings")
}

func TestDfRowToChangeOrderRow(t *testing.T) {
	df := dataframe.LoadRecords([][]string{
		{"change_order_id", "change_order_name", "change_order_identifier", "contract_id"},
		{"co1", "Extra insulation", "CO-7", "c2"},
	}, dataframe.DetectTypes(false), dataframe.DefaultType(series.String))

	row := DfRowToChangeOrderRow(df, 0, 7)
	assert.Equal(t, "co1", row.ChangeOrderID)
	assert.Equal(t, "Extra insulation", row.ChangeOrderName)
	assert.Equal(t, "CO-7", row.ChangeOrderIdentifier)
	assert.Equal(t, "c2", row.ContractID)
}
