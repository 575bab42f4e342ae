package consolidate

import (
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sylvainHellin/Alasco/internal/alasco/types"
)

func loadTable(records [][]string) dataframe.DataFrame {
	return dataframe.LoadRecords(records, dataframe.DetectTypes(false), dataframe.DefaultType(series.String))
}

func sampleTables() Tables {
	return Tables{
		"properties": loadTable([][]string{
			{"id", "name"},
			{"p1", "Harbor Quarter"},
		}),
		"projects": loadTable([][]string{
			{"id", "name", "property"},
			{"pr1", "Phase One", "p1"},
		}),
		"contract_units": loadTable([][]string{
			{"id", "name", "project"},
			{"cu1", "Shell and core", "pr1"},
		}),
		"contracts": loadTable([][]string{
			{"id", "name", "contract_number", "contract_unit", "contractor"},
			{"c1", "Facade works", "001", "cu1", "ct1"},
			{"c2", "Roofing", "002", "cu1", "ct2"},
		}),
		"contractors": loadTable([][]string{
			{"id", "name"},
			{"ct1", "Builder GmbH"},
			{"ct2", "Roofer AG"},
		}),
	}
}

func TestCore(t *testing.T) {
	core, err := Core(sampleTables())
	require.NoError(t, err)
	require.Equal(t, 2, core.Nrow())

	for _, col := range []string{
		"property_id", "property_name",
		"project_id", "project_name",
		"contract_unit_id", "contract_unit_name",
		"contract_id", "contract_name", "contract_number",
		"contractor_id", "contractor_name",
	} {
		assert.Contains(t, core.Names(), col)
	}

	assert.ElementsMatch(t, []string{"c1", "c2"}, core.Col("contract_id").Records())
	assert.ElementsMatch(t, []string{"Builder GmbH", "Roofer AG"}, core.Col("contractor_name").Records())
	assert.Equal(t, []string{"p1", "p1"}, core.Col("property_id").Records())
}

func TestCoreDropsUnmatchedRows(t *testing.T) {
	tables := sampleTables()
	// Second contract references a contractor that was never fetched.
	tables["contractors"] = loadTable([][]string{
		{"id", "name"},
		{"ct1", "Builder GmbH"},
	})

	core, err := Core(tables)
	require.NoError(t, err)
	require.Equal(t, 1, core.Nrow())
	assert.Equal(t, []string{"c1"}, core.Col("contract_id").Records())
}

func TestCoreMissingTable(t *testing.T) {
	tables := sampleTables()
	delete(tables, "contractors")

	_, err := Core(tables)
	var schemaErr *types.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "contractors", schemaErr.Missing)
}

func TestCoreMissingColumn(t *testing.T) {
	tables := sampleTables()
	tables["contracts"] = loadTable([][]string{
		{"id", "name", "contract_number", "contract_unit"},
		{"c1", "Facade works", "001", "cu1"},
	})

	_, err := Core(tables)
	var schemaErr *types.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "contracts.contractor", schemaErr.Missing)
}

func TestCoreEmptyInput(t *testing.T) {
	tables := sampleTables()
	tables["contract_units"] = loadTable([][]string{
		{"id", "name", "project"},
		{"cu1", "Shell and core", "other-project"},
	})

	core, err := Core(tables)
	require.NoError(t, err)
	assert.Equal(t, 0, core.Nrow(), "join chain with no matches yields an empty table")
}

func TestInvoices(t *testing.T) {
	core, err := Core(sampleTables())
	require.NoError(t, err)

	invoices := loadTable([][]string{
		{"id", "contract", "external_identifier"},
		{"i1", "c1", "INV-100"},
		{"i2", "c1", "INV-101"},
	})

	joined, err := Invoices(core, invoices)
	require.NoError(t, err)
	require.Equal(t, 2, joined.Nrow())

	assert.ElementsMatch(t, []string{"INV-100", "INV-101"}, joined.Col("invoice_number").Records())
	assert.Equal(t, []string{"c1", "c1"}, joined.Col("contract_id").Records())
	assert.Contains(t, joined.Names(), "contractor_name", "core columns survive the join")
}

func TestInvoicesEmptySecondary(t *testing.T) {
	core, err := Core(sampleTables())
	require.NoError(t, err)

	joined, err := Invoices(core, dataframe.DataFrame{})
	require.NoError(t, err, "no invoices is a valid empty result")
	assert.Equal(t, 0, joined.Nrow())
}

func TestChangeOrders(t *testing.T) {
	core, err := Core(sampleTables())
	require.NoError(t, err)

	changeOrders := loadTable([][]string{
		{"id", "contract", "name", "identifier"},
		{"co1", "c2", "Extra insulation", "CO-7"},
	})

	joined, err := ChangeOrders(core, changeOrders)
	require.NoError(t, err)
	require.Equal(t, 1, joined.Nrow())

	assert.Equal(t, []string{"co1"}, joined.Col("change_order_id").Records())
	assert.Equal(t, []string{"Extra insulation"}, joined.Col("change_order_name").Records())
	assert.Equal(t, []string{"CO-7"}, joined.Col("change_order_identifier").Records())
}

func TestJoinDropsExactDuplicates(t *testing.T) {
	core, err := Core(sampleTables())
	require.NoError(t, err)

	invoices := loadTable([][]string{
		{"id", "contract", "external_identifier"},
		{"i1", "c1", "INV-100"},
		{"i1", "c1", "INV-100"},
	})

	joined, err := Invoices(core, invoices)
	require.NoError(t, err)
	assert.Equal(t, 1, joined.Nrow())
}
