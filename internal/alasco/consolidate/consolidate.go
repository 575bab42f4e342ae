package consolidate

import (
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/sylvainHellin/Alasco/internal/alasco/types"
)

// Tables is the flattened input of the consolidation, keyed by entity name.
type Tables map[string]dataframe.DataFrame

// Required consolidation inputs and the columns each must carry.
var coreColumns = []struct {
	table   string
	columns []string
}{
	{"properties", []string{"id", "name"}},
	{"projects", []string{"id", "name", "property"}},
	{"contract_units", []string{"id", "name", "project"}},
	{"contracts", []string{"id", "name", "contract_number", "contract_unit", "contractor"}},
	{"contractors", []string{"id", "name"}},
}

/*
Core merges the flattened entity tables into the denormalized reporting view
via sequential inner joins:

	properties -> projects -> contract_units -> contracts -> contractors

Join keys are renamed at every step (id/name become property_id/property_name
and so on) so no column stays ambiguous. Inner-join semantics are intentional:
a contract without a contractor, or a contract unit without contracts,
produces zero core rows for that branch. Exact-duplicate rows are removed
after each join and the result carries a fresh contiguous index.
*/
func Core(tables Tables) (dataframe.DataFrame, error) {
	for _, req := range coreColumns {
		df, ok := tables[req.table]
		if !ok {
			return dataframe.DataFrame{}, &types.SchemaError{Missing: req.table}
		}
		if err := requireColumns(df, req.table, req.columns); err != nil {
			return dataframe.DataFrame{}, err
		}
	}

	properties := rename(tables["properties"].Select([]string{"id", "name"}),
		"id", "property_id", "name", "property_name")

	projects := rename(tables["projects"].Select([]string{"id", "name", "property"}),
		"id", "project_id", "name", "project_name", "property", "property_id")

	units := rename(tables["contract_units"].Select([]string{"id", "name", "project"}),
		"id", "contract_unit_id", "name", "contract_unit_name", "project", "project_id")

	contracts := rename(tables["contracts"].Select([]string{"id", "name", "contract_number", "contract_unit", "contractor"}),
		"id", "contract_id", "name", "contract_name", "contract_unit", "contract_unit_id", "contractor", "contractor_id")

	contractors := rename(tables["contractors"].Select([]string{"id", "name"}),
		"id", "contractor_id", "name", "contractor_name")

	core := properties
	for _, step := range []struct {
		table dataframe.DataFrame
		key   string
	}{
		{projects, "property_id"},
		{units, "project_id"},
		{contracts, "contract_unit_id"},
		{contractors, "contractor_id"},
	} {
		if core.Nrow() == 0 || step.table.Nrow() == 0 {
			return dataframe.DataFrame{}, nil
		}
		core = dropDuplicates(core.InnerJoin(step.table, step.key))
		if core.Error() != nil {
			return dataframe.DataFrame{}, core.Error()
		}
	}

	return core, nil
}

// Invoices joins the flattened invoices table onto the core table by
// contract_id. Contracts without invoices disappear from the joined view;
// callers needing them must use the core table directly.
func Invoices(core, invoices dataframe.DataFrame) (dataframe.DataFrame, error) {
	return joinOnContract(core, invoices, "invoices", []string{"id", "contract", "external_identifier"},
		[]string{"id", "invoice_id", "contract", "contract_id", "external_identifier", "invoice_number"})
}

// ChangeOrders joins the flattened change orders table onto the core table by
// contract_id, mirroring Invoices.
func ChangeOrders(core, changeOrders dataframe.DataFrame) (dataframe.DataFrame, error) {
	return joinOnContract(core, changeOrders, "change_orders", []string{"id", "contract", "name", "identifier"},
		[]string{"id", "change_order_id", "contract", "contract_id", "name", "change_order_name", "identifier", "change_order_identifier"})
}

func joinOnContract(core, secondary dataframe.DataFrame, table string, required, renames []string) (dataframe.DataFrame, error) {
	// Zero secondary rows is a valid empty result, not a schema failure.
	if secondary.Nrow() == 0 || core.Nrow() == 0 {
		return dataframe.DataFrame{}, nil
	}

	if err := requireColumns(secondary, table, required); err != nil {
		return dataframe.DataFrame{}, err
	}
	if err := requireColumns(core, "core", []string{"contract_id"}); err != nil {
		return dataframe.DataFrame{}, err
	}

	prepared := rename(secondary.Select(required), renames...)
	joined := dropDuplicates(core.InnerJoin(prepared, "contract_id"))
	if joined.Error() != nil {
		return dataframe.DataFrame{}, joined.Error()
	}
	return joined, nil
}

func requireColumns(df dataframe.DataFrame, table string, columns []string) error {
	names := df.Names()
	for _, col := range columns {
		found := false
		for _, name := range names {
			if name == col {
				found = true
				break
			}
		}
		if !found {
			return &types.SchemaError{Missing: table + "." + col}
		}
	}
	return nil
}

// rename applies old/new column name pairs in order.
func rename(df dataframe.DataFrame, pairs ...string) dataframe.DataFrame {
	for i := 0; i+1 < len(pairs); i += 2 {
		df = df.Rename(pairs[i+1], pairs[i])
	}
	return df
}

// dropDuplicates removes rows that are identical on every column. Row order
// of first occurrences is preserved; the index is rebuilt from zero. The
// result is always reloaded from records: joins copy cells by their string
// form and lose the NA flag, reloading re-marks the NaN sentinel as missing.
func dropDuplicates(df dataframe.DataFrame) dataframe.DataFrame {
	if df.Error() != nil || df.Nrow() == 0 {
		return df
	}

	records := df.Records()
	seen := make(map[string]struct{}, len(records)-1)
	unique := [][]string{records[0]}
	for _, row := range records[1:] {
		key := strings.Join(row, "\x1f")
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, row)
	}

	return dataframe.LoadRecords(unique, dataframe.DetectTypes(false), dataframe.DefaultType(series.String))
}
