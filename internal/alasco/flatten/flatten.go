package flatten

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/sylvainHellin/Alasco/internal/alasco/types"
	"github.com/sylvainHellin/Alasco/internal/alasco/utils"
)

// naCell is the sentinel gota recognizes as a missing value when loading records.
const naCell = "NaN"

/*
Flatten converts one raw JSON resource page into a flat table.

Nested attribute objects become dotted column names with the "attributes."
prefix stripped, and belongs-to relationships (relationships.<name>.data.id)
become a plain <name> column holding the related id. When an attribute and a
relationship collide on the same column name the relationship wins: column
names are processed in sorted order and "relationships" sorts after
"attributes", so the later write is deterministic.
*/
func Flatten(page types.Page) (dataframe.DataFrame, error) {
	raw, ok := page["data"]
	if !ok {
		return dataframe.DataFrame{}, &types.SchemaError{Missing: "data"}
	}

	resources := resourceList(raw)
	if len(resources) == 0 {
		return dataframe.DataFrame{}, nil
	}

	var columns []string
	rows := make([]map[string]string, 0, len(resources))
	for _, res := range resources {
		order, values := flattenResource(res)
		for _, name := range order {
			if !utils.ContainsString(columns, name) {
				columns = append(columns, name)
			}
		}
		rows = append(rows, values)
	}

	records := make([][]string, 0, len(rows)+1)
	records = append(records, columns)
	for _, row := range rows {
		record := make([]string, len(columns))
		for i, name := range columns {
			if v, ok := row[name]; ok {
				record[i] = v
			} else {
				record[i] = naCell
			}
		}
		records = append(records, record)
	}

	df := dataframe.LoadRecords(records, dataframe.DetectTypes(false), dataframe.DefaultType(series.String))
	return df, df.Error()
}

/*
FlattenAll flattens every page independently, drops pages producing zero
rows, concatenates the rest by row on the unioned column set and only then
drops columns that are null across all pages. Pruning after concatenation
keeps page-local columns aligned even when pages carry heterogeneous schemas.
Zero input pages yield an empty table.
*/
func FlattenAll(pages []types.Page) (dataframe.DataFrame, error) {
	frames := make([]dataframe.DataFrame, 0, len(pages))
	for _, page := range pages {
		df, err := Flatten(page)
		if err != nil {
			return dataframe.DataFrame{}, err
		}
		if df.Nrow() == 0 {
			continue
		}
		frames = append(frames, df)
	}

	if len(frames) == 0 {
		return dataframe.DataFrame{}, nil
	}

	combined := frames[0]
	for _, frame := range frames[1:] {
		combined = combined.Concat(frame)
		if combined.Error() != nil {
			return dataframe.DataFrame{}, fmt.Errorf("concatenating pages: %v", combined.Error())
		}
	}

	return dropAllNullColumns(NormalizeNA(combined)), nil
}

// NormalizeNA reloads a table from its string records. Concat and join copy
// appended cells by their string form, which loses the NA flag on every row
// past the first frame; reloading re-marks the NaN sentinel as missing.
func NormalizeNA(df dataframe.DataFrame) dataframe.DataFrame {
	if df.Error() != nil || df.Nrow() == 0 {
		return df
	}
	return dataframe.LoadRecords(df.Records(), dataframe.DetectTypes(false), dataframe.DefaultType(series.String))
}

// resourceList accepts both collection pages (data is a list) and single
// resource pages (data is an object).
func resourceList(raw interface{}) []map[string]interface{} {
	switch data := raw.(type) {
	case []interface{}:
		resources := make([]map[string]interface{}, 0, len(data))
		for _, item := range data {
			if res, ok := item.(map[string]interface{}); ok {
				resources = append(resources, res)
			}
		}
		return resources
	case map[string]interface{}:
		return []map[string]interface{}{data}
	default:
		return nil
	}
}

func flattenResource(res map[string]interface{}) ([]string, map[string]string) {
	var order []string
	values := make(map[string]string)

	var walk func(prefix string, value interface{})
	walk = func(prefix string, value interface{}) {
		if nested, ok := value.(map[string]interface{}); ok && len(nested) > 0 {
			keys := make([]string, 0, len(nested))
			for k := range nested {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				name := k
				if prefix != "" {
					name = prefix + "." + k
				}
				walk(name, nested[k])
			}
			return
		}

		name := normalizeColumn(prefix)
		if _, exists := values[name]; !exists {
			order = append(order, name)
		}
		values[name] = formatCell(value)
	}

	walk("", res)
	return order, values
}

// normalizeColumn strips the "attributes." prefix and collapses a belongs-to
// relationship path to the bare relationship name.
func normalizeColumn(name string) string {
	name = strings.TrimPrefix(name, "attributes.")
	if rel, ok := strings.CutPrefix(name, "relationships."); ok {
		if base, ok := strings.CutSuffix(rel, ".data.id"); ok && !strings.Contains(base, ".") {
			return base
		}
	}
	return name
}

func formatCell(value interface{}) string {
	if value == nil {
		return naCell
	}
	return fmt.Sprint(value)
}

func dropAllNullColumns(df dataframe.DataFrame) dataframe.DataFrame {
	if df.Nrow() == 0 {
		return df
	}

	keep := make([]string, 0, len(df.Names()))
	for _, name := range df.Names() {
		col := df.Col(name)
		for i := 0; i < col.Len(); i++ {
			if !col.Elem(i).IsNA() {
				keep = append(keep, name)
				break
			}
		}
	}

	if len(keep) == 0 {
		return dataframe.DataFrame{}
	}
	if len(keep) == len(df.Names()) {
		return df
	}
	return df.Select(keep)
}
