package alasco

import (
	"context"
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/sylvainHellin/Alasco/internal/alasco/consolidate"
	"github.com/sylvainHellin/Alasco/internal/alasco/flatten"
	"github.com/sylvainHellin/Alasco/internal/alasco/types"
	"github.com/sylvainHellin/Alasco/internal/alasco/utils"
)

/*
GetDataFrame fetches a resource as a flat table. When the filter carries more
values than chunkSize, the value list is split into consecutive chunks and
one fetch+flatten round trip is issued per chunk, sequentially, with the
per-chunk tables concatenated in chunk order under a fresh index. The remote
API silently rejects or truncates overly long filter value lists, so chunking
trades round trips for correctness.
*/
func (c *Client) GetDataFrame(ctx context.Context, url string, filter *types.Filter, chunkSize int) (dataframe.DataFrame, error) {
	const component = "Chunker"

	if chunkSize <= 0 {
		return dataframe.DataFrame{}, fmt.Errorf("chunk size must be greater than 0, got %d", chunkSize)
	}

	if filter != nil && len(filter.Values) > chunkSize {
		chunks, err := utils.SplitList(filter.Values, chunkSize)
		if err != nil {
			return dataframe.DataFrame{}, err
		}

		var combined dataframe.DataFrame
		for i, chunk := range chunks {
			c.log.Debug(component, "Chunked API call %d/%d: url=%s values=%d", i+1, len(chunks), truncate(url, 100), len(chunk))

			df, err := c.fetchTable(ctx, url, types.NewFilter(filter.Attribute, filter.Operation, chunk...))
			if err != nil {
				return dataframe.DataFrame{}, err
			}
			if df.Nrow() == 0 {
				continue
			}
			if combined.Nrow() == 0 {
				combined = df
				continue
			}
			combined = combined.Concat(df)
			if combined.Error() != nil {
				return dataframe.DataFrame{}, fmt.Errorf("concatenating chunks: %v", combined.Error())
			}
		}
		// Concat loses the NA flag on appended rows.
		return flatten.NormalizeNA(combined), nil
	}

	return c.fetchTable(ctx, url, filter)
}

func (c *Client) fetchTable(ctx context.Context, url string, filter *types.Filter) (dataframe.DataFrame, error) {
	pages, err := c.GetJSON(ctx, url, filter)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	return flatten.FlattenAll(pages)
}

// GetProperties fetches the properties table.
func (c *Client) GetProperties(ctx context.Context, q PropertyQuery) (dataframe.DataFrame, error) {
	return c.GetDataFrame(ctx, c.propertiesURL(), q.filter, defaultChunkSize)
}

// GetProjects fetches the projects table.
func (c *Client) GetProjects(ctx context.Context, q ProjectQuery) (dataframe.DataFrame, error) {
	return c.GetDataFrame(ctx, c.projectsURL(), q.filter, defaultChunkSize)
}

// GetContractUnits fetches the contract units table.
func (c *Client) GetContractUnits(ctx context.Context, q ContractUnitQuery) (dataframe.DataFrame, error) {
	return c.GetDataFrame(ctx, c.contractUnitsURL(), q.filter, defaultChunkSize)
}

// GetContracts fetches the contracts table.
func (c *Client) GetContracts(ctx context.Context, q ContractQuery) (dataframe.DataFrame, error) {
	return c.GetDataFrame(ctx, c.contractsURL(), q.filter, defaultChunkSize)
}

// GetContractors fetches the contractors table.
func (c *Client) GetContractors(ctx context.Context, q ContractorQuery) (dataframe.DataFrame, error) {
	return c.GetDataFrame(ctx, c.contractorsURL(), q.filter, defaultChunkSize)
}

// GetContractingEntities fetches the contracting entities table.
func (c *Client) GetContractingEntities(ctx context.Context, q ContractingEntityQuery) (dataframe.DataFrame, error) {
	return c.GetDataFrame(ctx, c.contractingEntitiesURL(), q.filter, defaultChunkSize)
}

// GetInvoices fetches the invoices table.
func (c *Client) GetInvoices(ctx context.Context, q InvoiceQuery) (dataframe.DataFrame, error) {
	return c.GetDataFrame(ctx, c.invoicesURL(), q.filter, defaultChunkSize)
}

// GetChangeOrders fetches the change orders table. The endpoint cannot be
// queried unfiltered: callers must scope by change order ids or contract ids.
func (c *Client) GetChangeOrders(ctx context.Context, q ChangeOrderQuery) (dataframe.DataFrame, error) {
	if q.filter == nil {
		return dataframe.DataFrame{}, fmt.Errorf("provide either a list of change order ids or a list of contract ids")
	}
	return c.GetDataFrame(ctx, c.changeOrdersURL(), q.filter, defaultChunkSize)
}

// GetReporting fetches the reporting view for the given projects. The
// reporting endpoint enforces a stricter filter length limit, hence the
// smaller chunk size.
func (c *Client) GetReporting(ctx context.Context, projectIDs []string) (dataframe.DataFrame, error) {
	filter := types.NewFilter("project", "in", projectIDs...)
	return c.GetDataFrame(ctx, c.reportingURL(), filter, reportingChunkSize)
}

/*
GetAllTables walks the resource tree top-down and returns every flattened
table the consolidator needs: properties scope the projects, projects scope
the contract units, contract units scope the contracts, and the contracts
table provides both the contractor ids and the invoice/change-order scope.
Contracts entered without a contractor carry a null foreign key and are
filtered out of the contractor id list here; the consolidator drops those
rows via its inner join.
*/
func (c *Client) GetAllTables(ctx context.Context, propertyName, projectName string) (consolidate.Tables, error) {
	const component = "Fetcher"

	propertyQuery := AllProperties()
	if propertyName != "" {
		propertyQuery = PropertiesByName(propertyName)
	}
	properties, err := c.GetProperties(ctx, propertyQuery)
	if err != nil {
		return nil, err
	}
	propertyIDs, err := utils.ExtractIDs(properties)
	if err != nil {
		return nil, err
	}

	projectQuery := ProjectsByProperties(propertyIDs)
	if projectName != "" {
		projectQuery = ProjectsByName(projectName)
	}
	projects, err := c.GetProjects(ctx, projectQuery)
	if err != nil {
		return nil, err
	}
	projectIDs, err := utils.ExtractIDs(projects)
	if err != nil {
		return nil, err
	}

	units, err := c.GetContractUnits(ctx, ContractUnitsByProjects(projectIDs))
	if err != nil {
		return nil, err
	}
	unitIDs, err := utils.ExtractIDs(units)
	if err != nil {
		return nil, err
	}

	contracts, err := c.GetContracts(ctx, ContractsByContractUnits(unitIDs))
	if err != nil {
		return nil, err
	}
	contractIDs, err := utils.ExtractIDs(contracts)
	if err != nil {
		return nil, err
	}

	contractorIDs := nonNullColumn(contracts, "contractor")
	c.log.Debug(component, "Resource tree walked: properties=%d projects=%d units=%d contracts=%d contractors=%d",
		len(propertyIDs), len(projectIDs), len(unitIDs), len(contractIDs), len(contractorIDs))

	contractors, err := c.GetContractors(ctx, ContractorsByIDs(contractorIDs))
	if err != nil {
		return nil, err
	}

	invoices, err := c.GetInvoices(ctx, InvoicesByContracts(contractIDs))
	if err != nil {
		return nil, err
	}

	changeOrders, err := c.GetChangeOrders(ctx, ChangeOrdersByContracts(contractIDs))
	if err != nil {
		return nil, err
	}

	return consolidate.Tables{
		"properties":     properties,
		"projects":       projects,
		"contract_units": units,
		"contracts":      contracts,
		"contractors":    contractors,
		"invoices":       invoices,
		"change_orders":  changeOrders,
	}, nil
}

// GetContractDocuments fetches and concatenates the document tables of the
// given contracts. Contracts without documents are skipped; all empty yields
// an empty table.
func (c *Client) GetContractDocuments(ctx context.Context, contractIDs []string) (dataframe.DataFrame, error) {
	urls := make([]string, len(contractIDs))
	for i, id := range contractIDs {
		urls[i] = c.ContractDocumentsURL(id)
	}
	return c.collectDocumentTables(ctx, urls)
}

// GetChangeOrderDocuments mirrors GetContractDocuments for change orders.
func (c *Client) GetChangeOrderDocuments(ctx context.Context, changeOrderIDs []string) (dataframe.DataFrame, error) {
	urls := make([]string, len(changeOrderIDs))
	for i, id := range changeOrderIDs {
		urls[i] = c.ChangeOrderDocumentsURL(id)
	}
	return c.collectDocumentTables(ctx, urls)
}

// GetInvoiceDocuments mirrors GetContractDocuments for invoices.
func (c *Client) GetInvoiceDocuments(ctx context.Context, invoiceIDs []string) (dataframe.DataFrame, error) {
	urls := make([]string, len(invoiceIDs))
	for i, id := range invoiceIDs {
		urls[i] = c.InvoiceDocumentsURL(id)
	}
	return c.collectDocumentTables(ctx, urls)
}

func (c *Client) collectDocumentTables(ctx context.Context, urls []string) (dataframe.DataFrame, error) {
	var combined dataframe.DataFrame
	for _, url := range urls {
		df, err := c.GetDataFrame(ctx, url, nil, defaultChunkSize)
		if err != nil {
			return dataframe.DataFrame{}, err
		}
		if df.Nrow() == 0 {
			continue
		}
		if combined.Nrow() == 0 {
			combined = df
			continue
		}
		combined = combined.Concat(df)
		if combined.Error() != nil {
			return dataframe.DataFrame{}, fmt.Errorf("concatenating document tables: %v", combined.Error())
		}
	}
	// Concat loses the NA flag on appended rows.
	return flatten.NormalizeNA(combined), nil
}

func nonNullColumn(df dataframe.DataFrame, column string) []string {
	if !utils.ContainsString(df.Names(), column) {
		return nil
	}

	col := df.Col(column)
	values := make([]string, 0, col.Len())
	for i := 0; i < col.Len(); i++ {
		elem := col.Elem(i)
		if elem.IsNA() {
			continue
		}
		if v := elem.String(); v != "" {
			values = append(values, v)
		}
	}
	return values
}
