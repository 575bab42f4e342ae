package alasco

import "github.com/sylvainHellin/Alasco/internal/alasco/types"

// Each resource exposes one query type per supported filter, so callers
// cannot combine filters the API does not accept. The zero value of every
// query type means "no filter" except ChangeOrderQuery, which has no
// unfiltered form.

type PropertyQuery struct{ filter *types.Filter }

func AllProperties() PropertyQuery { return PropertyQuery{} }

func PropertiesByIDs(ids []string) PropertyQuery {
	return PropertyQuery{filter: types.NewFilter("id", "in", ids...)}
}

func PropertiesByName(name string) PropertyQuery {
	return PropertyQuery{filter: types.NewFilter("name", "contains", name)}
}

type ProjectQuery struct{ filter *types.Filter }

func AllProjects() ProjectQuery { return ProjectQuery{} }

func ProjectsByProperties(propertyIDs []string) ProjectQuery {
	return ProjectQuery{filter: types.NewFilter("property", "in", propertyIDs...)}
}

func ProjectsByName(name string) ProjectQuery {
	return ProjectQuery{filter: types.NewFilter("name", "contains", name)}
}

type ContractUnitQuery struct{ filter *types.Filter }

func AllContractUnits() ContractUnitQuery { return ContractUnitQuery{} }

func ContractUnitsByIDs(ids []string) ContractUnitQuery {
	return ContractUnitQuery{filter: types.NewFilter("id", "in", ids...)}
}

func ContractUnitsByProjects(projectIDs []string) ContractUnitQuery {
	return ContractUnitQuery{filter: types.NewFilter("project", "in", projectIDs...)}
}

type ContractQuery struct{ filter *types.Filter }

func AllContracts() ContractQuery { return ContractQuery{} }

func ContractsByNumber(contractNumber string) ContractQuery {
	return ContractQuery{filter: types.NewFilter("contract_number", "exact", contractNumber)}
}

func ContractsByCostCenter(costCenter string) ContractQuery {
	return ContractQuery{filter: types.NewFilter("cost_center", "exact", costCenter)}
}

func ContractsByIDs(ids []string) ContractQuery {
	return ContractQuery{filter: types.NewFilter("id", "in", ids...)}
}

func ContractsByContractors(contractorIDs []string) ContractQuery {
	return ContractQuery{filter: types.NewFilter("contractor", "in", contractorIDs...)}
}

func ContractsByContractUnits(contractUnitIDs []string) ContractQuery {
	return ContractQuery{filter: types.NewFilter("contract_unit", "in", contractUnitIDs...)}
}

type ContractorQuery struct{ filter *types.Filter }

func AllContractors() ContractorQuery { return ContractorQuery{} }

func ContractorsByIDs(ids []string) ContractorQuery {
	return ContractorQuery{filter: types.NewFilter("id", "in", ids...)}
}

func ContractorsByName(name string) ContractorQuery {
	return ContractorQuery{filter: types.NewFilter("name", "contains", name)}
}

type ContractingEntityQuery struct{ filter *types.Filter }

func AllContractingEntities() ContractingEntityQuery { return ContractingEntityQuery{} }

func ContractingEntitiesByName(name string) ContractingEntityQuery {
	return ContractingEntityQuery{filter: types.NewFilter("name", "contains", name)}
}

type InvoiceQuery struct{ filter *types.Filter }

func AllInvoices() InvoiceQuery { return InvoiceQuery{} }

func InvoicesByIDs(ids []string) InvoiceQuery {
	return InvoiceQuery{filter: types.NewFilter("id", "in", ids...)}
}

func InvoicesByContracts(contractIDs []string) InvoiceQuery {
	return InvoiceQuery{filter: types.NewFilter("contract", "in", contractIDs...)}
}

type ChangeOrderQuery struct{ filter *types.Filter }

func ChangeOrdersByIDs(ids []string) ChangeOrderQuery {
	return ChangeOrderQuery{filter: types.NewFilter("id", "in", ids...)}
}

func ChangeOrdersByContracts(contractIDs []string) ChangeOrderQuery {
	return ChangeOrderQuery{filter: types.NewFilter("contract", "in", contractIDs...)}
}
