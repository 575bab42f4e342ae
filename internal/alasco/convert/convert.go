package convert

import (
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/sylvainHellin/Alasco/internal/alasco/utils"
	"github.com/sylvainHellin/Alasco/internal/store"
)

func DfRowToCoreRow(df dataframe.DataFrame, rowIdx int, syncID int64) store.CoreRow {

	return store.CoreRow{
		SyncID:           syncID,
		PropertyID:       utils.GetStr("property_id", rowIdx, &df),
		PropertyName:     utils.GetStr("property_name", rowIdx, &df),
		ProjectID:        utils.GetStr("project_id", rowIdx, &df),
		ProjectName:      utils.GetStr("project_name", rowIdx, &df),
		ContractUnitID:   utils.GetStr("contract_unit_id", rowIdx, &df),
		ContractUnitName: utils.GetStr("contract_unit_name", rowIdx, &df),
		ContractID:       utils.GetStr("contract_id", rowIdx, &df),
		ContractName:     utils.GetStr("contract_name", rowIdx, &df),
		ContractNumber:   utils.GetStr("contract_number", rowIdx, &df),
		ContractorID:     utils.GetStr("contractor_id", rowIdx, &df),
		ContractorName:   utils.GetStr("contractor_name", rowIdx, &df),
		InsertedAt:       time.Now().UTC(),
	}
}

func DfRowToInvoiceRow(df dataframe.DataFrame, rowIdx int, syncID int64) store.InvoiceRow {

	return store.InvoiceRow{
		SyncID:        syncID,
		InvoiceID:     utils.GetStr("invoice_id", rowIdx, &df),
		InvoiceNumber: utils.GetStr("invoice_number", rowIdx, &df),
		ContractID:    utils.GetStr("contract_id", rowIdx, &df),
		InsertedAt:    time.Now().UTC(),
	}
}

func DfRowToChangeOrderRow(df dataframe.DataFrame, rowIdx int, syncID int64) store.ChangeOrderRow {

	return store.ChangeOrderRow{
		SyncID:                syncID,
		ChangeOrderID:         utils.GetStr("change_order_id", rowIdx, &df),
		ChangeOrderName:       utils.GetStr("change_order_name", rowIdx, &df),
		ChangeOrderIdentifier: utils.GetStr("change_order_identifier", rowIdx, &df),
		ContractID:            utils.GetStr("contract_id", rowIdx, &df),
		InsertedAt:            time.Now().UTC(),
	}
}
