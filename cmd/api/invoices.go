package main

import (
	"net/http"

	"github.com/sylvainHellin/Alasco/internal/response"
	"github.com/sylvainHellin/Alasco/internal/store"
)

type GetInvoicesResponse = response.APIResponse[[]store.InvoiceRow]

// @Summary		Get invoices
// @Description	Get synced invoice rows, optionally restricted to one contract.
// @Tags			Invoices
// @Produce		json
// @Param			contract_id	query		string					false	"Contract id for filtering"
// @Param			limit		query		int						false	"Limit the number of results"	default(100)
// @Success		200			{object}	GetInvoicesResponse		"Successfully retrieved invoices"
// @Failure		500			{object}	response.ErrorResponse	"Failed to query invoices table"
// @Router			/invoices [get]
func (app *application) handleGetInvoices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	contractID := r.URL.Query().Get("contract_id")
	limit := parseLimitOrDefault(r.URL.Query().Get("limit"), 100)

	data, err := app.store.Invoice.GetInvoices(ctx, contractID, limit)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to query invoices table: "+err.Error())
		return
	}

	response := &GetInvoicesResponse{
		Success: true,
		Data:    data,
		Message: "Successfully retrieved invoices",
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}
