package main

import (
	"net/http"

	"github.com/sylvainHellin/Alasco/internal/response"
	"github.com/sylvainHellin/Alasco/internal/store"
)

type GetChangeOrdersResponse = response.APIResponse[[]store.ChangeOrderRow]

// @Summary		Get change orders
// @Description	Get synced change order rows, optionally restricted to one contract.
// @Tags			ChangeOrders
// @Produce		json
// @Param			contract_id	query		string						false	"Contract id for filtering"
// @Param			limit		query		int							false	"Limit the number of results"	default(100)
// @Success		200			{object}	GetChangeOrdersResponse		"Successfully retrieved change orders"
// @Failure		500			{object}	response.ErrorResponse		"Failed to query change orders table"
// @Router			/change-orders [get]
func (app *application) handleGetChangeOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	contractID := r.URL.Query().Get("contract_id")
	limit := parseLimitOrDefault(r.URL.Query().Get("limit"), 100)

	data, err := app.store.ChangeOrder.GetChangeOrders(ctx, contractID, limit)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to query change orders table: "+err.Error())
		return
	}

	response := &GetChangeOrdersResponse{
		Success: true,
		Data:    data,
		Message: "Successfully retrieved change orders",
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}
