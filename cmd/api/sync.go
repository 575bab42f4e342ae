package main

import (
	"net/http"

	"github.com/sylvainHellin/Alasco/internal/response"
	"github.com/sylvainHellin/Alasco/internal/store"
)

type GetSyncHistoryResponse = response.APIResponse[[]store.SyncHistory]

// @Summary		Get sync history
// @Description	Get a list of the latest sync runs.
// @Tags			Sync
// @Produce		json
// @Param			limit	query		int						false	"Limit the number of results"	default(10)
// @Success		200		{object}	GetSyncHistoryResponse	"Successfully retrieved latest sync records"
// @Failure		500		{object}	response.ErrorResponse	"Failed to get sync history"
// @Router			/sync/history [get]
func (app *application) handleGetSyncHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := parseLimitOrDefault(r.URL.Query().Get("limit"), 10)

	data, err := app.store.SyncHistory.GetLatest(ctx, limit)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to get sync history: "+err.Error())
		return
	}

	response := &GetSyncHistoryResponse{
		Success: true,
		Data:    data,
		Message: "Successfully retrieved latest sync records",
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}
