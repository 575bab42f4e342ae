package main

import (
	"net/http"

	"github.com/sylvainHellin/Alasco/internal/response"
	"github.com/sylvainHellin/Alasco/internal/store"
)

type GetCoreResponse = response.APIResponse[[]store.CoreRow]

// @Summary		Get core table
// @Description	Get the consolidated property/project/contract/contractor rows by applying optional filters.
// @Tags			Core
// @Produce		json
// @Param			property_id		query		string					false	"Property id for filtering"
// @Param			project_id		query		string					false	"Project id for filtering"
// @Param			contractor_id	query		string					false	"Contractor id for filtering"
// @Param			limit			query		int						false	"Limit the number of results"	default(100)
// @Success		200				{object}	GetCoreResponse			"Successfully retrieved core rows"
// @Failure		500				{object}	response.ErrorResponse	"Failed to query core table"
// @Router			/core [get]
func (app *application) handleGetCore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := store.CoreFilter{
		PropertyID:   r.URL.Query().Get("property_id"),
		ProjectID:    r.URL.Query().Get("project_id"),
		ContractorID: r.URL.Query().Get("contractor_id"),
		Limit:        parseLimitOrDefault(r.URL.Query().Get("limit"), 100),
	}

	data, err := app.store.Core.GetCore(ctx, filter)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to query core table: "+err.Error())
		return
	}

	response := &GetCoreResponse{
		Success: true,
		Data:    data,
		Message: "Successfully retrieved core rows",
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}
