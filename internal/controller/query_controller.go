package controller

import (
	"encoding/json"
	"net/http"
	"time"

	"WattChat.influxDB/internal/models"
	"WattChat.influxDB/internal/service"
	"WattChat.influxDB/internal/utils"
)

// QueryController handles natural-language query requests.
type QueryController struct {
	service *service.QueryService
}

// NewQueryController creates a new QueryController.
func NewQueryController(service *service.QueryService) *QueryController {
	return &QueryController{service: service}
}

// HandleQuery accepts {"question": "..."} plus optional ?start=&end=
// (RFC3339) query parameters that refine the inferred window.
func (c *QueryController) HandleQuery(w http.ResponseWriter, r *http.Request) {
	var req models.QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, models.NewAPIError(models.ErrorCodeBadRequest, "Invalid request payload", nil, http.StatusBadRequest))
		return
	}
	defer r.Body.Close()

	start, end, err := parseWindow(r)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	result, err := c.service.InterpretAndExecute(r.Context(), userID, req.Question, start, end)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, result)
}

// parseWindow reads optional start/end bounds from the query string.
// Each bound is independent; an absent bound stays nil.
func parseWindow(r *http.Request) (*time.Time, *time.Time, error) {
	query := r.URL.Query()

	var start, end *time.Time
	if raw := query.Get("start"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, nil, models.NewAPIError(models.ErrorCodeInvalidFormat, "invalid 'start', expected RFC3339", nil, http.StatusBadRequest)
		}
		utc := t.UTC()
		start = &utc
	}
	if raw := query.Get("end"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, nil, models.NewAPIError(models.ErrorCodeInvalidFormat, "invalid 'end', expected RFC3339", nil, http.StatusBadRequest)
		}
		utc := t.UTC()
		end = &utc
	}
	return start, end, nil
}
