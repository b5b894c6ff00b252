package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/asutherland/treeherder-service/internal/domain/model"
	"github.com/asutherland/treeherder-service/internal/service"
)

// JobHandlers serves the normalized-job endpoints.
type JobHandlers struct {
	Svc *service.IngestionService
}

// Get returns a normalized job record by id.
func (h *JobHandlers) Get(w http.ResponseWriter, r *http.Request) {
	jobID, ok := jobIDParam(w, r)
	if !ok {
		return
	}

	job, err := h.Svc.GetJob(r.Context(), r.PathValue("project"), jobID)
	if err != nil {
		RenderError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, job)
}

// List returns one page of normalized job records, optionally filtered
// by a JMESPath expression in the filter query parameter.
func (h *JobHandlers) List(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.Svc.ListJobs(r.Context(), service.ListJobsParams{
		Project: r.PathValue("project"),
		Page:    pageParam(r),
		Filter:  r.URL.Query().Get("filter"),
	})
	if err != nil {
		RenderError(w, err)
		return
	}
	if jobs == nil {
		jobs = []*model.Job{}
	}
	WriteJSON(w, http.StatusOK, jobs)
}

// updateStateRequest is the body for the update_state action.
type updateStateRequest struct {
	State string `json:"state"`
}

// UpdateState persists a state transition for a job.
func (h *JobHandlers) UpdateState(w http.ResponseWriter, r *http.Request) {
	jobID, ok := jobIDParam(w, r)
	if !ok {
		return
	}

	var req updateStateRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.State == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "missing_field",
			Err:     errors.New("state is required"),
		})
		return
	}

	if err := h.Svc.UpdateState(r.Context(), r.PathValue("project"), jobID, req.State); err != nil {
		RenderError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("state updated to '%s'", req.State),
	})
}

func jobIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.PathValue("id")
	jobID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "validation",
			Err:     fmt.Errorf("invalid job id %q", raw),
		})
		return 0, false
	}
	return jobID, true
}
