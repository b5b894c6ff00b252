package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/asutherland/treeherder-service/internal/domain/model"
	"github.com/asutherland/treeherder-service/internal/service"
)

// ObjectstoreHandlers serves the raw-payload endpoints.
type ObjectstoreHandlers struct {
	Svc *service.IngestionService
}

// storeResponse is the body for a successful objectstore POST.
type storeResponse struct {
	Message string `json:"message"`
	Stored  int    `json:"stored"`
	Skipped int    `json:"skipped"`
	Errored int    `json:"errored"`

	Outcomes []model.IngestOutcome `json:"outcomes,omitempty"`
}

// Create ingests one payload or an array of payloads for a project.
// Per-job failures become outcomes, not request failures; only an
// unparseable body, an unknown project, or a pushlog transport failure
// fails the request.
func (h *ObjectstoreHandlers) Create(w http.ResponseWriter, r *http.Request) {
	payloads, ok := decodePayloadBatch(w, r)
	if !ok {
		return
	}

	summary, err := h.Svc.Ingest(r.Context(), r.PathValue("project"), payloads)
	if err != nil {
		RenderError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, storeResponse{
		Message:  "well-formed JSON stored",
		Stored:   summary.Stored,
		Skipped:  summary.Skipped,
		Errored:  summary.Errored,
		Outcomes: summary.Outcomes,
	})
}

// decodePayloadBatch accepts either a single JSON object or a JSON array
// of objects, normalizing both to a batch.
func decodePayloadBatch(w http.ResponseWriter, r *http.Request) ([]json.RawMessage, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_body", Err: err})
		return nil, false
	}
	if len(body) == 0 {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_body",
			Err:     errors.New("request body is empty"),
		})
		return nil, false
	}

	var batch []json.RawMessage
	if err := json.Unmarshal(body, &batch); err == nil {
		return batch, true
	}

	var single json.RawMessage
	if err := json.Unmarshal(body, &single); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_json", Err: err})
		return nil, false
	}
	return []json.RawMessage{single}, true
}

// Get returns the stored raw payload for a guid.
func (h *ObjectstoreHandlers) Get(w http.ResponseWriter, r *http.Request) {
	blob, err := h.Svc.GetBlob(r.Context(), r.PathValue("project"), r.PathValue("guid"))
	if err != nil {
		RenderError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, blob)
}

// List returns one page of stored raw payloads.
func (h *ObjectstoreHandlers) List(w http.ResponseWriter, r *http.Request) {
	blobs, err := h.Svc.ListBlobs(r.Context(), r.PathValue("project"), pageParam(r))
	if err != nil {
		RenderError(w, err)
		return
	}
	if blobs == nil {
		blobs = []*model.StoredPayload{}
	}
	WriteJSON(w, http.StatusOK, blobs)
}
