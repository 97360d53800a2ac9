package export

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/teachassist/backend/internal/models"
)

// ExportRequest carries an already-repaired pacing document back for binary
// export. The exporters perform no repair: the document is expected to
// satisfy its invariants when it arrives.
type ExportRequest struct {
	UnitTopic  string                `json:"unitTopic"`
	PacingData models.PacingDocument `json:"pacingData"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) ExportDOCX(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeExportRequest(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	w.Header().Set("Content-Disposition", `attachment; filename="`+ExportFilename(req.UnitTopic)+`.docx"`)
	if err := WriteDOCX(w, req.PacingData); err != nil {
		// Headers are already out; all we can do is log.
		log.Printf("[handler] ExportDOCX write error: %v", err)
	}
}

func (h *Handler) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeExportRequest(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+ExportFilename(req.UnitTopic)+`.xlsx"`)
	if err := WriteXLSX(w, req.PacingData); err != nil {
		log.Printf("[handler] ExportXLSX write error: %v", err)
	}
}

func decodeExportRequest(w http.ResponseWriter, r *http.Request) (*ExportRequest, bool) {
	var req ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return nil, false
	}
	if len(req.PacingData.DailyPlan) == 0 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "pacingData with a dailyPlan is required"})
		return nil, false
	}
	return &req, true
}

// ExportFilename derives a download filename from the unit topic:
// whitespace runs become single underscores.
func ExportFilename(topic string) string {
	fields := strings.Fields(topic)
	if len(fields) == 0 {
		return "pacing_guide"
	}
	return strings.Join(fields, "_")
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
