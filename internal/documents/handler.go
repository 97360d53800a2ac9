package documents

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/teachassist/backend/internal/models"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// getUserID extracts the authenticated user ID from the request context.
func getUserID(r *http.Request) (int64, bool) {
	uid, ok := r.Context().Value("user_id").(int64)
	return uid, ok
}

func (h *Handler) SaveDocument(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.SaveDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" || req.ToolType == "" || req.Content == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "title, tool_type, and content are required"})
		return
	}
	if len(req.Metadata) > 0 && !json.Valid(req.Metadata) {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "metadata must be a JSON value"})
		return
	}

	doc, err := h.store.CreateDocument(userID, req)
	if err != nil {
		log.Printf("[handler] SaveDocument error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to save document"})
		return
	}

	writeJSON(w, http.StatusCreated, doc)
}

func (h *Handler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	query := r.URL.Query()
	limit := intQueryParam(query, "limit", 20)
	offset := intQueryParam(query, "offset", 0)
	toolType := query.Get("tool_type")

	docs, total, err := h.store.ListDocuments(userID, toolType, limit, offset)
	if err != nil {
		log.Printf("[handler] ListDocuments error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list documents"})
		return
	}

	if docs == nil {
		docs = []models.SavedDocument{}
	}
	writeJSON(w, http.StatusOK, models.DocumentListResponse{
		Documents: docs,
		Total:     total,
		Page:      offset/limit + 1,
		PageSize:  limit,
	})
}

func (h *Handler) GetDocument(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	id := mux.Vars(r)["id"]
	if _, err := uuid.Parse(id); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid document ID"})
		return
	}

	doc, err := h.store.GetDocument(userID, id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Document not found"})
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

func (h *Handler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	id := mux.Vars(r)["id"]
	if _, err := uuid.Parse(id); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid document ID"})
		return
	}

	if err := h.store.DeleteDocument(userID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Document not found"})
			return
		}
		log.Printf("[handler] DeleteDocument error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to delete document"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func intQueryParam(query url.Values, key string, defaultVal int) int {
	s := query.Get(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return defaultVal
	}
	return v
}
