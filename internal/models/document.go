package models

import (
	"encoding/json"
	"time"
)

// SavedDocument is a generated document persisted for a teacher.
type SavedDocument struct {
	ID        string          `json:"id"`
	UserID    int64           `json:"user_id"`
	Title     string          `json:"title"`
	ToolType  string          `json:"tool_type"`
	ToolName  string          `json:"tool_name"`
	Content   string          `json:"content"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type SaveDocumentRequest struct {
	Title    string          `json:"title"`
	ToolType string          `json:"tool_type"`
	ToolName string          `json:"tool_name"`
	Content  string          `json:"content"`
	Metadata json.RawMessage `json:"metadata,omitempty"`
}

type DocumentListResponse struct {
	Documents []SavedDocument `json:"documents"`
	Total     int             `json:"total"`
	Page      int             `json:"page"`
	PageSize  int             `json:"page_size"`
}
