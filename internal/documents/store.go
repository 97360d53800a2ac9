package documents

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/teachassist/backend/internal/models"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateDocument(userID int64, req models.SaveDocumentRequest) (*models.SavedDocument, error) {
	var doc models.SavedDocument
	var meta []byte

	err := s.db.QueryRow(
		`INSERT INTO documents (id, user_id, title, tool_type, tool_name, content, metadata)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, user_id, title, tool_type, tool_name, content, metadata, created_at, updated_at`,
		uuid.NewString(), userID, req.Title, req.ToolType, req.ToolName, req.Content, nullableJSON(req.Metadata),
	).Scan(&doc.ID, &doc.UserID, &doc.Title, &doc.ToolType, &doc.ToolName,
		&doc.Content, &meta, &doc.CreatedAt, &doc.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}
	doc.Metadata = meta
	return &doc, nil
}

func (s *Store) GetDocument(userID int64, id string) (*models.SavedDocument, error) {
	var doc models.SavedDocument
	var meta []byte

	err := s.db.QueryRow(
		`SELECT id, user_id, title, tool_type, tool_name, content, metadata, created_at, updated_at
		 FROM documents WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(&doc.ID, &doc.UserID, &doc.Title, &doc.ToolType, &doc.ToolName,
		&doc.Content, &meta, &doc.CreatedAt, &doc.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}
	doc.Metadata = meta
	return &doc, nil
}

func (s *Store) ListDocuments(userID int64, toolType string, limit, offset int) ([]models.SavedDocument, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM documents WHERE user_id = $1`
	if toolType != "" {
		countQuery += ` AND tool_type = $2`
		if err := s.db.QueryRow(countQuery, userID, toolType).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("count documents: %w", err)
		}
	} else {
		if err := s.db.QueryRow(countQuery, userID).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("count documents: %w", err)
		}
	}

	selectCols := `id, user_id, title, tool_type, tool_name, content, metadata, created_at, updated_at`

	var rows *sql.Rows
	var err error
	if toolType != "" {
		rows, err = s.db.Query(
			fmt.Sprintf(`SELECT %s FROM documents WHERE user_id = $1 AND tool_type = $2
			 ORDER BY created_at DESC LIMIT $3 OFFSET $4`, selectCols),
			userID, toolType, limit, offset,
		)
	} else {
		rows, err = s.db.Query(
			fmt.Sprintf(`SELECT %s FROM documents WHERE user_id = $1
			 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, selectCols),
			userID, limit, offset,
		)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var docs []models.SavedDocument
	for rows.Next() {
		var doc models.SavedDocument
		var meta []byte
		if err := rows.Scan(&doc.ID, &doc.UserID, &doc.Title, &doc.ToolType, &doc.ToolName,
			&doc.Content, &meta, &doc.CreatedAt, &doc.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan document: %w", err)
		}
		doc.Metadata = meta
		docs = append(docs, doc)
	}
	return docs, total, rows.Err()
}

func (s *Store) DeleteDocument(userID int64, id string) error {
	result, err := s.db.Exec(
		`DELETE FROM documents WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// nullableJSON maps an absent metadata blob to SQL NULL rather than the
// invalid empty JSON string.
func nullableJSON(raw []byte) interface{} {
	if len(raw) == 0 {
		return nil
	}
	return raw
}
