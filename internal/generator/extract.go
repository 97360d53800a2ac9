package generator

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/teachassist/backend/internal/models"
	"github.com/tidwall/gjson"
)

// ParseError signals that no usable JSON object could be pulled out of a
// model reply. It carries the original text for server-side logging; the
// text is never surfaced to the caller.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("extract pacing JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ExtractJSON isolates the JSON object embedded in a model reply. Models
// routinely wrap their output in conversational prose or markdown fences;
// this strips fences, then slices between the first '{' and the last '}'.
// Truncated or syntactically broken JSON is not repaired here — it fails
// the strict parse downstream and routes to fallback synthesis.
func ExtractJSON(raw string) (string, error) {
	s := stripCodeFences(raw)

	if gjson.Valid(s) {
		return s, nil
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return "", &ParseError{Raw: raw, Err: fmt.Errorf("no JSON object in response")}
	}

	candidate := s[start : end+1]
	if !gjson.Valid(candidate) {
		return "", &ParseError{Raw: raw, Err: fmt.Errorf("embedded object is not valid JSON")}
	}
	return candidate, nil
}

// ParsePacingResponse extracts and strictly parses a model reply into a
// PacingDocument candidate. The candidate is checked against the document
// schema; gaps are logged and left for the repairer, never surfaced.
func ParsePacingResponse(raw string) (*models.PacingDocument, error) {
	candidate, err := ExtractJSON(raw)
	if err != nil {
		return nil, err
	}

	if n := gjson.Get(candidate, "dailyPlan.#"); n.Exists() {
		log.Printf("Model reply carries %d daily entries", n.Int())
	}

	var doc models.PacingDocument
	if err := json.Unmarshal([]byte(candidate), &doc); err != nil {
		return nil, &ParseError{Raw: raw, Err: fmt.Errorf("unmarshal pacing document: %w", err)}
	}

	if gaps := CheckDocumentSchema(candidate); len(gaps) > 0 {
		log.Printf("WARN: pacing document has %d schema gaps (repairing): %s", len(gaps), strings.Join(gaps, "; "))
	}

	return &doc, nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSpace(s)
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSpace(s)
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	}
	return s
}
