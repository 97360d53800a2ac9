package pacing

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/teachassist/backend/internal/generator"
	"github.com/teachassist/backend/internal/models"
)

// ValidationError reports a missing required request field. Surfaced as a
// 400 before any model call is made.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// Service runs the pacing-guide pipeline: build the prompt, call the
// model, extract and repair the reply (or synthesize a fallback), then
// render. Stateless; each request is handled independently.
type Service struct {
	generator *generator.Generator
}

func NewService(gen *generator.Generator) *Service {
	return &Service{generator: gen}
}

// GeneratePacingGuide produces a fully repaired pacing document and its
// plain-text rendering. A model failure is returned as an error. A parse
// failure is not: it degrades to deterministic synthesis so the request
// still succeeds, with Source and Degraded recording that it happened.
func (s *Service) GeneratePacingGuide(ctx context.Context, req models.PacingRequest) (*models.PacingResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	source := models.SourceModel
	doc, llmResp, err := s.generator.GeneratePacingGuide(ctx, req)
	switch {
	case err != nil && llmResp == nil:
		// The model call itself failed. Not recoverable within this request.
		return nil, fmt.Errorf("pacing generation failed: %w", err)
	case err != nil:
		// The model answered but the reply was unusable. Synthesize instead
		// of failing the teacher's request.
		log.Printf("WARN: pacing reply unparseable, using fallback synthesis: %v", err)
		synthesized := generator.Synthesize(req)
		doc = &synthesized
		source = models.SourceFallback
	default:
		log.Printf("Pacing guide generated (%s): prompt=%d output=%d tokens",
			s.generator.ModelName(), llmResp.PromptTokens, llmResp.OutputTokens)
	}

	repaired := generator.Repair(*doc, req)

	return &models.PacingResponse{
		PacingData:  repaired,
		PacingGuide: generator.RenderPlainText(repaired),
		Source:      source,
		Degraded:    source == models.SourceFallback,
	}, nil
}

func validateRequest(req models.PacingRequest) error {
	if strings.TrimSpace(req.UnitTopic) == "" {
		return &ValidationError{Field: "unitTopic"}
	}
	if strings.TrimSpace(req.GradeLevel) == "" {
		return &ValidationError{Field: "gradeLevel"}
	}
	if strings.TrimSpace(req.Subject) == "" {
		return &ValidationError{Field: "subject"}
	}
	return nil
}
