package pacing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/teachassist/backend/internal/generator"
	"github.com/teachassist/backend/internal/models"
)

// stubClient returns a fixed reply and counts calls.
type stubClient struct {
	reply string
	err   error
	calls int
}

func (s *stubClient) Generate(ctx context.Context, systemPrompt, userPrompt string) (*generator.LLMResponse, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &generator.LLMResponse{Content: s.reply, PromptTokens: 100, OutputTokens: 200}, nil
}

func pacingRequest(days int) models.PacingRequest {
	return models.PacingRequest{
		GradeLevel: "8th Grade",
		Subject:    "English",
		UnitTopic:  "The Outsiders",
		TotalDays:  days,
	}
}

func shortPlanReply(days int) string {
	entries := make([]string, days)
	for i := range entries {
		entries[i] = fmt.Sprintf(`{"day":%d,"topic":"Chapter %d","objective":"Students will be able to summarize chapter %d."}`, i+1, i+1, i+1)
	}
	return fmt.Sprintf(`{"unitOverview":{"title":"The Outsiders","gradeSubject":"8th Grade English","duration":"%d days"},"dailyPlan":[%s]}`,
		days, strings.Join(entries, ","))
}

func TestGeneratePacingGuide_ModelSuccess(t *testing.T) {
	stub := &stubClient{reply: shortPlanReply(5)}
	svc := NewService(generator.NewGeneratorWith(stub, "stub"))

	resp, err := svc.GeneratePacingGuide(context.Background(), pacingRequest(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Source != models.SourceModel {
		t.Errorf("expected source %q, got %q", models.SourceModel, resp.Source)
	}
	if resp.Degraded {
		t.Error("expected degraded=false for a clean model reply")
	}
	if len(resp.PacingData.DailyPlan) != 5 {
		t.Errorf("expected 5 daily entries, got %d", len(resp.PacingData.DailyPlan))
	}
	if resp.PacingData.DailyPlan[0].Topic != "Chapter 1" {
		t.Errorf("expected model content preserved, got topic %q", resp.PacingData.DailyPlan[0].Topic)
	}
	if !strings.Contains(resp.PacingGuide, "PACING GUIDE: The Outsiders") {
		t.Error("expected plain-text rendering alongside the document")
	}
}

func TestGeneratePacingGuide_RepairsShortModelReply(t *testing.T) {
	// Model returns 3 days for a 5-day unit; the repairer pads and renumbers.
	stub := &stubClient{reply: shortPlanReply(3)}
	svc := NewService(generator.NewGeneratorWith(stub, "stub"))

	resp, err := svc.GeneratePacingGuide(context.Background(), pacingRequest(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resp.PacingData.DailyPlan) != 5 {
		t.Fatalf("expected daily plan padded to 5 entries, got %d", len(resp.PacingData.DailyPlan))
	}
	for i, d := range resp.PacingData.DailyPlan {
		if d.Day != i+1 {
			t.Errorf("expected day %d at position %d, got %d", i+1, i, d.Day)
		}
	}
	if resp.Source != models.SourceModel {
		t.Errorf("a repaired model reply is still source=model, got %q", resp.Source)
	}
}

func TestGeneratePacingGuide_FallsBackOnUnparseableReply(t *testing.T) {
	stub := &stubClient{reply: "I'm sorry, I can't produce a pacing guide right now."}
	svc := NewService(generator.NewGeneratorWith(stub, "stub"))

	resp, err := svc.GeneratePacingGuide(context.Background(), pacingRequest(10))
	if err != nil {
		t.Fatalf("expected fallback, not an error: %v", err)
	}

	if resp.Source != models.SourceFallback {
		t.Errorf("expected source %q, got %q", models.SourceFallback, resp.Source)
	}
	if !resp.Degraded {
		t.Error("expected degraded=true for a fallback response")
	}
	if len(resp.PacingData.DailyPlan) != 10 {
		t.Errorf("expected 10 synthesized entries, got %d", len(resp.PacingData.DailyPlan))
	}
	if !strings.Contains(resp.PacingData.UnitOverview.Title, "The Outsiders") {
		t.Errorf("expected synthesized overview to carry the unit topic, got %q", resp.PacingData.UnitOverview.Title)
	}
}

func TestGeneratePacingGuide_ModelFailureIsAnError(t *testing.T) {
	stub := &stubClient{err: errors.New("api unavailable")}
	svc := NewService(generator.NewGeneratorWith(stub, "stub"))

	_, err := svc.GeneratePacingGuide(context.Background(), pacingRequest(5))
	if err == nil {
		t.Fatal("expected an error when the model call fails")
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		t.Error("a model failure must not look like a validation error")
	}
}

func TestGeneratePacingGuide_ValidatesBeforeCalling(t *testing.T) {
	cases := []struct {
		name  string
		mut   func(*models.PacingRequest)
		field string
	}{
		{"missing unitTopic", func(r *models.PacingRequest) { r.UnitTopic = "  " }, "unitTopic"},
		{"missing gradeLevel", func(r *models.PacingRequest) { r.GradeLevel = "" }, "gradeLevel"},
		{"missing subject", func(r *models.PacingRequest) { r.Subject = "" }, "subject"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubClient{reply: shortPlanReply(5)}
			svc := NewService(generator.NewGeneratorWith(stub, "stub"))

			req := pacingRequest(5)
			tc.mut(&req)

			_, err := svc.GeneratePacingGuide(context.Background(), req)

			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Field != tc.field {
				t.Errorf("expected field %q, got %q", tc.field, ve.Field)
			}
			if stub.calls != 0 {
				t.Errorf("expected no model call for an invalid request, got %d", stub.calls)
			}
		})
	}
}
