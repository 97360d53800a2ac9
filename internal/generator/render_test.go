package generator

import (
	"strings"
	"testing"

	"github.com/teachassist/backend/internal/models"
)

func TestRenderPlainText_Deterministic(t *testing.T) {
	doc := Synthesize(baseRequest(10))

	a := RenderPlainText(doc)
	b := RenderPlainText(doc)

	if a != b {
		t.Error("expected byte-identical output for the same document")
	}
}

func TestRenderPlainText_SectionOrder(t *testing.T) {
	doc, err := ParsePacingResponse(validPacingJSON(3))
	if err != nil {
		t.Fatalf("fixture parse failed: %v", err)
	}
	text := RenderPlainText(Repair(*doc, baseRequest(3)))

	sections := []string{
		"PACING GUIDE: Ecosystems",
		"ESSENTIAL QUESTIONS",
		"ENDURING UNDERSTANDINGS",
		"DAILY PLAN",
		"Day 1",
		"Day 2",
		"Day 3",
	}

	last := -1
	for _, section := range sections {
		idx := strings.Index(text, section)
		if idx < 0 {
			t.Fatalf("expected section %q in output:\n%s", section, text)
		}
		if idx < last {
			t.Errorf("section %q out of order", section)
		}
		last = idx
	}
}

func TestRenderPlainText_OmitsEmptyFields(t *testing.T) {
	doc := Repair(models.PacingDocument{
		DailyPlan: []models.DayPlan{
			{Day: 1, Topic: "Intro", Objective: "Students will be able to define an ecosystem."},
		},
	}, baseRequest(1))

	text := RenderPlainText(doc)

	for _, absent := range []string{"Reading:", "Homework:", "STANDARDS", "TEXTS", "ASSESSMENT PLAN", "MATERIALS", "TEACHER NOTES"} {
		if strings.Contains(text, absent) {
			t.Errorf("expected no %q line for empty field, output:\n%s", absent, text)
		}
	}
	if !strings.Contains(text, "Objective: Students will be able to define an ecosystem.") {
		t.Errorf("expected objective line, output:\n%s", text)
	}
}

func TestRenderPlainText_ToleratesEmptyDocument(t *testing.T) {
	// Total: even a zero-value document renders without panicking.
	text := RenderPlainText(models.PacingDocument{})

	if !strings.HasPrefix(text, "PACING GUIDE:") {
		t.Errorf("expected header even for empty document, got:\n%s", text)
	}
}

func TestRenderPlainText_DayWithoutTopic(t *testing.T) {
	doc := Repair(models.PacingDocument{}, baseRequest(2))

	text := RenderPlainText(doc)

	if !strings.Contains(text, "Day 1\n") || !strings.Contains(text, "Day 2\n") {
		t.Errorf("expected bare day headers for padded entries, output:\n%s", text)
	}
}
