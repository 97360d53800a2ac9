package generator

import (
	"fmt"
	"strings"

	"github.com/teachassist/backend/internal/models"
)

// RenderPlainText turns a validated pacing document into the plain-text
// rendering returned alongside the JSON. Pure and total: every field access
// tolerates empty strings and empty lists, and a field that is empty simply
// produces no line. Section order is fixed so the output stays
// snapshot-stable.
func RenderPlainText(doc models.PacingDocument) string {
	var b strings.Builder

	fmt.Fprintf(&b, "PACING GUIDE: %s\n", doc.UnitOverview.Title)
	header := doc.UnitOverview.GradeSubject
	if doc.UnitOverview.Duration != "" {
		if header != "" {
			header += " | "
		}
		header += doc.UnitOverview.Duration
	}
	if header != "" {
		b.WriteString(header + "\n")
	}

	if len(doc.UnitOverview.EssentialQuestions) > 0 {
		b.WriteString("\nESSENTIAL QUESTIONS\n")
		for i, q := range doc.UnitOverview.EssentialQuestions {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, q)
		}
	}

	if len(doc.UnitOverview.EnduringUnderstandings) > 0 {
		b.WriteString("\nENDURING UNDERSTANDINGS\n")
		for _, u := range doc.UnitOverview.EnduringUnderstandings {
			fmt.Fprintf(&b, "  - %s\n", u)
		}
	}

	if len(doc.Standards) > 0 {
		b.WriteString("\nSTANDARDS\n")
		for _, s := range doc.Standards {
			line := "  - " + s.Code
			if s.Description != "" {
				line += ": " + s.Description
			}
			if s.Type != "" {
				line += " (" + s.Type + ")"
			}
			b.WriteString(line + "\n")
		}
	}

	if len(doc.TextsOverview) > 0 {
		b.WriteString("\nTEXTS\n")
		for _, t := range doc.TextsOverview {
			line := "  - " + t.Title
			if t.Author != "" {
				line += " by " + t.Author
			}
			if t.Schedule != "" {
				line += " (" + t.Schedule + ")"
			}
			b.WriteString(line + "\n")
		}
	}

	if len(doc.DailyPlan) > 0 {
		b.WriteString("\nDAILY PLAN\n")
		for _, d := range doc.DailyPlan {
			if d.Topic != "" {
				fmt.Fprintf(&b, "\nDay %d: %s\n", d.Day, d.Topic)
			} else {
				fmt.Fprintf(&b, "\nDay %d\n", d.Day)
			}
			writeDayField(&b, "Objective", d.Objective)
			writeDayField(&b, "Reading", d.Reading)
			writeDayField(&b, "Activities", d.Activities)
			writeDayField(&b, "Standards", d.Standards)
			writeDayField(&b, "Assessment", d.Assessment)
			writeDayField(&b, "Materials", d.Materials)
			writeDayField(&b, "Homework", d.Homework)
			writeDayField(&b, "Notes", d.Notes)
		}
	}

	if len(doc.AssessmentPlan) > 0 {
		b.WriteString("\nASSESSMENT PLAN\n")
		for _, a := range doc.AssessmentPlan {
			line := "  - " + a.Name
			var details []string
			if a.Type != "" {
				details = append(details, a.Type)
			}
			if a.Day > 0 {
				details = append(details, fmt.Sprintf("day %d", a.Day))
			}
			if len(details) > 0 {
				line += " (" + strings.Join(details, ", ") + ")"
			}
			if a.Description != "" {
				line += ": " + a.Description
			}
			b.WriteString(line + "\n")
		}
	}

	diff := doc.Differentiation
	if diff.Struggling != "" || diff.Advanced != "" || diff.FlexDays != "" {
		b.WriteString("\nDIFFERENTIATION\n")
		writeDayField(&b, "Struggling learners", diff.Struggling)
		writeDayField(&b, "Advanced learners", diff.Advanced)
		writeDayField(&b, "Flex days", diff.FlexDays)
	}

	if len(doc.Materials) > 0 {
		b.WriteString("\nMATERIALS\n")
		for _, m := range doc.Materials {
			b.WriteString("  - " + m + "\n")
		}
	}

	if doc.TeacherNotes != "" {
		b.WriteString("\nTEACHER NOTES\n")
		b.WriteString(doc.TeacherNotes + "\n")
	}

	return b.String()
}

func writeDayField(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "  %s: %s\n", label, value)
}
