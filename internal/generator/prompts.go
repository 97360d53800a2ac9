package generator

import (
	"fmt"
	"strings"

	"github.com/teachassist/backend/internal/models"
)

func PacingSystemPrompt() string {
	return `You are an experienced K-12 curriculum coordinator who builds unit pacing guides for classroom teachers. You have written pacing guides across every grade band and subject area, and you know how to sequence a unit so that instruction builds day over day toward the unit's end goals.

Your pacing guides must follow these rules:

STRUCTURE:
- Open the unit with activation of prior knowledge and an introduction to the topic
- Build skills and content through the middle of the unit with guided and independent practice
- Close with synthesis, review, and assessment
- Distribute any supplied texts and assessments across the days they fit best
- Every day gets a clear topic and a measurable student objective ("Students will be able to...")

REGISTER:
- Write for a working teacher: concrete, specific, immediately usable
- No filler phrases, no motivational fluff
- Objectives use observable verbs (explain, compare, construct, justify), never "understand" or "learn about"

STANDARDS:
- When a standards framework is named, cite plausible codes from that framework
- When custom standards are supplied, use them verbatim
- Never invent codes for a framework you were not given

You must respond with valid JSON only. No markdown, no code fences, no explanation outside the JSON object.`
}

// BuildPacingPrompt renders a PacingRequest into the user prompt. Supplied
// context fields appear in a fixed order; optional sections are emitted only
// when the request carries them. The prompt ends with the output contract:
// the exact JSON shape and the exact number of daily entries.
func BuildPacingPrompt(req models.PacingRequest) string {
	days := req.Days()

	var b strings.Builder
	fmt.Fprintf(&b, "Create a pacing guide for the following unit.\n\n")
	fmt.Fprintf(&b, "Grade level: %s\n", req.GradeLevel)
	fmt.Fprintf(&b, "Subject: %s\n", req.Subject)
	fmt.Fprintf(&b, "Unit topic: %s\n", req.UnitTopic)
	fmt.Fprintf(&b, "Unit length: %d instructional days\n", days)

	if req.Timeframe != "" {
		fmt.Fprintf(&b, "Timeframe: %s\n", req.Timeframe)
	}
	if req.StartDate != "" {
		fmt.Fprintf(&b, "Start date: %s\n", req.StartDate)
	}
	if req.StandardsFramework != "" {
		fmt.Fprintf(&b, "Standards framework: %s\n", req.StandardsFramework)
	}
	if req.CustomStandards != "" {
		fmt.Fprintf(&b, "Custom standards to address:\n%s\n", req.CustomStandards)
	}
	if req.PriorKnowledge != "" {
		fmt.Fprintf(&b, "Prior knowledge students bring: %s\n", req.PriorKnowledge)
	}
	if req.EndGoals != "" {
		fmt.Fprintf(&b, "End-of-unit goals: %s\n", req.EndGoals)
	}
	if req.UnitPortions != "" {
		fmt.Fprintf(&b, "Requested unit portions: %s\n", req.UnitPortions)
	}
	if req.IncludeHolidays && req.Holidays != "" {
		fmt.Fprintf(&b, "Non-instructional days to plan around: %s\n", req.Holidays)
	}

	if len(req.Texts) > 0 {
		b.WriteString("\nTexts to incorporate:\n")
		for _, t := range req.Texts {
			line := "- " + t.Title
			if t.Author != "" {
				line += " by " + t.Author
			}
			if t.Schedule != "" {
				line += " (planned for: " + t.Schedule + ")"
			}
			b.WriteString(line + "\n")
		}
	}

	if len(req.Assessments) > 0 {
		b.WriteString("\nAssessments to schedule:\n")
		for _, a := range req.Assessments {
			line := fmt.Sprintf("- %s (%s)", a.Name, a.Type)
			if a.Day > 0 {
				line += fmt.Sprintf(", requested on day %d", a.Day)
			}
			if a.Description != "" {
				line += ": " + a.Description
			}
			b.WriteString(line + "\n")
		}
	}

	if req.AdditionalNotes != "" {
		fmt.Fprintf(&b, "\nAdditional notes from the teacher:\n%s\n", req.AdditionalNotes)
	}

	fmt.Fprintf(&b, `
Respond with this exact JSON structure:
{
  "unitOverview": {
    "title": "...",
    "gradeSubject": "%s",
    "duration": "%d days",
    "essentialQuestions": ["...", "..."],
    "enduringUnderstandings": ["...", "..."]
  },
  "standards": [
    {"code": "...", "description": "...", "type": "content"}
  ],
  "textsOverview": [
    {"title": "...", "author": "...", "schedule": "Days 1-3"}
  ],
  "dailyPlan": [
    {"day": 1, "topic": "...", "objective": "...", "reading": "...", "activities": "...", "standards": "...", "assessment": "...", "materials": "...", "homework": "...", "notes": "..."}
  ],
  "assessmentPlan": [
    {"name": "...", "type": "formative", "day": 5, "description": "..."}
  ],
  "differentiation": {"struggling": "...", "advanced": "...", "flexDays": "..."},
  "materials": ["...", "..."],
  "teacherNotes": "..."
}

Requirements:
- Return ONLY the JSON object, with no prose before or after it
- Do not wrap the JSON in markdown code fences
- "dailyPlan" must contain exactly %d entries, numbered "day" 1 through %d with no gaps
- Every daily entry needs at minimum a topic and an objective; other fields may be empty strings
- Place each supplied text and assessment into the days where it belongs`,
		req.GradeSubjectLabel(), days, days, days)

	return b.String()
}
