package generator

import (
	"fmt"

	"github.com/teachassist/backend/internal/models"
)

// Synthesize deterministically builds a minimally valid pacing document from
// the request alone, without the model. Invoked when a model reply could not
// be parsed: the request still succeeds, just with generic content. The
// result already satisfies the day-count invariant; passing it through
// Repair afterwards is safe and changes nothing.
func Synthesize(req models.PacingRequest) models.PacingDocument {
	days := req.Days()

	doc := models.PacingDocument{
		UnitOverview: models.UnitOverview{
			Title:        req.UnitTopic,
			GradeSubject: req.GradeSubjectLabel(),
			Duration:     fmt.Sprintf("%d days", days),
			EssentialQuestions: []string{
				fmt.Sprintf("What are the most important ideas in %s?", req.UnitTopic),
				fmt.Sprintf("How does %s connect to what students already know?", req.UnitTopic),
				fmt.Sprintf("How can students apply what they learn about %s?", req.UnitTopic),
			},
			EnduringUnderstandings: []string{
				fmt.Sprintf("Students will develop a deep understanding of %s through structured daily instruction.", req.UnitTopic),
			},
		},
		Standards:      []models.Standard{},
		TextsOverview:  []models.TextReference{},
		DailyPlan:      make([]models.DayPlan, 0, days),
		AssessmentPlan: []models.Assessment{},
		Differentiation: models.Differentiation{
			Struggling: "Provide scaffolded materials, sentence frames, and additional small-group time.",
			Advanced:   "Offer extension tasks that push analysis and independent application.",
			FlexDays:   "Use the final day of each phase as a flex day if pacing slips.",
		},
		Materials:    []string{},
		TeacherNotes: "This outline was generated from your unit details. Adjust daily topics and activities to fit your classroom.",
	}

	if req.StandardsFramework != "" {
		doc.Standards = append(doc.Standards, models.Standard{
			Code:        req.StandardsFramework,
			Description: fmt.Sprintf("Align daily objectives to %s standards for %s.", req.StandardsFramework, req.Subject),
			Type:        "framework",
		})
	}

	doc.TextsOverview = append(doc.TextsOverview, req.Texts...)
	doc.AssessmentPlan = append(doc.AssessmentPlan, req.Assessments...)

	for i := 0; i < days; i++ {
		phase := phaseLabel(i, days)
		doc.DailyPlan = append(doc.DailyPlan, models.DayPlan{
			Day:        i + 1,
			Topic:      fmt.Sprintf("%s: %s", req.UnitTopic, phase),
			Objective:  fmt.Sprintf("Students will be able to engage with %s content appropriate to the %s phase of the unit.", req.UnitTopic, phase),
			Activities: "Warm-up, direct instruction, guided practice, closure.",
		})
	}

	return doc
}

// phaseLabel maps a zero-based day index to its third of the unit.
func phaseLabel(i, days int) string {
	switch i * 3 / days {
	case 0:
		return "Introduction"
	case 1:
		return "Development"
	default:
		return "Conclusion"
	}
}
