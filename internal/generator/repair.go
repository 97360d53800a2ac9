package generator

import (
	"fmt"

	"github.com/teachassist/backend/internal/models"
)

// Repair forces a candidate document into full PacingDocument conformance
// using the original request for labels and the target day count. It is
// idempotent: repairing an already-valid document changes nothing.
//
// After repair:
//   - the unit overview carries a title, grade/subject label, and duration
//   - every list field is non-nil (empty rather than absent)
//   - dailyPlan has exactly req.Days() entries, numbered 1..N in order
//
// Over-length day lists are truncated. The request asked for N days; extra
// entries the model volunteered are dropped rather than handed to renderers
// and exporters that promise exactly N.
func Repair(doc models.PacingDocument, req models.PacingRequest) models.PacingDocument {
	days := req.Days()

	if doc.UnitOverview.Title == "" {
		doc.UnitOverview.Title = req.UnitTopic
	}
	if doc.UnitOverview.GradeSubject == "" {
		doc.UnitOverview.GradeSubject = req.GradeSubjectLabel()
	}
	if doc.UnitOverview.Duration == "" {
		doc.UnitOverview.Duration = fmt.Sprintf("%d days", days)
	}
	if doc.UnitOverview.EssentialQuestions == nil {
		doc.UnitOverview.EssentialQuestions = []string{}
	}
	if doc.UnitOverview.EnduringUnderstandings == nil {
		doc.UnitOverview.EnduringUnderstandings = []string{}
	}

	if doc.Standards == nil {
		doc.Standards = []models.Standard{}
	}
	if doc.TextsOverview == nil {
		doc.TextsOverview = []models.TextReference{}
	}
	if doc.AssessmentPlan == nil {
		doc.AssessmentPlan = []models.Assessment{}
	}
	if doc.Materials == nil {
		doc.Materials = []string{}
	}

	if doc.DailyPlan == nil {
		doc.DailyPlan = []models.DayPlan{}
	}
	if len(doc.DailyPlan) > days {
		doc.DailyPlan = doc.DailyPlan[:days]
	}
	for len(doc.DailyPlan) < days {
		doc.DailyPlan = append(doc.DailyPlan, models.DayPlan{Day: len(doc.DailyPlan) + 1})
	}

	// Renumber so days run 1..N with no gaps or duplicates, whatever the
	// model produced.
	for i := range doc.DailyPlan {
		doc.DailyPlan[i].Day = i + 1
	}

	return doc
}
