package export

import (
	"fmt"
	"io"

	"github.com/teachassist/backend/internal/models"
	"github.com/xuri/excelize/v2"
)

// WriteXLSX renders a repaired pacing document as a workbook with an
// overview sheet, the day-by-day plan, and the assessment plan.
func WriteXLSX(w io.Writer, doc models.PacingDocument) error {
	f := excelize.NewFile()
	defer f.Close()

	const overviewSheet = "Overview"
	if err := f.SetSheetName("Sheet1", overviewSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	row := 1
	setRow := func(sheet string, r int, values ...interface{}) error {
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, r)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
		return nil
	}

	if err := setRow(overviewSheet, row, "Pacing Guide", doc.UnitOverview.Title); err != nil {
		return err
	}
	row++
	if err := setRow(overviewSheet, row, "Grade/Subject", doc.UnitOverview.GradeSubject); err != nil {
		return err
	}
	row++
	if err := setRow(overviewSheet, row, "Duration", doc.UnitOverview.Duration); err != nil {
		return err
	}
	row += 2

	for i, q := range doc.UnitOverview.EssentialQuestions {
		if err := setRow(overviewSheet, row, fmt.Sprintf("Essential Question %d", i+1), q); err != nil {
			return err
		}
		row++
	}
	for i, u := range doc.UnitOverview.EnduringUnderstandings {
		if err := setRow(overviewSheet, row, fmt.Sprintf("Enduring Understanding %d", i+1), u); err != nil {
			return err
		}
		row++
	}
	for _, s := range doc.Standards {
		if err := setRow(overviewSheet, row, "Standard", s.Code, s.Description, s.Type); err != nil {
			return err
		}
		row++
	}
	for _, t := range doc.TextsOverview {
		if err := setRow(overviewSheet, row, "Text", t.Title, t.Author, t.Schedule); err != nil {
			return err
		}
		row++
	}
	if doc.TeacherNotes != "" {
		row++
		if err := setRow(overviewSheet, row, "Teacher Notes", doc.TeacherNotes); err != nil {
			return err
		}
	}

	const planSheet = "Daily Plan"
	if _, err := f.NewSheet(planSheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	if err := setRow(planSheet, 1,
		"Day", "Topic", "Objective", "Reading", "Activities",
		"Standards", "Assessment", "Materials", "Homework", "Notes"); err != nil {
		return err
	}
	for i, d := range doc.DailyPlan {
		if err := setRow(planSheet, i+2,
			d.Day, d.Topic, d.Objective, d.Reading, d.Activities,
			d.Standards, d.Assessment, d.Materials, d.Homework, d.Notes); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(planSheet, "B", "J", 28); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	const assessSheet = "Assessments"
	if _, err := f.NewSheet(assessSheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	if err := setRow(assessSheet, 1, "Name", "Type", "Day", "Description"); err != nil {
		return err
	}
	for i, a := range doc.AssessmentPlan {
		if err := setRow(assessSheet, i+2, a.Name, a.Type, a.Day, a.Description); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
