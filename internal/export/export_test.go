package export

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/teachassist/backend/internal/models"
	"github.com/xuri/excelize/v2"
)

func sampleDocument() models.PacingDocument {
	return models.PacingDocument{
		UnitOverview: models.UnitOverview{
			Title:                  "Westward Expansion",
			GradeSubject:           "7th Grade Social Studies",
			Duration:               "3 days",
			EssentialQuestions:     []string{"Why did people move west?"},
			EnduringUnderstandings: []string{"Migration reshapes both the migrants and the land."},
		},
		Standards: []models.Standard{
			{Code: "SS.7.1", Description: "Analyze causes of westward migration.", Type: "content"},
		},
		DailyPlan: []models.DayPlan{
			{Day: 1, Topic: "Manifest Destiny", Objective: "Students will be able to define manifest destiny."},
			{Day: 2, Topic: "The Oregon Trail", Objective: "Students will be able to trace a migration route.", Homework: "Read pages 40-48"},
			{Day: 3, Topic: "Review & Assessment", Objective: "Students will be able to justify a claim with evidence."},
		},
		AssessmentPlan: []models.Assessment{
			{Name: "Unit Quiz", Type: "summative", Day: 3, Description: "Short answer and map work."},
		},
		Materials:    []string{"Wall map", "Primary source packet"},
		TeacherNotes: "Day 2 works well in the computer lab.",
	}
}

func TestWriteDOCX_ProducesValidPackage(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDOCX(&buf, sampleDocument()); err != nil {
		t.Fatalf("WriteDOCX failed: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("output is not a readable zip: %v", err)
	}

	want := map[string]bool{
		"[Content_Types].xml": false,
		"_rels/.rels":         false,
		"word/document.xml":   false,
	}
	for _, f := range zr.File {
		if _, ok := want[f.Name]; ok {
			want[f.Name] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("expected package part %q", name)
		}
	}
}

func TestWriteDOCX_DocumentContent(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDOCX(&buf, sampleDocument()); err != nil {
		t.Fatalf("WriteDOCX failed: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("output is not a readable zip: %v", err)
	}

	var docXML string
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open document part: %v", err)
		}
		var sb strings.Builder
		if _, err := io.Copy(&sb, rc); err != nil {
			t.Fatalf("read document part: %v", err)
		}
		rc.Close()
		docXML = sb.String()
	}
	if docXML == "" {
		t.Fatal("missing word/document.xml")
	}

	for _, want := range []string{
		"Pacing Guide: Westward Expansion",
		"Day 2: The Oregon Trail",
		"Homework: Read pages 40-48",
		"Unit Quiz (summative), day 3",
	} {
		if !strings.Contains(docXML, want) {
			t.Errorf("expected document.xml to contain %q", want)
		}
	}
	// Day 3's topic has an ampersand; it must be escaped.
	if strings.Contains(docXML, "Review & Assessment") {
		t.Error("expected raw ampersand to be XML-escaped")
	}
	if !strings.Contains(docXML, "Review &amp; Assessment") {
		t.Error("expected escaped ampersand in document.xml")
	}
}

func TestWriteXLSX_SheetsAndCells(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, sampleDocument()); err != nil {
		t.Fatalf("WriteXLSX failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("output is not a readable workbook: %v", err)
	}
	defer f.Close()

	for _, sheet := range []string{"Overview", "Daily Plan", "Assessments"} {
		if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
			t.Errorf("expected sheet %q in workbook", sheet)
		}
	}

	title, err := f.GetCellValue("Overview", "B1")
	if err != nil || title != "Westward Expansion" {
		t.Errorf("expected unit title in Overview!B1, got %q (err %v)", title, err)
	}
	topic, err := f.GetCellValue("Daily Plan", "B3")
	if err != nil || topic != "The Oregon Trail" {
		t.Errorf("expected day 2 topic in Daily Plan!B3, got %q (err %v)", topic, err)
	}
	quiz, err := f.GetCellValue("Assessments", "A2")
	if err != nil || quiz != "Unit Quiz" {
		t.Errorf("expected assessment name in Assessments!A2, got %q (err %v)", quiz, err)
	}
}

func TestExportFilename(t *testing.T) {
	cases := []struct {
		topic string
		want  string
	}{
		{"Westward Expansion", "Westward_Expansion"},
		{"  spaced   out  ", "spaced_out"},
		{"", "pacing_guide"},
		{"   ", "pacing_guide"},
		{"OneWord", "OneWord"},
	}
	for _, tc := range cases {
		if got := ExportFilename(tc.topic); got != tc.want {
			t.Errorf("ExportFilename(%q) = %q, want %q", tc.topic, got, tc.want)
		}
	}
}
