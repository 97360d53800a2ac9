package export

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/teachassist/backend/internal/models"
)

// WriteDOCX renders a repaired pacing document as a Word file: a flat
// paragraph tree with bolded section headings. The document is trusted to
// already satisfy its invariants; no repair happens here.
func WriteDOCX(w io.Writer, doc models.PacingDocument) error {
	var d docxBuilder

	d.title(fmt.Sprintf("Pacing Guide: %s", doc.UnitOverview.Title))
	header := doc.UnitOverview.GradeSubject
	if doc.UnitOverview.Duration != "" {
		if header != "" {
			header += " | "
		}
		header += doc.UnitOverview.Duration
	}
	if header != "" {
		d.line(header)
	}

	if len(doc.UnitOverview.EssentialQuestions) > 0 {
		d.heading("Essential Questions")
		for i, q := range doc.UnitOverview.EssentialQuestions {
			d.line(fmt.Sprintf("%d. %s", i+1, q))
		}
	}
	if len(doc.UnitOverview.EnduringUnderstandings) > 0 {
		d.heading("Enduring Understandings")
		for _, u := range doc.UnitOverview.EnduringUnderstandings {
			d.line("• " + u)
		}
	}

	if len(doc.Standards) > 0 {
		d.heading("Standards")
		for _, s := range doc.Standards {
			line := s.Code
			if s.Description != "" {
				line += ": " + s.Description
			}
			d.line("• " + line)
		}
	}

	if len(doc.TextsOverview) > 0 {
		d.heading("Texts")
		for _, t := range doc.TextsOverview {
			line := t.Title
			if t.Author != "" {
				line += " by " + t.Author
			}
			if t.Schedule != "" {
				line += " (" + t.Schedule + ")"
			}
			d.line("• " + line)
		}
	}

	if len(doc.DailyPlan) > 0 {
		d.heading("Daily Plan")
		for _, day := range doc.DailyPlan {
			if day.Topic != "" {
				d.subheading(fmt.Sprintf("Day %d: %s", day.Day, day.Topic))
			} else {
				d.subheading(fmt.Sprintf("Day %d", day.Day))
			}
			d.field("Objective", day.Objective)
			d.field("Reading", day.Reading)
			d.field("Activities", day.Activities)
			d.field("Standards", day.Standards)
			d.field("Assessment", day.Assessment)
			d.field("Materials", day.Materials)
			d.field("Homework", day.Homework)
			d.field("Notes", day.Notes)
		}
	}

	if len(doc.AssessmentPlan) > 0 {
		d.heading("Assessment Plan")
		for _, a := range doc.AssessmentPlan {
			line := a.Name
			if a.Type != "" {
				line += " (" + a.Type + ")"
			}
			if a.Day > 0 {
				line += fmt.Sprintf(", day %d", a.Day)
			}
			if a.Description != "" {
				line += ": " + a.Description
			}
			d.line("• " + line)
		}
	}

	diff := doc.Differentiation
	if diff.Struggling != "" || diff.Advanced != "" || diff.FlexDays != "" {
		d.heading("Differentiation")
		d.field("Struggling learners", diff.Struggling)
		d.field("Advanced learners", diff.Advanced)
		d.field("Flex days", diff.FlexDays)
	}

	if len(doc.Materials) > 0 {
		d.heading("Materials")
		for _, m := range doc.Materials {
			d.line("• " + m)
		}
	}

	if doc.TeacherNotes != "" {
		d.heading("Teacher Notes")
		d.line(doc.TeacherNotes)
	}

	return d.write(w)
}

// ── Minimal OOXML writer ────────────────────────────────

type docxParagraph struct {
	text string
	bold bool
	size int // half-points; 0 means document default
}

type docxBuilder struct {
	paragraphs []docxParagraph
}

func (d *docxBuilder) title(text string) {
	d.paragraphs = append(d.paragraphs, docxParagraph{text: text, bold: true, size: 36})
}

func (d *docxBuilder) heading(text string) {
	d.paragraphs = append(d.paragraphs, docxParagraph{text: ""})
	d.paragraphs = append(d.paragraphs, docxParagraph{text: text, bold: true, size: 28})
}

func (d *docxBuilder) subheading(text string) {
	d.paragraphs = append(d.paragraphs, docxParagraph{text: text, bold: true})
}

func (d *docxBuilder) line(text string) {
	d.paragraphs = append(d.paragraphs, docxParagraph{text: text})
}

func (d *docxBuilder) field(label, value string) {
	if value == "" {
		return
	}
	d.line(label + ": " + value)
}

const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const docxRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

// write assembles the Open Packaging Conventions zip: content types,
// package relationships, and the single document part.
func (d *docxBuilder) write(w io.Writer) error {
	zw := zip.NewWriter(w)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxRels},
		{"word/document.xml", d.documentXML()},
	}

	for _, part := range parts {
		f, err := zw.Create(part.name)
		if err != nil {
			return fmt.Errorf("create %s: %w", part.name, err)
		}
		if _, err := f.Write([]byte(part.content)); err != nil {
			return fmt.Errorf("write %s: %w", part.name, err)
		}
	}

	return zw.Close()
}

func (d *docxBuilder) documentXML() string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	b.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	for _, p := range d.paragraphs {
		b.WriteString(`<w:p>`)
		if p.text != "" {
			b.WriteString(`<w:r>`)
			if p.bold || p.size > 0 {
				b.WriteString(`<w:rPr>`)
				if p.bold {
					b.WriteString(`<w:b/>`)
				}
				if p.size > 0 {
					fmt.Fprintf(&b, `<w:sz w:val="%d"/>`, p.size)
				}
				b.WriteString(`</w:rPr>`)
			}
			b.WriteString(`<w:t xml:space="preserve">`)
			b.WriteString(escapeXML(p.text))
			b.WriteString(`</w:t></w:r>`)
		}
		b.WriteString(`</w:p>`)
	}

	b.WriteString(`</w:body></w:document>`)
	return b.String()
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
