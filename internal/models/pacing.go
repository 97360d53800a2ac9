package models

import "strings"

const (
	// DefaultTotalDays is used when a request omits totalDays or supplies
	// a non-positive value.
	DefaultTotalDays = 15

	// MaxTotalDays caps how many daily entries a single request may ask for.
	MaxTotalDays = 60
)

// TextReference is a text or resource a teacher plans to use in a unit.
// Also the shape of textsOverview entries in the generated document.
type TextReference struct {
	Title    string `json:"title"`
	Author   string `json:"author,omitempty"`
	Schedule string `json:"schedule,omitempty"`
}

// Assessment is a planned assessment, either supplied as a seed in the
// request or emitted in the generated assessment plan.
type Assessment struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Day         int    `json:"day"`
	Description string `json:"description,omitempty"`
}

// PacingRequest is the input to the pacing-guide pipeline. Constructed once
// per HTTP request and never mutated.
type PacingRequest struct {
	GradeLevel         string          `json:"gradeLevel"`
	Subject            string          `json:"subject"`
	UnitTopic          string          `json:"unitTopic"`
	Timeframe          string          `json:"timeframe,omitempty"`
	TotalDays          int             `json:"totalDays,omitempty"`
	StartDate          string          `json:"startDate,omitempty"`
	StandardsFramework string          `json:"standardsFramework,omitempty"`
	CustomStandards    string          `json:"customStandards,omitempty"`
	PriorKnowledge     string          `json:"priorKnowledge,omitempty"`
	EndGoals           string          `json:"endGoals,omitempty"`
	Texts              []TextReference `json:"texts,omitempty"`
	UnitPortions       string          `json:"unitPortions,omitempty"`
	Assessments        []Assessment    `json:"assessments,omitempty"`
	IncludeHolidays    bool            `json:"includeHolidays,omitempty"`
	Holidays           string          `json:"holidays,omitempty"`
	AdditionalNotes    string          `json:"additionalNotes,omitempty"`
}

// Days returns the effective day count: totalDays clamped to
// [1, MaxTotalDays], defaulting when absent or invalid.
func (r PacingRequest) Days() int {
	if r.TotalDays <= 0 {
		return DefaultTotalDays
	}
	if r.TotalDays > MaxTotalDays {
		return MaxTotalDays
	}
	return r.TotalDays
}

// GradeSubjectLabel is the "5th Grade Science" style label used in the
// document header.
func (r PacingRequest) GradeSubjectLabel() string {
	return strings.TrimSpace(r.GradeLevel + " " + r.Subject)
}

// UnitOverview is the header block of a pacing document.
type UnitOverview struct {
	Title                  string   `json:"title"`
	GradeSubject           string   `json:"gradeSubject"`
	Duration               string   `json:"duration"`
	EssentialQuestions     []string `json:"essentialQuestions"`
	EnduringUnderstandings []string `json:"enduringUnderstandings"`
}

// Standard is one standards-alignment entry.
type Standard struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// DayPlan is one day of the daily plan. Day is the only required field;
// every other field tolerates the empty string.
type DayPlan struct {
	Day        int    `json:"day"`
	Topic      string `json:"topic"`
	Objective  string `json:"objective"`
	Reading    string `json:"reading"`
	Activities string `json:"activities"`
	Standards  string `json:"standards"`
	Assessment string `json:"assessment"`
	Materials  string `json:"materials"`
	Homework   string `json:"homework"`
	Notes      string `json:"notes"`
}

// Differentiation holds per-population guidance.
type Differentiation struct {
	Struggling string `json:"struggling"`
	Advanced   string `json:"advanced"`
	FlexDays   string `json:"flexDays"`
}

// PacingDocument is the validated central entity of the pipeline. After
// repair, DailyPlan has exactly the requested number of entries, numbered
// 1..N, and every list field is non-nil.
type PacingDocument struct {
	UnitOverview    UnitOverview    `json:"unitOverview"`
	Standards       []Standard      `json:"standards"`
	TextsOverview   []TextReference `json:"textsOverview"`
	DailyPlan       []DayPlan       `json:"dailyPlan"`
	AssessmentPlan  []Assessment    `json:"assessmentPlan"`
	Differentiation Differentiation `json:"differentiation"`
	Materials       []string        `json:"materials"`
	TeacherNotes    string          `json:"teacherNotes"`
}

// PacingSource records which producer the returned document came from.
type PacingSource string

const (
	SourceModel    PacingSource = "model"
	SourceFallback PacingSource = "fallback"
)

// PacingResponse is the body returned by the pacing-guide endpoint.
type PacingResponse struct {
	PacingData  PacingDocument `json:"pacingData"`
	PacingGuide string         `json:"pacingGuide"`
	Source      PacingSource   `json:"source"`
	Degraded    bool           `json:"degraded"`
}
