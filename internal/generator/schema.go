package generator

import (
	"encoding/json"
	"log"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// pacingSchema describes the PacingDocument shape the model is asked for.
// Validation against it is advisory: gaps are logged for observability and
// then closed by the repairer, which remains the authority on shape.
const pacingSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["unitOverview", "dailyPlan"],
  "properties": {
    "unitOverview": {
      "type": "object",
      "properties": {
        "title": {"type": "string"},
        "gradeSubject": {"type": "string"},
        "duration": {"type": "string"},
        "essentialQuestions": {"type": "array", "items": {"type": "string"}},
        "enduringUnderstandings": {"type": "array", "items": {"type": "string"}}
      }
    },
    "standards": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "code": {"type": "string"},
          "description": {"type": "string"},
          "type": {"type": "string"}
        }
      }
    },
    "textsOverview": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "title": {"type": "string"},
          "author": {"type": "string"},
          "schedule": {"type": "string"}
        }
      }
    },
    "dailyPlan": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["day"],
        "properties": {
          "day": {"type": "integer", "minimum": 1},
          "topic": {"type": "string"},
          "objective": {"type": "string"},
          "reading": {"type": "string"},
          "activities": {"type": "string"},
          "standards": {"type": "string"},
          "assessment": {"type": "string"},
          "materials": {"type": "string"},
          "homework": {"type": "string"},
          "notes": {"type": "string"}
        }
      }
    },
    "assessmentPlan": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "name": {"type": "string"},
          "type": {"type": "string"},
          "day": {"type": "integer"},
          "description": {"type": "string"}
        }
      }
    },
    "differentiation": {
      "type": "object",
      "properties": {
        "struggling": {"type": "string"},
        "advanced": {"type": "string"},
        "flexDays": {"type": "string"}
      }
    },
    "materials": {"type": "array", "items": {"type": "string"}},
    "teacherNotes": {"type": "string"}
  }
}`

var (
	compiledSchema     *jsonschema.Schema
	compileSchemaOnce  sync.Once
	compileSchemaError error
)

// compiledPacingSchema compiles the embedded schema once per process.
// The jsonschema library expects a parsed JSON value (any), not raw bytes.
func compiledPacingSchema() (*jsonschema.Schema, error) {
	compileSchemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(pacingSchema), &def); err != nil {
			compileSchemaError = err
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://pacing-document.json"
		if err := c.AddResource(schemaURL, def); err != nil {
			compileSchemaError = err
			return
		}
		compiledSchema, compileSchemaError = c.Compile(schemaURL)
	})
	return compiledSchema, compileSchemaError
}

// CheckDocumentSchema validates a candidate JSON document and returns the
// instance locations that fail the schema. An empty slice means the
// candidate already conforms. Never fails a request: a schema compile
// problem is logged and treated as "no gaps".
func CheckDocumentSchema(candidate string) []string {
	sch, err := compiledPacingSchema()
	if err != nil {
		log.Printf("WARN: pacing schema failed to compile: %v", err)
		return nil
	}

	var inst any
	if err := json.Unmarshal([]byte(candidate), &inst); err != nil {
		return []string{"document is not valid JSON"}
	}

	err = sch.Validate(inst)
	if err == nil {
		return nil
	}

	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []string{err.Error()}
	}

	var gaps []string
	collectGaps(ve, &gaps)
	return gaps
}

func collectGaps(ve *jsonschema.ValidationError, out *[]string) {
	if len(ve.Causes) == 0 {
		*out = append(*out, "/"+strings.Join(ve.InstanceLocation, "/"))
		return
	}
	for _, c := range ve.Causes {
		collectGaps(c, out)
	}
}
