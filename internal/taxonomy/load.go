package taxonomy

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/resume-matcher/internal/types"
)

// tableSchema is the JSON Schema a taxonomy override file must satisfy.
// Category and priority values are restricted to the fixed enums so an
// override cannot introduce combinations the engine does not understand.
const tableSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["categories"],
  "properties": {
    "synonyms": {
      "type": "object",
      "additionalProperties": {"type": "string", "minLength": 1}
    },
    "categories": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["category", "priority", "skills"],
        "properties": {
          "category": {
            "type": "string",
            "enum": ["core_technical", "backend", "frontend", "database", "devops", "ai_ml", "soft_skills", "bonus_skills"]
          },
          "priority": {
            "type": "string",
            "enum": ["critical", "important", "nice_to_have"]
          },
          "skills": {
            "type": "array",
            "items": {"type": "string", "minLength": 1}
          }
        },
        "additionalProperties": false
      }
    }
  },
  "additionalProperties": false
}`

// tableFile is the on-disk shape of a taxonomy override.
type tableFile struct {
	Synonyms   map[string]string `json:"synonyms,omitempty"`
	Categories []struct {
		Category types.SkillCategory `json:"category"`
		Priority types.SkillPriority `json:"priority"`
		Skills   []string            `json:"skills"`
	} `json:"categories"`
}

// LoadError represents a failure to load or validate a taxonomy file.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load taxonomy %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load taxonomy %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// LoadTable reads a taxonomy override file, validates it against the table
// schema, and builds a Table from it. Synonyms in the file are merged over
// the built-in synonym set; categories replace the built-in ones entirely.
func LoadTable(path string) (*Table, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(tableSchema),
		gojsonschema.NewBytesLoader(content),
	)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "schema validation failed to run", Cause: err}
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
		}
		return nil, &LoadError{Path: path, Message: strings.Join(msgs, "; ")}
	}

	var file tableFile
	if err := json.Unmarshal(content, &file); err != nil {
		return nil, &LoadError{Path: path, Message: "failed to unmarshal JSON", Cause: err}
	}

	synonyms := make(map[string]string, len(defaultSynonyms)+len(file.Synonyms))
	for variant, canonical := range defaultSynonyms {
		synonyms[variant] = canonical
	}
	for variant, canonical := range file.Synonyms {
		synonyms[variant] = canonical
	}

	categories := make([]categoryDef, 0, len(file.Categories))
	for _, c := range file.Categories {
		categories = append(categories, categoryDef{
			Category: c.Category,
			Priority: c.Priority,
			Skills:   c.Skills,
		})
	}

	table, err := buildTable(synonyms, categories)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "invalid category tables", Cause: err}
	}
	return table, nil
}
