// Package validation checks raw model output against the closed extraction
// schema. The strictness is load-bearing: rejecting unknown fields at every
// nesting level is how a classification object nested inside its sibling
// gets caught, and that distinction drives the orchestrator's retry policy.
package validation

import (
	"fmt"
	"strings"

	"fedfilter-backend/models"

	"github.com/xeipuuv/gojsonschema"
)

// gojsonschema result type emitted when additionalProperties: false is hit
const additionalPropertyErrType = "additional_property_not_allowed"

// ShapeError reports a closed-record violation: one or more fields appeared
// outside the declared set. The orchestrator retries on this kind and only
// this kind.
type ShapeError struct {
	Violations []string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("extra fields not permitted: %s", strings.Join(e.Violations, "; "))
}

// Validator validates extraction output against the strict schema
type Validator struct {
	schema *gojsonschema.Schema
}

// New compiles the strict extraction schema
func New() (*Validator, error) {
	loader := gojsonschema.NewGoLoader(models.StrictSchemaDocument())
	schema, err := gojsonschema.NewSchema(loader)
	if err != nil {
		return nil, fmt.Errorf("failed to compile extraction schema: %w", err)
	}
	return &Validator{schema: schema}, nil
}

// Validate checks one raw JSON document. It returns nil when the document
// conforms, a *ShapeError when it carries fields outside the declared set,
// and a generic error for malformed JSON or any other schema violation.
func (v *Validator) Validate(raw []byte) error {
	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("failed to parse extraction output: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var extras []string
	var others []string
	for _, re := range result.Errors() {
		detail := fmt.Sprintf("%s: %s", re.Field(), re.Description())
		if re.Type() == additionalPropertyErrType {
			extras = append(extras, detail)
		} else {
			others = append(others, detail)
		}
	}

	// Extra-field violations win the classification even when other errors
	// are present: a mis-nested object typically trips both.
	if len(extras) > 0 {
		return &ShapeError{Violations: extras}
	}
	return fmt.Errorf("extraction output rejected: %s", strings.Join(others, "; "))
}
