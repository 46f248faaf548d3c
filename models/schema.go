package models

import (
	"github.com/google/generative-ai-go/genai"
)

// ResponseSchema returns the shape descriptor handed to the model with the
// generation request. It is guidance only: the domain model is mostly
// optional fields, which rules out a strict required-properties schema, so
// the model can still mis-nest sibling objects. StrictSchemaDocument is the
// authority that catches that.
func ResponseSchema() *genai.Schema {
	codeLevel := func() *genai.Schema {
		return &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"code":        {Type: genai.TypeString},
				"description": {Type: genai.TypeString},
			},
			Required: []string{"code", "description"},
			Nullable: true,
		}
	}

	dateFilter := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"operator":    {Type: genai.TypeString, Enum: []string{"=", "<", ">", "<=", ">=", "BETWEEN"}},
			"value":       {Type: genai.TypeString, Nullable: true},
			"start_date":  {Type: genai.TypeString, Nullable: true},
			"end_date":    {Type: genai.TypeString, Nullable: true},
			"recent_days": {Type: genai.TypeInteger, Nullable: true},
		},
		Required: []string{"operator"},
		Nullable: true,
	}

	amountFilter := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"operator":  {Type: genai.TypeString, Enum: []string{"=", "<", ">", "<=", ">=", "BETWEEN"}},
			"value":     {Type: genai.TypeNumber, Nullable: true},
			"min_value": {Type: genai.TypeNumber, Nullable: true},
			"max_value": {Type: genai.TypeNumber, Nullable: true},
		},
		Required: []string{"operator"},
		Nullable: true,
	}

	textFilter := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"operator": {Type: genai.TypeString, Enum: []string{"=", "LIKE", "IN"}},
			"value":    {Type: genai.TypeString, Nullable: true},
			"values":   {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}, Nullable: true},
		},
		Required: []string{"operator"},
		Nullable: true,
	}

	pscInfo := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"psc_code":    {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}, Nullable: true},
			"description": {Type: genai.TypeString, Nullable: true},
			"level1":      codeLevel(),
			"level2":      codeLevel(),
		},
		Nullable: true,
	}

	naicsInfo := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"naics_code":  {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}, Nullable: true},
			"description": {Type: genai.TypeString, Nullable: true},
			"level1":      codeLevel(),
			"level2":      codeLevel(),
		},
		Nullable: true,
	}

	setAside := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"description": {Type: genai.TypeString, Nullable: true},
			"code":        {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}, Nullable: true},
		},
		Nullable: true,
	}

	filterGroup := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"StartDate":            dateFilter,
			"EndDate":              dateFilter,
			"funded_amount":        amountFilter,
			"total_amount":         amountFilter,
			"vendor":               textFilter,
			"subdoctype":           textFilter,
			"product_service_code": pscInfo,
			"industry_code":        naicsInfo,
			"set_aside":            setAside,
		},
	}

	return &genai.Schema{
		Type:        genai.TypeObject,
		Description: "Structured extraction of a procurement contract query",
		Properties: map[string]*genai.Schema{
			"filter_groups": {
				Type:  genai.TypeArray,
				Items: filterGroup,
			},
			"group_operator_between_groups": {
				Type:     genai.TypeString,
				Enum:     []string{"AND", "OR"},
				Nullable: true,
			},
			"original_query": {Type: genai.TypeString},
		},
		Required: []string{"filter_groups", "original_query"},
	}
}

// StrictSchemaDocument returns the closed-record JSON Schema used to validate
// model output. Every object level sets additionalProperties false, which is
// what turns a classification object nested inside its sibling into a
// detectable violation instead of silently accepted noise.
func StrictSchemaDocument() map[string]interface{} {
	rangeOps := []interface{}{"=", "<", ">", "<=", ">=", "BETWEEN"}

	codeLevel := func() map[string]interface{} {
		return map[string]interface{}{
			"type": []interface{}{"object", "null"},
			"properties": map[string]interface{}{
				"code":        map[string]interface{}{"type": "string"},
				"description": map[string]interface{}{"type": "string"},
			},
			"required":             []interface{}{"code", "description"},
			"additionalProperties": false,
		}
	}

	nullableString := func() map[string]interface{} {
		return map[string]interface{}{"type": []interface{}{"string", "null"}}
	}
	nullableStringList := func() map[string]interface{} {
		return map[string]interface{}{
			"type":  []interface{}{"array", "null"},
			"items": map[string]interface{}{"type": "string"},
		}
	}

	dateFilter := map[string]interface{}{
		"type": []interface{}{"object", "null"},
		"properties": map[string]interface{}{
			"operator":    map[string]interface{}{"type": "string", "enum": rangeOps},
			"value":       nullableString(),
			"start_date":  nullableString(),
			"end_date":    nullableString(),
			"recent_days": map[string]interface{}{"type": []interface{}{"integer", "null"}},
		},
		"required":             []interface{}{"operator"},
		"additionalProperties": false,
	}

	amountFilter := map[string]interface{}{
		"type": []interface{}{"object", "null"},
		"properties": map[string]interface{}{
			"operator":  map[string]interface{}{"type": "string", "enum": rangeOps},
			"value":     map[string]interface{}{"type": []interface{}{"number", "null"}},
			"min_value": map[string]interface{}{"type": []interface{}{"number", "null"}},
			"max_value": map[string]interface{}{"type": []interface{}{"number", "null"}},
		},
		"required":             []interface{}{"operator"},
		"additionalProperties": false,
	}

	textFilter := map[string]interface{}{
		"type": []interface{}{"object", "null"},
		"properties": map[string]interface{}{
			"operator": map[string]interface{}{"type": "string", "enum": []interface{}{"=", "LIKE", "IN"}},
			"value":    nullableString(),
			"values":   nullableStringList(),
		},
		"required":             []interface{}{"operator"},
		"additionalProperties": false,
	}

	pscInfo := map[string]interface{}{
		"type": []interface{}{"object", "null"},
		"properties": map[string]interface{}{
			"psc_code":    nullableStringList(),
			"description": nullableString(),
			"level1":      codeLevel(),
			"level2":      codeLevel(),
		},
		"additionalProperties": false,
	}

	naicsInfo := map[string]interface{}{
		"type": []interface{}{"object", "null"},
		"properties": map[string]interface{}{
			"naics_code":  nullableStringList(),
			"description": nullableString(),
			"level1":      codeLevel(),
			"level2":      codeLevel(),
		},
		"additionalProperties": false,
	}

	setAside := map[string]interface{}{
		"type": []interface{}{"object", "null"},
		"properties": map[string]interface{}{
			"description": nullableString(),
			"code":        nullableStringList(),
		},
		"additionalProperties": false,
	}

	filterGroup := map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"StartDate":            dateFilter,
			"EndDate":              dateFilter,
			"funded_amount":        amountFilter,
			"total_amount":         amountFilter,
			"vendor":               textFilter,
			"subdoctype":           textFilter,
			"product_service_code": pscInfo,
			"industry_code":        naicsInfo,
			"set_aside":            setAside,
		},
		"additionalProperties": false,
	}

	return map[string]interface{}{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type":    "object",
		"properties": map[string]interface{}{
			"filter_groups": map[string]interface{}{
				"type":     "array",
				"items":    filterGroup,
				"minItems": 1,
			},
			"group_operator_between_groups": map[string]interface{}{
				"type": []interface{}{"string", "null"},
				"enum": []interface{}{"AND", "OR", nil},
			},
			"original_query": map[string]interface{}{"type": "string"},
		},
		"required":             []interface{}{"filter_groups", "original_query"},
		"additionalProperties": false,
	}
}
