package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"fedfilter-backend/models"
	"fedfilter-backend/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validResponse = `{
	"filter_groups": [
		{
			"vendor": {"operator": "LIKE", "value": "%Boeing%", "values": null},
			"funded_amount": {"operator": ">", "value": 1000000, "min_value": null, "max_value": null}
		}
	],
	"group_operator_between_groups": null,
	"original_query": "large Boeing contracts"
}`

// misshapenResponse carries an industry_code swallowed by its sibling
// product_service_code, a closed-record violation.
const misshapenResponse = `{
	"filter_groups": [
		{
			"product_service_code": {
				"psc_code": null,
				"description": "IT services",
				"level1": null,
				"level2": null,
				"industry_code": {"naics_code": ["541512"], "description": null, "level1": null, "level2": null}
			}
		}
	],
	"group_operator_between_groups": null,
	"original_query": "IT services"
}`

// scriptedGenerator returns canned responses in order and records the
// temperature of every call
type scriptedGenerator struct {
	responses    []string
	errs         []error
	calls        int
	temperatures []float32
}

func (g *scriptedGenerator) Generate(_ context.Context, _, _ string, temperature float32) (string, error) {
	i := g.calls
	g.calls++
	g.temperatures = append(g.temperatures, temperature)

	if i < len(g.errs) && g.errs[i] != nil {
		return "", g.errs[i]
	}
	if i < len(g.responses) {
		return g.responses[i], nil
	}
	return g.responses[len(g.responses)-1], nil
}

func newTestService(t *testing.T, gen Generator, opts ...ExtractionServiceOption) *ExtractionService {
	t.Helper()
	validator, err := validation.New()
	require.NoError(t, err)

	base := []ExtractionServiceOption{
		WithGenerator(gen),
		WithValidator(validator),
		WithClock(func() time.Time { return time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC) }),
	}
	return NewExtractionService(append(base, opts...)...)
}

func TestExtractSucceedsFirstAttempt(t *testing.T) {
	gen := &scriptedGenerator{responses: []string{validResponse}}
	svc := newTestService(t, gen)

	result, err := svc.Extract(context.Background(), "large Boeing contracts", nil)
	require.NoError(t, err)
	require.Equal(t, 1, gen.calls)

	assert.Equal(t, "large Boeing contracts", result["original_query"])
	assert.Nil(t, result["group_combinator"])

	groups, ok := result["filter_groups"].([]map[string]interface{})
	require.True(t, ok)
	require.Len(t, groups, 1)

	vendor, ok := groups[0]["vendor"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "LIKE", vendor["operator"])
	assert.Equal(t, "%Boeing%", vendor["value"])
	assert.Nil(t, vendor["values"])

	// Only the populated slots appear.
	assert.NotContains(t, groups[0], "StartDate")
	assert.NotContains(t, groups[0], "set_aside")
}

func TestExtractRetriesShapeViolationsWithWarmerTemperature(t *testing.T) {
	gen := &scriptedGenerator{
		responses: []string{misshapenResponse, misshapenResponse, validResponse},
	}
	svc := newTestService(t, gen)

	_, err := svc.Extract(context.Background(), "IT services", nil)
	require.NoError(t, err)
	require.Equal(t, 3, gen.calls)

	assert.InDelta(t, 0.1, float64(gen.temperatures[0]), 1e-6)
	assert.InDelta(t, 0.15, float64(gen.temperatures[1]), 1e-6)
	assert.InDelta(t, 0.2, float64(gen.temperatures[2]), 1e-6)
}

func TestExtractStopsAfterMaxAttempts(t *testing.T) {
	gen := &scriptedGenerator{responses: []string{misshapenResponse}}
	svc := newTestService(t, gen)

	_, err := svc.Extract(context.Background(), "IT services", nil)
	require.Error(t, err)
	assert.Equal(t, maxAttempts, gen.calls)

	var extErr *ExtractionError
	require.True(t, errors.As(err, &extErr))
	assert.Contains(t, extErr.Details, "industry_code")
}

func TestExtractAbortsOnProviderError(t *testing.T) {
	gen := &scriptedGenerator{
		responses: []string{validResponse},
		errs:      []error{errors.New("quota exceeded")},
	}
	svc := newTestService(t, gen)

	_, err := svc.Extract(context.Background(), "anything", nil)
	require.Error(t, err)
	assert.Equal(t, 1, gen.calls)

	var provErr *ProviderError
	require.True(t, errors.As(err, &provErr))
	assert.Contains(t, provErr.Message, "quota exceeded")
}

func TestExtractAbortsOnNonShapeValidationError(t *testing.T) {
	// Wrong operator enum is a content violation, not a closed-record one.
	bad := `{
		"filter_groups": [{"vendor": {"operator": "MATCHES", "value": "Boeing", "values": null}}],
		"group_operator_between_groups": null,
		"original_query": "Boeing"
	}`
	gen := &scriptedGenerator{responses: []string{bad, validResponse}}
	svc := newTestService(t, gen)

	_, err := svc.Extract(context.Background(), "Boeing", nil)
	require.Error(t, err)
	assert.Equal(t, 1, gen.calls)

	var extErr *ExtractionError
	require.True(t, errors.As(err, &extErr))
	var shapeErr *validation.ShapeError
	assert.False(t, errors.As(err, &shapeErr))
}

func TestExtractAbortsOnSemanticValidationError(t *testing.T) {
	// Schema-valid but semantically wrong: one group with a combinator.
	bad := `{
		"filter_groups": [{"vendor": {"operator": "=", "value": "Boeing", "values": null}}],
		"group_operator_between_groups": "AND",
		"original_query": "Boeing"
	}`
	gen := &scriptedGenerator{responses: []string{bad, validResponse}}
	svc := newTestService(t, gen)

	_, err := svc.Extract(context.Background(), "Boeing", nil)
	require.Error(t, err)
	assert.Equal(t, 1, gen.calls)

	var extErr *ExtractionError
	require.True(t, errors.As(err, &extErr))
}

func TestExtractHonorsCallerTemperature(t *testing.T) {
	gen := &scriptedGenerator{responses: []string{validResponse}}
	svc := newTestService(t, gen)

	temp := 0.4
	_, err := svc.Extract(context.Background(), "Boeing", &temp)
	require.NoError(t, err)
	assert.InDelta(t, 0.4, float64(gen.temperatures[0]), 1e-6)
}

func TestExtractRequiresCollaborators(t *testing.T) {
	svc := NewExtractionService()
	_, err := svc.Extract(context.Background(), "anything", nil)
	assert.Error(t, err)
}

func TestCanonicalizeEmitsFixedFilterShapes(t *testing.T) {
	start := "2024-10-01"
	end := "2025-09-30"
	days := 90
	desc := "IT and Telecom- IT services"
	saDesc := "Woman Owned Small Business"

	e := &models.QueryExtraction{
		OriginalQuery: "recent WOSB IT awards",
		FilterGroups: []models.FilterGroup{
			{
				StartDate: &models.DateFilter{
					Operator:   models.RangeBetween,
					StartDate:  &start,
					EndDate:    &end,
					RecentDays: &days,
				},
				ProductServiceCode: &models.PSCInfo{
					Description: &desc,
					Level1:      &models.CodeLevel{Code: "D", Description: "IT and Telecom"},
				},
				SetAside: &models.SetAsideFilter{
					Description: &saDesc,
					Code:        []string{"F"},
				},
			},
		},
	}

	out := canonicalize(e)
	groups := out["filter_groups"].([]map[string]interface{})
	require.Len(t, groups, 1)

	sd := groups[0]["StartDate"].(map[string]interface{})
	assert.Equal(t, "BETWEEN", sd["operator"])
	assert.Nil(t, sd["value"])
	assert.Equal(t, start, sd["start_date"])
	assert.Equal(t, end, sd["end_date"])
	assert.Equal(t, days, sd["recent_days"])

	psc := groups[0]["product_service_code"].(map[string]interface{})
	assert.Nil(t, psc["psc_code"])
	assert.Equal(t, desc, psc["description"])
	level1 := psc["level1"].(map[string]interface{})
	assert.Equal(t, "D", level1["code"])
	assert.Nil(t, psc["level2"])

	sa := groups[0]["set_aside"].(map[string]interface{})
	assert.Equal(t, saDesc, sa["description"])
	assert.Equal(t, []string{"F"}, sa["code"])
}

func TestCanonicalizeOmitsRecentDaysWhenUnset(t *testing.T) {
	value := "2025-01-01"
	e := &models.QueryExtraction{
		OriginalQuery: "contracts starting this year",
		FilterGroups: []models.FilterGroup{
			{StartDate: &models.DateFilter{Operator: models.RangeGreaterEqual, Value: &value}},
		},
	}

	out := canonicalize(e)
	groups := out["filter_groups"].([]map[string]interface{})
	sd := groups[0]["StartDate"].(map[string]interface{})

	assert.NotContains(t, sd, "recent_days")
	assert.Equal(t, value, sd["value"])
	assert.Nil(t, sd["start_date"])
}

func TestCanonicalizeCombinatorForMultipleGroups(t *testing.T) {
	op := models.GroupOr
	vendor := "Boeing"
	e := &models.QueryExtraction{
		OriginalQuery: "Boeing or Lockheed",
		GroupOperator: &op,
		FilterGroups: []models.FilterGroup{
			{Vendor: &models.TextFilter{Operator: models.TextEquals, Value: &vendor}},
			{Vendor: &models.TextFilter{Operator: models.TextEquals, Value: &vendor}},
		},
	}

	out := canonicalize(e)
	assert.Equal(t, "OR", out["group_combinator"])
	assert.Len(t, out["filter_groups"].([]map[string]interface{}), 2)
}
