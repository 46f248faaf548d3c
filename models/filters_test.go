package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string              { return &s }
func floatPtr(f float64) *float64          { return &f }
func opPtr(o GroupOperator) *GroupOperator { return &o }

func TestDateFilterValidate(t *testing.T) {
	tests := []struct {
		name    string
		filter  DateFilter
		wantErr bool
	}{
		{
			name:   "comparison with value",
			filter: DateFilter{Operator: RangeGreaterEqual, Value: strPtr("2024-10-01")},
		},
		{
			name: "between with both bounds",
			filter: DateFilter{
				Operator:  RangeBetween,
				StartDate: strPtr("2024-10-01"),
				EndDate:   strPtr("2025-09-30"),
			},
		},
		{
			name:    "between missing end bound",
			filter:  DateFilter{Operator: RangeBetween, StartDate: strPtr("2024-10-01")},
			wantErr: true,
		},
		{
			name: "between with stray value",
			filter: DateFilter{
				Operator:  RangeBetween,
				Value:     strPtr("2024-10-01"),
				StartDate: strPtr("2024-10-01"),
				EndDate:   strPtr("2025-09-30"),
			},
			wantErr: true,
		},
		{
			name:    "comparison missing value",
			filter:  DateFilter{Operator: RangeLess},
			wantErr: true,
		},
		{
			name: "comparison with stray bound",
			filter: DateFilter{
				Operator:  RangeEquals,
				Value:     strPtr("2025-01-01"),
				StartDate: strPtr("2024-10-01"),
			},
			wantErr: true,
		},
		{
			name:    "unknown operator",
			filter:  DateFilter{Operator: RangeOperator("!="), Value: strPtr("2025-01-01")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filter.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAmountFilterValidate(t *testing.T) {
	tests := []struct {
		name    string
		filter  AmountFilter
		wantErr bool
	}{
		{
			name:   "comparison with value",
			filter: AmountFilter{Operator: RangeGreater, Value: floatPtr(1000000)},
		},
		{
			name: "between with both bounds",
			filter: AmountFilter{
				Operator: RangeBetween,
				MinValue: floatPtr(100000),
				MaxValue: floatPtr(500000),
			},
		},
		{
			name:    "between missing max",
			filter:  AmountFilter{Operator: RangeBetween, MinValue: floatPtr(100000)},
			wantErr: true,
		},
		{
			name: "comparison with stray bounds",
			filter: AmountFilter{
				Operator: RangeLessEqual,
				Value:    floatPtr(100000),
				MinValue: floatPtr(1),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filter.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTextFilterValidate(t *testing.T) {
	tests := []struct {
		name    string
		filter  TextFilter
		wantErr bool
	}{
		{
			name:   "equality with value",
			filter: TextFilter{Operator: TextEquals, Value: strPtr("awards")},
		},
		{
			name:   "like with value",
			filter: TextFilter{Operator: TextLike, Value: strPtr("%Lockheed%")},
		},
		{
			name:   "in with values",
			filter: TextFilter{Operator: TextIn, Values: []string{"Contract", "BPA"}},
		},
		{
			name:    "in with empty values",
			filter:  TextFilter{Operator: TextIn},
			wantErr: true,
		},
		{
			name:    "in with stray scalar value",
			filter:  TextFilter{Operator: TextIn, Value: strPtr("x"), Values: []string{"x"}},
			wantErr: true,
		},
		{
			name:    "equality with stray values list",
			filter:  TextFilter{Operator: TextEquals, Value: strPtr("x"), Values: []string{"y"}},
			wantErr: true,
		},
		{
			name:    "equality missing value",
			filter:  TextFilter{Operator: TextEquals},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filter.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClassificationLevelsRequireDescription(t *testing.T) {
	psc := PSCInfo{Level1: &CodeLevel{Code: "D", Description: "IT and Telecom"}}
	assert.Error(t, psc.Validate())

	psc.Description = strPtr("IT and Telecom- IT services")
	assert.NoError(t, psc.Validate())

	naics := NAICSInfo{Level2: &CodeLevel{Code: "5415", Description: "Computer Systems Design"}}
	assert.Error(t, naics.Validate())

	naics.Description = strPtr("Computer Systems Design Services")
	assert.NoError(t, naics.Validate())
}

func TestQueryExtractionValidate(t *testing.T) {
	group := FilterGroup{
		Vendor: &TextFilter{Operator: TextLike, Value: strPtr("%Boeing%")},
	}

	t.Run("single group without combinator", func(t *testing.T) {
		e := QueryExtraction{
			FilterGroups:  []FilterGroup{group},
			OriginalQuery: "contracts with Boeing",
		}
		assert.NoError(t, e.Validate())
	})

	t.Run("single group with combinator is rejected", func(t *testing.T) {
		e := QueryExtraction{
			FilterGroups:  []FilterGroup{group},
			GroupOperator: opPtr(GroupAnd),
			OriginalQuery: "contracts with Boeing",
		}
		assert.Error(t, e.Validate())
	})

	t.Run("multiple groups require combinator", func(t *testing.T) {
		e := QueryExtraction{
			FilterGroups:  []FilterGroup{group, group},
			OriginalQuery: "contracts with Boeing or Lockheed",
		}
		require.Error(t, e.Validate())

		e.GroupOperator = opPtr(GroupOr)
		assert.NoError(t, e.Validate())
	})

	t.Run("empty groups rejected", func(t *testing.T) {
		e := QueryExtraction{OriginalQuery: "anything"}
		assert.Error(t, e.Validate())
	})

	t.Run("invalid slot surfaces with group index", func(t *testing.T) {
		e := QueryExtraction{
			FilterGroups: []FilterGroup{
				{StartDate: &DateFilter{Operator: RangeBetween}},
			},
			OriginalQuery: "last fiscal year",
		}
		err := e.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "filter_groups[0]")
	})
}
