package models

import (
	"fmt"
)

// RangeOperator is a SQL-style comparison operator for date and amount filters
type RangeOperator string

const (
	RangeEquals       RangeOperator = "="
	RangeLess         RangeOperator = "<"
	RangeGreater      RangeOperator = ">"
	RangeLessEqual    RangeOperator = "<="
	RangeGreaterEqual RangeOperator = ">="
	RangeBetween      RangeOperator = "BETWEEN"
)

// TextOperator is a SQL-style operator for text filters
type TextOperator string

const (
	TextEquals TextOperator = "="
	TextLike   TextOperator = "LIKE"
	TextIn     TextOperator = "IN"
)

// GroupOperator combines multiple filter groups
type GroupOperator string

const (
	GroupAnd GroupOperator = "AND"
	GroupOr  GroupOperator = "OR"
)

var rangeOperators = map[RangeOperator]bool{
	RangeEquals:       true,
	RangeLess:         true,
	RangeGreater:      true,
	RangeLessEqual:    true,
	RangeGreaterEqual: true,
	RangeBetween:      true,
}

var textOperators = map[TextOperator]bool{
	TextEquals: true,
	TextLike:   true,
	TextIn:     true,
}

// DateFilter is a range filter over a period-of-performance boundary.
// BETWEEN uses start_date/end_date; every other operator uses value.
// RecentDays is metadata recorded only when the filter came from a
// "recent"/"latest" phrase; it does not take part in the comparison.
type DateFilter struct {
	Operator   RangeOperator `json:"operator"`
	Value      *string       `json:"value,omitempty"`
	StartDate  *string       `json:"start_date,omitempty"`
	EndDate    *string       `json:"end_date,omitempty"`
	RecentDays *int          `json:"recent_days,omitempty"`
}

// Validate checks the operator/value pairing
func (f *DateFilter) Validate() error {
	if !rangeOperators[f.Operator] {
		return fmt.Errorf("date filter: unknown operator %q", f.Operator)
	}
	if f.Operator == RangeBetween {
		if f.StartDate == nil || f.EndDate == nil {
			return fmt.Errorf("date filter: BETWEEN requires start_date and end_date")
		}
		if f.Value != nil {
			return fmt.Errorf("date filter: BETWEEN must not carry value")
		}
		return nil
	}
	if f.Value == nil {
		return fmt.Errorf("date filter: operator %q requires value", f.Operator)
	}
	if f.StartDate != nil || f.EndDate != nil {
		return fmt.Errorf("date filter: operator %q must not carry start_date/end_date", f.Operator)
	}
	return nil
}

// AmountFilter is a range filter over an obligated dollar amount.
// BETWEEN uses min_value/max_value; every other operator uses value.
type AmountFilter struct {
	Operator RangeOperator `json:"operator"`
	Value    *float64      `json:"value,omitempty"`
	MinValue *float64      `json:"min_value,omitempty"`
	MaxValue *float64      `json:"max_value,omitempty"`
}

// Validate checks the operator/value pairing
func (f *AmountFilter) Validate() error {
	if !rangeOperators[f.Operator] {
		return fmt.Errorf("amount filter: unknown operator %q", f.Operator)
	}
	if f.Operator == RangeBetween {
		if f.MinValue == nil || f.MaxValue == nil {
			return fmt.Errorf("amount filter: BETWEEN requires min_value and max_value")
		}
		if f.Value != nil {
			return fmt.Errorf("amount filter: BETWEEN must not carry value")
		}
		return nil
	}
	if f.Value == nil {
		return fmt.Errorf("amount filter: operator %q requires value", f.Operator)
	}
	if f.MinValue != nil || f.MaxValue != nil {
		return fmt.Errorf("amount filter: operator %q must not carry min_value/max_value", f.Operator)
	}
	return nil
}

// TextFilter matches a text column. = and LIKE use value; IN uses values.
type TextFilter struct {
	Operator TextOperator `json:"operator"`
	Value    *string      `json:"value,omitempty"`
	Values   []string     `json:"values,omitempty"`
}

// Validate checks the operator/value pairing
func (f *TextFilter) Validate() error {
	if !textOperators[f.Operator] {
		return fmt.Errorf("text filter: unknown operator %q", f.Operator)
	}
	if f.Operator == TextIn {
		if len(f.Values) == 0 {
			return fmt.Errorf("text filter: IN requires a non-empty values list")
		}
		if f.Value != nil {
			return fmt.Errorf("text filter: IN must not carry value")
		}
		return nil
	}
	if f.Value == nil {
		return fmt.Errorf("text filter: operator %q requires value", f.Operator)
	}
	if len(f.Values) > 0 {
		return fmt.Errorf("text filter: operator %q must not carry values", f.Operator)
	}
	return nil
}

// CodeLevel is one classification lookup-table entry
type CodeLevel struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// PSCInfo carries the product/service classification extracted from a query.
// PSCCode holds only codes the user typed; level1/level2 are looked up from
// the description, never derived from codes.
type PSCInfo struct {
	PSCCode     []string   `json:"psc_code,omitempty"`
	Description *string    `json:"description,omitempty"`
	Level1      *CodeLevel `json:"level1,omitempty"`
	Level2      *CodeLevel `json:"level2,omitempty"`
}

// Validate checks that levels only accompany a description
func (p *PSCInfo) Validate() error {
	if p.Description == nil && (p.Level1 != nil || p.Level2 != nil) {
		return fmt.Errorf("product_service_code: level1/level2 require a description")
	}
	return nil
}

// NAICSInfo carries the industry classification extracted from a query.
// Structurally identical to PSCInfo but a strictly separate sibling; one must
// never appear nested inside the other.
type NAICSInfo struct {
	NAICSCode   []string   `json:"naics_code,omitempty"`
	Description *string    `json:"description,omitempty"`
	Level1      *CodeLevel `json:"level1,omitempty"`
	Level2      *CodeLevel `json:"level2,omitempty"`
}

// Validate checks that levels only accompany a description
func (n *NAICSInfo) Validate() error {
	if n.Description == nil && (n.Level1 != nil || n.Level2 != nil) {
		return fmt.Errorf("industry_code: level1/level2 require a description")
	}
	return nil
}

// SetAsideFilter selects small-business set-aside categories
type SetAsideFilter struct {
	Description *string  `json:"description,omitempty"`
	Code        []string `json:"code,omitempty"`
}

// FilterGroup is one AND-combined bundle of filter slots. Every slot is
// optional. The JSON names are the wire contract shared with the instruction
// text; StartDate/EndDate keep their historical capitalization.
type FilterGroup struct {
	StartDate          *DateFilter     `json:"StartDate,omitempty"`
	EndDate            *DateFilter     `json:"EndDate,omitempty"`
	FundedAmount       *AmountFilter   `json:"funded_amount,omitempty"`
	TotalAmount        *AmountFilter   `json:"total_amount,omitempty"`
	Vendor             *TextFilter     `json:"vendor,omitempty"`
	Subdoctype         *TextFilter     `json:"subdoctype,omitempty"`
	ProductServiceCode *PSCInfo        `json:"product_service_code,omitempty"`
	IndustryCode       *NAICSInfo      `json:"industry_code,omitempty"`
	SetAside           *SetAsideFilter `json:"set_aside,omitempty"`
}

// Validate checks every populated slot
func (g *FilterGroup) Validate() error {
	if g.StartDate != nil {
		if err := g.StartDate.Validate(); err != nil {
			return fmt.Errorf("StartDate: %w", err)
		}
	}
	if g.EndDate != nil {
		if err := g.EndDate.Validate(); err != nil {
			return fmt.Errorf("EndDate: %w", err)
		}
	}
	if g.FundedAmount != nil {
		if err := g.FundedAmount.Validate(); err != nil {
			return fmt.Errorf("funded_amount: %w", err)
		}
	}
	if g.TotalAmount != nil {
		if err := g.TotalAmount.Validate(); err != nil {
			return fmt.Errorf("total_amount: %w", err)
		}
	}
	if g.Vendor != nil {
		if err := g.Vendor.Validate(); err != nil {
			return fmt.Errorf("vendor: %w", err)
		}
	}
	if g.Subdoctype != nil {
		if err := g.Subdoctype.Validate(); err != nil {
			return fmt.Errorf("subdoctype: %w", err)
		}
	}
	if g.ProductServiceCode != nil {
		if err := g.ProductServiceCode.Validate(); err != nil {
			return err
		}
	}
	if g.IndustryCode != nil {
		if err := g.IndustryCode.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// QueryExtraction is the root result of one extraction call
type QueryExtraction struct {
	FilterGroups  []FilterGroup  `json:"filter_groups"`
	GroupOperator *GroupOperator `json:"group_operator_between_groups,omitempty"`
	OriginalQuery string         `json:"original_query"`
}

// Validate checks the root invariants and every group.
// A combinator is required with multiple groups and forbidden with one.
func (e *QueryExtraction) Validate() error {
	if len(e.FilterGroups) == 0 {
		return fmt.Errorf("extraction: filter_groups must not be empty")
	}
	if len(e.FilterGroups) > 1 {
		if e.GroupOperator == nil {
			return fmt.Errorf("extraction: group_operator_between_groups is required for %d groups", len(e.FilterGroups))
		}
		if *e.GroupOperator != GroupAnd && *e.GroupOperator != GroupOr {
			return fmt.Errorf("extraction: unknown group operator %q", *e.GroupOperator)
		}
	} else if e.GroupOperator != nil {
		return fmt.Errorf("extraction: group_operator_between_groups must be null for a single group")
	}
	for i := range e.FilterGroups {
		if err := e.FilterGroups[i].Validate(); err != nil {
			return fmt.Errorf("filter_groups[%d]: %w", i, err)
		}
	}
	return nil
}
