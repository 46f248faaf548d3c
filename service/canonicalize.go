package service

import (
	"fedfilter-backend/models"
)

// canonicalize converts a validated extraction into the loosely-typed
// representation handed to callers. Pure and total: the input already passed
// validation, so there is no failure path. Absent slots are omitted from
// each group entirely, never emitted as null placeholders.
func canonicalize(e *models.QueryExtraction) map[string]interface{} {
	groups := make([]map[string]interface{}, 0, len(e.FilterGroups))
	for i := range e.FilterGroups {
		groups = append(groups, canonicalizeGroup(&e.FilterGroups[i]))
	}

	var combinator interface{}
	if e.GroupOperator != nil {
		combinator = string(*e.GroupOperator)
	}

	return map[string]interface{}{
		"original_query":   e.OriginalQuery,
		"group_combinator": combinator,
		"filter_groups":    groups,
	}
}

func canonicalizeGroup(g *models.FilterGroup) map[string]interface{} {
	out := make(map[string]interface{})

	if g.StartDate != nil {
		out["StartDate"] = canonicalizeDateFilter(g.StartDate)
	}
	if g.EndDate != nil {
		out["EndDate"] = canonicalizeDateFilter(g.EndDate)
	}
	if g.FundedAmount != nil {
		out["funded_amount"] = canonicalizeAmountFilter(g.FundedAmount)
	}
	if g.TotalAmount != nil {
		out["total_amount"] = canonicalizeAmountFilter(g.TotalAmount)
	}
	if g.Vendor != nil {
		out["vendor"] = canonicalizeTextFilter(g.Vendor)
	}
	if g.Subdoctype != nil {
		out["subdoctype"] = canonicalizeTextFilter(g.Subdoctype)
	}
	if g.ProductServiceCode != nil {
		out["product_service_code"] = map[string]interface{}{
			"psc_code":    stringListOrNil(g.ProductServiceCode.PSCCode),
			"description": stringOrNil(g.ProductServiceCode.Description),
			"level1":      codeLevelOrNil(g.ProductServiceCode.Level1),
			"level2":      codeLevelOrNil(g.ProductServiceCode.Level2),
		}
	}
	if g.IndustryCode != nil {
		out["industry_code"] = map[string]interface{}{
			"naics_code":  stringListOrNil(g.IndustryCode.NAICSCode),
			"description": stringOrNil(g.IndustryCode.Description),
			"level1":      codeLevelOrNil(g.IndustryCode.Level1),
			"level2":      codeLevelOrNil(g.IndustryCode.Level2),
		}
	}
	if g.SetAside != nil {
		out["set_aside"] = map[string]interface{}{
			"description": stringOrNil(g.SetAside.Description),
			"code":        stringListOrNil(g.SetAside.Code),
		}
	}

	return out
}

func canonicalizeDateFilter(f *models.DateFilter) map[string]interface{} {
	out := map[string]interface{}{
		"operator":   string(f.Operator),
		"value":      stringOrNil(f.Value),
		"start_date": stringOrNil(f.StartDate),
		"end_date":   stringOrNil(f.EndDate),
	}
	// recent_days is metadata; emitted only when a recent/latest phrase set it
	if f.RecentDays != nil {
		out["recent_days"] = *f.RecentDays
	}
	return out
}

func canonicalizeAmountFilter(f *models.AmountFilter) map[string]interface{} {
	return map[string]interface{}{
		"operator":  string(f.Operator),
		"value":     floatOrNil(f.Value),
		"min_value": floatOrNil(f.MinValue),
		"max_value": floatOrNil(f.MaxValue),
	}
}

func canonicalizeTextFilter(f *models.TextFilter) map[string]interface{} {
	return map[string]interface{}{
		"operator": string(f.Operator),
		"value":    stringOrNil(f.Value),
		"values":   stringListOrNil(f.Values),
	}
}

func codeLevelOrNil(l *models.CodeLevel) interface{} {
	if l == nil {
		return nil
	}
	return map[string]interface{}{
		"code":        l.Code,
		"description": l.Description,
	}
}

func stringOrNil(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

func floatOrNil(f *float64) interface{} {
	if f == nil {
		return nil
	}
	return *f
}

func stringListOrNil(list []string) interface{} {
	if list == nil {
		return nil
	}
	return list
}
